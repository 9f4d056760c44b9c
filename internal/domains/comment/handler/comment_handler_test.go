package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sort"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blog-backend/internal/domains/comment/model"
	"blog-backend/internal/domains/comment/service"
	postmodel "blog-backend/internal/domains/post/model"
	"blog-backend/internal/domains/user"
	"blog-backend/internal/shared/middleware"
	"blog-backend/pkg/jwt"
)

type fakeCommentRepo struct {
	comments map[uuid.UUID]*model.WithAuthor
	users    *fakeUserRepo
}

func (f *fakeCommentRepo) Create(_ context.Context, c *model.Comment) error {
	row := &model.WithAuthor{Comment: *c}
	if a, ok := f.users.users[c.AuthorID]; ok {
		row.AuthorName = a.Name
		row.AuthorProfilePicture = a.ProfilePicture
	}
	f.comments[c.ID] = row
	return nil
}

func (f *fakeCommentRepo) FindByID(_ context.Context, id uuid.UUID) (*model.WithAuthor, error) {
	c, ok := f.comments[id]
	if !ok {
		return nil, model.ErrCommentNotFound
	}
	cp := *c
	return &cp, nil
}

func (f *fakeCommentRepo) ListByPost(_ context.Context, postID uuid.UUID) ([]model.WithAuthor, error) {
	out := make([]model.WithAuthor, 0)
	for _, c := range f.comments {
		if c.PostID == postID {
			out = append(out, *c)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (f *fakeCommentRepo) Update(_ context.Context, c *model.Comment) error {
	stored, ok := f.comments[c.ID]
	if !ok {
		return model.ErrCommentNotFound
	}
	stored.Comment = *c
	return nil
}

func (f *fakeCommentRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := f.comments[id]; !ok {
		return model.ErrCommentNotFound
	}
	delete(f.comments, id)
	return nil
}

type fakePostChecker struct {
	existing map[uuid.UUID]bool
}

func (f *fakePostChecker) Create(context.Context, *postmodel.Post) error { return nil }
func (f *fakePostChecker) FindByID(context.Context, uuid.UUID) (*postmodel.WithAuthor, error) {
	return nil, postmodel.ErrPostNotFound
}
func (f *fakePostChecker) List(context.Context) ([]postmodel.WithAuthor, error) { return nil, nil }
func (f *fakePostChecker) ListByAuthor(context.Context, uuid.UUID) ([]postmodel.WithAuthor, error) {
	return nil, nil
}
func (f *fakePostChecker) Update(context.Context, *postmodel.Post) error { return nil }
func (f *fakePostChecker) Delete(context.Context, uuid.UUID) error       { return nil }
func (f *fakePostChecker) Exists(_ context.Context, id uuid.UUID) (bool, error) {
	return f.existing[id], nil
}

type fakeUserRepo struct {
	users map[uuid.UUID]*user.User
}

func (f *fakeUserRepo) Create(context.Context, *user.User) error { return nil }
func (f *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*user.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, user.ErrUserNotFound
	}
	return u, nil
}
func (f *fakeUserRepo) FindByEmail(context.Context, string) (*user.User, error) {
	return nil, user.ErrUserNotFound
}
func (f *fakeUserRepo) Update(context.Context, *user.User) error { return nil }
func (f *fakeUserRepo) Delete(context.Context, uuid.UUID) error  { return nil }

type commentTestEnv struct {
	router *gin.Engine
	users  *fakeUserRepo
	tokens *jwt.Manager
	postID uuid.UUID
}

func setupCommentRouter(t *testing.T) *commentTestEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	tokens, err := jwt.NewManager("test-secret", "HS256", time.Hour)
	require.NoError(t, err)

	users := &fakeUserRepo{users: make(map[uuid.UUID]*user.User)}
	repo := &fakeCommentRepo{comments: make(map[uuid.UUID]*model.WithAuthor), users: users}

	postID := uuid.New()
	posts := &fakePostChecker{existing: map[uuid.UUID]bool{postID: true}}

	h := NewCommentHandler(service.NewCommentService(repo, posts))
	authRequired := middleware.Auth(tokens, users)

	router := gin.New()
	router.GET("/posts/:id/comments", h.ListByPost)
	router.POST("/posts/:id/comments", authRequired, h.Create)
	router.PUT("/comments/:id", authRequired, h.Update)
	router.DELETE("/comments/:id", authRequired, h.Delete)

	return &commentTestEnv{router: router, users: users, tokens: tokens, postID: postID}
}

func (e *commentTestEnv) addUser(t *testing.T, name string) (*user.User, string) {
	t.Helper()
	u := &user.User{
		ID:        uuid.New(),
		Email:     name + "@example.com",
		Name:      name,
		CreatedAt: time.Now().UTC(),
	}
	e.users.users[u.ID] = u

	token, err := e.tokens.Generate(u.ID.String())
	require.NoError(t, err)
	return u, token
}

func (e *commentTestEnv) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func (e *commentTestEnv) createComment(t *testing.T, token, content string) map[string]any {
	t.Helper()
	rec := e.do(t, http.MethodPost, "/posts/"+e.postID.String()+"/comments", token, map[string]string{
		"content": content,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestCreateCommentEndpoint(t *testing.T) {
	env := setupCommentRouter(t)
	alice, token := env.addUser(t, "Alice")

	body := env.createComment(t, token, "Nice post!")
	assert.Equal(t, "Nice post!", body["content"])
	assert.Equal(t, env.postID.String(), body["post_id"])
	assert.Equal(t, alice.ID.String(), body["author_id"])
	assert.Equal(t, "Alice", body["author_name"])
}

func TestCreateCommentEndpointMissingPost(t *testing.T) {
	env := setupCommentRouter(t)
	_, token := env.addUser(t, "Alice")

	rec := env.do(t, http.MethodPost, "/posts/"+uuid.NewString()+"/comments", token, map[string]string{
		"content": "Orphan",
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"detail":"Post not found"}`, rec.Body.String())
}

func TestCreateCommentEndpointRequiresAuth(t *testing.T) {
	env := setupCommentRouter(t)

	rec := env.do(t, http.MethodPost, "/posts/"+env.postID.String()+"/comments", "", map[string]string{
		"content": "Anonymous",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestListCommentsEndpointPublic(t *testing.T) {
	env := setupCommentRouter(t)
	_, token := env.addUser(t, "Alice")

	env.createComment(t, token, "First!")

	rec := env.do(t, http.MethodGet, "/posts/"+env.postID.String()+"/comments", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var comments []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &comments))
	require.Len(t, comments, 1)
	assert.Equal(t, "First!", comments[0]["content"])
}

func TestListCommentsEndpointMissingPost(t *testing.T) {
	env := setupCommentRouter(t)

	rec := env.do(t, http.MethodGet, "/posts/"+uuid.NewString()+"/comments", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"detail":"Post not found"}`, rec.Body.String())
}

func TestUpdateCommentEndpoint(t *testing.T) {
	env := setupCommentRouter(t)
	_, token := env.addUser(t, "Alice")

	created := env.createComment(t, token, "Original")
	commentID := created["id"].(string)

	rec := env.do(t, http.MethodPut, "/comments/"+commentID, token, map[string]string{
		"content": "Edited",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Edited", body["content"])
}

func TestUpdateCommentEndpointForbiddenForNonAuthor(t *testing.T) {
	env := setupCommentRouter(t)
	_, aliceToken := env.addUser(t, "Alice")
	_, bobToken := env.addUser(t, "Bob")

	created := env.createComment(t, aliceToken, "Alice's comment")
	commentID := created["id"].(string)

	rec := env.do(t, http.MethodPut, "/comments/"+commentID, bobToken, map[string]string{
		"content": "Hijacked",
	})
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.JSONEq(t, `{"detail":"Unauthorized access - only the author can edit this comment"}`, rec.Body.String())
}

func TestDeleteCommentEndpoint(t *testing.T) {
	env := setupCommentRouter(t)
	_, token := env.addUser(t, "Alice")

	created := env.createComment(t, token, "Doomed")
	commentID := created["id"].(string)

	rec := env.do(t, http.MethodDelete, "/comments/"+commentID, token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Comment successfully deleted"}`, rec.Body.String())

	rec = env.do(t, http.MethodDelete, "/comments/"+commentID, token, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"detail":"Comment not found"}`, rec.Body.String())
}

func TestDeleteCommentEndpointUnknownID(t *testing.T) {
	env := setupCommentRouter(t)
	_, token := env.addUser(t, "Alice")

	rec := env.do(t, http.MethodDelete, "/comments/not-a-uuid", token, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"detail":"Comment not found"}`, rec.Body.String())
}
