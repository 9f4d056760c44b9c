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

	"blog-backend/internal/domains/post/model"
	"blog-backend/internal/domains/post/service"
	"blog-backend/internal/domains/user"
	"blog-backend/internal/shared/middleware"
	"blog-backend/pkg/jwt"
)

type fakePostRepo struct {
	posts map[uuid.UUID]*model.WithAuthor
	users *fakeUserRepo
}

func (f *fakePostRepo) Create(_ context.Context, p *model.Post) error {
	row := &model.WithAuthor{Post: *p}
	if a, ok := f.users.users[p.AuthorID]; ok {
		row.AuthorName = a.Name
		row.AuthorProfilePicture = a.ProfilePicture
	}
	f.posts[p.ID] = row
	return nil
}

func (f *fakePostRepo) FindByID(_ context.Context, id uuid.UUID) (*model.WithAuthor, error) {
	p, ok := f.posts[id]
	if !ok {
		return nil, model.ErrPostNotFound
	}
	cp := *p
	return &cp, nil
}

func (f *fakePostRepo) List(_ context.Context) ([]model.WithAuthor, error) {
	out := make([]model.WithAuthor, 0, len(f.posts))
	for _, p := range f.posts {
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (f *fakePostRepo) ListByAuthor(ctx context.Context, authorID uuid.UUID) ([]model.WithAuthor, error) {
	all, _ := f.List(ctx)
	out := make([]model.WithAuthor, 0)
	for _, p := range all {
		if p.AuthorID == authorID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakePostRepo) Update(_ context.Context, p *model.Post) error {
	stored, ok := f.posts[p.ID]
	if !ok {
		return model.ErrPostNotFound
	}
	stored.Post = *p
	return nil
}

func (f *fakePostRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := f.posts[id]; !ok {
		return model.ErrPostNotFound
	}
	delete(f.posts, id)
	return nil
}

func (f *fakePostRepo) Exists(_ context.Context, id uuid.UUID) (bool, error) {
	_, ok := f.posts[id]
	return ok, nil
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

type postTestEnv struct {
	router *gin.Engine
	repo   *fakePostRepo
	users  *fakeUserRepo
	tokens *jwt.Manager
}

func setupPostRouter(t *testing.T) *postTestEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	tokens, err := jwt.NewManager("test-secret", "HS256", time.Hour)
	require.NoError(t, err)

	users := &fakeUserRepo{users: make(map[uuid.UUID]*user.User)}
	repo := &fakePostRepo{posts: make(map[uuid.UUID]*model.WithAuthor), users: users}

	h := NewPostHandler(service.NewPostService(repo))
	authRequired := middleware.Auth(tokens, users)

	router := gin.New()
	router.GET("/posts", h.List)
	router.GET("/posts/:id", h.GetByID)
	router.POST("/posts", authRequired, h.Create)
	router.PUT("/posts/:id", authRequired, h.Update)
	router.DELETE("/posts/:id", authRequired, h.Delete)

	return &postTestEnv{router: router, repo: repo, users: users, tokens: tokens}
}

func (e *postTestEnv) addUser(t *testing.T, name string) (*user.User, string) {
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

func (e *postTestEnv) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
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

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func TestCreatePostEndpoint(t *testing.T) {
	env := setupPostRouter(t)
	alice, token := env.addUser(t, "Alice")

	rec := env.do(t, http.MethodPost, "/posts", token, map[string]string{
		"title":   "First Post",
		"content": "Hello world",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	body := decode(t, rec)
	assert.Equal(t, "First Post", body["title"])
	assert.Equal(t, alice.ID.String(), body["author_id"])
	assert.Equal(t, "Alice", body["author_name"])
}

func TestCreatePostRequiresAuth(t *testing.T) {
	env := setupPostRouter(t)

	rec := env.do(t, http.MethodPost, "/posts", "", map[string]string{
		"title":   "First Post",
		"content": "Hello world",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"detail":"Not authenticated"}`, rec.Body.String())
}

func TestCreatePostValidationDetail(t *testing.T) {
	env := setupPostRouter(t)
	_, token := env.addUser(t, "Alice")

	rec := env.do(t, http.MethodPost, "/posts", token, map[string]string{
		"title":   "",
		"content": "",
	})
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	body := decode(t, rec)
	detail, ok := body["detail"].(map[string]any)
	require.True(t, ok, "detail should be a field map, got %v", body["detail"])
	assert.Contains(t, detail, "title")
	assert.Contains(t, detail, "content")
}

func TestGetPostEndpointNotFound(t *testing.T) {
	env := setupPostRouter(t)

	rec := env.do(t, http.MethodGet, "/posts/"+uuid.NewString(), "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"detail":"Post not found"}`, rec.Body.String())

	// An unparseable id reads the same as a missing post
	rec = env.do(t, http.MethodGet, "/posts/not-a-uuid", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"detail":"Post not found"}`, rec.Body.String())
}

func TestListPostsEndpointPublic(t *testing.T) {
	env := setupPostRouter(t)
	_, token := env.addUser(t, "Alice")

	for _, title := range []string{"one", "two"} {
		rec := env.do(t, http.MethodPost, "/posts", token, map[string]string{
			"title":   title,
			"content": "body",
		})
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	rec := env.do(t, http.MethodGet, "/posts", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var posts []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &posts))
	assert.Len(t, posts, 2)
}

func TestUpdatePostEndpointForbiddenForNonAuthor(t *testing.T) {
	env := setupPostRouter(t)
	_, aliceToken := env.addUser(t, "Alice")
	_, bobToken := env.addUser(t, "Bob")

	rec := env.do(t, http.MethodPost, "/posts", aliceToken, map[string]string{
		"title":   "Alice's Post",
		"content": "body",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	postID := decode(t, rec)["id"].(string)

	rec = env.do(t, http.MethodPut, "/posts/"+postID, bobToken, map[string]string{
		"title": "Hijacked",
	})
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.JSONEq(t, `{"detail":"Unauthorized access - only the author can edit this post"}`, rec.Body.String())

	// Post unchanged
	rec = env.do(t, http.MethodGet, "/posts/"+postID, "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Alice's Post", decode(t, rec)["title"])
}

func TestDeletePostEndpoint(t *testing.T) {
	env := setupPostRouter(t)
	_, token := env.addUser(t, "Alice")

	rec := env.do(t, http.MethodPost, "/posts", token, map[string]string{
		"title":   "Doomed",
		"content": "body",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	postID := decode(t, rec)["id"].(string)

	rec = env.do(t, http.MethodDelete, "/posts/"+postID, token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Post successfully deleted"}`, rec.Body.String())

	rec = env.do(t, http.MethodGet, "/posts/"+postID, "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"detail":"Post not found"}`, rec.Body.String())
}

func TestDeletePostEndpointForbiddenForNonAuthor(t *testing.T) {
	env := setupPostRouter(t)
	_, aliceToken := env.addUser(t, "Alice")
	_, bobToken := env.addUser(t, "Bob")

	rec := env.do(t, http.MethodPost, "/posts", aliceToken, map[string]string{
		"title":   "Alice's Post",
		"content": "body",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	postID := decode(t, rec)["id"].(string)

	rec = env.do(t, http.MethodDelete, "/posts/"+postID, bobToken, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
