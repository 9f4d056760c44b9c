package ownership

import (
	"errors"

	"github.com/google/uuid"
)

// ErrNotOwner is returned when the acting user is not the recorded author.
// Handlers translate it to HTTP 403.
var ErrNotOwner = errors.New("not the owner of this resource")

// Assert enforces the single ownership rule shared by posts and comments:
// only the user matching the resource's author identifier may mutate or
// delete it.
func Assert(authorID, actorID uuid.UUID) error {
	if authorID != actorID {
		return ErrNotOwner
	}
	return nil
}
