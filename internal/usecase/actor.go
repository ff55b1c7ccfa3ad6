package usecase

import (
	"github.com/google/uuid"
)

// Actor is the authenticated caller as seen by services. The zero value is anonymous.
type Actor struct {
	ID          uuid.UUID
	Role        string
	IsAdmin     bool
	IsModerator bool
}

func (a Actor) Authenticated() bool {
	return a.ID != uuid.Nil
}

// CanModify is the object-level rule for reviews and comments:
// the author, a moderator or an admin may change the object.
func (a Actor) CanModify(authorID uuid.UUID) bool {
	if !a.Authenticated() {
		return false
	}
	return a.ID == authorID || a.IsModerator || a.IsAdmin
}
