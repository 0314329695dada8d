package cart

import (
	"strings"

	"vinyl-record-house/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrInvalidOwner = errs.New("cart owner must be exactly one of user or session")

const MaxSessionKeyLength = 64

// Owner identifies whose cart is addressed: an authenticated user or an anonymous session, never both.
type Owner struct {
	userID     uuid.UUID
	sessionKey string
}

func UserOwner(userID uuid.UUID) (Owner, error) {
	if userID == uuid.Nil {
		return Owner{}, ErrInvalidOwner
	}
	return Owner{userID: userID}, nil
}

func SessionOwner(key string) (Owner, error) {
	key = strings.TrimSpace(key)
	if key == "" || len(key) > MaxSessionKeyLength {
		return Owner{}, ErrInvalidOwner
	}
	return Owner{sessionKey: key}, nil
}

func (o Owner) UserID() (uuid.UUID, bool) {
	return o.userID, o.userID != uuid.Nil
}

func (o Owner) SessionKey() (string, bool) {
	return o.sessionKey, o.sessionKey != ""
}

func (o Owner) IsUser() bool { return o.userID != uuid.Nil }

func (o Owner) IsZero() bool { return o.userID == uuid.Nil && o.sessionKey == "" }

func (o Owner) String() string {
	if o.IsUser() {
		return "user:" + o.userID.String()
	}
	return "session:" + o.sessionKey
}
