package usecase

import (
	"vinyl-record-house/internal/domain/user"
	"vinyl-record-house/internal/pkg/errs"
	"vinyl-record-house/internal/pkg/jwt"

	"github.com/google/uuid"
)

var (
	ErrNotAccessToken = errs.New("token is not an access token")
	ErrAnonymousToken = errs.New("token carries no user id")
)

// Identity is who a request acts as once its access token checks out.
type Identity struct {
	UserID uuid.UUID
	Role   user.Role
}

type TokenValidator interface {
	Authenticate(accessToken string) (Identity, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{jwtService: jwtService}
}

// Authenticate accepts access tokens only; a refresh token presented as a bearer is rejected.
func (t *tokenValidatorImpl) Authenticate(accessToken string) (Identity, error) {
	claims, err := t.jwtService.ValidateToken(accessToken)
	if err != nil {
		return Identity{}, err
	}
	if claims.TokenType != jwt.TokenTypeAccess {
		return Identity{}, ErrNotAccessToken
	}
	if claims.UserID == uuid.Nil {
		return Identity{}, ErrAnonymousToken
	}
	role, err := user.NewRole(claims.Role)
	if err != nil {
		return Identity{}, errs.Wrapf(err, "token role %q", claims.Role)
	}
	return Identity{UserID: claims.UserID, Role: role}, nil
}
