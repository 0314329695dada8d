package bootstrap

import (
	"vinyl-record-house/internal/pkg/config"
	"vinyl-record-house/internal/pkg/errs"
	"vinyl-record-house/internal/pkg/jwt"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		NewJWTService,
	),
)

func NewJWTService(cfg config.Config) (*jwt.Service, error) {
	access, refresh := cfg.JWT.AccessTokenDuration, cfg.JWT.RefreshTokenDuration
	if access <= 0 || refresh <= 0 {
		return nil, errs.Newf("JWT token durations must be positive (access=%s refresh=%s)", access, refresh)
	}
	if refresh <= access {
		return nil, errs.Newf("JWT_REFRESH_TOKEN_DURATION (%s) must outlive JWT_ACCESS_TOKEN_DURATION (%s)", refresh, access)
	}
	return jwt.NewService(cfg.JWT.Secret, access, refresh), nil
}
