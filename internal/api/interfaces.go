package api

import (
	"context"

	jwtservice "github.com/limbo/dailyos/pkg/jwt_service"
)

type TokenInspectorI interface {
	Inspect(tokenString string) (*jwtservice.Claims, error)
}

// UpstreamPingerI reports whether the backend is reachable.
type UpstreamPingerI interface {
	Ping(ctx context.Context) error
}
