package errorvalues

import "errors"

var (
	ErrProjectNotFound = errors.New("project doesn't exist")
	ErrGoalNotFound    = errors.New("goal doesn't exist")

	ErrAllocationExceeded = errors.New("allocation exceeds project limit")
	ErrInvalidRequest     = errors.New("invalid request")

	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")

	// Upstream backend failures
	ErrUnauthorized       = errors.New("upstream rejected credentials")
	ErrForbidden          = errors.New("upstream denied access")
	ErrUpstreamBadPayload = errors.New("upstream returned malformed payload")
	ErrUpstreamFailure    = errors.New("upstream request failed")
)
