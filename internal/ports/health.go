package ports

import (
	"context"
	"errors"
)

// ErrDegraded marks a health result that should be reported but must not
// take the instance out of rotation. Checkers wrap it.
var ErrDegraded = errors.New("degraded")

// HealthChecker reports on one dependency, such as the session store or
// the seed catalogue.
type HealthChecker interface {
	// Name labels the dependency in readiness output.
	Name() string
	// HealthCheck returns nil when healthy. It should honour ctx.
	HealthCheck(ctx context.Context) error
}

// HealthRegistry runs the registered checkers for the readiness endpoint.
type HealthRegistry interface {
	Register(checker HealthChecker)
	// CheckAll returns one entry per checker name. A nil error is healthy.
	CheckAll(ctx context.Context) map[string]error
}
