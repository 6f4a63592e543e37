package rho

import "errors"

var (
	// ErrFatalInit indicates the worker pool or its synchronisation
	// primitives could not be set up. Under Go's goroutine model this path
	// is rarely reachable, but Solve still returns it through the same
	// error channel a failed goroutine/channel setup would use.
	ErrFatalInit = errors.New("rho: failed to initialise solver resources")

	// ErrVerificationFailed indicates the recovered scalar k does not
	// satisfy k*P = Q: a hard error, never expected in a correct run,
	// indicating a bug in the core or in the curve arithmetic it calls.
	ErrVerificationFailed = errors.New("rho: verification failed, k*P != Q")

	// ErrBadPrecondition indicates Q was the identity point, i.e. k=0.
	// Solve rejects this explicitly rather than spinning forever looking
	// for a collision with an already-known k=0 witness.
	ErrBadPrecondition = errors.New("rho: Q is the identity, k=0 is a documented precondition violation")
)
