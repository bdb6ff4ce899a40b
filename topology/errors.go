package topology

import "errors"

var (
	// ErrConfig marks configuration errors: unknown strategy,
	// direction, scope or naming values. Fatal to the call, never
	// retried.
	ErrConfig = errors.New("invalid configuration")

	// ErrPrecondition marks inputs that violate a strategy's
	// preconditions, e.g. a device missing its numeric index.
	ErrPrecondition = errors.New("precondition failed")
)
