package service

import "errors"

// ErrInvalidArgument marks caller defects: negative money or rates, or a
// non-positive time span. It is wrapped with context and propagates to the
// caller of the sweep; there is no local recovery.
var ErrInvalidArgument = errors.New("invalid argument")
