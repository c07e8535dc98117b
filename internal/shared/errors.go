package shared

import "fmt"

var (
	ErrNotImplemented = fmt.Errorf("not implemented")

	// Configuration errors
	ErrMissingConfig = fmt.Errorf("configuration not found")
	ErrInvalidConfig = fmt.Errorf("invalid configuration")
	ErrMissingAPIKey = fmt.Errorf("missing API key")

	// Completion endpoint errors
	ErrNetwork   = fmt.Errorf("completion request failed")
	ErrParse     = fmt.Errorf("completion output not valid for expected shape")
	ErrNoResults = fmt.Errorf("no extractable results in completion output")
	ErrStale     = fmt.Errorf("superseded by a newer search")

	// Persistence errors
	ErrStorage      = fmt.Errorf("persistence write failed")
	ErrCorruptState = fmt.Errorf("malformed persisted snapshot")
	ErrNotLoaded    = fmt.Errorf("collections not loaded")

	// Wiring errors
	ErrServiceUnavailable = fmt.Errorf("service unavailable")

	// Input validation errors
	ErrInvalidInput      = fmt.Errorf("invalid input")
	ErrMissingArgument   = fmt.Errorf("missing required argument")
	ErrInvalidArgument   = fmt.Errorf("invalid argument")
	ErrUnknownCollection = fmt.Errorf("unknown collection")
)
