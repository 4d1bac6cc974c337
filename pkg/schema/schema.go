package schema

import (
	"encoding/json"
	"fmt"
)

// ValidationError reports a response that does not match the expected shape
// for the requested method. Schema mismatches are not transient, so callers
// must not retry on it.
type ValidationError struct {
	Shape string // name of the expected top-level shape, e.g. "recenttracks"
	Err   error
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("response does not match %q schema: %v", e.Shape, e.Err)
}

// Unwrap implements error unwrapping for errors.Is/As.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Validator is implemented by payload types that can check their own
// required fields after decoding.
type Validator interface {
	Validate() error
}

// Decode unmarshals raw JSON into T and runs its Validate hook when present.
// Any failure is reported as a *ValidationError naming the expected shape.
func Decode[T any](data []byte, shape string) (T, error) {
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return v, &ValidationError{Shape: shape, Err: err}
	}
	if val, ok := any(&v).(Validator); ok {
		if err := val.Validate(); err != nil {
			return v, &ValidationError{Shape: shape, Err: err}
		}
	}
	return v, nil
}
