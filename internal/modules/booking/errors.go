package booking

import (
	"errors"
	"strings"
)

var ErrRoomNotFound = errors.New("room not found")

// ValidationError carries every field rule violated in one validation pass.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Errors))
	for _, fe := range e.Errors {
		msgs = append(msgs, fe.Message)
	}
	return "validation failed: " + strings.Join(msgs, ", ")
}
