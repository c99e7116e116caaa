package violation

import (
	"errors"
	"fmt"
)

// ErrOffsetNotFound is matched by every OffsetNotFoundError via errors.Is
var ErrOffsetNotFound = errors.New("offset not found")

// OffsetNotFoundError is returned when reading an offset that holds no violation
type OffsetNotFoundError struct {
	Offset int
}

func (e *OffsetNotFoundError) Error() string {
	return fmt.Sprintf("the offset \"%d\" does not exist", e.Offset)
}

// Is reports whether target is ErrOffsetNotFound
func (e *OffsetNotFoundError) Is(target error) bool {
	return target == ErrOffsetNotFound
}
