package aport

import (
	"errors"
	"fmt"
)

// ErrNoSuchKey is matched by every KeyError via errors.Is.
var ErrNoSuchKey = errors.New("no such key")

// KeyError reports a failed Get. It carries the key that was asked for.
type KeyError struct {
	Key string
}

func (e *KeyError) Error() string {
	return fmt.Sprintf("no such key: %q", e.Key)
}

func (e *KeyError) Is(target error) bool {
	return target == ErrNoSuchKey
}
