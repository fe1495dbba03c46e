package collider

import (
	"errors"
	"log"
)

var (
	ErrDegenerateNormal  = errors.New("normal cannot be normalized")
	ErrNegativeDimension = errors.New("dimension must not be negative")
	ErrBadPointCount     = errors.New("quad needs exactly four points")
	ErrUnknownShape      = errors.New("unknown shape kind")
)

// nonNegative clamps a constructor argument to zero and logs the correction.
func nonNegative(kind Kind, name string, v float32) float32 {
	if v < 0 {
		log.Printf("collider: %s %s %g is negative, using 0", kind, name, v)
		return 0
	}
	return v
}
