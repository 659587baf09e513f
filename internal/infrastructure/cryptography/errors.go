package cryptography

import (
	"errors"
	"fmt"
	"math/big"
)

var (
	// ErrCodePointOutOfRange is matched by every *CodePointOutOfRangeError.
	ErrCodePointOutOfRange = errors.New("code point out of range")

	// ErrUnrepresentableCodePoint is returned when an integer cannot be turned back into a character.
	ErrUnrepresentableCodePoint = errors.New("code point is not a representable character")
)

// CodePointOutOfRangeError reports a plaintext code point that cannot be encrypted under modulus n.
type CodePointOutOfRangeError struct {
	Position  int
	CodePoint *big.Int
	Modulus   *big.Int
}

func (e *CodePointOutOfRangeError) Error() string {
	return fmt.Sprintf("code point %s at position %d is out of range for n=%s", e.CodePoint, e.Position, e.Modulus)
}

// Is makes errors.Is(err, ErrCodePointOutOfRange) hold.
func (e *CodePointOutOfRangeError) Is(target error) bool {
	return target == ErrCodePointOutOfRange
}
