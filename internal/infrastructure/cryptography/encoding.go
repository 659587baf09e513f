package cryptography

import (
	"fmt"
	"math/big"
	"strings"
	"unicode/utf8"

	"github.com/MGTheTrain/textbook-rsa/internal/domain/cryptoalg"
)

// CodePoints returns the Unicode code point of every character in s.
func CodePoints(s string) []*big.Int {
	out := make([]*big.Int, 0, utf8.RuneCountInString(s))
	for _, r := range s {
		out = append(out, big.NewInt(int64(r)))
	}
	return out
}

// StringFromCodePoints converts code points back into text. It fails on the first
// value that is not a valid Unicode scalar value.
func StringFromCodePoints(codePoints []*big.Int) (string, error) {
	var sb strings.Builder
	for i, cp := range codePoints {
		if !cp.IsInt64() || cp.Int64() < 0 || cp.Int64() > utf8.MaxRune || !utf8.ValidRune(rune(cp.Int64())) {
			return "", fmt.Errorf("%w: %s at position %d", ErrUnrepresentableCodePoint, cp, i)
		}
		sb.WriteRune(rune(cp.Int64()))
	}
	return sb.String(), nil
}

func encodeCipherText(cipherText []*big.Int, format string) ([]byte, error) {
	switch format {
	case cryptoalg.CipherFormatIntegers:
		var sb strings.Builder
		for _, c := range cipherText {
			sb.WriteString(c.String())
			sb.WriteByte('\n')
		}
		return []byte(sb.String()), nil
	case cryptoalg.CipherFormatText:
		text, err := StringFromCodePoints(cipherText)
		if err != nil {
			return nil, fmt.Errorf("ciphertext cannot be written as text, use the %q format: %w", cryptoalg.CipherFormatIntegers, err)
		}
		return []byte(text), nil
	default:
		return nil, fmt.Errorf("unsupported cipher format: %s", format)
	}
}

func decodeCipherText(data []byte, format string) ([]*big.Int, error) {
	switch format {
	case cryptoalg.CipherFormatIntegers:
		fields := strings.Fields(string(data))
		out := make([]*big.Int, len(fields))
		for i, field := range fields {
			v, err := parseNonNegative(field)
			if err != nil {
				return nil, fmt.Errorf("invalid ciphertext value at position %d: %w", i, err)
			}
			out[i] = v
		}
		return out, nil
	case cryptoalg.CipherFormatText:
		if !utf8.Valid(data) {
			return nil, fmt.Errorf("ciphertext is not valid UTF-8")
		}
		return CodePoints(string(data)), nil
	default:
		return nil, fmt.Errorf("unsupported cipher format: %s", format)
	}
}

func parseNonNegative(s string) (*big.Int, error) {
	v, ok := new(big.Int).SetString(strings.TrimSpace(s), 10)
	if !ok {
		return nil, fmt.Errorf("%q is not a decimal integer", s)
	}
	if v.Sign() < 0 {
		return nil, fmt.Errorf("%q is negative", s)
	}
	return v, nil
}
