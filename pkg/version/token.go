// SPDX-License-Identifier: MPL-2.0

package version

import (
	"fmt"
	"strconv"
)

type (
	// SoVersionToken is a soversion as declared by the caller: either an
	// IntegerToken or a StringToken. The interface is sealed.
	SoVersionToken interface {
		fmt.Stringer
		soVersionToken()
	}

	// IntegerToken is a soversion declared as an integer (e.g., soversion: 5).
	IntegerToken int64

	// StringToken is a soversion declared as a string (e.g., soversion: "5").
	StringToken string

	// InvalidSoVersionTypeError is returned by TokenOf when a decoded value is
	// neither an integer nor a string.
	InvalidSoVersionTypeError struct {
		Value any
	}
)

func (IntegerToken) soVersionToken() {}

func (StringToken) soVersionToken() {}

// String returns the decimal representation of the token.
func (t IntegerToken) String() string { return strconv.FormatInt(int64(t), 10) }

// String returns the token unchanged.
func (t StringToken) String() string { return string(t) }

// Error implements the error interface.
func (e *InvalidSoVersionTypeError) Error() string {
	return fmt.Sprintf("invalid soversion %v (%T): must be an integer or a string", e.Value, e.Value)
}

// Unwrap returns ErrInvalidSoVersionType so callers can use errors.Is for programmatic detection.
func (e *InvalidSoVersionTypeError) Unwrap() error { return ErrInvalidSoVersionType }

// TokenOf converts a decoded configuration value into a SoVersionToken.
// nil yields a nil token (no soversion).
func TokenOf(v any) (SoVersionToken, error) {
	switch x := v.(type) {
	case nil:
		return nil, nil
	case SoVersionToken:
		return x, nil
	case string:
		return StringToken(x), nil
	case int:
		return IntegerToken(x), nil
	case int8:
		return IntegerToken(x), nil
	case int16:
		return IntegerToken(x), nil
	case int32:
		return IntegerToken(x), nil
	case int64:
		return IntegerToken(x), nil
	case uint:
		return unsignedToken(uint64(x), v)
	case uint8:
		return IntegerToken(x), nil
	case uint16:
		return IntegerToken(x), nil
	case uint32:
		return IntegerToken(x), nil
	case uint64:
		return unsignedToken(x, v)
	default:
		return nil, &InvalidSoVersionTypeError{Value: v}
	}
}

// unsignedToken rejects values that do not fit an IntegerToken.
func unsignedToken(u uint64, raw any) (SoVersionToken, error) {
	if u > 1<<63-1 {
		return nil, &InvalidSoVersionTypeError{Value: raw}
	}
	return IntegerToken(int64(u)), nil
}
