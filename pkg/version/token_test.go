// SPDX-License-Identifier: MPL-2.0

package version

import (
	"errors"
	"testing"
)

func TestTokenOf(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		in      any
		want    SoVersionToken
		wantErr bool
	}{
		{"nil", nil, nil, false},
		{"int", 5, IntegerToken(5), false},
		{"int64", int64(12), IntegerToken(12), false},
		{"uint8", uint8(3), IntegerToken(3), false},
		{"uint64", uint64(9), IntegerToken(9), false},
		{"string", "5", StringToken("5"), false},
		{"token passthrough", StringToken("abi"), StringToken("abi"), false},
		{"float", 1.5, nil, true},
		{"bool", true, nil, true},
		{"slice", []string{"1"}, nil, true},
		{"uint64 overflow", uint64(1 << 63), nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := TokenOf(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("TokenOf(%v) returned nil error", tt.in)
				}
				if !errors.Is(err, ErrInvalidSoVersionType) {
					t.Errorf("error should wrap ErrInvalidSoVersionType, got: %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("TokenOf(%v) unexpected error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("TokenOf(%v) = %#v, want %#v", tt.in, got, tt.want)
			}
		})
	}
}

func TestToken_String(t *testing.T) {
	t.Parallel()

	if got := IntegerToken(-1).String(); got != "-1" {
		t.Errorf("IntegerToken(-1).String() = %q", got)
	}
	if got := StringToken("0").String(); got != "0" {
		t.Errorf("StringToken(\"0\").String() = %q", got)
	}
}
