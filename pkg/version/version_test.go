// SPDX-License-Identifier: MPL-2.0

package version

import (
	"errors"
	"testing"
)

func TestVersion_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		version Version
		wantErr bool
	}{
		{"absent", Version(""), false},
		{"major only", Version("1"), false},
		{"major minor", Version("1.4"), false},
		{"full", Version("1.2.3"), false},
		{"leading zeros", Version("01.002"), false},
		{"many components", Version("1.2.3.4.5"), false},
		{"letter component", Version("1.a.3"), true},
		{"empty component", Version("1..3"), true},
		{"trailing dot", Version("1.2."), true},
		{"leading dot", Version(".1"), true},
		{"negative", Version("-1.0"), true},
		{"v prefix", Version("v1.2.3"), true},
		{"prerelease", Version("1.2.3-rc1"), true},
		{"whitespace", Version(" "), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.version.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Version(%q).Validate() error = %v, wantErr %v", tt.version, err, tt.wantErr)
			}
			if !tt.wantErr {
				return
			}
			if !errors.Is(err, ErrInvalidVersionFormat) {
				t.Errorf("error should wrap ErrInvalidVersionFormat, got: %v", err)
			}
			var vErr *InvalidVersionFormatError
			if !errors.As(err, &vErr) {
				t.Fatalf("error should be *InvalidVersionFormatError, got: %T", err)
			}
			if vErr.Value != tt.version {
				t.Errorf("InvalidVersionFormatError.Value = %q, want %q", vErr.Value, tt.version)
			}
		})
	}
}

func TestVersion_Major(t *testing.T) {
	t.Parallel()

	tests := []struct {
		version Version
		want    string
	}{
		{"", ""},
		{"7", "7"},
		{"1.4.5", "1"},
		{"10.0", "10"},
	}

	for _, tt := range tests {
		if got := tt.version.Major(); got != tt.want {
			t.Errorf("Version(%q).Major() = %q, want %q", tt.version, got, tt.want)
		}
	}
}

func TestNormalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		version   Version
		soversion SoVersionToken
		want      Spec
	}{
		{"neither", "", nil, Spec{}},
		{"both", "1.2.3", StringToken("0"), Spec{Version: "1.2.3", SoVersion: "0"}},
		{"version only", "1.4.5", nil, Spec{Version: "1.4.5"}},
		{"integer soversion only", "", IntegerToken(5), Spec{SoVersion: "5"}},
		{"string soversion only", "", StringToken("5"), Spec{SoVersion: "5"}},
		{"opaque soversion", "2.0", StringToken("abi-two"), Spec{Version: "2.0", SoVersion: "abi-two"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := Normalize(tt.version, tt.soversion)
			if err != nil {
				t.Fatalf("Normalize() unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Normalize() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestNormalize_IntegerEquivalentToString(t *testing.T) {
	t.Parallel()

	fromInt, err := Normalize("", IntegerToken(5))
	if err != nil {
		t.Fatalf("Normalize(int) error: %v", err)
	}
	fromString, err := Normalize("", StringToken("5"))
	if err != nil {
		t.Fatalf("Normalize(string) error: %v", err)
	}
	if fromInt != fromString {
		t.Errorf("Normalize(5) = %+v, Normalize(\"5\") = %+v; want equal", fromInt, fromString)
	}
}

func TestNormalize_InvalidVersion(t *testing.T) {
	t.Parallel()

	_, err := Normalize("1.a.3", nil)
	if err == nil {
		t.Fatal("Normalize(\"1.a.3\") should fail")
	}
	if !errors.Is(err, ErrInvalidVersionFormat) {
		t.Errorf("error should wrap ErrInvalidVersionFormat, got: %v", err)
	}
}

func TestSpec_EffectiveSoVersion(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		spec   Spec
		want   SoVersion
		wantOK bool
	}{
		{"neither", Spec{}, "", false},
		{"soversion wins", Spec{Version: "1.2.3", SoVersion: "0"}, "0", true},
		{"major of version", Spec{Version: "1.4.5"}, "1", true},
		{"soversion only", Spec{SoVersion: "5"}, "5", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, ok := tt.spec.EffectiveSoVersion()
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("EffectiveSoVersion() = (%q, %v), want (%q, %v)", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestSpec_String(t *testing.T) {
	t.Parallel()

	if got := (Spec{}).String(); got != "unversioned" {
		t.Errorf("Spec{}.String() = %q, want %q", got, "unversioned")
	}
	if got := (Spec{Version: "1.2.3", SoVersion: "0"}).String(); got != "version=1.2.3 soversion=0" {
		t.Errorf("Spec.String() = %q", got)
	}
}
