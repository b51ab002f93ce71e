package yamlutil

import (
	"errors"
	"strings"
	"testing"
)

type target struct {
	Name  string `yaml:"name"`
	Count int    `yaml:"count"`
}

func TestUnmarshal(t *testing.T) {
	var v target
	if err := Unmarshal([]byte("name: roughing\ncount: 3\n"), &v); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if v.Name != "roughing" || v.Count != 3 {
		t.Errorf("Unmarshal() = %+v, want {roughing 3}", v)
	}
}

func TestUnmarshalValidation(t *testing.T) {
	tests := []struct {
		name    string
		data    []byte
		v       any
		wantErr error
	}{
		{"nil data", nil, &target{}, ErrNilData},
		{"empty data", []byte{}, &target{}, ErrNilData},
		{"nil destination", []byte("name: x"), nil, ErrNilDestination},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Unmarshal(tt.data, tt.v)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Unmarshal() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestUnmarshalTooLarge(t *testing.T) {
	old := MaxInputSize
	MaxInputSize = 16
	defer func() { MaxInputSize = old }()

	err := Unmarshal([]byte("name: "+strings.Repeat("x", 32)), &target{})
	if !errors.Is(err, ErrInputTooLarge) {
		t.Errorf("Unmarshal() error = %v, want %v", err, ErrInputTooLarge)
	}
}

func TestUnmarshalStrict(t *testing.T) {
	var v target
	if err := UnmarshalStrict([]byte("name: finishing\n"), &v); err != nil {
		t.Fatalf("UnmarshalStrict() error = %v", err)
	}

	if err := UnmarshalStrict([]byte("name: x\nunknown: y\n"), &v); err == nil {
		t.Error("UnmarshalStrict() expected error for unknown field")
	}
}
