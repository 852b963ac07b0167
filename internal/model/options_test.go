package model

import (
	"errors"
	"testing"
)

func ptr[T any](v T) *T {
	return &v
}

func TestOptionsOverride_Apply(t *testing.T) {
	tests := []struct {
		name     string
		override *OptionsOverride
		want     Options
	}{
		{
			name:     "nil override",
			override: nil,
			want:     DefaultOptions(),
		},
		{
			name:     "empty override",
			override: &OptionsOverride{},
			want:     DefaultOptions(),
		},
		{
			name:     "threshold only",
			override: &OptionsOverride{EnglishThreshold: ptr(0.9)},
			want:     Options{EnglishThreshold: 0.9, MinWordLength: 2, AllowNumbers: true, AllowAbbreviations: true},
		},
		{
			name: "everything",
			override: &OptionsOverride{
				EnglishThreshold:   ptr(0.5),
				MinWordLength:      ptr(1),
				AllowNumbers:       ptr(false),
				AllowAbbreviations: ptr(false),
			},
			want: Options{EnglishThreshold: 0.5, MinWordLength: 1},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.override.Apply(DefaultOptions()); got != tt.want {
				t.Errorf("Apply() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestOptionsOverride_Validate(t *testing.T) {
	tests := []struct {
		name     string
		override *OptionsOverride
		wantErr  bool
	}{
		{"nil", nil, false},
		{"valid", &OptionsOverride{EnglishThreshold: ptr(0.7), MinWordLength: ptr(0)}, false},
		{"threshold too high", &OptionsOverride{EnglishThreshold: ptr(1.5)}, true},
		{"threshold negative", &OptionsOverride{EnglishThreshold: ptr(-0.1)}, true},
		{"negative length", &OptionsOverride{MinWordLength: ptr(-1)}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.override.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			var merr Error
			if err != nil && (!errors.As(err, &merr) || merr.Code != ErrCodeBadOptions) {
				t.Errorf("Validate() error = %#v, want model.Error with %s", err, ErrCodeBadOptions)
			}
		})
	}
}
