package engine

import (
	"errors"
	"testing"
)

func TestParseKind(t *testing.T) {
	tests := []struct {
		in      string
		want    Kind
		wantErr bool
	}{
		{in: "chrome", want: KindChrome},
		{in: "firefox", want: KindFirefox},
		{in: "webkit", want: KindWebkit},
		{in: "Chrome", want: KindChrome},
		{in: " webkit ", want: KindWebkit},
		{in: "safari", wantErr: true},
		{in: "chromium", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseKind(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrUnsupportedKind) {
					t.Fatalf("ParseKind(%q) error = %v, want ErrUnsupportedKind", tt.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseKind(%q) unexpected error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseKind(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestKindsCoversParseKind(t *testing.T) {
	for _, k := range Kinds() {
		if _, err := ParseKind(string(k)); err != nil {
			t.Errorf("ParseKind rejects listed kind %q: %v", k, err)
		}
	}
}
