package limits

import (
	"errors"
	"strings"
	"testing"
)

// TestMaxHostStringCalculation verifies that MaxHostString covers a name,
// a bracketed port and a key prefix.
func TestMaxHostStringCalculation(t *testing.T) {
	if MaxHostString != 381 {
		t.Errorf("MaxHostString = %d, want 381", MaxHostString)
	}
}

func TestLiteralLimits(t *testing.T) {
	if got := len("255.255.255.255"); got != MaxIPv4Text {
		t.Errorf("MaxIPv4Text = %d, want %d", MaxIPv4Text, got)
	}
	if got := len("ffff:ffff:ffff:ffff:ffff:ffff:255.255.255.255"); got != MaxIPv6Text {
		t.Errorf("MaxIPv6Text = %d, want %d", MaxIPv6Text, got)
	}
	if got := len("65535"); got != MaxPortText {
		t.Errorf("MaxPortText = %d, want %d", MaxPortText, got)
	}
}

func TestValidateTextSize(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		maxSize int
		wantErr error
	}{
		{"empty", "", 10, ErrEmpty},
		{"at limit", strings.Repeat("a", 10), 10, nil},
		{"over limit", strings.Repeat("a", 11), 10, ErrTooLarge},
		{"small", "a", 10, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTextSize(tt.text, tt.maxSize)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateTextSize() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateHost(t *testing.T) {
	if err := ValidateHost("handshake"); err != nil {
		t.Errorf("ValidateHost() unexpected error: %v", err)
	}
	if err := ValidateHost(strings.Repeat("a", MaxHost)); err != nil {
		t.Errorf("ValidateHost() at limit unexpected error: %v", err)
	}
	if err := ValidateHost(strings.Repeat("a", 255+1+5+1)); !errors.Is(err, ErrTooLarge) {
		t.Errorf("ValidateHost() error = %v, want %v", err, ErrTooLarge)
	}
	if err := ValidateHost(""); !errors.Is(err, ErrEmpty) {
		t.Errorf("ValidateHost() error = %v, want %v", err, ErrEmpty)
	}
}

func TestValidateHostStringAndPort(t *testing.T) {
	if err := ValidateHostString(strings.Repeat("a", MaxHostString+1)); !errors.Is(err, ErrTooLarge) {
		t.Errorf("ValidateHostString() error = %v, want %v", err, ErrTooLarge)
	}
	if err := ValidatePortText("65535"); err != nil {
		t.Errorf("ValidatePortText() unexpected error: %v", err)
	}
	if err := ValidatePortText("123456"); !errors.Is(err, ErrTooLarge) {
		t.Errorf("ValidatePortText() error = %v, want %v", err, ErrTooLarge)
	}
}
