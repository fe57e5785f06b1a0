package auth

import "testing"

func TestValidPassword(t *testing.T) {
	cases := []struct {
		password string
		want     bool
	}{
		{"abc123", true},
		{"abcdef", true},
		{"a12345", true},
		{"123456", false}, // no letter
		{"abc12", false},  // too short
		{"", false},
		{"pässwört", true},
	}

	for _, c := range cases {
		if got := ValidPassword(c.password); got != c.want {
			t.Errorf("ValidPassword(%q) = %v, want %v", c.password, got, c.want)
		}
	}
}
