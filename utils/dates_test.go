package utils

import "testing"

func TestNormalizeDate(t *testing.T) {
	cases := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"2026-09-01", "2026-09-01", false},
		{"2026-09-01T18:30:00Z", "2026-09-01", false},
		{"2026-09-01T23:00:00+02:00", "2026-09-01", false},
		{"", "", true},
		{"not-a-date", "", true},
		{"01/09/2026", "", true},
	}

	for _, c := range cases {
		got, err := NormalizeDate(c.in)
		if c.wantErr {
			if err == nil {
				t.Errorf("NormalizeDate(%q): expected error, got %q", c.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("NormalizeDate(%q): unexpected error %v", c.in, err)
			continue
		}
		if got != c.want {
			t.Errorf("NormalizeDate(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

// two representations of the same calendar day normalize identically
func TestNormalizeDateCanonical(t *testing.T) {
	a, _ := NormalizeDate("2026-09-01")
	b, _ := NormalizeDate("2026-09-01T09:15:00Z")
	if a != b {
		t.Fatalf("expected %q == %q", a, b)
	}
}
