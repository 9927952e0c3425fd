package dialog

import "testing"

func TestFormatINR(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{8400, "8,400"},
		{84000, "84,000"},
		{150000, "150,000"},
		{1234567, "1,234,567"},
		{-4500, "-4,500"},
	}
	for _, tt := range tests {
		if got := formatINR(tt.n); got != tt.want {
			t.Errorf("formatINR(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}
