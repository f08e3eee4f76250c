package utils

import "testing"

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		password string
		want     bool
	}{
		{"pass1!", true},
		{"longer7password$", true},
		{"p1!", false},        // too short
		{"password!", false},  // no number
		{"password12", false}, // no special character
		{"", false},
	}
	for _, tc := range tests {
		if got := ValidatePassword(tc.password); got != tc.want {
			t.Errorf("ValidatePassword(%q) = %v, want %v", tc.password, got, tc.want)
		}
	}
}
