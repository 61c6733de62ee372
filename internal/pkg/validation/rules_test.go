package validation

import "testing"

func TestValidEmail(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"donor@example.com", true},
		{"first.last+tag@sub.example.org", true},
		{"  padded@example.com  ", true},
		{"", false},
		{"no-at-sign", false},
		{"missing@tld", false},
		{"@example.com", false},
	}

	for _, tt := range tests {
		if got := ValidEmail(tt.value); got != tt.want {
			t.Errorf("ValidEmail(%q) = %v, want %v", tt.value, got, tt.want)
		}
	}
}

func TestValidAmount(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"100", true},
		{"0.50", true},
		{"12345.67", true},
		{"0", false},
		{"0.00", false},
		{"-5", false},
		{"1.234", false},
		{"abc", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := ValidAmount(tt.value); got != tt.want {
			t.Errorf("ValidAmount(%q) = %v, want %v", tt.value, got, tt.want)
		}
	}
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"Hello World", "hello-world"},
		{"  Clean  Water for All  ", "clean-water-for-all"},
		{"Fundraiser 2026!", "fundraiser-2026"},
		{"Déjà Vu", "dj-vu"},
	}

	for _, tt := range tests {
		if got := Slugify(tt.title); got != tt.want {
			t.Errorf("Slugify(%q) = %q, want %q", tt.title, got, tt.want)
		}
	}
}
