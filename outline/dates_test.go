package outline

import "testing"

func TestIsDateLine(t *testing.T) {
	tests := []struct {
		text string
		want bool
	}{
		{"12 March 2024", true},
		{"1 JULY 1999", true},
		{"  3 April 2020  ", true},
		{"12 March", false},
		{"March 2024", false},
		{"Meeting on 12 March 2024", false},
		{"Introduction", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := isDateLine(tt.text); got != tt.want {
			t.Errorf("isDateLine(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
}

func TestIsDateLike(t *testing.T) {
	tests := []struct {
		name string
		text string
		want bool
	}{
		{"two dates only", "12 MARCH 2024 15 APRIL 2024", true},
		{"mixed case dates", "12 March 2024 15 April 2024", true},
		{"three dates", "1 JAN 2024 2 FEB 2024 3 MAR 2024", true},
		{"single date", "12 MARCH 2024", false},
		{"dates with much prose", "The review covers 12 MARCH 2024 and 15 APRIL 2024 in considerable detail across regions", false},
		{"no dates", "Quarterly review of operations", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isDateLike(tt.text); got != tt.want {
				t.Errorf("isDateLike(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestIsPageMarker(t *testing.T) {
	tests := []struct {
		text string
		want bool
	}{
		{"Page 3 of 12", true},
		{"Page 1 of 1", true},
		{"Page 3", false},
		{"page 3 of 12", false},
		{"Overview", false},
	}

	for _, tt := range tests {
		if got := isPageMarker(tt.text); got != tt.want {
			t.Errorf("isPageMarker(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
}
