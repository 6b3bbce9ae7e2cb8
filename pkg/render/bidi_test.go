package render

import "testing"

func TestVisualOrder(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"", ""},
		{"SPIN", "SPIN"},
		{"10% off", "10% off"},
		{"شحن مجاني", "يناجم نحش"},
		{"حاول", "لواح"},
	}
	for _, tt := range tests {
		if got := VisualOrder(tt.in); got != tt.want {
			t.Errorf("VisualOrder(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
