package validators

import "testing"

func TestIsValidURL(t *testing.T) {
	valid := []string{
		"https://meet.example.com/room/42",
		"http://zoom.example.com/j/123?pwd=abc",
		"  https://meet.example.com/x  ",
	}
	for _, u := range valid {
		if !IsValidURL(u) {
			t.Errorf("expected %q to be valid", u)
		}
	}

	invalid := []string{
		"",
		"   ",
		"not a url",
		"meet.example.com/room",
		"ftp://files.example.com/session",
		"https://",
		"javascript:alert(1)",
	}
	for _, u := range invalid {
		if IsValidURL(u) {
			t.Errorf("expected %q to be rejected", u)
		}
	}
}

func TestIsEmailDomainValidShape(t *testing.T) {
	// Shape failures short-circuit before any DNS lookup.
	for _, e := range []string{"", "no-at-sign", "trailing@"} {
		if IsEmailDomainValid(e) {
			t.Errorf("expected %q to be rejected", e)
		}
	}
}
