package cmdshared

import "testing"

func TestParseYesNo(t *testing.T) {
	for answer, expected := range map[string]bool{
		"":      true,
		"\n":    true,
		"y\n":   true,
		"Yes":   true,
		"n\n":   false,
		" No ":  false,
		"nope":  false,
		"maybe": true,
	} {
		if got := parseYesNo(answer); got != expected {
			t.Errorf("parseYesNo(%q) = %v, expected %v", answer, got, expected)
		}
	}
}
