//go:build unit

package output

import "testing"

func TestPadRight(t *testing.T) {
	if got, want := padRight("₹10", 5), "₹10  "; got != want {
		t.Errorf("padRight = %q, want %q", got, want)
	}
	if got, want := padRight("toolong", 3), "toolong"; got != want {
		t.Errorf("padRight = %q, want %q", got, want)
	}
}

func TestBoolToString(t *testing.T) {
	if got, want := boolToString(true), "true"; got != want {
		t.Errorf("boolToString(true) = %q, want %q", got, want)
	}
	if got, want := boolToString(false), "false"; got != want {
		t.Errorf("boolToString(false) = %q, want %q", got, want)
	}
}
