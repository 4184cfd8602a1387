package core

import "testing"

func TestKeyLatchFirstKeyWins(t *testing.T) {
	var l KeyLatch

	l.Push(KeyUp)
	l.Push(KeyLeft)
	l.Push(KeyQuit)

	if got := l.Next(); got != KeyUp {
		t.Errorf("Next() = %v, expected Up", got)
	}
	if got := l.Next(); got != KeyNone {
		t.Errorf("second Next() = %v, expected None (burst should be dropped)", got)
	}
}

func TestKeyLatchEmpty(t *testing.T) {
	var l KeyLatch

	if got := l.Next(); got != KeyNone {
		t.Errorf("Next() on empty latch = %v, expected None", got)
	}

	l.Push(KeyNone)
	l.Push(KeyDown)
	if got := l.Next(); got != KeyDown {
		t.Errorf("Next() = %v, expected Down (KeyNone should not fill the latch)", got)
	}
}

func TestKeyLatchRefillsAfterNext(t *testing.T) {
	var l KeyLatch

	l.Push(KeyDown)
	l.Next()
	l.Push(KeyPause)

	if got := l.Next(); got != KeyPause {
		t.Errorf("Next() = %v, expected Pause", got)
	}
}

func TestKeyIsDirection(t *testing.T) {
	tests := []struct {
		key  Key
		want bool
	}{
		{KeyNone, false},
		{KeyUp, true},
		{KeyDown, true},
		{KeyLeft, true},
		{KeyRight, true},
		{KeyPause, false},
		{KeyQuit, false},
	}
	for _, tc := range tests {
		if got := tc.key.IsDirection(); got != tc.want {
			t.Errorf("%v.IsDirection() = %v, expected %v", tc.key, got, tc.want)
		}
	}
}

func TestKeyString(t *testing.T) {
	if KeyPause.String() != "Pause" {
		t.Errorf("KeyPause.String() = %q", KeyPause.String())
	}
	if Key(99).String() != "Unknown" {
		t.Errorf("Key(99).String() = %q", Key(99).String())
	}
}
