package gas

import "testing"

func TestLongRequireMessageFlagsLongString(t *testing.T) {
	n := drafts(t, LongRequireMessage{},
		`contract X { function f() public { require(ok, "this message is deliberately far longer than the threshold"); } }`+"\n")
	if n != 1 {
		t.Fatalf("expected 1 issue, got %d", n)
	}
}

func TestLongRequireMessageIgnoresShortString(t *testing.T) {
	n := drafts(t, LongRequireMessage{},
		`contract X { function f() public { require(ok, "nope"); } }`+"\n")
	if n != 0 {
		t.Fatalf("expected 0 issues, got %d", n)
	}
}
