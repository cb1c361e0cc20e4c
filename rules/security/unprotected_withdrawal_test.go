package security

import "testing"

func TestUnprotectedWithdrawalFlagsPublicWithdraw(t *testing.T) {
	n := drafts(t, UnprotectedWithdrawal{},
		`contract X { function withdraw() public { msg.sender.call(amount); } }`+"\n")
	if n != 1 {
		t.Fatalf("expected 1 issue, got %d", n)
	}
}

func TestUnprotectedWithdrawalIgnoredWhenGuarded(t *testing.T) {
	n := drafts(t, UnprotectedWithdrawal{},
		`contract X { function withdraw() public onlyOwner { msg.sender.call(amount); } }`+"\n")
	if n != 0 {
		t.Fatalf("expected 0 issues, got %d", n)
	}
}
