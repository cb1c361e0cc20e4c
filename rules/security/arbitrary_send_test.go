package security

import "testing"

func TestArbitrarySendFlagsParameterRecipient(t *testing.T) {
	n := drafts(t, ArbitrarySend{},
		`contract X { function pay(recipient) public { recipient.transfer(amount); } }`+"\n")
	if n != 1 {
		t.Fatalf("expected 1 issue, got %d", n)
	}
}

func TestArbitrarySendIgnoresMsgSender(t *testing.T) {
	n := drafts(t, ArbitrarySend{},
		`contract X { function pay() public { msg.sender.transfer(amount); } }`+"\n")
	if n != 0 {
		t.Fatalf("expected 0 issues, got %d", n)
	}
}
