package security

import "testing"

func TestReentrancyFlagsCallThenWrite(t *testing.T) {
	n := drafts(t, ReentrancyNoEth{},
		`contract X {
			function withdraw() public {
				msg.sender.call(amount);
				balance = 0;
			}
		}`+"\n")
	if n != 1 {
		t.Fatalf("expected 1 issue, got %d", n)
	}
}

func TestReentrancyCleanOrderIsFine(t *testing.T) {
	n := drafts(t, ReentrancyNoEth{},
		`contract X {
			function withdraw() public {
				balance = 0;
				msg.sender.call(amount);
			}
		}`+"\n")
	if n != 0 {
		t.Fatalf("expected 0 issues, got %d", n)
	}
}
