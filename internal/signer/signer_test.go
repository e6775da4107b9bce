package signer

import (
	"math/big"
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/common/hexutil"
)

// well-known development key and mnemonic, never used in production
const (
	testKey      = "ac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"
	testMnemonic = "test test test test test test test test test test test junk"
	testAddr0    = "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266"
	testAddr1    = "0x70997970C51812dc3A010C7d01b50e0d17dc79C8"
	testPlayer   = "0x2222222222222222222222222222222222222222"
)

func TestNewSignerAddress(t *testing.T) {
	s, err := New(testKey)
	if err != nil {
		t.Fatal(err)
	}
	if got := s.Address().Hex(); got != testAddr0 {
		t.Errorf("expected %s, got %s", testAddr0, got)
	}

	prefixed, err := New("0x" + testKey)
	if err != nil {
		t.Fatal(err)
	}
	if prefixed.Address() != s.Address() {
		t.Error("0x prefix should not change the key")
	}
}

func TestNewSignerRejectsGarbage(t *testing.T) {
	if _, err := New("not-a-key"); err == nil {
		t.Error("expected error for malformed key")
	}
}

func TestFromMnemonic(t *testing.T) {
	s, err := FromMnemonic(testMnemonic, 0)
	if err != nil {
		t.Fatal(err)
	}
	if got := s.Address().Hex(); got != testAddr0 {
		t.Errorf("index 0: expected %s, got %s", testAddr0, got)
	}

	s1, err := FromMnemonic(testMnemonic, 1)
	if err != nil {
		t.Fatal(err)
	}
	if got := s1.Address().Hex(); got != testAddr1 {
		t.Errorf("index 1: expected %s, got %s", testAddr1, got)
	}
}

func TestFromMnemonicRejectsInvalidPhrase(t *testing.T) {
	if _, err := FromMnemonic("banana banana banana", 0); err == nil {
		t.Error("expected error for invalid mnemonic")
	}
}

func TestAttestAndVerify(t *testing.T) {
	s, err := New(testKey)
	if err != nil {
		t.Fatal(err)
	}

	sig, err := s.Attest("7", testPlayer, big.NewInt(12))
	if err != nil {
		t.Fatal(err)
	}

	if err := Verify(s.Address(), "7", testPlayer, big.NewInt(12), sig); err != nil {
		t.Errorf("signature should verify: %v", err)
	}

	// any change to the bound triple must break verification
	if err := Verify(s.Address(), "8", testPlayer, big.NewInt(12), sig); err == nil {
		t.Error("different gameId must not verify")
	}
	if err := Verify(s.Address(), "7", testPlayer, big.NewInt(13), sig); err == nil {
		t.Error("different payout must not verify")
	}

	other, err := FromMnemonic(testMnemonic, 1)
	if err != nil {
		t.Fatal(err)
	}
	if err := Verify(other.Address(), "7", testPlayer, big.NewInt(12), sig); err == nil {
		t.Error("signature must not verify against another oracle")
	}
}

func TestAttestDeterministic(t *testing.T) {
	s, err := New(testKey)
	if err != nil {
		t.Fatal(err)
	}

	a, err := s.Attest("7", testPlayer, big.NewInt(12))
	if err != nil {
		t.Fatal(err)
	}
	b, err := s.Attest("7", testPlayer, big.NewInt(12))
	if err != nil {
		t.Fatal(err)
	}
	if a != b {
		t.Error("same triple must yield the same signature")
	}
}

func TestAttestSignatureShape(t *testing.T) {
	s, err := New(testKey)
	if err != nil {
		t.Fatal(err)
	}

	sig, err := s.Attest("1", testPlayer, big.NewInt(10))
	if err != nil {
		t.Fatal(err)
	}

	if !strings.HasPrefix(sig, "0x") {
		t.Errorf("expected hex encoding, got %q", sig)
	}

	raw, err := hexutil.Decode(sig)
	if err != nil {
		t.Fatal(err)
	}
	if len(raw) != 65 {
		t.Fatalf("expected 65-byte signature, got %d", len(raw))
	}
	if v := raw[64]; v != 27 && v != 28 {
		t.Errorf("expected v in {27,28}, got %d", v)
	}
}

func TestAttestRejectsUnsignableInput(t *testing.T) {
	s, err := New(testKey)
	if err != nil {
		t.Fatal(err)
	}

	cases := []struct {
		name   string
		gameID string
		player string
		payout *big.Int
	}{
		{"zero payout", "7", testPlayer, big.NewInt(0)},
		{"negative payout", "7", testPlayer, big.NewInt(-5)},
		{"nil payout", "7", testPlayer, nil},
		{"non-numeric gameId", "abc", testPlayer, big.NewInt(5)},
		{"negative gameId", "-7", testPlayer, big.NewInt(5)},
		{"bad address", "7", "bob", big.NewInt(5)},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := s.Attest(tt.gameID, tt.player, tt.payout); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestVerifyRejectsMalformedSignature(t *testing.T) {
	s, err := New(testKey)
	if err != nil {
		t.Fatal(err)
	}

	for _, sig := range []string{"", "0x", "0x1234", "zzzz"} {
		if err := Verify(s.Address(), "7", testPlayer, big.NewInt(12), sig); err == nil {
			t.Errorf("signature %q should not verify", sig)
		}
	}
}
