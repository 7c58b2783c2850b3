package galaswap

import (
	"strings"
	"testing"
)

// Well-known throwaway test key; never funded.
const testPrivateKey = "ac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"

func TestNewSigner_DerivesWalletAddress(t *testing.T) {
	signer, err := NewSigner(testPrivateKey)
	if err != nil {
		t.Fatal(err)
	}

	want := "eth|f39Fd6e51aad88F6F4ce6aB8827279cffFb92266"
	if got := signer.Address(); got != want {
		t.Errorf("Address() = %q, want %q", got, want)
	}
}

func TestNewSigner_AcceptsHexPrefix(t *testing.T) {
	plain, err := NewSigner(testPrivateKey)
	if err != nil {
		t.Fatal(err)
	}
	prefixed, err := NewSigner("0x" + testPrivateKey)
	if err != nil {
		t.Fatal(err)
	}
	if plain.Address() != prefixed.Address() {
		t.Errorf("0x prefix changed the derived address: %q vs %q", plain.Address(), prefixed.Address())
	}
}

func TestNewSigner_RejectsBadKeys(t *testing.T) {
	for _, key := range []string{"", "zzzz", "0x1234"} {
		if _, err := NewSigner(key); err == nil {
			t.Errorf("NewSigner(%q) expected error", key)
		}
	}
}

func TestSigner_Sign(t *testing.T) {
	signer, err := NewSigner(testPrivateKey)
	if err != nil {
		t.Fatal(err)
	}

	dto := map[string]string{"recipient": signer.Address()}

	sig, err := signer.Sign(dto)
	if err != nil {
		t.Fatal(err)
	}

	// 65-byte recoverable signature, hex encoded with a 0x prefix.
	if !strings.HasPrefix(sig, "0x") || len(sig) != 132 {
		t.Errorf("signature = %q, want 0x-prefixed 65-byte hex", sig)
	}

	// Signing the same payload with the same key is deterministic.
	again, err := signer.Sign(dto)
	if err != nil {
		t.Fatal(err)
	}
	if sig != again {
		t.Error("signature is not deterministic for identical payloads")
	}
}
