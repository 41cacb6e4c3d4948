package crypto

import (
	"bytes"
	"encoding/hex"
	"testing"
)

// testKey uses the secp256k1 scalar 1, whose public key is the generator.
func testKey(t *testing.T) *PrivateKey {
	t.Helper()
	secret := make([]byte, 32)
	secret[31] = 1
	key, err := PrivateKeyFromBytes(secret)
	if err != nil {
		t.Fatalf("PrivateKeyFromBytes() error: %v", err)
	}
	return key
}

func TestPrivateKeyFromBytes_InvalidLength(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"empty", []byte{}},
		{"too short", make([]byte, 16)},
		{"too long", make([]byte, 64)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := PrivateKeyFromBytes(tt.data); err == nil {
				t.Error("expected error for invalid key length")
			}
		})
	}
}

func TestCompressedPublicKey_Generator(t *testing.T) {
	secret := make([]byte, 32)
	secret[31] = 1
	pub, err := CompressedPublicKey(secret)
	if err != nil {
		t.Fatalf("CompressedPublicKey() error: %v", err)
	}
	want := "0279be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798"
	if hex.EncodeToString(pub) != want {
		t.Errorf("CompressedPublicKey(1) = %x, want %s", pub, want)
	}
}

func TestSign_Verify(t *testing.T) {
	key := testKey(t)
	hash := Hash([]byte("test message"))
	sig, err := key.Sign(hash[:])
	if err != nil {
		t.Fatalf("Sign() error: %v", err)
	}
	if len(sig) != 64 {
		t.Errorf("signature length = %d, want 64", len(sig))
	}
	if !VerifySignature(hash[:], sig, key.PublicKey()) {
		t.Error("signature should verify against the correct key and hash")
	}

	sig2, err := key.Sign(hash[:])
	if err != nil {
		t.Fatalf("Sign() error: %v", err)
	}
	if !bytes.Equal(sig, sig2) {
		t.Error("Schnorr signatures should be deterministic (same key + same hash = same sig)")
	}
}

func TestSign_InvalidHashLength(t *testing.T) {
	if _, err := testKey(t).Sign([]byte("too short")); err == nil {
		t.Error("Sign() should reject non-32-byte hash")
	}
}

func TestSignMessage(t *testing.T) {
	key := testKey(t)
	msg := []byte("i own this phrase")
	sig, err := key.SignMessage(msg)
	if err != nil {
		t.Fatalf("SignMessage() error: %v", err)
	}

	if !VerifyMessage(msg, sig, key.PublicKey()) {
		t.Error("message signature should verify")
	}
	if VerifyMessage([]byte("someone else"), sig, key.PublicKey()) {
		t.Error("signature should not verify for another message")
	}

	corrupted := bytes.Clone(sig)
	corrupted[0] ^= 0x01
	if VerifyMessage(msg, corrupted, key.PublicKey()) {
		t.Error("corrupted signature should not verify")
	}
}

func TestVerify_WrongKey(t *testing.T) {
	other := make([]byte, 32)
	other[31] = 2
	key2, err := PrivateKeyFromBytes(other)
	if err != nil {
		t.Fatalf("PrivateKeyFromBytes() error: %v", err)
	}

	hash := Hash([]byte("message"))
	sig, err := testKey(t).Sign(hash[:])
	if err != nil {
		t.Fatalf("Sign() error: %v", err)
	}
	if VerifySignature(hash[:], sig, key2.PublicKey()) {
		t.Error("signature should not verify with wrong public key")
	}
}

func TestVerify_InvalidInputs(t *testing.T) {
	tests := []struct {
		name      string
		hash      []byte
		signature []byte
		publicKey []byte
	}{
		{"nil hash", nil, make([]byte, 64), make([]byte, 33)},
		{"empty signature", make([]byte, 32), nil, make([]byte, 33)},
		{"empty public key", make([]byte, 32), make([]byte, 64), nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if VerifySignature(tt.hash, tt.signature, tt.publicKey) {
				t.Error("VerifySignature() should fail on invalid input")
			}
		})
	}
}
