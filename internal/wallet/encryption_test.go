package wallet

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"
)

// fastParams returns low-cost Argon2 params for fast tests.
func fastParams() EncryptionParams {
	return EncryptionParams{
		Memory:      64, // 64 KiB (minimal)
		Iterations:  1,
		Parallelism: 1,
	}
}

func TestEncryptDecrypt_Roundtrip(t *testing.T) {
	tests := []struct {
		name      string
		plaintext []byte
	}{
		{"entropy", bytes.Repeat([]byte{0x7f}, 32)},
		{"empty", []byte{}},
		{"large", bytes.Repeat([]byte{1, 2, 3, 4}, 2500)},
	}
	password := []byte("strong-password-123")

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env, err := Encrypt(tt.plaintext, password, fastParams())
			if err != nil {
				t.Fatalf("Encrypt() error: %v", err)
			}
			decrypted, err := Decrypt(env, password)
			if err != nil {
				t.Fatalf("Decrypt() error: %v", err)
			}
			if !bytes.Equal(decrypted, tt.plaintext) {
				t.Errorf("decrypted = %x, want %x", decrypted, tt.plaintext)
			}
		})
	}
}

func TestDecrypt_WrongPassword(t *testing.T) {
	env, err := Encrypt([]byte("secret data"), []byte("correct"), fastParams())
	if err != nil {
		t.Fatalf("Encrypt() error: %v", err)
	}
	if _, err := Decrypt(env, []byte("wrong")); !errors.Is(err, ErrAuthFailed) {
		t.Errorf("Decrypt() error = %v, want ErrAuthFailed", err)
	}
}

func TestDecrypt_CorruptedCiphertext(t *testing.T) {
	env, err := Encrypt([]byte("data"), []byte("pass"), fastParams())
	if err != nil {
		t.Fatalf("Encrypt() error: %v", err)
	}

	// Corrupt the last byte (part of auth tag)
	env.Ciphertext[len(env.Ciphertext)-1] ^= 0xFF

	if _, err := Decrypt(env, []byte("pass")); !errors.Is(err, ErrAuthFailed) {
		t.Errorf("Decrypt() error = %v, want ErrAuthFailed", err)
	}
}

func TestDecrypt_InvalidEnvelope(t *testing.T) {
	good, err := Encrypt([]byte("data"), []byte("pass"), fastParams())
	if err != nil {
		t.Fatalf("Encrypt() error: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(e *Envelope)
	}{
		{"version", func(e *Envelope) { e.Version = 2 }},
		{"kdf", func(e *Envelope) { e.KDF = "scrypt" }},
		{"short salt", func(e *Envelope) { e.Salt = e.Salt[:8] }},
		{"short nonce", func(e *Envelope) { e.Nonce = e.Nonce[:12] }},
		{"zero memory", func(e *Envelope) { e.KDFMemoryKB = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := *good
			tt.mutate(&env)
			if _, err := Decrypt(&env, []byte("pass")); !errors.Is(err, ErrInvalidEnvelope) {
				t.Errorf("Decrypt() error = %v, want ErrInvalidEnvelope", err)
			}
		})
	}

	if _, err := Decrypt(nil, []byte("pass")); !errors.Is(err, ErrInvalidEnvelope) {
		t.Errorf("Decrypt(nil) error = %v, want ErrInvalidEnvelope", err)
	}
}

func TestEncrypt_DifferentEachTime(t *testing.T) {
	plaintext := []byte("same data")
	password := []byte("same pass")

	env1, err := Encrypt(plaintext, password, fastParams())
	if err != nil {
		t.Fatalf("Encrypt() error: %v", err)
	}
	env2, err := Encrypt(plaintext, password, fastParams())
	if err != nil {
		t.Fatalf("Encrypt() error: %v", err)
	}

	if bytes.Equal(env1.Salt, env2.Salt) || bytes.Equal(env1.Nonce, env2.Nonce) {
		t.Error("salt and nonce should be random per encryption")
	}
	if bytes.Equal(env1.Ciphertext, env2.Ciphertext) {
		t.Error("encrypting same data twice should produce different ciphertext")
	}
}

func TestEnvelope_JSONRoundTrip(t *testing.T) {
	params := fastParams()
	env, err := Encrypt([]byte("entropy"), []byte("pass"), params)
	if err != nil {
		t.Fatalf("Encrypt() error: %v", err)
	}
	if env.KDF != "argon2id" || env.KDFMemoryKB != params.Memory || env.KDFTime != params.Iterations {
		t.Errorf("envelope params = %+v, want %+v", env, params)
	}

	raw, err := json.Marshal(env)
	if err != nil {
		t.Fatalf("json.Marshal() error: %v", err)
	}
	var decoded Envelope
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("json.Unmarshal() error: %v", err)
	}
	plain, err := Decrypt(&decoded, []byte("pass"))
	if err != nil {
		t.Fatalf("Decrypt() error: %v", err)
	}
	if string(plain) != "entropy" {
		t.Errorf("decrypted = %q, want entropy", plain)
	}
}

func TestEncrypt_InvalidParams(t *testing.T) {
	if _, err := Encrypt([]byte("x"), []byte("p"), EncryptionParams{}); err == nil {
		t.Error("Encrypt() with zero params should fail")
	}
}

func TestDefaultParams(t *testing.T) {
	p := DefaultParams()
	if p.Memory != 64*1024 {
		t.Errorf("Memory = %d, want %d", p.Memory, 64*1024)
	}
	if p.Iterations != 3 {
		t.Errorf("Iterations = %d, want 3", p.Iterations)
	}
	if p.Parallelism != 4 {
		t.Errorf("Parallelism = %d, want 4", p.Parallelism)
	}
	if err := p.Validate(); err != nil {
		t.Errorf("Validate() error: %v", err)
	}
}
