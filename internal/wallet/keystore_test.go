package wallet

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/Klingon-tech/klingnet-mnemonic/internal/storage"
	"github.com/Klingon-tech/klingnet-mnemonic/pkg/mnemonic"
)

func testKeystore(t *testing.T) (*Keystore, storage.DB) {
	t.Helper()
	db := storage.NewMemory()
	return NewKeystore(db, nil), db
}

func TestKeystore_CreateAndUnlock(t *testing.T) {
	ks, _ := testKeystore(t)
	m := testMnemonic(t)
	password := []byte("test-password")

	info, err := ks.Create("mywallet", m, password, fastParams())
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	if info.Language != mnemonic.LanguageEnglish || info.WordCount != 12 {
		t.Errorf("Create() info = %+v, want english/12", info)
	}
	if info.Fingerprint != MnemonicFingerprint(m) {
		t.Errorf("Fingerprint = %s, want %s", info.Fingerprint, MnemonicFingerprint(m))
	}

	unlocked, err := ks.Unlock("mywallet", password)
	if err != nil {
		t.Fatalf("Unlock() error: %v", err)
	}
	if unlocked.String() != m.String() {
		t.Errorf("Unlock() phrase = %q, want %q", unlocked.String(), m.String())
	}
	if !bytes.Equal(unlocked.DeriveSeed("TREZOR"), m.DeriveSeed("TREZOR")) {
		t.Error("unlocked mnemonic should derive the same seed")
	}
}

func TestKeystore_PreservesLanguage(t *testing.T) {
	ks, _ := testKeystore(t)
	m, err := mnemonic.Generate(mnemonic.Japanese, mnemonic.Words24)
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	if _, err := ks.Create("jp", m, []byte("pw"), fastParams()); err != nil {
		t.Fatalf("Create() error: %v", err)
	}

	unlocked, err := ks.Unlock("jp", []byte("pw"))
	if err != nil {
		t.Fatalf("Unlock() error: %v", err)
	}
	if unlocked.WordList() != mnemonic.Japanese {
		t.Errorf("unlocked language = %s, want japanese", unlocked.WordList())
	}
	if unlocked.String() != m.String() {
		t.Error("unlocked phrase should match the stored one")
	}
}

func TestKeystore_DoesNotStoreSecretsInClear(t *testing.T) {
	ks, db := testKeystore(t)
	m := testMnemonic(t)
	if _, err := ks.Create("w", m, []byte("pw"), fastParams()); err != nil {
		t.Fatalf("Create() error: %v", err)
	}

	raw, err := db.Get([]byte("wallet/w"))
	if err != nil {
		t.Fatalf("raw Get() error: %v", err)
	}
	if bytes.Contains(raw, []byte("abandon")) {
		t.Error("stored record contains the phrase")
	}

	var rec walletRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		t.Fatalf("stored record is not JSON: %v", err)
	}
	if rec.Entropy == nil || rec.Entropy.KDF != "argon2id" {
		t.Errorf("stored envelope = %+v, want argon2id", rec.Entropy)
	}
}

func TestKeystore_CreateErrors(t *testing.T) {
	ks, _ := testKeystore(t)
	m := testMnemonic(t)

	if _, err := ks.Create("dup", m, []byte("pass"), fastParams()); err != nil {
		t.Fatalf("first Create() error: %v", err)
	}
	badChecksum, err := mnemonic.Parse(strings.TrimSpace(strings.Repeat("abandon ", 12)), mnemonic.English)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}

	tests := []struct {
		name   string
		wallet string
		m      *mnemonic.Mnemonic
		want   error
	}{
		{"duplicate", "dup", m, ErrWalletExists},
		{"empty name", "", m, ErrInvalidName},
		{"path in name", "../escape", m, ErrInvalidName},
		{"nil mnemonic", "fresh", nil, mnemonic.ErrInvalidArgument},
		{"bad checksum", "fresh", badChecksum, mnemonic.ErrInvalidFormat},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ks.Create(tt.wallet, tt.m, []byte("pass"), fastParams()); !errors.Is(err, tt.want) {
				t.Errorf("Create() error = %v, want %v", err, tt.want)
			}
		})
	}

	if _, err := ks.Info("fresh"); !errors.Is(err, ErrWalletNotFound) {
		t.Errorf("Info() after rejected Create error = %v, want ErrWalletNotFound", err)
	}
}

func TestKeystore_UnlockErrors(t *testing.T) {
	ks, _ := testKeystore(t)
	if _, err := ks.Create("w", testMnemonic(t), []byte("correct"), fastParams()); err != nil {
		t.Fatalf("Create() error: %v", err)
	}

	if _, err := ks.Unlock("w", []byte("wrong")); !errors.Is(err, ErrAuthFailed) {
		t.Errorf("Unlock(wrong password) error = %v, want ErrAuthFailed", err)
	}
	if _, err := ks.Unlock("nonexistent", []byte("pass")); !errors.Is(err, ErrWalletNotFound) {
		t.Errorf("Unlock(nonexistent) error = %v, want ErrWalletNotFound", err)
	}
}

func TestKeystore_UnlockRateLimited(t *testing.T) {
	limiter := NewUnlockLimiter(0.001, 3)
	now := time.Unix(1700000000, 0)
	limiter.now = func() time.Time { return now }

	ks := NewKeystore(storage.NewMemory(), limiter)
	if _, err := ks.Create("w", testMnemonic(t), []byte("correct"), fastParams()); err != nil {
		t.Fatalf("Create() error: %v", err)
	}

	for i := 0; i < 3; i++ {
		if _, err := ks.Unlock("w", []byte("wrong")); !errors.Is(err, ErrAuthFailed) {
			t.Fatalf("attempt %d error = %v, want ErrAuthFailed", i, err)
		}
	}
	if _, err := ks.Unlock("w", []byte("correct")); !errors.Is(err, ErrUnlockLimited) {
		t.Fatalf("Unlock() after burst error = %v, want ErrUnlockLimited", err)
	}

	// Tokens refill over time; success then clears the history.
	now = now.Add(time.Hour)
	if _, err := ks.Unlock("w", []byte("correct")); err != nil {
		t.Fatalf("Unlock() after refill error: %v", err)
	}
	for i := 0; i < 3; i++ {
		if _, err := ks.Unlock("w", []byte("correct")); err != nil {
			t.Fatalf("Unlock() after reset, attempt %d: %v", i, err)
		}
	}
}

func TestKeystore_ListAndInfo(t *testing.T) {
	ks, _ := testKeystore(t)

	list, err := ks.List()
	if err != nil {
		t.Fatalf("List() error: %v", err)
	}
	if len(list) != 0 {
		t.Errorf("empty keystore List() = %d items, want 0", len(list))
	}

	for _, name := range []string{"charlie", "alpha", "bravo"} {
		if _, err := ks.Create(name, testMnemonic(t), []byte("pw"), fastParams()); err != nil {
			t.Fatalf("Create(%s) error: %v", name, err)
		}
	}

	list, err = ks.List()
	if err != nil {
		t.Fatalf("List() error: %v", err)
	}
	if len(list) != 3 || list[0].Name != "alpha" || list[2].Name != "charlie" {
		t.Errorf("List() = %+v, want alpha, bravo, charlie", list)
	}

	info, err := ks.Info("bravo")
	if err != nil {
		t.Fatalf("Info() error: %v", err)
	}
	if info.Name != "bravo" || info.WordCount != 12 || info.CreatedAt.IsZero() {
		t.Errorf("Info() = %+v", info)
	}
	if _, err := ks.Info("zulu"); !errors.Is(err, ErrWalletNotFound) {
		t.Errorf("Info(zulu) error = %v, want ErrWalletNotFound", err)
	}
}

func TestKeystore_Rename(t *testing.T) {
	ks, _ := testKeystore(t)
	m := testMnemonic(t)
	ks.Create("old", m, []byte("pw"), fastParams())
	ks.Create("taken", m, []byte("pw"), fastParams())

	if err := ks.Rename("old", "taken"); !errors.Is(err, ErrWalletExists) {
		t.Errorf("Rename() onto existing error = %v, want ErrWalletExists", err)
	}
	if err := ks.Rename("missing", "new"); !errors.Is(err, ErrWalletNotFound) {
		t.Errorf("Rename() missing error = %v, want ErrWalletNotFound", err)
	}
	if err := ks.Rename("old", "new"); err != nil {
		t.Fatalf("Rename() error: %v", err)
	}

	if _, err := ks.Info("old"); !errors.Is(err, ErrWalletNotFound) {
		t.Error("old name should be gone after Rename()")
	}
	unlocked, err := ks.Unlock("new", []byte("pw"))
	if err != nil {
		t.Fatalf("Unlock(new) error: %v", err)
	}
	if unlocked.String() != m.String() {
		t.Error("renamed wallet should unlock to the same phrase")
	}
}

func TestKeystore_Delete(t *testing.T) {
	ks, _ := testKeystore(t)
	ks.Create("todelete", testMnemonic(t), []byte("pass"), fastParams())

	if err := ks.Delete("todelete"); err != nil {
		t.Fatalf("Delete() error: %v", err)
	}
	if _, err := ks.Unlock("todelete", []byte("pass")); !errors.Is(err, ErrWalletNotFound) {
		t.Errorf("Unlock() after delete error = %v, want ErrWalletNotFound", err)
	}
	if err := ks.Delete("todelete"); !errors.Is(err, ErrWalletNotFound) {
		t.Errorf("second Delete() error = %v, want ErrWalletNotFound", err)
	}
}

func TestKeystore_Badger(t *testing.T) {
	dir := t.TempDir()
	m := testMnemonic(t)

	db, err := storage.NewBadger(dir)
	if err != nil {
		t.Fatalf("NewBadger() error: %v", err)
	}
	if _, err := NewKeystore(db, nil).Create("persisted", m, []byte("pw"), fastParams()); err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	db.Close()

	db, err = storage.NewBadger(dir)
	if err != nil {
		t.Fatalf("NewBadger() reopen error: %v", err)
	}
	defer db.Close()

	unlocked, err := NewKeystore(db, nil).Unlock("persisted", []byte("pw"))
	if err != nil {
		t.Fatalf("Unlock() after reopen error: %v", err)
	}
	if unlocked.String() != m.String() {
		t.Error("persisted wallet should unlock to the same phrase")
	}
}

func TestUnlockLimiter_NilAllows(t *testing.T) {
	var l *UnlockLimiter
	for i := 0; i < 100; i++ {
		if !l.Allow("x") {
			t.Fatal("nil limiter should allow every attempt")
		}
	}
	l.Reset("x")

	if NewUnlockLimiter(0, 5) != nil || NewUnlockLimiter(1, 0) != nil {
		t.Error("NewUnlockLimiter() with non-positive args should return nil")
	}
}

func TestUnlockLimiter_PerWallet(t *testing.T) {
	l := NewUnlockLimiter(0.001, 1)
	now := time.Unix(1700000000, 0)
	l.now = func() time.Time { return now }

	if !l.Allow("a") || l.Allow("a") {
		t.Fatal("wallet a should get exactly one attempt")
	}
	if !l.Allow("b") {
		t.Error("wallet b should have its own budget")
	}
}
