package wallet

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"time"

	klog "github.com/Klingon-tech/klingnet-mnemonic/internal/log"
	"github.com/Klingon-tech/klingnet-mnemonic/internal/storage"
	"github.com/Klingon-tech/klingnet-mnemonic/pkg/mnemonic"
)

// Keystore errors.
var (
	ErrWalletExists   = errors.New("wallet already exists")
	ErrWalletNotFound = errors.New("wallet not found")
	ErrInvalidName    = errors.New("invalid wallet name")
	ErrUnlockLimited  = errors.New("too many unlock attempts, try again later")
)

const recordVersion = 1

var walletPrefix = []byte("wallet/")

var validName = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._-]{0,63}$`)

// walletRecord is the stored JSON form of a wallet.
type walletRecord struct {
	Version     int               `json:"version"`
	CreatedAt   time.Time         `json:"created_at"`
	Language    mnemonic.Language `json:"language"`
	WordCount   int               `json:"word_count"`
	Fingerprint string            `json:"fingerprint"`
	Entropy     *Envelope         `json:"entropy"`
}

// WalletInfo is the public metadata of a stored wallet.
type WalletInfo struct {
	Name        string
	CreatedAt   time.Time
	Language    mnemonic.Language
	WordCount   int
	Fingerprint string
}

// Keystore keeps password-encrypted mnemonic entropy in a key-value store.
// Only the entropy is encrypted; the phrase is rebuilt from it on unlock.
type Keystore struct {
	db      *storage.PrefixDB
	limiter *UnlockLimiter
	now     func() time.Time
}

// NewKeystore creates a keystore over db. A nil limiter disables unlock
// rate limiting.
func NewKeystore(db storage.DB, limiter *UnlockLimiter) *Keystore {
	return &Keystore{
		db:      storage.NewPrefixDB(db, walletPrefix),
		limiter: limiter,
		now:     time.Now,
	}
}

// Create encrypts the entropy of m under password and stores it as name.
func (ks *Keystore) Create(name string, m *mnemonic.Mnemonic, password []byte, params EncryptionParams) (*WalletInfo, error) {
	if !validName.MatchString(name) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	if m == nil {
		return nil, fmt.Errorf("%w: nil mnemonic", mnemonic.ErrInvalidArgument)
	}
	// Unlock rebuilds the phrase from entropy, which recomputes the checksum.
	if !m.IsValidChecksum() {
		return nil, fmt.Errorf("%w: checksum mismatch", mnemonic.ErrInvalidFormat)
	}
	exists, err := ks.db.Has([]byte(name))
	if err != nil {
		return nil, fmt.Errorf("check wallet: %w", err)
	}
	if exists {
		return nil, fmt.Errorf("%w: %q", ErrWalletExists, name)
	}

	defer klog.Benchmark("keystore create")()
	entropy := m.Entropy()
	defer zeroBytes(entropy)
	env, err := Encrypt(entropy, password, params)
	if err != nil {
		return nil, fmt.Errorf("encrypt entropy: %w", err)
	}

	rec := &walletRecord{
		Version:     recordVersion,
		CreatedAt:   ks.now().UTC(),
		Language:    m.WordList().Language(),
		WordCount:   int(m.WordCount()),
		Fingerprint: MnemonicFingerprint(m),
		Entropy:     env,
	}
	if err := ks.write(name, rec); err != nil {
		return nil, err
	}

	klog.Wallet.Info().
		Str("wallet", name).
		Str("language", string(rec.Language)).
		Int("words", rec.WordCount).
		Str("fingerprint", rec.Fingerprint).
		Msg("wallet created")
	return rec.info(name), nil
}

// Unlock decrypts wallet name and rebuilds its mnemonic. Each attempt
// consumes a token from the limiter; a successful unlock resets it.
func (ks *Keystore) Unlock(name string, password []byte) (*mnemonic.Mnemonic, error) {
	if !ks.limiter.Allow(name) {
		klog.Wallet.Warn().Str("wallet", name).Msg("unlock rate limited")
		return nil, ErrUnlockLimited
	}

	rec, err := ks.read(name)
	if err != nil {
		return nil, err
	}

	done := klog.Benchmark("keystore unlock")
	entropy, err := Decrypt(rec.Entropy, password)
	done()
	if err != nil {
		klog.Wallet.Warn().Str("wallet", name).Msg("unlock failed")
		return nil, fmt.Errorf("unlock wallet %q: %w", name, err)
	}
	defer zeroBytes(entropy)

	wl, err := mnemonic.WordListFor(rec.Language)
	if err != nil {
		return nil, fmt.Errorf("wallet %q: %w", name, err)
	}
	m, err := mnemonic.FromEntropy(entropy, wl)
	if err != nil {
		return nil, fmt.Errorf("wallet %q: %w", name, err)
	}
	if fp := MnemonicFingerprint(m); fp != rec.Fingerprint {
		return nil, fmt.Errorf("wallet %q: fingerprint mismatch: stored %s, derived %s", name, rec.Fingerprint, fp)
	}

	ks.limiter.Reset(name)
	klog.Wallet.Debug().Str("wallet", name).Msg("wallet unlocked")
	return m, nil
}

// Info returns the metadata of wallet name without decrypting it.
func (ks *Keystore) Info(name string) (*WalletInfo, error) {
	rec, err := ks.read(name)
	if err != nil {
		return nil, err
	}
	return rec.info(name), nil
}

// List returns the metadata of every stored wallet, ordered by name.
func (ks *Keystore) List() ([]WalletInfo, error) {
	var out []WalletInfo
	err := ks.db.ForEach(nil, func(key, value []byte) error {
		rec, err := decodeRecord(value)
		if err != nil {
			return fmt.Errorf("wallet %q: %w", key, err)
		}
		out = append(out, *rec.info(string(key)))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list wallets: %w", err)
	}
	return out, nil
}

// Rename moves wallet from to the unused name to in a single batch.
func (ks *Keystore) Rename(from, to string) error {
	if !validName.MatchString(to) {
		return fmt.Errorf("%w: %q", ErrInvalidName, to)
	}
	raw, err := ks.raw(from)
	if err != nil {
		return err
	}
	exists, err := ks.db.Has([]byte(to))
	if err != nil {
		return fmt.Errorf("check wallet: %w", err)
	}
	if exists {
		return fmt.Errorf("%w: %q", ErrWalletExists, to)
	}

	b := ks.db.NewBatch()
	if err := b.Put([]byte(to), raw); err != nil {
		return fmt.Errorf("rename wallet: %w", err)
	}
	if err := b.Delete([]byte(from)); err != nil {
		return fmt.Errorf("rename wallet: %w", err)
	}
	if err := b.Commit(); err != nil {
		return fmt.Errorf("rename wallet: %w", err)
	}
	klog.Wallet.Info().Str("from", from).Str("to", to).Msg("wallet renamed")
	return nil
}

// Delete removes wallet name.
func (ks *Keystore) Delete(name string) error {
	exists, err := ks.db.Has([]byte(name))
	if err != nil {
		return fmt.Errorf("check wallet: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: %q", ErrWalletNotFound, name)
	}
	if err := ks.db.Delete([]byte(name)); err != nil {
		return fmt.Errorf("delete wallet: %w", err)
	}
	ks.limiter.Reset(name)
	klog.Wallet.Info().Str("wallet", name).Msg("wallet deleted")
	return nil
}

func (ks *Keystore) raw(name string) ([]byte, error) {
	data, err := ks.db.Get([]byte(name))
	if errors.Is(err, storage.ErrNotFound) {
		return nil, fmt.Errorf("%w: %q", ErrWalletNotFound, name)
	}
	if err != nil {
		return nil, fmt.Errorf("read wallet: %w", err)
	}
	return data, nil
}

func (ks *Keystore) read(name string) (*walletRecord, error) {
	data, err := ks.raw(name)
	if err != nil {
		return nil, err
	}
	rec, err := decodeRecord(data)
	if err != nil {
		return nil, fmt.Errorf("wallet %q: %w", name, err)
	}
	return rec, nil
}

func (ks *Keystore) write(name string, rec *walletRecord) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshal wallet: %w", err)
	}
	if err := ks.db.Put([]byte(name), data); err != nil {
		return fmt.Errorf("write wallet: %w", err)
	}
	return nil
}

func decodeRecord(data []byte) (*walletRecord, error) {
	var rec walletRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("parse wallet: %w", err)
	}
	if rec.Version != recordVersion {
		return nil, fmt.Errorf("unsupported wallet version: %d", rec.Version)
	}
	return &rec, nil
}

func (r *walletRecord) info(name string) *WalletInfo {
	return &WalletInfo{
		Name:        name,
		CreatedAt:   r.CreatedAt,
		Language:    r.Language,
		WordCount:   r.WordCount,
		Fingerprint: r.Fingerprint,
	}
}
