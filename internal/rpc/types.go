package rpc

import "time"

// JSON-RPC 2.0 error codes.
const (
	CodeParseError     = -32700
	CodeInvalidRequest = -32600
	CodeMethodNotFound = -32601
	CodeInvalidParams  = -32602
	CodeInternalError  = -32603
	CodeNotFound       = -32000
	CodeUnauthorized   = -32001
	CodeRateLimited    = -32002
)

// Request is a JSON-RPC 2.0 request.
type Request struct {
	JSONRPC string      `json:"jsonrpc"`
	Method  string      `json:"method"`
	Params  interface{} `json:"params"`
	ID      interface{} `json:"id"`
}

// Response is a JSON-RPC 2.0 response.
type Response struct {
	JSONRPC string      `json:"jsonrpc"`
	Result  interface{} `json:"result,omitempty"`
	Error   *Error      `json:"error,omitempty"`
	ID      interface{} `json:"id"`
}

// Error is a JSON-RPC 2.0 error object.
type Error struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// ── Mnemonic param types ────────────────────────────────────────────────

// GenerateParam is used by mnemonic_generate. Zero values select the
// server defaults.
type GenerateParam struct {
	Words    int    `json:"words,omitempty"`
	Language string `json:"language,omitempty"`
}

// PhraseParam is used by endpoints that take a single phrase. An empty
// language auto-detects.
type PhraseParam struct {
	Mnemonic string `json:"mnemonic"`
	Language string `json:"language,omitempty"`
}

// FromEntropyParam is used by mnemonic_fromEntropy.
type FromEntropyParam struct {
	Entropy  string `json:"entropy"` // hex
	Language string `json:"language,omitempty"`
}

// DeriveParam is used by key_derive.
type DeriveParam struct {
	Mnemonic   string `json:"mnemonic"`
	Passphrase string `json:"passphrase,omitempty"`
	Path       string `json:"path,omitempty"` // default: m/44'/8888'/0'
}

// VerifyParam is used by message_verify.
type VerifyParam struct {
	PublicKey string `json:"public_key"` // hex, compressed
	Signature string `json:"signature"`  // hex
	Message   string `json:"message"`
}

// ── Mnemonic result types ───────────────────────────────────────────────

// MnemonicResult describes a phrase.
type MnemonicResult struct {
	Mnemonic    string `json:"mnemonic,omitempty"`
	Language    string `json:"language"`
	Words       int    `json:"words"`
	EntropyBits int    `json:"entropy_bits"`
	Checksum    bool   `json:"checksum_valid"`
	Fingerprint string `json:"fingerprint,omitempty"`
}

// EntropyResult is returned by mnemonic_toEntropy.
type EntropyResult struct {
	Entropy string `json:"entropy"`
}

// LanguagesResult is returned by mnemonic_languages.
type LanguagesResult struct {
	Languages []string `json:"languages"`
}

// KeyResult is a derived public key. Private material is never returned.
type KeyResult struct {
	Path        string `json:"path"`
	PublicKey   string `json:"public_key"`
	Fingerprint string `json:"fingerprint"`
	XPub        string `json:"xpub"`
}

// VerifyResult is returned by message_verify.
type VerifyResult struct {
	Valid bool `json:"valid"`
}

// ── Wallet param types ──────────────────────────────────────────────────

// WalletCreateParam is used by wallet_create.
type WalletCreateParam struct {
	Name     string `json:"name"`
	Password string `json:"password"`
	Words    int    `json:"words,omitempty"`
	Language string `json:"language,omitempty"`
}

// WalletImportParam is used by wallet_import.
type WalletImportParam struct {
	Name     string `json:"name"`
	Password string `json:"password"`
	Mnemonic string `json:"mnemonic"`
}

// WalletNameParam is used by wallet_info.
type WalletNameParam struct {
	Name string `json:"name"`
}

// WalletUnlockParam is used by endpoints that need wallet name + password.
type WalletUnlockParam struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

// WalletRenameParam is used by wallet_rename.
type WalletRenameParam struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// WalletSignParam is used by wallet_sign.
type WalletSignParam struct {
	Name       string `json:"name"`
	Password   string `json:"password"`
	Passphrase string `json:"passphrase,omitempty"`
	Path       string `json:"path,omitempty"`
	Message    string `json:"message"`
}

// ── Wallet result types ─────────────────────────────────────────────────

// WalletInfoResult is the public metadata of a stored wallet.
type WalletInfoResult struct {
	Name        string    `json:"name"`
	CreatedAt   time.Time `json:"created_at"`
	Language    string    `json:"language"`
	Words       int       `json:"words"`
	Fingerprint string    `json:"fingerprint"`
}

// WalletCreateResult is returned by wallet_create. The phrase is only ever
// returned here, once.
type WalletCreateResult struct {
	WalletInfoResult
	Mnemonic string `json:"mnemonic"`
}

// WalletListResult is returned by wallet_list.
type WalletListResult struct {
	Wallets []WalletInfoResult `json:"wallets"`
}

// SignResult is returned by wallet_sign.
type SignResult struct {
	Path      string `json:"path"`
	PublicKey string `json:"public_key"`
	Signature string `json:"signature"`
}

// OKResult is returned by endpoints with nothing else to report.
type OKResult struct {
	OK bool `json:"ok"`
}
