package rpc

import (
	"encoding/hex"
	"strings"

	"github.com/Klingon-tech/klingnet-mnemonic/internal/wallet"
	"github.com/Klingon-tech/klingnet-mnemonic/pkg/crypto"
	"github.com/Klingon-tech/klingnet-mnemonic/pkg/mnemonic"
)

// ── Mnemonic endpoints ──────────────────────────────────────────────────

func (s *Server) handleMnemonicGenerate(req *Request) (interface{}, *Error) {
	var params GenerateParam
	if req.Params != nil {
		if err := parseParams(req, &params); err != nil {
			return nil, err
		}
	}

	m, err := s.generate(params.Words, params.Language)
	if err != nil {
		return nil, err
	}
	return describe(m, true), nil
}

func (s *Server) handleMnemonicCheck(req *Request) (interface{}, *Error) {
	m, rpcErr := parsePhraseParam(req)
	if rpcErr != nil {
		return nil, rpcErr
	}
	return describe(m, false), nil
}

func (s *Server) handleMnemonicToEntropy(req *Request) (interface{}, *Error) {
	m, rpcErr := parsePhraseParam(req)
	if rpcErr != nil {
		return nil, rpcErr
	}
	if !m.IsValidChecksum() {
		return nil, &Error{Code: CodeInvalidParams, Message: "checksum mismatch"}
	}
	return &EntropyResult{Entropy: hex.EncodeToString(m.Entropy())}, nil
}

func (s *Server) handleMnemonicFromEntropy(req *Request) (interface{}, *Error) {
	var params FromEntropyParam
	if err := parseParams(req, &params); err != nil {
		return nil, err
	}
	entropy, err := hex.DecodeString(strings.TrimPrefix(params.Entropy, "0x"))
	if err != nil {
		return nil, &Error{Code: CodeInvalidParams, Message: "entropy must be hex"}
	}

	wl, rpcErr := s.wordList(params.Language)
	if rpcErr != nil {
		return nil, rpcErr
	}
	m, err := mnemonic.FromEntropy(entropy, wl)
	if err != nil {
		return nil, toError("from entropy", err)
	}
	return describe(m, true), nil
}

func (s *Server) handleMnemonicLanguages(_ *Request) (interface{}, *Error) {
	langs := mnemonic.Languages()
	out := make([]string, len(langs))
	for i, l := range langs {
		out[i] = string(l)
	}
	return &LanguagesResult{Languages: out}, nil
}

// ── Key endpoints ───────────────────────────────────────────────────────

func (s *Server) handleKeyDerive(req *Request) (interface{}, *Error) {
	var params DeriveParam
	if err := parseParams(req, &params); err != nil {
		return nil, err
	}
	m, rpcErr := parseValid(params.Mnemonic, "")
	if rpcErr != nil {
		return nil, rpcErr
	}
	path := params.Path
	if path == "" {
		path = wallet.DefaultPath
	}

	key, err := wallet.DeriveFromMnemonic(m, params.Passphrase, path)
	if err != nil {
		return nil, toError("derive key", err)
	}
	return &KeyResult{
		Path:        path,
		PublicKey:   hex.EncodeToString(key.PublicKeyBytes()),
		Fingerprint: key.Fingerprint(),
		XPub:        key.Neuter().String(),
	}, nil
}

func (s *Server) handleMessageVerify(req *Request) (interface{}, *Error) {
	var params VerifyParam
	if err := parseParams(req, &params); err != nil {
		return nil, err
	}
	pub, err := hex.DecodeString(params.PublicKey)
	if err != nil {
		return nil, &Error{Code: CodeInvalidParams, Message: "public_key must be hex"}
	}
	sig, err := hex.DecodeString(params.Signature)
	if err != nil {
		return nil, &Error{Code: CodeInvalidParams, Message: "signature must be hex"}
	}
	return &VerifyResult{Valid: crypto.VerifyMessage([]byte(params.Message), sig, pub)}, nil
}

// ── Helpers ─────────────────────────────────────────────────────────────

// generate creates a phrase, filling zero values from the server defaults.
func (s *Server) generate(words int, lang string) (*mnemonic.Mnemonic, *Error) {
	count := s.words
	if words != 0 {
		count = mnemonic.WordCount(words)
	}
	if lang == "" {
		lang = string(s.language)
	}
	wl, rpcErr := s.wordList(lang)
	if rpcErr != nil {
		return nil, rpcErr
	}
	m, err := mnemonic.Generate(wl, count)
	if err != nil {
		return nil, toError("generate", err)
	}
	return m, nil
}

// wordList resolves lang, with "" selecting the server default.
func (s *Server) wordList(lang string) (*mnemonic.WordList, *Error) {
	if lang == "" {
		lang = string(s.language)
	}
	wl, err := mnemonic.WordListFor(mnemonic.Language(strings.ToLower(lang)))
	if err != nil {
		return nil, toError("language", err)
	}
	return wl, nil
}

func parsePhraseParam(req *Request) (*mnemonic.Mnemonic, *Error) {
	var params PhraseParam
	if err := parseParams(req, &params); err != nil {
		return nil, err
	}
	return parsePhrase(params.Mnemonic, params.Language)
}

// parsePhrase parses phrase with lang, or auto-detects when lang is "".
func parsePhrase(phrase, lang string) (*mnemonic.Mnemonic, *Error) {
	var wl *mnemonic.WordList
	if lang != "" {
		var err error
		if wl, err = mnemonic.WordListFor(mnemonic.Language(strings.ToLower(lang))); err != nil {
			return nil, toError("language", err)
		}
	}
	m, err := mnemonic.Parse(phrase, wl)
	if err != nil {
		return nil, toError("parse phrase", err)
	}
	return m, nil
}

// parseValid is parsePhrase that also rejects a bad checksum.
func parseValid(phrase, lang string) (*mnemonic.Mnemonic, *Error) {
	m, rpcErr := parsePhrase(phrase, lang)
	if rpcErr != nil {
		return nil, rpcErr
	}
	if !m.IsValidChecksum() {
		return nil, &Error{Code: CodeInvalidParams, Message: "parse phrase: checksum mismatch"}
	}
	return m, nil
}

// describe reports on m. The phrase is included only when withPhrase is set
// and the fingerprint only when the checksum holds.
func describe(m *mnemonic.Mnemonic, withPhrase bool) *MnemonicResult {
	res := &MnemonicResult{
		Language:    string(m.WordList().Language()),
		Words:       int(m.WordCount()),
		EntropyBits: mnemonic.EntropyBitsFor(m.WordCount()),
		Checksum:    m.IsValidChecksum(),
	}
	if withPhrase {
		res.Mnemonic = m.String()
	}
	if res.Checksum {
		res.Fingerprint = wallet.MnemonicFingerprint(m)
	}
	return res
}
