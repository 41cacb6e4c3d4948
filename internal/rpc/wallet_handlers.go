package rpc

import (
	"encoding/hex"

	"github.com/Klingon-tech/klingnet-mnemonic/internal/wallet"
	"github.com/Klingon-tech/klingnet-mnemonic/pkg/mnemonic"
)

// ── Wallet endpoints ────────────────────────────────────────────────────

// requireWallet returns an error if the wallet keystore is not enabled.
func (s *Server) requireWallet() *Error {
	if s.keystore == nil {
		return &Error{Code: CodeInternalError, Message: "wallet not enabled"}
	}
	return nil
}

func (s *Server) handleWalletCreate(req *Request) (interface{}, *Error) {
	if err := s.requireWallet(); err != nil {
		return nil, err
	}

	var params WalletCreateParam
	if err := parseParams(req, &params); err != nil {
		return nil, err
	}
	if params.Name == "" || params.Password == "" {
		return nil, &Error{Code: CodeInvalidParams, Message: "name and password are required"}
	}

	m, rpcErr := s.generate(params.Words, params.Language)
	if rpcErr != nil {
		return nil, rpcErr
	}
	info, err := s.keystore.Create(params.Name, m, []byte(params.Password), s.kdf)
	if err != nil {
		return nil, toError("create wallet", err)
	}
	return &WalletCreateResult{
		WalletInfoResult: infoResult(info),
		Mnemonic:         m.String(),
	}, nil
}

func (s *Server) handleWalletImport(req *Request) (interface{}, *Error) {
	if err := s.requireWallet(); err != nil {
		return nil, err
	}

	var params WalletImportParam
	if err := parseParams(req, &params); err != nil {
		return nil, err
	}
	if params.Name == "" || params.Password == "" || params.Mnemonic == "" {
		return nil, &Error{Code: CodeInvalidParams, Message: "name, password and mnemonic are required"}
	}

	m, rpcErr := parseValid(params.Mnemonic, "")
	if rpcErr != nil {
		return nil, rpcErr
	}
	info, err := s.keystore.Create(params.Name, m, []byte(params.Password), s.kdf)
	if err != nil {
		return nil, toError("import wallet", err)
	}
	return infoResult(info), nil
}

func (s *Server) handleWalletList(_ *Request) (interface{}, *Error) {
	if err := s.requireWallet(); err != nil {
		return nil, err
	}

	list, err := s.keystore.List()
	if err != nil {
		return nil, toError("list wallets", err)
	}

	out := make([]WalletInfoResult, 0, len(list))
	for i := range list {
		out = append(out, infoResult(&list[i]))
	}
	return &WalletListResult{Wallets: out}, nil
}

func (s *Server) handleWalletInfo(req *Request) (interface{}, *Error) {
	if err := s.requireWallet(); err != nil {
		return nil, err
	}

	var params WalletNameParam
	if err := parseParams(req, &params); err != nil {
		return nil, err
	}
	info, err := s.keystore.Info(params.Name)
	if err != nil {
		return nil, toError("wallet info", err)
	}
	return infoResult(info), nil
}

func (s *Server) handleWalletRename(req *Request) (interface{}, *Error) {
	if err := s.requireWallet(); err != nil {
		return nil, err
	}

	var params WalletRenameParam
	if err := parseParams(req, &params); err != nil {
		return nil, err
	}
	if err := s.keystore.Rename(params.From, params.To); err != nil {
		return nil, toError("rename wallet", err)
	}
	return &OKResult{OK: true}, nil
}

func (s *Server) handleWalletDelete(req *Request) (interface{}, *Error) {
	if err := s.requireWallet(); err != nil {
		return nil, err
	}

	var params WalletUnlockParam
	if err := parseParams(req, &params); err != nil {
		return nil, err
	}
	// The password must be right before anything is destroyed.
	if _, rpcErr := s.unlock(params.Name, params.Password); rpcErr != nil {
		return nil, rpcErr
	}
	if err := s.keystore.Delete(params.Name); err != nil {
		return nil, toError("delete wallet", err)
	}
	return &OKResult{OK: true}, nil
}

func (s *Server) handleWalletSign(req *Request) (interface{}, *Error) {
	if err := s.requireWallet(); err != nil {
		return nil, err
	}

	var params WalletSignParam
	if err := parseParams(req, &params); err != nil {
		return nil, err
	}
	path := params.Path
	if path == "" {
		path = wallet.DefaultPath
	}

	m, rpcErr := s.unlock(params.Name, params.Password)
	if rpcErr != nil {
		return nil, rpcErr
	}
	key, err := wallet.DeriveFromMnemonic(m, params.Passphrase, path)
	if err != nil {
		return nil, toError("derive key", err)
	}
	signer, err := key.Signer()
	if err != nil {
		return nil, toError("signer", err)
	}
	defer signer.Zero()

	sig, err := signer.SignMessage([]byte(params.Message))
	if err != nil {
		return nil, toError("sign", err)
	}
	return &SignResult{
		Path:      path,
		PublicKey: hex.EncodeToString(signer.PublicKey()),
		Signature: hex.EncodeToString(sig),
	}, nil
}

func (s *Server) unlock(name, password string) (*mnemonic.Mnemonic, *Error) {
	if name == "" || password == "" {
		return nil, &Error{Code: CodeInvalidParams, Message: "name and password are required"}
	}
	m, err := s.keystore.Unlock(name, []byte(password))
	if err != nil {
		return nil, toError("unlock wallet", err)
	}
	return m, nil
}

func infoResult(info *wallet.WalletInfo) WalletInfoResult {
	return WalletInfoResult{
		Name:        info.Name,
		CreatedAt:   info.CreatedAt,
		Language:    string(info.Language),
		Words:       info.WordCount,
		Fingerprint: info.Fingerprint,
	}
}
