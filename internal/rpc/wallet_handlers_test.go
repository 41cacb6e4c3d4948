package rpc

import (
	"strings"
	"testing"

	"github.com/Klingon-tech/klingnet-mnemonic/internal/wallet"
)

func createWallet(t *testing.T, env *testEnv, name, phrase string) WalletInfoResult {
	t.Helper()
	var info WalletInfoResult
	decodeResult(t, rpcCall(t, env.url, "wallet_import",
		WalletImportParam{Name: name, Password: "pw", Mnemonic: phrase}), &info)
	return info
}

func TestRPC_WalletDisabled(t *testing.T) {
	srv := New("127.0.0.1:0")
	if err := srv.Start(); err != nil {
		t.Fatalf("start rpc: %v", err)
	}
	t.Cleanup(func() { srv.Stop() })

	wantCode(t, rpcCall(t, "http://"+srv.Addr()+"/", "wallet_list", nil), CodeInternalError)
}

func TestRPC_WalletCreate(t *testing.T) {
	env := setupTestEnv(t)

	var res WalletCreateResult
	decodeResult(t, rpcCall(t, env.url, "wallet_create",
		WalletCreateParam{Name: "fresh", Password: "pw", Words: 15, Language: "italian"}), &res)
	if res.Name != "fresh" || res.Words != 15 || res.Language != "italian" {
		t.Errorf("result = %+v", res)
	}

	m, err := env.keystore.Unlock("fresh", []byte("pw"))
	if err != nil {
		t.Fatalf("Unlock() error: %v", err)
	}
	if m.String() != res.Mnemonic {
		t.Error("returned phrase should match the stored wallet")
	}

	wantCode(t, rpcCall(t, env.url, "wallet_create", WalletCreateParam{Name: "fresh", Password: "pw"}), CodeInvalidParams)
	wantCode(t, rpcCall(t, env.url, "wallet_create", WalletCreateParam{Name: "nopass"}), CodeInvalidParams)
}

func TestRPC_WalletImportAndInfo(t *testing.T) {
	env := setupTestEnv(t)

	info := createWallet(t, env, "imported", zeroPhrase)
	if info.Words != 12 || info.Fingerprint != wallet.Fingerprint(mustSeed(t)) {
		t.Errorf("import result = %+v", info)
	}

	var got WalletInfoResult
	decodeResult(t, rpcCall(t, env.url, "wallet_info", WalletNameParam{Name: "imported"}), &got)
	if got.Fingerprint != info.Fingerprint || got.CreatedAt.IsZero() {
		t.Errorf("wallet_info = %+v", got)
	}

	bad := strings.Replace(zeroPhrase, "about", "abandon", 1)
	wantCode(t, rpcCall(t, env.url, "wallet_import",
		WalletImportParam{Name: "bad", Password: "pw", Mnemonic: bad}), CodeInvalidParams)
	wantCode(t, rpcCall(t, env.url, "wallet_info", WalletNameParam{Name: "missing"}), CodeNotFound)
}

func TestRPC_WalletList(t *testing.T) {
	env := setupTestEnv(t)

	var res WalletListResult
	decodeResult(t, rpcCall(t, env.url, "wallet_list", nil), &res)
	if res.Wallets == nil || len(res.Wallets) != 0 {
		t.Errorf("empty list = %+v, want []", res.Wallets)
	}

	createWallet(t, env, "b", zeroPhrase)
	createWallet(t, env, "a", zeroPhrase)
	decodeResult(t, rpcCall(t, env.url, "wallet_list", nil), &res)
	if len(res.Wallets) != 2 || res.Wallets[0].Name != "a" {
		t.Errorf("list = %+v", res.Wallets)
	}
}

func TestRPC_WalletRenameAndDelete(t *testing.T) {
	env := setupTestEnv(t)
	createWallet(t, env, "old", zeroPhrase)

	var ok OKResult
	decodeResult(t, rpcCall(t, env.url, "wallet_rename", WalletRenameParam{From: "old", To: "new"}), &ok)
	if !ok.OK {
		t.Error("wallet_rename should report ok")
	}
	wantCode(t, rpcCall(t, env.url, "wallet_info", WalletNameParam{Name: "old"}), CodeNotFound)

	wantCode(t, rpcCall(t, env.url, "wallet_delete", WalletUnlockParam{Name: "new", Password: "nope"}), CodeUnauthorized)
	decodeResult(t, rpcCall(t, env.url, "wallet_delete", WalletUnlockParam{Name: "new", Password: "pw"}), &ok)
	wantCode(t, rpcCall(t, env.url, "wallet_info", WalletNameParam{Name: "new"}), CodeNotFound)
}

func TestRPC_WalletSign_RateLimited(t *testing.T) {
	env := setupTestEnv(t)
	createWallet(t, env, "w", zeroPhrase)

	for i := 0; i < 3; i++ {
		wantCode(t, rpcCall(t, env.url, "wallet_sign",
			WalletSignParam{Name: "w", Password: "wrong", Message: "m"}), CodeUnauthorized)
	}
	wantCode(t, rpcCall(t, env.url, "wallet_sign",
		WalletSignParam{Name: "w", Password: "pw", Message: "m"}), CodeRateLimited)
}

func TestRPC_WalletSign_MatchesKeyDerive(t *testing.T) {
	env := setupTestEnv(t)
	createWallet(t, env, "w", zeroPhrase)

	var sig SignResult
	decodeResult(t, rpcCall(t, env.url, "wallet_sign",
		WalletSignParam{Name: "w", Password: "pw", Path: "m/44'/8888'/1'", Message: "m"}), &sig)

	var key KeyResult
	decodeResult(t, rpcCall(t, env.url, "key_derive",
		DeriveParam{Mnemonic: zeroPhrase, Path: "m/44'/8888'/1'"}), &key)
	if sig.PublicKey != key.PublicKey {
		t.Errorf("wallet_sign key %s, key_derive key %s", sig.PublicKey, key.PublicKey)
	}
}

func mustSeed(t *testing.T) []byte {
	t.Helper()
	m, rpcErr := parseValid(zeroPhrase, "")
	if rpcErr != nil {
		t.Fatalf("parseValid() error: %s", rpcErr.Message)
	}
	return m.DeriveSeed("")
}
