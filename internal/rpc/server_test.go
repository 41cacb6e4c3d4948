package rpc

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/Klingon-tech/klingnet-mnemonic/config"
	klog "github.com/Klingon-tech/klingnet-mnemonic/internal/log"
	"github.com/Klingon-tech/klingnet-mnemonic/internal/storage"
	"github.com/Klingon-tech/klingnet-mnemonic/internal/wallet"
)

const zeroPhrase = "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"

// testEnv holds all components for an RPC test.
type testEnv struct {
	server   *Server
	keystore *wallet.Keystore
	url      string
}

func setupTestEnv(t *testing.T, rpcCfg ...config.RPCConfig) *testEnv {
	t.Helper()
	klog.Init("error", false, "")

	ks := wallet.NewKeystore(storage.NewMemory(), wallet.NewUnlockLimiter(0.001, 3))

	srv := New("127.0.0.1:0", rpcCfg...)
	srv.SetKeystore(ks, wallet.EncryptionParams{Memory: 64, Iterations: 1, Parallelism: 1})
	if err := srv.Start(); err != nil {
		t.Fatalf("start rpc: %v", err)
	}
	t.Cleanup(func() { srv.Stop() })

	return &testEnv{
		server:   srv,
		keystore: ks,
		url:      fmt.Sprintf("http://%s/", srv.Addr()),
	}
}

func rpcCall(t *testing.T, url, method string, params interface{}) Response {
	t.Helper()
	req := Request{
		JSONRPC: "2.0",
		Method:  method,
		Params:  params,
		ID:      1,
	}
	body, err := json.Marshal(req)
	if err != nil {
		t.Fatalf("marshal request: %v", err)
	}

	resp, err := http.Post(url, "application/json", bytes.NewReader(body))
	if err != nil {
		t.Fatalf("post %s: %v", method, err)
	}
	defer resp.Body.Close()

	var rpcResp Response
	if err := json.NewDecoder(resp.Body).Decode(&rpcResp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return rpcResp
}

// decodeResult re-marshals a generic result into out.
func decodeResult(t *testing.T, resp Response, out interface{}) {
	t.Helper()
	if resp.Error != nil {
		t.Fatalf("unexpected error: %d %s", resp.Error.Code, resp.Error.Message)
	}
	data, _ := json.Marshal(resp.Result)
	if err := json.Unmarshal(data, out); err != nil {
		t.Fatalf("decode result: %v", err)
	}
}

func wantCode(t *testing.T, resp Response, code int) {
	t.Helper()
	if resp.Error == nil {
		t.Fatalf("expected error code %d, got result %v", code, resp.Result)
	}
	if resp.Error.Code != code {
		t.Errorf("error code = %d (%s), want %d", resp.Error.Code, resp.Error.Message, code)
	}
}

// ── Transport ───────────────────────────────────────────────────────────

func TestRPC_MethodNotFound(t *testing.T) {
	env := setupTestEnv(t)
	wantCode(t, rpcCall(t, env.url, "chain_getInfo", nil), CodeMethodNotFound)
}

func TestRPC_RejectsGet(t *testing.T) {
	env := setupTestEnv(t)

	resp, err := http.Get(env.url)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	defer resp.Body.Close()

	var rpcResp Response
	json.NewDecoder(resp.Body).Decode(&rpcResp)
	wantCode(t, rpcResp, CodeInvalidRequest)
}

func TestRPC_BadJSON(t *testing.T) {
	env := setupTestEnv(t)

	resp, err := http.Post(env.url, "application/json", strings.NewReader("{not json"))
	if err != nil {
		t.Fatalf("post: %v", err)
	}
	defer resp.Body.Close()

	var rpcResp Response
	json.NewDecoder(resp.Body).Decode(&rpcResp)
	wantCode(t, rpcResp, CodeParseError)
}

func TestRPC_WrongVersion(t *testing.T) {
	env := setupTestEnv(t)

	body := `{"jsonrpc":"1.0","method":"mnemonic_languages","id":1}`
	resp, err := http.Post(env.url, "application/json", strings.NewReader(body))
	if err != nil {
		t.Fatalf("post: %v", err)
	}
	defer resp.Body.Close()

	var rpcResp Response
	json.NewDecoder(resp.Body).Decode(&rpcResp)
	wantCode(t, rpcResp, CodeInvalidRequest)
}

func TestRPC_BodyTooLarge(t *testing.T) {
	env := setupTestEnv(t)

	body := `{"jsonrpc":"2.0","method":"mnemonic_check","params":{"mnemonic":"` +
		strings.Repeat("a", maxBodySize) + `"},"id":1}`
	resp, err := http.Post(env.url, "application/json", strings.NewReader(body))
	if err != nil {
		t.Fatalf("post: %v", err)
	}
	defer resp.Body.Close()

	var rpcResp Response
	json.NewDecoder(resp.Body).Decode(&rpcResp)
	wantCode(t, rpcResp, CodeInvalidRequest)
}

func TestRPC_IPFilter(t *testing.T) {
	env := setupTestEnv(t, config.RPCConfig{AllowedIPs: []string{"10.1.2.3"}})

	resp, err := http.Post(env.url, "application/json", strings.NewReader(`{}`))
	if err != nil {
		t.Fatalf("post: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusForbidden {
		t.Errorf("status = %d, want 403", resp.StatusCode)
	}
}

func TestRPC_CORS(t *testing.T) {
	env := setupTestEnv(t, config.RPCConfig{CORSOrigins: []string{"http://localhost:3000"}})

	req, _ := http.NewRequest(http.MethodOptions, env.url, nil)
	req.Header.Set("Origin", "http://localhost:3000")
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("options: %v", err)
	}
	resp.Body.Close()

	if resp.StatusCode != http.StatusNoContent {
		t.Errorf("status = %d, want 204", resp.StatusCode)
	}
	if got := resp.Header.Get("Access-Control-Allow-Origin"); got != "http://localhost:3000" {
		t.Errorf("Access-Control-Allow-Origin = %q", got)
	}
}

func TestParseAllowedIPs(t *testing.T) {
	nets := parseAllowedIPs([]string{"127.0.0.1", "10.0.0.0/8", "::1", "garbage"})
	if len(nets) != 3 {
		t.Fatalf("parseAllowedIPs() = %d nets, want 3", len(nets))
	}
}

// ── Mnemonic endpoints ──────────────────────────────────────────────────

func TestRPC_MnemonicGenerate(t *testing.T) {
	env := setupTestEnv(t)

	var res MnemonicResult
	decodeResult(t, rpcCall(t, env.url, "mnemonic_generate", GenerateParam{Words: 18, Language: "french"}), &res)
	if res.Words != 18 || res.Language != "french" || !res.Checksum {
		t.Errorf("result = %+v", res)
	}
	if len(strings.Fields(res.Mnemonic)) != 18 || res.Fingerprint == "" {
		t.Errorf("mnemonic = %q, fingerprint = %q", res.Mnemonic, res.Fingerprint)
	}

	// No params: server defaults.
	env.server.SetDefaults("english", 12)
	decodeResult(t, rpcCall(t, env.url, "mnemonic_generate", nil), &res)
	if res.Words != 12 || res.Language != "english" {
		t.Errorf("default result = %+v", res)
	}

	wantCode(t, rpcCall(t, env.url, "mnemonic_generate", GenerateParam{Words: 13}), CodeInvalidParams)
	wantCode(t, rpcCall(t, env.url, "mnemonic_generate", GenerateParam{Language: "klingon"}), CodeInvalidParams)
}

func TestRPC_MnemonicCheck(t *testing.T) {
	env := setupTestEnv(t)

	var res MnemonicResult
	decodeResult(t, rpcCall(t, env.url, "mnemonic_check", PhraseParam{Mnemonic: zeroPhrase}), &res)
	if !res.Checksum || res.Words != 12 || res.EntropyBits != 128 || res.Language != "english" {
		t.Errorf("result = %+v", res)
	}
	if res.Mnemonic != "" {
		t.Error("mnemonic_check should not echo the phrase")
	}

	bad := strings.Replace(zeroPhrase, "about", "abandon", 1)
	var badRes MnemonicResult
	decodeResult(t, rpcCall(t, env.url, "mnemonic_check", PhraseParam{Mnemonic: bad}), &badRes)
	if badRes.Checksum || badRes.Fingerprint != "" || badRes.Words != 12 {
		t.Errorf("bad checksum result = %+v", badRes)
	}

	wantCode(t, rpcCall(t, env.url, "mnemonic_check", PhraseParam{Mnemonic: "abandon zebra"}), CodeInvalidParams)
	wantCode(t, rpcCall(t, env.url, "mnemonic_check", nil), CodeInvalidParams)
}

func TestRPC_MnemonicEntropyRoundTrip(t *testing.T) {
	env := setupTestEnv(t)

	var phrase MnemonicResult
	decodeResult(t, rpcCall(t, env.url, "mnemonic_fromEntropy",
		FromEntropyParam{Entropy: strings.Repeat("7f", 16), Language: "english"}), &phrase)
	want := "legal winner thank year wave sausage worth useful legal winner thank yellow"
	if phrase.Mnemonic != want {
		t.Fatalf("fromEntropy = %q, want %q", phrase.Mnemonic, want)
	}

	var ent EntropyResult
	decodeResult(t, rpcCall(t, env.url, "mnemonic_toEntropy", PhraseParam{Mnemonic: want}), &ent)
	if ent.Entropy != strings.Repeat("7f", 16) {
		t.Errorf("toEntropy = %s", ent.Entropy)
	}

	wantCode(t, rpcCall(t, env.url, "mnemonic_fromEntropy", FromEntropyParam{Entropy: "00"}), CodeInvalidParams)
	wantCode(t, rpcCall(t, env.url, "mnemonic_fromEntropy", FromEntropyParam{Entropy: "xyz"}), CodeInvalidParams)
}

func TestRPC_MnemonicLanguages(t *testing.T) {
	env := setupTestEnv(t)

	var res LanguagesResult
	decodeResult(t, rpcCall(t, env.url, "mnemonic_languages", nil), &res)
	if len(res.Languages) != 9 || res.Languages[0] != "english" {
		t.Errorf("languages = %v", res.Languages)
	}
}

// ── Key endpoints ───────────────────────────────────────────────────────

func TestRPC_KeyDerive(t *testing.T) {
	env := setupTestEnv(t)

	var res KeyResult
	decodeResult(t, rpcCall(t, env.url, "key_derive", DeriveParam{Mnemonic: zeroPhrase}), &res)
	if res.Path != wallet.DefaultPath || !strings.HasPrefix(res.XPub, "xpub") || len(res.PublicKey) != 66 {
		t.Errorf("result = %+v", res)
	}

	var master KeyResult
	decodeResult(t, rpcCall(t, env.url, "key_derive",
		DeriveParam{Mnemonic: zeroPhrase, Passphrase: "TREZOR", Path: "m"}), &master)
	if master.XPub == res.XPub {
		t.Error("master and account xpub should differ")
	}

	wantCode(t, rpcCall(t, env.url, "key_derive", DeriveParam{Mnemonic: zeroPhrase, Path: "44/0"}), CodeInvalidParams)
}

func TestRPC_MessageVerify(t *testing.T) {
	env := setupTestEnv(t)
	createWallet(t, env, "signer", zeroPhrase)

	var sig SignResult
	decodeResult(t, rpcCall(t, env.url, "wallet_sign",
		WalletSignParam{Name: "signer", Password: "pw", Message: "hello"}), &sig)

	var ok VerifyResult
	decodeResult(t, rpcCall(t, env.url, "message_verify",
		VerifyParam{PublicKey: sig.PublicKey, Signature: sig.Signature, Message: "hello"}), &ok)
	if !ok.Valid {
		t.Error("signature from wallet_sign should verify")
	}

	decodeResult(t, rpcCall(t, env.url, "message_verify",
		VerifyParam{PublicKey: sig.PublicKey, Signature: sig.Signature, Message: "goodbye"}), &ok)
	if ok.Valid {
		t.Error("signature should not verify for a different message")
	}

	wantCode(t, rpcCall(t, env.url, "message_verify", VerifyParam{PublicKey: "zz"}), CodeInvalidParams)
}
