package main

import (
	"context"
	"bufio"
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/Klingon-tech/klingnet-mnemonic/internal/wallet"
	"github.com/Klingon-tech/klingnet-mnemonic/pkg/mnemonic"
)

const zeroPhrase = "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"

// testEnv points the config at a fresh data directory with cheap KDF
// settings.
func testEnv(t *testing.T) {
	t.Helper()
	t.Setenv("KLINGNET_MNEMONIC_DATADIR", t.TempDir())
	t.Setenv("KLINGNET_MNEMONIC_KDF_MEMORY", "64")
	t.Setenv("KLINGNET_MNEMONIC_KDF_ITERATIONS", "1")
	t.Setenv("KLINGNET_MNEMONIC_KDF_PARALLELISM", "1")
}

// newApp builds an app reading stdin from the given string. passwords are
// handed out in order, one per prompt.
func newApp(stdin string, passwords ...string) (*app, *bytes.Buffer) {
	out := &bytes.Buffer{}
	a := &app{
		in:  bufio.NewReader(strings.NewReader(stdin)),
		out: out,
	}
	a.readPassword = func(string) ([]byte, error) {
		if len(passwords) == 0 {
			return nil, errors.New("no more passwords")
		}
		p := passwords[0]
		passwords = passwords[1:]
		return []byte(p), nil
	}
	return a, out
}

func testApp(t *testing.T, stdin string, passwords ...string) (*app, *bytes.Buffer) {
	t.Helper()
	testEnv(t)
	return newApp(stdin, passwords...)
}

func TestRun_Usage(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"no command", nil},
		{"unknown command", []string{"bogus"}},
		{"unknown flag", []string{"--bogus"}},
		{"wallet without subcommand", []string{"wallet"}},
		{"from-entropy without arg", []string{"from-entropy"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, _ := testApp(t, "")
			if err := a.run(context.Background(), tt.args); !errors.Is(err, errUsage) {
				t.Errorf("run(%v) error = %v, want usage error", tt.args, err)
			}
		})
	}
}

func TestRun_Version(t *testing.T) {
	a, out := testApp(t, "")
	if err := a.run(context.Background(), []string{"--version"}); err != nil {
		t.Fatalf("run() error: %v", err)
	}
	if !strings.Contains(out.String(), version) {
		t.Errorf("output = %q, want version %s", out.String(), version)
	}
}

func TestRun_Generate(t *testing.T) {
	a, out := testApp(t, "")
	if err := a.run(context.Background(), []string{"generate", "--words", "15", "--language", "spanish"}); err != nil {
		t.Fatalf("run() error: %v", err)
	}
	m, err := mnemonic.Parse(out.String(), mnemonic.Spanish)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if m.WordCount() != mnemonic.Words15 || !m.IsValidChecksum() {
		t.Errorf("generated %d words, checksum %v", m.WordCount(), m.IsValidChecksum())
	}
}

func TestRun_Generate_BadWordCount(t *testing.T) {
	a, _ := testApp(t, "")
	if err := a.run(context.Background(), []string{"generate", "--words", "13"}); !errors.Is(err, mnemonic.ErrInvalidWordCount) {
		t.Errorf("run() error = %v, want ErrInvalidWordCount", err)
	}
}

func TestRun_FromEntropyAndBack(t *testing.T) {
	a, out := testApp(t, "")
	if err := a.run(context.Background(), []string{"from-entropy", "00000000000000000000000000000000"}); err != nil {
		t.Fatalf("from-entropy error: %v", err)
	}
	if got := strings.TrimSpace(out.String()); got != zeroPhrase {
		t.Fatalf("from-entropy = %q, want %q", got, zeroPhrase)
	}

	a, out = testApp(t, zeroPhrase+"\n")
	if err := a.run(context.Background(), []string{"entropy"}); err != nil {
		t.Fatalf("entropy error: %v", err)
	}
	if got := strings.TrimSpace(out.String()); got != strings.Repeat("0", 32) {
		t.Errorf("entropy = %q, want zeros", got)
	}
}

func TestRun_Check(t *testing.T) {
	a, out := testApp(t, "")
	if err := a.run(context.Background(), append([]string{"check"}, strings.Fields(zeroPhrase)...)); err != nil {
		t.Fatalf("check error: %v", err)
	}
	for _, want := range []string{"english", "12", "128 bits", "valid"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("check output missing %q:\n%s", want, out.String())
		}
	}

	bad := strings.Replace(zeroPhrase, "about", "abandon", 1)
	a, out = testApp(t, bad)
	if err := a.run(context.Background(), []string{"check"}); err == nil {
		t.Error("check of bad checksum should fail")
	}
	if !strings.Contains(out.String(), "INVALID") {
		t.Errorf("check output = %q, want INVALID", out.String())
	}
}

func TestRun_Seed(t *testing.T) {
	a, out := testApp(t, zeroPhrase, "TREZOR")
	if err := a.run(context.Background(), []string{"seed", "--passphrase"}); err != nil {
		t.Fatalf("seed error: %v", err)
	}
	want := "c55257c360c07c72029aebc1b53c05ed0362ada38ead3e3e9efa3708e53495531f09a6987599d18264c1e1c92f2cf141630c7a3c4ab7c81b2f001698e7463b04"
	if got := strings.TrimSpace(out.String()); got != want {
		t.Errorf("seed = %s, want %s", got, want)
	}
}

func TestRun_Master(t *testing.T) {
	a, out := testApp(t, zeroPhrase, "TREZOR")
	if err := a.run(context.Background(), []string{"master", "--passphrase", "--private"}); err != nil {
		t.Fatalf("master error: %v", err)
	}
	const xprv = "xprv9s21ZrQH143K3h3fDYiay8mocZ3afhfULfb5GX8kCBdno77K4HiA15Tg23wpbeF1pLfs1c5SPmYHrEpTuuRhxMwvKDwqdKiGJS9XFKzUsAF"
	if !strings.Contains(out.String(), xprv) {
		t.Errorf("master output missing %s:\n%s", xprv, out.String())
	}
	if !strings.Contains(out.String(), "xpub") {
		t.Error("master output should include the xpub")
	}
}

func TestRun_Master_BadPath(t *testing.T) {
	a, _ := testApp(t, zeroPhrase)
	if err := a.run(context.Background(), []string{"master", "--path", "x/1"}); !errors.Is(err, wallet.ErrInvalidPath) {
		t.Errorf("master error = %v, want ErrInvalidPath", err)
	}
}

func TestRun_SignVerify(t *testing.T) {
	a, out := testApp(t, zeroPhrase)
	if err := a.run(context.Background(), []string{"sign", "hello", "klingnet"}); err != nil {
		t.Fatalf("sign error: %v", err)
	}

	var pub, sig string
	for _, line := range strings.Split(out.String(), "\n") {
		if v, ok := strings.CutPrefix(line, "Public key: "); ok {
			pub = v
		}
		if v, ok := strings.CutPrefix(line, "Signature:  "); ok {
			sig = v
		}
	}
	if pub == "" || sig == "" {
		t.Fatalf("sign output = %q", out.String())
	}

	a, _ = testApp(t, "")
	if err := a.run(context.Background(), []string{"verify", pub, sig, "hello", "klingnet"}); err != nil {
		t.Errorf("verify error: %v", err)
	}
	a, _ = testApp(t, "")
	if err := a.run(context.Background(), []string{"verify", pub, sig, "tampered"}); err == nil {
		t.Error("verify of a different message should fail")
	}
}

func TestRun_Languages(t *testing.T) {
	a, out := testApp(t, "")
	if err := a.run(context.Background(), []string{"languages"}); err != nil {
		t.Fatalf("languages error: %v", err)
	}
	lines := strings.Fields(out.String())
	if len(lines) != len(mnemonic.Languages()) {
		t.Errorf("languages printed %d entries, want %d", len(lines), len(mnemonic.Languages()))
	}
}
