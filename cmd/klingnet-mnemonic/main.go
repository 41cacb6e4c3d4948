// klingnet-mnemonic generates, checks and stores BIP-39 recovery phrases.
package main

import (
	"bufio"
	"context"
	"encoding/hex"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"syscall"

	"golang.org/x/term"

	"github.com/Klingon-tech/klingnet-mnemonic/config"
	klog "github.com/Klingon-tech/klingnet-mnemonic/internal/log"
	"github.com/Klingon-tech/klingnet-mnemonic/internal/wallet"
	"github.com/Klingon-tech/klingnet-mnemonic/pkg/crypto"
	"github.com/Klingon-tech/klingnet-mnemonic/pkg/mnemonic"
)

const version = "0.1.0"

var errUsage = errors.New("usage")

// app carries the resolved config and I/O of one invocation.
type app struct {
	cfg *config.Config
	in  *bufio.Reader
	out io.Writer
	// readPassword prompts for a secret without echo.
	readPassword func(prompt string) ([]byte, error)
}

func main() {
	a := &app{
		in:           bufio.NewReader(os.Stdin),
		out:          os.Stdout,
		readPassword: termPassword,
	}
	if err := a.run(context.Background(), os.Args[1:]); err != nil {
		if errors.Is(err, errUsage) {
			if err != errUsage {
				fmt.Fprintf(os.Stderr, "Error: %v\n\n", err)
			}
			usage()
			os.Exit(1)
		}
		fatal("%v", err)
	}
}

func (a *app) run(ctx context.Context, args []string) error {
	flags, err := config.ParseFlags(args, io.Discard)
	if err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}
	if flags.Help {
		usage()
		return nil
	}
	if flags.Version {
		fmt.Fprintf(a.out, "klingnet-mnemonic version %s\n", version)
		return nil
	}
	if len(flags.Args) == 0 {
		return errUsage
	}

	cfg, err := config.Load(flags)
	if err != nil {
		return err
	}
	if err := klog.Init(cfg.Log.Level, cfg.Log.JSON, cfg.Log.File); err != nil {
		return fmt.Errorf("init logging: %w", err)
	}
	a.cfg = cfg

	cmd := flags.Args[0]
	cmdArgs := flags.Args[1:]
	klog.CLI.Debug().Str("command", cmd).Msg("dispatch")

	switch cmd {
	case "generate":
		return a.cmdGenerate(cmdArgs)
	case "check":
		return a.cmdCheck(cmdArgs)
	case "entropy":
		return a.cmdEntropy(cmdArgs)
	case "from-entropy":
		return a.cmdFromEntropy(cmdArgs)
	case "seed":
		return a.cmdSeed(cmdArgs)
	case "master":
		return a.cmdMaster(cmdArgs)
	case "sign":
		return a.cmdSign(cmdArgs)
	case "verify":
		return a.cmdVerify(cmdArgs)
	case "languages":
		return a.cmdLanguages()
	case "wallet":
		return a.cmdWallet(cmdArgs)
	case "serve":
		return a.cmdServe(ctx, cmdArgs)
	case "call":
		return a.cmdCall(ctx, cmdArgs)
	case "help":
		usage()
		return nil
	default:
		return fmt.Errorf("%w: unknown command %q", errUsage, cmd)
	}
}

func usage() {
	fmt.Fprint(os.Stderr, `Usage: klingnet-mnemonic [global flags] <command> [flags] [args]

Global flags:
  --datadir <path>           Data directory (default: ~/.klingnet-mnemonic)
  --config, -c <path>        Config file (default: <datadir>/klingnet-mnemonic.conf)
  --language <lang>          Default word list for new phrases
  --words <n>                Default phrase length: 12, 15, 18, 21, 24
  --keystore-backend <name>  badger (default) or memory
  --log-level <level>        debug, info, warn (default), error
  --log-file <path>          Also write JSON logs to a file
  --log-json                 Log to stderr as JSON

Phrase commands (the phrase is read from stdin when not given as arguments):
  generate [--words N] [--language L]     Create a new random phrase
  check [--language L] [phrase]           Report language, length and checksum
  entropy [phrase]                        Print the entropy encoded by a phrase
  from-entropy [--language L] <hex>       Encode entropy as a phrase
  seed [--passphrase] [phrase]            Print the 64-byte BIP-39 seed
  master [--passphrase] [--path P] [--private] [phrase]
                                          Print the BIP-32 key at path P
  sign [--wallet NAME] [--path P] <message>
                                          Schnorr-sign a message with a derived key
  verify <pubkey> <signature> <message>   Check a signature from sign
  languages                               List supported word lists

Wallet commands:
  wallet create --name N [--words N] [--language L]
  wallet import --name N [phrase]
  wallet list
  wallet show --name N [--reveal]
  wallet rename --from OLD --to NEW
  wallet delete --name N

RPC commands:
  serve [--addr HOST:PORT] [--no-wallet]  Run the local JSON-RPC server
  call [--rpc URL] <method> [params-json] Send one request to a running server
`)
}

// ── Phrase commands ─────────────────────────────────────────────────────

func (a *app) cmdGenerate(args []string) error {
	fs := flag.NewFlagSet("generate", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	words := fs.Int("words", a.cfg.WordCount, "Number of words")
	lang := fs.String("language", a.cfg.Language, "Word list")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}

	wl, err := mnemonic.WordListFor(mnemonic.Language(*lang))
	if err != nil {
		return err
	}
	m, err := mnemonic.Generate(wl, mnemonic.WordCount(*words))
	if err != nil {
		return fmt.Errorf("generate: %w", err)
	}
	fmt.Fprintln(a.out, m.String())
	return nil
}

func (a *app) cmdCheck(args []string) error {
	fs := flag.NewFlagSet("check", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	lang := fs.String("language", "", "Word list (default: auto-detect)")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}

	var wl *mnemonic.WordList
	if *lang != "" {
		var err error
		if wl, err = mnemonic.WordListFor(mnemonic.Language(*lang)); err != nil {
			return err
		}
	}
	m, err := a.parsePhrase(fs.Args(), wl)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Language:    %s\n", m.WordList().Language())
	fmt.Fprintf(a.out, "Words:       %d\n", m.WordCount())
	fmt.Fprintf(a.out, "Entropy:     %d bits\n", mnemonic.EntropyBitsFor(m.WordCount()))
	if !m.IsValidChecksum() {
		fmt.Fprintln(a.out, "Checksum:    INVALID")
		return errors.New("checksum mismatch")
	}
	fmt.Fprintln(a.out, "Checksum:    valid")
	fmt.Fprintf(a.out, "Fingerprint: %s\n", wallet.MnemonicFingerprint(m))
	return nil
}

func (a *app) cmdEntropy(args []string) error {
	m, err := a.parseValidPhrase(args)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, hex.EncodeToString(m.Entropy()))
	return nil
}

func (a *app) cmdFromEntropy(args []string) error {
	fs := flag.NewFlagSet("from-entropy", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	lang := fs.String("language", a.cfg.Language, "Word list")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("%w: from-entropy takes one hex argument", errUsage)
	}

	entropy, err := hex.DecodeString(strings.TrimPrefix(fs.Arg(0), "0x"))
	if err != nil {
		return fmt.Errorf("decode entropy: %w", err)
	}
	wl, err := mnemonic.WordListFor(mnemonic.Language(*lang))
	if err != nil {
		return err
	}
	m, err := mnemonic.FromEntropy(entropy, wl)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, m.String())
	return nil
}

func (a *app) cmdSeed(args []string) error {
	fs := flag.NewFlagSet("seed", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	withPass := fs.Bool("passphrase", false, "Prompt for a BIP-39 passphrase")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}

	m, err := a.parseValidPhrase(fs.Args())
	if err != nil {
		return err
	}
	passphrase, err := a.passphrase(*withPass)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, hex.EncodeToString(m.DeriveSeed(passphrase)))
	return nil
}

func (a *app) cmdMaster(args []string) error {
	fs := flag.NewFlagSet("master", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	withPass := fs.Bool("passphrase", false, "Prompt for a BIP-39 passphrase")
	path := fs.String("path", "m", "Derivation path")
	private := fs.Bool("private", false, "Also print the extended private key")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}

	m, err := a.parseValidPhrase(fs.Args())
	if err != nil {
		return err
	}
	passphrase, err := a.passphrase(*withPass)
	if err != nil {
		return err
	}
	key, err := wallet.DeriveFromMnemonic(m, passphrase, *path)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Path:        %s\n", *path)
	fmt.Fprintf(a.out, "Public key:  %s\n", hex.EncodeToString(key.PublicKeyBytes()))
	fmt.Fprintf(a.out, "Fingerprint: %s\n", key.Fingerprint())
	fmt.Fprintf(a.out, "xpub:        %s\n", key.Neuter().String())
	if *private {
		fmt.Fprintf(a.out, "xprv:        %s\n", key.String())
	}
	return nil
}

func (a *app) cmdSign(args []string) error {
	fs := flag.NewFlagSet("sign", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	walletName := fs.String("wallet", "", "Sign with a stored wallet instead of a typed phrase")
	path := fs.String("path", wallet.DefaultPath, "Derivation path of the signing key")
	withPass := fs.Bool("passphrase", false, "Prompt for a BIP-39 passphrase")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}
	if fs.NArg() == 0 {
		return fmt.Errorf("%w: sign needs a message", errUsage)
	}
	message := strings.Join(fs.Args(), " ")

	var m *mnemonic.Mnemonic
	var err error
	if *walletName != "" {
		m, err = a.unlockWallet(*walletName)
	} else {
		m, err = a.parseValidPhrase(nil)
	}
	if err != nil {
		return err
	}
	passphrase, err := a.passphrase(*withPass)
	if err != nil {
		return err
	}
	key, err := wallet.DeriveFromMnemonic(m, passphrase, *path)
	if err != nil {
		return err
	}
	signer, err := key.Signer()
	if err != nil {
		return err
	}
	defer signer.Zero()

	sig, err := signer.SignMessage([]byte(message))
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Public key: %s\n", hex.EncodeToString(signer.PublicKey()))
	fmt.Fprintf(a.out, "Signature:  %s\n", hex.EncodeToString(sig))
	return nil
}

func (a *app) cmdVerify(args []string) error {
	if len(args) < 3 {
		return fmt.Errorf("%w: verify <pubkey> <signature> <message>", errUsage)
	}
	pub, err := hex.DecodeString(args[0])
	if err != nil {
		return fmt.Errorf("decode public key: %w", err)
	}
	sig, err := hex.DecodeString(args[1])
	if err != nil {
		return fmt.Errorf("decode signature: %w", err)
	}
	message := strings.Join(args[2:], " ")

	if !crypto.VerifyMessage([]byte(message), sig, pub) {
		fmt.Fprintln(a.out, "Signature: INVALID")
		return errors.New("signature does not verify")
	}
	fmt.Fprintln(a.out, "Signature: valid")
	return nil
}

func (a *app) cmdLanguages() error {
	for _, lang := range mnemonic.Languages() {
		fmt.Fprintln(a.out, lang)
	}
	return nil
}

// ── Helpers ─────────────────────────────────────────────────────────────

// parsePhrase joins args into a phrase, or reads one line from stdin when
// args is empty.
func (a *app) parsePhrase(args []string, wl *mnemonic.WordList) (*mnemonic.Mnemonic, error) {
	phrase := strings.Join(args, " ")
	if phrase == "" {
		line, err := a.in.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("read phrase: %w", err)
		}
		phrase = line
	}
	m, err := mnemonic.Parse(phrase, wl)
	if err != nil {
		return nil, fmt.Errorf("parse phrase: %w", err)
	}
	return m, nil
}

// parseValidPhrase is parsePhrase with auto-detection that also rejects
// bad checksums.
func (a *app) parseValidPhrase(args []string) (*mnemonic.Mnemonic, error) {
	m, err := a.parsePhrase(args, nil)
	if err != nil {
		return nil, err
	}
	if !m.IsValidChecksum() {
		return nil, errors.New("parse phrase: checksum mismatch")
	}
	return m, nil
}

func (a *app) passphrase(prompt bool) (string, error) {
	if !prompt {
		return "", nil
	}
	pass, err := a.readPassword("BIP-39 passphrase: ")
	if err != nil {
		return "", fmt.Errorf("read passphrase: %w", err)
	}
	return string(pass), nil
}

func termPassword(prompt string) ([]byte, error) {
	fmt.Fprint(os.Stderr, prompt)
	password, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Fprintln(os.Stderr) // newline after hidden input
	if err != nil {
		return nil, err
	}
	return password, nil
}

// ── Error helper ────────────────────────────────────────────────────────

func fatal(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
