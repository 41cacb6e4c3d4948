package main

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/Klingon-tech/klingnet-mnemonic/internal/storage"
	"github.com/Klingon-tech/klingnet-mnemonic/internal/wallet"
	"github.com/Klingon-tech/klingnet-mnemonic/pkg/mnemonic"
)

// maxUnlockPrompts bounds password retries within one invocation. The
// keystore limiter may cut this short.
const maxUnlockPrompts = 3

func (a *app) cmdWallet(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: wallet needs a subcommand (create, import, list, show, rename, delete)", errUsage)
	}

	switch args[0] {
	case "create":
		return a.cmdWalletCreate(args[1:])
	case "import":
		return a.cmdWalletImport(args[1:])
	case "list":
		return a.cmdWalletList()
	case "show":
		return a.cmdWalletShow(args[1:])
	case "rename":
		return a.cmdWalletRename(args[1:])
	case "delete":
		return a.cmdWalletDelete(args[1:])
	default:
		return fmt.Errorf("%w: unknown wallet command %q", errUsage, args[0])
	}
}

// withKeystore opens the configured store for the duration of fn.
func (a *app) withKeystore(fn func(ks *wallet.Keystore) error) error {
	db, err := storage.Open(a.cfg.Keystore.Backend, a.cfg.KeystoreDir())
	if err != nil {
		return fmt.Errorf("open keystore: %w", err)
	}
	defer db.Close()

	limiter := wallet.NewUnlockLimiter(a.cfg.Keystore.UnlockPerMinute/60, a.cfg.Keystore.UnlockBurst)
	return fn(wallet.NewKeystore(db, limiter))
}

func (a *app) encryptionParams() wallet.EncryptionParams {
	return wallet.EncryptionParams{
		Memory:      a.cfg.Keystore.KDFMemory,
		Iterations:  a.cfg.Keystore.KDFIterations,
		Parallelism: a.cfg.Keystore.KDFParallelism,
	}
}

func (a *app) cmdWalletCreate(args []string) error {
	fs := flag.NewFlagSet("wallet create", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	name := fs.String("name", "", "Wallet name (required)")
	words := fs.Int("words", a.cfg.WordCount, "Number of words")
	lang := fs.String("language", a.cfg.Language, "Word list")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}
	if *name == "" {
		return fmt.Errorf("%w: --name is required", errUsage)
	}

	wl, err := mnemonic.WordListFor(mnemonic.Language(*lang))
	if err != nil {
		return err
	}
	m, err := mnemonic.Generate(wl, mnemonic.WordCount(*words))
	if err != nil {
		return fmt.Errorf("generate: %w", err)
	}
	password, err := a.newPassword()
	if err != nil {
		return err
	}

	return a.withKeystore(func(ks *wallet.Keystore) error {
		info, err := ks.Create(*name, m, password, a.encryptionParams())
		if err != nil {
			return err
		}
		fmt.Fprintf(a.out, "Wallet %q created.\n\n", info.Name)
		fmt.Fprintln(a.out, "IMPORTANT: Write down your recovery phrase and store it safely!")
		fmt.Fprintf(a.out, "Recovery phrase: %s\n\n", m.String())
		printInfo(a.out, info)
		return nil
	})
}

func (a *app) cmdWalletImport(args []string) error {
	fs := flag.NewFlagSet("wallet import", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	name := fs.String("name", "", "Wallet name (required)")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}
	if *name == "" {
		return fmt.Errorf("%w: --name is required", errUsage)
	}

	m, err := a.parseValidPhrase(fs.Args())
	if err != nil {
		return err
	}
	password, err := a.newPassword()
	if err != nil {
		return err
	}

	return a.withKeystore(func(ks *wallet.Keystore) error {
		info, err := ks.Create(*name, m, password, a.encryptionParams())
		if err != nil {
			return err
		}
		fmt.Fprintf(a.out, "Wallet %q imported.\n", info.Name)
		printInfo(a.out, info)
		return nil
	})
}

func (a *app) cmdWalletList() error {
	return a.withKeystore(func(ks *wallet.Keystore) error {
		list, err := ks.List()
		if err != nil {
			return err
		}
		if len(list) == 0 {
			fmt.Fprintln(a.out, "No wallets found.")
			return nil
		}
		for _, info := range list {
			fmt.Fprintf(a.out, "%-20s %-20s %2d words  %s\n",
				info.Name, info.Language, info.WordCount, info.Fingerprint)
		}
		return nil
	})
}

func (a *app) cmdWalletShow(args []string) error {
	fs := flag.NewFlagSet("wallet show", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	name := fs.String("name", "", "Wallet name (required)")
	reveal := fs.Bool("reveal", false, "Unlock and print the recovery phrase")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}
	if *name == "" {
		return fmt.Errorf("%w: --name is required", errUsage)
	}

	return a.withKeystore(func(ks *wallet.Keystore) error {
		info, err := ks.Info(*name)
		if err != nil {
			return err
		}
		printInfo(a.out, info)
		if !*reveal {
			return nil
		}
		m, err := a.unlock(ks, *name)
		if err != nil {
			return err
		}
		fmt.Fprintf(a.out, "Recovery phrase: %s\n", m.String())
		return nil
	})
}

func (a *app) cmdWalletRename(args []string) error {
	fs := flag.NewFlagSet("wallet rename", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	from := fs.String("from", "", "Current wallet name")
	to := fs.String("to", "", "New wallet name")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}
	if *from == "" || *to == "" {
		return fmt.Errorf("%w: --from and --to are required", errUsage)
	}

	return a.withKeystore(func(ks *wallet.Keystore) error {
		if err := ks.Rename(*from, *to); err != nil {
			return err
		}
		fmt.Fprintf(a.out, "Wallet %q renamed to %q.\n", *from, *to)
		return nil
	})
}

func (a *app) cmdWalletDelete(args []string) error {
	fs := flag.NewFlagSet("wallet delete", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	name := fs.String("name", "", "Wallet name (required)")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}
	if *name == "" {
		return fmt.Errorf("%w: --name is required", errUsage)
	}

	return a.withKeystore(func(ks *wallet.Keystore) error {
		// Require the password so a stray delete cannot destroy a wallet.
		if _, err := a.unlock(ks, *name); err != nil {
			return err
		}
		if err := ks.Delete(*name); err != nil {
			return err
		}
		fmt.Fprintf(a.out, "Wallet %q deleted.\n", *name)
		return nil
	})
}

// unlockWallet opens the keystore just long enough to unlock name.
func (a *app) unlockWallet(name string) (*mnemonic.Mnemonic, error) {
	var m *mnemonic.Mnemonic
	err := a.withKeystore(func(ks *wallet.Keystore) error {
		var err error
		m, err = a.unlock(ks, name)
		return err
	})
	return m, err
}

// unlock prompts for the wallet password until it is accepted, the
// limiter refuses, or maxUnlockPrompts is reached.
func (a *app) unlock(ks *wallet.Keystore, name string) (*mnemonic.Mnemonic, error) {
	var lastErr error
	for i := 0; i < maxUnlockPrompts; i++ {
		password, err := a.readPassword(fmt.Sprintf("Password for %q: ", name))
		if err != nil {
			return nil, fmt.Errorf("read password: %w", err)
		}
		m, err := ks.Unlock(name, password)
		if err == nil {
			return m, nil
		}
		if !errors.Is(err, wallet.ErrAuthFailed) {
			return nil, err
		}
		lastErr = err
	}
	return nil, lastErr
}

func (a *app) newPassword() ([]byte, error) {
	password, err := a.readPassword("Enter password: ")
	if err != nil {
		return nil, fmt.Errorf("read password: %w", err)
	}
	if len(password) == 0 {
		return nil, errors.New("password must not be empty")
	}
	confirm, err := a.readPassword("Confirm password: ")
	if err != nil {
		return nil, fmt.Errorf("read password: %w", err)
	}
	if string(password) != string(confirm) {
		return nil, errors.New("passwords do not match")
	}
	return password, nil
}

func printInfo(w io.Writer, info *wallet.WalletInfo) {
	fmt.Fprintf(w, "Name:        %s\n", info.Name)
	fmt.Fprintf(w, "Created:     %s\n", info.CreatedAt.Format("2006-01-02 15:04:05 UTC"))
	fmt.Fprintf(w, "Language:    %s\n", info.Language)
	fmt.Fprintf(w, "Words:       %d\n", info.WordCount)
	fmt.Fprintf(w, "Fingerprint: %s\n", info.Fingerprint)
}
