// vectors.go prints BIP-39 test vectors (phrase, seed, master xprv) for
// hex-encoded entropy, one entropy per line of the input file.
// Usage: go run scripts/vectors.go [-passphrase TREZOR] [-language english] <entropyfile>
package main

import (
	"bufio"
	"encoding/hex"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/Klingon-tech/klingnet-mnemonic/internal/wallet"
	"github.com/Klingon-tech/klingnet-mnemonic/pkg/mnemonic"
)

func main() {
	passphrase := flag.String("passphrase", "TREZOR", "BIP-39 passphrase")
	lang := flag.String("language", "english", "Word list")
	flag.Parse()
	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: vectors [-passphrase P] [-language L] <entropyfile>")
		os.Exit(1)
	}

	wl, err := mnemonic.WordListFor(mnemonic.Language(*lang))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	f, err := os.Open(flag.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		entropy, err := hex.DecodeString(line)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", line, err)
			os.Exit(1)
		}
		m, err := mnemonic.FromEntropy(entropy, wl)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", line, err)
			os.Exit(1)
		}
		master, err := wallet.MasterKeyFromMnemonic(m, *passphrase)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", line, err)
			os.Exit(1)
		}
		fmt.Printf("entropy=%s\n", line)
		fmt.Printf("mnemonic=%s\n", m.String())
		fmt.Printf("seed=%s\n", hex.EncodeToString(m.DeriveSeed(*passphrase)))
		fmt.Printf("xprv=%s\n\n", master.String())
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
