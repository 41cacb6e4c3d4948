package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	klog "github.com/Klingon-tech/klingnet-mnemonic/internal/log"
	"github.com/Klingon-tech/klingnet-mnemonic/internal/rpc"
	"github.com/Klingon-tech/klingnet-mnemonic/internal/rpcclient"
	"github.com/Klingon-tech/klingnet-mnemonic/internal/storage"
	"github.com/Klingon-tech/klingnet-mnemonic/internal/wallet"
	"github.com/Klingon-tech/klingnet-mnemonic/pkg/mnemonic"
)

// ── RPC commands ────────────────────────────────────────────────────────

// cmdServe runs the JSON-RPC server until ctx is done or SIGINT/SIGTERM.
func (a *app) cmdServe(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("serve", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	addr := fs.String("addr", a.cfg.RPC.ListenAddr(), "Listen address")
	noWallet := fs.Bool("no-wallet", false, "Disable the wallet_* endpoints")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}

	srv := rpc.New(*addr, a.cfg.RPC)
	srv.SetDefaults(mnemonic.Language(a.cfg.Language), mnemonic.WordCount(a.cfg.WordCount))

	if !*noWallet {
		db, err := storage.Open(a.cfg.Keystore.Backend, a.cfg.KeystoreDir())
		if err != nil {
			return fmt.Errorf("open keystore: %w", err)
		}
		defer db.Close()
		limiter := wallet.NewUnlockLimiter(a.cfg.Keystore.UnlockPerMinute/60, a.cfg.Keystore.UnlockBurst)
		srv.SetKeystore(wallet.NewKeystore(db, limiter), a.encryptionParams())
	}

	if err := srv.Start(); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Listening on http://%s/\n", srv.Addr())

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	klog.CLI.Info().Msg("shutting down RPC server")
	return srv.Stop()
}

// cmdCall sends one JSON-RPC request and prints the result as indented JSON.
func (a *app) cmdCall(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("call", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	rpcURL := fs.String("rpc", "http://"+dialAddr(a.cfg.RPC.Addr, a.cfg.RPC.Port)+"/", "Server URL")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}
	if fs.NArg() < 1 || fs.NArg() > 2 {
		return fmt.Errorf("%w: call <method> [params-json]", errUsage)
	}

	var params interface{}
	if fs.NArg() == 2 {
		if err := json.Unmarshal([]byte(fs.Arg(1)), &params); err != nil {
			return fmt.Errorf("params must be JSON: %w", err)
		}
	}

	client := rpcclient.New(*rpcURL)
	defer client.Close()

	var result json.RawMessage
	if err := client.Call(ctx, fs.Arg(0), params, &result); err != nil {
		return err
	}
	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("format result: %w", err)
	}
	fmt.Fprintln(a.out, string(out))
	return nil
}

// dialAddr maps a wildcard bind address onto loopback.
func dialAddr(host string, port int) string {
	if ip := net.ParseIP(host); host == "" || (ip != nil && ip.IsUnspecified()) {
		host = "127.0.0.1"
	}
	return net.JoinHostPort(host, strconv.Itoa(port))
}
