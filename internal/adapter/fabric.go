package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/hyperledger/fabric-sdk-go/pkg/core/config"
	"github.com/hyperledger/fabric-sdk-go/pkg/gateway"

	"github.com/carpartcert/carcert-cli/internal/logger"
)

// discoveryAsLocalhostEnv is read by the fabric-sdk-go gateway when it
// resolves endpoints returned by peer discovery.
const discoveryAsLocalhostEnv = "DISCOVERY_AS_LOCALHOST"

var errForeignWallet = errors.New("wallet was not opened by the fabric ledger")

type fabricLedger struct {
	logger *logger.Logger
}

// NewFabricLedger returns a [Ledger] backed by the fabric-sdk-go gateway.
func NewFabricLedger(log *logger.Logger) Ledger {
	return &fabricLedger{logger: log}
}

// ReadConnectionProfile loads the network connection profile at path. The
// document only has to be well-formed JSON; the SDK interprets the rest.
func ReadConnectionProfile(path string) ([]byte, error) {
	raw, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidProfile, err)
	}
	if !json.Valid(raw) {
		return nil, fmt.Errorf("%w: %s is not valid JSON", ErrInvalidProfile, path)
	}

	return raw, nil
}

func (f *fabricLedger) OpenWallet(path string) (Wallet, error) {
	w, err := gateway.NewFileSystemWallet(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrWallet, err)
	}

	return &fabricWallet{wallet: w}, nil
}

func (f *fabricLedger) Connect(ctx context.Context, opts ConnectOptions) (Connection, error) {
	if err := ctx.Err(); err != nil {
		return nil, mapLedgerError(ErrConnection, "connect", err)
	}

	fw, ok := opts.Wallet.(*fabricWallet)
	if !ok {
		return nil, mapLedgerError(ErrConnection, "connect", errForeignWallet)
	}

	if err := os.Setenv(discoveryAsLocalhostEnv, strconv.FormatBool(opts.AsLocalhost)); err != nil {
		return nil, mapLedgerError(ErrConnection, "connect", err)
	}

	options := make([]gateway.Option, 0, 1)
	if opts.Timeout > 0 {
		options = append(options, gateway.WithTimeout(opts.Timeout))
	}

	gw, err := gateway.Connect(
		gateway.WithConfig(config.FromRaw(opts.Profile, "json")),
		gateway.WithIdentity(fw.wallet, opts.Identity),
		options...,
	)
	if err != nil {
		f.logger.Err(err).
			Str("func", "fabricLedger.Connect").
			Str("identity", opts.Identity).
			Str("class", string(Classify(err))).
			Msg("gateway connect failed")
		return nil, mapLedgerError(ErrConnection, "connect", err)
	}

	return &fabricConnection{gateway: gw}, nil
}

type fabricWallet struct {
	wallet *gateway.Wallet
}

func (w *fabricWallet) Exists(label string) bool {
	return w.wallet.Exists(label)
}

func (w *fabricWallet) List() ([]string, error) {
	labels, err := w.wallet.List()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrWallet, err)
	}

	return labels, nil
}

type fabricConnection struct {
	gateway *gateway.Gateway
}

func (c *fabricConnection) Contract(channel, name string) (Contract, error) {
	network, err := c.gateway.GetNetwork(channel)
	if err != nil {
		return nil, mapLedgerError(ErrResolution, "get network "+channel, err)
	}

	return &fabricContract{name: name, contract: network.GetContract(name)}, nil
}

func (c *fabricConnection) Close() {
	c.gateway.Close()
}

type fabricContract struct {
	name     string
	contract *gateway.Contract
}

func (c *fabricContract) Name() string {
	return c.name
}

// Evaluate implements [Contract]. The SDK call is not cancellable; ctx is only
// checked before the call is made.
func (c *fabricContract) Evaluate(ctx context.Context, fn string, args ...string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, mapLedgerError(ErrQuery, fn, err)
	}

	payload, err := c.contract.EvaluateTransaction(fn, args...)
	if err != nil {
		return nil, mapLedgerError(ErrQuery, fn, err)
	}

	return payload, nil
}

// Submit implements [Contract]. See Evaluate for context handling.
func (c *fabricContract) Submit(ctx context.Context, fn string, args ...string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, mapLedgerError(ErrSubmission, fn, err)
	}

	payload, err := c.contract.SubmitTransaction(fn, args...)
	if err != nil {
		return nil, mapLedgerError(ErrSubmission, fn, err)
	}

	return payload, nil
}
