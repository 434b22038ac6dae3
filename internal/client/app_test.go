package client

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/carpartcert/carcert-cli/internal/adapter"
	"github.com/carpartcert/carcert-cli/internal/config"
	"github.com/carpartcert/carcert-cli/internal/logger"
	"github.com/carpartcert/carcert-cli/internal/mock"
	"github.com/carpartcert/carcert-cli/internal/profiles"
	"github.com/carpartcert/carcert-cli/internal/service"
)

type testEnv struct {
	ledger   *mock.MockLedger
	wallet   *mock.MockWallet
	conn     *mock.MockConnection
	contract *mock.MockContract
	cfg      *config.ClientConfig
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	ctrl := gomock.NewController(t)

	profilePath := filepath.Join(t.TempDir(), "connection-org1.json")
	require.NoError(t, os.WriteFile(profilePath, []byte(`{"name":"test-network-org1"}`), 0o600))

	return &testEnv{
		ledger:   mock.NewMockLedger(ctrl),
		wallet:   mock.NewMockWallet(ctrl),
		conn:     mock.NewMockConnection(ctrl),
		contract: mock.NewMockContract(ctrl),
		cfg: &config.ClientConfig{
			Ledger: config.ClientLedger{
				ConnectionProfile: profilePath,
				WalletPath:        "../wallet",
				Channel:           "mychannel",
				Contract:          "carcert",
				AsLocalhost:       true,
			},
			Log: config.ClientLog{Level: "debug"},
		},
	}
}

func (e *testEnv) run(t *testing.T, profileName, input string) (string, error) {
	t.Helper()
	p, err := profiles.Lookup(profileName)
	require.NoError(t, err)

	services := service.NewClientServices(e.ledger, nil, e.cfg.Ledger, logger.Nop())
	out := &bytes.Buffer{}
	err = NewApp(p, e.cfg, services, strings.NewReader(input), out, logger.Nop()).Run(context.Background())
	return out.String(), err
}

func (e *testEnv) expectSession(identity string) {
	e.ledger.EXPECT().OpenWallet("../wallet").Return(e.wallet, nil)
	e.wallet.EXPECT().Exists(identity).Return(true)
	e.ledger.EXPECT().Connect(gomock.Any(), gomock.Any()).Return(e.conn, nil)
	e.conn.EXPECT().Contract("mychannel", "carcert").Return(e.contract, nil)
	e.contract.EXPECT().Name().Return("carcert").AnyTimes()
}

func TestApp_Run_ConsoleRead(t *testing.T) {
	env := newTestEnv(t)
	env.expectSession("appUser")
	env.contract.EXPECT().
		Evaluate(gomock.Any(), "ReadAsset", "254.51488-54875265847").
		Return([]byte(`{"ID":"254.51488-54875265847"}`), nil)
	env.conn.EXPECT().Close().Times(1)

	out, err := env.run(t, profiles.Console, "2\n7\n")
	require.NoError(t, err)
	assert.Contains(t, out, "Wallet path: ")
	assert.Contains(t, out, `Transaction has been evaluated, result is: {"ID":"254.51488-54875265847"}`)
}

func TestApp_Run_ReceiverExit(t *testing.T) {
	env := newTestEnv(t)
	env.expectSession("Receiver")
	env.conn.EXPECT().Close().Times(1)

	out, err := env.run(t, profiles.Receiver, "4\n")
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(out, "Enter the number of your choice: "))
}

func TestApp_Run_IdentityOverride(t *testing.T) {
	env := newTestEnv(t)
	env.cfg.Ledger.Identity = "auditor"
	env.expectSession("auditor")
	env.conn.EXPECT().Close().Times(1)

	_, err := env.run(t, profiles.Sender, "4\n")
	require.NoError(t, err)
}

func TestApp_Run_IdentityMissing(t *testing.T) {
	env := newTestEnv(t)
	env.ledger.EXPECT().OpenWallet(gomock.Any()).Return(env.wallet, nil)
	env.wallet.EXPECT().Exists("Sender").Return(false)
	env.wallet.EXPECT().List().Return(nil, nil)

	out, err := env.run(t, profiles.Sender, "1\n")
	assert.ErrorIs(t, err, service.ErrIdentityNotEnrolled)
	assert.Contains(t, out, `An identity for the user "Sender" does not exist in the wallet`)
	assert.Contains(t, out, "Run the registerUser application before retrying")
	assert.NotContains(t, out, "Enter the number of your choice")
}

func TestApp_Run_SubmitFailureClosesOnce(t *testing.T) {
	env := newTestEnv(t)
	env.expectSession("Sender")
	env.contract.EXPECT().
		Submit(gomock.Any(), "CreateAsset", gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, adapter.ErrSubmission).
		Times(1)
	env.conn.EXPECT().Close().Times(1)

	_, err := env.run(t, profiles.Sender, "1\n4\n")
	assert.ErrorIs(t, err, adapter.ErrSubmission)
}

func TestApp_Run_EOFClosesSession(t *testing.T) {
	env := newTestEnv(t)
	env.expectSession("appUser")
	env.conn.EXPECT().Close().Times(1)

	_, err := env.run(t, profiles.Console, "")
	require.NoError(t, err)
}
