package config

const (
	// DefaultConnectionProfile is where the Fabric test network writes the
	// Org1 connection profile, relative to the application directory.
	DefaultConnectionProfile = "../test-network/organizations/peerOrganizations/org1.example.com/connection-org1.json"
	DefaultWalletPath        = "../wallet"
	DefaultChannel           = "mychannel"
	DefaultContract          = "carcert"
	DefaultLogLevel          = "debug"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		Ledger: Ledger{
			ConnectionProfile: DefaultConnectionProfile,
			WalletPath:        DefaultWalletPath,
			Channel:           DefaultChannel,
			Contract:          DefaultContract,
		},
		Log: Log{
			Level: DefaultLogLevel,
		},
	}
}
