package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

type StructuredJSONConfig struct {
	Ledger struct {
		ConnectionProfile      string   `json:"connection_profile"`
		WalletPath             string   `json:"wallet_path"`
		Identity               string   `json:"identity"`
		Channel                string   `json:"channel"`
		Contract               string   `json:"contract"`
		DiscoveryExternalHosts bool     `json:"discovery_external_hosts"`
		Timeout                Duration `json:"timeout"`
		OperationsURL          string   `json:"operations_url"`
	} `json:"ledger,omitempty"`

	Journal struct {
		DSN string `json:"dsn"`
	} `json:"journal,omitempty"`

	Shell struct {
		PromptArgs bool `json:"prompt_args"`
	} `json:"shell,omitempty"`

	Log struct {
		File  string `json:"file"`
		Level string `json:"level"`
	} `json:"log,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		Ledger: Ledger{
			ConnectionProfile:      jsonCfg.Ledger.ConnectionProfile,
			WalletPath:             jsonCfg.Ledger.WalletPath,
			Identity:               jsonCfg.Ledger.Identity,
			Channel:                jsonCfg.Ledger.Channel,
			Contract:               jsonCfg.Ledger.Contract,
			DiscoveryExternalHosts: jsonCfg.Ledger.DiscoveryExternalHosts,
			Timeout:                time.Duration(jsonCfg.Ledger.Timeout),
			OperationsURL:          jsonCfg.Ledger.OperationsURL,
		},
		Journal: Journal{
			DSN: jsonCfg.Journal.DSN,
		},
		Shell: Shell{
			PromptArgs: jsonCfg.Shell.PromptArgs,
		},
		Log: Log{
			File:  jsonCfg.Log.File,
			Level: jsonCfg.Log.Level,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
