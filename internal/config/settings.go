package config

import (
	_ "embed"
	"encoding/json"
	"os"
	"path/filepath"
	"sync/atomic"

	"github.com/charmbracelet/log"
)

type Config struct {
	Ledger struct {
		Directory string `json:"directory"`
		HostFile  string `json:"host_file"`
		CountFile string `json:"count_file"`
	} `json:"ledger"`

	Probe struct {
		TimeoutSeconds uint32 `json:"timeout_seconds"`
	} `json:"probe"`
}

const settingsFilePath = "data/settings.json"

var (
	//go:embed default_settings.json
	defaultConfig []byte

	configValue atomic.Value
)

func init() {
	configValue.Store(Config{})
}

// ReadSettings loads data/settings.json, creating it from the embedded
// defaults on first run.
func ReadSettings() {
	data, err := os.ReadFile(settingsFilePath)
	if err != nil {
		if os.IsNotExist(err) {
			log.Warn("Settings file not found, creating with default configuration")

			if err := os.MkdirAll("data", os.ModePerm); err != nil {
				log.Error("Error creating directory for settings file:", err)
				return
			}
			if err := os.WriteFile(settingsFilePath, defaultConfig, os.ModePerm); err != nil {
				log.Error("Error writing default settings file:", err)
				return
			}
			data = defaultConfig
		} else {
			log.Error("Error reading settings file:", err)
			return
		}
	}

	var newConfig Config
	if err := json.Unmarshal(data, &newConfig); err != nil {
		log.Error("Error unmarshalling settings file:", err)
		return
	}

	configValue.Store(newConfig)
	log.Debug("Settings file loaded successfully")
}

func GetConfig() Config {
	return configValue.Load().(Config)
}

func SetConfig(newConfig Config) {
	configValue.Store(newConfig)
}

// HostLedgerPath is the host-mode ledger file location.
func HostLedgerPath() string {
	cfg := GetConfig()
	return filepath.Join(cfg.Ledger.Directory, cfg.Ledger.HostFile)
}

// CountLedgerPath is the count-mode ledger file location.
func CountLedgerPath() string {
	cfg := GetConfig()
	return filepath.Join(cfg.Ledger.Directory, cfg.Ledger.CountFile)
}
