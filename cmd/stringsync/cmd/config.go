package cmd

import (
	"github.com/spf13/viper"
)

// CLIConfig describes the CLI configuration.
type CLIConfig struct {
	// bug in viper? Need to keep names of fields the same as the serialized names..
	Extension   string `json:"extension" yaml:"extension"`     // Resource file extension to discover
	Concurrency int    `json:"concurrency" yaml:"concurrency"` // Worker pool size
	LogLevel    string `json:"loglevel" yaml:"loglevel"`       // Default log level
}

func newConfig() (*CLIConfig, error) {
	var config CLIConfig
	err := viper.Unmarshal(&config)
	if err != nil {
		return nil, err
	}
	return &config, nil
}

func (c *CLIConfig) setSyncParams(flags *paramsT) {
	if flags.sync.ext == "" {
		flags.sync.ext = c.Extension
	}
	if flags.sync.concurrency == 0 {
		flags.sync.concurrency = c.Concurrency
	}
	if c.LogLevel != "" && !rootCmd.PersistentFlags().Changed("loglevel") {
		flags.root.logLevel = c.LogLevel
	}
}
