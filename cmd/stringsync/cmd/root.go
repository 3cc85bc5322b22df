// Copyright © 2024 One Concern

// Package cmd implements the stringsync command line interface.
package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "stringsync",
	Short: "Stringsync keeps localization resource files in sync",
	Long: `Stringsync keeps a set of per-language key/value resource files consistent
with one authoritative base file.

Missing keys are copied from the base file as placeholders, existing
translations are preserved byte for byte, and the key order of every
synchronized file follows the base file. Files that cannot be parsed are
reported and skipped, never guessed at.
`,
}

var config *CLIConfig

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		osExit(1)
	}
}

func init() {
	log.SetFlags(0)
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&params.root.logLevel, "loglevel", "info",
		"log level (debug, info, warn, none)")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	viper.SetDefault("extension", ".strings")
	viper.SetDefault("concurrency", 0)
	if os.Getenv("STRINGSYNC_CONFIG") != "" {
		// Use config file from the flag.
		viper.SetConfigFile(os.Getenv("STRINGSYNC_CONFIG"))
	} else {
		viper.AddConfigPath(".")
		viper.AddConfigPath("$HOME/.stringsync")
		viper.SetConfigName("stringsync")
	}

	viper.AutomaticEnv() // read in environment variables that match
	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		log.Println("Using config file:", viper.ConfigFileUsed())
	}
	var err error
	config, err = newConfig()
	if err != nil {
		logFatalln(err)
	}
	config.setSyncParams(&params)
}
