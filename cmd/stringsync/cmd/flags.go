package cmd

import (
	"github.com/spf13/cobra"
)

type paramsT struct {
	root struct {
		logLevel string
	}
	sync struct {
		base        string
		root        string
		ext         string
		concurrency int
		strict      bool
		dryRun      bool
		report      string
	}
}

var params paramsT

func addSyncFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&params.sync.base, "base", "b", "",
		"Path to the authoritative base resource file")
	requireFlag(cmd, "base")
	cmd.Flags().StringVarP(&params.sync.root, "root", "r", "",
		"Root directory searched recursively for target resource files")
	requireFlag(cmd, "root")
	cmd.Flags().StringVar(&params.sync.ext, "ext", "",
		"Resource file extension to discover (default \".strings\")")
	cmd.Flags().IntVarP(&params.sync.concurrency, "concurrency", "t", 0,
		"Max number of concurrently processed files")
	cmd.Flags().BoolVar(&params.sync.strict, "strict", false,
		"Escalate the first parse anomaly in a file to a whole-file failure")
	cmd.Flags().BoolVar(&params.sync.dryRun, "dry-run", false,
		"Compute and report changes without writing any file")
	cmd.Flags().StringVar(&params.sync.report, "report", "",
		"Write the per-file run report to this path as YAML")
}

func requireFlag(cmd *cobra.Command, flag string) {
	if err := cmd.MarkFlagRequired(flag); err != nil {
		wrapFatalln("error attempting to mark the required flag "+flag, err)
	}
}
