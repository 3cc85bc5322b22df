// Copyright © 2024 One Concern

package cmd

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/oneconcern/stringsync/pkg/core"
	"github.com/oneconcern/stringsync/pkg/dlogger"
	"github.com/oneconcern/stringsync/pkg/model"
	"github.com/oneconcern/stringsync/pkg/storage/localfs"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Synchronize all resource files under a root with the base file",
	Long: `Synchronize every resource file found under the target root with the base file.

For each target, keys missing from the target are copied from the base as
placeholders for later translation, existing translations are kept verbatim,
and the output key order follows the base file. Targets that fail to parse
or to write are reported individually; the rest of the run continues.
`,
	Run: func(cmd *cobra.Command, args []string) {
		logger, err := dlogger.GetLogger(params.root.logLevel)
		if err != nil {
			wrapFatalln("get logger", err)
			return
		}
		syncer := core.New(params.sync.base, params.sync.root,
			core.Extension(params.sync.ext),
			core.Concurrency(params.sync.concurrency),
			core.Strict(params.sync.strict),
			core.DryRun(params.sync.dryRun),
			core.Logger(logger),
		)
		reports, err := syncer.Sync(context.Background())
		if err != nil {
			wrapFatalln("sync", err)
			return
		}

		var failures int
		for _, r := range reports {
			if r.Failed() {
				failures++
			}
			infoLogger.Println(formatReport(r))
		}

		if params.sync.report != "" {
			if err := writeReport(params.sync.report, reports); err != nil {
				wrapFatalln("write report", err)
				return
			}
		}
		if failures > 0 {
			wrapFatalWithCodef(1, "%d file(s) failed to synchronize", failures)
		}
	},
}

func formatReport(r model.FileReport) string {
	switch r.Outcome {
	case model.OutcomeAdded:
		return fmt.Sprintf("%s: added %d key(s): %s", r.Path, len(r.Added), strings.Join(r.Added, ", "))
	case model.OutcomeSynced:
		return fmt.Sprintf("%s: in sync", r.Path)
	case model.OutcomeSkipped:
		return fmt.Sprintf("%s: skipped (%s)", r.Path, r.Error)
	default:
		detail := r.Error
		if detail == "" {
			detail = strings.Join(r.Anomalies, "; ")
		}
		return fmt.Sprintf("%s: %s: %s", r.Path, r.Outcome, detail)
	}
}

func writeReport(path string, reports []model.FileReport) error {
	buf, err := yaml.Marshal(reports)
	if err != nil {
		return err
	}
	// the report gets the same staged write as the resource files
	return localfs.NewAtomic(reportFs).Put(context.Background(), path, bytes.NewReader(buf))
}

func init() {
	addSyncFlags(syncCmd)
	rootCmd.AddCommand(syncCmd)
}
