// Copyright © 2024 One Concern

package core

import (
	"context"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/oneconcern/stringsync/pkg/model"
	"github.com/oneconcern/stringsync/pkg/status"
	"github.com/oneconcern/stringsync/pkg/storage"
	"github.com/oneconcern/stringsync/pkg/storage/localfs"
	"github.com/oneconcern/stringsync/pkg/stringsfile"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

const defaultExtension = ".strings"

// Syncer brings every resource file under a root in line with one base
// file. The base is parsed once and held immutably; target files are then
// processed by a bounded worker pool with no shared mutable state, so a
// failure on one file never contaminates the others.
type Syncer struct {
	basePath string
	root     string

	ext         string
	concurrency int
	strict      bool
	dryRun      bool

	fs afero.Fs
	l  *zap.Logger
}

// New builds a Syncer for the given base file and target root.
func New(basePath, root string, opts ...SyncOption) *Syncer {
	s := &Syncer{
		basePath:    basePath,
		root:        root,
		ext:         defaultExtension,
		concurrency: defaultConcurrency,
		fs:          afero.NewOsFs(),
		l:           zap.NewNop(),
	}
	for _, apply := range opts {
		apply(s)
	}
	return s
}

// Sync parses the base file, discovers the candidate targets and merges
// each of them. It returns one report per discovered file, ordered by path
// for reproducible output.
//
// Failures are local: an unreadable or malformed target yields a failed
// report for that file only. Sync itself errors only when the base file
// cannot be used or the root cannot be walked at all.
func (s *Syncer) Sync(ctx context.Context) ([]model.FileReport, error) {
	base, err := s.parseBase(ctx)
	if err != nil {
		return nil, err
	}

	targetFS := afero.NewBasePathFs(s.fs, s.root)
	paths, skipped, err := Scan(targetFS, ".", s.ext)
	if err != nil {
		return nil, status.ErrScanFailed.Wrap(err)
	}
	reports := make([]model.FileReport, 0, len(paths)+len(skipped))
	for _, r := range skipped {
		r.Path = filepath.Join(s.root, r.Path)
		s.l.Warn("subtree skipped", zap.String("file", r.Path), zap.String("cause", r.Error))
		reports = append(reports, r)
	}

	rstore := localfs.New(targetFS)
	var wstore storage.Store
	if !s.dryRun {
		wstore = localfs.NewAtomic(targetFS)
	}

	baseRel := s.baseUnderRoot()
	work := make(chan string)
	results := make(chan model.FileReport)
	var wg sync.WaitGroup
	for i := 0; i < s.concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for rel := range work {
				results <- s.syncOne(ctx, rstore, wstore, base, rel)
			}
		}()
	}
	go func() {
		for _, rel := range paths {
			if rel == baseRel {
				continue
			}
			work <- rel
		}
		close(work)
		wg.Wait()
		close(results)
	}()
	for r := range results {
		reports = append(reports, r)
	}

	sort.Slice(reports, func(i, j int) bool { return reports[i].Path < reports[j].Path })
	s.logSummary(reports)
	return reports, nil
}

// parseBase reads and parses the base file once. A base that cannot be
// parsed cleanly aborts the run: its key order is the contract everything
// else follows.
func (s *Syncer) parseBase(ctx context.Context) (model.ParsedFile, error) {
	var empty model.ParsedFile
	b, err := storage.ReadAll(ctx, localfs.New(s.fs), s.basePath)
	if err != nil {
		return empty, status.ErrNotExists.WrapMessage(err, "base file %q", s.basePath)
	}
	base, anomalies := stringsfile.Parse(string(b))
	if stringsfile.Blocked(anomalies, s.strict) {
		return empty, status.ErrParseFailed.WrapMessage(nil, "base file %q: %s", s.basePath, joinAnomalies(anomalies))
	}
	for _, a := range anomalies {
		s.l.Warn("base file anomaly", zap.String("file", s.basePath), zap.String("anomaly", a.String()))
	}
	s.l.Debug("base file parsed",
		zap.String("file", s.basePath),
		zap.Int("entries", len(base.Entries)))
	return base, nil
}

// syncOne processes a single target file: read, parse, merge, render,
// write. Each step failure degrades to a per-file report.
func (s *Syncer) syncOne(ctx context.Context, rstore, wstore storage.Store, base model.ParsedFile, rel string) model.FileReport {
	report := model.FileReport{Path: filepath.Join(s.root, rel)}

	if len(base.Entries) == 0 {
		// "never delete" dominates: with an empty base the plan would have
		// zero entries, so the target is left entirely untouched.
		report.Outcome = model.OutcomeSkipped
		report.Error = status.ErrEmptyBase.Error()
		return report
	}

	original, err := storage.ReadAll(ctx, rstore, rel)
	if err != nil {
		report.Outcome = model.OutcomeParseFailed
		report.Error = err.Error()
		s.l.Warn("target unreadable", zap.String("file", report.Path), zap.Error(err))
		return report
	}

	target, anomalies := stringsfile.Parse(string(original))
	for _, a := range anomalies {
		report.Anomalies = append(report.Anomalies, a.String())
	}
	if stringsfile.Blocked(anomalies, s.strict) {
		report.Outcome = model.OutcomeParseFailed
		s.l.Warn("target failed to parse",
			zap.String("file", report.Path),
			zap.Strings("anomalies", report.Anomalies))
		return report
	}

	plan := Merge(base, target)
	report.Added = plan.Added
	rendered := stringsfile.Render(target.Header, plan.Entries, target.Trailer)

	if len(plan.Added) > 0 {
		report.Outcome = model.OutcomeAdded
	} else {
		report.Outcome = model.OutcomeSynced
	}

	if rendered == string(original) {
		s.l.Debug("target already in sync", zap.String("file", report.Path))
		return report
	}
	if s.dryRun {
		s.l.Info("dry run, not writing",
			zap.String("file", report.Path),
			zap.Int("added", len(plan.Added)))
		return report
	}
	if err := wstore.Put(ctx, rel, strings.NewReader(rendered)); err != nil {
		report.Outcome = model.OutcomeWriteFailed
		report.Error = err.Error()
		s.l.Warn("target write failed", zap.String("file", report.Path), zap.Error(err))
		return report
	}
	s.l.Info("target synchronized",
		zap.String("file", report.Path),
		zap.Int("added", len(plan.Added)),
		zap.Strings("keys", plan.Added))
	return report
}

// baseUnderRoot returns the base file's root-relative path when the base
// happens to live under the target root, so discovery never feeds the base
// back into the merge.
func (s *Syncer) baseUnderRoot() string {
	rel, err := filepath.Rel(s.root, s.basePath)
	if err != nil || strings.HasPrefix(rel, "..") {
		return ""
	}
	return rel
}

func (s *Syncer) logSummary(reports []model.FileReport) {
	var synced, added, failed, skipped int
	for _, r := range reports {
		switch r.Outcome {
		case model.OutcomeSynced:
			synced++
		case model.OutcomeAdded:
			added++
		case model.OutcomeSkipped:
			skipped++
		default:
			failed++
		}
	}
	s.l.Info("sync complete",
		zap.Int("files", len(reports)),
		zap.Int("in-sync", synced),
		zap.Int("updated", added),
		zap.Int("failed", failed),
		zap.Int("skipped", skipped))
}

func joinAnomalies(anomalies []stringsfile.Anomaly) string {
	msgs := make([]string, 0, len(anomalies))
	for _, a := range anomalies {
		msgs = append(msgs, a.String())
	}
	return strings.Join(msgs, "; ")
}
