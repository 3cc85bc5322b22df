package core

import (
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

const defaultConcurrency = 8

// SyncOption is a functor to build a Syncer with some options
type SyncOption func(*Syncer)

// Concurrency bounds the worker pool processing target files
func Concurrency(n int) SyncOption {
	return func(s *Syncer) {
		if n > 0 {
			s.concurrency = n
		}
	}
}

// Extension sets the resource file extension to discover (default ".strings")
func Extension(ext string) SyncOption {
	return func(s *Syncer) {
		if ext != "" {
			s.ext = ext
		}
	}
}

// Strict escalates any parse anomaly, duplicate keys included, to a
// whole-file failure
func Strict(enabled bool) SyncOption {
	return func(s *Syncer) {
		s.strict = enabled
	}
}

// DryRun computes plans and reports without writing anything
func DryRun(enabled bool) SyncOption {
	return func(s *Syncer) {
		s.dryRun = enabled
	}
}

// Logger sets the logger for the sync run
func Logger(l *zap.Logger) SyncOption {
	return func(s *Syncer) {
		if l != nil {
			s.l = l
		}
	}
}

// FileSystem overrides the filesystem the syncer operates on, e.g. an
// in-memory fs in tests
func FileSystem(fs afero.Fs) SyncOption {
	return func(s *Syncer) {
		if fs != nil {
			s.fs = fs
		}
	}
}
