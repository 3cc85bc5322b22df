// Copyright © 2024 One Concern

// Package core implements the synchronization logic: discovering candidate
// resource files, merging a target against the base, and orchestrating the
// per-file work.
package core

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/oneconcern/stringsync/pkg/model"
	"github.com/spf13/afero"
)

// Scan walks the tree under root and returns the candidate resource file
// paths carrying the extension, in deterministic lexical order.
//
// Unreadable subtrees are reported as skipped and do not abort the walk.
// Dot-directories (including the writer's staging area) are never entered.
func Scan(fs afero.Fs, root, ext string) (paths []string, skipped []model.FileReport, err error) {
	walkErr := afero.Walk(fs, root, func(path string, info os.FileInfo, inErr error) error {
		if inErr != nil {
			if path == root {
				return inErr
			}
			skipped = append(skipped, model.FileReport{
				Path:    path,
				Outcome: model.OutcomeSkipped,
				Error:   inErr.Error(),
			})
			if info != nil && info.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if info.IsDir() {
			if path != root && strings.HasPrefix(info.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if strings.HasSuffix(info.Name(), ext) {
			paths = append(paths, path)
		}
		return nil
	})
	if walkErr != nil {
		return nil, skipped, walkErr
	}
	return paths, skipped, nil
}
