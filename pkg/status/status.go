// Copyright © 2024 One Concern

// Package status declares error constants shared by the storage and core
// packages.
//
// NOTE: such constants are located in a separate package to avoid
// creating undue cyclical dependencies between packages and their
// consumers.
package status

import "github.com/oneconcern/stringsync/pkg/errors"

var (
	// Sentinel errors returned by the storage and sync layers

	// ErrNotExists indicates that the fetched object does not exist on storage
	ErrNotExists = errors.New("object doesn't exist")

	// ErrInvalidResource indicates that the storage resource has an invalid name
	ErrInvalidResource = errors.New("invalid storage resource name")

	// ErrParseFailed indicates that a resource file could not be interpreted
	// safely enough to be rewritten
	ErrParseFailed = errors.New("resource file failed to parse")

	// ErrEmptyBase indicates that the base file contains no entries, so
	// targets are left untouched
	ErrEmptyBase = errors.New("base file has no entries")

	// ErrScanFailed indicates that the target root could not be walked at all
	ErrScanFailed = errors.New("target root scan failed")
)
