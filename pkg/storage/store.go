// Copyright © 2024 One Concern

// Package storage abstracts the filesystem the synchronizer reads resource
// files from and writes merged output to.
package storage

import (
	"context"
	"io"
	"io/ioutil"
)

// Store implementations know how to read and write keyed objects.
//
// Typically this is something file system-like. Implementations of this
// interface are assumed to be fairly simple.
type Store interface {
	String() string
	Has(context.Context, string) (bool, error)
	Get(context.Context, string) (io.ReadCloser, error)
	Put(context.Context, string, io.Reader) error
	Keys(context.Context) ([]string, error)
}

// ReadAll fetches an object and slurps it into memory. Resource files are
// small by construction.
func ReadAll(ctx context.Context, store Store, key string) ([]byte, error) {
	reader, err := store.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	defer reader.Close()
	return ioutil.ReadAll(reader)
}
