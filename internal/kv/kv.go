// Package kv is a key → JSON-blob store with fallback-on-failure reads.
// Callers never depend on persistence succeeding: Load degrades to the
// supplied fallback and Save errors are for logging only.
package kv

import "context"

// #region store-interface

// Store is the minimal persistence surface: load a blob by key (returning
// fallback on a missing key or any backend failure) and save a blob.
type Store interface {
	Load(ctx context.Context, key string, fallback []byte) []byte
	Save(ctx context.Context, key string, value []byte) error
	Close() error
}

// #endregion store-interface
