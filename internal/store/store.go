// Package store is the in-process Data Source. Every store is a seeded
// in-memory table; nothing survives process exit.
package store

import "errors"

// ErrNotFound is returned by all stores for missing records.
var ErrNotFound = errors.New("record not found")
