package store

// Package store implements the context store: an in-memory mapping from
// context name to its counters-plus-note record, loaded from and flushed to a
// single JSON document on disk. All operations run on the UI thread; every
// mutation commits in memory immediately and notifies the UI through an
// update callback, while disk persistence happens only on explicit save and
// on shutdown.
