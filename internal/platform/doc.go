package platform

// Package platform contains OS integration helpers: filesystem utilities for
// the save file and reveal-in-file-manager support.
