// Package pack provides the core block organization pipeline for blockpack.
package pack

import "errors"

// Sentinel errors for package pack.
// These errors can be checked with errors.Is() for specific error handling.
var (
	// Configuration errors
	ErrInvalidBudget    = errors.New("size budget must be a positive number of bytes")
	ErrInvalidChunkSize = errors.New("chunk size must be a positive number of bytes")

	// File and directory errors
	ErrRootNotFound      = errors.New("input path not found")
	ErrExpectedFile      = errors.New("expected file, got directory")
	ErrExpectedDirectory = errors.New("expected directory but got file")

	// Manifest errors
	ErrManifestMismatch = errors.New("chunk manifest does not match chunk contents")
)
