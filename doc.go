// Package main provides the blockpack command-line interface.
//
// blockpack organizes arbitrary file sets into bounded-size transfer blocks
// for constrained channels. It estimates post-compression sizes without
// compressing, packs files into block directories with first-fit-decreasing
// bin packing, splits oversized files into chunks, and writes JSON manifests
// that guarantee lossless reconstruction.
//
// The main binary supports multiple subcommands:
//   - organize: Pack a directory tree into block directories
//   - split: Split a single large file into chunks
//   - join: Reassemble a file from its chunk manifest
//   - seed: Generate a mixed test corpus
package main
