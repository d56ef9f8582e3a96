// Package pack partitions arbitrary file sets into bounded-size transfer
// blocks suitable for independent archival over constrained channels.
//
// The pipeline runs leaves-first through five stages:
//
// Size Estimation:
//   - Pure extension-ratio heuristic predicting post-compression size
//   - Injectable RatioTable configuration for tests and tuning
//   - Never compresses anything and never measures real compressed size
//
// Directory Analysis:
//   - Recursive enumeration of regular files, skipping symlinks
//   - Concurrent stat workers with deterministic, path-sorted output
//   - Unreadable files become recoverable Warnings, never scan failures
//
// Block Packing:
//   - First-fit-decreasing bin packing with opportunistic backfill
//   - Oversized files isolated into single-file splitting blocks
//   - Non-splitting blocks never exceed the budget by construction
//
// Chunking:
//   - Fixed-size sequential chunks with 1-based zero-padded indices
//   - JSON reconstruction manifests as the sole sequencing authority
//   - Byte-exact reassembly via JoinChunks
//
// Materialization:
//   - One block_<n> directory per block, files copied unchanged
//   - JSON block manifests with informational external archive commands
//   - The only stage that writes to the filesystem
//
// A pure Report Builder aggregates finished blocks into an
// OrganizationSummary for display and persistence.
//
// Archiving the assembled block directories is left to external tooling;
// the manifests carry the suggested commands but nothing here executes them.
package pack
