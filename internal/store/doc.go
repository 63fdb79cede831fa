// Package store provides file-based persistence for srpprim.
//
// Files are written as indented JSON through a temp file and an atomic
// rename, so a reader never observes a partially written file. The only
// persisted data is the known-answer vector set used by the self-test
// (VectorFileStore).
package store
