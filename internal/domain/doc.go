// Package domain defines the plain types and contracts shared across srpprim:
// the error taxonomy reported by the primitives and the known-answer vector
// sets exchanged between the self-test and its file store.
package domain
