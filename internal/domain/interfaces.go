package domain

// VectorStore persists known-answer vector sets.
type VectorStore interface {
	// LoadVectors returns ok=false when nothing has been saved yet.
	LoadVectors() (v Vectors, ok bool, err error)
	SaveVectors(v Vectors) error
}
