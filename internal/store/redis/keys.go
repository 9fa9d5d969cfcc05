package redis

const (
	// DefaultKeyPrefix is used when no prefix is configured
	DefaultKeyPrefix = "docstore:"

	keyDocument     = "doc:"
	keyAllDocuments = "docs:all"
)

// DocumentKey returns the Redis key holding the JSON of a document
func (s *Store) DocumentKey(id string) string {
	return s.prefix + keyDocument + id
}

// AllDocumentsKey returns the key of the set of every mirrored document ID
func (s *Store) AllDocumentsKey() string {
	return s.prefix + keyAllDocuments
}
