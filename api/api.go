//go:generate mockgen -package mock_weft -destination ../mock/mock_api.go -imports lib=github.com/weftwork/weft/api -self_package lib github.com/weftwork/weft/api ThreadsClient,SchemasClient

// Package api holds the typed records and client interfaces for the weft
// daemon's REST surface.  Implementations live in the http package.
package api

// ThreadsClient issues thread operations against a weft daemon.  Each method
// performs exactly one HTTP exchange, except Add, which may first resolve a
// schema through a SchemasClient.
//
// The daemon owns the canonical thread records.  Methods return snapshots;
// nothing is cached between calls, and concurrent calls are independent.
type ThreadsClient interface {
	// Add creates a thread.  The name is required.
	Add(name string, options AddOptions) (Thread, error)

	// AddOrUpdate overwrites the whole thread record, creating it if
	// absent.  Used for backup restoration.
	//
	// The write is not awaited: AddOrUpdate returns as soon as the request
	// is dispatched.  The returned channel is buffered and receives the
	// request outcome exactly once; callers that do not care may discard
	// it without blocking the writer.
	AddOrUpdate(threadID string, info Thread) <-chan error

	// Get fetches one thread by its daemon-assigned ID.
	Get(threadID string) (Thread, error)

	// GetByKey scans the thread list for the first thread with the given
	// caller-supplied key.  Keys are not guaranteed unique.
	GetByKey(key string) (Thread, bool, error)

	// GetByName returns every thread with the given name, in list order.
	GetByName(name string) ([]Thread, error)

	// List fetches all threads known to the daemon, in daemon order.
	List() ([]Thread, error)

	// Remove deletes a thread.  The bool is true exactly when the daemon
	// answered 204; any other status folds to false without an error.
	Remove(threadID string) (bool, error)

	// RemoveByKey resolves the key via GetByKey and deletes the match.
	// Returns false without issuing a delete when no thread has the key.
	RemoveByKey(key string) (bool, error)

	// Rename changes the thread name.  True exactly when the daemon
	// answered 204.
	Rename(threadID, name string) (bool, error)

	// Peers lists the contacts participating in a thread.  An empty
	// threadID targets the daemon's default thread.
	Peers(threadID string) ([]Contact, error)
}

// SchemasClient stores structural schemas with the daemon and answers
// questions about its built-in defaults.
type SchemasClient interface {
	// Add stores a schema node and returns its content hash.
	Add(node SchemaNode) (string, error)

	// HasDefault reports whether name is one of the daemon's built-in
	// default schemas.
	HasDefault(name string) (bool, error)

	// AddDefault stores the named built-in schema.  Idempotent: the
	// daemon returns the existing hash if it is already stored.
	AddDefault(name string) (string, error)
}

// AddOptions carries the optional fields of ThreadsClient.Add.  The zero
// value requests a private, unshared thread with no schema.
type AddOptions struct {
	Schema    SchemaRef
	Key       string
	Type      ThreadType
	Sharing   ThreadSharing
	Whitelist []string
}
