package api

import (
	"fmt"
	"strings"
)

// ThreadType is the access-control class of a thread.  Together with
// ThreadSharing it determines which peers may read, annotate, and write;
// the daemon enforces the capability table, not this client.
type ThreadType string

const (
	THREAD_PRIVATE   = ThreadType("private")
	THREAD_READ_ONLY = ThreadType("read_only")
	THREAD_PUBLIC    = ThreadType("public")
	THREAD_OPEN      = ThreadType("open")
)

func ParseThreadType(text string) (ThreadType, error) {
	lowerText := strings.ToLower(text)
	switch ThreadType(lowerText) {
	case THREAD_PRIVATE:
		return THREAD_PRIVATE, nil
	case THREAD_READ_ONLY:
		return THREAD_READ_ONLY, nil
	case THREAD_PUBLIC:
		return THREAD_PUBLIC, nil
	case THREAD_OPEN:
		return THREAD_OPEN, nil
	}

	return THREAD_PRIVATE, fmt.Errorf("Unknown thread type: '%s'", text)
}

func (threadType ThreadType) String() string {
	return string(threadType)
}

// ThreadSharing is the re-shareability class of a thread.
type ThreadSharing string

const (
	SHARING_NOT_SHARED  = ThreadSharing("not_shared")
	SHARING_INVITE_ONLY = ThreadSharing("invite_only")
	SHARING_SHARED      = ThreadSharing("shared")
)

func ParseThreadSharing(text string) (ThreadSharing, error) {
	lowerText := strings.ToLower(text)
	switch ThreadSharing(lowerText) {
	case SHARING_NOT_SHARED:
		return SHARING_NOT_SHARED, nil
	case SHARING_INVITE_ONLY:
		return SHARING_INVITE_ONLY, nil
	case SHARING_SHARED:
		return SHARING_SHARED, nil
	}

	return SHARING_NOT_SHARED, fmt.Errorf("Unknown thread sharing: '%s'", text)
}

func (sharing ThreadSharing) String() string {
	return string(sharing)
}

// Thread is one named, distributed record set as reported by the daemon.
// The daemon owns the canonical record; a Thread value is an immutable
// snapshot from a single response.
type Thread struct {
	// ID is assigned by the daemon.
	ID string `json:"id"`
	// Name need not be unique.
	Name string `json:"name"`
	// Key is a caller-supplied idempotency and recovery key.  Optional,
	// and not guaranteed unique.
	Key string `json:"key,omitempty"`
	// Schema is the content hash of the thread's structural schema.
	Schema string `json:"schema,omitempty"`
	// Type defaults to private.
	Type ThreadType `json:"thread_type"`
	// Sharing defaults to not_shared.
	Sharing ThreadSharing `json:"sharing"`
	// Whitelist restricts membership to the listed peer addresses.  The
	// daemon interprets the addresses.
	Whitelist []string `json:"whitelist,omitempty"`
}

// Contact is a peer identity participating in a thread.
type Contact struct {
	ID      string `json:"id"`
	Address string `json:"address"`
	Name    string `json:"name,omitempty"`
}

func (thread Thread) Equals(other Thread) bool {
	sameScalars := thread.ID == other.ID &&
		thread.Name == other.Name &&
		thread.Key == other.Key &&
		thread.Schema == other.Schema &&
		thread.Type == other.Type &&
		thread.Sharing == other.Sharing

	if !sameScalars {
		return false
	}

	if len(thread.Whitelist) != len(other.Whitelist) {
		return false
	}

	for i, addr := range thread.Whitelist {
		if other.Whitelist[i] != addr {
			return false
		}
	}

	return true
}
