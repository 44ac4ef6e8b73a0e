package client

import (
	"fmt"
	"strings"
)

// ValidationError is reported before any network call is made.
type ValidationError struct {
	Missing []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("submission invalid, missing: %s", strings.Join(e.Missing, ", "))
}

// CredentialRequestError means the credential endpoint answered with a
// non-success response for one file. The whole submission aborts.
type CredentialRequestError struct {
	Filename string
	Message  string
}

func (e *CredentialRequestError) Error() string {
	return fmt.Sprintf("credential request failed for %s: %s", e.Filename, e.Message)
}

// UploadError means the storage backend rejected the PUT for one file.
type UploadError struct {
	Filename string
	Status   int
}

func (e *UploadError) Error() string {
	return fmt.Sprintf("upload failed for %s (status %d)", e.Filename, e.Status)
}

// PersistenceError means the server rejected the final recipe payload,
// either a validation failure or a store error. Message is the server's
// own error text when it sent one.
type PersistenceError struct {
	Status  int
	Message string
}

func (e *PersistenceError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("recipe submission rejected (status %d)", e.Status)
}

// TransportError is a network-level failure with no server response.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }
