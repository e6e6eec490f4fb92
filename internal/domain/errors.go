package domain

import "errors"

// Workflow error kinds. Handlers keep HTTP bodies generic; these exist so
// logs and tests can tell the failure modes apart.
var (
	ErrInvalidEnumValue        = errors.New("invalid enum value")
	ErrMetadataCreationFailed  = errors.New("media metadata creation failed")
	ErrReferenceCreationFailed = errors.New("service reference creation failed")
	ErrPostCreationFailed      = errors.New("post creation failed")
	ErrCascadeAborted          = errors.New("cascade delete aborted")
	ErrExternalStoreFailure    = errors.New("external object store failure")
)

var (
	ErrPostNotFound  = errors.New("post not found")
	ErrMediaNotFound = errors.New("media not found")
	ErrUserNotFound  = errors.New("user not found")
)
