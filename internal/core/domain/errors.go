package domain

import "errors"

// Request pipeline.
var (
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrForbidden       = errors.New("access forbidden")
)

// Credentials.
var (
	ErrInvalidInput        = errors.New("username and password are required")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrUserNotFound        = errors.New("user not found")
	ErrUserExists          = errors.New("user already exists")
	ErrAdminAccountMissing = errors.New("account file missing")
)

// Catalog.
var ErrProductNotFound = errors.New("product not found")

// ErrDocumentNotFound is returned by document stores when the named document
// has never been written.
var ErrDocumentNotFound = errors.New("document not found")
