// Package repository defines error types that are reused across multiple
// repositories. These sentinel values allow higher layers such as
// handlers to distinguish between different failure scenarios. For
// example, ErrIdentityExists signals that a registration collides with
// an existing username or email, while ErrNotFound reports that a
// requested row does not exist.
package repository

import "errors"

// ErrIdentityExists is returned when an insert into users violates the
// unique constraint on either username or email. Handlers translate
// this into an HTTP 400 DUPLICATE_IDENTITY response.
var ErrIdentityExists = errors.New("username or email already exists")

// ErrNotFound is returned when a lookup targets a row that does not
// exist. Handlers translate this into an HTTP 404 response.
var ErrNotFound = errors.New("not found")
