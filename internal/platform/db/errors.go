package db

import "errors"

// ErrNotFound is returned by repositories when a row does not exist.
// It lets callers distinguish a missing record from a database failure.
var ErrNotFound = errors.New("not found")
