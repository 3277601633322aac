// Package storage holds error sentinels shared by every repository
// implementation so use cases can branch without knowing the backend.
package storage

import "errors"

// ErrDuplicateKey reports that an insert collided with a uniqueness
// constraint (natural key or composite link). Importers treat it as
// "already exists" rather than a failure.
var ErrDuplicateKey = errors.New("duplicate key")
