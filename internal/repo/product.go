package repo

import "errors"

// ErrProductNotFound is returned when no row matches the requested id.
// Handlers decide the HTTP status; the repository never does.
var ErrProductNotFound = errors.New("product not found")
