package directory

import "errors"

// ErrUserNotFound indicates the upstream directory has no record for the ID.
var ErrUserNotFound = errors.New("directory user not found")
