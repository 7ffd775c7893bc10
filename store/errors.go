package store

import "errors"

var ErrNoSnapshot = errors.New("no snapshot stored")
