package strjoin

import "go.trai.ch/zerr"

// ErrNilJoiner is the panic value of Merge when the other Joiner is nil.
var ErrNilJoiner = zerr.New("merge with nil joiner")
