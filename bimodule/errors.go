package bimodule

import "errors"

// ErrOutOfGrid is returned by lookups with (a, r) outside [0,N]×[0,RMax].
var ErrOutOfGrid = errors.New("bimodule: bigrade out of grid")
