package container

import (
	"errors"
)

var ErrNegativeCapacity = errors.New("negative capacity supplied")
var ErrNilContainerID = errors.New("nil container id supplied")
