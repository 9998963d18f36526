package async

import "errors"

var ErrSuperseded = errors.New("async: computation superseded by a newer run")
