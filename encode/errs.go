package encode

import "errors"

var ErrUnsupported = errors.New("unsupported value")
