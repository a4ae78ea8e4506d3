package schema

import "errors"

var ErrBadSchema = errors.New("bad schema")
