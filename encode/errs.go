package encode

import "errors"

var (
	ErrEncoding         = errors.New("encoding error")
	ErrRootMustBeObject = errors.New("root must be an object")
	ErrBadEntityName    = errors.New("bad entity name")
)
