package core

import "errors"

var (
	ErrSingularTransform = errors.New("core: camera transform is not invertible")
)
