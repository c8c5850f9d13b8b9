package catapi

import "errors"

var (
	ErrMissingURL     = errors.New("cat record has no url")
	ErrUpstreamStatus = errors.New("unexpected upstream status")
	ErrImageTooLarge  = errors.New("image exceeds size limit")
)
