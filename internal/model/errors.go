package model

import "errors"

var (
	ErrAlreadyDecided = errors.New("card already decided")
	ErrOutOfOrder     = errors.New("decision out of order")
)
