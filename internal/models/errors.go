package models

import "errors"

var (
	ErrFileNotFound      = errors.New("file not found")
	ErrContentNotFound   = errors.New("content not found in catalog")
	ErrContentURLMissing = errors.New("content record has no storage path")
	ErrUpstream          = errors.New("upstream request failed")
	ErrInvalidRange      = errors.New("invalid byte range")
	ErrBadPath           = errors.New("malformed path")
	ErrPermissionDenied  = errors.New("permission denied")
	ErrStreamIO          = errors.New("stream i/o failure")
)
