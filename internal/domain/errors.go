package domain

import "errors"

var (
	ErrBareRepository     = errors.New("repository has no working tree")
	ErrRepositoryNotFound = errors.New("not a git repository")
	ErrUnbornHead         = errors.New("HEAD points to an unborn branch")
)
