package task

import "errors"

var (
	ErrTaskNotFound          = errors.New("task not found")
	ErrParentCommentNotFound = errors.New("parent comment not found")
)
