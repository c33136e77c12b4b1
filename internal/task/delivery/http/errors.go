package http

import (
	"missionmind/internal/task"
	pkgErrors "missionmind/pkg/errors"
)

// mapError translates domain errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch err {
	case task.ErrTaskNotFound:
		return pkgErrors.NewHTTPError(404, "task not found")
	case task.ErrParentCommentNotFound:
		return pkgErrors.NewHTTPError(404, "parent comment not found")
	default:
		return pkgErrors.NewHTTPError(500, "internal server error")
	}
}
