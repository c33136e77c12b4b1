package http

import (
	"missionmind/internal/org"
	pkgErrors "missionmind/pkg/errors"
)

// mapError translates domain errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch err {
	case org.ErrUnitNotFound:
		return pkgErrors.NewHTTPError(404, "org unit not found")
	case org.ErrDuplicateUnit:
		return pkgErrors.NewHTTPError(409, "org unit already exists")
	case org.ErrUnitCycle:
		return pkgErrors.NewHTTPError(422, "org unit cannot become its own ancestor")
	case org.ErrUnitHasChildren:
		return pkgErrors.NewHTTPError(400, "org unit still has child units")
	default:
		return pkgErrors.NewHTTPError(500, "internal server error")
	}
}
