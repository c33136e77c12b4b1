package http

import (
	"github.com/gin-gonic/gin"

	pkgErrors "missionmind/pkg/errors"
)

// processCreateUnitReq binds and validates the create unit request body.
func (h *handler) processCreateUnitReq(c *gin.Context) (createUnitReq, error) {
	var req createUnitReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processListUnitsReq binds and validates the list units query parameters.
func (h *handler) processListUnitsReq(c *gin.Context) (listUnitsReq, error) {
	var req listUnitsReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processUpdateUnitReq binds and validates the update unit body + URI param.
func (h *handler) processUpdateUnitReq(c *gin.Context) (updateUnitReq, error) {
	var req updateUnitReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.ID = c.Param("id")
	if req.ID == "" {
		return req, pkgErrors.NewHTTPError(400, "id is required")
	}
	return req, req.validate()
}

// processCreateAuthorityReq binds and validates the create authority body +
// URI param.
func (h *handler) processCreateAuthorityReq(c *gin.Context) (createAuthorityReq, error) {
	var req createAuthorityReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.OrgUnitID = c.Param("id")
	if req.OrgUnitID == "" {
		return req, pkgErrors.NewHTTPError(400, "id is required")
	}
	return req, req.validate()
}
