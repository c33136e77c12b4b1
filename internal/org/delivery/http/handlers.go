package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"missionmind/internal/org"
	"missionmind/pkg/response"
)

// CreateUnit godoc
// @Summary     Create an org unit
// @Description Registers a new organizational unit with a caller-chosen id.
// @Tags        Org
// @Accept      json
// @Produce     json
// @Param       body body createUnitReq true "Org unit data"
// @Success     200 {object} createUnitResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     409 {object} response.Resp "Conflict - id already exists"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/org-units [POST]
func (h *handler) CreateUnit(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateUnitReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.CreateUnit(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.CreateUnit: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newCreateUnitResp(output))
}

// ListUnits godoc
// @Summary     List org units
// @Description Returns a paginated list of org units with optional filters.
// @Tags        Org
// @Accept      json
// @Produce     json
// @Param       echelon     query string false "Filter by echelon (e.g. HQDA, ACOM)"
// @Param       parent_id   query string false "Filter by parent unit id"
// @Param       active_only query bool   false "Only active units"
// @Param       limit       query int    false "Page size (default: 20)"
// @Param       offset      query int    false "Page offset (default: 0)"
// @Success     200 {object} listUnitsResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/org-units [GET]
func (h *handler) ListUnits(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListUnitsReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.ListUnits(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.ListUnits: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListUnitsResp(output))
}

// DetailUnit godoc
// @Summary     Get org unit detail
// @Description Returns a single org unit by its id.
// @Tags        Org
// @Accept      json
// @Produce     json
// @Param       id path string true "Org unit ID"
// @Success     200 {object} detailUnitResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/org-units/{id} [GET]
func (h *handler) DetailUnit(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id is required"})
		return
	}

	output, err := h.uc.DetailUnit(ctx, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.DetailUnit: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newDetailUnitResp(output))
}

// UpdateUnit godoc
// @Summary     Update an org unit
// @Description Updates name, echelon, or parent. Re-parenting below a descendant is refused.
// @Tags        Org
// @Accept      json
// @Produce     json
// @Param       id   path string        true "Org unit ID"
// @Param       body body updateUnitReq true "Fields to update"
// @Success     200 {object} updateUnitResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     422 {object} response.Resp "Unprocessable - would create a cycle"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/org-units/{id} [PUT]
func (h *handler) UpdateUnit(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateUnitReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.UpdateUnit(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.UpdateUnit: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newUpdateUnitResp(output))
}

// DeactivateUnit godoc
// @Summary     Deactivate an org unit
// @Description Marks an org unit inactive; history stays readable.
// @Tags        Org
// @Accept      json
// @Produce     json
// @Param       id path string true "Org unit ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/org-units/{id} [DELETE]
func (h *handler) DeactivateUnit(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id is required"})
		return
	}

	if err := h.uc.DeactivateUnit(ctx, id); err != nil {
		h.l.Errorf(ctx, "uc.DeactivateUnit: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}

// CreateAuthority godoc
// @Summary     Add an approving authority
// @Description Registers an approving authority under an org unit.
// @Tags        Org
// @Accept      json
// @Produce     json
// @Param       id   path string             true "Org unit ID"
// @Param       body body createAuthorityReq true "Authority data"
// @Success     200 {object} createAuthorityResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/org-units/{id}/authorities [POST]
func (h *handler) CreateAuthority(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateAuthorityReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.CreateAuthority(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.CreateAuthority: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newCreateAuthorityResp(output))
}

// ListAuthorities godoc
// @Summary     List approving authorities
// @Description Returns the authority roster of an org unit.
// @Tags        Org
// @Accept      json
// @Produce     json
// @Param       id path string true "Org unit ID"
// @Success     200 {object} listAuthoritiesResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/org-units/{id}/authorities [GET]
func (h *handler) ListAuthorities(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id is required"})
		return
	}

	output, err := h.uc.ListAuthorities(ctx, org.ListAuthoritiesInput{OrgUnitID: id})
	if err != nil {
		h.l.Errorf(ctx, "uc.ListAuthorities: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListAuthoritiesResp(output))
}
