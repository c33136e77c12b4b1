package http

import (
	"github.com/gin-gonic/gin"

	pkgErrors "missionmind/pkg/errors"
)

// processCreateTaskReq binds and validates the create task request body.
func (h *handler) processCreateTaskReq(c *gin.Context) (createTaskReq, error) {
	var req createTaskReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processListTasksReq binds and validates the list tasks query parameters.
func (h *handler) processListTasksReq(c *gin.Context) (listTasksReq, error) {
	var req listTasksReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processUpdateTaskReq binds and validates the update task body + URI param.
func (h *handler) processUpdateTaskReq(c *gin.Context) (updateTaskReq, error) {
	var req updateTaskReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.ID = c.Param("id")
	if req.ID == "" {
		return req, pkgErrors.NewHTTPError(400, "id is required")
	}
	return req, req.validate()
}

// processAddAssignmentReq binds and validates the assignment body + URI param.
func (h *handler) processAddAssignmentReq(c *gin.Context) (addAssignmentReq, error) {
	var req addAssignmentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.TaskID = c.Param("id")
	if req.TaskID == "" {
		return req, pkgErrors.NewHTTPError(400, "id is required")
	}
	return req, req.validate()
}

// processAddCommentReq binds and validates the comment body + URI param.
func (h *handler) processAddCommentReq(c *gin.Context) (addCommentReq, error) {
	var req addCommentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.TaskID = c.Param("id")
	if req.TaskID == "" {
		return req, pkgErrors.NewHTTPError(400, "id is required")
	}
	return req, req.validate()
}

// processAuthoritySuggestionsReq binds and validates the suggestion query
// parameters.
func (h *handler) processAuthoritySuggestionsReq(c *gin.Context) (authoritySuggestionsReq, error) {
	var req authoritySuggestionsReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}
