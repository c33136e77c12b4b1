package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"missionmind/pkg/response"
)

// Create godoc
// @Summary     Create a task
// @Description Registers a new tasking, stamps its priority score, and generates the initial owner assignment.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       body body createTaskReq true "Task data"
// @Success     200 {object} createTaskResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateTaskReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Create(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Create: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newCreateTaskResp(output))
}

// List godoc
// @Summary     List tasks
// @Description Returns a paginated list of tasks with optional filters. The due_before filter is inclusive.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       status      query string false "Filter by status" Enums(draft, open, in_work, overdue, closed)
// @Param       due_before  query string false "Only tasks due on or before this date (YYYY-MM-DD)"
// @Param       org_unit_id query string false "Filter by owning org unit"
// @Param       limit       query int    false "Page size (default: 20)"
// @Param       offset      query int    false "Page offset (default: 0)"
// @Success     200 {object} listTasksResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListTasksReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.List(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListTasksResp(output))
}

// Detail godoc
// @Summary     Get task detail
// @Description Returns a single task with its assignments.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} detailTaskResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id is required"})
		return
	}

	output, err := h.uc.Detail(ctx, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.Detail: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newDetailTaskResp(output))
}

// Update godoc
// @Summary     Update a task
// @Description Applies a partial update and re-scores the task's priority.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       id   path string        true "Task ID"
// @Param       body body updateTaskReq true "Fields to update"
// @Success     200 {object} updateTaskResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/{id} [PATCH]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateTaskReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Update(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Update: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newUpdateTaskResp(output))
}

// Delete godoc
// @Summary     Delete a task
// @Description Removes a task together with its assignments and comments.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id is required"})
		return
	}

	if err := h.uc.Delete(ctx, id); err != nil {
		h.l.Errorf(ctx, "uc.Delete: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}

// AddAssignment godoc
// @Summary     Add an assignment
// @Description Records a manual assignment on a task. Defaults to a pending org assignment.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       id   path string           true "Task ID"
// @Param       body body addAssignmentReq true "Assignment data"
// @Success     200 {object} addAssignmentResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/{id}/assignments [POST]
func (h *handler) AddAssignment(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processAddAssignmentReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.AddAssignment(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.AddAssignment: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newAddAssignmentResp(output))
}

// AddComment godoc
// @Summary     Add a comment
// @Description Records a comment on a task, optionally threaded under a parent comment on the same task.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       id   path string        true "Task ID"
// @Param       body body addCommentReq true "Comment data"
// @Success     200 {object} addCommentResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/{id}/comments [POST]
func (h *handler) AddComment(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processAddCommentReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.AddComment(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.AddComment: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newAddCommentResp(output))
}

// ListComments godoc
// @Summary     List comments
// @Description Returns the comments of a task, oldest first.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} listCommentsResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/{id}/comments [GET]
func (h *handler) ListComments(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id is required"})
		return
	}

	output, err := h.uc.ListComments(ctx, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.ListComments: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListCommentsResp(output))
}

// Summary godoc
// @Summary     Summarize a task
// @Description Returns a heuristic digest of the task and its comment thread. Read-only.
// @Tags        Insights
// @Accept      json
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} summaryResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/{id}/summary [GET]
func (h *handler) Summary(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id is required"})
		return
	}

	output, err := h.uc.Summary(ctx, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.Summary: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newSummaryResp(output))
}

// AuthoritySuggestions godoc
// @Summary     Suggest approving authorities
// @Description Returns ranked approving-authority candidates walking up the org hierarchy. Read-only.
// @Tags        Insights
// @Accept      json
// @Produce     json
// @Param       id    path  string true  "Task ID"
// @Param       limit query int    false "Max suggestions (default: 3)"
// @Success     200 {object} authoritySuggestionsResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/{id}/authority-suggestions [GET]
func (h *handler) AuthoritySuggestions(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id is required"})
		return
	}

	req, err := h.processAuthoritySuggestionsReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	suggestions, err := h.uc.AuthoritySuggestions(ctx, id, req.Limit)
	if err != nil {
		h.l.Errorf(ctx, "uc.AuthoritySuggestions: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newAuthoritySuggestionsResp(suggestions))
}

// Risk godoc
// @Summary     Assess task risk
// @Description Returns the lateness-risk view of a task. Read-only.
// @Tags        Insights
// @Accept      json
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} riskResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/{id}/risk [GET]
func (h *handler) Risk(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id is required"})
		return
	}

	output, err := h.uc.Risk(ctx, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.Risk: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newRiskResp(output))
}

// QualityCheck godoc
// @Summary     Check task quality
// @Description Runs the completeness rules over a task. Read-only.
// @Tags        Insights
// @Accept      json
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} qualityCheckResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/{id}/quality-check [GET]
func (h *handler) QualityCheck(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id is required"})
		return
	}

	output, err := h.uc.QualityCheck(ctx, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.QualityCheck: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newQualityCheckResp(output))
}
