package http

import (
	"time"

	"missionmind/internal/model"
	"missionmind/internal/task"
	"missionmind/pkg/response"
)

// --- Request DTOs ---

type createTaskReq struct {
	ID             string   `json:"id"               binding:"max=64"`
	Title          string   `json:"title"            binding:"required,min=1,max=255"`
	Description    string   `json:"description"      binding:"max=4000"`
	Classification string   `json:"classification"   binding:"omitempty,oneof=U C S TS"`
	SuspenseDate   string   `json:"suspense_date"    binding:"required,datetime=2006-01-02"`
	Originator     string   `json:"originator"       binding:"required,min=1,max=255"`
	OrgUnitID      string   `json:"org_unit_id"      binding:"required,min=1,max=64"`
	RecordSeriesID string   `json:"record_series_id" binding:"max=64"`
	Tags           []string `json:"tags"`
}

func (r createTaskReq) validate() error { return nil }

func (r createTaskReq) toInput() task.CreateTaskInput {
	// Binding already guaranteed the date layout.
	suspense, _ := time.ParseInLocation(response.DateFormat, r.SuspenseDate, time.UTC)
	classification := r.Classification
	if classification == "" {
		classification = string(model.ClassificationUnclassified)
	}
	return task.CreateTaskInput{
		ID:             r.ID,
		Title:          r.Title,
		Description:    r.Description,
		Classification: model.Classification(classification),
		SuspenseDate:   suspense,
		Originator:     r.Originator,
		OrgUnitID:      r.OrgUnitID,
		RecordSeriesID: r.RecordSeriesID,
		Tags:           r.Tags,
	}
}

// ---

type listTasksReq struct {
	Status    string `form:"status"      binding:"omitempty,oneof=draft open in_work overdue closed"`
	DueBefore string `form:"due_before"  binding:"omitempty,datetime=2006-01-02"`
	OrgUnitID string `form:"org_unit_id"`
	Limit     int    `form:"limit"`
	Offset    int    `form:"offset"`
}

func (r listTasksReq) validate() error { return nil }

func (r listTasksReq) toInput() task.ListTasksInput {
	var dueBefore time.Time
	if r.DueBefore != "" {
		dueBefore, _ = time.ParseInLocation(response.DateFormat, r.DueBefore, time.UTC)
	}
	limit := r.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if r.Offset < 0 {
		r.Offset = 0
	}
	return task.ListTasksInput{
		Status:    r.Status,
		DueBefore: dueBefore,
		OrgUnitID: r.OrgUnitID,
		Limit:     limit,
		Offset:    r.Offset,
	}
}

// ---

type updateTaskReq struct {
	ID             string   `json:"-"` // populated from URI param
	Title          string   `json:"title"            binding:"omitempty,min=1,max=255"`
	Description    string   `json:"description"      binding:"max=4000"`
	Classification string   `json:"classification"   binding:"omitempty,oneof=U C S TS"`
	SuspenseDate   string   `json:"suspense_date"    binding:"omitempty,datetime=2006-01-02"`
	Originator     string   `json:"originator"       binding:"omitempty,min=1,max=255"`
	OrgUnitID      string   `json:"org_unit_id"      binding:"omitempty,min=1,max=64"`
	RecordSeriesID string   `json:"record_series_id" binding:"max=64"`
	Status         string   `json:"status"           binding:"omitempty,oneof=draft open in_work overdue closed"`
	Tags           []string `json:"tags"`
}

func (r updateTaskReq) validate() error { return nil }

func (r updateTaskReq) toInput() task.UpdateTaskInput {
	var suspense time.Time
	if r.SuspenseDate != "" {
		suspense, _ = time.ParseInLocation(response.DateFormat, r.SuspenseDate, time.UTC)
	}
	return task.UpdateTaskInput{
		ID:             r.ID,
		Title:          r.Title,
		Description:    r.Description,
		Classification: model.Classification(r.Classification),
		SuspenseDate:   suspense,
		Originator:     r.Originator,
		OrgUnitID:      r.OrgUnitID,
		RecordSeriesID: r.RecordSeriesID,
		Status:         model.TaskStatus(r.Status),
		Tags:           r.Tags,
	}
}

// ---

type addAssignmentReq struct {
	TaskID          string `json:"-"` // populated from URI param
	AssigneeType    string `json:"assignee_type"     binding:"omitempty,oneof=org user"`
	AssigneeID      string `json:"assignee_id"       binding:"required,min=1,max=64"`
	Role            string `json:"role"              binding:"required,oneof=owner reviewer"`
	DueOverrideDate string `json:"due_override_date" binding:"omitempty,datetime=2006-01-02"`
	State           string `json:"state"             binding:"omitempty,oneof=pending accepted declined"`
	Rationale       string `json:"rationale"         binding:"max=1024"`
}

func (r addAssignmentReq) validate() error { return nil }

func (r addAssignmentReq) toInput() task.AddAssignmentInput {
	var due *time.Time
	if r.DueOverrideDate != "" {
		d, _ := time.ParseInLocation(response.DateFormat, r.DueOverrideDate, time.UTC)
		due = &d
	}
	return task.AddAssignmentInput{
		TaskID:          r.TaskID,
		AssigneeType:    r.AssigneeType,
		AssigneeID:      r.AssigneeID,
		Role:            r.Role,
		DueOverrideDate: due,
		State:           r.State,
		Rationale:       r.Rationale,
	}
}

// ---

type addCommentReq struct {
	TaskID          string `json:"-"` // populated from URI param
	AuthorUserID    string `json:"author_user_id"    binding:"required,min=1,max=64"`
	Body            string `json:"body"              binding:"required,min=1,max=4000"`
	ParentCommentID string `json:"parent_comment_id" binding:"max=64"`
}

func (r addCommentReq) validate() error { return nil }

func (r addCommentReq) toInput() task.AddCommentInput {
	return task.AddCommentInput{
		TaskID:          r.TaskID,
		AuthorUserID:    r.AuthorUserID,
		Body:            r.Body,
		ParentCommentID: r.ParentCommentID,
	}
}

// ---

type authoritySuggestionsReq struct {
	Limit int `form:"limit" binding:"omitempty,min=1,max=20"`
}

func (r authoritySuggestionsReq) validate() error { return nil }

// --- Response DTOs ---

type taskResp struct {
	ID             string        `json:"id"`
	Title          string        `json:"title"`
	Description    string        `json:"description"`
	Classification string        `json:"classification"`
	SuspenseDate   response.Date `json:"suspense_date"`
	Originator     string        `json:"originator"`
	OrgUnitID      string        `json:"org_unit_id"`
	PriorityScore  float64       `json:"priority_score"`
	Status         string        `json:"status"`
	RecordSeriesID string        `json:"record_series_id"`
	Tags           []string      `json:"tags"`
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`
}

func newTaskResp(t model.Task) taskResp {
	return taskResp{
		ID:             t.ID,
		Title:          t.Title,
		Description:    t.Description,
		Classification: string(t.Classification),
		SuspenseDate:   response.NewDate(t.SuspenseDate),
		Originator:     t.Originator,
		OrgUnitID:      t.OrgUnitID,
		PriorityScore:  t.PriorityScore,
		Status:         string(t.Status),
		RecordSeriesID: t.RecordSeriesID,
		Tags:           t.Tags,
		CreatedAt:      t.CreatedAt,
		UpdatedAt:      t.UpdatedAt,
	}
}

type assignmentResp struct {
	ID              string         `json:"id"`
	TaskID          string         `json:"task_id"`
	AssigneeType    string         `json:"assignee_type"`
	AssigneeID      string         `json:"assignee_id"`
	Role            string         `json:"role"`
	DueOverrideDate *response.Date `json:"due_override_date"`
	State           string         `json:"state"`
	Rationale       string         `json:"rationale"`
	CreatedAt       time.Time      `json:"created_at"`
}

func newAssignmentResp(a model.Assignment) assignmentResp {
	var due *response.Date
	if a.DueOverrideDate != nil {
		d := response.NewDate(*a.DueOverrideDate)
		due = &d
	}
	return assignmentResp{
		ID:              a.ID,
		TaskID:          a.TaskID,
		AssigneeType:    a.AssigneeType,
		AssigneeID:      a.AssigneeID,
		Role:            a.Role,
		DueOverrideDate: due,
		State:           a.State,
		Rationale:       a.Rationale,
		CreatedAt:       a.CreatedAt,
	}
}

func newAssignmentResps(assignments []model.Assignment) []assignmentResp {
	out := make([]assignmentResp, len(assignments))
	for i, a := range assignments {
		out[i] = newAssignmentResp(a)
	}
	return out
}

type commentResp struct {
	ID              string    `json:"id"`
	TaskID          string    `json:"task_id"`
	AuthorUserID    string    `json:"author_user_id"`
	Body            string    `json:"body"`
	ParentCommentID string    `json:"parent_comment_id"`
	CreatedAt       time.Time `json:"created_at"`
}

func newCommentResp(c model.Comment) commentResp {
	return commentResp{
		ID:              c.ID,
		TaskID:          c.TaskID,
		AuthorUserID:    c.AuthorUserID,
		Body:            c.Body,
		ParentCommentID: c.ParentCommentID,
		CreatedAt:       c.CreatedAt,
	}
}

type createTaskResp struct {
	Task        taskResp         `json:"task"`
	Assignments []assignmentResp `json:"assignments"`
}

func (h *handler) newCreateTaskResp(out task.CreateTaskOutput) createTaskResp {
	return createTaskResp{
		Task:        newTaskResp(out.Task),
		Assignments: newAssignmentResps(out.Assignments),
	}
}

type taskItemResp struct {
	Task        taskResp         `json:"task"`
	Assignments []assignmentResp `json:"assignments"`
}

type listTasksResp struct {
	Tasks  []taskItemResp `json:"tasks"`
	Total  int            `json:"total"`
	Limit  int            `json:"limit"`
	Offset int            `json:"offset"`
}

func (h *handler) newListTasksResp(out task.ListTasksOutput) listTasksResp {
	items := make([]taskItemResp, len(out.Tasks))
	for i, item := range out.Tasks {
		items[i] = taskItemResp{
			Task:        newTaskResp(item.Task),
			Assignments: newAssignmentResps(item.Assignments),
		}
	}
	return listTasksResp{
		Tasks:  items,
		Total:  out.Total,
		Limit:  out.Limit,
		Offset: out.Offset,
	}
}

type detailTaskResp struct {
	Task        taskResp         `json:"task"`
	Assignments []assignmentResp `json:"assignments"`
}

func (h *handler) newDetailTaskResp(out task.DetailTaskOutput) detailTaskResp {
	return detailTaskResp{
		Task:        newTaskResp(out.Task),
		Assignments: newAssignmentResps(out.Assignments),
	}
}

type updateTaskResp struct {
	Task        taskResp         `json:"task"`
	Assignments []assignmentResp `json:"assignments"`
}

func (h *handler) newUpdateTaskResp(out task.UpdateTaskOutput) updateTaskResp {
	return updateTaskResp{
		Task:        newTaskResp(out.Task),
		Assignments: newAssignmentResps(out.Assignments),
	}
}

type addAssignmentResp struct {
	Assignment assignmentResp `json:"assignment"`
}

func (h *handler) newAddAssignmentResp(out task.AddAssignmentOutput) addAssignmentResp {
	return addAssignmentResp{Assignment: newAssignmentResp(out.Assignment)}
}

type addCommentResp struct {
	Comment commentResp `json:"comment"`
}

func (h *handler) newAddCommentResp(out task.AddCommentOutput) addCommentResp {
	return addCommentResp{Comment: newCommentResp(out.Comment)}
}

type listCommentsResp struct {
	Comments []commentResp `json:"comments"`
}

func (h *handler) newListCommentsResp(out task.ListCommentsOutput) listCommentsResp {
	comments := make([]commentResp, len(out.Comments))
	for i, c := range out.Comments {
		comments[i] = newCommentResp(c)
	}
	return listCommentsResp{Comments: comments}
}

type summaryResp struct {
	Summary   string   `json:"summary"`
	RiskLevel string   `json:"risk_level"`
	KeyPoints []string `json:"key_points"`
}

func (h *handler) newSummaryResp(out model.TaskSummary) summaryResp {
	return summaryResp{
		Summary:   out.Summary,
		RiskLevel: string(out.RiskLevel),
		KeyPoints: out.KeyPoints,
	}
}

type authoritySuggestionResp struct {
	AuthorityID string  `json:"authority_id"`
	Title       string  `json:"title"`
	OrgUnitID   string  `json:"org_unit_id"`
	Grade       string  `json:"grade"`
	Confidence  float64 `json:"confidence"`
	Rationale   string  `json:"rationale"`
}

type authoritySuggestionsResp struct {
	Suggestions []authoritySuggestionResp `json:"suggestions"`
}

func (h *handler) newAuthoritySuggestionsResp(suggestions []model.AuthoritySuggestion) authoritySuggestionsResp {
	out := make([]authoritySuggestionResp, len(suggestions))
	for i, s := range suggestions {
		out[i] = authoritySuggestionResp{
			AuthorityID: s.AuthorityID,
			Title:       s.Title,
			OrgUnitID:   s.OrgUnitID,
			Grade:       s.Grade,
			Confidence:  s.Confidence,
			Rationale:   s.Rationale,
		}
	}
	return authoritySuggestionsResp{Suggestions: out}
}

type riskResp struct {
	TaskID             string   `json:"task_id"`
	RiskLevel          string   `json:"risk_level"`
	LateProbability    float64  `json:"late_probability"`
	Drivers            []string `json:"drivers"`
	RecommendedActions []string `json:"recommended_actions"`
}

func (h *handler) newRiskResp(out model.RiskInsight) riskResp {
	return riskResp{
		TaskID:             out.TaskID,
		RiskLevel:          string(out.RiskLevel),
		LateProbability:    out.LateProbability,
		Drivers:            out.Drivers,
		RecommendedActions: out.RecommendedActions,
	}
}

type qualityIssueResp struct {
	Code     string `json:"code"`
	Severity string `json:"severity"`
	Message  string `json:"message"`
}

type qualityCheckResp struct {
	TaskID string             `json:"task_id"`
	Issues []qualityIssueResp `json:"issues"`
	Passed bool               `json:"passed"`
}

func (h *handler) newQualityCheckResp(out model.QualityCheckResult) qualityCheckResp {
	issues := make([]qualityIssueResp, len(out.Issues))
	for i, issue := range out.Issues {
		issues[i] = qualityIssueResp{
			Code:     issue.Code,
			Severity: string(issue.Severity),
			Message:  issue.Message,
		}
	}
	return qualityCheckResp{
		TaskID: out.TaskID,
		Issues: issues,
		Passed: out.Passed,
	}
}
