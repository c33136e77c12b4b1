package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"missionmind/internal/model"
	"missionmind/internal/task"
	taskhttp "missionmind/internal/task/delivery/http"
	"missionmind/pkg/log"
)

// mockUseCase returns canned outputs and captures the inputs it was given.
type mockUseCase struct {
	createOutput task.CreateTaskOutput
	createErr    error
	listOutput   task.ListTasksOutput
	listErr      error
	detailOutput task.DetailTaskOutput
	detailErr    error
	updateOutput task.UpdateTaskOutput
	updateErr    error
	deleteErr    error

	addAssignmentOutput task.AddAssignmentOutput
	addAssignmentErr    error
	addCommentOutput    task.AddCommentOutput
	addCommentErr       error
	listCommentsOutput  task.ListCommentsOutput
	listCommentsErr     error

	summaryOutput  model.TaskSummary
	summaryErr     error
	suggestions    []model.AuthoritySuggestion
	suggestionsErr error
	riskOutput     model.RiskInsight
	riskErr        error
	qualityOutput  model.QualityCheckResult
	qualityErr     error

	gotCreateInput     task.CreateTaskInput
	gotListInput       task.ListTasksInput
	gotUpdateInput     task.UpdateTaskInput
	gotAssignmentInput task.AddAssignmentInput
	gotCommentInput    task.AddCommentInput
	gotLimit           int
}

func (m *mockUseCase) Create(_ context.Context, input task.CreateTaskInput) (task.CreateTaskOutput, error) {
	m.gotCreateInput = input
	return m.createOutput, m.createErr
}

func (m *mockUseCase) List(_ context.Context, input task.ListTasksInput) (task.ListTasksOutput, error) {
	m.gotListInput = input
	return m.listOutput, m.listErr
}

func (m *mockUseCase) Detail(_ context.Context, id string) (task.DetailTaskOutput, error) {
	return m.detailOutput, m.detailErr
}

func (m *mockUseCase) Update(_ context.Context, input task.UpdateTaskInput) (task.UpdateTaskOutput, error) {
	m.gotUpdateInput = input
	return m.updateOutput, m.updateErr
}

func (m *mockUseCase) Delete(_ context.Context, id string) error {
	return m.deleteErr
}

func (m *mockUseCase) AddAssignment(_ context.Context, input task.AddAssignmentInput) (task.AddAssignmentOutput, error) {
	m.gotAssignmentInput = input
	return m.addAssignmentOutput, m.addAssignmentErr
}

func (m *mockUseCase) AddComment(_ context.Context, input task.AddCommentInput) (task.AddCommentOutput, error) {
	m.gotCommentInput = input
	return m.addCommentOutput, m.addCommentErr
}

func (m *mockUseCase) ListComments(_ context.Context, taskID string) (task.ListCommentsOutput, error) {
	return m.listCommentsOutput, m.listCommentsErr
}

func (m *mockUseCase) Summary(_ context.Context, taskID string) (model.TaskSummary, error) {
	return m.summaryOutput, m.summaryErr
}

func (m *mockUseCase) AuthoritySuggestions(_ context.Context, taskID string, limit int) ([]model.AuthoritySuggestion, error) {
	m.gotLimit = limit
	return m.suggestions, m.suggestionsErr
}

func (m *mockUseCase) Risk(_ context.Context, taskID string) (model.RiskInsight, error) {
	return m.riskOutput, m.riskErr
}

func (m *mockUseCase) QualityCheck(_ context.Context, taskID string) (model.QualityCheckResult, error) {
	return m.qualityOutput, m.qualityErr
}

func newTestRouter(uc task.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	taskhttp.RegisterRoutes(r.Group("/api/v1"), taskhttp.New(log.NewNop(), uc))
	return r
}

// envelope mirrors the standard response body for decoding in assertions.
type envelope struct {
	ErrorCode int             `json:"error_code"`
	Message   string          `json:"message"`
	Data      json.RawMessage `json:"data"`
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode response: %v (body %s)", err, w.Body.String())
	}
	return env
}

func sampleTask() model.Task {
	return model.Task{
		ID:             "T-26-000001",
		Title:          "Winter readiness inspection",
		Description:    "Inventory report for all subordinate commands",
		Classification: model.ClassificationUnclassified,
		SuspenseDate:   time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC),
		Originator:     "HQDA DCS G-3/5/7",
		OrgUnitID:      "OPS_G3",
		PriorityScore:  0.79,
		Status:         model.TaskStatusOpen,
		RecordSeriesID: "400-38a",
		Tags:           []string{"readiness", "training"},
		CreatedAt:      time.Date(2026, 8, 25, 10, 0, 0, 0, time.UTC),
		UpdatedAt:      time.Date(2026, 8, 25, 10, 0, 0, 0, time.UTC),
	}
}

func TestCreateTask_Success(t *testing.T) {
	uc := &mockUseCase{
		createOutput: task.CreateTaskOutput{
			Task: sampleTask(),
			Assignments: []model.Assignment{{
				ID:           "a-1",
				TaskID:       "T-26-000001",
				AssigneeType: model.AssigneeTypeOrg,
				AssigneeID:   "OPS_G3",
				Role:         model.AssignmentRoleOwner,
				State:        model.AssignmentStatePending,
			}},
		},
	}
	router := newTestRouter(uc)

	body := []byte(`{
		"title": "Winter readiness inspection",
		"description": "Inventory report for all subordinate commands",
		"suspense_date": "2026-09-10",
		"originator": "HQDA DCS G-3/5/7",
		"org_unit_id": "OPS_G3",
		"tags": ["readiness", "training"]
	}`)
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/tasks", bytes.NewBuffer(body))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body %s)", w.Code, w.Body.String())
	}

	env := decodeEnvelope(t, w)
	var data struct {
		Task struct {
			ID           string `json:"id"`
			SuspenseDate string `json:"suspense_date"`
		} `json:"task"`
		Assignments []struct {
			State string `json:"state"`
		} `json:"assignments"`
	}
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if data.Task.ID != "T-26-000001" || data.Task.SuspenseDate != "2026-09-10" {
		t.Errorf("task = %+v, want T-26-000001 due 2026-09-10", data.Task)
	}
	if len(data.Assignments) != 1 || data.Assignments[0].State != "pending" {
		t.Errorf("assignments = %+v, want one pending", data.Assignments)
	}

	if uc.gotCreateInput.Classification != model.ClassificationUnclassified {
		t.Errorf("classification = %q, want default U", uc.gotCreateInput.Classification)
	}
	wantDue := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	if !uc.gotCreateInput.SuspenseDate.Equal(wantDue) {
		t.Errorf("suspense = %v, want %v", uc.gotCreateInput.SuspenseDate, wantDue)
	}
}

func TestCreateTask_MissingTitle(t *testing.T) {
	router := newTestRouter(&mockUseCase{})

	body := []byte(`{"suspense_date": "2026-09-10", "originator": "HQDA", "org_unit_id": "OPS_G3"}`)
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/tasks", bytes.NewBuffer(body))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestCreateTask_BadDate(t *testing.T) {
	router := newTestRouter(&mockUseCase{})

	body := []byte(`{"title": "x", "suspense_date": "next tuesday", "originator": "HQDA", "org_unit_id": "OPS_G3"}`)
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/tasks", bytes.NewBuffer(body))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestListTasks_Success(t *testing.T) {
	uc := &mockUseCase{
		listOutput: task.ListTasksOutput{
			Tasks:  []task.TaskItem{{Task: sampleTask()}},
			Total:  1,
			Limit:  5,
			Offset: 0,
		},
	}
	router := newTestRouter(uc)

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/tasks?status=open&limit=5&due_before=2026-10-01", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body %s)", w.Code, w.Body.String())
	}
	if uc.gotListInput.Status != "open" || uc.gotListInput.Limit != 5 {
		t.Errorf("list input = %+v, want status open limit 5", uc.gotListInput)
	}
	wantDue := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)
	if !uc.gotListInput.DueBefore.Equal(wantDue) {
		t.Errorf("due before = %v, want %v", uc.gotListInput.DueBefore, wantDue)
	}

	env := decodeEnvelope(t, w)
	var data struct {
		Tasks []json.RawMessage `json:"tasks"`
		Total int               `json:"total"`
	}
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if len(data.Tasks) != 1 || data.Total != 1 {
		t.Errorf("list = %d of %d, want 1 of 1", len(data.Tasks), data.Total)
	}
}

func TestListTasks_InvalidStatus(t *testing.T) {
	router := newTestRouter(&mockUseCase{})

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/tasks?status=bogus", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestDetailTask_NotFound(t *testing.T) {
	uc := &mockUseCase{detailErr: task.ErrTaskNotFound}
	router := newTestRouter(uc)

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/tasks/T-26-999999", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
	if env := decodeEnvelope(t, w); env.Message != "task not found" {
		t.Errorf("message = %q, want task not found", env.Message)
	}
}

func TestUpdateTask_Success(t *testing.T) {
	uc := &mockUseCase{updateOutput: task.UpdateTaskOutput{Task: sampleTask()}}
	router := newTestRouter(uc)

	body := []byte(`{"status": "in_work", "tags": []}`)
	req, _ := http.NewRequest(http.MethodPatch, "/api/v1/tasks/T-26-000001", bytes.NewBuffer(body))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body %s)", w.Code, w.Body.String())
	}
	if uc.gotUpdateInput.ID != "T-26-000001" || uc.gotUpdateInput.Status != model.TaskStatusInWork {
		t.Errorf("update input = %+v, want id from path and in_work", uc.gotUpdateInput)
	}
	if uc.gotUpdateInput.Tags == nil || len(uc.gotUpdateInput.Tags) != 0 {
		t.Errorf("tags = %#v, want explicit empty slice", uc.gotUpdateInput.Tags)
	}
}

func TestDeleteTask_Success(t *testing.T) {
	router := newTestRouter(&mockUseCase{})

	req, _ := http.NewRequest(http.MethodDelete, "/api/v1/tasks/T-26-000001", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if env := decodeEnvelope(t, w); env.Message != "Success" {
		t.Errorf("message = %q, want Success", env.Message)
	}
}

func TestAddAssignment_Success(t *testing.T) {
	uc := &mockUseCase{
		addAssignmentOutput: task.AddAssignmentOutput{
			Assignment: model.Assignment{ID: "a-2", TaskID: "T-26-000001", Role: model.AssignmentRoleReviewer},
		},
	}
	router := newTestRouter(uc)

	body := []byte(`{"assignee_id": "LOG_G4", "role": "reviewer", "due_override_date": "2026-09-05"}`)
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/tasks/T-26-000001/assignments", bytes.NewBuffer(body))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body %s)", w.Code, w.Body.String())
	}
	if uc.gotAssignmentInput.TaskID != "T-26-000001" {
		t.Errorf("task id = %q, want from path", uc.gotAssignmentInput.TaskID)
	}
	if uc.gotAssignmentInput.DueOverrideDate == nil {
		t.Error("due override = nil, want parsed date")
	}
}

func TestAddAssignment_MissingAssignee(t *testing.T) {
	router := newTestRouter(&mockUseCase{})

	body := []byte(`{"role": "reviewer"}`)
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/tasks/T-26-000001/assignments", bytes.NewBuffer(body))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestAddComment_ParentNotFound(t *testing.T) {
	uc := &mockUseCase{addCommentErr: task.ErrParentCommentNotFound}
	router := newTestRouter(uc)

	body := []byte(`{"author_user_id": "u-1", "body": "ack", "parent_comment_id": "missing"}`)
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/tasks/T-26-000001/comments", bytes.NewBuffer(body))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
	if env := decodeEnvelope(t, w); env.Message != "parent comment not found" {
		t.Errorf("message = %q, want parent comment not found", env.Message)
	}
}

func TestListComments_Success(t *testing.T) {
	uc := &mockUseCase{
		listCommentsOutput: task.ListCommentsOutput{
			Comments: []model.Comment{
				{ID: "c-1", TaskID: "T-26-000001", Body: "first"},
				{ID: "c-2", TaskID: "T-26-000001", Body: "second"},
			},
		},
	}
	router := newTestRouter(uc)

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/tasks/T-26-000001/comments", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	env := decodeEnvelope(t, w)
	var data struct {
		Comments []struct {
			Body string `json:"body"`
		} `json:"comments"`
	}
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if len(data.Comments) != 2 || data.Comments[0].Body != "first" {
		t.Errorf("comments = %+v, want two, oldest first", data.Comments)
	}
}

func TestSummary_Success(t *testing.T) {
	uc := &mockUseCase{
		summaryOutput: model.TaskSummary{
			Summary:   "Task T-26-000001 from HQDA DCS G-3/5/7 focuses on Winter readiness inspection. Classification U. Priority score 0.79.",
			RiskLevel: model.RiskAmber,
			KeyPoints: []string{"Due 2026-09-10"},
		},
	}
	router := newTestRouter(uc)

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/tasks/T-26-000001/summary", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	env := decodeEnvelope(t, w)
	var data struct {
		RiskLevel string   `json:"risk_level"`
		KeyPoints []string `json:"key_points"`
	}
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if data.RiskLevel != "amber" || len(data.KeyPoints) != 1 {
		t.Errorf("summary data = %+v, want amber with one key point", data)
	}
}

func TestAuthoritySuggestions_LimitForwarded(t *testing.T) {
	uc := &mockUseCase{
		suggestions: []model.AuthoritySuggestion{
			{AuthorityID: "AUTH_G3", Title: "Chief of Operations", OrgUnitID: "OPS_G3", Confidence: 0.9},
		},
	}
	router := newTestRouter(uc)

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/tasks/T-26-000001/authority-suggestions?limit=2", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body %s)", w.Code, w.Body.String())
	}
	if uc.gotLimit != 2 {
		t.Errorf("limit = %d, want 2", uc.gotLimit)
	}

	env := decodeEnvelope(t, w)
	var data struct {
		Suggestions []struct {
			AuthorityID string `json:"authority_id"`
		} `json:"suggestions"`
	}
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if len(data.Suggestions) != 1 || data.Suggestions[0].AuthorityID != "AUTH_G3" {
		t.Errorf("suggestions = %+v, want AUTH_G3", data.Suggestions)
	}
}

func TestRisk_Success(t *testing.T) {
	uc := &mockUseCase{
		riskOutput: model.RiskInsight{
			TaskID:          "T-26-000001",
			RiskLevel:       model.RiskRed,
			LateProbability: 0.9,
			Drivers:         []string{"Task already overdue"},
		},
	}
	router := newTestRouter(uc)

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/tasks/T-26-000001/risk", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	env := decodeEnvelope(t, w)
	var data struct {
		RiskLevel       string  `json:"risk_level"`
		LateProbability float64 `json:"late_probability"`
	}
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if data.RiskLevel != "red" || data.LateProbability != 0.9 {
		t.Errorf("risk = %+v, want red/0.9", data)
	}
}

func TestQualityCheck_Success(t *testing.T) {
	uc := &mockUseCase{
		qualityOutput: model.QualityCheckResult{
			TaskID: "T-26-000001",
			Issues: []model.QualityIssue{{Code: "ARIMS_TAG", Severity: model.SeverityLow, Message: "ARIMS record series missing; add before final approval."}},
			Passed: true,
		},
	}
	router := newTestRouter(uc)

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/tasks/T-26-000001/quality-check", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	env := decodeEnvelope(t, w)
	var data struct {
		Passed bool `json:"passed"`
		Issues []struct {
			Code string `json:"code"`
		} `json:"issues"`
	}
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if !data.Passed || len(data.Issues) != 1 || data.Issues[0].Code != "ARIMS_TAG" {
		t.Errorf("quality = %+v, want passed with one ARIMS_TAG issue", data)
	}
}
