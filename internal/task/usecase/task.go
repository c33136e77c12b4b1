package usecase

import (
	"context"
	"time"

	"missionmind/internal/model"
	"missionmind/internal/task"
	repo "missionmind/internal/task/repository"
)

// Create registers a new task. The priority score is stamped from today's
// date, status always starts at open, and exactly one pending owner
// assignment is generated and persisted alongside the task.
func (uc *implUseCase) Create(ctx context.Context, input task.CreateTaskInput) (task.CreateTaskOutput, error) {
	candidate := model.Task{
		ID:             input.ID,
		Title:          input.Title,
		Description:    input.Description,
		Classification: input.Classification,
		SuspenseDate:   input.SuspenseDate,
		Originator:     input.Originator,
		OrgUnitID:      input.OrgUnitID,
		Status:         model.TaskStatusOpen,
		RecordSeriesID: input.RecordSeriesID,
		Tags:           input.Tags,
	}
	score := uc.eng.Scorer.Score(candidate, time.Now().UTC())

	created, err := uc.repo.CreateTask(ctx, repo.CreateTaskOptions{
		ID:             input.ID,
		Title:          input.Title,
		Description:    input.Description,
		Classification: input.Classification,
		SuspenseDate:   input.SuspenseDate,
		Originator:     input.Originator,
		OrgUnitID:      input.OrgUnitID,
		PriorityScore:  score,
		Status:         model.TaskStatusOpen,
		RecordSeriesID: input.RecordSeriesID,
		Tags:           input.Tags,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateTask: %v", err)
		return task.CreateTaskOutput{}, err
	}

	generated := uc.eng.Assignments.Generate(ctx, created)
	assignment, err := uc.repo.CreateAssignment(ctx, repo.CreateAssignmentOptions{
		TaskID:       generated.TaskID,
		AssigneeType: generated.AssigneeType,
		AssigneeID:   generated.AssigneeID,
		Role:         generated.Role,
		State:        generated.State,
		Rationale:    generated.Rationale,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateAssignment: %v", err)
		return task.CreateTaskOutput{}, err
	}

	return task.CreateTaskOutput{
		Task:        created,
		Assignments: []model.Assignment{assignment},
	}, nil
}

// List returns a filtered page of tasks, each with its assignments.
func (uc *implUseCase) List(ctx context.Context, input task.ListTasksInput) (task.ListTasksOutput, error) {
	tasks, total, err := uc.repo.ListTasks(ctx, repo.ListTasksOptions{
		Status:    input.Status,
		OrgUnitID: input.OrgUnitID,
		DueBefore: input.DueBefore,
		Limit:     input.Limit,
		Offset:    input.Offset,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListTasks: %v", err)
		return task.ListTasksOutput{}, err
	}

	byTask := map[string][]model.Assignment{}
	if len(tasks) > 0 {
		ids := make([]string, len(tasks))
		for i, t := range tasks {
			ids[i] = t.ID
		}
		assignments, err := uc.repo.ListAssignments(ctx, repo.ListAssignmentsOptions{TaskIDs: ids})
		if err != nil {
			uc.l.Errorf(ctx, "uc.List ListAssignments: %v", err)
			return task.ListTasksOutput{}, err
		}
		for _, a := range assignments {
			byTask[a.TaskID] = append(byTask[a.TaskID], a)
		}
	}

	items := make([]task.TaskItem, 0, len(tasks))
	for _, t := range tasks {
		items = append(items, task.TaskItem{Task: t, Assignments: byTask[t.ID]})
	}

	return task.ListTasksOutput{
		Tasks:  items,
		Total:  total,
		Limit:  input.Limit,
		Offset: input.Offset,
	}, nil
}

// Detail retrieves a single task with its assignments. Returns
// ErrTaskNotFound when not found.
func (uc *implUseCase) Detail(ctx context.Context, id string) (task.DetailTaskOutput, error) {
	found, err := uc.repo.GetOneTask(ctx, repo.GetOneTaskOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Detail GetOneTask: %v", err)
		return task.DetailTaskOutput{}, err
	}
	if found.ID == "" {
		return task.DetailTaskOutput{}, task.ErrTaskNotFound
	}

	assignments, err := uc.repo.ListAssignments(ctx, repo.ListAssignmentsOptions{TaskID: id})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Detail ListAssignments: %v", err)
		return task.DetailTaskOutput{}, err
	}

	return task.DetailTaskOutput{Task: found, Assignments: assignments}, nil
}

// Update applies a partial update, re-scores the priority from the merged
// fields, and bumps UpdatedAt. Returns ErrTaskNotFound when not found.
func (uc *implUseCase) Update(ctx context.Context, input task.UpdateTaskInput) (task.UpdateTaskOutput, error) {
	existing, err := uc.repo.GetOneTask(ctx, repo.GetOneTaskOptions{ID: input.ID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update GetOneTask: %v", err)
		return task.UpdateTaskOutput{}, err
	}
	if existing.ID == "" {
		return task.UpdateTaskOutput{}, task.ErrTaskNotFound
	}

	merged := existing
	merged.Title = uc.coalesce(input.Title, existing.Title)
	merged.Description = uc.coalesce(input.Description, existing.Description)
	merged.Classification = model.Classification(uc.coalesce(string(input.Classification), string(existing.Classification)))
	merged.Originator = uc.coalesce(input.Originator, existing.Originator)
	merged.OrgUnitID = uc.coalesce(input.OrgUnitID, existing.OrgUnitID)
	merged.RecordSeriesID = uc.coalesce(input.RecordSeriesID, existing.RecordSeriesID)
	merged.Status = model.TaskStatus(uc.coalesce(string(input.Status), string(existing.Status)))
	if !input.SuspenseDate.IsZero() {
		merged.SuspenseDate = input.SuspenseDate
	}
	if input.Tags != nil {
		merged.Tags = input.Tags
	}
	merged.PriorityScore = uc.eng.Scorer.Score(merged, time.Now().UTC())

	updated, err := uc.repo.UpdateTask(ctx, repo.UpdateTaskOptions{
		ID:             merged.ID,
		Title:          merged.Title,
		Description:    merged.Description,
		Classification: merged.Classification,
		SuspenseDate:   merged.SuspenseDate,
		Originator:     merged.Originator,
		OrgUnitID:      merged.OrgUnitID,
		PriorityScore:  merged.PriorityScore,
		Status:         merged.Status,
		RecordSeriesID: merged.RecordSeriesID,
		Tags:           merged.Tags,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update UpdateTask: %v", err)
		return task.UpdateTaskOutput{}, err
	}
	if updated.ID == "" {
		return task.UpdateTaskOutput{}, task.ErrTaskNotFound
	}

	assignments, err := uc.repo.ListAssignments(ctx, repo.ListAssignmentsOptions{TaskID: updated.ID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update ListAssignments: %v", err)
		return task.UpdateTaskOutput{}, err
	}

	return task.UpdateTaskOutput{Task: updated, Assignments: assignments}, nil
}

// Delete removes a task with its assignments and comments. Returns
// ErrTaskNotFound when not found.
func (uc *implUseCase) Delete(ctx context.Context, id string) error {
	existing, err := uc.repo.GetOneTask(ctx, repo.GetOneTaskOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Delete GetOneTask: %v", err)
		return err
	}
	if existing.ID == "" {
		return task.ErrTaskNotFound
	}
	if err := uc.repo.DeleteTask(ctx, id); err != nil {
		uc.l.Errorf(ctx, "uc.Delete DeleteTask: %v", err)
		return err
	}
	return nil
}
