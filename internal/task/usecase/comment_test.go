package usecase_test

import (
	"context"
	"errors"
	"testing"

	"missionmind/internal/model"
	"missionmind/internal/task"
)

func TestAddComment(t *testing.T) {
	ctx := context.Background()

	t.Run("records a top-level comment", func(t *testing.T) {
		repo := newMockRepository(seedTask("T-26-000001"))
		uc := newTestUseCase(repo)

		out, err := uc.AddComment(ctx, task.AddCommentInput{
			TaskID:       "T-26-000001",
			AuthorUserID: "u-1024",
			Body:         "Initial guidance issued",
		})
		if err != nil {
			t.Fatalf("AddComment() error = %v", err)
		}
		if out.Comment.ID == "" || out.Comment.TaskID != "T-26-000001" {
			t.Errorf("AddComment() = %+v, want a stored comment on T-26-000001", out.Comment)
		}
	})

	t.Run("threads under a parent on the same task", func(t *testing.T) {
		repo := newMockRepository(seedTask("T-26-000001"))
		repo.comments = []model.Comment{{ID: "comment-1", TaskID: "T-26-000001", Body: "Initial guidance issued"}}
		uc := newTestUseCase(repo)

		out, err := uc.AddComment(ctx, task.AddCommentInput{
			TaskID:          "T-26-000001",
			AuthorUserID:    "u-2048",
			Body:            "Acknowledged",
			ParentCommentID: "comment-1",
		})
		if err != nil {
			t.Fatalf("AddComment() error = %v", err)
		}
		if out.Comment.ParentCommentID != "comment-1" {
			t.Errorf("AddComment() parent = %q, want comment-1", out.Comment.ParentCommentID)
		}
	})

	t.Run("unknown parent comment", func(t *testing.T) {
		repo := newMockRepository(seedTask("T-26-000001"))
		uc := newTestUseCase(repo)

		_, err := uc.AddComment(ctx, task.AddCommentInput{
			TaskID:          "T-26-000001",
			Body:            "Acknowledged",
			ParentCommentID: "comment-404",
		})
		if !errors.Is(err, task.ErrParentCommentNotFound) {
			t.Errorf("AddComment() error = %v, want ErrParentCommentNotFound", err)
		}
	})

	t.Run("parent comment on another task", func(t *testing.T) {
		repo := newMockRepository(seedTask("T-26-000001"), seedTask("T-26-000002"))
		repo.comments = []model.Comment{{ID: "comment-1", TaskID: "T-26-000002", Body: "Different thread"}}
		uc := newTestUseCase(repo)

		_, err := uc.AddComment(ctx, task.AddCommentInput{
			TaskID:          "T-26-000001",
			Body:            "Acknowledged",
			ParentCommentID: "comment-1",
		})
		if !errors.Is(err, task.ErrParentCommentNotFound) {
			t.Errorf("AddComment() error = %v, want ErrParentCommentNotFound", err)
		}
	})

	t.Run("unknown task", func(t *testing.T) {
		uc := newTestUseCase(newMockRepository())

		_, err := uc.AddComment(ctx, task.AddCommentInput{TaskID: "T-26-999999", Body: "x"})
		if !errors.Is(err, task.ErrTaskNotFound) {
			t.Errorf("AddComment() error = %v, want ErrTaskNotFound", err)
		}
	})
}

func TestListComments(t *testing.T) {
	ctx := context.Background()

	t.Run("returns comments oldest first", func(t *testing.T) {
		repo := newMockRepository(seedTask("T-26-000001"))
		uc := newTestUseCase(repo)

		for _, body := range []string{"first", "second", "third"} {
			if _, err := uc.AddComment(ctx, task.AddCommentInput{TaskID: "T-26-000001", Body: body}); err != nil {
				t.Fatalf("AddComment(%q) error = %v", body, err)
			}
		}

		out, err := uc.ListComments(ctx, "T-26-000001")
		if err != nil {
			t.Fatalf("ListComments() error = %v", err)
		}
		if len(out.Comments) != 3 {
			t.Fatalf("ListComments() = %d comments, want 3", len(out.Comments))
		}
		for i, want := range []string{"first", "second", "third"} {
			if out.Comments[i].Body != want {
				t.Errorf("ListComments()[%d] = %q, want %q", i, out.Comments[i].Body, want)
			}
		}
	})

	t.Run("unknown task", func(t *testing.T) {
		uc := newTestUseCase(newMockRepository())

		if _, err := uc.ListComments(ctx, "T-26-999999"); !errors.Is(err, task.ErrTaskNotFound) {
			t.Errorf("ListComments() error = %v, want ErrTaskNotFound", err)
		}
	})
}
