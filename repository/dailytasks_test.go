package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/Lasya-02/Mama-Sync/model"
	"github.com/Lasya-02/Mama-Sync/utils"
)

func TestDailyTaskRepo(t *testing.T) {
	db := newTestDatabase(t)
	repo := &DailyTaskRepo{MongoCollection: db.Collection("daily_tasks")}

	ctx := context.Background()
	userID := utils.GenerateID()
	date := "2025-03-01"

	first := model.Task{ID: utils.GenerateID(), Emoji: "💧", Title: "Drink water", Time: "08:00"}
	second := model.Task{ID: utils.GenerateID(), Emoji: "🚶", Title: "Morning walk", Time: "09:00"}

	t.Run("EmptyDayReturnsEmptyList", func(t *testing.T) {
		tasks, err := repo.GetTasks(ctx, userID, date)
		if err != nil {
			t.Fatal("get failed:", err)
		}
		if len(tasks) != 0 {
			t.Errorf("expected empty list, got %d tasks", len(tasks))
		}
	})

	t.Run("AddTaskAppendsInOrder", func(t *testing.T) {
		if err := repo.AddTask(ctx, userID, date, first); err != nil {
			t.Fatal("add failed:", err)
		}
		if err := repo.AddTask(ctx, userID, date, second); err != nil {
			t.Fatal("add failed:", err)
		}

		tasks, err := repo.GetTasks(ctx, userID, date)
		if err != nil {
			t.Fatal("get failed:", err)
		}
		if len(tasks) != 2 {
			t.Fatalf("expected 2 tasks, got %d", len(tasks))
		}
		if tasks[0].ID != first.ID || tasks[1].ID != second.ID {
			t.Error("tasks are not in insertion order")
		}
	})

	t.Run("SetTaskCompleted", func(t *testing.T) {
		if err := repo.SetTaskCompleted(ctx, userID, date, first.ID, true); err != nil {
			t.Fatal("patch failed:", err)
		}

		task, err := repo.FindTask(ctx, userID, date, first.ID)
		if err != nil {
			t.Fatal("find failed:", err)
		}
		if !task.Completed {
			t.Error("task was not marked completed")
		}
		if task.Title != first.Title {
			t.Error("patch touched fields other than completed")
		}
	})

	t.Run("PatchUnknownTaskIsNotFound", func(t *testing.T) {
		err := repo.SetTaskCompleted(ctx, userID, date, "no-such-task", true)
		if !errors.Is(err, ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("MarkAllComplete", func(t *testing.T) {
		updated, err := repo.MarkAllComplete(ctx, userID, date)
		if err != nil {
			t.Fatal("mark all failed:", err)
		}
		if updated != 1 {
			t.Errorf("expected 1 modified document, got %d", updated)
		}

		tasks, err := repo.GetTasks(ctx, userID, date)
		if err != nil {
			t.Fatal("get failed:", err)
		}
		for _, task := range tasks {
			if !task.Completed {
				t.Errorf("task %s still incomplete", task.ID)
			}
		}
	})

	t.Run("MarkAllCompleteMissingDay", func(t *testing.T) {
		_, err := repo.MarkAllComplete(ctx, userID, "2025-03-02")
		if !errors.Is(err, ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("RemoveTask", func(t *testing.T) {
		if err := repo.RemoveTask(ctx, userID, date, second.ID); err != nil {
			t.Fatal("remove failed:", err)
		}

		tasks, err := repo.GetTasks(ctx, userID, date)
		if err != nil {
			t.Fatal("get failed:", err)
		}
		if len(tasks) != 1 {
			t.Fatalf("expected 1 task left, got %d", len(tasks))
		}

		if err := repo.RemoveTask(ctx, userID, date, second.ID); !errors.Is(err, ErrNotFound) {
			t.Errorf("expected ErrNotFound on second removal, got %v", err)
		}
	})
}
