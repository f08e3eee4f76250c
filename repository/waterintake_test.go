package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/Lasya-02/Mama-Sync/model"
	"github.com/Lasya-02/Mama-Sync/utils"
)

func TestWaterIntakeRepo(t *testing.T) {
	db := newTestDatabase(t)
	repo := &WaterIntakeRepo{MongoCollection: db.Collection("water_intake")}

	ctx := context.Background()
	userID := utils.GenerateID()
	date := "2025-03-01"

	t.Run("CreateAndFind", func(t *testing.T) {
		intake := &model.WaterIntake{UserID: userID, Date: date, GoalIntake: 2500, CurrentIntake: 0}
		if err := repo.Create(ctx, intake); err != nil {
			t.Fatal("create failed:", err)
		}

		found, err := repo.FindByUserAndDate(ctx, userID, date)
		if err != nil {
			t.Fatal("find failed:", err)
		}
		if found.GoalIntake != 2500 || found.CurrentIntake != 0 {
			t.Errorf("unexpected record: %+v", found)
		}
	})

	t.Run("DuplicateCreateIsRejected", func(t *testing.T) {
		dup := &model.WaterIntake{UserID: userID, Date: date, GoalIntake: 1500, CurrentIntake: 999}
		if err := repo.Create(ctx, dup); !errors.Is(err, ErrDuplicate) {
			t.Fatalf("expected ErrDuplicate, got %v", err)
		}

		// The rejected create must not touch the existing record.
		found, err := repo.FindByUserAndDate(ctx, userID, date)
		if err != nil {
			t.Fatal("find failed:", err)
		}
		if found.GoalIntake != 2500 || found.CurrentIntake != 0 {
			t.Errorf("duplicate create modified the record: %+v", found)
		}
	})

	t.Run("IncrementAccumulates", func(t *testing.T) {
		if err := repo.IncrementIntake(ctx, userID, date, 300); err != nil {
			t.Fatal("increment failed:", err)
		}
		if err := repo.IncrementIntake(ctx, userID, date, 300); err != nil {
			t.Fatal("increment failed:", err)
		}

		found, err := repo.FindByUserAndDate(ctx, userID, date)
		if err != nil {
			t.Fatal("find failed:", err)
		}
		if found.CurrentIntake != 600 {
			t.Errorf("expected 600 ml, got %d", found.CurrentIntake)
		}
		if found.GoalIntake != 2500 {
			t.Errorf("increment changed the goal: %d", found.GoalIntake)
		}
	})

	t.Run("ResetIsIdempotent", func(t *testing.T) {
		for i := 0; i < 2; i++ {
			if err := repo.SetIntake(ctx, userID, date, 0); err != nil {
				t.Fatal("reset failed:", err)
			}
			found, err := repo.FindByUserAndDate(ctx, userID, date)
			if err != nil {
				t.Fatal("find failed:", err)
			}
			if found.CurrentIntake != 0 {
				t.Errorf("expected 0 ml after reset, got %d", found.CurrentIntake)
			}
		}
	})

	t.Run("FindLatestGoalUsesNewestDate", func(t *testing.T) {
		later := &model.WaterIntake{UserID: userID, Date: "2025-03-05", GoalIntake: 3000}
		if err := repo.Create(ctx, later); err != nil {
			t.Fatal("create failed:", err)
		}

		goal, err := repo.FindLatestGoal(ctx, userID)
		if err != nil {
			t.Fatal("latest goal failed:", err)
		}
		if goal != 3000 {
			t.Errorf("expected goal 3000, got %d", goal)
		}
	})

	t.Run("FindLatestGoalUnknownUser", func(t *testing.T) {
		if _, err := repo.FindLatestGoal(ctx, utils.GenerateID()); !errors.Is(err, ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("Delete", func(t *testing.T) {
		if err := repo.Delete(ctx, userID, date); err != nil {
			t.Fatal("delete failed:", err)
		}
		if err := repo.Delete(ctx, userID, date); !errors.Is(err, ErrNotFound) {
			t.Errorf("expected ErrNotFound on second delete, got %v", err)
		}
		if _, err := repo.FindByUserAndDate(ctx, userID, date); !errors.Is(err, ErrNotFound) {
			t.Errorf("expected ErrNotFound after delete, got %v", err)
		}
	})
}
