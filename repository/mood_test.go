package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/Lasya-02/Mama-Sync/model"
	"github.com/Lasya-02/Mama-Sync/utils"
)

func TestMoodRepo(t *testing.T) {
	db := newTestDatabase(t)
	repo := &MoodRepo{MongoCollection: db.Collection("mood_tracking")}

	ctx := context.Background()
	userID := utils.GenerateID()
	date := "2025-03-01"

	t.Run("CreateAndFind", func(t *testing.T) {
		record := &model.MoodRecord{UserID: userID, Date: date, Mood: model.MoodHappy}
		if err := repo.Create(ctx, record); err != nil {
			t.Fatal("create failed:", err)
		}
		if record.CreatedAt.IsZero() {
			t.Error("create did not stamp created_at")
		}

		found, err := repo.FindByUserAndDate(ctx, userID, date)
		if err != nil {
			t.Fatal("find failed:", err)
		}
		if found.Mood != model.MoodHappy {
			t.Errorf("expected happy, got %s", found.Mood)
		}
	})

	t.Run("UpdateChangesMoodInPlace", func(t *testing.T) {
		if err := repo.Update(ctx, userID, date, model.MoodTired); err != nil {
			t.Fatal("update failed:", err)
		}

		found, err := repo.FindByUserAndDate(ctx, userID, date)
		if err != nil {
			t.Fatal("find failed:", err)
		}
		if found.Mood != model.MoodTired {
			t.Errorf("expected tired, got %s", found.Mood)
		}
		if found.UpdatedAt.IsZero() {
			t.Error("update did not stamp updated_at")
		}
	})

	t.Run("UpdateMissingDayIsNotFound", func(t *testing.T) {
		err := repo.Update(ctx, userID, "2025-03-09", model.MoodCalm)
		if !errors.Is(err, ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("HistoryIsNewestFirst", func(t *testing.T) {
		for _, day := range []string{"2025-03-02", "2025-03-03"} {
			record := &model.MoodRecord{UserID: userID, Date: day, Mood: model.MoodCalm}
			if err := repo.Create(ctx, record); err != nil {
				t.Fatal("create failed:", err)
			}
		}

		records, err := repo.FindByUser(ctx, userID, 30)
		if err != nil {
			t.Fatal("history failed:", err)
		}
		if len(records) != 3 {
			t.Fatalf("expected 3 records, got %d", len(records))
		}
		if records[0].Date != "2025-03-03" || records[2].Date != "2025-03-01" {
			t.Error("history is not sorted newest first")
		}
	})

	t.Run("HistoryHonorsLimit", func(t *testing.T) {
		records, err := repo.FindByUser(ctx, userID, 2)
		if err != nil {
			t.Fatal("history failed:", err)
		}
		if len(records) != 2 {
			t.Errorf("expected 2 records, got %d", len(records))
		}
	})

	t.Run("Delete", func(t *testing.T) {
		if err := repo.Delete(ctx, userID, date); err != nil {
			t.Fatal("delete failed:", err)
		}
		if err := repo.Delete(ctx, userID, date); !errors.Is(err, ErrNotFound) {
			t.Errorf("expected ErrNotFound on second delete, got %v", err)
		}
	})
}
