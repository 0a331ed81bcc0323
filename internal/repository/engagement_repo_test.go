package repository

import (
	"TrendRadar/internal/model"
	"TrendRadar/internal/repository/testutil"
	"context"
	"testing"
	"time"
)

func TestUpsertRatingKeepsOneRowPerCriteria(t *testing.T) {
	db := testutil.DB(t)
	ctx := context.Background()
	u := testutil.SeedUser(t, db, "erin")
	c := testutil.SeedContent(t, db, u.ID, "Robotics", model.ContentTypeTechnology, model.ContentStatusApproved, time.Now())
	repo := NewEngagementRepo(db)

	first := &model.Rating{ContentID: c.ID, UserID: u.ID, Value: 2}
	if err := repo.UpsertRating(ctx, first); err != nil {
		t.Fatalf("first upsert: %v", err)
	}
	second := &model.Rating{ContentID: c.ID, UserID: u.ID, Value: 5}
	if err := repo.UpsertRating(ctx, second); err != nil {
		t.Fatalf("second upsert: %v", err)
	}

	if second.ID != first.ID {
		t.Fatalf("upsert created a new row: first=%d second=%d", first.ID, second.ID)
	}
	if n := testutil.Count(t, db, &model.Rating{}); n != 1 {
		t.Fatalf("rating rows: got=%d want=1", n)
	}
	var stored model.Rating
	if err := db.First(&stored, first.ID).Error; err != nil {
		t.Fatalf("load: %v", err)
	}
	if stored.Value != 5 {
		t.Fatalf("stored value: got=%d want=5", stored.Value)
	}

	// 不同 criteria 视为独立评分
	if err := repo.UpsertRating(ctx, &model.Rating{ContentID: c.ID, UserID: u.ID, Criteria: "impact", Value: 3}); err != nil {
		t.Fatalf("criteria upsert: %v", err)
	}
	if n := testutil.Count(t, db, &model.Rating{}); n != 2 {
		t.Fatalf("rating rows: got=%d want=2", n)
	}
}

func TestGetCommentsByContentIDNewestFirst(t *testing.T) {
	db := testutil.DB(t)
	ctx := context.Background()
	u := testutil.SeedUser(t, db, "frank")
	c := testutil.SeedContent(t, db, u.ID, "Web3", model.ContentTypeTrend, model.ContentStatusApproved, time.Now())
	repo := NewEngagementRepo(db)

	base := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	for i, text := range []string{"first", "second", "third"} {
		cm := &model.Comment{ContentID: c.ID, UserID: u.ID, Text: text, CreatedAt: base.Add(time.Duration(i) * time.Minute)}
		if err := repo.CreateComment(ctx, cm); err != nil {
			t.Fatalf("CreateComment: %v", err)
		}
	}

	got, err := repo.GetCommentsByContentID(ctx, c.ID)
	if err != nil {
		t.Fatalf("GetCommentsByContentID: %v", err)
	}
	if len(got) != 3 || got[0].Text != "third" || got[2].Text != "first" {
		t.Fatalf("unexpected order: %+v", got)
	}
}
