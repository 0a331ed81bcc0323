package repository

import (
	"TrendRadar/internal/model"
	"TrendRadar/internal/repository/testutil"
	"context"
	"testing"
	"time"
)

func TestListContentsFiltersAndOrders(t *testing.T) {
	db := testutil.DB(t)
	ctx := context.Background()
	u := testutil.SeedUser(t, db, "alice")
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	older := testutil.SeedContent(t, db, u.ID, "Solid-state batteries", model.ContentTypeTechnology, model.ContentStatusApproved, base)
	newer := testutil.SeedContent(t, db, u.ID, "Quiet quitting", model.ContentTypeTrend, model.ContentStatusApproved, base.Add(time.Hour))
	testutil.SeedContent(t, db, u.ID, "Draft battery idea", model.ContentTypeTechnology, model.ContentStatusDraft, base.Add(2*time.Hour))

	repo := NewContentRepo(db)

	got, err := repo.ListContents(ctx, ContentFilter{Status: "approved"})
	if err != nil {
		t.Fatalf("ListContents: %v", err)
	}
	if len(got) != 2 || got[0].ID != newer.ID || got[1].ID != older.ID {
		t.Fatalf("unexpected approved list: %+v", got)
	}

	got, err = repo.ListContents(ctx, ContentFilter{ContentType: "technology", Search: "batter"})
	if err != nil {
		t.Fatalf("ListContents: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("search across statuses: got=%d want=2", len(got))
	}
}

func TestListContentsSearchMatchesDescriptions(t *testing.T) {
	db := testutil.DB(t)
	ctx := context.Background()
	u := testutil.SeedUser(t, db, "bob")

	c := testutil.SeedContent(t, db, u.ID, "Untitled", model.ContentTypeInspiration, model.ContentStatusApproved, time.Now())
	long := "a deep dive into vertical farming"
	if err := db.Model(c).Update("long_description", long).Error; err != nil {
		t.Fatalf("update: %v", err)
	}

	got, err := NewContentRepo(db).ListContents(ctx, ContentFilter{Search: "vertical"})
	if err != nil {
		t.Fatalf("ListContents: %v", err)
	}
	if len(got) != 1 || got[0].ID != c.ID {
		t.Fatalf("expected match on long_description, got %+v", got)
	}
}

func TestDeleteContentRemovesRatingsAndComments(t *testing.T) {
	db := testutil.DB(t)
	ctx := context.Background()
	u := testutil.SeedUser(t, db, "carol")
	c := testutil.SeedContent(t, db, u.ID, "AI copilots", model.ContentTypeTrend, model.ContentStatusApproved, time.Now())
	other := testutil.SeedContent(t, db, u.ID, "Edge AI", model.ContentTypeTechnology, model.ContentStatusApproved, time.Now())

	engagement := NewEngagementRepo(db)
	for _, cid := range []uint64{c.ID, other.ID} {
		if err := engagement.UpsertRating(ctx, &model.Rating{ContentID: cid, UserID: u.ID, Value: 4}); err != nil {
			t.Fatalf("UpsertRating: %v", err)
		}
		if err := engagement.CreateComment(ctx, &model.Comment{ContentID: cid, UserID: u.ID, Text: "nice"}); err != nil {
			t.Fatalf("CreateComment: %v", err)
		}
	}

	repo := NewContentRepo(db)
	if err := repo.DeleteContent(ctx, c.ID); err != nil {
		t.Fatalf("DeleteContent: %v", err)
	}

	if got, _ := repo.GetContent(ctx, c.ID); got != nil {
		t.Fatal("content still present after delete")
	}
	if n := testutil.Count(t, db, &model.Rating{}); n != 1 {
		t.Fatalf("ratings left: got=%d want=1", n)
	}
	if n := testutil.Count(t, db, &model.Comment{}); n != 1 {
		t.Fatalf("comments left: got=%d want=1", n)
	}
}

func TestCountContentsByTypeIncludesZeroes(t *testing.T) {
	db := testutil.DB(t)
	u := testutil.SeedUser(t, db, "dave")
	testutil.SeedContent(t, db, u.ID, "t1", model.ContentTypeTrend, model.ContentStatusDraft, time.Now())
	testutil.SeedContent(t, db, u.ID, "t2", model.ContentTypeTrend, model.ContentStatusApproved, time.Now())

	counts, err := NewContentRepo(db).CountContentsByType(context.Background())
	if err != nil {
		t.Fatalf("CountContentsByType: %v", err)
	}
	if counts[model.ContentTypeTrend] != 2 || counts[model.ContentTypeTechnology] != 0 || counts[model.ContentTypeInspiration] != 0 {
		t.Fatalf("unexpected counts: %v", counts)
	}
}
