package rest

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/ldnsports/ldnsports_api/config"
	"github.com/ldnsports/ldnsports_api/internal/db"
	deps "github.com/ldnsports/ldnsports_api/internal/debs"
	"github.com/ldnsports/ldnsports_api/internal/model"
	"github.com/ldnsports/ldnsports_api/util"
)

// testDatabaseAPI connects to the database named by TEST_DATABASE_DSN,
// which must have the migrations applied. Without it these tests skip.
func testDatabaseAPI(t *testing.T) *API {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_DSN")
	if dsn == "" {
		t.Skip("TEST_DATABASE_DSN not set")
	}

	database, err := db.New(dsn)
	if err != nil {
		t.Fatalf("connecting to test database: %v", err)
	}
	t.Cleanup(database.Close)

	return &API{
		Config: &config.Config{ScraperVersion: "test"},
		Deps:   &deps.Dependencies{DB: database},
		DB:     database.Pool(),
	}
}

func testCandidate(externalID string) model.Candidate {
	return model.Candidate{
		Sport:       "Football",
		Borough:     "Hackney",
		Name:        "Hackney Marshes FC",
		Venue:       "Hackney Marshes",
		Area:        "Hackney",
		Level:       "Mixed",
		Description: "Sunday league side",
		Contact:     "hello@example.com",
		SourceURL:   "https://example.com/hackney-marshes-fc",
		ExternalID:  externalID,
	}
}

func TestUpsertScrapedGroupPreservesModeration(t *testing.T) {
	api := testDatabaseAPI(t)
	ctx := context.Background()

	externalID := "test_" + util.GenerateUUID().String()
	t.Cleanup(func() {
		api.DB.Exec(context.Background(), `DELETE FROM groups WHERE external_id = $1`, externalID)
	})

	inserted, err := api.UpsertScrapedGroup(ctx, testCandidate(externalID), model.SourceMeetupScraper, "1.0")
	if err != nil {
		t.Fatalf("first upsert: %v", err)
	}
	if !inserted {
		t.Fatal("first upsert should insert a new row")
	}

	var id uuid.UUID
	if err := api.DB.QueryRow(ctx, `SELECT id FROM groups WHERE external_id = $1`, externalID).Scan(&id); err != nil {
		t.Fatalf("loading inserted row: %v", err)
	}

	group, err := api.GetGroupByID(ctx, id)
	if err != nil {
		t.Fatalf("GetGroupByID: %v", err)
	}
	if group.Status != model.StatusNeedsReview {
		t.Fatalf("status = %s, want NEEDS_REVIEW", group.Status)
	}

	err = api.Deps.DB.RunInTx(ctx, func(tx pgx.Tx) error {
		_, err := api.moderateGroupTx(ctx, tx, id, model.StatusApproved, "mod@example.com")
		return err
	})
	if err != nil {
		t.Fatalf("approving group: %v", err)
	}

	refreshed := testCandidate(externalID)
	refreshed.Name = "Hackney Marshes Football Club"
	refreshed.Description = "Sunday league side, all welcome"

	inserted, err = api.UpsertScrapedGroup(ctx, refreshed, model.SourceMeetupScraper, "1.1")
	if err != nil {
		t.Fatalf("second upsert: %v", err)
	}
	if inserted {
		t.Error("re-scrape of a known externalId should update, not insert")
	}

	group, err = api.GetGroupByID(ctx, id)
	if err != nil {
		t.Fatalf("GetGroupByID after re-scrape: %v", err)
	}
	if group.Status != model.StatusApproved {
		t.Errorf("status = %s, re-scrape must not touch moderation status", group.Status)
	}
	if group.ReviewedBy == nil || *group.ReviewedBy != "mod@example.com" {
		t.Errorf("ReviewedBy = %v, re-scrape must not touch the reviewer", group.ReviewedBy)
	}
	if group.ReviewedAt == nil {
		t.Error("ReviewedAt cleared by re-scrape")
	}
	if group.Name != "Hackney Marshes Football Club" {
		t.Errorf("Name = %q, content fields should refresh", group.Name)
	}
	if group.ScraperVersion == nil || *group.ScraperVersion != "1.1" {
		t.Errorf("ScraperVersion = %v, want 1.1", group.ScraperVersion)
	}
}

func TestModerateGroupTxRefusesReviewedGroup(t *testing.T) {
	api := testDatabaseAPI(t)
	ctx := context.Background()

	externalID := "test_" + util.GenerateUUID().String()
	t.Cleanup(func() {
		api.DB.Exec(context.Background(), `DELETE FROM groups WHERE external_id = $1`, externalID)
	})

	if _, err := api.UpsertScrapedGroup(ctx, testCandidate(externalID), model.SourceMeetupScraper, "1.0"); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	var id uuid.UUID
	if err := api.DB.QueryRow(ctx, `SELECT id FROM groups WHERE external_id = $1`, externalID).Scan(&id); err != nil {
		t.Fatalf("loading inserted row: %v", err)
	}

	err := api.Deps.DB.RunInTx(ctx, func(tx pgx.Tx) error {
		_, err := api.moderateGroupTx(ctx, tx, id, model.StatusApproved, "first@example.com")
		return err
	})
	if err != nil {
		t.Fatalf("first decision: %v", err)
	}

	err = api.Deps.DB.RunInTx(ctx, func(tx pgx.Tx) error {
		_, err := api.moderateGroupTx(ctx, tx, id, model.StatusRejected, "second@example.com")
		return err
	})
	if !errors.Is(err, pgx.ErrNoRows) {
		t.Errorf("second decision err = %v, want pgx.ErrNoRows", err)
	}

	group, err := api.GetGroupByID(ctx, id)
	if err != nil {
		t.Fatalf("GetGroupByID: %v", err)
	}
	if group.Status != model.StatusApproved {
		t.Errorf("status = %s, losing decision must not overwrite", group.Status)
	}
	if group.ReviewedBy == nil || *group.ReviewedBy != "first@example.com" {
		t.Errorf("ReviewedBy = %v, want first@example.com", group.ReviewedBy)
	}
}

func TestScraperRunLifecycle(t *testing.T) {
	api := testDatabaseAPI(t)
	ctx := context.Background()

	run, err := api.createScraperRun(ctx, "MEETUP_SCRAPER (Seed)")
	if err != nil {
		t.Fatalf("createScraperRun: %v", err)
	}
	t.Cleanup(func() {
		api.DB.Exec(context.Background(), `DELETE FROM scraper_runs WHERE id = $1`, run.ID)
	})
	if run.Status != model.RunStatusRunning {
		t.Errorf("status = %s, want running", run.Status)
	}
	if run.StartedAt.IsZero() {
		t.Error("StartedAt not set at creation")
	}

	metadata := map[string]any{"provider": "meetup", "seed": true}
	if err := api.finishScraperRun(ctx, run.ID, model.RunStatusCompleted, 12, 9, []string{"one skipped"}, metadata); err != nil {
		t.Fatalf("finishScraperRun: %v", err)
	}

	runs, err := api.ListScraperRuns(ctx)
	if err != nil {
		t.Fatalf("ListScraperRuns: %v", err)
	}

	var got *model.ScraperRun
	for i := range runs {
		if runs[i].ID == run.ID {
			got = &runs[i]
			break
		}
	}
	if got == nil {
		t.Fatal("finished run not returned by ListScraperRuns")
	}
	if got.Status != model.RunStatusCompleted {
		t.Errorf("status = %s, want completed", got.Status)
	}
	if got.CompletedAt == nil || got.CompletedAt.Before(got.StartedAt) {
		t.Errorf("CompletedAt = %v, StartedAt = %v", got.CompletedAt, got.StartedAt)
	}
	if got.GroupsFound != 12 || got.GroupsCreated != 9 {
		t.Errorf("counters = %d/%d, want 12/9", got.GroupsFound, got.GroupsCreated)
	}
	if len(got.Errors) != 1 || got.Errors[0] != "one skipped" {
		t.Errorf("Errors = %v", got.Errors)
	}
	if got.Metadata["provider"] != "meetup" || got.Metadata["seed"] != true {
		t.Errorf("Metadata = %v", got.Metadata)
	}
}
