package postgres

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"bcl-factory/internal/core/domain"
	"bcl-factory/internal/db"
)

// testRepository connects to the database named by TEST_PSQL_ADDR, applies
// the embedded migrations and returns a repository. Tests in this file are
// skipped when the variable is unset so the suite stays runnable without a
// server.
func testRepository(t *testing.T) *CampaignRepository {
	t.Helper()
	addr := os.Getenv("TEST_PSQL_ADDR")
	if addr == "" {
		t.Skip("TEST_PSQL_ADDR not set")
	}
	if err := db.Migrate(addr); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	pool, err := pgxpool.New(context.Background(), addr)
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	t.Cleanup(pool.Close)
	return NewCampaignRepository(pool)
}

func seedCampaign(id int64) domain.Campaign {
	return domain.Campaign{
		ID:    id,
		Email: "a@b.com",
		Params: domain.CampaignParams{
			CampaignName:     "Promo",
			Objective:        "sales",
			AssistantPersona: "consultor",
			ToneOfVoice:      "profissional",
			Offer:            "10% off",
			CustomerProfile:  "SMB owners",
			LeadSourceType:   domain.LeadSourceWebhook,
		},
	}
}

func deleteCampaign(t *testing.T, r *CampaignRepository, id int64) {
	t.Helper()
	if _, err := r.pool.Exec(context.Background(), `DELETE FROM campaigns WHERE id = $1`, id); err != nil {
		t.Fatalf("cleanup: %v", err)
	}
}

// TestCreateAndGetRoundTrip inserts a pending row and reads it back.
func TestCreateAndGetRoundTrip(t *testing.T) {
	r := testRepository(t)
	id := time.Now().UnixNano()
	t.Cleanup(func() { deleteCampaign(t, r, id) })

	created, err := r.Create(context.Background(), seedCampaign(id))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.Status != domain.StatusPending {
		t.Fatalf("created status = %q, want pending", created.Status)
	}
	if created.CreatedAt.IsZero() || created.UpdatedAt.IsZero() {
		t.Fatal("timestamps not populated on insert")
	}

	got, err := r.Get(context.Background(), id)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got == nil {
		t.Fatal("Get returned nil for an existing row")
	}
	if got.Email != "a@b.com" || got.Params != seedCampaign(id).Params {
		t.Fatalf("round trip mismatch: %+v", got)
	}
	if got.Status != domain.StatusPending {
		t.Fatalf("status = %q, want pending", got.Status)
	}
}

// TestCreateDuplicateID: a second insert under the same id is rejected by
// the primary key, surfacing as a PersistenceError.
func TestCreateDuplicateID(t *testing.T) {
	r := testRepository(t)
	id := time.Now().UnixNano()
	t.Cleanup(func() { deleteCampaign(t, r, id) })

	if _, err := r.Create(context.Background(), seedCampaign(id)); err != nil {
		t.Fatalf("first Create: %v", err)
	}
	_, err := r.Create(context.Background(), seedCampaign(id))
	var perr *domain.PersistenceError
	if !errors.As(err, &perr) {
		t.Fatalf("expected PersistenceError on duplicate id, got %v", err)
	}
}

// TestStatusTransitions drives a row through both terminal writes.
func TestStatusTransitions(t *testing.T) {
	r := testRepository(t)
	id := time.Now().UnixNano()
	t.Cleanup(func() { deleteCampaign(t, r, id) })

	if _, err := r.Create(context.Background(), seedCampaign(id)); err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := r.SetActive(context.Background(), id, "https://bcl.onrender.com", "bcl_secret_k"); err != nil {
		t.Fatalf("SetActive: %v", err)
	}
	got, err := r.Get(context.Background(), id)
	if err != nil {
		t.Fatalf("Get after SetActive: %v", err)
	}
	if got.Status != domain.StatusActive || got.ServiceURL != "https://bcl.onrender.com" || got.APIKey != "bcl_secret_k" {
		t.Fatalf("active row mismatch: %+v", got)
	}

	if err = r.SetFailed(context.Background(), id, "deploy: payment required"); err != nil {
		t.Fatalf("SetFailed: %v", err)
	}
	got, err = r.Get(context.Background(), id)
	if err != nil {
		t.Fatalf("Get after SetFailed: %v", err)
	}
	if got.Status != domain.StatusFailed || got.ServiceURL != "deploy: payment required" {
		t.Fatalf("failed row mismatch: %+v", got)
	}
}

// TestUpdateMissingRow: terminal writes against an unknown id report an
// error instead of silently affecting nothing.
func TestUpdateMissingRow(t *testing.T) {
	r := testRepository(t)

	var perr *domain.PersistenceError
	if err := r.SetActive(context.Background(), -1, "u", "k"); !errors.As(err, &perr) {
		t.Fatalf("SetActive on missing row: expected PersistenceError, got %v", err)
	}
	if err := r.SetFailed(context.Background(), -1, "x"); !errors.As(err, &perr) {
		t.Fatalf("SetFailed on missing row: expected PersistenceError, got %v", err)
	}
}

// TestGetMissingRow returns nil, nil for an unknown id.
func TestGetMissingRow(t *testing.T) {
	r := testRepository(t)

	got, err := r.Get(context.Background(), -1)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil for missing row, got %+v", got)
	}
}
