package httpadapter

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/mock"

	"bcl-factory/internal/core/domain"
	"bcl-factory/internal/core/port"
	"bcl-factory/internal/core/port/mocks"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

func newTestHandler(t *testing.T) (*Handler, *mocks.MockProvisionUseCase, *mocks.MockCampaignRepository) {
	svc := mocks.NewMockProvisionUseCase(t)
	repo := mocks.NewMockCampaignRepository(t)
	h := NewHandler(svc, repo, []string{"http://localhost:5173"}, testLogger())
	return h, svc, repo
}

const validBody = `{
  "campaign_id": 42,
  "user_email": "a@b.com",
  "campaign_details": {
    "campaignName": "Promo",
    "objective": "sales",
    "assistantPersona": "consultor",
    "toneOfVoice": "profissional",
    "offer": "10% off",
    "customerProfile": "SMB owners"
  }
}`

func TestProvisionAccepted(t *testing.T) {
	h, svc, _ := newTestHandler(t)

	var submitted domain.Campaign
	svc.EXPECT().
		Submit(mock.Anything, mock.AnythingOfType("domain.Campaign")).
		RunAndReturn(func(_ context.Context, c domain.Campaign) error {
			submitted = c
			return nil
		})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/provision/instances", strings.NewReader(validBody))
	h.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusAccepted {
		t.Fatalf("status = %d, want 202; body: %s", rec.Code, rec.Body.String())
	}
	if submitted.ID != 42 || submitted.Email != "a@b.com" {
		t.Fatalf("unexpected campaign submitted: %+v", submitted)
	}
	if submitted.Params.LeadSourceType != domain.LeadSourceWebhook {
		t.Fatalf("lead source should default to webhook, got %q", submitted.Params.LeadSourceType)
	}
	if !strings.Contains(rec.Body.String(), "Promo") {
		t.Fatalf("acknowledgement misses campaign name: %s", rec.Body.String())
	}
}

func TestProvisionSynonymRemap(t *testing.T) {
	h, svc, _ := newTestHandler(t)

	body := `{
	  "campaign_id": 7,
	  "user_email": "c@d.com",
	  "campaign_details": {
	    "client_name": "CaveLusa",
	    "campaign_goal": "bookings",
	    "sender_persona": "vendedor",
	    "brand_tone": "casual",
	    "offer": "free visit",
	    "client_profile": "wine lovers",
	    "lead_source_type": "meta",
	    "totally_unknown": "dropped"
	  }
	}`

	var submitted domain.Campaign
	svc.EXPECT().
		Submit(mock.Anything, mock.AnythingOfType("domain.Campaign")).
		RunAndReturn(func(_ context.Context, c domain.Campaign) error {
			submitted = c
			return nil
		})

	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/provision/instances", strings.NewReader(body)))

	if rec.Code != http.StatusAccepted {
		t.Fatalf("status = %d, body: %s", rec.Code, rec.Body.String())
	}
	p := submitted.Params
	if p.CampaignName != "CaveLusa" || p.Objective != "bookings" || p.AssistantPersona != "vendedor" ||
		p.ToneOfVoice != "casual" || p.CustomerProfile != "wine lovers" {
		t.Fatalf("synonyms not remapped: %+v", p)
	}
	if p.LeadSourceType != domain.LeadSourceMeta {
		t.Fatalf("lead source = %q, want meta", p.LeadSourceType)
	}
}

// TestSynonymPrecedenceDeterministic: when a payload carries two
// spellings of the same field, the synonym table's declaration order
// decides the winner on every run.
func TestSynonymPrecedenceDeterministic(t *testing.T) {
	details := map[string]json.RawMessage{
		"client_name":   json.RawMessage(`"Legacy Co"`),
		"campaign_name": json.RawMessage(`"Promo"`),
		"tone":          json.RawMessage(`"casual"`),
		"brand_tone":    json.RawMessage(`"formal"`),
	}
	for i := 0; i < 50; i++ {
		p := remapDetails(details)
		if p.CampaignName != "Promo" {
			t.Fatalf("run %d: campaign name = %q, want campaign_name to win over client_name", i, p.CampaignName)
		}
		if p.ToneOfVoice != "casual" {
			t.Fatalf("run %d: tone = %q, want tone to win over brand_tone", i, p.ToneOfVoice)
		}
	}
}

func TestProvisionMissingFields(t *testing.T) {
	h, svc, _ := newTestHandler(t)

	body := `{
	  "campaign_id": 42,
	  "user_email": "a@b.com",
	  "campaign_details": {
	    "campaignName": "Promo",
	    "objective": "sales",
	    "assistantPersona": "consultor",
	    "toneOfVoice": "profissional",
	    "offer": "10% off"
	  }
	}`

	svc.EXPECT().
		Submit(mock.Anything, mock.AnythingOfType("domain.Campaign")).
		Return(&domain.ValidationError{Missing: []string{"customerProfile"}})

	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/provision/instances", strings.NewReader(body)))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	var resp struct {
		Missing []string `json:"missing"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Missing) != 1 || resp.Missing[0] != "customerProfile" {
		t.Fatalf("unexpected missing list: %v", resp.Missing)
	}
}

func TestProvisionQueueFull(t *testing.T) {
	h, svc, _ := newTestHandler(t)

	svc.EXPECT().
		Submit(mock.Anything, mock.AnythingOfType("domain.Campaign")).
		Return(port.ErrQueueFull)

	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/provision/instances", strings.NewReader(validBody)))

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", rec.Code)
	}
}

func TestProvisionInvalidJSON(t *testing.T) {
	h, _, _ := newTestHandler(t)

	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/provision/instances", strings.NewReader("{")))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestCampaignStatus(t *testing.T) {
	h, _, repo := newTestHandler(t)

	repo.EXPECT().
		Get(mock.Anything, int64(42)).
		Return(&domain.Campaign{
			ID:         42,
			Status:     domain.StatusActive,
			ServiceURL: "https://bcl-42.onrender.com",
			APIKey:     "secret",
		}, nil)

	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/campaigns/42", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, `"active"`) || !strings.Contains(body, "https://bcl-42.onrender.com") {
		t.Fatalf("unexpected body: %s", body)
	}
	if strings.Contains(body, "secret") {
		t.Fatalf("credential leaked in status response: %s", body)
	}
}

func TestCampaignStatusNotFound(t *testing.T) {
	h, _, repo := newTestHandler(t)

	repo.EXPECT().
		Get(mock.Anything, int64(99)).
		Return(nil, nil)

	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/campaigns/99", nil))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}
