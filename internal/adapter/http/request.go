package httpadapter

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"bcl-factory/internal/core/domain"
	"bcl-factory/internal/core/port"
)

// provisionRequest is the inbound payload. CampaignDetails is kept raw so
// external field synonyms can be remapped onto the canonical schema.
type provisionRequest struct {
	CampaignID int64                      `json:"campaign_id"`
	UserEmail  string                     `json:"user_email"`
	Details    map[string]json.RawMessage `json:"campaign_details"`
}

// fieldSynonyms lists, per canonical parameter name, the external detail
// field names that map onto it. Frontends and webhook sources have
// historically sent several spellings for the same field; this table is
// the single reviewable place they are reconciled. Synonyms are tried in
// declaration order, so when a payload carries more than one spelling the
// earlier one wins. Unknown fields are dropped.
var fieldSynonyms = []struct {
	canonical string
	names     []string
}{
	{"campaignName", []string{"campaignname", "campaign_name", "client_name"}},
	{"objective", []string{"objective", "goal", "campaign_goal"}},
	{"assistantPersona", []string{"assistantpersona", "assistant_persona", "persona", "sender_persona"}},
	{"toneOfVoice", []string{"toneofvoice", "tone_of_voice", "tone", "brand_tone"}},
	{"offer", []string{"offer"}},
	{"customerProfile", []string{"customerprofile", "customer_profile", "client_profile"}},
	{"leadSourceType", []string{"leadsourcetype", "lead_source_type"}},
}

// handleProvision validates the request and schedules a background
// provisioning run. The response is returned before the pipeline starts:
// 202 on successful enqueue, 400 with the list of missing fields on
// validation failure, 503 when the queue is full.
func (h *Handler) handleProvision(w http.ResponseWriter, r *http.Request) {
	var req provisionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid JSON", nil)
		return
	}

	params := remapDetails(req.Details)
	campaign := domain.Campaign{
		ID:     req.CampaignID,
		Email:  req.UserEmail,
		Params: params,
	}

	if err := h.svc.Submit(r.Context(), campaign); err != nil {
		var verr *domain.ValidationError
		switch {
		case errors.As(err, &verr):
			h.writeError(w, http.StatusBadRequest, "missing required fields", verr.Missing)
		case errors.Is(err, port.ErrQueueFull):
			h.writeError(w, http.StatusServiceUnavailable, "provisioning queue is full, retry later", nil)
		default:
			h.logger.Error("submit error", slog.Any("error", err))
			h.writeError(w, http.StatusInternalServerError, "internal error", nil)
		}
		return
	}

	h.logger.Info("provisioning request accepted",
		slog.Int64("campaign_id", req.CampaignID),
		slog.String("user_email", req.UserEmail))

	h.writeJSON(w, http.StatusAccepted, map[string]string{
		"message": fmt.Sprintf(
			"Activation started! The engine for campaign %q is being built. You will receive an email when it is ready.",
			params.CampaignName),
	})
}

// handleCampaignStatus lets the frontend poll the outcome of a run.
func (h *Handler) handleCampaignStatus(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid campaign id", nil)
		return
	}

	campaign, err := h.repo.Get(r.Context(), id)
	if err != nil {
		h.logger.Error("get campaign error", slog.Any("error", err))
		h.writeError(w, http.StatusInternalServerError, "internal error", nil)
		return
	}
	if campaign == nil {
		h.writeError(w, http.StatusNotFound, "campaign not found", nil)
		return
	}

	resp := map[string]any{
		"campaign_id": campaign.ID,
		"status":      campaign.Status,
	}
	if campaign.Status == domain.StatusActive {
		resp["service_url"] = campaign.ServiceURL
	}
	h.writeJSON(w, http.StatusOK, resp)
}

// handleHealth reports liveness for the platform's health checks.
func (h *Handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "the BCL factory is running"})
}

// remapDetails converts the raw details object into canonical campaign
// parameters using the synonym table. The table's declaration order makes
// the result independent of map iteration order. Unknown fields are
// dropped; non-string values are ignored so a malformed field surfaces as
// missing rather than as a decode failure.
func remapDetails(details map[string]json.RawMessage) domain.CampaignParams {
	normalized := make(map[string]json.RawMessage, len(details))
	for key, raw := range details {
		normalized[normalizeKey(key)] = raw
	}

	canonical := make(map[string]string, len(fieldSynonyms))
	for _, field := range fieldSynonyms {
		for _, name := range field.names {
			raw, ok := normalized[name]
			if !ok {
				continue
			}
			var value string
			if err := json.Unmarshal(raw, &value); err != nil || value == "" {
				continue
			}
			canonical[field.canonical] = value
			break
		}
	}

	params := domain.CampaignParams{
		CampaignName:     canonical["campaignName"],
		Objective:        canonical["objective"],
		AssistantPersona: canonical["assistantPersona"],
		ToneOfVoice:      canonical["toneOfVoice"],
		Offer:            canonical["offer"],
		CustomerProfile:  canonical["customerProfile"],
		LeadSourceType:   domain.LeadSourceType(canonical["leadSourceType"]),
	}
	if params.LeadSourceType == "" {
		params.LeadSourceType = domain.LeadSourceWebhook
	}
	return params
}

func normalizeKey(k string) string {
	return strings.ToLower(strings.TrimSpace(k))
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

func (h *Handler) writeError(w http.ResponseWriter, status int, msg string, missing []string) {
	body := map[string]any{"error": msg}
	if len(missing) > 0 {
		body["missing"] = missing
	}
	h.writeJSON(w, status, body)
}
