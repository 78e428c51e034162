package domain

import (
	"reflect"
	"testing"
)

func TestStatusTerminal(t *testing.T) {
	if StatusPending.Terminal() {
		t.Fatal("pending must not be terminal")
	}
	if !StatusActive.Terminal() || !StatusFailed.Terminal() {
		t.Fatal("active and failed must be terminal")
	}
}

func TestMissingFieldsOrder(t *testing.T) {
	p := CampaignParams{Objective: "sales", Offer: "10% off"}
	got := p.MissingFields()
	want := []string{"campaignName", "assistantPersona", "toneOfVoice", "customerProfile"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("MissingFields() = %v, want %v", got, want)
	}
}

func TestMissingFieldsComplete(t *testing.T) {
	p := CampaignParams{
		CampaignName:     "Promo",
		Objective:        "sales",
		AssistantPersona: "consultor",
		ToneOfVoice:      "profissional",
		Offer:            "10% off",
		CustomerProfile:  "SMB owners",
	}
	if missing := p.MissingFields(); len(missing) != 0 {
		t.Fatalf("expected no missing fields, got %v", missing)
	}
}
