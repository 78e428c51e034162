package mailer

import (
	"context"
	"log/slog"
	"os"
	"strings"
	"testing"

	"bcl-factory/internal/config/configs"
	"bcl-factory/internal/core/domain"
)

func TestBodyTemplateSelection(t *testing.T) {
	tests := []struct {
		name    string
		source  domain.LeadSourceType
		want    string
		notWant string
	}{
		{
			name:    "webhook source gets the activation URL",
			source:  domain.LeadSourceWebhook,
			want:    "https://x.onrender.com/activate",
			notWant: "connected to",
		},
		{
			name:    "meta source gets the integration message",
			source:  domain.LeadSourceMeta,
			want:    "connected to",
			notWant: "/activate",
		},
		{
			name:    "unknown source falls back to the integration message",
			source:  domain.LeadSourceType("carrier-pigeon"),
			want:    "connected to",
			notWant: "/activate",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := Body("https://x.onrender.com", tt.source)
			if !strings.Contains(body, tt.want) {
				t.Fatalf("body misses %q:\n%s", tt.want, body)
			}
			if strings.Contains(body, tt.notWant) {
				t.Fatalf("body should not contain %q:\n%s", tt.notWant, body)
			}
		})
	}
}

// TestDisabledNotifierReportsDelivered: with SMTP disabled the message is
// logged and the notifier reports success, mirroring the development dry
// run of the notification channel.
func TestDisabledNotifierReportsDelivered(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	n := NewNotifier(configs.SMTP{Enabled: false}, logger)

	if delivered := n.Notify(context.Background(), "a@b.com", "https://x.onrender.com", domain.LeadSourceWebhook); !delivered {
		t.Fatal("disabled notifier should report delivered")
	}
}
