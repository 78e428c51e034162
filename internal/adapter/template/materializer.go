// Package template materializes the instance template: it copies the
// template project tree into a fresh working directory and rewrites the
// marked prompt region from the campaign parameters.
package template

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	cp "github.com/otiai10/copy"

	"bcl-factory/internal/core/domain"
)

// promptFile is the file inside the template whose marked region gets
// rewritten per campaign.
const promptFile = "app/prompt.md"

// Sentinel lines delimiting the substitutable prompt region.
const (
	promptStartMarker = "# >>> BCL PROMPT START"
	promptEndMarker   = "# <<< BCL PROMPT END"
)

// personaLine maps the customer-facing persona names onto prompt wording.
// Unmapped values fall back to a generic default, never an error.
var personaLine = map[string]string{
	"consultor": "You are a seasoned consultant who guides leads toward the right decision.",
	"vendedor":  "You are a persuasive sales representative focused on closing.",
	"suporte":   "You are a patient support specialist who resolves doubts first.",
	"amigo":     "You are a friendly insider who talks like a trusted peer.",
}

// toneLine maps tone-of-voice names onto prompt wording, same fallback rule.
var toneLine = map[string]string{
	"profissional": "Keep the tone professional and confident.",
	"casual":       "Keep the tone relaxed and conversational.",
	"entusiasmado": "Keep the tone upbeat and enthusiastic.",
	"formal":       "Keep the tone formal and courteous.",
}

const (
	defaultPersonaLine = "You are a helpful assistant representing the brand."
	defaultToneLine    = "Keep the tone friendly and clear."
)

// Materializer copies the template tree and personalises the prompt. It
// implements port.Materializer on the local filesystem.
type Materializer struct {
	templatePath string
	logger       *slog.Logger
}

// NewMaterializer returns a materializer reading from templatePath.
func NewMaterializer(templatePath string, logger *slog.Logger) *Materializer {
	return &Materializer{templatePath: templatePath, logger: logger}
}

// Materialize copies the template into a fresh working directory and
// rewrites the prompt region. The returned instance name is unique per
// call; the working directory belongs exclusively to the calling run and
// must be removed by it.
func (m *Materializer) Materialize(ctx context.Context, campaignID int64, params domain.CampaignParams) (string, string, error) {
	if err := ctx.Err(); err != nil {
		return "", "", err
	}
	if _, err := os.Stat(m.templatePath); err != nil {
		return "", "", &domain.IOError{Op: "stat template", Err: err}
	}

	instanceName := newInstanceName(campaignID)
	workDir, err := os.MkdirTemp("", instanceName+"-*")
	if err != nil {
		return "", "", &domain.IOError{Op: "create working directory", Err: err}
	}

	if err = cp.Copy(m.templatePath, workDir); err != nil {
		os.RemoveAll(workDir)
		return "", "", &domain.IOError{Op: "copy template", Err: err}
	}

	if err = m.rewritePrompt(filepath.Join(workDir, promptFile), params); err != nil {
		os.RemoveAll(workDir)
		return "", "", err
	}

	m.logger.Info("template materialized",
		slog.Int64("campaign_id", campaignID),
		slog.String("instance", instanceName),
		slog.String("workdir", workDir))
	return workDir, instanceName, nil
}

// rewritePrompt replaces everything between the sentinel markers with the
// campaign-specific prompt. Both markers must be present in the template.
func (m *Materializer) rewritePrompt(path string, params domain.CampaignParams) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return &domain.IOError{Op: "read prompt file", Err: err}
	}

	content := string(raw)
	start := strings.Index(content, promptStartMarker)
	end := strings.Index(content, promptEndMarker)
	if start < 0 || end < 0 || end < start {
		return &domain.IOError{Op: "rewrite prompt", Err: fmt.Errorf("prompt markers not found in %s", path)}
	}

	replaced := content[:start+len(promptStartMarker)] + "\n" +
		renderPrompt(params) +
		content[end:]

	if err = os.WriteFile(path, []byte(replaced), 0o644); err != nil {
		return &domain.IOError{Op: "write prompt file", Err: err}
	}
	return nil
}

// renderPrompt builds the region body from the campaign parameters using
// the fixed persona/tone mapping tables.
func renderPrompt(params domain.CampaignParams) string {
	persona, ok := personaLine[strings.ToLower(params.AssistantPersona)]
	if !ok {
		persona = defaultPersonaLine
	}
	tone, ok := toneLine[strings.ToLower(params.ToneOfVoice)]
	if !ok {
		tone = defaultToneLine
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Campaign: %s\n", params.CampaignName)
	fmt.Fprintf(&b, "Objective: %s\n", params.Objective)
	b.WriteString(persona + "\n")
	b.WriteString(tone + "\n")
	fmt.Fprintf(&b, "Offer to present: %s\n", params.Offer)
	fmt.Fprintf(&b, "Target customer: %s\n", params.CustomerProfile)
	return b.String()
}

// newInstanceName derives a globally unique service/repository name from
// the campaign id plus a random suffix.
func newInstanceName(campaignID int64) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	return fmt.Sprintf("bcl-%d-%s", campaignID, suffix)
}
