package template

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"bcl-factory/internal/core/domain"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

// writeTemplate lays out a minimal template tree with the marked prompt
// file plus a sibling file to verify the whole tree is copied.
func writeTemplate(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	appDir := filepath.Join(root, "app")
	if err := os.MkdirAll(appDir, 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	prompt := "header\n" +
		promptStartMarker + "\n" +
		"old content\n" +
		promptEndMarker + "\n" +
		"footer\n"
	if err := os.WriteFile(filepath.Join(appDir, "prompt.md"), []byte(prompt), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if err := os.WriteFile(filepath.Join(root, "Dockerfile"), []byte("FROM scratch\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return root
}

func testParams() domain.CampaignParams {
	return domain.CampaignParams{
		CampaignName:     "Promo",
		Objective:        "sales",
		AssistantPersona: "consultor",
		ToneOfVoice:      "profissional",
		Offer:            "10% off",
		CustomerProfile:  "SMB owners",
	}
}

func TestMaterializeCopiesAndRewrites(t *testing.T) {
	m := NewMaterializer(writeTemplate(t), testLogger())

	workDir, instanceName, err := m.Materialize(context.Background(), 42, testParams())
	if err != nil {
		t.Fatalf("Materialize error: %v", err)
	}
	defer os.RemoveAll(workDir)

	if !strings.HasPrefix(instanceName, "bcl-42-") {
		t.Fatalf("unexpected instance name: %s", instanceName)
	}
	if _, err = os.Stat(filepath.Join(workDir, "Dockerfile")); err != nil {
		t.Fatalf("Dockerfile not copied: %v", err)
	}

	raw, err := os.ReadFile(filepath.Join(workDir, promptFile))
	if err != nil {
		t.Fatalf("read rewritten prompt: %v", err)
	}
	content := string(raw)
	for _, want := range []string{
		"header",
		"footer",
		"Campaign: Promo",
		"Objective: sales",
		personaLine["consultor"],
		toneLine["profissional"],
		"Offer to present: 10% off",
		"Target customer: SMB owners",
	} {
		if !strings.Contains(content, want) {
			t.Fatalf("rewritten prompt misses %q:\n%s", want, content)
		}
	}
	if strings.Contains(content, "old content") {
		t.Fatalf("old region content survived rewrite:\n%s", content)
	}
}

func TestMaterializeUnmappedValuesFallBack(t *testing.T) {
	m := NewMaterializer(writeTemplate(t), testLogger())
	params := testParams()
	params.AssistantPersona = "astronaut"
	params.ToneOfVoice = "cosmic"

	workDir, _, err := m.Materialize(context.Background(), 7, params)
	if err != nil {
		t.Fatalf("Materialize error: %v", err)
	}
	defer os.RemoveAll(workDir)

	raw, err := os.ReadFile(filepath.Join(workDir, promptFile))
	if err != nil {
		t.Fatalf("read prompt: %v", err)
	}
	if !strings.Contains(string(raw), defaultPersonaLine) || !strings.Contains(string(raw), defaultToneLine) {
		t.Fatalf("fallback lines missing:\n%s", raw)
	}
}

func TestMaterializeMissingTemplate(t *testing.T) {
	m := NewMaterializer(filepath.Join(t.TempDir(), "nope"), testLogger())

	_, _, err := m.Materialize(context.Background(), 1, testParams())
	var ioErr *domain.IOError
	if !errors.As(err, &ioErr) {
		t.Fatalf("expected IOError, got %v", err)
	}
}

func TestMaterializeMissingMarkers(t *testing.T) {
	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, "app"), 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	if err := os.WriteFile(filepath.Join(root, "app", "prompt.md"), []byte("no markers here\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	m := NewMaterializer(root, testLogger())
	_, _, err := m.Materialize(context.Background(), 1, testParams())
	var ioErr *domain.IOError
	if !errors.As(err, &ioErr) {
		t.Fatalf("expected IOError, got %v", err)
	}
}

// TestInstanceNamesUniqueAcrossConcurrentRuns provisions many campaigns in
// parallel and requires every generated name to be distinct.
func TestInstanceNamesUniqueAcrossConcurrentRuns(t *testing.T) {
	m := NewMaterializer(writeTemplate(t), testLogger())

	const n = 32
	var (
		mu    sync.Mutex
		names = make(map[string]struct{}, n)
		wg    sync.WaitGroup
	)
	wg.Add(n)
	for i := 0; i < n; i++ {
		id := int64(i % 4) // collisions must be avoided even for the same campaign id
		go func() {
			defer wg.Done()
			workDir, name, err := m.Materialize(context.Background(), id, testParams())
			if err != nil {
				t.Errorf("Materialize: %v", err)
				return
			}
			defer os.RemoveAll(workDir)
			mu.Lock()
			names[name] = struct{}{}
			mu.Unlock()
		}()
	}
	wg.Wait()
	if len(names) != n {
		t.Fatalf("expected %d unique instance names, got %d", n, len(names))
	}
}
