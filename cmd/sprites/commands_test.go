package main

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-sprites/internal/catalog"
	"github.com/vovakirdan/tui-sprites/internal/config"
	"github.com/vovakirdan/tui-sprites/internal/vocab"
)

var knightSheet = filepath.Join("..", "..", "internal", "sheet", "testdata", "knight.json")

func testEnv(t *testing.T) *env {
	t.Helper()
	return &env{
		cfg:    config.DefaultConfig(),
		logger: log.New(io.Discard),
		vocab:  vocab.Default(),
	}
}

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

const walkYAML = `
frames:
  walk 0: {frame: {x: 0, y: 0, w: 4, h: 4}, sourceSize: {w: 4, h: 4}, duration: 80}
  walk 1: {frame: {x: 4, y: 0, w: 4, h: 4}, sourceSize: {w: 4, h: 4}, duration: 80}
meta:
  frameTags:
    - {name: walk, from: 0, to: 1, direction: forward}
`

func TestValidateSheets(t *testing.T) {
	e := testEnv(t)
	walk := writeTemp(t, "walk.yaml", walkYAML)

	var out bytes.Buffer
	if err := validateSheets(&out, e, []string{knightSheet, walk}); err != nil {
		t.Fatalf("validateSheets: %v\n%s", err, out.String())
	}
	if !strings.Contains(out.String(), "3 animations in 2 sheets") {
		t.Errorf("unexpected output:\n%s", out.String())
	}
}

func TestValidateSheetsReportsEachFailure(t *testing.T) {
	e := testEnv(t)
	bad := writeTemp(t, "bad.yaml", strings.Replace(walkYAML, "duration: 80}", "duration: 0}", 1))
	broken := writeTemp(t, "broken.json", `{"frames": [}`)

	var out bytes.Buffer
	err := validateSheets(&out, e, []string{knightSheet, bad, broken})
	if err == nil || !strings.Contains(err.Error(), "2 of 3") {
		t.Fatalf("got %v, expected 2 of 3 sheets to fail", err)
	}
	report := out.String()
	for _, want := range []string{"ok    " + knightSheet, "FAIL  " + bad, "ZERO_DURATION", "FAIL  " + broken, "SCHEMA"} {
		if !strings.Contains(report, want) {
			t.Errorf("report missing %q:\n%s", want, report)
		}
	}
}

func TestLoadCatalogRejectsDuplicatesAcrossSheets(t *testing.T) {
	e := testEnv(t)
	walk := writeTemp(t, "walk.yaml", walkYAML)

	_, err := e.loadCatalog([]string{walk, walk})
	var dup *catalog.DuplicateAnimationError
	if !errors.As(err, &dup) {
		t.Fatalf("got %v, expected DuplicateAnimationError", err)
	}
	if !strings.HasPrefix(err.Error(), walk+": ") {
		t.Errorf("error %q should name the sheet", err)
	}
}

func TestLoadCatalogStrict(t *testing.T) {
	e := testEnv(t)
	e.cfg.Catalog.RequireComplete = true

	_, err := e.loadCatalog([]string{knightSheet})
	var inc *catalog.IncompleteCatalogError
	if !errors.As(err, &inc) {
		t.Fatalf("got %v, expected IncompleteCatalogError", err)
	}
	if len(inc.Missing) != vocab.Default().Len()-2 {
		t.Errorf("missing %d names, expected %d", len(inc.Missing), vocab.Default().Len()-2)
	}
}

func TestLoadVocabulary(t *testing.T) {
	v, err := loadVocabulary("")
	if err != nil || v != vocab.Default() {
		t.Errorf("empty path: got (%v, %v), expected the default vocabulary", v, err)
	}

	path := writeTemp(t, "names.yaml", "names: [idle, attack]\n")
	v, err = loadVocabulary(path)
	if err != nil {
		t.Fatalf("loadVocabulary: %v", err)
	}
	if id, ok := v.Lookup("attack"); !ok || id != 1 {
		t.Errorf("attack: got (%d, %v), expected (1, true)", id, ok)
	}

	if _, err := loadVocabulary(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for a missing file")
	}
}

func TestStartID(t *testing.T) {
	e := testEnv(t)
	c, err := e.loadCatalog([]string{knightSheet})
	if err != nil {
		t.Fatalf("loadCatalog: %v", err)
	}
	idle, _ := vocab.Default().Lookup("idle")
	dead, _ := vocab.Default().Lookup("dead")

	tests := []struct {
		name    string
		want    vocab.ID
		wantErr bool
	}{
		{"", c.IDs()[0], false},
		{"dead", dead, false},
		{"idle", idle, false},
		{"walk", 0, true},
		{"swim", 0, true},
	}
	for _, tc := range tests {
		got, err := startID(c, tc.name)
		if (err != nil) != tc.wantErr {
			t.Errorf("startID(%q) error = %v, wantErr %v", tc.name, err, tc.wantErr)
			continue
		}
		if !tc.wantErr && got != tc.want {
			t.Errorf("startID(%q) = %d, expected %d", tc.name, got, tc.want)
		}
	}
}

func TestInspectTables(t *testing.T) {
	e := testEnv(t)
	c, err := e.loadCatalog([]string{knightSheet})
	if err != nil {
		t.Fatalf("loadCatalog: %v", err)
	}

	var out bytes.Buffer
	writeCatalogTable(&out, c)
	for _, want := range []string{"idle", "dead", "pingpong", "450ms", "inf", "16x24"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("catalog table missing %q:\n%s", want, out.String())
		}
	}

	out.Reset()
	if err := writeCelTable(&out, c, "idle"); err != nil {
		t.Fatalf("writeCelTable: %v", err)
	}
	for _, want := range []string{"(1,1 16x24)", "(37,1 16x24)", "(3,5 10x19)", "3 cels"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("cel table missing %q:\n%s", want, out.String())
		}
	}

	if err := writeCelTable(&out, c, "walk"); err == nil {
		t.Error("expected error for an animation the catalog lacks")
	}
}

func TestWriteVocabulary(t *testing.T) {
	v, err := vocab.New([]string{"idle", "walk_left"})
	if err != nil {
		t.Fatalf("vocab.New: %v", err)
	}
	var out bytes.Buffer
	writeVocabulary(&out, v)
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 6 {
		t.Fatalf("expected 6 lines, got %d:\n%s", len(lines), out.String())
	}
	if !strings.Contains(lines[3], "1") || !strings.Contains(lines[3], "walk_left") {
		t.Errorf("row for walk_left: %q", lines[3])
	}
}
