package logging

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/rylub/api-data-validation/internal/model"
	"github.com/rylub/api-data-validation/internal/report"
)

func TestNew_CreatesLogFileAndAppends(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")

	logger, err := New(dir)
	if err != nil {
		t.Fatalf("New() returned unexpected error: %v", err)
	}
	logger.Info("first run")
	logger.Sync()

	logger2, err := New(dir)
	if err != nil {
		t.Fatalf("New() returned unexpected error: %v", err)
	}
	logger2.Info("second run")
	logger2.Sync()

	data, err := os.ReadFile(filepath.Join(dir, logFileName))
	if err != nil {
		t.Fatalf("reading log file: %v", err)
	}
	content := string(data)
	for _, want := range []string{"first run", "second run"} {
		if !strings.Contains(content, want) {
			t.Errorf("log file missing %q; got:\n%s", want, content)
		}
	}
}

func TestSaveReport(t *testing.T) {
	dir := t.TempDir()
	req, err := model.NewAssetRequest([]string{"bitcoin"}, "usd")
	if err != nil {
		t.Fatalf("NewAssetRequest() returned unexpected error: %v", err)
	}
	now := time.Date(2025, 7, 15, 20, 30, 0, 0, time.UTC)
	rep := report.Pass(req, map[string]model.PriceQuote{"bitcoin": {Price: 30000}}, now)

	path, err := SaveReport(dir, rep, now)
	if err != nil {
		t.Fatalf("SaveReport() returned unexpected error: %v", err)
	}

	// 20:30 UTC renders as 12:30 at the fixed -08:00 offset.
	wantName := "api_validation_report_20250715_123000.json"
	if filepath.Base(path) != wantName {
		t.Errorf("report file name = %q, want %q", filepath.Base(path), wantName)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading report file: %v", err)
	}
	var decoded report.Report
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("report file is not valid JSON: %v", err)
	}
	if decoded.Status != report.StatusPass {
		t.Errorf("saved status = %q, want %q", decoded.Status, report.StatusPass)
	}
}
