// Package report turns a pipeline outcome into the run's final PASS/FAIL
// report and renders it in the two supported formats.
package report

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/rylub/api-data-validation/internal/model"
)

const (
	// StatusPass marks a run where fetch and validation both succeeded
	StatusPass = "PASS"
	// StatusFail marks a run that failed at any stage
	StatusFail = "FAIL"
)

// PST is the fixed reference zone for report timestamps. A constant -08:00
// offset regardless of host timezone or daylight saving, so output is
// reproducible across environments.
var PST = time.FixedZone("PST", -8*60*60)

// SummaryEntry is the per-asset slice of the structured report. Change is
// omitted from the JSON form when the upstream data lacked it.
type SummaryEntry struct {
	Price    float64  `json:"price"`
	Currency string   `json:"currency"`
	Change   *float64 `json:"24h_change,omitempty"`
}

// Report is the immutable result of one validation run
type Report struct {
	Timestamp      string                  `json:"timestamp"`
	Status         string                  `json:"status"`
	Details        []string                `json:"details"`
	CoinsRequested []string                `json:"coins_requested"`
	Currency       string                  `json:"currency"`
	Summary        map[string]SummaryEntry `json:"summary,omitempty"`
}

// Pass builds the report for a fully validated run: one leading validation
// line plus one detail line per requested asset, in request order.
func Pass(req model.AssetRequest, quotes map[string]model.PriceQuote, now time.Time) *Report {
	details := make([]string, 0, len(req.Assets)+1)
	details = append(details, "Schema validation passed.")

	summary := make(map[string]SummaryEntry, len(req.Assets))
	for _, asset := range req.Assets {
		quote := quotes[asset]
		line := fmt.Sprintf("✓ %s: %.2f %s", asset, quote.Price, strings.ToUpper(req.Currency))
		if quote.Change != nil {
			line += fmt.Sprintf(" (24h change: %+.2f%%)", *quote.Change)
		}
		details = append(details, line)

		summary[asset] = SummaryEntry{
			Price:    quote.Price,
			Currency: req.Currency,
			Change:   quote.Change,
		}
	}

	return &Report{
		Timestamp:      timestamp(now),
		Status:         StatusPass,
		Details:        details,
		CoinsRequested: req.Assets,
		Currency:       req.Currency,
		Summary:        summary,
	}
}

// Fail builds the report for a failed run. The single detail line carries the
// failure category and message; no summary is attached.
func Fail(req model.AssetRequest, cause error, now time.Time) *Report {
	return &Report{
		Timestamp:      timestamp(now),
		Status:         StatusFail,
		Details:        []string{cause.Error()},
		CoinsRequested: req.Assets,
		Currency:       req.Currency,
	}
}

// JSON renders the structured form
func (r *Report) JSON() ([]byte, error) {
	return json.MarshalIndent(r, "", "    ")
}

const banner = "========================================"

// Text renders the plain-text summary block
func (r *Report) Text() string {
	var b strings.Builder

	b.WriteString(banner + "\n")
	b.WriteString(" API Data Validation Report\n")
	b.WriteString(banner + "\n")
	fmt.Fprintf(&b, "Status:    %s\n", r.Status)
	fmt.Fprintf(&b, "Timestamp: %s\n", r.Timestamp)
	fmt.Fprintf(&b, "Currency:  %s\n", r.Currency)
	fmt.Fprintf(&b, "Coins Requested: %s\n", strings.Join(r.CoinsRequested, ", "))

	b.WriteString("Results:\n")
	for _, asset := range r.CoinsRequested {
		entry, ok := r.Summary[asset]
		if !ok {
			continue
		}
		fmt.Fprintf(&b, "  %s: %.2f %s", asset, entry.Price, strings.ToUpper(entry.Currency))
		if entry.Change != nil {
			fmt.Fprintf(&b, " (%+.2f%%)", *entry.Change)
		}
		b.WriteString("\n")
	}

	b.WriteString("Details:\n")
	for _, detail := range r.Details {
		fmt.Fprintf(&b, "  %s\n", detail)
	}
	b.WriteString(banner + "\n")

	return b.String()
}

func timestamp(now time.Time) string {
	return now.In(PST).Format(time.RFC3339)
}
