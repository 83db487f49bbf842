package hugo

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	ferrors "git.home.luguber.info/inful/stdsites/internal/foundation/errors"
)

// ReportFile is written to the output root after every generation.
const ReportFile = "generation-report.json"

// SiteOutcome is the typed result of generating one site.
type SiteOutcome string

const (
	SiteSuccess  SiteOutcome = "success"
	SiteFailed   SiteOutcome = "failed"
	SiteCanceled SiteOutcome = "canceled"
)

// GenerationOutcome summarizes a whole run.
type GenerationOutcome string

const (
	OutcomeSuccess  GenerationOutcome = "success"
	OutcomePartial  GenerationOutcome = "partial"
	OutcomeFailed   GenerationOutcome = "failed"
	OutcomeCanceled GenerationOutcome = "canceled"
)

// SiteResult records what happened to one site.
type SiteResult struct {
	Key        string        `json:"key"`
	Outcome    SiteOutcome   `json:"outcome"`
	ConfigPath string        `json:"config_path,omitempty"`
	Revision   string        `json:"revision,omitempty"`
	Duration   time.Duration `json:"-"`
	DurationMS int64         `json:"duration_ms"`
	Error      string        `json:"error,omitempty"`
}

// Report captures a generation run.
type Report struct {
	GenerationID string            `json:"generation_id"`
	Start        time.Time         `json:"start"`
	End          time.Time         `json:"end"`
	Outcome      GenerationOutcome `json:"outcome"`
	Sites        []SiteResult      `json:"sites"`
}

// Succeeded counts sites generated without error.
func (r *Report) Succeeded() int {
	n := 0
	for _, s := range r.Sites {
		if s.Outcome == SiteSuccess {
			n++
		}
	}
	return n
}

// deriveOutcome sets the run outcome from the per-site outcomes.
func (r *Report) deriveOutcome(canceled bool) {
	ok := r.Succeeded()
	switch {
	case canceled:
		r.Outcome = OutcomeCanceled
	case ok == len(r.Sites):
		r.Outcome = OutcomeSuccess
	case ok == 0:
		r.Outcome = OutcomeFailed
	default:
		r.Outcome = OutcomePartial
	}
}

// Persist writes the report as indented JSON to <dir>/generation-report.json.
func (r *Report) Persist(dir string) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return ferrors.WrapError(err, ferrors.CategoryInternal, "failed to marshal generation report").Build()
	}
	path := filepath.Join(dir, ReportFile)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return ferrors.WrapError(err, ferrors.CategoryFileSystem, "failed to write generation report").
			WithContext("path", path).
			Build()
	}
	return nil
}
