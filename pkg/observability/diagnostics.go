package observability

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/aretw0/quest/pkg/domain"
	"github.com/oklog/ulid/v2"
	"github.com/prometheus/common/expfmt"
)

// SettingsSource reads the active settings record.
type SettingsSource interface {
	Settings(ctx context.Context) (*domain.Settings, error)
}

// Diagnostics renders the anonymized report copied by the user.
// It implements ports.Diagnostics.
//
// The report carries catalog data (task and step counts) and counters only:
// document keys and scene content are never included.
type Diagnostics struct {
	metrics *Metrics
	source  SettingsSource
	version string
	now     func() time.Time
}

// NewDiagnostics creates a diagnostics renderer.
func NewDiagnostics(metrics *Metrics, source SettingsSource, version string) *Diagnostics {
	return &Diagnostics{
		metrics: metrics,
		source:  source,
		version: version,
		now:     time.Now,
	}
}

// Status summarizes the progress record.
func Status(p domain.Progress) string {
	switch {
	case p.IsEmpty():
		return "idle"
	case p.IsFinished():
		return "finished"
	default:
		return "in_progress"
	}
}

// Dump renders the report. Each dump gets a fresh random identifier.
func (d *Diagnostics) Dump(ctx context.Context) (string, error) {
	settings, err := d.source.Settings(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to read settings: %w", err)
	}

	var buf bytes.Buffer
	fmt.Fprintln(&buf, "# quest diagnostics")
	fmt.Fprintf(&buf, "id: %s\n", ulid.Make().String())
	fmt.Fprintf(&buf, "version: %s\n", d.version)
	fmt.Fprintf(&buf, "generated: %s\n", d.now().UTC().Format(time.RFC3339))
	fmt.Fprintf(&buf, "difficulty: %s\n", settings.Difficulty)

	p := settings.Progress
	fmt.Fprintf(&buf, "status: %s\n", Status(p))
	if !p.IsEmpty() {
		fmt.Fprintf(&buf, "task: %s\n", p.Name)
		fmt.Fprintf(&buf, "step: %d/%d\n", p.CurrentStep, len(p.Steps))
	}

	if d.metrics == nil {
		return buf.String(), nil
	}

	families, err := d.metrics.Gatherer().Gather()
	if err != nil {
		return "", fmt.Errorf("failed to gather metrics: %w", err)
	}
	fmt.Fprintln(&buf)
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(&buf, mf); err != nil {
			return "", fmt.Errorf("failed to encode metric %s: %w", mf.GetName(), err)
		}
	}

	return buf.String(), nil
}
