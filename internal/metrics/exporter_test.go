package metrics

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/reignstats/reignstats/internal/analytics"
)

func TestExporter_Render(t *testing.T) {
	rep := &analytics.Report{
		GeneratedAt:     time.Unix(1_790_000_000, 0).UTC(),
		Count:           57,
		LongestReign:    analytics.ReignResult{Available: true, Name: "Elizabeth II", Years: 74},
		LongestHouse:    analytics.HouseResult{Available: true, House: "House of Windsor", Years: 110},
		CommonFirstName: analytics.NameResult{Available: true, Name: "Edward", Count: 11},
		CurrentHouse:    analytics.HouseResult{Available: true, House: "House of Windsor", Years: 110},
	}

	var buf bytes.Buffer
	if err := NewExporter().Render(&buf, rep); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"# TYPE reignstats_monarchs gauge",
		"reignstats_monarchs 57",
		`reignstats_longest_reign_years{name="Elizabeth II"} 74`,
		`reignstats_longest_house_years{house="House of Windsor"} 110`,
		`reignstats_common_first_name_occurrences{name="Edward"} 11`,
		`reignstats_current_house_years{house="House of Windsor"} 110`,
		"reignstats_report_generated_timestamp_seconds 1.79e+09",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q\n%s", want, out)
		}
	}
}

func TestExporter_UnavailableOmitted(t *testing.T) {
	var buf bytes.Buffer
	if err := NewExporter().Render(&buf, &analytics.Report{}); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	out := buf.String()

	if !strings.Contains(out, "reignstats_monarchs 0") {
		t.Errorf("count gauge missing:\n%s", out)
	}
	for _, absent := range []string{
		"reignstats_longest_reign_years{",
		"reignstats_longest_house_years{",
		"reignstats_common_first_name_occurrences{",
		"reignstats_current_house_years{",
	} {
		if strings.Contains(out, absent) {
			t.Errorf("output should not contain %q\n%s", absent, out)
		}
	}
}

func TestExporter_RerenderDropsStaleLabels(t *testing.T) {
	e := NewExporter()
	first := &analytics.Report{
		Count:        2,
		LongestReign: analytics.ReignResult{Available: true, Name: "Victoria", Years: 63},
	}
	second := &analytics.Report{
		Count:        3,
		LongestReign: analytics.ReignResult{Available: true, Name: "Elizabeth II", Years: 74},
	}

	var buf bytes.Buffer
	if err := e.Render(&buf, first); err != nil {
		t.Fatalf("first Render() error = %v", err)
	}
	buf.Reset()
	if err := e.Render(&buf, second); err != nil {
		t.Fatalf("second Render() error = %v", err)
	}

	out := buf.String()
	if strings.Contains(out, "Victoria") {
		t.Errorf("stale label from first render survived:\n%s", out)
	}
	if !strings.Contains(out, `name="Elizabeth II"`) {
		t.Errorf("new label missing:\n%s", out)
	}
}
