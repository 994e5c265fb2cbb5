package analytics

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/tbourn/platform-dashboard/internal/domain"
)

func TestExportComparisonCSV_HeaderAndRows(t *testing.T) {
	var buf bytes.Buffer
	if err := ExportComparisonCSV(&buf, catalog()[:2]); err != nil {
		t.Fatalf("ExportComparisonCSV: %v", err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if lines[0] != "Platform,Operating_System,Speed_Score,Accuracy_Score,Maintenance_Score,Price_Range,Features" {
		t.Fatalf("unexpected header %q", lines[0])
	}
	if len(lines) != 3 {
		t.Fatalf("expected header + 2 rows, got %d lines", len(lines))
	}
	if lines[1] != `Bubble,Web-based,85,90,88,$25-299/mo,"Visual Development, API Integration, Database"` {
		t.Fatalf("unexpected row %q", lines[1])
	}
}

func TestComparisonCSV_RoundTrip(t *testing.T) {
	in := append(catalog(), domain.Platform{
		Name: `Quote "Co", Ltd`, OperatingSystem: "Web", SpeedScore: 77.25, AccuracyScore: 0.1, MaintenanceScore: 100,
	})

	var buf bytes.Buffer
	if err := ExportComparisonCSV(&buf, in); err != nil {
		t.Fatalf("export: %v", err)
	}
	out, err := ParseComparisonCSV(&buf)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	ignore := cmpopts.IgnoreFields(domain.Platform{}, "ID", "SortOrder", "CreatedAt", "UpdatedAt")
	if diff := cmp.Diff(in, out, ignore); diff != "" {
		t.Fatalf("round trip (-in +out):\n%s", diff)
	}
	for i, p := range out {
		if p.SortOrder != i {
			t.Fatalf("%s: SortOrder = %d, want %d", p.Name, p.SortOrder, i)
		}
	}
}

func TestParseComparisonCSV_Errors(t *testing.T) {
	if _, err := ParseComparisonCSV(strings.NewReader("Name,Speed_Score\nA,1\n")); err == nil {
		t.Fatalf("expected error for missing Platform column")
	}
	if _, err := ParseComparisonCSV(strings.NewReader("Platform,Speed_Score\nA,fast\n")); err == nil {
		t.Fatalf("expected error for non-numeric score")
	}
	for _, v := range []string{"NaN", "nan", "Inf", "-Infinity", "+inf"} {
		if _, err := ParseComparisonCSV(strings.NewReader("Platform,Accuracy_Score\nA," + v + "\n")); err == nil {
			t.Fatalf("expected error for score %q", v)
		}
	}
	if _, err := ParseComparisonCSV(strings.NewReader("Platform\n\"\"\n")); err == nil {
		t.Fatalf("expected error for empty platform name")
	}
	out, err := ParseComparisonCSV(strings.NewReader(""))
	if err != nil || len(out) != 0 {
		t.Fatalf("empty input = (%v, %v)", out, err)
	}
}

func TestParseComparisonCSV_ReorderedColumnsAndBOM(t *testing.T) {
	src := "\ufeffSpeed_Score,Platform,Features\n91,Retool,\"SQL, APIs\"\n"
	out, err := ParseComparisonCSV(strings.NewReader(src))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	want := []domain.Platform{{Name: "Retool", SpeedScore: 91, Features: "SQL, APIs"}}
	if diff := cmp.Diff(want, out); diff != "" {
		t.Fatalf("(-want +got):\n%s", diff)
	}
}
