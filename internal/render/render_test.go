// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"bytes"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/kauman3/workshop-abm-researcher/internal/record"
	"github.com/kauman3/workshop-abm-researcher/pkg/types"
)

func sampleRecord() *types.IntelligenceRecord {
	return &types.IntelligenceRecord{
		Snapshot: types.Snapshot{
			Industry:       types.Attributed{Value: "Construction", Source: 1},
			Size:           types.Attributed{Value: "10,000+", SourceURL: "https://example.com/about"},
			Location:       types.Attributed{Value: "Omaha, NE"},
			FiscalYear:     types.Attributed{Value: types.UnknownValue},
			GlassdoorScore: types.Attributed{Value: "4.1"},
			TechStack: []types.TechTool{
				{Tool: "Workday", Category: "HRIS"},
				{Tool: "Microsoft Teams", Category: "Chat"},
			},
			ChangeEvents: []types.ChangeEvent{{Event: "New CHRO hired"}},
		},
		WhyNow: []types.WhyNowItem{
			{Title: "Leadership change", Description: "New CHRO joined", Source: 2},
		},
		Personas: []types.Persona{
			{Name: "Jane Doe", Role: "Director of Internal Comms", Email: "jane@example.com",
				IsNamedPerson: true,
				Goals:         []string{"Reach frontline staff", "Prove ROI", "Extra goal"},
				Fears:         []string{"Message fatigue"}},
			{Name: "HR Operations Lead", Role: "HR Operations", Email: types.UnknownValue},
		},
		Angles: []types.Angle{
			{Title: "Frontline reach", Description: "Most employees are deskless"},
		},
		Openers: []types.Opener{
			{Label: "Leadership change", Script: "Saw the CHRO announcement - congrats."},
		},
		Metadata: types.ReportMeta{
			Company:      "Kiewit",
			Website:      "kiewit.com",
			SourcesCount: 2,
			AllSources: []types.SourceRecord{
				{Title: "About", URL: "https://example.com/source1"},
				{Title: "News", URL: "https://example.com/source2"},
			},
			ReportID:    "rep-123",
			GeneratedAt: time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC),
		},
	}
}

func renderToString(t *testing.T, rec *types.IntelligenceRecord, opts Options) string {
	t.Helper()
	var buf bytes.Buffer
	if err := Render(&buf, rec, opts); err != nil {
		t.Fatalf("Render: %v", err)
	}
	return buf.String()
}

func TestRender(t *testing.T) {
	html := renderToString(t, sampleRecord(), Options{})

	for _, want := range []string{
		"Kiewit",
		"kiewit.com",
		"Generated March 14, 2026",
		"Construction",
		"New CHRO hired",
		"Jane Doe",
		"jane@example.com",
		"Saw the CHRO announcement",
		"Based on 2 public sources",
		"rep-123",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("output missing %q", want)
		}
	}

	// Attributed source index 1 resolves through the source list; an
	// explicit source_url is used as-is.
	if !strings.Contains(html, `href="https://example.com/source1"`) {
		t.Error("indexed source link not resolved")
	}
	if !strings.Contains(html, `href="https://example.com/about"`) {
		t.Error("explicit source_url not rendered")
	}
	// The why-now citation (source 2) links too.
	if !strings.Contains(html, `href="https://example.com/source2"`) {
		t.Error("why-now source link not resolved")
	}
}

func TestRender_TeamsPillHighlighted(t *testing.T) {
	html := renderToString(t, sampleRecord(), Options{})

	if !strings.Contains(html, `class="pill hot">Microsoft Teams`) {
		t.Error("Teams pill not highlighted")
	}
	if !strings.Contains(html, `class="pill">Workday`) {
		t.Error("regular pill rendered wrong")
	}
	// Teams in the stack also surfaces the displacement talking point.
	if !strings.Contains(html, "Complement Microsoft Teams chat") {
		t.Error("displacement angle missing")
	}
}

func TestRender_TechPillCap(t *testing.T) {
	rec := sampleRecord()
	rec.Snapshot.TechStack = nil
	for i := 0; i < 12; i++ {
		rec.Snapshot.TechStack = append(rec.Snapshot.TechStack,
			types.TechTool{Tool: fmt.Sprintf("Tool%d", i)})
	}

	html := renderToString(t, rec, Options{})
	if strings.Count(html, `class="pill"`) != maxTechPills {
		t.Errorf("pill count = %d, want %d", strings.Count(html, `class="pill"`), maxTechPills)
	}
	if strings.Contains(html, "Tool8") {
		t.Error("overflow tool rendered")
	}
}

func TestRender_PersonaTraitCap(t *testing.T) {
	html := renderToString(t, sampleRecord(), Options{})

	if !strings.Contains(html, "Prove ROI") {
		t.Error("second goal missing")
	}
	if strings.Contains(html, "Extra goal") {
		t.Error("third goal should be cut")
	}
	// Role-based personas are labeled as such.
	if !strings.Contains(html, "(role-based)") {
		t.Error("unnamed persona not labeled")
	}
}

func TestRender_SolutionRowCap(t *testing.T) {
	rec := sampleRecord()
	// Touch many capability keyword sets at once.
	rec.WhyNow = append(rec.WhyNow, types.WhyNowItem{
		Description: "merger transformation frontline retention engagement analytics security compliance enterprise global remote hybrid work",
	})

	html := renderToString(t, rec, Options{})
	if got := strings.Count(html, "<tr><td>"); got > maxSolutionRows {
		t.Errorf("solution rows = %d, want <= %d", got, maxSolutionRows)
	}
}

func TestRender_EscapesGeneratedText(t *testing.T) {
	rec := sampleRecord()
	rec.WhyNow[0].Description = `<script>alert("x")</script>`

	html := renderToString(t, rec, Options{})
	if strings.Contains(html, `<script>alert`) {
		t.Error("generated text not escaped")
	}
	if !strings.Contains(html, "&lt;script&gt;") {
		t.Error("escaped form missing")
	}
}

func TestRender_FallbackRecord(t *testing.T) {
	// The renderer must handle a fallback record without special-casing.
	fb := record.Fallback(types.ReportMeta{
		Company:     "Acme Corp",
		Website:     "acme.example",
		ReportID:    "rep-fb",
		GeneratedAt: time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC),
	})

	html := renderToString(t, fb, Options{})
	if !strings.Contains(html, "Acme Corp") {
		t.Error("company missing")
	}
	if !strings.Contains(html, "Based on 0 public sources") {
		t.Error("fallback must report zero sources")
	}
	if !strings.Contains(html, types.UnknownValue) {
		t.Error("Unknown stats missing")
	}
}

func TestRender_NilRecord(t *testing.T) {
	if err := Render(&bytes.Buffer{}, nil, Options{}); err == nil {
		t.Error("want error for nil record")
	}
}
