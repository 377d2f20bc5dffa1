// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package render turns a validated intelligence record into a
// self-contained HTML one-pager for BDR prep: snapshot sidebar, why-now
// signals with source links, persona cards, outreach angles and openers,
// and a solution-match table.
package render

import (
	"fmt"
	"html/template"
	"io"
	"strings"

	"github.com/kauman3/workshop-abm-researcher/internal/features"
	"github.com/kauman3/workshop-abm-researcher/pkg/types"
)

// Layout caps. The one-pager is a fixed-density document: overflow is cut,
// never reflowed.
const (
	maxTechPills     = 8
	maxPersonaTraits = 2
	maxSolutionRows  = 3
)

// Options configures one render call.
type Options struct {
	// LogoPath embeds a logo image in the header when set; empty renders
	// the text wordmark.
	LogoPath string

	// Table overrides the built-in capability table for solution
	// matching. Nil uses the default.
	Table *features.Table
}

type statView struct {
	Label     string
	Value     string
	SourceURL string
}

type techPill struct {
	Name string
	// Hot marks an incumbent comms tool worth calling out in the pitch.
	Hot bool
}

type whyNowView struct {
	Title       string
	Description string
	SourceURL   string
}

type personaView struct {
	Name  string
	Role  string
	Email string
	Named bool
	Goals []string
	Fears []string
}

type onePagerData struct {
	Company      string
	Website      string
	GeneratedAt  string
	ReportID     string
	LogoPath     string
	Stats        []statView
	TechPills    []techPill
	ChangeEvents []string
	WhyNow       []whyNowView
	Personas     []personaView
	Angles       []types.Angle
	Openers      []types.Opener
	Solutions    []features.Match
	Displacement string
	SourcesCount int
}

// Render writes the HTML one-pager for rec to w.
func Render(w io.Writer, rec *types.IntelligenceRecord, opts Options) error {
	if rec == nil {
		return fmt.Errorf("rendering one-pager: nil record")
	}
	data := buildViewModel(rec, opts)
	if err := onePagerTmpl.Execute(w, data); err != nil {
		return fmt.Errorf("rendering one-pager for %s: %w", rec.Metadata.Company, err)
	}
	return nil
}

func buildViewModel(rec *types.IntelligenceRecord, opts Options) onePagerData {
	table := opts.Table
	if table == nil {
		table = features.DefaultTable()
	}

	data := onePagerData{
		Company:      rec.Metadata.Company,
		Website:      rec.Metadata.Website,
		GeneratedAt:  rec.Metadata.GeneratedAt.Format("January 2, 2006"),
		ReportID:     rec.Metadata.ReportID,
		LogoPath:     opts.LogoPath,
		Angles:       rec.Angles,
		Openers:      rec.Openers,
		SourcesCount: rec.Metadata.SourcesCount,
		Displacement: features.DisplacementAngle(rec.Snapshot.TechStack),
	}

	data.Stats = []statView{
		attributedStat("Industry", rec, rec.Snapshot.Industry),
		attributedStat("Size", rec, rec.Snapshot.Size),
		attributedStat("Location", rec, rec.Snapshot.Location),
		attributedStat("Fiscal Year", rec, rec.Snapshot.FiscalYear),
		attributedStat("Glassdoor", rec, rec.Snapshot.GlassdoorScore),
	}

	for _, tool := range rec.Snapshot.TechStack {
		if len(data.TechPills) == maxTechPills {
			break
		}
		data.TechPills = append(data.TechPills, techPill{
			Name: tool.Tool,
			Hot:  strings.Contains(strings.ToLower(tool.Tool), "teams"),
		})
	}

	for _, ev := range rec.Snapshot.ChangeEvents {
		data.ChangeEvents = append(data.ChangeEvents, ev.Event)
	}

	for _, item := range rec.WhyNow {
		url := item.SourceURL
		if url == "" {
			url = rec.SourceURLFor(item.Source)
		}
		data.WhyNow = append(data.WhyNow, whyNowView{
			Title:       item.Title,
			Description: item.Description,
			SourceURL:   url,
		})
	}

	for _, p := range rec.Personas {
		email := p.Email
		if email == types.UnknownValue {
			email = ""
		}
		data.Personas = append(data.Personas, personaView{
			Name:  p.Name,
			Role:  p.Role,
			Email: email,
			Named: p.IsNamedPerson,
			Goals: capList(p.Goals, maxPersonaTraits),
			Fears: capList(p.Fears, maxPersonaTraits),
		})
	}

	solutions := table.Match(rec)
	if len(solutions) > maxSolutionRows {
		solutions = solutions[:maxSolutionRows]
	}
	data.Solutions = solutions

	return data
}

func attributedStat(label string, rec *types.IntelligenceRecord, a types.Attributed) statView {
	sv := statView{Label: label, Value: a.Value}
	if a.SourceURL != "" {
		sv.SourceURL = a.SourceURL
	} else if a.Source > 0 {
		sv.SourceURL = rec.SourceURLFor(a.Source)
	}
	return sv
}

func capList(items []string, n int) []string {
	if len(items) > n {
		return items[:n]
	}
	return items
}

var onePagerTmpl = template.Must(template.New("onepager").Parse(onePagerHTML))

const onePagerHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Company}} — Account Intelligence</title>
<style>
  body { font-family: "Helvetica Neue", Arial, sans-serif; margin: 0; color: #1a1a2e; }
  .page { display: flex; max-width: 1080px; margin: 0 auto; }
  header { background: #2d2d6e; color: #fff; padding: 18px 28px; }
  header h1 { margin: 0; font-size: 26px; }
  header .sub { color: #b8b8e0; font-size: 13px; margin-top: 4px; }
  aside { width: 240px; background: #f4f4fb; padding: 20px; }
  main { flex: 1; padding: 20px 28px; }
  h2 { font-size: 15px; text-transform: uppercase; letter-spacing: 1px; color: #2d2d6e; border-bottom: 2px solid #e8e8f4; padding-bottom: 4px; }
  .stat { margin-bottom: 12px; }
  .stat .label { font-size: 11px; text-transform: uppercase; color: #7a7a9a; }
  .stat .value { font-size: 14px; font-weight: 600; }
  .pill { display: inline-block; background: #e8e8f4; border-radius: 10px; padding: 2px 10px; margin: 2px; font-size: 12px; }
  .pill.hot { background: #ffd166; font-weight: 600; }
  .whynow { margin-bottom: 10px; }
  .whynow .title { font-weight: 600; }
  .whynow a { font-size: 11px; color: #5a5ac0; }
  .persona { border: 1px solid #e8e8f4; border-radius: 6px; padding: 10px 14px; margin-bottom: 10px; }
  .persona .role { color: #7a7a9a; font-size: 13px; }
  .persona ul { margin: 4px 0; padding-left: 18px; font-size: 13px; }
  .opener { background: #f4f4fb; border-left: 3px solid #2d2d6e; padding: 8px 12px; margin-bottom: 8px; font-size: 13px; }
  table.solutions { width: 100%; border-collapse: collapse; font-size: 13px; }
  table.solutions th, table.solutions td { border: 1px solid #e8e8f4; padding: 6px 10px; text-align: left; }
  footer { color: #7a7a9a; font-size: 11px; padding: 12px 28px; border-top: 1px solid #e8e8f4; }
</style>
</head>
<body>
<header>
  {{if .LogoPath}}<img src="{{.LogoPath}}" alt="logo" height="28">{{else}}<div class="wordmark">WORKSHOP</div>{{end}}
  <h1>{{.Company}}</h1>
  <div class="sub">{{.Website}} &middot; Generated {{.GeneratedAt}}</div>
</header>
<div class="page">
<aside>
  <h2>Snapshot</h2>
  {{range .Stats}}
  <div class="stat">
    <div class="label">{{.Label}}</div>
    <div class="value">{{if .SourceURL}}<a href="{{.SourceURL}}">{{.Value}}</a>{{else}}{{.Value}}{{end}}</div>
  </div>
  {{end}}
  {{if .TechPills}}
  <h2>Tech Stack</h2>
  {{range .TechPills}}<span class="pill{{if .Hot}} hot{{end}}">{{.Name}}</span>{{end}}
  {{end}}
  {{if .ChangeEvents}}
  <h2>Change Events</h2>
  <ul>{{range .ChangeEvents}}<li>{{.}}</li>{{end}}</ul>
  {{end}}
</aside>
<main>
  <h2>Why Now</h2>
  {{range .WhyNow}}
  <div class="whynow">
    <span class="title">{{.Title}}</span> &mdash; {{.Description}}
    {{if .SourceURL}}<a href="{{.SourceURL}}">source</a>{{end}}
  </div>
  {{end}}

  <h2>Who to Reach</h2>
  {{range .Personas}}
  <div class="persona">
    <div class="name"><strong>{{.Name}}</strong>{{if not .Named}} <em>(role-based)</em>{{end}}</div>
    <div class="role">{{.Role}}{{if .Email}} &middot; {{.Email}}{{end}}</div>
    {{if .Goals}}<ul>{{range .Goals}}<li>Goal: {{.}}</li>{{end}}</ul>{{end}}
    {{if .Fears}}<ul>{{range .Fears}}<li>Fear: {{.}}</li>{{end}}</ul>{{end}}
  </div>
  {{end}}

  <h2>Angles</h2>
  {{range .Angles}}
  <div class="whynow"><span class="title">{{.Title}}</span> &mdash; {{.Description}}</div>
  {{end}}
  {{if .Displacement}}<div class="whynow"><span class="title">Displacement</span> &mdash; {{.Displacement}}</div>{{end}}

  {{if .Openers}}
  <h2>Openers</h2>
  {{range .Openers}}
  <div class="opener"><strong>{{.Label}}:</strong> {{.Script}}</div>
  {{end}}
  {{end}}

  {{if .Solutions}}
  <h2>Solution Match</h2>
  <table class="solutions">
    <tr><th>Capability</th><th>Features</th><th>Tier</th></tr>
    {{range .Solutions}}
    <tr><td>{{.Name}}</td><td>{{range $i, $f := .Features}}{{if $i}}, {{end}}{{$f}}{{end}}</td><td>{{.Tier}}</td></tr>
    {{end}}
  </table>
  {{end}}
</main>
</div>
<footer>Based on {{.SourcesCount}} public sources &middot; Report {{.ReportID}}</footer>
</body>
</html>
`
