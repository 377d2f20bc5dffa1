// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the abm-researcher pipeline.
package types

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// Attributed is a fact value with optional provenance. Generator output is
// inconsistent about whether a fact arrives as a bare string or as an object
// carrying a source reference, so Attributed accepts both on decode and
// always presents one shape downstream.
type Attributed struct {
	// Value is the fact itself (e.g. "June 30" for a fiscal year end).
	Value string `json:"value" yaml:"value"`

	// Source is the 1-based index of the supporting source in
	// _metadata.all_sources, or 0 when the fact has no citation.
	Source int `json:"source,omitempty" yaml:"source,omitempty"`

	// SourceURL is the supporting source's URL, when the generator
	// included one directly.
	SourceURL string `json:"source_url,omitempty" yaml:"source_url,omitempty"`
}

// UnmarshalJSON accepts a bare string, a bare number, or an object with
// value/source/source_url fields.
func (a *Attributed) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || string(trimmed) == "null" {
		*a = Attributed{}
		return nil
	}

	switch trimmed[0] {
	case '"':
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return err
		}
		*a = Attributed{Value: s}
		return nil
	case '{':
		type plain Attributed
		var p plain
		if err := json.Unmarshal(trimmed, &p); err != nil {
			return err
		}
		*a = Attributed(p)
		return nil
	default:
		// Numbers (e.g. a Glassdoor score of 4.1) are rendered as text.
		var n json.Number
		if err := json.Unmarshal(trimmed, &n); err != nil {
			return fmt.Errorf("attributed value must be a string, number, or object: %w", err)
		}
		*a = Attributed{Value: n.String()}
		return nil
	}
}

// IsUnknown reports whether the value is absent or the "Unknown" sentinel.
func (a Attributed) IsUnknown() bool {
	return a.Value == "" || a.Value == UnknownValue
}

// UnknownValue is the sentinel the instruction contract requires for any
// fact not traceable to a supplied source.
const UnknownValue = "Unknown"

// TechTool is one entry in the company's detected tech stack.
type TechTool struct {
	// Tool is the product name (e.g. "Microsoft Teams", "Workday").
	Tool string `json:"tool" yaml:"tool"`

	// Category classifies the tool (e.g. "HRIS", "internal comms").
	Category string `json:"category,omitempty" yaml:"category,omitempty"`

	// Source is the 1-based supporting source index, 0 when uncited.
	Source int `json:"source,omitempty" yaml:"source,omitempty"`
}

// UnmarshalJSON accepts either a bare tool name or the full object.
func (t *TechTool) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return err
		}
		*t = TechTool{Tool: s}
		return nil
	}
	type plain TechTool
	var p plain
	if err := json.Unmarshal(trimmed, &p); err != nil {
		return err
	}
	*t = TechTool(p)
	return nil
}

// ChangeEvent is a recent structural change at the company (leadership
// change, acquisition, expansion, restructuring).
type ChangeEvent struct {
	Event     string `json:"event" yaml:"event"`
	Source    int    `json:"source,omitempty" yaml:"source,omitempty"`
	SourceURL string `json:"source_url,omitempty" yaml:"source_url,omitempty"`
}

// UnmarshalJSON accepts either a bare event string or the full object.
func (e *ChangeEvent) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return err
		}
		*e = ChangeEvent{Event: s}
		return nil
	}
	type plain ChangeEvent
	var p plain
	if err := json.Unmarshal(trimmed, &p); err != nil {
		return err
	}
	*e = ChangeEvent(p)
	return nil
}

// Snapshot holds the company firmographics sidebar data. Scalar fields use
// the Unknown sentinel rather than being absent.
type Snapshot struct {
	Industry       Attributed    `json:"industry" yaml:"industry"`
	Size           Attributed    `json:"size" yaml:"size"`
	Location       Attributed    `json:"location" yaml:"location"`
	FiscalYear     Attributed    `json:"fiscal_year" yaml:"fiscal_year"`
	GlassdoorScore Attributed    `json:"glassdoor_score" yaml:"glassdoor_score"`
	TechStack      []TechTool    `json:"tech_stack" yaml:"tech_stack"`
	ChangeEvents   []ChangeEvent `json:"change_events" yaml:"change_events"`
}

// WhyNowItem is one timing-rationale bullet connecting a recent change to
// an internal-communication challenge.
type WhyNowItem struct {
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
	Source      int    `json:"source,omitempty" yaml:"source,omitempty"`
	SourceURL   string `json:"source_url,omitempty" yaml:"source_url,omitempty"`
}

// Persona is a modeled buyer profile. Name is a real person's name only
// when IsNamedPerson is true; otherwise it is a role placeholder.
type Persona struct {
	Name          string   `json:"name" yaml:"name"`
	Role          string   `json:"role" yaml:"role"`
	Email         string   `json:"email" yaml:"email"`
	IsNamedPerson bool     `json:"is_named_person" yaml:"is_named_person"`
	Goals         []string `json:"goals" yaml:"goals"`
	Fears         []string `json:"fears" yaml:"fears"`
}

// Angle is a proposed value proposition tied to evidence.
type Angle struct {
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
	Metric      string `json:"metric,omitempty" yaml:"metric,omitempty"`
	Sources     []int  `json:"sources,omitempty" yaml:"sources,omitempty"`
}

// Opener is a ready-to-use talk track for the first outreach touch.
type Opener struct {
	Label  string `json:"label" yaml:"label"`
	Script string `json:"script" yaml:"script"`
}

// SourceRecord is one attributable external search hit. Its identity is its
// 1-based position in the flattened source list, which downstream fields
// cite by index.
type SourceRecord struct {
	// Title is the page title as returned by the search provider.
	Title string `json:"title" yaml:"title"`

	// URL is the page address, used for citation hyperlinks.
	URL string `json:"url" yaml:"url"`

	// Content is the extracted snippet text.
	Content string `json:"content" yaml:"content"`

	// Category identifies which query in the battery produced this hit
	// (e.g. "general", "tech", "people_linkedin").
	Category string `json:"query_category" yaml:"query_category"`
}

// ReportMeta is the non-generative envelope the validator attaches to every
// record, overwriting anything the generator produced under "_metadata".
type ReportMeta struct {
	Company      string         `json:"company" yaml:"company"`
	Website      string         `json:"website" yaml:"website"`
	SourcesCount int            `json:"sources_count" yaml:"sources_count"`
	AllSources   []SourceRecord `json:"all_sources" yaml:"all_sources"`
	ReportID     string         `json:"report_id" yaml:"report_id"`
	GeneratedAt  time.Time      `json:"generated_at" yaml:"generated_at"`
}

// IntelligenceRecord is the validated output contract of the pipeline.
// Every top-level section is always present, even when defaulted, so the
// renderer never guards against a missing key.
type IntelligenceRecord struct {
	Snapshot Snapshot     `json:"snapshot" yaml:"snapshot"`
	WhyNow   []WhyNowItem `json:"why_now" yaml:"why_now"`
	Personas []Persona    `json:"personas" yaml:"personas"`
	Angles   []Angle      `json:"angles" yaml:"angles"`
	Openers  []Opener     `json:"openers" yaml:"openers"`
	Metadata ReportMeta   `json:"_metadata" yaml:"_metadata"`
}

// SourceURLFor resolves a 1-based citation index to its source URL, or ""
// when the index is out of range.
func (r *IntelligenceRecord) SourceURLFor(index int) string {
	if index < 1 || index > len(r.Metadata.AllSources) {
		return ""
	}
	return r.Metadata.AllSources[index-1].URL
}
