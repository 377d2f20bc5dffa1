// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package features

import (
	"sort"
	"strings"

	"github.com/kauman3/workshop-abm-researcher/pkg/types"
)

// maxMatches caps the solution matches returned per record.
const maxMatches = 4

// Match is one capability relevant to a company's detected pain points.
type Match struct {
	Key             string   `json:"key" yaml:"key"`
	Name            string   `json:"name" yaml:"name"`
	Features        []string `json:"features" yaml:"features"`
	Tier            string   `json:"tier" yaml:"tier"`
	RelevanceScore  int      `json:"relevance_score" yaml:"relevance_score"`
	MatchedKeywords []string `json:"matched_keywords" yaml:"matched_keywords"`
}

// Match scores every capability's pain-point keywords against the record's
// text and returns the top matches, highest score first. Ties keep table
// order. A nil table or an empty record yields no matches.
func (t *Table) Match(rec *types.IntelligenceRecord) []Match {
	if t == nil || rec == nil {
		return nil
	}

	text := collectText(rec)
	if text == "" {
		return nil
	}

	var matches []Match
	for _, c := range t.Capabilities {
		var keywords []string
		for _, pain := range c.PainPoints {
			if strings.Contains(text, pain) {
				keywords = append(keywords, pain)
			}
		}
		if len(keywords) == 0 {
			continue
		}
		matches = append(matches, Match{
			Key:             c.Key,
			Name:            c.Name,
			Features:        c.Features,
			Tier:            c.Tier,
			RelevanceScore:  len(keywords),
			MatchedKeywords: keywords,
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].RelevanceScore > matches[j].RelevanceScore
	})
	if len(matches) > maxMatches {
		matches = matches[:maxMatches]
	}
	return matches
}

// collectText flattens every textual field of the record into one lowercase
// string for keyword scanning.
func collectText(rec *types.IntelligenceRecord) string {
	var parts []string
	add := func(s string) {
		if s != "" && s != types.UnknownValue {
			parts = append(parts, strings.ToLower(s))
		}
	}

	add(rec.Snapshot.Industry.Value)
	add(rec.Snapshot.Size.Value)
	add(rec.Snapshot.Location.Value)
	for _, ev := range rec.Snapshot.ChangeEvents {
		add(ev.Event)
	}
	for _, tool := range rec.Snapshot.TechStack {
		add(tool.Tool)
		add(tool.Category)
	}
	for _, item := range rec.WhyNow {
		add(item.Title)
		add(item.Description)
	}
	for _, p := range rec.Personas {
		add(p.Name)
		add(p.Role)
		for _, g := range p.Goals {
			add(g)
		}
		for _, f := range p.Fears {
			add(f)
		}
	}
	for _, a := range rec.Angles {
		add(a.Title)
		add(a.Description)
	}

	return strings.Join(parts, " ")
}

// displacementMessages maps an incumbent tool keyword to a competitive
// displacement talking point.
var displacementMessages = []struct {
	tool    string
	message string
}{
	{"outlook", "Replace basic Outlook emails with purpose-built internal comms platform"},
	{"sharepoint", "Move beyond SharePoint intranet to engaging, measurable employee communications"},
	{"teams", "Complement Microsoft Teams chat with structured, archived company-wide announcements"},
	{"slack", "Enhance Slack with formal communications that reach all employees reliably"},
	{"gmail", "Upgrade from basic Gmail to professional internal communications platform"},
	{"mailchimp", "Replace marketing tools with employee-specific communication platform"},
	{"constant contact", "Replace marketing tools with employee-specific communication platform"},
}

// DisplacementAngle returns a competitive displacement talking point when
// the tech stack contains a known incumbent tool, or "" when it does not.
// Earlier tools in the table win when the stack contains several.
func DisplacementAngle(stack []types.TechTool) string {
	if len(stack) == 0 {
		return ""
	}
	var b strings.Builder
	for _, t := range stack {
		b.WriteString(strings.ToLower(t.Tool))
		b.WriteString(" ")
	}
	combined := b.String()

	for _, d := range displacementMessages {
		if strings.Contains(combined, d.tool) {
			return d.message
		}
	}
	return ""
}
