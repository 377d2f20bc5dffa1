// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package record

import (
	"fmt"

	"github.com/kauman3/workshop-abm-researcher/pkg/types"
)

// Fallback produces a complete, schema-valid record for use when the
// generator output could not be parsed at all. The content is deliberately
// recognizable as placeholder: zero sources and explicit research-needed
// language, so a fabricated record is never mistaken for a well-sourced
// one. Running the result back through Validate yields the same record.
func Fallback(meta types.ReportMeta) *types.IntelligenceRecord {
	// A fallback record cites nothing, so it carries no sources even when
	// some were collected.
	meta.SourcesCount = 0
	meta.AllSources = []types.SourceRecord{}

	unknown := types.Attributed{Value: types.UnknownValue}

	return &types.IntelligenceRecord{
		Snapshot: types.Snapshot{
			Industry:       unknown,
			Size:           unknown,
			Location:       unknown,
			FiscalYear:     unknown,
			GlassdoorScore: unknown,
			TechStack:      []types.TechTool{},
			ChangeEvents:   []types.ChangeEvent{},
		},
		WhyNow: []types.WhyNowItem{
			{
				Title: "Manual research recommended",
				Description: fmt.Sprintf(
					"Automated synthesis could not produce a structured profile for %s. "+
						"Verify recent news and leadership changes by hand before outreach.",
					meta.Company),
			},
		},
		Personas: []types.Persona{
			{
				Name:          "Internal Communications Lead",
				Role:          "Owns employee communications strategy",
				Email:         types.UnknownValue,
				IsNamedPerson: false,
				Goals:         []string{"Reach every employee reliably", "Prove communication impact to leadership"},
				Fears:         []string{"Important messages going unread", "No data on what employees engage with"},
			},
		},
		Angles: []types.Angle{
			{
				Title:       "Purpose-built internal email",
				Description: "Workshop replaces ad-hoc internal sends with designed, measurable employee email.",
				Metric:      "Open and read-time analytics",
			},
		},
		Openers: []types.Opener{
			{
				Label:  "Discovery opener",
				Script: "How is your team measuring whether internal announcements actually get read today?",
			},
		},
		Metadata: meta,
	}
}
