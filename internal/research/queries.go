// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package research

import (
	"fmt"

	"github.com/kauman3/workshop-abm-researcher/pkg/types"
)

// Query categories, in the fixed execution order that determines citation
// numbering. Topical queries run first, persona-hunting queries last.
const (
	CategoryGeneral         = "general"
	CategoryStrategy        = "strategy"
	CategoryTech            = "tech"
	CategoryCulture         = "culture"
	CategoryPeopleInternal  = "people_internal"
	CategoryPeopleCorporate = "people_corporate"
	CategoryPeopleLinkedIn  = "people_linkedin"
)

// categoryOrder fixes the flattening order of the battery. Source indices
// must be stable for a given set of per-query results, so this order never
// depends on query completion timing.
var categoryOrder = []string{
	CategoryGeneral,
	CategoryStrategy,
	CategoryTech,
	CategoryCulture,
	CategoryPeopleInternal,
	CategoryPeopleCorporate,
	CategoryPeopleLinkedIn,
}

// searchQuery is one entry in the query battery.
type searchQuery struct {
	category   string
	text       string
	maxResults int
}

// buildBattery returns the fixed set of named queries for one company, in
// category order. Persona queries get a larger result cap than topical ones
// because named-person searches have a much lower hit rate.
func buildBattery(company, website string, cfg types.SearchConfig) []searchQuery {
	topic := cfg.TopicResults
	if topic <= 0 {
		topic = 5
	}
	persona := cfg.PersonaResults
	if persona <= 0 {
		persona = 8
	}

	texts := map[string]string{
		CategoryGeneral: fmt.Sprintf(
			"Research %s (%s). Find recent change events in the last 6 months "+
				"(hiring spikes, leadership changes, acquisitions, expansions), "+
				"accurate headquarters location and employee count, and their core "+
				"industry and value proposition.",
			company, website),
		CategoryStrategy: fmt.Sprintf(
			"%s strategic initiatives: expansion, restructuring, merger, "+
				"acquisition, new market entry, leadership priorities, growth plans",
			company),
		CategoryTech: fmt.Sprintf(
			"What software and tech stack does %s use? Look for HRIS, internal "+
				"comms tools (Slack, Microsoft Teams, SharePoint), or employee "+
				"engagement platforms. Prefer job postings, case studies, and "+
				"engineering posts over vendor pages.",
			company),
		CategoryCulture: fmt.Sprintf(
			"%s employee reviews culture Glassdoor rating workplace sentiment retention",
			company),
		CategoryPeopleInternal: fmt.Sprintf(
			`"%s" "internal communications" manager OR director OR lead name`,
			company),
		CategoryPeopleCorporate: fmt.Sprintf(
			`"%s" "corporate communications" OR "employee experience" director OR VP name`,
			company),
		CategoryPeopleLinkedIn: fmt.Sprintf(
			`site:linkedin.com/in "%s" "internal communications" OR "employee communications"`,
			company),
	}

	battery := make([]searchQuery, 0, len(categoryOrder))
	for _, cat := range categoryOrder {
		limit := topic
		if isPersonaCategory(cat) {
			limit = persona
		}
		battery = append(battery, searchQuery{
			category:   cat,
			text:       texts[cat],
			maxResults: limit,
		})
	}
	return battery
}

// isPersonaCategory reports whether a category hunts for named people.
func isPersonaCategory(cat string) bool {
	switch cat {
	case CategoryPeopleInternal, CategoryPeopleCorporate, CategoryPeopleLinkedIn:
		return true
	}
	return false
}
