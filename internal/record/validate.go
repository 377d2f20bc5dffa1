// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package record turns raw generator output into a complete, renderable
// intelligence record. It implements a two-tier recovery strategy: parse
// and repair section-by-section when the output is JSON, and fall back to a
// schema-valid placeholder record when it is not. Parsing never produces an
// error for the caller; data-quality problems become defaults and Unknown
// sentinels instead.
package record

import (
	"encoding/json"
	"strings"

	"github.com/kauman3/workshop-abm-researcher/pkg/types"
)

// Tier reports which recovery path produced a record, so callers and tests
// can distinguish a clean parse from a repaired or fabricated one.
type Tier int

const (
	// TierParsed means the generator output contained every required section.
	TierParsed Tier = iota

	// TierRepaired means at least one required section was missing and
	// was back-filled with its documented default.
	TierRepaired

	// TierFallback means the output was not parseable JSON and the whole
	// record is placeholder content.
	TierFallback
)

// String returns the tier name for progress output.
func (t Tier) String() string {
	switch t {
	case TierParsed:
		return "parsed"
	case TierRepaired:
		return "repaired"
	case TierFallback:
		return "fallback"
	}
	return "unknown"
}

// Section caps enforced after validation. The instruction contract states
// the same limits, but the fixed-page layout downstream cannot trust the
// generator to self-limit, so these are hard truncation rules.
const (
	maxWhyNow   = 3
	maxPersonas = 2
	maxAngles   = 2
	maxOpeners  = 2
)

// Validate parses raw generator text into a complete IntelligenceRecord.
// Incidental code-fence wrapping is stripped first. Each required section
// missing from the parsed object is back-filled with its default; total
// parse failure yields the fallback record. The meta envelope is always
// attached last, overwriting anything the generator produced under
// "_metadata".
func Validate(raw string, meta types.ReportMeta) (*types.IntelligenceRecord, Tier) {
	cleaned := stripFences(raw)

	var sections map[string]json.RawMessage
	if err := json.Unmarshal([]byte(cleaned), &sections); err != nil || sections == nil {
		return Fallback(meta), TierFallback
	}

	rec := &types.IntelligenceRecord{}
	tier := TierParsed

	if !decodeSection(sections, "snapshot", &rec.Snapshot) {
		tier = TierRepaired
	}
	if !decodeSection(sections, "why_now", &rec.WhyNow) {
		tier = TierRepaired
	}
	if !decodeSection(sections, "personas", &rec.Personas) {
		tier = TierRepaired
	}
	if !decodeSection(sections, "angles", &rec.Angles) {
		tier = TierRepaired
	}
	// Openers are optional; a missing list defaults without marking the
	// record as repaired.
	decodeSection(sections, "openers", &rec.Openers)

	normalize(rec)
	rec.Metadata = meta
	return rec, tier
}

// decodeSection unmarshals one top-level section when present and
// well-formed. It reports false when the section must be defaulted.
func decodeSection(sections map[string]json.RawMessage, key string, dst any) bool {
	raw, ok := sections[key]
	if !ok {
		return false
	}
	if string(raw) == "null" {
		return false
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		// A malformed section is treated the same as a missing one.
		return false
	}
	return true
}

// normalize fills Unknown sentinels, guarantees non-nil lists, and applies
// the hard section caps.
func normalize(rec *types.IntelligenceRecord) {
	fillUnknown(&rec.Snapshot.Industry)
	fillUnknown(&rec.Snapshot.Size)
	fillUnknown(&rec.Snapshot.Location)
	fillUnknown(&rec.Snapshot.FiscalYear)
	fillUnknown(&rec.Snapshot.GlassdoorScore)

	if rec.Snapshot.TechStack == nil {
		rec.Snapshot.TechStack = []types.TechTool{}
	}
	if rec.Snapshot.ChangeEvents == nil {
		rec.Snapshot.ChangeEvents = []types.ChangeEvent{}
	}
	if rec.WhyNow == nil {
		rec.WhyNow = []types.WhyNowItem{}
	}
	if rec.Personas == nil {
		rec.Personas = []types.Persona{}
	}
	if rec.Angles == nil {
		rec.Angles = []types.Angle{}
	}
	if rec.Openers == nil {
		rec.Openers = []types.Opener{}
	}

	if len(rec.WhyNow) > maxWhyNow {
		rec.WhyNow = rec.WhyNow[:maxWhyNow]
	}
	if len(rec.Personas) > maxPersonas {
		rec.Personas = rec.Personas[:maxPersonas]
	}
	if len(rec.Angles) > maxAngles {
		rec.Angles = rec.Angles[:maxAngles]
	}
	if len(rec.Openers) > maxOpeners {
		rec.Openers = rec.Openers[:maxOpeners]
	}

	for i := range rec.Personas {
		if rec.Personas[i].Email == "" {
			rec.Personas[i].Email = types.UnknownValue
		}
	}
}

// fillUnknown replaces an empty attributed value with the Unknown sentinel.
func fillUnknown(a *types.Attributed) {
	if a.Value == "" {
		a.Value = types.UnknownValue
	}
}

// stripFences removes enclosing markdown code-fence wrapping, including an
// optional language tag, from generator output.
func stripFences(raw string) string {
	s := strings.TrimSpace(raw)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimPrefix(s, "json")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
