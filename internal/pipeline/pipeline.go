// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pipeline orchestrates the research-to-record flow: source
// collection, context assembly, generative synthesis, and validation into
// a guaranteed-shape intelligence record.
package pipeline

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/kauman3/workshop-abm-researcher/internal/record"
	"github.com/kauman3/workshop-abm-researcher/internal/research"
	"github.com/kauman3/workshop-abm-researcher/internal/synthesis"
	"github.com/kauman3/workshop-abm-researcher/pkg/types"
)

// Agent runs the full pipeline for one company. Search and Synth are
// interfaces so tests can substitute fakes without network access.
type Agent struct {
	Search research.SearchClient
	Synth  synthesis.Backend
	Config types.PipelineConfig

	// Out receives progress and warning lines. Nil discards them.
	Out io.Writer
}

// CompanyData researches a company and returns its validated intelligence
// record along with the recovery tier the record came through.
//
// Search failures degrade (fewer or zero sources) but never abort; a
// synthesis failure after retries is the one path that returns an error,
// and callers that still need output should fall back via record.Fallback.
func (a *Agent) CompanyData(ctx context.Context, company, website string) (*types.IntelligenceRecord, record.Tier, error) {
	out := a.Out
	if out == nil {
		out = io.Discard
	}

	fmt.Fprintf(out, "researching %s...\n", company)
	collector := &research.Collector{Client: a.Search, Config: a.Config.Search}
	sources := collector.Collect(ctx, company, website, out)

	promptContext := research.BuildContext(company, sources)

	fmt.Fprintf(out, "synthesizing intelligence record...\n")
	raw, err := synthesis.Synthesize(ctx, a.Synth, synthesis.Request{
		Company: company,
		Website: website,
		Context: promptContext,
	}, a.Config.AI.MaxRetries)
	if err != nil {
		return nil, record.TierFallback, fmt.Errorf("synthesizing record for %s: %w", company, err)
	}

	meta := types.ReportMeta{
		Company:      company,
		Website:      website,
		SourcesCount: len(sources),
		AllSources:   sources,
		ReportID:     uuid.NewString(),
		GeneratedAt:  time.Now().UTC(),
	}

	rec, tier := record.Validate(raw, meta)
	fmt.Fprintf(out, "record validated (%s)\n", tier)
	return rec, tier, nil
}
