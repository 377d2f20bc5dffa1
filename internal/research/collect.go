// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package research collects attributable web sources for a target company
// and assembles them into a prompt-context block. It is the front half of
// the research-to-structured-data pipeline: a fixed battery of topical and
// persona-hunting queries fans out to the search provider, and the flattened
// results become the numbered source list every downstream citation refers to.
package research

import (
	"context"
	"fmt"
	"io"

	"golang.org/x/sync/errgroup"

	"github.com/kauman3/workshop-abm-researcher/pkg/types"
)

// Collector runs the query battery against a search client.
type Collector struct {
	Client SearchClient
	Config types.SearchConfig
}

// Collect executes every query in the battery concurrently and flattens the
// results into one ordered source list. Indices are assigned after all
// queries return, in fixed category order, so citation numbering is
// deterministic regardless of completion order.
//
// Failures are isolated per query: a failed query logs a warning to w and
// contributes no sources, but never aborts the others. When everything
// fails the collector returns an empty list and the pipeline continues with
// degraded context rather than erroring.
func (c *Collector) Collect(ctx context.Context, company, website string, w io.Writer) []types.SourceRecord {
	battery := buildBattery(company, website, c.Config)

	hits := make([][]Hit, len(battery))
	errs := make([]error, len(battery))

	g, gctx := errgroup.WithContext(ctx)
	for i, q := range battery {
		i, q := i, q
		g.Go(func() error {
			results, err := c.Client.Search(gctx, q.text, c.depth(), q.maxResults)
			if err != nil {
				// Recorded, not returned: one query must not cancel
				// its siblings.
				errs[i] = err
				return nil
			}
			hits[i] = results
			return nil
		})
	}
	g.Wait()

	var sources []types.SourceRecord
	for i, q := range battery {
		if errs[i] != nil {
			fmt.Fprintf(w, "warning: %s query failed: %v\n", q.category, errs[i])
			continue
		}
		for _, h := range hits[i] {
			sources = append(sources, types.SourceRecord{
				Title:    h.Title,
				URL:      h.URL,
				Content:  h.Content,
				Category: q.category,
			})
		}
	}

	fmt.Fprintf(w, "collected %d sources across %d queries\n", len(sources), len(battery))
	return sources
}

func (c *Collector) depth() string {
	if c.Config.Depth != "" {
		return c.Config.Depth
	}
	return "advanced"
}
