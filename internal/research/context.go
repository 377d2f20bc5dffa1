// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package research

import (
	"fmt"
	"strings"

	"github.com/kauman3/workshop-abm-researcher/pkg/types"
)

// BuildContext serializes the numbered source list into a single prompt
// context block, preserving source identity so the generator can cite by
// index. It never truncates: length discipline is the instruction
// contract's job, via per-field character budgets.
//
// With no sources at all it returns a degraded-context marker so synthesis
// still runs but produces an explicitly under-sourced record.
func BuildContext(company string, sources []types.SourceRecord) string {
	if len(sources) == 0 {
		return fmt.Sprintf(
			"Limited public information available for %s. No search results "+
				"could be retrieved. Mark every fact that cannot be verified as %q.",
			company, types.UnknownValue)
	}

	var b strings.Builder
	for i, src := range sources {
		fmt.Fprintf(&b, "[Source %d] (%s)\n", i+1, src.Category)
		fmt.Fprintf(&b, "URL: %s\n", src.URL)
		fmt.Fprintf(&b, "Title: %s\n", src.Title)
		fmt.Fprintf(&b, "Content: %s\n\n", src.Content)
	}
	return strings.TrimSuffix(b.String(), "\n")
}
