// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/kauman3/workshop-abm-researcher/internal/features"
	"github.com/kauman3/workshop-abm-researcher/pkg/types"
)

var featuresCmd = &cobra.Command{
	Use:   "features [record.json]",
	Short: "Print the capability table, or match it against a record",
	Long: `Features prints the capability table the renderer matches records
against: each capability's pain-point keywords, product features, and
pricing tier. Given a saved intelligence record it instead prints the
capabilities matching that company, highest relevance first. Pass
--features to use a YAML override instead of the built-in table.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runFeatures,
}

func init() {
	featuresCmd.Flags().String("features", "", "YAML capability table overriding the built-in one")
	featuresCmd.Flags().Bool("yaml", false, "print the full table as YAML")

	rootCmd.AddCommand(featuresCmd)
}

func runFeatures(cmd *cobra.Command, args []string) error {
	table := features.DefaultTable()
	if path, _ := cmd.Flags().GetString("features"); path != "" {
		loaded, err := features.LoadTable(path)
		if err != nil {
			return err
		}
		table = loaded
	}

	if len(args) == 1 {
		return matchFeatures(table, args[0])
	}

	if asYAML, _ := cmd.Flags().GetBool("yaml"); asYAML {
		return yaml.NewEncoder(os.Stdout).Encode(table)
	}

	for _, c := range table.Capabilities {
		fmt.Printf("%s (%s)\n", c.Name, c.Tier)
		fmt.Printf("  matches: %s\n", strings.Join(c.PainPoints, ", "))
	}
	return nil
}

func matchFeatures(table *features.Table, recordPath string) error {
	data, err := os.ReadFile(recordPath)
	if err != nil {
		return fmt.Errorf("reading record: %w", err)
	}
	var rec types.IntelligenceRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return fmt.Errorf("parsing record %s: %w", recordPath, err)
	}

	matches := table.Match(&rec)
	if len(matches) == 0 {
		fmt.Printf("no capability matches for %s\n", rec.Metadata.Company)
		return nil
	}
	for _, m := range matches {
		fmt.Printf("%s (score %d, %s)\n", m.Name, m.RelevanceScore, m.Tier)
		fmt.Printf("  matched: %s\n", strings.Join(m.MatchedKeywords, ", "))
	}
	if angle := features.DisplacementAngle(rec.Snapshot.TechStack); angle != "" {
		fmt.Printf("displacement: %s\n", angle)
	}
	return nil
}
