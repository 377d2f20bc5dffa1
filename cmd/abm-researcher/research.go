// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kauman3/workshop-abm-researcher/internal/config"
	"github.com/kauman3/workshop-abm-researcher/internal/pipeline"
	"github.com/kauman3/workshop-abm-researcher/internal/record"
	"github.com/kauman3/workshop-abm-researcher/internal/research"
	"github.com/kauman3/workshop-abm-researcher/internal/synthesis"
	"github.com/kauman3/workshop-abm-researcher/pkg/types"
)

var researchCmd = &cobra.Command{
	Use:   "research <company> [website]",
	Short: "Research a company and produce its intelligence record",
	Long: `Research runs the full pipeline for one target company: a battery of
web searches, synthesis of the results into a structured intelligence
record, and validation into a guaranteed shape. The record is written as
JSON; pass --html to also render the one-page account brief.

A company whose searches all fail still produces a record (built from
degraded context); only a synthesis failure after retries falls back to a
manual-research placeholder record.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runResearch,
}

func init() {
	researchCmd.Flags().String("out", "-", "record output path (- for stdout)")
	researchCmd.Flags().String("html", "", "also render the HTML one-pager to this path")
	researchCmd.Flags().String("depth", "", "search depth tier (default advanced)")
	researchCmd.Flags().String("model", "", "generative model identifier")
	researchCmd.Flags().Duration("timeout", 0, "HTTP request timeout (default 30s)")

	rootCmd.AddCommand(researchCmd)
}

// pipelineConfig assembles the effective configuration: built-in defaults,
// then config file / environment via viper, then flags.
func pipelineConfig(cmd *cobra.Command) types.PipelineConfig {
	cfg := types.DefaultPipelineConfig()

	if v := viper.GetString("search.depth"); v != "" {
		cfg.Search.Depth = v
	}
	if v := viper.GetString("ai.model"); v != "" {
		cfg.AI.Model = v
	}
	if v := viper.GetInt("ai.max_retries"); v > 0 {
		cfg.AI.MaxRetries = v
	}
	if v := viper.GetString("render.features_path"); v != "" {
		cfg.Render.FeaturesPath = v
	}
	if v := viper.GetString("render.logo_path"); v != "" {
		cfg.Render.LogoPath = v
	}

	if v, _ := cmd.Flags().GetString("depth"); v != "" {
		cfg.Search.Depth = v
	}
	if v, _ := cmd.Flags().GetString("model"); v != "" {
		cfg.AI.Model = v
	}
	if v, _ := cmd.Flags().GetDuration("timeout"); v > 0 {
		cfg.Search.Timeout = v
	}
	return cfg
}

func runResearch(cmd *cobra.Command, args []string) error {
	company := args[0]
	website := ""
	if len(args) > 1 {
		website = args[1]
	}

	creds, err := config.Load()
	if err != nil {
		return err
	}
	cfg := pipelineConfig(cmd)

	client := &http.Client{Timeout: cfg.Search.Timeout}
	agent := &pipeline.Agent{
		Search: &research.TavilyClient{
			APIKey: creds.TavilyAPIKey,
			Config: cfg.Search.HTTPConfig,
			Client: client,
		},
		Synth: &synthesis.ClaudeBackend{
			APIKey: creds.AnthropicAPIKey,
			Config: cfg.AI,
			Client: client,
		},
		Config: cfg,
		Out:    os.Stderr,
	}

	rec, tier, err := agent.CompanyData(cmd.Context(), company, website)
	if err != nil {
		// No generated content at all: ship the manual-research
		// placeholder rather than nothing.
		fmt.Fprintf(os.Stderr, "warning: %v; writing manual-research fallback\n", err)
		rec = record.Fallback(types.ReportMeta{
			Company:     company,
			Website:     website,
			ReportID:    uuid.NewString(),
			GeneratedAt: time.Now().UTC(),
		})
		tier = record.TierFallback
	}

	if err := writeRecord(cmd, rec); err != nil {
		return err
	}

	if htmlPath, _ := cmd.Flags().GetString("html"); htmlPath != "" {
		if err := writeOnePager(rec, htmlPath, cfg.Render); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "one-pager written to %s\n", htmlPath)
	}

	fmt.Fprintf(os.Stderr, "record complete (%s, %d sources)\n", tier, rec.Metadata.SourcesCount)
	return nil
}

func writeRecord(cmd *cobra.Command, rec *types.IntelligenceRecord) error {
	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding record: %w", err)
	}
	data = append(data, '\n')

	out, _ := cmd.Flags().GetString("out")
	if out == "" || out == "-" {
		_, err = os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(out, data, 0o644); err != nil {
		return fmt.Errorf("writing record: %w", err)
	}
	fmt.Fprintf(os.Stderr, "record written to %s\n", out)
	return nil
}
