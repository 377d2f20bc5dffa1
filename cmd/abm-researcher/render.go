// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kauman3/workshop-abm-researcher/internal/features"
	"github.com/kauman3/workshop-abm-researcher/internal/render"
	"github.com/kauman3/workshop-abm-researcher/pkg/types"
)

var renderCmd = &cobra.Command{
	Use:   "render <record.json>",
	Short: "Render a saved intelligence record as an HTML one-pager",
	Long: `Render reads an intelligence record produced by the research command and
writes the one-page HTML account brief. Solution matching uses the built-in
capability table unless --features points at a YAML override.`,
	Args: cobra.ExactArgs(1),
	RunE: runRender,
}

func init() {
	renderCmd.Flags().String("out", "", "output path (default <record>.html)")
	renderCmd.Flags().String("features", "", "YAML capability table overriding the built-in one")
	renderCmd.Flags().String("logo", "", "logo image embedded in the header")

	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading record: %w", err)
	}
	var rec types.IntelligenceRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return fmt.Errorf("parsing record %s: %w", args[0], err)
	}

	out, _ := cmd.Flags().GetString("out")
	if out == "" {
		out = args[0] + ".html"
	}

	renderCfg := types.RenderConfig{}
	renderCfg.FeaturesPath, _ = cmd.Flags().GetString("features")
	renderCfg.LogoPath, _ = cmd.Flags().GetString("logo")

	if err := writeOnePager(&rec, out, renderCfg); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "one-pager written to %s\n", out)
	return nil
}

// writeOnePager renders rec to path, loading the capability table override
// when configured. Shared by the research and render commands.
func writeOnePager(rec *types.IntelligenceRecord, path string, cfg types.RenderConfig) error {
	opts := render.Options{LogoPath: cfg.LogoPath}
	if cfg.FeaturesPath != "" {
		table, err := features.LoadTable(cfg.FeaturesPath)
		if err != nil {
			return err
		}
		opts.Table = table
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating one-pager: %w", err)
	}
	if err := render.Render(f, rec, opts); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
