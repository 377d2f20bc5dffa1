// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kauman3/workshop-abm-researcher/internal/synthesis"
)

var promptCmd = &cobra.Command{
	Use:   "prompt",
	Short: "Print the synthesis instruction contract",
	Long: `Prompt prints the system instructions sent to the generative model,
for auditing what the pipeline asks for: the no-fabrication rule, the
citation requirements, and the exact JSON schema of the record.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(synthesis.SystemPrompt())
	},
}

func init() {
	rootCmd.AddCommand(promptCmd)
}
