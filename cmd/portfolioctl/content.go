package main

import (
	"fmt"

	"portfolio-backend/config"
	"portfolio-backend/internal/content"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var contentCmd = &cobra.Command{
	Use:   "content",
	Short: "Print the effective portfolio content as YAML",
	Long:  "Prints the built-in content merged with CONTENT_PATH. The output is a valid starting point for a CONTENT_PATH file.",
	RunE:  runContent,
}

func init() {
	rootCmd.AddCommand(contentCmd)
}

func runContent(cmd *cobra.Command, _ []string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	portfolio, err := content.Load(cfg.ContentPath)
	if err != nil {
		return err
	}

	enc := yaml.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent(2)
	if err := enc.Encode(portfolio); err != nil {
		return fmt.Errorf("failed to encode content: %w", err)
	}
	return enc.Close()
}
