package main

import (
	"context"
	"fmt"
	"time"

	"portfolio-backend/config"
	"portfolio-backend/pkg/imaging"
	"portfolio-backend/pkg/storage"

	"github.com/spf13/cobra"
)

var assetsCmd = &cobra.Command{
	Use:   "check-assets",
	Short: "Verify the resume PDF and profile image are readable and well-formed",
	RunE:  runCheckAssets,
}

func init() {
	rootCmd.AddCommand(assetsCmd)
}

func runCheckAssets(cmd *cobra.Command, _ []string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
	defer cancel()

	var src storage.Source = storage.NewLocal("")
	if cfg.AssetsBucket != "" {
		client, err := storage.NewS3Client(ctx, storage.S3Config{
			Provider:        storage.S3Provider(cfg.S3Provider),
			AccessKeyID:     cfg.S3AccessKeyID,
			SecretAccessKey: cfg.S3SecretAccessKey,
			Region:          cfg.S3Region,
			Bucket:          cfg.AssetsBucket,
			Endpoint:        cfg.S3Endpoint,
		})
		if err != nil {
			return err
		}
		src = storage.NewS3(client, cfg.AssetsBucket)
	}

	data, err := storage.ReadAll(ctx, src, cfg.ResumePath)
	if err != nil {
		return fmt.Errorf("resume: %w", err)
	}
	mime, err := storage.CheckContent(cfg.ResumePath, data)
	if err != nil {
		return fmt.Errorf("resume: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "resume  %s  %s  %d bytes\n", cfg.ResumePath, mime, len(data))

	rendition, err := imaging.NewResizer(src, cfg.ProfileImagePath).Render(0)
	if err != nil {
		return fmt.Errorf("profile image: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "image   %s  %s  %dx%d\n", cfg.ProfileImagePath, rendition.ContentType, rendition.Width, rendition.Height)
	return nil
}
