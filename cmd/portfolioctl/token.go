package main

import (
	"fmt"
	"os"
	"time"

	"portfolio-backend/internal/domain"
	"portfolio-backend/pkg/auth"

	"github.com/spf13/cobra"
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Print an admin bearer token for /v1/admin routes",
	Long:  "Signs an HS256 admin token with ADMIN_JWT_SECRET. Pass it as 'Authorization: Bearer <token>'.",
	RunE:  runToken,
}

var (
	tokenSubject string
	tokenTTL     time.Duration
)

func init() {
	tokenCmd.Flags().StringVar(&tokenSubject, "sub", "owner", "token subject")
	tokenCmd.Flags().DurationVar(&tokenTTL, "ttl", 24*time.Hour, "token lifetime")

	rootCmd.AddCommand(tokenCmd)
}

func runToken(cmd *cobra.Command, _ []string) error {
	token, err := auth.IssueAdminToken(os.Getenv("ADMIN_JWT_SECRET"), tokenSubject, domain.RoleAdmin, tokenTTL)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), token)
	return nil
}
