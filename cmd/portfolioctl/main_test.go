package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"portfolio-backend/pkg/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestTokenCommand(t *testing.T) {
	t.Setenv("ADMIN_JWT_SECRET", "cli-secret")

	out, err := execute(t, "token", "--sub", "ops", "--ttl", "1h")
	require.NoError(t, err)

	claims, err := auth.ParseAdminToken("cli-secret", strings.TrimSpace(out))
	require.NoError(t, err)
	assert.Equal(t, "ops", claims.Subject)
}

func TestTokenCommandWithoutSecret(t *testing.T) {
	t.Setenv("ADMIN_JWT_SECRET", "")
	_, err := execute(t, "token")
	assert.ErrorIs(t, err, auth.ErrNoSecret)
}

func TestContentCommand(t *testing.T) {
	t.Setenv("CONTENT_PATH", "")

	out, err := execute(t, "content")
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(out), &doc))
	assert.Contains(t, doc, "experience")
	assert.Contains(t, out, "download_url: /resume.pdf")
}

func TestCheckAssetsCommand(t *testing.T) {
	dir := t.TempDir()
	resume := filepath.Join(dir, "cv.pdf")
	require.NoError(t, os.WriteFile(resume, []byte("%PDF-1.4 x"), 0o644))
	t.Setenv("ASSETS_BUCKET", "")
	t.Setenv("RESUME_PATH", resume)
	t.Setenv("PROFILE_IMAGE_PATH", filepath.Join(dir, "missing.png"))

	out, err := execute(t, "check-assets")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "profile image")
	assert.Contains(t, out, "application/pdf")
}
