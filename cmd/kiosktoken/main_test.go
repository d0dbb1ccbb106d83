package main

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GlebRadaev/frontdesk/pkg/auth"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := rootCmd(&out)
	cmd.SetArgs(args)
	cmd.SetErr(&bytes.Buffer{})
	err := cmd.Execute()
	return strings.TrimSpace(out.String()), err
}

func TestIssue(t *testing.T) {
	token, err := run(t, "issue", "kiosk-1", "--secret", "s3cret", "--ttl", "1h")
	require.NoError(t, err)

	claims, err := auth.NewJWTService("s3cret").ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "kiosk-1", claims.KioskID)
}

func TestIssue_Errors(t *testing.T) {
	t.Setenv("KIOSK_JWT_SECRET", "")

	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{
			name:    "Missing secret",
			args:    []string{"issue", "kiosk-1"},
			wantErr: "signing secret is empty",
		},
		{
			name:    "Non-positive ttl",
			args:    []string{"issue", "kiosk-1", "-s", "x", "-t", "0s"},
			wantErr: "ttl must be positive",
		},
		{
			name:    "Missing kiosk id",
			args:    []string{"issue", "-s", "x"},
			wantErr: "accepts 1 arg(s)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestIssue_SecretFromEnv(t *testing.T) {
	t.Setenv("KIOSK_JWT_SECRET", "from-env")

	token, err := run(t, "issue", "kiosk-2")
	require.NoError(t, err)

	out, err := run(t, "verify", token)
	require.NoError(t, err)
	assert.Equal(t, "kiosk: kiosk-2", out)
}

func TestVerify_WrongSecret(t *testing.T) {
	token, err := auth.NewJWTService("right").GenerateJWT("kiosk-3", time.Now().Add(time.Hour))
	require.NoError(t, err)

	_, err = run(t, "verify", token, "--secret", "wrong")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid token")
}
