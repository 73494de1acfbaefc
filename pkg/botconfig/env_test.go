// pkg/botconfig/env_test.go

package botconfig

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeEnv(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestCheckEnvFile(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name:    "valid",
			content: "TELEGRAM_BOT_TOKEN=123456:ABCdef\nDATABASE_URL=sqlite:///./smartfinances.db\n",
		},
		{
			name:    "token missing",
			content: "DATABASE_URL=sqlite:///./smartfinances.db\n",
			wantErr: "TELEGRAM_BOT_TOKEN",
		},
		{
			name:    "token empty",
			content: "TELEGRAM_BOT_TOKEN=\n",
			wantErr: "TELEGRAM_BOT_TOKEN",
		},
		{
			name:    "token whitespace only",
			content: "TELEGRAM_BOT_TOKEN=\"   \"\n",
			wantErr: "TELEGRAM_BOT_TOKEN",
		},
		{
			name:    "comments and blanks tolerated",
			content: "# bot credentials\n\nTELEGRAM_BOT_TOKEN=123456:ABCdef\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckEnvFile(writeEnv(t, tt.content))
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}

	t.Run("missing file", func(t *testing.T) {
		err := CheckEnvFile(filepath.Join(t.TempDir(), ".env"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "does not exist")
	})
}

func TestEnvSummary(t *testing.T) {
	path := writeEnv(t, "TELEGRAM_BOT_TOKEN=x\nGOOGLE_SHEET_ID=y\n")

	keys, err := EnvSummary(path)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"TELEGRAM_BOT_TOKEN", "GOOGLE_SHEET_ID"}, keys)
}
