// pkg/botconfig/env.go
//
// Validation of the bot's own configuration artifacts. The .env file is
// the primary config: without TELEGRAM_BOT_TOKEN the bot exits on boot,
// so starting the service without it would only produce a crash loop.

package botconfig

import (
	"os"
	"strings"

	cerr "github.com/cockroachdb/errors"
	"github.com/joho/godotenv"
)

// TokenKey is the one variable the bot refuses to start without.
const TokenKey = "TELEGRAM_BOT_TOKEN"

// CheckEnvFile parses the .env file and verifies the bot token is set.
// Any failure here is a fatal precondition for remediation.
func CheckEnvFile(path string) error {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return cerr.Newf("primary config %s does not exist", path)
		}
		return cerr.Wrapf(err, "stat %s", path)
	}

	vars, err := godotenv.Read(path)
	if err != nil {
		return cerr.Wrapf(err, "parse %s", path)
	}

	if strings.TrimSpace(vars[TokenKey]) == "" {
		return cerr.Newf("%s is missing %s", path, TokenKey)
	}
	return nil
}

// EnvSummary returns the variable names (never values) defined in the
// .env file, for diagnostics output.
func EnvSummary(path string) ([]string, error) {
	vars, err := godotenv.Read(path)
	if err != nil {
		return nil, cerr.Wrapf(err, "parse %s", path)
	}
	keys := make([]string, 0, len(vars))
	for k := range vars {
		keys = append(keys, k)
	}
	return keys, nil
}
