// pkg/botconfig/credentials.go

package botconfig

import (
	"encoding/json"
	"os"

	cerr "github.com/cockroachdb/errors"
)

// serviceAccountKey is the subset of a Google service-account JSON file
// we care about when sanity-checking the Sheets credentials.
type serviceAccountKey struct {
	Type        string `json:"type"`
	ProjectID   string `json:"project_id"`
	ClientEmail string `json:"client_email"`
	PrivateKey  string `json:"private_key"`
}

// CheckCredentials validates the optional Google service-account file.
// The bot runs fine without Sheets export, so callers treat any error
// from here as a warning, not a failure.
func CheckCredentials(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cerr.Newf("credentials file %s does not exist (Sheets export disabled)", path)
		}
		return cerr.Wrapf(err, "read %s", path)
	}

	var key serviceAccountKey
	if err := json.Unmarshal(data, &key); err != nil {
		return cerr.Wrapf(err, "parse %s", path)
	}

	if key.Type != "service_account" {
		return cerr.Newf("%s is not a service-account key (type %q)", path, key.Type)
	}
	if key.ClientEmail == "" || key.PrivateKey == "" {
		return cerr.Newf("%s is missing client_email or private_key", path)
	}
	return nil
}
