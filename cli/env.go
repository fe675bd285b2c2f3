package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

// EnvFileVar names the environment variable that overrides the path of the
// dotenv file.
const EnvFileVar = "PULL_REMINDER_ENV_FILE"

// loadEnvFile loads variables from a dotenv file into the environment.
// Variables that are already set are left alone. A missing file is not an
// error.
func loadEnvFile(path string) error {
	if p := os.Getenv(EnvFileVar); p != "" {
		path = p
	}
	if path == "" {
		return nil
	}

	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to load environment from %v: %v", path, err)
	}
	return nil
}
