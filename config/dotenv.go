package config

import (
	"os"

	"github.com/joho/godotenv"
)

// LoadDotEnv loads filenames, or .env by default, into the environment.
// Missing files are skipped; unreadable or malformed ones are reported.
func LoadDotEnv(filenames ...string) error {
	if err := godotenv.Load(filenames...); err != nil && !os.IsNotExist(err) {
		return err
	}

	return nil
}
