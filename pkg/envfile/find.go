package envfile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Find locates the env file to read. With an explicit path it only
// verifies the file exists. Otherwise it walks up from startDir looking
// for DefaultPath, stopping at the home directory, a directory
// containing .git, or the filesystem root.
func Find(startDir, explicitPath string) (string, error) {
	if explicitPath != "" {
		if _, err := os.Stat(explicitPath); err != nil {
			return "", fmt.Errorf("env file not found: %w", err)
		}
		return explicitPath, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	currentDir, err := filepath.Abs(startDir)
	if err != nil {
		return "", fmt.Errorf("failed to get absolute path: %w", err)
	}

	for {
		envPath := filepath.Join(currentDir, DefaultPath)
		if _, err := os.Stat(envPath); err == nil {
			return envPath, nil
		}

		if currentDir == homeDir {
			break
		}

		gitPath := filepath.Join(currentDir, ".git")
		if _, err := os.Stat(gitPath); err == nil {
			break
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached filesystem root
			break
		}
		currentDir = parentDir
	}

	return "", errors.New(".env file not found")
}
