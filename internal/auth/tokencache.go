package auth

import (
	"os"
	"strings"
)

// The token cache file mirrors the browser storage the web client kept its
// session token in: one token, restored at startup, removed on logout.

func SaveToken(path, token string) error {
	return os.WriteFile(path, []byte(token+"\n"), 0o600)
}

func LoadToken(path string) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(raw)), nil
}

func ClearToken(path string) error {
	err := os.Remove(path)
	if err != nil && os.IsNotExist(err) {
		return nil
	}
	return err
}
