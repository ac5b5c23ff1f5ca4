package auth

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/aaalawyers/trainingportal/pkg/sdk"
)

const credentialsFile = "credentials.json"

// FileStore implements sdk.CredentialStore using a JSON file.
type FileStore struct {
	path string
}

var _ sdk.CredentialStore = (*FileStore)(nil)

// NewFileStore stores credentials under ~/.portal.
func NewFileStore() (*FileStore, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get user home directory: %w", err)
	}
	return NewFileStoreAt(filepath.Join(home, ".portal"))
}

// NewFileStoreAt stores credentials in dir, creating it if needed.
func NewFileStoreAt(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", dir, err)
	}
	return &FileStore{path: filepath.Join(dir, credentialsFile)}, nil
}

func (s *FileStore) SaveCredentials(credentials *sdk.Credentials) error {
	data, err := json.MarshalIndent(credentials, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal credentials: %w", err)
	}
	return os.WriteFile(s.path, data, 0600)
}

// LoadCredentials returns sdk.ErrNoCredentials when nobody is logged in.
func (s *FileStore) LoadCredentials() (*sdk.Credentials, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, sdk.ErrNoCredentials
		}
		return nil, fmt.Errorf("failed to read credentials file: %w", err)
	}
	var creds sdk.Credentials
	if err := json.Unmarshal(data, &creds); err != nil {
		return nil, fmt.Errorf("failed to unmarshal credentials: %w", err)
	}
	return &creds, nil
}

func (s *FileStore) DeleteCredentials() error {
	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return nil
	}
	return os.Remove(s.path)
}
