package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"atelier-storefront/internal/model"
)

// Persister is the serialize/deserialize boundary for the durable subset of
// session state. Load runs once at startup; Save runs on every persisted-field
// mutation.
type Persister interface {
	Load() (*model.PersistedSession, error)
	Save(s model.PersistedSession) error
}

// FilePersister keeps the session as one JSON document on disk. No versioning
// or migration; a file that fails to parse is treated as absent.
type FilePersister struct {
	path string
}

func NewFilePersister(path string) *FilePersister {
	return &FilePersister{path: path}
}

func (p *FilePersister) Load() (*model.PersistedSession, error) {
	raw, err := os.ReadFile(p.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read session file: %w", err)
	}

	var s model.PersistedSession
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, nil
	}

	return &s, nil
}

func (p *FilePersister) Save(s model.PersistedSession) error {
	if err := os.MkdirAll(filepath.Dir(p.path), 0o700); err != nil {
		return fmt.Errorf("create session dir: %w", err)
	}

	raw, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}

	if err := os.WriteFile(p.path, raw, 0o600); err != nil {
		return fmt.Errorf("write session file: %w", err)
	}

	return nil
}
