package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pfrederiksen/cricscore/internal/match"
)

const DefaultDataDir = "~/.local/share/cricscore"

const (
	filePrefix = "match_"
	fileSuffix = ".json"
)

var (
	// ErrNotFound is returned by Load when no record is stored under an id
	ErrNotFound = errors.New("storage: record not found")
	// ErrInvalidID is returned for ids that are empty or could name a file
	// outside the data directory
	ErrInvalidID = errors.New("storage: invalid record id")
)

// Storage handles persistence of match records
type Storage struct {
	dataDir string
}

// New creates a new Storage instance
func New(dataDir string) (*Storage, error) {
	// Expand ~ to home directory
	if strings.HasPrefix(dataDir, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, dataDir[2:])
	}

	// Create data directory if it doesn't exist
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	return &Storage{
		dataDir: dataDir,
	}, nil
}

// Dir returns the resolved data directory
func (s *Storage) Dir() string {
	return s.dataDir
}

// recordPath returns the path to the record file for id
func (s *Storage) recordPath(id string) (string, error) {
	if id == "" || strings.ContainsAny(id, `/\`) || strings.Contains(id, "..") {
		return "", fmt.Errorf("%w: %q", ErrInvalidID, id)
	}
	return filepath.Join(s.dataDir, filePrefix+id+fileSuffix), nil
}

// Save writes rec to disk and returns the file path
func (s *Storage) Save(rec *match.Record) (string, error) {
	if rec == nil {
		return "", match.ErrNilRecord
	}

	path, err := s.recordPath(match.RecordID(rec.URL))
	if err != nil {
		return "", err
	}

	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encoding record: %w", err)
	}

	// Write through a temp file so a failed run never leaves a partial record
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return "", fmt.Errorf("writing record: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return "", fmt.Errorf("replacing record: %w", err)
	}

	return path, nil
}

// Load reads the record stored under id
func (s *Storage) Load(id string) (*match.Record, error) {
	path, err := s.recordPath(id)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
		}
		return nil, fmt.Errorf("reading record: %w", err)
	}

	var rec match.Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("parsing record: %w", err)
	}

	return &rec, nil
}

// List returns the ids of all stored records in sorted order
func (s *Storage) List() ([]string, error) {
	entries, err := os.ReadDir(s.dataDir)
	if err != nil {
		return nil, fmt.Errorf("reading data directory: %w", err)
	}

	ids := make([]string, 0, len(entries))
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasPrefix(name, filePrefix) || !strings.HasSuffix(name, fileSuffix) {
			continue
		}
		ids = append(ids, strings.TrimSuffix(strings.TrimPrefix(name, filePrefix), fileSuffix))
	}
	sort.Strings(ids)

	return ids, nil
}
