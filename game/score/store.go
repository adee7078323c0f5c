package score

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"hypersnake/game/types"
)

// Store loads and saves the high-score table.
type Store interface {
	Load() ([]Entry, error)
	Save(entries []Entry) error
}

// DefaultPath is the line file under the user's config directory.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locate config dir: %w", err)
	}
	return filepath.Join(dir, "hypersnake", "highscores"), nil
}

// FileStore keeps the table as "name,points" lines, best first.
type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Path() string {
	return s.path
}

// Load reads the table. A missing file is an empty table. Malformed lines
// are skipped.
func (s *FileStore) Load() ([]Entry, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read high scores %s: %w", s.path, err)
	}

	var entries []Entry
	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() && len(entries) < types.MaxHighScores {
		e, ok := parseLine(sc.Text())
		if ok {
			entries = append(entries, e)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("scan high scores %s: %w", s.path, err)
	}
	return entries, nil
}

func parseLine(line string) (Entry, bool) {
	line = strings.TrimSpace(line)
	i := strings.LastIndexByte(line, ',')
	if i <= 0 {
		return Entry{}, false
	}
	points, err := strconv.Atoi(line[i+1:])
	if err != nil {
		return Entry{}, false
	}
	return Entry{Name: line[:i], Points: points}, true
}

// Save writes the table through a temp file and rename.
func (s *FileStore) Save(entries []Entry) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("create high score dir: %w", err)
	}

	var buf bytes.Buffer
	for _, e := range entries {
		fmt.Fprintf(&buf, "%s,%d\n", e.Name, e.Points)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("write high scores: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace high scores: %w", err)
	}
	return nil
}
