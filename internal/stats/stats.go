// Package stats keeps lightweight usage bookkeeping: which commands run,
// how often, and when. The file lives in the XDG data directory next to
// nothing else the tool owns.
package stats

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/google/uuid"
)

// CommandStats tracks usage of a single command
type CommandStats struct {
	Count    int       `json:"count"`
	LastUsed time.Time `json:"last_used"`
}

// Stats is the persisted usage record
type Stats struct {
	Commands    map[string]*CommandStats `json:"commands"`
	LastSession string                   `json:"last_session"`
	FirstUsed   time.Time                `json:"first_used,omitempty"`
}

// NewStats creates a new empty stats record
func NewStats() *Stats {
	return &Stats{
		Commands: make(map[string]*CommandStats),
	}
}

// Load reads stats from the stats file
func Load(path string) (*Stats, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return NewStats(), nil
		}
		return nil, err
	}

	var s Stats
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, err
	}

	if s.Commands == nil {
		s.Commands = make(map[string]*CommandStats)
	}

	return &s, nil
}

// Save writes stats to the stats file
func (s *Stats) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create stats directory: %w", err)
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal stats: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write stats file: %w", err)
	}

	return nil
}

// Record bumps the counter for a command and stamps the session
func (s *Stats) Record(command string) {
	now := time.Now()

	if s.FirstUsed.IsZero() {
		s.FirstUsed = now
	}
	s.LastSession = uuid.New().String()

	cs, exists := s.Commands[command]
	if !exists {
		cs = &CommandStats{}
		s.Commands[command] = cs
	}
	cs.Count++
	cs.LastUsed = now
}

// TotalInvocations returns the sum of all command counters
func (s *Stats) TotalInvocations() int {
	total := 0
	for _, cs := range s.Commands {
		total += cs.Count
	}
	return total
}

// CommandRow is one line of the usage summary
type CommandRow struct {
	Name     string
	Count    int
	LastUsed time.Time
}

// Summary returns command usage sorted by count descending, name
// ascending on ties
func (s *Stats) Summary() []CommandRow {
	rows := make([]CommandRow, 0, len(s.Commands))
	for name, cs := range s.Commands {
		rows = append(rows, CommandRow{Name: name, Count: cs.Count, LastUsed: cs.LastUsed})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Count != rows[j].Count {
			return rows[i].Count > rows[j].Count
		}
		return rows[i].Name < rows[j].Name
	})
	return rows
}
