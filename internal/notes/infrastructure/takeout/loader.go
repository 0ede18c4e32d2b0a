// Package takeout loads Google Keep notes from a Takeout export and
// normalizes them into the pipeline's note records.
package takeout

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/StrictHornet/keep-agent/internal/notes/domain"
)

// rawNote mirrors the Takeout Keep JSON shape, with the agent's own
// normalized keys accepted as fallbacks so saved analyses round-trip.
type rawNote struct {
	ID          string        `json:"id"`
	Title       string        `json:"title"`
	TextContent string        `json:"textContent"`
	ListContent []rawListItem `json:"listContent"`
	Labels      []rawLabel    `json:"labels"`
	IsArchived  bool          `json:"isArchived"`
	IsTrashed   bool          `json:"isTrashed"`

	CreatedTimestampUsec    json.Number `json:"createdTimestampUsec"`
	UserEditedTimestampUsec json.Number `json:"userEditedTimestampUsec"`
	CreatedAt               string      `json:"created_at"`
	UpdatedAt               string      `json:"updated_at"`
}

type rawListItem struct {
	Text      string `json:"text"`
	IsChecked bool   `json:"isChecked"`
}

type rawLabel struct {
	Name string `json:"name"`
}

// Loader reads Keep exports from disk.
type Loader struct {
	logger *slog.Logger
	now    func() time.Time
}

// NewLoader creates a loader. A nil logger falls back to slog.Default.
func NewLoader(logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{logger: logger, now: time.Now}
}

// Load reads notes from path, which may be either a single JSON file
// (holding one note object or an array of them) or a directory of
// per-note .json files in Takeout layout. Directory entries that fail
// to parse are skipped with a warning; a missing path is an error.
// Empty and trashed notes are dropped.
func (l *Loader) Load(ctx context.Context, path string) ([]domain.Note, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("keep data path not found: %w", err)
	}

	var raws []rawNote
	if info.IsDir() {
		raws, err = l.loadDir(ctx, path)
	} else {
		raws, err = l.loadFile(path)
	}
	if err != nil {
		return nil, err
	}

	notes := make([]domain.Note, 0, len(raws))
	for i, raw := range raws {
		note, ok := l.normalize(raw, i)
		if !ok {
			continue
		}
		notes = append(notes, note)
	}

	l.logger.InfoContext(ctx, "loaded notes", "path", path, "count", len(notes))
	return notes, nil
}

func (l *Loader) loadFile(path string) ([]rawNote, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read keep export: %w", err)
	}

	// A single-file export is either one note object or an array.
	var many []rawNote
	if err := json.Unmarshal(data, &many); err == nil {
		return many, nil
	}

	var one rawNote
	if err := json.Unmarshal(data, &one); err != nil {
		return nil, fmt.Errorf("parse keep export %s: %w", filepath.Base(path), err)
	}
	return []rawNote{one}, nil
}

func (l *Loader) loadDir(ctx context.Context, dir string) ([]rawNote, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return nil, fmt.Errorf("scan keep export dir: %w", err)
	}
	sort.Strings(paths)

	raws := make([]rawNote, 0, len(paths))
	for _, p := range paths {
		data, err := os.ReadFile(p)
		if err != nil {
			l.logger.WarnContext(ctx, "skipping unreadable file", "file", filepath.Base(p), "error", err)
			continue
		}
		var raw rawNote
		if err := json.Unmarshal(data, &raw); err != nil {
			l.logger.WarnContext(ctx, "skipping malformed file", "file", filepath.Base(p), "error", err)
			continue
		}
		raws = append(raws, raw)
	}
	return raws, nil
}

// normalize converts one raw export record into a note. The second
// return value is false for notes that should be dropped.
func (l *Loader) normalize(raw rawNote, index int) (domain.Note, bool) {
	var parts []string
	if raw.TextContent != "" {
		parts = append(parts, raw.TextContent)
	}
	for _, item := range raw.ListContent {
		marker := "[ ]"
		if item.IsChecked {
			marker = "[x]"
		}
		parts = append(parts, marker+" "+item.Text)
	}

	content := strings.TrimSpace(strings.Join(parts, "\n"))
	title := strings.TrimSpace(raw.Title)

	if content == "" && title == "" {
		return domain.Note{}, false
	}
	if raw.IsTrashed {
		return domain.Note{}, false
	}

	id := raw.ID
	if id == "" {
		id = fmt.Sprintf("note_%04d", index)
	}

	created := l.parseTimestamp(raw.CreatedTimestampUsec, raw.CreatedAt)
	updated := l.parseTimestamp(raw.UserEditedTimestampUsec, raw.UpdatedAt)
	if string(raw.UserEditedTimestampUsec) == "" && raw.UpdatedAt == "" {
		updated = created
	}

	labels := make([]string, 0, len(raw.Labels))
	for _, label := range raw.Labels {
		if label.Name != "" {
			labels = append(labels, label.Name)
		}
	}

	return domain.Note{
		ID:        id,
		Title:     title,
		Content:   content,
		CreatedAt: created,
		UpdatedAt: updated,
		Labels:    labels,
		Archived:  raw.IsArchived,
	}, true
}

// parseTimestamp converts a Takeout epoch timestamp to RFC 3339 UTC.
// Takeout writes microseconds; older exports used milliseconds or
// seconds, so the magnitude decides the unit. When no numeric value is
// present the ISO fallback string is used verbatim, and when both are
// absent the current time stands in.
func (l *Loader) parseTimestamp(num json.Number, fallback string) string {
	if s := string(num); s != "" {
		if v, err := strconv.ParseFloat(s, 64); err == nil {
			switch {
			case v > 1e15:
				v /= 1e6
			case v > 1e12:
				v /= 1e3
			}
			return time.Unix(int64(v), 0).UTC().Format(time.RFC3339)
		}
	}
	if fallback != "" {
		return fallback
	}
	return l.now().UTC().Format(time.RFC3339)
}
