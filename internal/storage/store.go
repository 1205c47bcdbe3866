package storage

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/san-kum/astrosim/internal/orbit"
)

const (
	metadataFile = "metadata.json"
	framesFile   = "frames.csv"
)

var frameHeader = []string{"index", "t", "theta", "r", "x", "y", "vx", "vy", "speed"}

type Store struct {
	baseDir string
	catalog *Catalog
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

// Dir returns the base directory of the store.
func (s *Store) Dir() string { return s.baseDir }

// WithCatalog makes Save index every new run in c.
func (s *Store) WithCatalog(c *Catalog) *Store {
	s.catalog = c
	return s
}

type RunMetadata struct {
	ID        string                `json:"id"`
	Body      string                `json:"body"`
	Timestamp time.Time             `json:"timestamp"`
	A         float64               `json:"a"`
	E         float64               `json:"e"`
	Period    float64               `json:"period"`
	Steps     int                   `json:"steps"`
	Timing    string                `json:"timing"`
	Metrics   map[string]float64    `json:"metrics"`
	Areas     *orbit.AreaComparison `json:"areas,omitempty"`
}

// Params returns the orbital elements of the run.
func (m RunMetadata) Params() orbit.Params {
	return orbit.Params{A: m.A, E: m.E, T: m.Period}
}

// Save writes meta and frames into a new run directory and returns its ID.
// ID and Timestamp of meta are assigned here.
func (s *Store) Save(ctx context.Context, meta RunMetadata, frames []orbit.Frame) (string, error) {
	now := time.Now()
	meta.ID = fmt.Sprintf("%s_%d", meta.Body, now.UnixNano())
	if filepath.Base(meta.ID) != meta.ID || strings.Contains(meta.Body, "..") {
		return "", fmt.Errorf("invalid body name %q", meta.Body)
	}
	meta.Timestamp = now
	meta.Steps = len(frames)

	runDir := filepath.Join(s.baseDir, meta.ID)
	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	if err := writeJSON(filepath.Join(runDir, metadataFile), meta); err != nil {
		return "", err
	}
	if err := writeFrames(filepath.Join(runDir, framesFile), frames); err != nil {
		return "", err
	}

	if s.catalog != nil {
		if err := s.catalog.Record(ctx, meta); err != nil {
			return "", fmt.Errorf("index run %s: %w", meta.ID, err)
		}
	}

	return meta.ID, nil
}

func writeJSON(path string, v any) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeFrames(path string, frames []orbit.Frame) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := WriteFramesCSV(w, frames); err != nil {
		return err
	}
	return f.Sync()
}

// WriteFramesCSV writes the header and one row per frame, then flushes w.
func WriteFramesCSV(w *csv.Writer, frames []orbit.Frame) error {
	if err := w.Write(frameHeader); err != nil {
		return err
	}
	for _, fr := range frames {
		row := []string{
			strconv.Itoa(fr.Index),
			formatFloat(fr.T),
			formatFloat(fr.Theta),
			formatFloat(fr.R),
			formatFloat(fr.Pos.X),
			formatFloat(fr.Pos.Y),
			formatFloat(fr.Vel.X),
			formatFloat(fr.Vel.Y),
			formatFloat(fr.Speed()),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// List scans the run directories. Unreadable runs are skipped.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}

	sort.Slice(runs, func(i, j int) bool {
		return runs[i].Timestamp.Before(runs[j].Timestamp)
	})
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, metadataFile))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, fmt.Errorf("decode %s metadata: %w", runID, err)
	}
	return &meta, nil
}

// LoadFrames reads the frames of a run. The speed column is derived and
// ignored on read.
func (s *Store) LoadFrames(runID string) ([]orbit.Frame, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, framesFile))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = len(frameHeader)

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read %s frames: %w", runID, err)
	}
	if len(records) < 2 {
		return []orbit.Frame{}, nil
	}

	frames := make([]orbit.Frame, 0, len(records)-1)
	for line, record := range records[1:] {
		fr, err := parseFrame(record)
		if err != nil {
			return nil, fmt.Errorf("%s frames line %d: %w", runID, line+2, err)
		}
		frames = append(frames, fr)
	}
	return frames, nil
}

func parseFrame(record []string) (orbit.Frame, error) {
	idx, err := strconv.Atoi(record[0])
	if err != nil {
		return orbit.Frame{}, err
	}
	vals := make([]float64, 7)
	for i := range vals {
		v, err := strconv.ParseFloat(record[i+1], 64)
		if err != nil {
			return orbit.Frame{}, err
		}
		vals[i] = v
	}
	return orbit.Frame{
		Index: idx,
		T:     vals[0],
		Theta: vals[1],
		R:     vals[2],
		Pos:   orbit.Vec2{X: vals[3], Y: vals[4]},
		Vel:   orbit.Vec2{X: vals[5], Y: vals[6]},
	}, nil
}
