package storage

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"svw.info/dlxsudoku/internal/domain"
)

// FS persists puzzles as pretty-printed JSON under dir, one subfolder per
// difficulty, with a legacy flat layout still readable.
type FS struct{ dir string }

func NewFS(dir string) *FS { return &FS{dir: dir} }

func (s *FS) pathFor(id string, d domain.Difficulty) string {
	return filepath.Join(s.dir, d.String(), strings.TrimSpace(id)+".json")
}

func (s *FS) Save(ctx context.Context, p *domain.Puzzle) error {
	if p == nil || p.ID == "" {
		return errors.New("invalid puzzle: missing ID")
	}
	target := s.pathFor(p.ID, p.Difficulty)
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}
	f, err := os.Create(target)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(p)
}

func (s *FS) Load(ctx context.Context, id string) (*domain.Puzzle, error) {
	type cand struct {
		path   string
		diff   domain.Difficulty
		legacy bool
	}
	candidates := []cand{
		{filepath.Join(s.dir, "easy", id+".json"), domain.Easy, false},
		{filepath.Join(s.dir, "medium", id+".json"), domain.Medium, false},
		{filepath.Join(s.dir, "hard", id+".json"), domain.Hard, false},
		{filepath.Join(s.dir, "expert", id+".json"), domain.Expert, false},
		{filepath.Join(s.dir, id+".json"), 0, true}, // legacy flat layout
	}
	var chosen *cand
	var data []byte
	for i := range candidates {
		c := candidates[i]
		if _, statErr := os.Stat(c.path); statErr == nil {
			b, err := os.ReadFile(c.path)
			if err != nil {
				return nil, err
			}
			data = b
			chosen = &c
			break
		}
	}
	if data == nil {
		return nil, os.ErrNotExist
	}
	var out domain.Puzzle
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	// If difficulty missing, infer from the folder we loaded from (legacy defaults to Medium)
	if out.Difficulty == 0 {
		if chosen != nil && !chosen.legacy {
			out.Difficulty = chosen.diff
		} else {
			out.Difficulty = domain.Medium
		}
	}
	return &out, nil
}

func (s *FS) List(ctx context.Context) ([]domain.PuzzleMeta, error) {
	type m struct {
		ID         string            `json:"id"`
		Name       string            `json:"name,omitempty"`
		Difficulty domain.Difficulty `json:"difficulty"`
		CreatedAt  int64             `json:"createdAt"`
	}

	readMeta := func(path string, fallback domain.Difficulty) (domain.PuzzleMeta, bool) {
		data, err := os.ReadFile(path)
		if err != nil {
			return domain.PuzzleMeta{}, false
		}
		var mm m
		if err := json.Unmarshal(data, &mm); err != nil || mm.ID == "" {
			return domain.PuzzleMeta{}, false
		}
		dd := mm.Difficulty
		if dd == 0 {
			dd = fallback
		}
		return domain.PuzzleMeta{ID: mm.ID, Name: mm.Name, Difficulty: dd, CreatedAt: mm.CreatedAt}, true
	}

	var out []domain.PuzzleMeta
	for _, d := range []domain.Difficulty{domain.Easy, domain.Medium, domain.Hard, domain.Expert} {
		ents, err := os.ReadDir(filepath.Join(s.dir, d.String()))
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, err
		}
		for _, e := range ents {
			if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
				continue
			}
			if meta, ok := readMeta(filepath.Join(s.dir, d.String(), e.Name()), d); ok {
				out = append(out, meta)
			}
		}
	}

	// legacy flat files directly in s.dir
	if ents, err := os.ReadDir(s.dir); err == nil {
		for _, e := range ents {
			if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
				continue
			}
			if meta, ok := readMeta(filepath.Join(s.dir, e.Name()), domain.Medium); ok {
				out = append(out, meta)
			}
		}
	}
	return out, nil
}
