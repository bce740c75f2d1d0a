package storage

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/chischaschos/sudoku/internal/domain"
)

// FS stores solve records as one JSON file each, bucketed by variant
// under ./<dir>/{classic,diagonal}.
type FS struct{ dir string }

func NewFS(dir string) *FS { return &FS{dir: dir} }

func variantDir(v domain.Variant) string {
	if v == domain.Diagonal {
		return "diagonal"
	}
	return "classic"
}

func (s *FS) pathFor(id string, v domain.Variant) string {
	return filepath.Join(s.dir, variantDir(v), strings.TrimSpace(id)+".json")
}

func (s *FS) Save(ctx context.Context, r *domain.SolveRecord) error {
	if r == nil || r.ID == "" {
		return errors.New("invalid record: missing ID")
	}
	target := s.pathFor(r.ID, r.Variant)
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
	return enc.Encode(r)
}

func (s *FS) Load(ctx context.Context, id string) (*domain.SolveRecord, error) {
	type cand struct {
		path    string
		variant domain.Variant
	}
	candidates := []cand{
		{filepath.Join(s.dir, "classic", id+".json"), domain.Classic},
		{filepath.Join(s.dir, "diagonal", id+".json"), domain.Diagonal},
	}
	for _, c := range candidates {
		data, err := os.ReadFile(c.path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, err
		}
		var out domain.SolveRecord
		if err := json.Unmarshal(data, &out); err != nil {
			return nil, err
		}
		// Variant may be absent in the file; the folder is authoritative.
		out.Variant = c.variant
		return &out, nil
	}
	return nil, os.ErrNotExist
}

func (s *FS) List(ctx context.Context) ([]domain.RecordMeta, error) {
	// Decode only the metadata fields; Steps can be large.
	type m struct {
		ID        string `json:"id"`
		Name      string `json:"name,omitempty"`
		CreatedAt int64  `json:"createdAt"`
	}

	var out []domain.RecordMeta
	for _, v := range []domain.Variant{domain.Classic, domain.Diagonal} {
		dir := filepath.Join(s.dir, variantDir(v))
		ents, err := os.ReadDir(dir)
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
			data, err := os.ReadFile(filepath.Join(dir, e.Name()))
			if err != nil {
				continue
			}
			var mm m
			if err := json.Unmarshal(data, &mm); err != nil || mm.ID == "" {
				continue
			}
			out = append(out, domain.RecordMeta{
				ID:        mm.ID,
				Name:      mm.Name,
				Variant:   v,
				CreatedAt: mm.CreatedAt,
			})
		}
	}
	return out, nil
}
