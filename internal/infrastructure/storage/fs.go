package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/kmarr21/sudoku-solver/internal/domain"
)

// FS persists solve results as pretty-printed JSON files, one per result,
// in a flat directory.
type FS struct{ dir string }

func NewFS(dir string) *FS { return &FS{dir: dir} }

func (s *FS) pathFor(id string) string {
	return filepath.Join(s.dir, strings.TrimSpace(id)+".json")
}

// NewID derives a result ID from the puzzle name and the creation time.
func NewID(name string, created time.Time) string {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		name = "puzzle"
	}
	return fmt.Sprintf("%s-%d", name, created.UnixNano())
}

func (s *FS) Save(ctx context.Context, res *domain.Result) error {
	if res == nil || res.ID == "" {
		return errors.New("invalid result: missing ID")
	}
	target := s.pathFor(res.ID)
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
	return enc.Encode(res)
}

func (s *FS) Load(ctx context.Context, id string) (*domain.Result, error) {
	data, err := os.ReadFile(s.pathFor(id))
	if err != nil {
		return nil, err
	}
	var out domain.Result
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *FS) List(ctx context.Context) ([]domain.ResultMeta, error) {
	ents, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	var out []domain.ResultMeta
	for _, e := range ents {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		data, err := os.ReadFile(filepath.Join(s.dir, e.Name()))
		if err != nil {
			continue
		}
		var res domain.Result
		if err := json.Unmarshal(data, &res); err != nil || res.ID == "" {
			continue
		}
		out = append(out, domain.ResultMeta{
			ID:        res.ID,
			Name:      res.Name,
			Solved:    res.Solved,
			CreatedAt: res.CreatedAt,
		})
	}
	return out, nil
}
