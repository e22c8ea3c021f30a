package application

import (
	"context"
	"log/slog"
	"sort"

	"github.com/unilab/labdash/internal/modules/directory/domain"
	"github.com/unilab/labdash/internal/shared/filter"
)

// DirectoryService serves one directory page. T is the record, I the write body.
type DirectoryService[T domain.Person, I any] struct {
	name   string
	repo   domain.Repository[T, I]
	logger *slog.Logger
}

func NewDirectoryService[T domain.Person, I any](name string, repo domain.Repository[T, I], logger *slog.Logger) *DirectoryService[T, I] {
	if logger == nil {
		logger = slog.Default()
	}
	return &DirectoryService[T, I]{name: name, repo: repo, logger: logger.With("directory", name)}
}

// List returns the records matching query, ordered by apellido then nombre.
func (s *DirectoryService[T, I]) List(ctx context.Context, query string) ([]T, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := filter.Apply(items, filter.Text(query, func(p T) []string { return p.SearchFields() }))
	SortByName(out)
	return out, nil
}

func (s *DirectoryService[T, I]) Create(ctx context.Context, in I) (*T, error) {
	item, err := s.repo.Create(ctx, in)
	if err != nil {
		return nil, err
	}
	s.logger.InfoContext(ctx, "record created")
	return item, nil
}

func (s *DirectoryService[T, I]) Update(ctx context.Context, id string, in I) (*T, error) {
	item, err := s.repo.Update(ctx, id, in)
	if err != nil {
		return nil, err
	}
	s.logger.InfoContext(ctx, "record updated", "id", id)
	return item, nil
}

func (s *DirectoryService[T, I]) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.InfoContext(ctx, "record deleted", "id", id)
	return nil
}

// SortByName orders people by folded apellido, then nombre. The sort is stable.
func SortByName[T domain.Person](items []T) {
	sort.SliceStable(items, func(i, j int) bool {
		ai, ni := items[i].SortKey()
		aj, nj := items[j].SortKey()
		ai, aj = filter.Fold(ai), filter.Fold(aj)
		if ai != aj {
			return ai < aj
		}
		return filter.Fold(ni) < filter.Fold(nj)
	})
}
