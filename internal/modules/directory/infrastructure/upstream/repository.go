package upstream

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/unilab/labdash/internal/modules/directory/domain"
	"github.com/unilab/labdash/internal/shared/infrastructure/labapi"
)

// Repository is one directory collection (/docentes or /alumnos) of the lab API.
type Repository[T domain.Person, I any] struct {
	client *labapi.Client
	path   string
}

func NewRepository[T domain.Person, I any](client *labapi.Client, path string) *Repository[T, I] {
	return &Repository[T, I]{client: client, path: "/" + strings.Trim(path, "/")}
}

func NewDocenteRepository(client *labapi.Client) *Repository[domain.Docente, domain.DocenteInput] {
	return NewRepository[domain.Docente, domain.DocenteInput](client, "docentes")
}

func NewAlumnoRepository(client *labapi.Client) *Repository[domain.Alumno, domain.AlumnoInput] {
	return NewRepository[domain.Alumno, domain.AlumnoInput](client, "alumnos")
}

func (r *Repository[T, I]) itemPath(id string) string {
	return r.path + "/" + url.PathEscape(id)
}

func (r *Repository[T, I]) List(ctx context.Context) ([]T, error) {
	var out []T
	if err := r.client.GetList(ctx, r.path, nil, &out); err != nil {
		return nil, fmt.Errorf("list %s: %w", r.path, err)
	}
	return out, nil
}

func (r *Repository[T, I]) Create(ctx context.Context, in I) (*T, error) {
	var out T
	if err := r.client.Send(ctx, http.MethodPost, r.path, in, &out); err != nil {
		return nil, fmt.Errorf("create in %s: %w", r.path, err)
	}
	return &out, nil
}

func (r *Repository[T, I]) Update(ctx context.Context, id string, in I) (*T, error) {
	var out T
	if err := r.client.Send(ctx, http.MethodPut, r.itemPath(id), in, &out); err != nil {
		if labapi.IsNotFound(err) {
			return nil, domain.ErrPersonNotFound
		}
		return nil, fmt.Errorf("update %s: %w", r.itemPath(id), err)
	}
	return &out, nil
}

func (r *Repository[T, I]) Delete(ctx context.Context, id string) error {
	if err := r.client.Send(ctx, http.MethodDelete, r.itemPath(id), nil, nil); err != nil {
		if labapi.IsNotFound(err) {
			return domain.ErrPersonNotFound
		}
		return fmt.Errorf("delete %s: %w", r.itemPath(id), err)
	}
	return nil
}
