package domain

import (
	"context"
	"errors"

	"github.com/unilab/labdash/internal/shared/types"
)

var ErrPersonNotFound = errors.New("person not found")

// Person is what the directory pages need from a docente or an alumno.
type Person interface {
	SortKey() (apellido, nombre string)
	SearchFields() []string
}

type Docente struct {
	ID           types.ID `json:"id"`
	Nombre       string   `json:"nombre"`
	Apellido     string   `json:"apellido"`
	Correo       string   `json:"correo"`
	Departamento string   `json:"departamento"`
	Telefono     string   `json:"telefono"`
}

func (d Docente) SortKey() (string, string) { return d.Apellido, d.Nombre }

func (d Docente) SearchFields() []string {
	return []string{d.Nombre, d.Apellido, d.Nombre + " " + d.Apellido, d.Correo, d.Departamento}
}

type DocenteInput struct {
	Nombre       string `json:"nombre" validate:"required,notblank,max=100"`
	Apellido     string `json:"apellido" validate:"required,notblank,max=100"`
	Correo       string `json:"correo" validate:"required,email"`
	Departamento string `json:"departamento" validate:"max=150"`
	Telefono     string `json:"telefono,omitempty" validate:"max=30"`
}

type Alumno struct {
	ID        types.ID `json:"id"`
	Nombre    string   `json:"nombre"`
	Apellido  string   `json:"apellido"`
	Correo    string   `json:"correo"`
	Matricula string   `json:"matricula"`
	Carrera   string   `json:"carrera"`
}

func (a Alumno) SortKey() (string, string) { return a.Apellido, a.Nombre }

func (a Alumno) SearchFields() []string {
	return []string{a.Nombre, a.Apellido, a.Nombre + " " + a.Apellido, a.Correo, a.Matricula, a.Carrera}
}

type AlumnoInput struct {
	Nombre    string `json:"nombre" validate:"required,notblank,max=100"`
	Apellido  string `json:"apellido" validate:"required,notblank,max=100"`
	Correo    string `json:"correo" validate:"required,email"`
	Matricula string `json:"matricula" validate:"required,notblank,max=30"`
	Carrera   string `json:"carrera" validate:"max=150"`
}

// Repository is a directory collection in the lab API.
type Repository[T Person, I any] interface {
	List(ctx context.Context) ([]T, error)
	Create(ctx context.Context, in I) (*T, error)
	Update(ctx context.Context, id string, in I) (*T, error)
	Delete(ctx context.Context, id string) error
}
