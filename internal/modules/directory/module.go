package directory

import (
	"log/slog"

	"github.com/unilab/labdash/internal/modules/directory/application"
	"github.com/unilab/labdash/internal/modules/directory/domain"
	"github.com/unilab/labdash/internal/modules/directory/infrastructure/upstream"
	directory_http "github.com/unilab/labdash/internal/modules/directory/interfaces/http"
	"github.com/unilab/labdash/internal/shared/infrastructure/labapi"
)

type (
	DocenteHandler = directory_http.DirectoryHandler[domain.Docente, domain.DocenteInput]
	AlumnoHandler  = directory_http.DirectoryHandler[domain.Alumno, domain.AlumnoInput]
)

// Module represents the Docentes and Alumnos pages
type Module struct {
	docentes *DocenteHandler
	alumnos  *AlumnoHandler
}

func NewModule(client *labapi.Client, logger *slog.Logger) *Module {
	docenteService := application.NewDirectoryService[domain.Docente, domain.DocenteInput](
		"docentes", upstream.NewDocenteRepository(client), logger)
	alumnoService := application.NewDirectoryService[domain.Alumno, domain.AlumnoInput](
		"alumnos", upstream.NewAlumnoRepository(client), logger)

	return &Module{
		docentes: directory_http.NewDirectoryHandler[domain.Docente, domain.DocenteInput](docenteService, "docente"),
		alumnos:  directory_http.NewDirectoryHandler[domain.Alumno, domain.AlumnoInput](alumnoService, "alumno"),
	}
}

func (m *Module) DocenteHandler() *DocenteHandler {
	return m.docentes
}

func (m *Module) AlumnoHandler() *AlumnoHandler {
	return m.alumnos
}
