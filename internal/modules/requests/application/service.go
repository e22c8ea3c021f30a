package application

import (
	"context"
	"fmt"
	"log/slog"
	"net/mail"
	"time"

	"github.com/unilab/labdash/internal/modules/requests/domain"
	"github.com/unilab/labdash/internal/shared/filter"
	"github.com/unilab/labdash/internal/shared/infrastructure/email"
	"github.com/unilab/labdash/internal/shared/types"
)

const emailTimeout = 30 * time.Second

type ListFilter struct {
	Query  string
	Estado string
	Tipo   string
	Desde  time.Time
	Hasta  time.Time
}

type RequestService struct {
	repo   domain.Repository
	mailer email.Sender
	logger *slog.Logger
	// async runs side effects that must not hold up the response
	async func(func())
}

func NewRequestService(repo domain.Repository, mailer email.Sender, logger *slog.Logger) *RequestService {
	if logger == nil {
		logger = slog.Default()
	}
	return &RequestService{
		repo:   repo,
		mailer: mailer,
		logger: logger,
		async:  func(f func()) { go f() },
	}
}

// List returns the solicitudes matching every filter in page order.
func (s *RequestService) List(ctx context.Context, f ListFilter) ([]domain.SolicitudView, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	keep := filter.All(
		filter.Text(f.Query, func(v domain.Solicitud) []string {
			return []string{v.NombreSolicitante, v.CorreoSolicitante, v.Laboratorio, v.Motivo}
		}),
		filter.Equals(f.Estado, func(v domain.Solicitud) string { return string(v.Estado) }),
		filter.Equals(f.Tipo, func(v domain.Solicitud) string { return string(v.TipoSolicitante) }),
		filter.DateRange(f.Desde, f.Hasta, func(v domain.Solicitud) (time.Time, time.Time) {
			return v.FechaInicio.Time, v.FechaFin.Time
		}),
	)

	kept := filter.Apply(items, keep)
	views := make([]domain.SolicitudView, 0, len(kept))
	for _, item := range kept {
		views = append(views, domain.NewView(item))
	}
	domain.SortViews(views)
	return views, nil
}

func (s *RequestService) Get(ctx context.Context, id string) (*domain.SolicitudView, error) {
	item, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	v := domain.NewView(*item)
	return &v, nil
}

func (s *RequestService) Approve(ctx context.Context, id string) (*domain.SolicitudView, error) {
	return s.transition(ctx, id, domain.EstadoUpdate{Estado: domain.EstadoAprobada})
}

func (s *RequestService) Complete(ctx context.Context, id string) (*domain.SolicitudView, error) {
	return s.transition(ctx, id, domain.EstadoUpdate{Estado: domain.EstadoCompletada})
}

// Reject stores the rejection and, for docentes, e-mails the reason. The
// e-mail is best effort: a failure is logged and the rejection stands.
func (s *RequestService) Reject(ctx context.Context, id, motivo string) (*domain.SolicitudView, error) {
	v, err := s.transition(ctx, id, domain.EstadoUpdate{Estado: domain.EstadoRechazada, MotivoRechazo: motivo})
	if err != nil {
		return nil, err
	}

	target := v.Solicitud
	if target.CorreoSolicitante == "" {
		// some deployments answer the PATCH without the full record
		if full, err := s.repo.Get(ctx, id); err == nil {
			target = *full
		}
	}
	if target.MotivoRechazo == "" {
		target.MotivoRechazo = motivo
	}
	if target.TipoSolicitante == domain.TipoDocente && s.mailer != nil {
		s.async(func() { s.sendRejection(target) })
	}
	return v, nil
}

func (s *RequestService) transition(ctx context.Context, id string, update domain.EstadoUpdate) (*domain.SolicitudView, error) {
	item, err := s.repo.UpdateEstado(ctx, id, update)
	if err != nil {
		return nil, err
	}
	if item.ID == "" {
		// the upstream acknowledged without a body
		item.ID = types.ID(id)
		item.Estado = update.Estado
		item.MotivoRechazo = update.MotivoRechazo
	}
	s.logger.InfoContext(ctx, "solicitud estado changed", "id", id, "estado", update.Estado)
	v := domain.NewView(*item)
	return &v, nil
}

func (s *RequestService) sendRejection(sol domain.Solicitud) {
	ctx, cancel := context.WithTimeout(context.Background(), emailTimeout)
	defer cancel()

	if sol.CorreoSolicitante == "" {
		s.logger.Warn("rejection e-mail skipped, no address", "solicitud", sol.ID.String())
		return
	}
	msg := RejectionMessage(sol)
	if err := s.mailer.Send(ctx, msg); err != nil {
		s.logger.Error("rejection e-mail failed", "solicitud", sol.ID.String(), "error", err)
		return
	}
	s.logger.Info("rejection e-mail sent", "solicitud", sol.ID.String())
}

// RejectionMessage is the e-mail a docente receives when a solicitud is rejected.
func RejectionMessage(sol domain.Solicitud) email.Message {
	fecha := "sin fecha"
	if !sol.FechaInicio.IsZero() {
		fecha = sol.FechaInicio.Format("02/01/2006 15:04")
	}
	motivo := sol.MotivoRechazo
	if motivo == "" {
		motivo = "sin motivo indicado"
	}
	text := fmt.Sprintf(
		"Estimado/a %s:\n\nSu solicitud del laboratorio %s para el %s fue rechazada.\nMotivo: %s\n\nLaboratorios",
		sol.NombreSolicitante, sol.Laboratorio, fecha, motivo,
	)
	return email.Message{
		To:      []mail.Address{{Name: sol.NombreSolicitante, Address: sol.CorreoSolicitante}},
		Subject: "Solicitud rechazada",
		Text:    text,
	}
}
