package repository

import (
	"context"
	"errors"

	"github.com/CarlosLeonGaleas/EventRegistration/internal/apierror"
	"github.com/CarlosLeonGaleas/EventRegistration/internal/model"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// EventoRepository resolves event namespaces. Only active events accept
// registrations.
type EventoRepository interface {
	FindByNombre(ctx context.Context, nombre string) (*model.Evento, error)
	Upsert(ctx context.Context, e *model.Evento) error
}

type eventoRepo struct{ db *gorm.DB }

func NewEventoRepository(db *gorm.DB) EventoRepository {
	return &eventoRepo{db: db}
}

func (r *eventoRepo) FindByNombre(ctx context.Context, nombre string) (*model.Evento, error) {
	var e model.Evento
	err := r.db.WithContext(ctx).Where("nombre = ? AND activo = true", nombre).First(&e).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.ErrEventoNoEncontrado
		}
		log.Error().Err(err).Str("evento", nombre).Msg("evento_repo: fallo la busqueda del evento")
		return nil, apierror.ErrAlmacen
	}
	return &e, nil
}

func (r *eventoRepo) Upsert(ctx context.Context, e *model.Evento) error {
	err := r.db.WithContext(ctx).Exec(`
		INSERT INTO eventos (nombre, titulo, subtitulo, activo)
		VALUES (?, ?, ?, true)
		ON CONFLICT (nombre) DO UPDATE
		SET titulo    = EXCLUDED.titulo,
		    subtitulo = EXCLUDED.subtitulo,
		    activo    = true
	`, e.Nombre, e.Titulo, e.Subtitulo).Error
	if err != nil {
		log.Error().Err(err).Str("evento", e.Nombre).Msg("evento_repo: fallo el upsert del evento")
		return apierror.ErrAlmacen
	}
	return nil
}
