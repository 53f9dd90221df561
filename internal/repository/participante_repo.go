package repository

import (
	"context"
	"errors"

	"github.com/CarlosLeonGaleas/EventRegistration/internal/apierror"
	"github.com/CarlosLeonGaleas/EventRegistration/internal/dto"
	"github.com/CarlosLeonGaleas/EventRegistration/internal/model"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// ParticipanteRepository is the gateway to the participant record store.
// The registration service depends on this interface, not on the concrete
// GORM implementation, so the duplicate-check/write interleaving can be
// exercised deterministically in tests via in-memory fakes.
//
// Store and transport failures never escape raw: the implementation logs the
// underlying error with full detail and returns apierror.ErrAlmacen.
type ParticipanteRepository interface {
	// FindExisting runs the exact-equality conjunctive query over the five
	// submitted fields within the event namespace. It returns (nil, nil) when
	// no record matches, and the first row if the store unexpectedly holds
	// more than one.
	FindExisting(ctx context.Context, evento string, campos dto.Campos) (*model.Participante, error)

	// Create inserts a record keyed by its ParticipantID. A key collision
	// fails with apierror.ErrClaveDuplicada — it never overwrites.
	Create(ctx context.Context, p *model.Participante) error

	// FindByID fetches one record by participant ID within the namespace.
	// Returns apierror.ErrRegistroNoEncontrado when absent.
	FindByID(ctx context.Context, evento string, id uuid.UUID) (*model.Participante, error)
}

type participanteRepo struct{ db *gorm.DB }

func NewParticipanteRepository(db *gorm.DB) ParticipanteRepository {
	return &participanteRepo{db: db}
}

func (r *participanteRepo) FindExisting(ctx context.Context, evento string, campos dto.Campos) (*model.Participante, error) {
	var encontrados []model.Participante
	err := r.db.WithContext(ctx).
		Where("evento = ?", evento).
		Where("cedula = ?", campos.Cedula).
		Where("nombres = ?", campos.Nombres).
		Where("telefono = ?", campos.Telefono).
		Where("correo = ?", campos.Correo).
		Where("tipo_participacion = ?", campos.TipoParticipacion).
		Order("fecha_registro ASC").
		Limit(1).
		Find(&encontrados).Error
	if err != nil {
		log.Error().Err(err).Str("evento", evento).Msg("participante_repo: fallo la consulta de existencia")
		return nil, apierror.ErrAlmacen
	}
	if len(encontrados) == 0 {
		return nil, nil
	}
	return &encontrados[0], nil
}

func (r *participanteRepo) Create(ctx context.Context, p *model.Participante) error {
	if err := r.db.WithContext(ctx).Create(p).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			log.Error().
				Str("evento", p.Evento).
				Str("participant_id", p.ParticipantID.String()).
				Msg("participante_repo: colision de clave al crear registro")
			return apierror.ErrClaveDuplicada
		}
		log.Error().Err(err).Str("evento", p.Evento).Msg("participante_repo: fallo la escritura del registro")
		return apierror.ErrAlmacen
	}
	return nil
}

func (r *participanteRepo) FindByID(ctx context.Context, evento string, id uuid.UUID) (*model.Participante, error) {
	var p model.Participante
	err := r.db.WithContext(ctx).
		Where("evento = ? AND participant_id = ?", evento, id).
		First(&p).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.ErrRegistroNoEncontrado
		}
		log.Error().Err(err).Str("evento", evento).Str("participant_id", id.String()).
			Msg("participante_repo: fallo la busqueda por id")
		return nil, apierror.ErrAlmacen
	}
	return &p, nil
}
