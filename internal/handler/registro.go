package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/CarlosLeonGaleas/EventRegistration/internal/apierror"
	"github.com/CarlosLeonGaleas/EventRegistration/internal/dto"
	"github.com/CarlosLeonGaleas/EventRegistration/internal/repository"
	"github.com/CarlosLeonGaleas/EventRegistration/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type RegistroHandler struct {
	svc           service.RegistroService
	participantes repository.ParticipanteRepository
}

func NewRegistroHandler(svc service.RegistroService, participantes repository.ParticipanteRepository) *RegistroHandler {
	return &RegistroHandler{svc: svc, participantes: participantes}
}

// Registrar runs the registration workflow for POST /v1/eventos/:evento/registros.
// Responses by terminal outcome:
//
//	201 estado=emitido    — new record created, fresh participant ID
//	200 estado=duplicado  — identical tuple already registered, existing ID adopted
//	422                   — field validation errors, nothing persisted
//	502 estado=fallido    — store failure; submitted fields echoed for resubmission
func (h *RegistroHandler) Registrar(c *gin.Context) {
	var req dto.RegistroRequest
	if !bindAndValidate(c, &req) {
		return
	}

	envio, err := h.svc.Registrar(c.Request.Context(), c.Param("evento"), req)
	if err != nil {
		if errors.Is(err, apierror.ErrEventoNoEncontrado) {
			c.JSON(http.StatusNotFound, apierror.New("Evento no encontrado"))
			return
		}
		c.JSON(http.StatusBadGateway, apierror.New(service.MsgErrorRegistro))
		return
	}

	switch envio.Estado {
	case service.EstadoEdicion:
		c.JSON(http.StatusUnprocessableEntity, &apierror.ValidationError{
			Detail: envio.Notificacion.Mensaje,
			Fields: envio.Errores,
		})
	case service.EstadoEmitido:
		c.JSON(http.StatusCreated, envio.Respuesta())
	case service.EstadoDuplicado:
		c.JSON(http.StatusOK, envio.Respuesta())
	case service.EstadoFallido:
		c.JSON(http.StatusBadGateway, envio.Respuesta())
	default:
		// A non-terminal state leaking out of the service is a bug.
		c.JSON(http.StatusInternalServerError, apierror.New("Error interno del servidor"))
	}
}

// Obtener returns one participant record by ID within the event namespace.
func (h *RegistroHandler) Obtener(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}

	p, err := h.participantes.FindByID(c.Request.Context(), c.Param("evento"), id)
	if err != nil {
		if errors.Is(err, apierror.ErrRegistroNoEncontrado) {
			c.JSON(http.StatusNotFound, apierror.New("Registro no encontrado"))
			return
		}
		c.JSON(http.StatusBadGateway, apierror.New(service.MsgErrorRegistro))
		return
	}

	c.JSON(http.StatusOK, dto.ParticipanteResponse{
		ParticipantID:     p.ParticipantID.String(),
		Evento:            p.Evento,
		Cedula:            p.Cedula,
		Nombres:           p.Nombres,
		Telefono:          p.Telefono,
		Correo:            p.Correo,
		TipoParticipacion: p.TipoParticipacion,
		CheckedIn:         p.CheckedIn,
		FechaRegistro:     p.FechaRegistro.Format(time.RFC3339),
	})
}
