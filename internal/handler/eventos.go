package handler

import (
	"errors"
	"net/http"

	"github.com/CarlosLeonGaleas/EventRegistration/internal/apierror"
	"github.com/CarlosLeonGaleas/EventRegistration/internal/dto"
	"github.com/CarlosLeonGaleas/EventRegistration/internal/repository"

	"github.com/gin-gonic/gin"
)

type EventosHandler struct{ eventos repository.EventoRepository }

func NewEventosHandler(eventos repository.EventoRepository) *EventosHandler {
	return &EventosHandler{eventos: eventos}
}

// Obtener resolves an event namespace for the presentation host, which mounts
// the registration workflow under it and uses Subtitulo as the page subtitle.
func (h *EventosHandler) Obtener(c *gin.Context) {
	ev, err := h.eventos.FindByNombre(c.Request.Context(), c.Param("evento"))
	if err != nil {
		if errors.Is(err, apierror.ErrEventoNoEncontrado) {
			c.JSON(http.StatusNotFound, apierror.New("Evento no encontrado"))
			return
		}
		c.JSON(http.StatusBadGateway, apierror.New("Error de almacenamiento"))
		return
	}
	c.JSON(http.StatusOK, dto.EventoResponse{
		Nombre:    ev.Nombre,
		Titulo:    ev.Titulo,
		Subtitulo: ev.Subtitulo,
	})
}
