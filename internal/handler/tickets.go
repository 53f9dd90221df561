package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/CarlosLeonGaleas/EventRegistration/internal/apierror"
	"github.com/CarlosLeonGaleas/EventRegistration/internal/model"
	"github.com/CarlosLeonGaleas/EventRegistration/internal/repository"
	"github.com/CarlosLeonGaleas/EventRegistration/internal/ticket"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TicketsHandler serves the downloadable ticket artifacts. Export failures
// never touch the stored record — the client is free to retry.
type TicketsHandler struct {
	participantes repository.ParticipanteRepository
	eventos       repository.EventoRepository
	exportador    ticket.Exportador
}

func NewTicketsHandler(participantes repository.ParticipanteRepository, eventos repository.EventoRepository) *TicketsHandler {
	return &TicketsHandler{
		participantes: participantes,
		eventos:       eventos,
		exportador:    ticket.NewExportador(),
	}
}

// DescargarPNG renders the ticket and streams it as a PNG attachment named
// ticket-<cedula>-<participantID>.png.
func (h *TicketsHandler) DescargarPNG(c *gin.Context) {
	p, ev, ok := h.resolver(c)
	if !ok {
		return
	}

	superficie := ticket.Render(datosDe(p, ev))
	data, err := h.exportador.PNG(superficie)
	if err != nil {
		// Already logged with detail by the exporter.
		c.JSON(http.StatusInternalServerError, apierror.New("No se pudo generar el ticket"))
		return
	}

	nombre := ticket.NombreArchivo(p.Cedula, p.ParticipantID.String())
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", nombre))
	c.Data(http.StatusOK, "image/png", data)
}

// DescargarPDF streams the printable PDF variant.
func (h *TicketsHandler) DescargarPDF(c *gin.Context) {
	p, ev, ok := h.resolver(c)
	if !ok {
		return
	}

	data, err := ticket.GenerarPDF(datosDe(p, ev))
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("No se pudo generar el ticket"))
		return
	}

	nombre := ticket.NombreArchivoPDF(p.Cedula, p.ParticipantID.String())
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", nombre))
	c.Data(http.StatusOK, "application/pdf", data)
}

func (h *TicketsHandler) resolver(c *gin.Context) (*model.Participante, *model.Evento, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return nil, nil, false
	}

	ev, err := h.eventos.FindByNombre(c.Request.Context(), c.Param("evento"))
	if err != nil {
		if errors.Is(err, apierror.ErrEventoNoEncontrado) {
			c.JSON(http.StatusNotFound, apierror.New("Evento no encontrado"))
		} else {
			c.JSON(http.StatusBadGateway, apierror.New("Error de almacenamiento"))
		}
		return nil, nil, false
	}

	p, err := h.participantes.FindByID(c.Request.Context(), ev.Nombre, id)
	if err != nil {
		if errors.Is(err, apierror.ErrRegistroNoEncontrado) {
			c.JSON(http.StatusNotFound, apierror.New("Registro no encontrado"))
		} else {
			c.JSON(http.StatusBadGateway, apierror.New("Error de almacenamiento"))
		}
		return nil, nil, false
	}
	return p, ev, true
}

func datosDe(p *model.Participante, ev *model.Evento) ticket.Datos {
	return ticket.Datos{
		Titulo:        ev.Titulo,
		Subtitulo:     ev.Subtitulo,
		ParticipantID: p.ParticipantID.String(),
		Nombres:       p.Nombres,
		Cedula:        p.Cedula,
		Telefono:      p.Telefono,
		Correo:        p.Correo,
	}
}
