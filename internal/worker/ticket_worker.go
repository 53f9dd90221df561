package worker

// ticket_worker.go
// Processes ticket delivery jobs from QueueTickets: renders the participant's
// ticket PNG into TICKET_STORAGE_PATH and mails it via SMTP behind the
// circuit breaker. Delivery is best-effort — the registration outcome was
// already committed before the job was enqueued.

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/CarlosLeonGaleas/EventRegistration/internal/infra"
	"github.com/CarlosLeonGaleas/EventRegistration/internal/repository"
	"github.com/CarlosLeonGaleas/EventRegistration/internal/ticket"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// MaxTicketRetries bounds SMTP attempts per job before the DLQ takes over.
const MaxTicketRetries = 3

const asuntoTicket = "Tu ticket de ingreso"

// TicketWorker renders and mails participant tickets.
type TicketWorker struct {
	participantes repository.ParticipanteRepository
	eventos       repository.EventoRepository
	mailer        *infra.Mailer
	cb            *infra.CircuitBreaker
	rdb           *redis.Client
	storagePath   string
}

func NewTicketWorker(
	participantes repository.ParticipanteRepository,
	eventos repository.EventoRepository,
	mailer *infra.Mailer,
	cb *infra.CircuitBreaker,
	rdb *redis.Client,
	storagePath string,
) *TicketWorker {
	return &TicketWorker{
		participantes: participantes,
		eventos:       eventos,
		mailer:        mailer,
		cb:            cb,
		rdb:           rdb,
		storagePath:   storagePath,
	}
}

// Process handles a single ticket job:
//  1. Parse TicketJobPayload from the job envelope
//  2. Fetch the event and the participant record
//  3. Render the ticket PNG to disk
//  4. Send the email with backoff (max 3 attempts) through the breaker
//  5. On exhaustion, park the job in the DLQ for the retry cron
func (w *TicketWorker) Process(ctx context.Context, raw json.RawMessage) {
	var payload TicketJobPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		log.Error().Err(err).Msg("ticket_worker: invalid payload")
		return
	}
	if payload.ToEmail == "" {
		log.Warn().Msg("ticket_worker: empty to_email — skipping")
		return
	}

	id, err := uuid.Parse(payload.ParticipantID)
	if err != nil {
		log.Error().Str("participant_id", payload.ParticipantID).Msg("ticket_worker: invalid participant_id")
		return
	}

	ev, err := w.eventos.FindByNombre(ctx, payload.Evento)
	if err != nil {
		log.Error().Err(err).Str("evento", payload.Evento).Msg("ticket_worker: evento not found")
		return
	}
	p, err := w.participantes.FindByID(ctx, payload.Evento, id)
	if err != nil {
		log.Error().Err(err).Str("participant_id", payload.ParticipantID).Msg("ticket_worker: registro not found")
		return
	}

	superficie := ticket.Render(ticket.Datos{
		Titulo:        ev.Titulo,
		Subtitulo:     ev.Subtitulo,
		ParticipantID: p.ParticipantID.String(),
		Nombres:       p.Nombres,
		Cedula:        p.Cedula,
		Telefono:      p.Telefono,
		Correo:        p.Correo,
	})
	ruta, err := ticket.NewExportador().Guardar(w.storagePath, superficie,
		ticket.NombreArchivo(p.Cedula, p.ParticipantID.String()))
	if err != nil {
		log.Error().Err(err).Str("participant_id", payload.ParticipantID).Msg("ticket_worker: failed to render ticket")
		return
	}

	cuerpo := fmt.Sprintf(
		"Hola %s,\n\nAdjuntamos tu ticket para %s.\nPresenta el código QR al ingreso del evento.\n",
		p.Nombres, ev.Titulo)

	sendErr := withRetry(ctx, MaxTicketRetries, func(attempt int) error {
		return w.cb.Execute(func() error {
			return w.mailer.SendTicket(payload.ToEmail, asuntoTicket, cuerpo, ruta)
		})
	})
	if sendErr != nil {
		log.Error().Err(sendErr).
			Str("to", payload.ToEmail).
			Str("participant_id", payload.ParticipantID).
			Msg("ticket_worker: delivery failed after retries, moving to DLQ")
		SendToDLQ(ctx, w.rdb, QueueTickets, "ticket", raw, sendErr.Error(), payload.Attempts+MaxTicketRetries)
		return
	}

	log.Info().
		Str("to", payload.ToEmail).
		Str("participant_id", payload.ParticipantID).
		Msg("ticket_worker: ticket sent")
}
