package service

import (
	"context"
	"strings"
	"time"

	"github.com/CarlosLeonGaleas/EventRegistration/internal/dto"
	"github.com/CarlosLeonGaleas/EventRegistration/internal/model"
	"github.com/CarlosLeonGaleas/EventRegistration/internal/repository"
	"github.com/CarlosLeonGaleas/EventRegistration/internal/worker"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Estado is the submission state machine:
//
//	Edicion → Enviando → {Emitido, Duplicado, Fallido}
//
// Emitido and Duplicado are terminal-success views (both yield a ticket);
// Fallido returns control to the form with the input preserved for
// resubmission.
type Estado int

const (
	EstadoEdicion Estado = iota
	EstadoEnviando
	EstadoEmitido
	EstadoDuplicado
	EstadoFallido
)

func (e Estado) String() string {
	switch e {
	case EstadoEdicion:
		return "edicion"
	case EstadoEnviando:
		return "enviando"
	case EstadoEmitido:
		return "emitido"
	case EstadoDuplicado:
		return "duplicado"
	case EstadoFallido:
		return "fallido"
	default:
		return "desconocido"
	}
}

// Terminal reports whether the submission reached an outcome from which the
// workflow does not continue without new user action.
func (e Estado) Terminal() bool {
	return e == EstadoEmitido || e == EstadoDuplicado || e == EstadoFallido
}

// Envio bundles one submission's full outcome: the state, the field errors
// (only ever non-empty in Edicion), the adopted or issued participant ID, and
// the transient notification. Replacing the original's loose flag soup with
// one value makes illegal combinations (Emitido with field errors, a stale
// in-flight spinner) unrepresentable or at least visible in tests.
type Envio struct {
	Estado        Estado
	EnVuelo       bool
	Campos        dto.Campos
	Errores       map[string]string
	ParticipantID uuid.UUID
	FechaRegistro time.Time
	Notificacion  dto.Notificacion
}

// Mensajes de notificación — textual behavior of the original form.
const (
	MsgCamposIncompletos = "Por favor, complete todos los campos correctamente"
	MsgDuplicado         = "Ya se encuentra registrado un participante con los mismos datos!"
	MsgExito             = "¡Registro exitoso!"
	MsgErrorRegistro     = "Ocurrió un error al registrar los datos"
)

// severidadPara derives the notification severity from the message text:
// "success" exactly when the text reports a successful registration.
func severidadPara(mensaje string) string {
	if strings.Contains(mensaje, "exitoso") {
		return "success"
	}
	return "error"
}

func notificar(mensaje string) dto.Notificacion {
	return dto.Notificacion{Mensaje: mensaje, Severidad: severidadPara(mensaje)}
}

// RegistroService orchestrates the registration workflow:
// validation → duplicate check → identifier issuance → persistence.
type RegistroService interface {
	Registrar(ctx context.Context, evento string, req dto.RegistroRequest) (*Envio, error)
}

type registroService struct {
	participantes repository.ParticipanteRepository
	eventos       repository.EventoRepository
	dispatcher    *worker.Dispatcher

	// nuevoID and ahora are injectable so tests can pin issued IDs and
	// registration timestamps.
	nuevoID func() uuid.UUID
	ahora   func() time.Time
}

func NewRegistroService(
	participantes repository.ParticipanteRepository,
	eventos repository.EventoRepository,
	dispatcher *worker.Dispatcher,
) RegistroService {
	return &registroService{
		participantes: participantes,
		eventos:       eventos,
		dispatcher:    dispatcher,
		nuevoID:       uuid.New,
		ahora:         time.Now,
	}
}

// Registrar drives one submission through the state machine. It returns an
// error only when the event namespace cannot be resolved; every workflow
// outcome — including persistence failure — is expressed in the Envio.
//
// The duplicate-check query and the record write are two sequential round
// trips with no transactional link: two concurrent submissions of the same
// tuple can both observe "no match" and both write. That race is inherent to
// the design; the pre-write check is best-effort, not a uniqueness guarantee.
func (s *registroService) Registrar(ctx context.Context, evento string, req dto.RegistroRequest) (*Envio, error) {
	ev, err := s.eventos.FindByNombre(ctx, evento)
	if err != nil {
		return nil, err
	}

	campos := req.Campos
	if campos.TipoParticipacion == "" {
		campos.TipoParticipacion = model.TipoPublico
	}

	envio := &Envio{Estado: EstadoEdicion, Campos: campos}

	// 1. Validation — on any error, stay in Edicion; no gateway call is made.
	if errores := Validar(campos); len(errores) > 0 {
		envio.Errores = errores
		envio.Notificacion = notificar(MsgCamposIncompletos)
		return envio, nil
	}

	// 2. Enter Enviando. The in-flight indicator must be cleared on every
	// terminal path — the original skipped the clear on the duplicate
	// branch's early return, leaving the submit control stuck.
	envio.Estado = EstadoEnviando
	envio.EnVuelo = true
	defer func() { envio.EnVuelo = false }()

	existente, err := s.participantes.FindExisting(ctx, ev.Nombre, campos)
	if err != nil {
		envio.Estado = EstadoFallido
		envio.Notificacion = notificar(MsgErrorRegistro)
		return envio, nil
	}

	// 3. Identical tuple already registered: adopt the existing record's ID,
	// do not write a second record.
	if existente != nil {
		envio.Estado = EstadoDuplicado
		envio.ParticipantID = existente.ParticipantID
		envio.FechaRegistro = existente.FechaRegistro
		envio.Notificacion = notificar(MsgDuplicado)
		log.Info().
			Str("evento", ev.Nombre).
			Str("participant_id", existente.ParticipantID.String()).
			Msg("registro duplicado, se adopta el ID existente")
		return envio, nil
	}

	// 4. New tuple: issue a fresh v4 UUID and persist.
	id := s.nuevoID()
	p := &model.Participante{
		ParticipantID:     id,
		Evento:            ev.Nombre,
		Cedula:            campos.Cedula,
		Nombres:           campos.Nombres,
		Telefono:          campos.Telefono,
		Correo:            campos.Correo,
		TipoParticipacion: campos.TipoParticipacion,
		CheckedIn:         false,
		FechaRegistro:     s.ahora().UTC(),
	}
	if err := s.participantes.Create(ctx, p); err != nil {
		envio.Estado = EstadoFallido
		envio.Notificacion = notificar(MsgErrorRegistro)
		return envio, nil
	}

	envio.Estado = EstadoEmitido
	envio.ParticipantID = id
	envio.FechaRegistro = p.FechaRegistro
	envio.Notificacion = notificar(MsgExito)
	log.Info().
		Str("evento", ev.Nombre).
		Str("participant_id", id.String()).
		Msg("nuevo registro creado")

	// 5. Best-effort ticket delivery — fire & forget, never alters the outcome.
	if s.dispatcher != nil {
		_ = s.dispatcher.EnqueueTicket(ctx, worker.TicketJobPayload{
			Evento:        ev.Nombre,
			ParticipantID: id.String(),
			ToEmail:       campos.Correo,
		})
	}

	return envio, nil
}

// Respuesta maps a terminal Envio to its wire representation.
func (e *Envio) Respuesta() *dto.RegistroResponse {
	resp := &dto.RegistroResponse{
		Estado:       e.Estado.String(),
		Campos:       e.Campos,
		Notificacion: e.Notificacion,
	}
	if e.ParticipantID != uuid.Nil {
		resp.ParticipantID = e.ParticipantID.String()
	}
	if !e.FechaRegistro.IsZero() {
		resp.FechaRegistro = e.FechaRegistro.Format(time.RFC3339)
	}
	return resp
}
