package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

// Campos carries the five raw form fields exactly as submitted. The pure
// validation engine and the duplicate-existence query both operate on this
// value, never on a trimmed or normalized copy.
type Campos struct {
	Cedula            string `json:"cedula"`
	Nombres           string `json:"nombres"`
	Telefono          string `json:"telefono"`
	Correo            string `json:"correo"`
	TipoParticipacion string `json:"tipoParticipacion" validate:"omitempty,oneof=publico estudiante docente"`
}

// RegistroRequest is the body of POST /v1/eventos/:evento/registros.
// Field-level rules live in the validation engine (service.Validar), not in
// validator tags — the engine reports every failing field at once with the
// form's own messages. The oneof on TipoParticipacion mirrors the radio
// widget: anything outside the enum never reaches the workflow.
type RegistroRequest struct {
	Campos
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

// Notificacion is the transient user-facing notice that accompanies every
// terminal outcome. Severidad is "success" exactly when the message reports a
// successful registration, otherwise "error" or "info".
type Notificacion struct {
	Mensaje   string `json:"mensaje"`
	Severidad string `json:"severidad"`
}

// RegistroResponse is returned for every terminal outcome of a submission.
// Estado is one of: emitido | duplicado | fallido.
// On fallido the submitted Campos are echoed back so the client can
// repopulate the form for resubmission; ParticipantID stays empty.
type RegistroResponse struct {
	Estado        string       `json:"estado"`
	ParticipantID string       `json:"participantID,omitempty"`
	Campos        Campos       `json:"campos"`
	FechaRegistro string       `json:"fechaRegistro,omitempty"`
	Notificacion  Notificacion `json:"notificacion"`
}

// ParticipanteResponse is returned by GET /v1/eventos/:evento/registros/:id.
type ParticipanteResponse struct {
	ParticipantID     string `json:"participantID"`
	Evento            string `json:"evento"`
	Cedula            string `json:"cedula"`
	Nombres           string `json:"nombres"`
	Telefono          string `json:"telefono"`
	Correo            string `json:"correo"`
	TipoParticipacion string `json:"tipoParticipacion"`
	CheckedIn         bool   `json:"checkedIn"`
	FechaRegistro     string `json:"fechaRegistro"`
}

// EventoResponse describes an event namespace to the presentation host,
// which uses Subtitulo as the mounted page's subtitle.
type EventoResponse struct {
	Nombre    string `json:"nombre"`
	Titulo    string `json:"titulo"`
	Subtitulo string `json:"subtitulo"`
}
