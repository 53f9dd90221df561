package model

import (
	"time"

	"github.com/google/uuid"
)

// Participante is the single registration record. ParticipantID is assigned
// once at creation, is never updated, and doubles as the QR payload printed
// on the ticket. Evento is the logical namespace the record belongs to.
type Participante struct {
	ParticipantID     uuid.UUID `gorm:"type:uuid;primaryKey" json:"participantID"`
	Evento            string    `gorm:"index:idx_participantes_tupla;not null" json:"evento"`
	Cedula            string    `gorm:"index:idx_participantes_tupla;not null" json:"cedula"`
	Nombres           string    `gorm:"index:idx_participantes_tupla;not null" json:"nombres"`
	Telefono          string    `gorm:"index:idx_participantes_tupla;not null" json:"telefono"`
	Correo            string    `gorm:"index:idx_participantes_tupla;not null" json:"correo"`
	TipoParticipacion string    `gorm:"index:idx_participantes_tupla;not null;default:'publico'" json:"tipoParticipacion"`
	// CheckedIn is mutated only by the check-in scanner, never by this service.
	CheckedIn     bool      `gorm:"not null;default:false" json:"checkedIn"`
	FechaRegistro time.Time `gorm:"not null" json:"fechaRegistro"`
}

func (Participante) TableName() string { return "participantes" }

// Valid participation types. The registration form constrains input to this
// set; an empty value falls back to TipoPublico.
const (
	TipoPublico    = "publico"
	TipoEstudiante = "estudiante"
	TipoDocente    = "docente"
)
