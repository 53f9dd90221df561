package model

import (
	"time"

	"github.com/google/uuid"
)

// Evento is an event namespace: registrations are queried and stored per
// Nombre. Titulo and Subtitulo feed the ticket header and the page subtitle
// shown by the presentation host.
type Evento struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Nombre    string    `gorm:"uniqueIndex;not null" json:"nombre"`
	Titulo    string    `gorm:"not null" json:"titulo"`
	Subtitulo string    `json:"subtitulo"`
	Activo    bool      `gorm:"not null;default:true" json:"activo"`
	CreatedAt time.Time `json:"created_at"`
}

func (Evento) TableName() string { return "eventos" }
