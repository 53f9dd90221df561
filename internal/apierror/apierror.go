// Package apierror provides standardized error response structures for the API.
// All errors returned to clients go through this package to ensure consistency
// and to prevent leaking internal details (stack traces, store errors, etc.).
package apierror

import "errors"

// APIError is the canonical error envelope for all 4xx/5xx HTTP responses.
type APIError struct {
	Detail string `json:"detail"`
}

func New(msg string) *APIError {
	return &APIError{Detail: msg}
}

// ValidationError wraps multiple field errors.
type ValidationError struct {
	Detail string            `json:"detail"`
	Fields map[string]string `json:"fields"`
}

func NewValidation(fields map[string]string) *ValidationError {
	return &ValidationError{Detail: "Error de validacion", Fields: fields}
}

// Sentinel errors shared across the repository and service layers.
// The repository logs the underlying store/transport error with full detail
// and returns one of these instead, so no raw error text reaches clients.
var (
	// ErrAlmacen covers any query or write failure against the record store.
	ErrAlmacen = errors.New("error de almacenamiento")

	// ErrClaveDuplicada signals an insert that would overwrite an existing
	// participant ID. IDs are freshly generated v4 UUIDs, so hitting this
	// means something is seriously wrong — the write fails loudly instead of
	// silently replacing the existing record.
	ErrClaveDuplicada = errors.New("clave de participante duplicada")

	// ErrEventoNoEncontrado is returned when the event namespace does not
	// exist or is inactive.
	ErrEventoNoEncontrado = errors.New("evento no encontrado")

	// ErrRegistroNoEncontrado is returned when a participant lookup by ID
	// finds nothing within the event namespace.
	ErrRegistroNoEncontrado = errors.New("registro no encontrado")
)
