package service

// validacion.go — pure field validation for the registration form.
// No network or persistence side effects; every rule is evaluated
// independently so the caller gets all failing fields at once.

import (
	"regexp"
	"strings"

	"github.com/CarlosLeonGaleas/EventRegistration/internal/dto"
)

var (
	reDiezDigitos = regexp.MustCompile(`^\d{10}$`)
	// Structural check only: something@something.something — not full RFC 5322.
	reCorreo = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// Validar evaluates the form rules over the raw field values and returns a
// field → message map. An empty map means the submission is valid.
// TipoParticipacion never produces an error: the input widget constrains it
// to the enum and an empty value defaults to "publico" downstream.
func Validar(campos dto.Campos) map[string]string {
	errores := make(map[string]string)

	cedula := strings.TrimSpace(campos.Cedula)
	if cedula == "" {
		errores["cedula"] = "La cédula es requerida"
	} else if !reDiezDigitos.MatchString(cedula) {
		errores["cedula"] = "La cédula debe tener 10 dígitos"
	}

	nombres := strings.TrimSpace(campos.Nombres)
	if nombres == "" {
		errores["nombres"] = "Los nombres completos son requeridos"
	} else if len([]rune(nombres)) < 3 {
		errores["nombres"] = "Ingrese un nombre válido"
	}

	telefono := strings.TrimSpace(campos.Telefono)
	if telefono == "" {
		errores["telefono"] = "El teléfono es requerido"
	} else if !reDiezDigitos.MatchString(telefono) {
		errores["telefono"] = "El teléfono debe tener 10 dígitos"
	}

	correo := strings.TrimSpace(campos.Correo)
	if correo == "" {
		errores["correo"] = "El correo electrónico es requerido"
	} else if !reCorreo.MatchString(correo) {
		errores["correo"] = "Ingrese un correo electrónico válido"
	}

	return errores
}
