package service

import (
	"testing"

	"github.com/CarlosLeonGaleas/EventRegistration/internal/dto"

	"github.com/stretchr/testify/assert"
)

func camposValidos() dto.Campos {
	return dto.Campos{
		Cedula:            "1234567890",
		Nombres:           "Juan Perez",
		Telefono:          "0991234567",
		Correo:            "juan@example.com",
		TipoParticipacion: "estudiante",
	}
}

func TestValidar_CamposValidos(t *testing.T) {
	assert.Empty(t, Validar(camposValidos()))
}

func TestValidar_Cedula(t *testing.T) {
	cases := []struct {
		name   string
		cedula string
		msg    string
	}{
		{"vacia", "", "La cédula es requerida"},
		{"solo espacios", "   ", "La cédula es requerida"},
		{"corta", "12345", "La cédula debe tener 10 dígitos"},
		{"larga", "12345678901", "La cédula debe tener 10 dígitos"},
		{"con letras", "12345abcde", "La cédula debe tener 10 dígitos"},
		{"con guion", "123456-890", "La cédula debe tener 10 dígitos"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			campos := camposValidos()
			campos.Cedula = tc.cedula
			errores := Validar(campos)
			assert.Equal(t, tc.msg, errores["cedula"])
			assert.Len(t, errores, 1)
		})
	}
}

func TestValidar_Nombres(t *testing.T) {
	campos := camposValidos()
	campos.Nombres = ""
	assert.Equal(t, "Los nombres completos son requeridos", Validar(campos)["nombres"])

	campos.Nombres = "  Jo  "
	assert.Equal(t, "Ingrese un nombre válido", Validar(campos)["nombres"])

	// Trimmed length counts: three runes surrounded by spaces are fine.
	campos.Nombres = "  Ana  "
	assert.NotContains(t, Validar(campos), "nombres")
}

func TestValidar_Telefono(t *testing.T) {
	campos := camposValidos()
	campos.Telefono = ""
	assert.Equal(t, "El teléfono es requerido", Validar(campos)["telefono"])

	campos.Telefono = "099123"
	assert.Equal(t, "El teléfono debe tener 10 dígitos", Validar(campos)["telefono"])
}

func TestValidar_Correo(t *testing.T) {
	cases := []struct {
		name   string
		correo string
		msg    string
	}{
		{"vacio", "", "El correo electrónico es requerido"},
		{"sin arroba", "juanexample.com", "Ingrese un correo electrónico válido"},
		{"sin dominio", "juan@", "Ingrese un correo electrónico válido"},
		{"sin tld", "juan@example", "Ingrese un correo electrónico válido"},
		{"con espacios", "ju an@example.com", "Ingrese un correo electrónico válido"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			campos := camposValidos()
			campos.Correo = tc.correo
			assert.Equal(t, tc.msg, Validar(campos)["correo"])
		})
	}

	campos := camposValidos()
	campos.Correo = "a@b.co"
	assert.NotContains(t, Validar(campos), "correo")
}

func TestValidar_ReportaTodosLosCampos(t *testing.T) {
	errores := Validar(dto.Campos{})
	// No short-circuit: every failing field is reported at once.
	assert.Len(t, errores, 4)
	assert.Contains(t, errores, "cedula")
	assert.Contains(t, errores, "nombres")
	assert.Contains(t, errores, "telefono")
	assert.Contains(t, errores, "correo")
}

func TestValidar_TipoParticipacionSiempreValido(t *testing.T) {
	campos := camposValidos()
	campos.TipoParticipacion = ""
	assert.Empty(t, Validar(campos))
}
