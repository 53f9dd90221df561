package ticket

// export.go — rasterize a ticket surface and produce the downloadable PNG.
// Export is user-triggered and freely retryable: a failure here is logged and
// never alters the registration outcome that produced the surface.

import (
	"bytes"
	"errors"
	"fmt"
	"image/color"
	"image/png"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
)

var (
	// ErrSuperficieAusente is returned when there is no rendered ticket
	// surface to capture.
	ErrSuperficieAusente = errors.New("ticket: superficie no encontrada")

	// ErrCodificacion wraps PNG encoding failures.
	ErrCodificacion = errors.New("ticket: error al codificar la imagen")
)

// EscalaExport is the capture scale for downloads: 2× the logical resolution.
const EscalaExport = 2

// Exportador captures ticket surfaces to PNG byte streams.
type Exportador struct {
	Escala int
	Fondo  color.Color
}

// NewExportador returns an exporter with the standard download settings:
// 2× scale over an opaque white backing.
func NewExportador() Exportador {
	return Exportador{Escala: EscalaExport, Fondo: color.White}
}

// PNG rasterizes the surface and encodes it as a PNG byte stream.
func (x Exportador) PNG(s Superficie) ([]byte, error) {
	if s == nil {
		return nil, ErrSuperficieAusente
	}

	escala := x.Escala
	if escala < 1 {
		escala = EscalaExport
	}
	fondo := x.Fondo
	if fondo == nil {
		fondo = color.White
	}

	img, err := s.Capturar(escala, fondo)
	if err != nil {
		log.Error().Err(err).Msg("ticket: fallo la captura de la superficie")
		return nil, err
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		log.Error().Err(err).Msg("ticket: fallo la codificación PNG")
		return nil, fmt.Errorf("%w: %v", ErrCodificacion, err)
	}
	return buf.Bytes(), nil
}

// Guardar exports the surface and writes it under dir with the given name.
// The write goes through a temp file renamed into place; the temp file is
// removed on every failure path rather than left for garbage collection.
// Returns the absolute path of the saved file.
func (x Exportador) Guardar(dir string, s Superficie, nombre string) (string, error) {
	data, err := x.PNG(s)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("ticket: crear directorio de salida: %w", err)
	}

	tmp, err := os.CreateTemp(dir, nombre+".tmp-*")
	if err != nil {
		return "", fmt.Errorf("ticket: crear archivo temporal: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return "", fmt.Errorf("ticket: escribir archivo: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return "", fmt.Errorf("ticket: cerrar archivo: %w", err)
	}

	destino := filepath.Join(dir, nombre)
	if err := os.Rename(tmpPath, destino); err != nil {
		os.Remove(tmpPath)
		return "", fmt.Errorf("ticket: renombrar archivo: %w", err)
	}
	return destino, nil
}
