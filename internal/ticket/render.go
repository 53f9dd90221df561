// Package ticket composes, rasterizes and exports the participant ticket: a
// header with the event title, a QR code whose payload is the participant ID,
// and the participant's data. The composition implements the Superficie
// capture capability so the exporter never depends on how pixels are produced.
package ticket

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"strings"

	qrcode "github.com/skip2/go-qrcode"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// Datos is everything the renderer needs: the event's display titles plus the
// issued (or adopted) participant record.
type Datos struct {
	Titulo    string
	Subtitulo string

	ParticipantID string
	Nombres       string
	Cedula        string
	Telefono      string
	Correo        string
}

// Superficie is a rendered ticket surface that can be captured to a bitmap at
// a given scale over an opaque backing color.
type Superficie interface {
	Capturar(escala int, fondo color.Color) (image.Image, error)
}

// Paleta institucional del ticket.
var (
	colAzul       = color.RGBA{R: 0x27, G: 0x34, B: 0x8b, A: 0xff}
	colAzulOscuro = color.RGBA{R: 0x1a, G: 0x23, B: 0x57, A: 0xff}
	colNaranja    = color.RGBA{R: 0xe2, G: 0x83, B: 0x2f, A: 0xff}
	colGrisClaro  = color.RGBA{R: 0xf5, G: 0xf7, B: 0xfa, A: 0xff}
	colBlanco     = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

// Logical layout, in unscaled pixels.
const (
	anchoTicket  = 400
	altoCabecera = 72
	margenQR     = 24
	bordeQR      = 3
	tamQR        = 180
	altoEtiqueta = 22
	altoNombre   = 26
	altoFila     = 28
	sepFila      = 6
	altoPie      = 8
)

// altoTicket is the full logical height of the composition.
const altoTicket = altoCabecera +
	margenQR + bordeQR + tamQR + bordeQR + margenQR +
	altoEtiqueta + altoNombre + 3*(altoFila+sepFila) + margenQR +
	altoPie

// Composicion is the visual ticket ready to be captured.
type Composicion struct {
	datos Datos
}

// Render builds the ticket composition for a record in an issued or
// duplicate-found outcome.
func Render(d Datos) *Composicion {
	return &Composicion{datos: d}
}

// Capturar rasterizes the composition at the given integer scale over an
// opaque backing color, so embedded surfaces never leave transparent
// artifacts in the exported bitmap.
func (c *Composicion) Capturar(escala int, fondo color.Color) (image.Image, error) {
	if escala < 1 {
		escala = 1
	}

	regular, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("ticket: parse fuente regular: %w", err)
	}
	negrita, err := opentype.Parse(gobold.TTF)
	if err != nil {
		return nil, fmt.Errorf("ticket: parse fuente negrita: %w", err)
	}

	w, h := anchoTicket*escala, altoTicket*escala
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(fondo), image.Point{}, draw.Src)

	// ── Cabecera: título del evento sobre azul ───────────────────────────
	llenar(img, 0, 0, w, altoCabecera*escala, colAzul)
	tituloFace, err := cara(negrita, 15, escala)
	if err != nil {
		return nil, err
	}
	subtituloFace, err := cara(negrita, 11, escala)
	if err != nil {
		return nil, err
	}
	centrarTexto(img, tituloFace, colBlanco, 28*escala, strings.ToUpper(c.datos.Titulo))
	centrarTexto(img, subtituloFace, colNaranja, 52*escala, strings.ToUpper(c.datos.Subtitulo))

	// ── Código QR: payload = ParticipantID literal ───────────────────────
	qr, err := qrcode.New(c.datos.ParticipantID, qrcode.Medium)
	if err != nil {
		return nil, fmt.Errorf("ticket: generar QR: %w", err)
	}
	qrImg := qr.Image(tamQR * escala)

	qrTop := (altoCabecera + margenQR) * escala
	qrLeft := (anchoTicket - tamQR) / 2 * escala
	// Marco azul alrededor del QR.
	llenar(img,
		qrLeft-bordeQR*escala, qrTop-bordeQR*escala,
		qrLeft+(tamQR+bordeQR)*escala, qrTop+(tamQR+bordeQR)*escala,
		colAzul)
	llenar(img, qrLeft, qrTop, qrLeft+tamQR*escala, qrTop+tamQR*escala, colBlanco)
	draw.Draw(img,
		image.Rect(qrLeft, qrTop, qrLeft+tamQR*escala, qrTop+tamQR*escala),
		qrImg, qrImg.Bounds().Min, draw.Over)

	// ── Datos del participante ───────────────────────────────────────────
	etiquetaFace, err := cara(negrita, 9, escala)
	if err != nil {
		return nil, err
	}
	nombreFace, err := cara(negrita, 13, escala)
	if err != nil {
		return nil, err
	}
	filaFace, err := cara(regular, 11, escala)
	if err != nil {
		return nil, err
	}

	y := (altoCabecera + margenQR + bordeQR + tamQR + bordeQR + margenQR) * escala
	centrarTexto(img, etiquetaFace, colAzul, y+14*escala, "PARTICIPANTE")
	y += altoEtiqueta * escala
	centrarTexto(img, nombreFace, colAzulOscuro, y+18*escala, strings.ToUpper(c.datos.Nombres))
	y += altoNombre * escala

	for _, fila := range []string{c.datos.Cedula, c.datos.Telefono, c.datos.Correo} {
		y += sepFila * escala
		llenar(img, 32*escala, y, (anchoTicket-32)*escala, y+altoFila*escala, colGrisClaro)
		centrarTexto(img, filaFace, colAzulOscuro, y+19*escala, fila)
		y += altoFila * escala
	}

	// ── Pie decorativo ───────────────────────────────────────────────────
	llenar(img, 0, h-altoPie*escala, w/2, h, colAzul)
	llenar(img, w/2, h-altoPie*escala, w, h, colNaranja)

	return img, nil
}

// NombreArchivo builds the canonical export filename for a record.
func NombreArchivo(cedula, participantID string) string {
	return fmt.Sprintf("ticket-%s-%s.png", cedula, participantID)
}

// ── Dibujo ───────────────────────────────────────────────────────────────────

func cara(f *opentype.Font, puntos float64, escala int) (font.Face, error) {
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    puntos * float64(escala),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("ticket: crear cara tipográfica: %w", err)
	}
	return face, nil
}

func llenar(dst *image.RGBA, x0, y0, x1, y1 int, col color.Color) {
	draw.Draw(dst, image.Rect(x0, y0, x1, y1), image.NewUniform(col), image.Point{}, draw.Src)
}

// centrarTexto draws s horizontally centered with its baseline at y.
func centrarTexto(dst *image.RGBA, face font.Face, col color.Color, y int, s string) {
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(col),
		Face: face,
	}
	ancho := d.MeasureString(s).Ceil()
	x := (dst.Bounds().Dx() - ancho) / 2
	if x < 0 {
		x = 0
	}
	d.Dot = fixed.P(x, y)
	d.DrawString(s)
}
