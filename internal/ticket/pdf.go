package ticket

// pdf.go — printable PDF variant of the ticket using go-pdf/fpdf.
// A6 portrait: event title header, centered QR, participant data rows.

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/go-pdf/fpdf"
	qrcode "github.com/skip2/go-qrcode"
)

// NombreArchivoPDF builds the filename for the PDF variant.
func NombreArchivoPDF(cedula, participantID string) string {
	return fmt.Sprintf("ticket-%s-%s.pdf", cedula, participantID)
}

// GenerarPDF renders the ticket as a PDF byte stream.
func GenerarPDF(d Datos) ([]byte, error) {
	qrPNG, err := qrcode.Encode(d.ParticipantID, qrcode.Medium, 360)
	if err != nil {
		return nil, fmt.Errorf("ticket: generar QR para PDF: %w", err)
	}

	// A6 = 105mm × 148mm
	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "mm",
		Size:           fpdf.SizeType{Wd: 105, Ht: 148},
	})
	pdf.SetMargins(8, 8, 8)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 16

	// ── Cabecera ─────────────────────────────────────────────────────────
	pdf.SetFillColor(0x27, 0x34, 0x8b)
	pdf.Rect(0, 0, pageW, 24, "F")
	pdf.SetY(6)
	pdf.SetTextColor(0xff, 0xff, 0xff)
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(contentW, 6, strings.ToUpper(d.Titulo), "", 1, "C", false, 0, "")
	pdf.SetTextColor(0xe2, 0x83, 0x2f)
	pdf.SetFont("Helvetica", "B", 8)
	pdf.CellFormat(contentW, 5, strings.ToUpper(d.Subtitulo), "", 1, "C", false, 0, "")

	// ── QR ───────────────────────────────────────────────────────────────
	pdf.RegisterImageOptionsReader("qr", fpdf.ImageOptions{ImageType: "PNG"}, bytes.NewReader(qrPNG))
	qrSize := 54.0
	pdf.ImageOptions("qr", (pageW-qrSize)/2, 30, qrSize, qrSize, false, fpdf.ImageOptions{ImageType: "PNG"}, 0, "")
	pdf.SetY(30 + qrSize + 4)

	// ── Participante ─────────────────────────────────────────────────────
	pdf.SetTextColor(0x27, 0x34, 0x8b)
	pdf.SetFont("Helvetica", "B", 7)
	pdf.CellFormat(contentW, 4, "PARTICIPANTE", "", 1, "C", false, 0, "")
	pdf.SetTextColor(0x1a, 0x23, 0x57)
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(contentW, 6, strings.ToUpper(d.Nombres), "", 1, "C", false, 0, "")
	pdf.Ln(1)

	pdf.SetFont("Helvetica", "", 8)
	for _, fila := range []string{d.Cedula, d.Telefono, d.Correo} {
		pdf.SetFillColor(0xf5, 0xf7, 0xfa)
		pdf.CellFormat(contentW, 6, fila, "", 1, "C", true, 0, "")
		pdf.Ln(1)
	}

	// ── Pie ──────────────────────────────────────────────────────────────
	pdf.Ln(2)
	pdf.SetFont("Helvetica", "I", 7)
	pdf.SetTextColor(0x55, 0x55, 0x55)
	pdf.CellFormat(contentW, 4, "Muestra este código QR al ingreso del evento", "", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("ticket: escribir PDF: %w", err)
	}
	return buf.Bytes(), nil
}
