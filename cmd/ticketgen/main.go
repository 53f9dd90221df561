// cmd/ticketgen/main.go — Genera un ticket PNG localmente, sin servidor ni
// base de datos. Útil para ajustar la composición visual.
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/CarlosLeonGaleas/EventRegistration/internal/ticket"

	"github.com/google/uuid"
)

func main() {
	titulo := flag.String("titulo", "II Jornada de Investigación,", "título del evento")
	subtitulo := flag.String("subtitulo", "Innovación y Transferencia de Tecnología", "subtítulo del evento")
	cedula := flag.String("cedula", "1234567890", "cédula del participante")
	nombres := flag.String("nombres", "Juan Perez", "nombres completos")
	telefono := flag.String("telefono", "0991234567", "teléfono")
	correo := flag.String("correo", "juan@example.com", "correo electrónico")
	out := flag.String("out", ".", "directorio de salida")
	flag.Parse()

	id := uuid.NewString()
	superficie := ticket.Render(ticket.Datos{
		Titulo:        *titulo,
		Subtitulo:     *subtitulo,
		ParticipantID: id,
		Nombres:       *nombres,
		Cedula:        *cedula,
		Telefono:      *telefono,
		Correo:        *correo,
	})

	ruta, err := ticket.NewExportador().Guardar(*out, superficie, ticket.NombreArchivo(*cedula, id))
	if err != nil {
		log.Fatalf("ticketgen: %v", err)
	}
	fmt.Printf("✅ Ticket generado en %s\n", ruta)
}
