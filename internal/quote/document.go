package quote

import (
	"fmt"
	"strings"
	"time"
)

const (
	DateLayout = "2006-01-02"
	City       = "San Salvador"
	Footer     = "Elite Company — Cotización Generada"
	FileName   = "cotizacion.pdf"
)

const DefaultBody = "COTIZACIÓN DE RESTAURADO Y PULIDO DE SILLAS DE ESCRITORIO\n\n" +
	"Respetables Señores:\n" +
	"Reciban un cordial saludo de la Familia Elite. Nos complace presentar la " +
	"cotización para el servicio de restauración, pulido y abrillantado de sillas de escritorio..."

var months = [...]string{
	"enero", "febrero", "marzo", "abril", "mayo", "junio",
	"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
}

type Document struct {
	Date     string `json:"date" form:"date"`
	Greeting string `json:"greeting" form:"greeting"`
	Body     string `json:"body" form:"body"`
}

// LongDate formats t as "05 de mayo de 2024".
func LongDate(t time.Time) string {
	return fmt.Sprintf("%02d de %s de %d", t.Day(), months[t.Month()-1], t.Year())
}

func DefaultGreeting(now time.Time) string {
	return City + ", " + LongDate(now)
}

func DefaultDocument(now time.Time) Document {
	return Document{
		Date:     now.Format(DateLayout),
		Greeting: DefaultGreeting(now),
		Body:     DefaultBody,
	}
}

// WithDefaults fills blank fields from DefaultDocument.
func (d Document) WithDefaults(now time.Time) Document {
	def := DefaultDocument(now)
	if strings.TrimSpace(d.Date) == "" {
		d.Date = def.Date
	}
	if strings.TrimSpace(d.Greeting) == "" {
		d.Greeting = def.Greeting
	}
	if strings.TrimSpace(d.Body) == "" {
		d.Body = def.Body
	}
	return d
}

// DisplayDate renders the date as dd/mm/yyyy, or as given when it is not
// an ISO date.
func (d Document) DisplayDate() string {
	t, err := time.Parse(DateLayout, strings.TrimSpace(d.Date))
	if err != nil {
		return d.Date
	}
	return t.Format("02/01/2006")
}
