package quote

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmailSubject(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "Solicitud de Cotización: Maquinaria", EmailSubject(FormData{}))
	assert.Equal(t, "Solicitud de Cotización: Excavadora", EmailSubject(FormData{Equipment: "Excavadora"}))
}

func TestFormatEmailBodyUsesLiteralLineBreaks(t *testing.T) {
	t.Parallel()

	body := FormatEmailBody(FormData{Name: "Jane Doe", Phone: "+56987654321"})

	want := "Hola, me gustaría solicitar una cotización formal.%0D%0A%0D%0A" +
		"*Cliente/Empresa:* Jane Doe%0D%0A" +
		"*RUT:* No indicado%0D%0A" +
		"*Teléfono:* +56987654321%0D%0A" +
		"*Email:* No indicado%0D%0A" +
		"*Equipo:* No especificado%0D%0A" +
		"*Duración:* No especificada%0D%0A" +
		"*Ubicación:* No indicada%0D%0A" +
		"*Detalles:* Sin detalles adicionales%0D%0A%0D%0A" +
		"Quedo atento a su respuesta."
	assert.Equal(t, want, body)
}

func TestFormatEmailBodyEscapesParameterBreakers(t *testing.T) {
	t.Parallel()

	body := FormatEmailBody(FormData{Name: "A & B", Phone: "1", Details: "50% #1\r\nok"})
	assert.Contains(t, body, "*Cliente/Empresa:* A %26 B%0D%0A")
	assert.Contains(t, body, "*Detalles:* 50%25 %231%0D%0Aok%0D%0A")
	assert.NotContains(t, body, "&")
	assert.NotContains(t, body, "#")
}

func TestMailtoLink(t *testing.T) {
	t.Parallel()

	f := FormData{Name: "Ana", Phone: "+56912345678", Equipment: "Camión Aljibe"}
	link := MailtoLink("jgalvez@julmarspa.com", f)

	require.True(t, strings.HasPrefix(link, "mailto:jgalvez@julmarspa.com?subject="))
	assert.Contains(t, link, "subject=Solicitud%20de%20Cotizaci%C3%B3n%3A%20Cami%C3%B3n%20Aljibe&body=")

	u, err := url.Parse(link)
	require.NoError(t, err)
	assert.Equal(t, "mailto", u.Scheme)
	assert.Equal(t, "Solicitud de Cotización: Camión Aljibe", u.Query().Get("subject"))
	assert.Contains(t, u.Query().Get("body"), "*Equipo:* Camión Aljibe\r\n")
}
