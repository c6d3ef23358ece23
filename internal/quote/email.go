package quote

import "strings"

// lineBreak is written literally into mailto bodies. Existing links on the
// site use this form, so the body is not passed through EncodeComponent.
const lineBreak = "%0D%0A"

// EmailSubject is the subject line of the e-mail channel.
func EmailSubject(f FormData) string {
	return "Solicitud de Cotización: " + orDefault(f.Equipment, "Maquinaria")
}

// FormatEmailBody renders the mailto body with %0D%0A line breaks. Field
// values are inserted as typed except for the characters that would end the
// body parameter or start a bogus escape (%, &, #) and raw line breaks.
func FormatEmailBody(f FormData) string {
	lines := []string{
		"Hola, me gustaría solicitar una cotización formal.",
		"",
		"*Cliente/Empresa:* " + bodyValue(f.Name),
		"*RUT:* " + bodyValue(orDefault(f.RUT, "No indicado")),
		"*Teléfono:* " + bodyValue(f.Phone),
		"*Email:* " + bodyValue(orDefault(f.Email, "No indicado")),
		"*Equipo:* " + bodyValue(orDefault(f.Equipment, notSpecified)),
		"*Duración:* " + bodyValue(orDefault(f.Duration, "No especificada")),
		"*Ubicación:* " + bodyValue(orDefault(f.Location, "No indicada")),
		"*Detalles:* " + bodyValue(orDefault(f.Details, noDetails)),
		"",
		"Quedo atento a su respuesta.",
	}
	return strings.Join(lines, lineBreak)
}

// MailtoLink builds the mailto: URL for the e-mail channel.
func MailtoLink(address string, f FormData) string {
	return "mailto:" + address + "?subject=" + EncodeComponent(EmailSubject(f)) + "&body=" + FormatEmailBody(f)
}

func bodyValue(s string) string {
	return encode(s, func(c byte) bool {
		switch c {
		case '%', '&', '#', '\r', '\n':
			return false
		}
		return true
	})
}
