package quote

import "strings"

const (
	notSpecified = "No especificado"
	noDetails    = "Sin detalles adicionales"
)

// FormatMessage renders the WhatsApp quote request. Name and phone are copied
// verbatim; every other blank field gets a placeholder. The result is plain
// text; WhatsAppLink does the encoding.
func FormatMessage(f FormData) string {
	var b strings.Builder
	b.WriteString("*SOLICITUD DE COTIZACIÓN WEB*\n\n")
	b.WriteString("👤 *Cliente:* " + f.Name + "\n")
	b.WriteString("🆔 *RUT:* " + orDefault(f.RUT, notSpecified) + "\n")
	b.WriteString("🚜 *Equipo:* " + orDefault(f.Equipment, notSpecified) + "\n")
	b.WriteString("📍 *Ubicación:* " + orDefault(f.Location, notSpecified) + "\n")
	b.WriteString("⏱ *Duración:* " + orDefault(f.Duration, notSpecified) + "\n")
	b.WriteString("📞 *Teléfono:* " + f.Phone + "\n")
	b.WriteString("✉️ *Email:* " + orDefault(f.Email, notSpecified) + "\n")
	b.WriteString("📝 *Detalles:* " + orDefault(f.Details, noDetails))
	return b.String()
}

// WhatsAppLink builds the wa.me deep link. phoneDigits is used as given
// (digits only, no leading +).
func WhatsAppLink(phoneDigits, message string) string {
	return "https://wa.me/" + phoneDigits + "?text=" + EncodeComponent(message)
}

// InterestMessage is the short greeting used by the quick-quote button on a
// machine page.
func InterestMessage(machineName string) string {
	return "Hola, me interesa arrendar la " + machineName
}
