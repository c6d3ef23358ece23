package handlers

import (
	"strings"

	"julmar.cl/web/internal/catalog"
	"julmar.cl/web/internal/config"
	"julmar.cl/web/internal/format"
	"julmar.cl/web/internal/quote"
)

// Site carries the company facts every page renders.
type Site struct {
	Name          string
	BaseURL       string
	BasePath      string
	WhatsAppPhone string
	Email         string
	Location      string
	Analytics     Analytics
}

// SiteFromConfig builds Site from the loaded configuration.
func SiteFromConfig(cfg config.Config) Site {
	return Site{
		Name:          cfg.Site.Name,
		BaseURL:       cfg.Site.BaseURL,
		BasePath:      cfg.Catalog.BasePath,
		WhatsAppPhone: cfg.Quote.WhatsAppPhone,
		Email:         cfg.Quote.Email,
		Location:      "Coquimbo / La Serena, Chile",
		Analytics:     AnalyticsFromConfig(cfg.Analytics),
	}
}

// Abs returns the absolute URL for a site path.
func (s Site) Abs(p string) string {
	if p == "" || p == "/" {
		return strings.TrimRight(s.BaseURL, "/") + "/"
	}
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return strings.TrimRight(s.BaseURL, "/") + p
}

// MachinePath is the detail page path of m.
func (s Site) MachinePath(m catalog.Machine) string {
	return catalog.Path(s.BasePath, m)
}

// PhoneDisplay is the sales phone formatted for humans.
func (s Site) PhoneDisplay() string { return format.Phone(s.WhatsAppPhone) }

// TelHref is the tel: link of the sales phone.
func (s Site) TelHref() string { return format.TelHref(s.WhatsAppPhone) }

// MailtoHref is a plain mailto: link to the sales address.
func (s Site) MailtoHref() string { return "mailto:" + s.Email }

// WhatsAppHref opens a chat with a generic greeting.
func (s Site) WhatsAppHref() string {
	return quote.WhatsAppLink(s.WhatsAppPhone, "Hola, quisiera cotizar maquinaria.")
}

// Destinations is where quote requests go.
func (s Site) Destinations() quote.Destinations {
	return quote.Destinations{WhatsAppPhone: s.WhatsAppPhone, Email: s.Email}
}
