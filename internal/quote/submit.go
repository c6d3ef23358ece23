package quote

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
)

// ErrUnknownChannel is returned for a channel other than whatsapp or email.
var ErrUnknownChannel = errors.New("quote: unknown channel")

// Channel is where a quote request is sent.
type Channel string

const (
	ChannelWhatsApp Channel = "whatsapp"
	ChannelEmail    Channel = "email"
)

// ParseChannel accepts "whatsapp" (also the default for "") and "email".
func ParseChannel(s string) (Channel, error) {
	switch Channel(strings.ToLower(strings.TrimSpace(s))) {
	case "", ChannelWhatsApp:
		return ChannelWhatsApp, nil
	case ChannelEmail:
		return ChannelEmail, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownChannel, s)
	}
}

// Destinations are the company's contact endpoints.
type Destinations struct {
	WhatsAppPhone string
	Email         string
}

// Submission is a validated quote request ready to be handed to the browser.
type Submission struct {
	Reference string
	Channel   Channel
	Link      string
	CreatedAt time.Time
}

// Submit validates f and builds the outbound link for ch. The reference is a
// ULID stamped with now; a nil entropy source uses ulid.DefaultEntropy.
func Submit(f FormData, ch Channel, dest Destinations, now time.Time, entropy io.Reader) (Submission, error) {
	if err := f.Validate(); err != nil {
		return Submission{}, err
	}
	var link string
	switch ch {
	case ChannelWhatsApp:
		link = WhatsAppLink(dest.WhatsAppPhone, FormatMessage(f))
	case ChannelEmail:
		link = MailtoLink(dest.Email, f)
	default:
		return Submission{}, fmt.Errorf("%w: %q", ErrUnknownChannel, ch)
	}
	if entropy == nil {
		entropy = ulid.DefaultEntropy()
	}
	id, err := ulid.New(ulid.Timestamp(now), entropy)
	if err != nil {
		return Submission{}, fmt.Errorf("quote: reference: %w", err)
	}
	return Submission{
		Reference: id.String(),
		Channel:   ch,
		Link:      link,
		CreatedAt: now,
	}, nil
}
