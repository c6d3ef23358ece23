package quote

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testDest = Destinations{WhatsAppPhone: "56931052727", Email: "jgalvez@julmarspa.com"}

func TestParseChannel(t *testing.T) {
	for in, want := range map[string]Channel{"": ChannelWhatsApp, "WhatsApp": ChannelWhatsApp, " email ": ChannelEmail} {
		got, err := ParseChannel(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := ParseChannel("sms")
	assert.True(t, errors.Is(err, ErrUnknownChannel))
}

func TestSubmitWhatsApp(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	f := FormData{Name: "Ana", Phone: "+56912345678", Equipment: "Excavadora"}

	sub, err := Submit(f, ChannelWhatsApp, testDest, now, bytes.NewReader(make([]byte, 32)))
	require.NoError(t, err)

	assert.Equal(t, ChannelWhatsApp, sub.Channel)
	assert.Equal(t, WhatsAppLink("56931052727", FormatMessage(f)), sub.Link)
	assert.Equal(t, now, sub.CreatedAt)

	id, err := ulid.ParseStrict(sub.Reference)
	require.NoError(t, err)
	assert.Equal(t, ulid.Timestamp(now), id.Time())
}

func TestSubmitEmail(t *testing.T) {
	f := FormData{Name: "Ana", Phone: "1"}
	sub, err := Submit(f, ChannelEmail, testDest, time.Now(), nil)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(sub.Link, "mailto:jgalvez@julmarspa.com?subject="))
	assert.Len(t, sub.Reference, 26)
}

func TestSubmitRejectsInvalidForm(t *testing.T) {
	_, err := Submit(FormData{Name: "Ana"}, ChannelWhatsApp, testDest, time.Now(), nil)
	assert.True(t, errors.Is(err, ErrMissingPhone))

	_, err = Submit(FormData{Name: "Ana", Phone: "1"}, Channel("fax"), testDest, time.Now(), nil)
	assert.True(t, errors.Is(err, ErrUnknownChannel))
}
