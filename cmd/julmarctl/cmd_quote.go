package main

import (
	"fmt"
	"net/url"
	"time"

	"github.com/spf13/cobra"

	"julmar.cl/web/internal/quote"
)

func (c *cli) quoteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "quote",
		Short: "Preview quote requests",
	}

	values := map[string]*string{}
	var channel string
	link := &cobra.Command{
		Use:   "link",
		Short: "Print the message and outbound link a quote form would produce",
		Example: `  julmarctl quote link --name "Constructora Norte" --phone "+56 9 1234 5678" \
    --equipment "Excavadora CAT 320" --duration "2 semanas"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			form := url.Values{}
			for field, v := range values {
				form.Set(field, *v)
			}
			ch, err := quote.ParseChannel(channel)
			if err != nil {
				return err
			}
			f := quote.FromValues(form)
			dest := quote.Destinations{WhatsAppPhone: c.cfg.Quote.WhatsAppPhone, Email: c.cfg.Quote.Email}
			sub, err := quote.Submit(f, ch, dest, time.Now(), nil)
			if err != nil {
				return fmt.Errorf("%s: %w", quote.ValidationMessage, err)
			}

			out := cmd.OutOrStdout()
			if ch == quote.ChannelWhatsApp {
				fmt.Fprintln(out, quote.FormatMessage(f))
			} else {
				fmt.Fprintf(out, "Asunto: %s\n", quote.EmailSubject(f))
			}
			fmt.Fprintln(out)
			fmt.Fprintln(out, sub.Link)
			return nil
		},
	}

	for _, field := range []struct{ name, usage string }{
		{"name", "client or company name (required)"},
		{"rut", "RUT"},
		{"phone", "contact phone (required)"},
		{"email", "contact e-mail"},
		{"equipment", "requested equipment"},
		{"duration", "rental duration"},
		{"location", "job site location"},
		{"details", "additional details"},
	} {
		values[field.name] = link.Flags().String(field.name, "", field.usage)
	}
	link.Flags().StringVar(&channel, "channel", string(quote.ChannelWhatsApp), "whatsapp or email")

	cmd.AddCommand(link)
	return cmd
}
