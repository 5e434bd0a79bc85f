/*
Package email delivers finished reports through one of three providers:
Amazon SES, Mailgun or Sendgrid. Provider credentials come from the
environment; the caller only picks which provider to use.
*/
package email

import (
	"fmt"

	tl "github.com/tuumbleweed/tintlog/logger"
	"github.com/tuumbleweed/tintlog/palette"
	"github.com/tuumbleweed/xerr"
)

type Provider string

const (
	ProviderSES      Provider = "ses"
	ProviderMailgun  Provider = "mailgun"
	ProviderSendgrid Provider = "sendgrid"
)

/*
Attachment is a file to attach to an outgoing message.
*/
type Attachment struct {
	FileName    string
	ContentType string
	Data        []byte
}

/*
SendMessage sends one email through the chosen provider. When sendEmails
is nil or false the message is logged and skipped, so a dry run never
touches a provider API.
*/
func SendMessage(
	provider Provider,
	sendEmails *bool,
	sender string,
	recipients []string,
	subject string,
	textBody string,
	htmlBody string,
	attachments []Attachment,
) (e *xerr.Error) {
	if sendEmails == nil || !*sendEmails {
		tl.Log(
			tl.Notice, palette.YellowDim, "Email sending is disabled, skipping '%s' to '%v'",
			subject, recipients,
		)
		return nil
	}

	tl.Log(
		tl.Info, palette.Blue, "Sending '%s' to '%d' recipient(s) via '%s'",
		subject, len(recipients), provider,
	)

	switch provider {
	case ProviderSES:
		return sendWithSES(sender, recipients, subject, textBody, htmlBody, attachments)
	case ProviderMailgun:
		return sendWithMailgun(sender, recipients, subject, textBody, htmlBody, attachments)
	case ProviderSendgrid:
		return sendWithSendgrid(sender, recipients, subject, textBody, htmlBody, attachments)
	}

	return xerr.NewError(fmt.Errorf("unknown provider '%s'", provider), "pick email provider", string(provider))
}
