package email

import (
	"context"
	"os"
	"time"

	"github.com/mailgun/mailgun-go/v4"
	tl "github.com/tuumbleweed/tintlog/logger"
	"github.com/tuumbleweed/tintlog/palette"
	"github.com/tuumbleweed/xerr"
)

const mailgunSendTimeout = 30 * time.Second

/*
sendWithMailgun sends through Mailgun. Needs MAILGUN_DOMAIN and
MAILGUN_API_KEY in the environment.
*/
func sendWithMailgun(
	sender string,
	recipients []string,
	subject string,
	textBody string,
	htmlBody string,
	attachments []Attachment,
) (e *xerr.Error) {
	domain := os.Getenv("MAILGUN_DOMAIN")
	apiKey := os.Getenv("MAILGUN_API_KEY")

	mg := mailgun.NewMailgun(domain, apiKey)

	message := mailgun.NewMessage(sender, subject, textBody, recipients...)
	message.SetHTML(htmlBody)
	for _, attachment := range attachments {
		message.AddBufferAttachment(attachment.FileName, attachment.Data)
	}

	ctx, cancel := context.WithTimeout(context.Background(), mailgunSendTimeout)
	defer cancel()

	response, id, sendErr := mg.Send(ctx, message)
	if sendErr != nil {
		return xerr.NewError(sendErr, "send email via mailgun", recipients)
	}

	tl.Log(tl.Notice, palette.Green, "Mailgun accepted the message, id '%s', response '%s'", id, response)
	return nil
}
