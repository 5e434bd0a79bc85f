package email

import (
	"encoding/base64"
	"fmt"
	"os"

	"github.com/sendgrid/rest"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	tl "github.com/tuumbleweed/tintlog/logger"
	"github.com/tuumbleweed/tintlog/palette"
	"github.com/tuumbleweed/xerr"
)

/*
sendWithSendgrid sends through Sendgrid. Needs SENDGRID_API_KEY in the
environment.
*/
func sendWithSendgrid(
	sender string,
	recipients []string,
	subject string,
	textBody string,
	htmlBody string,
	attachments []Attachment,
) (e *xerr.Error) {
	message := mail.NewV3Mail()
	message.SetFrom(mail.NewEmail("", sender))
	message.Subject = subject

	personalization := mail.NewPersonalization()
	for _, recipient := range recipients {
		personalization.AddTos(mail.NewEmail("", recipient))
	}
	message.AddPersonalizations(personalization)

	message.AddContent(
		mail.NewContent("text/plain", textBody),
		mail.NewContent("text/html", htmlBody),
	)

	for _, attachment := range attachments {
		message.AddAttachment(mail.NewAttachment().
			SetFilename(attachment.FileName).
			SetType(attachment.ContentType).
			SetContent(base64.StdEncoding.EncodeToString(attachment.Data)))
	}

	client := sendgrid.NewSendClient(os.Getenv("SENDGRID_API_KEY"))

	var response *rest.Response
	response, sendErr := client.Send(message)
	if sendErr != nil {
		return xerr.NewError(sendErr, "send email via sendgrid", recipients)
	}
	if response.StatusCode >= 300 {
		return xerr.NewError(
			fmt.Errorf("status code '%d'", response.StatusCode),
			"sendgrid rejected the message", response.Body,
		)
	}

	tl.Log(tl.Notice, palette.Green, "Sendgrid accepted the message, status '%d'", response.StatusCode)
	return nil
}
