package email

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"
	tl "github.com/tuumbleweed/tintlog/logger"
	"github.com/tuumbleweed/tintlog/palette"
	"github.com/tuumbleweed/xerr"
)

/*
sendWithSES sends through Amazon SES v2 using the default credential
chain (AWS_ACCESS_KEY_ID, AWS_SECRET_ACCESS_KEY, AWS_REGION). The Simple
content type carries no attachments, so they are dropped with a warning;
use mailgun or sendgrid when the report must travel as a file.
*/
func sendWithSES(
	sender string,
	recipients []string,
	subject string,
	textBody string,
	htmlBody string,
	attachments []Attachment,
) (e *xerr.Error) {
	if len(attachments) > 0 {
		tl.Log(tl.Warning, palette.Yellow, "SES provider drops '%d' attachment(s)", len(attachments))
	}

	awsCfg, loadErr := awsconfig.LoadDefaultConfig(context.Background())
	if loadErr != nil {
		return xerr.NewError(loadErr, "load AWS config for SES", nil)
	}

	client := sesv2.NewFromConfig(awsCfg)
	output, sendErr := client.SendEmail(context.Background(), &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(sender),
		Destination: &types.Destination{
			ToAddresses: recipients,
		},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{Data: aws.String(subject)},
				Body: &types.Body{
					Text: &types.Content{Data: aws.String(textBody)},
					Html: &types.Content{Data: aws.String(htmlBody)},
				},
			},
		},
	})
	if sendErr != nil {
		return xerr.NewError(sendErr, "send email via SES", recipients)
	}

	tl.Log(tl.Notice, palette.Green, "SES accepted the message, id '%s'", aws.ToString(output.MessageId))
	return nil
}
