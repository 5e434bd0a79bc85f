// in case you need to create an entrypoint with multiple subprograms
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	tl "github.com/tuumbleweed/tintlog/logger"
	"github.com/tuumbleweed/tintlog/palette"
	"github.com/tuumbleweed/xerr"

	"valuation-report/src/pkg/config"
	"valuation-report/src/pkg/email"
	"valuation-report/src/pkg/extract"
	"valuation-report/src/pkg/report"
	"valuation-report/src/pkg/util"
	"valuation-report/src/pkg/workbook"
)

func providerEnvVarsCheck() {
	config.CheckIfEnvVarsPresent(
		"AWS_ACCESS_KEY_ID", "AWS_SECRET_ACCESS_KEY", "AWS_REGION", // amazon ses
		"MAILGUN_DOMAIN", "MAILGUN_API_KEY", // mailgun
		"SENDGRID_API_KEY", // sendgrid
	)
}

/*
Extract and render a workbook, then email the report: inline HTML body
plus the report attached as a file. Recipients default to admin_email
from the config.
*/
func sendReport(subprogram string, flags []string) {
	providerEnvVarsCheck()

	// common flags
	subprogramCmd := flag.NewFlagSet(subprogram, flag.ExitOnError)
	configPath := subprogramCmd.String("config", "./cfg/config.json", "Path to your configuration file.")

	// custom flags
	provider := subprogramCmd.String("provider", "mailgun", "Provider to use when sending emails")
	senderAddress := subprogramCmd.String("sender", "", "Sender's address")
	recipientAddress := subprogramCmd.String("recipient", "", "Recipient's address. Defaults to admin_email from config")
	xlsxPath := subprogramCmd.String("xlsx", "", "Path to the weekly valuation workbook (.xlsx)")
	dryRun := subprogramCmd.Bool("dry-run", false, "Render and log, but do not send")

	// parse and init config
	xerr.QuitIfError(subprogramCmd.Parse(flags), "Unable to subprogramCmd.Parse")
	config.InitializeConfig(*configPath)

	util.RequiredFlag(senderAddress, "sender")
	util.RequiredFlag(xlsxPath, "xlsx")
	util.RequiredFlag(provider, "provider")
	util.EnsureFlags()

	recipients := strings.Split(*recipientAddress, ",")
	if strings.TrimSpace(*recipientAddress) == "" {
		if config.Cfg.AdminEmail == "" {
			tl.Log(tl.Error, palette.Red, "%s and %s", "-recipient is empty", "admin_email is not configured")
			os.Exit(1)
		}
		recipients = []string{config.Cfg.AdminEmail}
	}

	// extract and render
	xlsxBytes, readErr := os.ReadFile(*xlsxPath)
	xerr.QuitIfError(readErr, fmt.Sprintf("Unable to read file '%s'", *xlsxPath))

	wb, e := workbook.LoadWorkbook(xlsxBytes)
	e.QuitIf("error")
	record, e := extract.ProcessWorkbook(wb)
	e.QuitIf("error")

	htmlDocument, fileName := report.Generate(record)

	subject := fmt.Sprintf(
		"Valorizacion semanal %s (%s)",
		record.ShortName, report.FormatDateShort(record.Date),
	)
	textBody := fmt.Sprintf(
		"Reporte de valorizacion semanal de '%s'. Abrir el archivo adjunto '%s' en un navegador.",
		record.ProjectName, fileName,
	)

	attachments := []email.Attachment{{
		FileName:    fileName,
		ContentType: "text/html",
		Data:        []byte(htmlDocument),
	}}

	// send email here
	sendEmails := !*dryRun
	e = email.SendMessage(email.Provider(*provider), &sendEmails, *senderAddress, recipients, subject, textBody, htmlDocument, attachments)
	e.QuitIf("error")
}

/*
Pick provider and use it to send a test email to admin/specified address.
Specify the body files directly (for example a previously generated report).
*/
func testProvider(subprogram string, flags []string) {
	providerEnvVarsCheck()

	// common flags
	subprogramCmd := flag.NewFlagSet(subprogram, flag.ExitOnError)
	configPath := subprogramCmd.String("config", "./cfg/config.json", "Path to your configuration file.")

	// custom flags
	provider := subprogramCmd.String("provider", "mailgun", "Provider to use when sending emails")
	senderAddress := subprogramCmd.String("sender", "", "Sender's address")
	recipientAddress := subprogramCmd.String("recipient", "", "Recipient's address")
	subject := subprogramCmd.String("subject", "Test subject", "Subject of an email")
	emailHtmlFilePath := subprogramCmd.String("html", "./tmp/email.html", "Html of an email")
	emailTextFilePath := subprogramCmd.String("text", "./tmp/email.txt", "Text of an email")

	// parse and init config
	xerr.QuitIfError(subprogramCmd.Parse(flags), "Unable to subprogramCmd.Parse")
	config.InitializeConfig(*configPath)

	util.RequiredFlag(senderAddress, "sender")
	util.RequiredFlag(recipientAddress, "recipient")
	util.RequiredFlag(provider, "provider")
	util.EnsureFlags()

	recipientAddresses := strings.Split(*recipientAddress, ",")

	// read html file
	htmlFileContentBytes, err := os.ReadFile(*emailHtmlFilePath)
	xerr.QuitIfError(err, fmt.Sprintf("Unable to read file '%s'", *emailHtmlFilePath))
	tl.Log(tl.Verbose, palette.BlueDim, "Full Email:\n```\n%s\n```", htmlFileContentBytes)
	// read text file
	textFileContentBytes, err := os.ReadFile(*emailTextFilePath)
	xerr.QuitIfError(err, fmt.Sprintf("Unable to read file '%s'", *emailTextFilePath))
	tl.Log(tl.Verbose, palette.BlueDim, "Full Email:\n```\n%s\n```", textFileContentBytes)

	// send email here
	sendEmails := true
	e := email.SendMessage(email.Provider(*provider), &sendEmails, *senderAddress, recipientAddresses, *subject, string(textFileContentBytes), string(htmlFileContentBytes), nil)
	e.QuitIf("error")
}

func main() {
	// Check if there are enough arguments
	if len(os.Args) < 2 {
		tl.Log(tl.Error, palette.Red, "Usage: %s", "go run src/cmd/send-report/main.go subprogram_name(for example send-report)")
		os.Exit(1)
	}
	subprogram := os.Args[1]
	flags := os.Args[2:]

	// Switch subprogram based on the first argument
	switch subprogram {
	case "send-report":
		sendReport(subprogram, flags)
	case "test-provider":
		testProvider(subprogram, flags)
	default:
		tl.Log(tl.Error, palette.Red, "Unknown subprogram: %s", subprogram)
		os.Exit(1)
	}
}
