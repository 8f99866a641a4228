package utils

import (
	"fmt"
	"log"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"elevated/config"
)

// SendEmail delivers a single HTML email through SendGrid. When no API
// key is configured the send is skipped and logged, so development
// environments work without credentials.
func SendEmail(toEmail, toName, subject, htmlBody string) error {
	if config.AppConfig.SendGridKey == "" {
		log.Printf("Skipping email %q to %s: SENDGRID_API_KEY not set", subject, toEmail)
		return nil
	}

	from := mail.NewEmail("Elevated", config.AppConfig.EmailSender)
	to := mail.NewEmail(toName, toEmail)
	message := mail.NewSingleEmail(from, subject, to, "", htmlBody)

	client := sendgrid.NewSendClient(config.AppConfig.SendGridKey)
	response, err := client.Send(message)
	if err != nil {
		log.Printf("Error sending email to %s: %v", toEmail, err)
		return err
	}
	if response.StatusCode >= 400 {
		log.Printf("SendGrid rejected email to %s: %d %s", toEmail, response.StatusCode, response.Body)
		return fmt.Errorf("sendgrid returned status %d", response.StatusCode)
	}
	return nil
}

func emailTemplate(title, bodyContent string) string {
	return fmt.Sprintf(`
	<!DOCTYPE html>
	<html>
	<head>
		<style>
			body { font-family: 'Helvetica Neue', Helvetica, Arial, sans-serif; background-color: #F6F6F6; margin: 0; padding: 0; }
			.container { max-width: 600px; margin: 40px auto; background: #FFFFFF; border-radius: 8px; overflow: hidden; }
			.header { background-color: #1A1A40; padding: 30px; text-align: center; }
			.header h1 { color: #FFFFFF; margin: 0; font-size: 24px; letter-spacing: 1px; }
			.content { padding: 40px 30px; color: #1A1A40; line-height: 1.6; }
			.footer { background-color: #F6F6F6; padding: 20px; text-align: center; font-size: 12px; color: #666666; }
			.btn { display: inline-block; padding: 12px 24px; background-color: #6D28D9; color: #FFFFFF; text-decoration: none; border-radius: 4px; font-weight: bold; margin-top: 20px; }
		</style>
	</head>
	<body>
		<div class="container">
			<div class="header">
				<h1>ELEVATED</h1>
			</div>
			<div class="content">
				<h2>%s</h2>
				%s
			</div>
			<div class="footer">
				&copy; 2026 Elevated Learning. All rights reserved.
			</div>
		</div>
	</body>
	</html>
	`, title, bodyContent)
}

// SendCertificateEmail notifies a learner that their certificate is ready.
func SendCertificateEmail(email, name, courseTitle, certificateURL string) {
	if email == "" {
		return
	}
	subject := "Your Certificate is Ready: " + courseTitle
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Congratulations on completing <strong>%s</strong>!</p>
		<p>Your certificate has been issued and is ready to download.</p>
		<a href="%s" class="btn">View Certificate</a>
	`, name, courseTitle, certificateURL)

	go SendEmail(email, name, subject, emailTemplate("Congratulations!", body))
}

// SendSessionReminderEmail reminds a learner about an upcoming live session.
func SendSessionReminderEmail(email, name, sessionTitle, instructorName string, joinURL string) {
	if email == "" {
		return
	}
	subject := "Starting Soon: " + sessionTitle
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p><strong>%s</strong> with %s starts within the next 24 hours.</p>
		<a href="%s" class="btn">Join Session</a>
	`, name, sessionTitle, instructorName, joinURL)

	go SendEmail(email, name, subject, emailTemplate("Live Session Reminder", body))
}
