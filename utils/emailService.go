package utils

import (
	"certhub/config"
	"certhub/database"
	"certhub/models"
	"fmt"
	"log"
	"net/http"

	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"
)

// SendEmail delivers one HTML email through SendGrid and records the attempt
// on the notifications table. Delivery is best-effort everywhere in the app:
// callers fire this in a goroutine and never fail their own operation on an
// email error.
func SendEmail(to []string, subject, htmlBody, kind string) error {
	from := sgmail.NewEmail("CertHub", config.AppConfig.EmailSender)

	p := sgmail.NewPersonalization()
	for _, addr := range to {
		p.AddTos(sgmail.NewEmail("", addr))
	}
	p.Subject = subject

	m := sgmail.NewV3Mail()
	m.SetFrom(from)
	m.AddPersonalizations(p)
	m.AddContent(sgmail.NewContent("text/html", htmlBody))

	client := sendgrid.NewSendClient(config.AppConfig.SendgridApiKey)
	resp, err := client.Send(m)
	if err == nil && resp.StatusCode >= http.StatusBadRequest {
		err = fmt.Errorf("sendgrid returned status %d: %s", resp.StatusCode, resp.Body)
	}

	for _, addr := range to {
		recordNotification(addr, subject, kind, err)
	}

	if err != nil {
		log.Printf("Error sending email (%s): %v", kind, err)
		return err
	}
	return nil
}

// recordNotification writes the delivery-log row; failures here are only
// logged
func recordNotification(recipient, subject, kind string, sendErr error) {
	n := models.Notification{
		Recipient: recipient,
		Subject:   subject,
		Kind:      kind,
		Status:    "SENT",
	}
	if sendErr != nil {
		n.Status = "FAILED"
		n.Error = sendErr.Error()
	}
	if err := database.Database.Db.Create(&n).Error; err != nil {
		log.Printf("Failed to record notification: %v", err)
	}
}

// HTML wrapper shared by every trigger
func getEmailTemplate(title string, bodyContent string) string {
	return fmt.Sprintf(`
	<!DOCTYPE html>
	<html>
	<head>
		<style>
			body { font-family: 'Helvetica Neue', Helvetica, Arial, sans-serif; background-color: #F6F6F6; margin: 0; padding: 0; }
			.container { max-width: 600px; margin: 40px auto; background: #FFFFFF; border-radius: 8px; overflow: hidden; box-shadow: 0 4px 15px rgba(0,0,0,0.05); }
			.header { background-color: #1B3A57; padding: 30px; text-align: center; }
			.header h1 { color: #FFFFFF; margin: 0; font-size: 24px; letter-spacing: 1px; }
			.content { padding: 40px 30px; color: #1B3A57; line-height: 1.6; }
			.content h2 { color: #1B3A57; margin-top: 0; }
			.footer { background-color: #F6F6F6; padding: 20px; text-align: center; font-size: 12px; color: #666666; border-top: 1px solid #E0E0E0; }
			.btn { display: inline-block; padding: 12px 24px; background-color: #C8102E; color: #FFFFFF; text-decoration: none; border-radius: 4px; font-weight: bold; margin-top: 20px; }
			.info-box { background: #E8F0FE; padding: 15px; border-radius: 4px; border-left: 4px solid #C8102E; margin: 20px 0; }
		</style>
	</head>
	<body>
		<div class="container">
			<div class="header">
				<h1>CERTHUB</h1>
			</div>
			<div class="content">
				<h2>%s</h2>
				%s
			</div>
			<div class="footer">
				&copy; 2026 CertHub. All rights reserved.
			</div>
		</div>
	</body>
	</html>
	`, title, bodyContent)
}

// --- Triggers ---

// 1. Welcome / Signup
func SendWelcomeEmail(email, name string) {
	subject := "Welcome to CertHub"
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Welcome to <strong>CertHub</strong>! Your account has been created.</p>
		<p>You can now submit certificate requests, upload rosters, and track your team's certifications.</p>
	`, name)

	go SendEmail([]string{email}, subject, getEmailTemplate("Welcome Onboard!", body), "WELCOME")
}

// 2. Login Notification
func SendLoginNotificationEmail(email, name, ip, device, timeStr string) {
	subject := "New Login Alert"
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>We noticed a new login to your account.</p>
		<div class="info-box">
			<ul style="list-style: none; padding: 0; margin: 0;">
				<li style="margin-bottom: 8px;"><strong>Time:</strong> %s</li>
				<li style="margin-bottom: 8px;"><strong>IP Address:</strong> %s</li>
				<li><strong>Device:</strong> %s</li>
			</ul>
		</div>
		<p>If this was you, you can safely ignore this email.</p>
		<p style="color: #DC3545; font-weight: bold;">If you did not authorize this login, please contact support immediately.</p>
	`, name, timeStr, ip, device)

	go SendEmail([]string{email}, subject, getEmailTemplate("New Login Detected", body), "LOGIN_ALERT")
}

// 3. Roster Submitted (to the uploader)
func SendRosterSubmittedEmail(email, name, rosterName string, requestCount int) {
	subject := "Roster Submitted: " + rosterName
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Your roster <strong>%s</strong> has been submitted.</p>
		<div class="info-box">
			<strong>%d certificate request(s)</strong> were created and are now pending review.
		</div>
		<p>You will be notified as requests are approved.</p>
	`, name, rosterName, requestCount)

	go SendEmail([]string{email}, subject, getEmailTemplate("Roster Submitted", body), "ROSTER_SUBMITTED")
}

// 4. Request Approved (to the recipient)
func SendRequestApprovedEmail(email, name, courseName, certificateNumber string) {
	subject := "Certificate Issued: " + courseName
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Your certificate request for <strong>%s</strong> has been approved.</p>
		<div class="info-box">
			<strong>Certificate Number:</strong> %s
		</div>
		<p>Your certificate document will be available shortly.</p>
	`, name, courseName, certificateNumber)

	go SendEmail([]string{email}, subject, getEmailTemplate("Certificate Issued", body), "REQUEST_APPROVED")
}

// 5. Request Rejected (to the submitter)
func SendRequestRejectedEmail(email, name, courseName, reason string) {
	subject := "Certificate Request Rejected: " + courseName
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Unfortunately, the certificate request for <strong>%s</strong> was rejected.</p>
		<div style="color: #dc3545; font-weight: bold;">Reason: %s</div>
		<p>Please correct the issue and submit again.</p>
	`, name, courseName, reason)

	go SendEmail([]string{email}, subject, getEmailTemplate("Request Rejected", body), "REQUEST_REJECTED")
}

// 6. Support Ticket Reply
func SendTicketReplyEmail(email, name, ticketTitle, message string) {
	subject := "New Reply on: " + ticketTitle
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>There is a new reply on your support ticket <strong>%s</strong>.</p>
		<div class="info-box"><em>"%s"</em></div>
		<p>Login to view the full thread.</p>
	`, name, ticketTitle, message)

	go SendEmail([]string{email}, subject, getEmailTemplate("Support Update", body), "TICKET_REPLY")
}
