// Package email defines the outbound email boundary: the EmailSender
// interface, message parameters with validation, and a development sender
// that writes messages to disk.
//
// Production implementations live under integration/email (SMTP and
// Postmark). The interface keeps the auth subsystem testable and
// provider-agnostic:
//
//	sender := email.NewDevSender("./dev_emails")
//
//	err := sender.SendEmail(ctx, email.SendEmailParams{
//		SendTo:   "user@example.com",
//		Subject:  "Signup successful - account details",
//		BodyHTML: body,
//		Tag:      "signup",
//	})
package email
