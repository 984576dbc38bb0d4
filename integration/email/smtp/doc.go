// Package smtp implements email.EmailSender over plain SMTP with
// configurable transport security (STARTTLS by default, implicit TLS, or
// unencrypted for local relays).
//
//	cfg := config.MustLoad[smtp.Config]()
//	sender, err := smtp.New(cfg)
//	if err != nil {
//	    return err
//	}
//
//	svc := auth.NewService(authCfg, sessions, tokens, users, cookies,
//	    auth.WithEmailSender(sender),
//	)
package smtp
