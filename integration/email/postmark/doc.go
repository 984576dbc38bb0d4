// Package postmark implements email.EmailSender on the Postmark
// transactional email API.
//
//	cfg := config.MustLoad[postmark.Config]()
//	sender, err := postmark.New(cfg)
//	if err != nil {
//	    return err
//	}
//
//	svc := auth.NewService(authCfg, sessions, tokens, users, cookies,
//	    auth.WithEmailSender(sender),
//	)
package postmark
