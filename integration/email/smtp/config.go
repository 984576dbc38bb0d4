package smtp

// Config holds SMTP server configuration. Everything is required so a
// misconfigured sender fails at startup, not on the first signup.
type Config struct {
	Host        string `env:"SMTP_HOST,required"`
	Port        int    `env:"SMTP_PORT" envDefault:"587"`
	Username    string `env:"SMTP_USERNAME,required"`
	Password    string `env:"SMTP_PASSWORD,required"`
	TLSMode     string `env:"SMTP_TLS_MODE" envDefault:"starttls"` // starttls, tls, or plain
	SenderEmail string `env:"SMTP_SENDER_EMAIL,required"`
	SenderName  string `env:"SMTP_SENDER_NAME" envDefault:""`
	ReplyTo     string `env:"SMTP_REPLY_TO" envDefault:""`
}
