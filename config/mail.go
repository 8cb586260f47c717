package config

// MailConfig contains SMTP configuration for the contact form.
// Contact-form submissions are relayed to Recipient via the configured host.
type MailConfig struct {
	Host     string `env:"SMTP_HOST" envDefault:"smtp.gmail.com"`
	Port     int    `env:"SMTP_PORT" envDefault:"587"`
	Username string `env:"USERNAME"`
	Password string `env:"PASSWORD"`

	// Recipient is the mailbox contact-form messages are delivered to.
	// Defaults to Username when empty.
	Recipient string `env:"RECIPIENT"`
}

// To returns the delivery mailbox, falling back to the SMTP username.
func (c MailConfig) To() string {
	if c.Recipient != "" {
		return c.Recipient
	}
	return c.Username
}

// Enabled reports whether mail dispatch is configured.
func (c MailConfig) Enabled() bool {
	return c.Host != "" && c.Username != ""
}
