package config

import "time"

type Config struct {
	HTTPConfig
	MailConfig
	EmailJSConfig
	TelegramConfig
}

type HTTPConfig struct {
	Addr         string        `envconfig:"HTTP_ADDR" default:":8080"`
	ReadTimeout  time.Duration `envconfig:"HTTP_READ_TIMEOUT" default:"15s"`
	WriteTimeout time.Duration `envconfig:"HTTP_WRITE_TIMEOUT" default:"60s"`
	LogLevel     string        `envconfig:"LOG_LEVEL" default:"info"`
}

// MailConfig drives the server relay. Driver is "smtp" or "gmail". Every
// value is optional at startup; the relay refuses to send without them.
type MailConfig struct {
	Driver            string `envconfig:"MAIL_DRIVER" default:"smtp"`
	Account           string `envconfig:"NAVER_EMAIL" masked:"true"`
	AppPassword       string `envconfig:"NAVER_APP_PASSWORD" masked:"true"`
	Receiver          string `envconfig:"RECEIVER_EMAIL" masked:"true"`
	SMTPHost          string `envconfig:"SMTP_HOST" default:"smtp.naver.com"`
	SMTPPort          int    `envconfig:"SMTP_PORT" default:"587"`
	CredentialsBase64 string `envconfig:"GMAIL_CREDENTIALS_BASE64" masked:"true"`
}

// EmailJSConfig values are public identifiers, not secrets.
type EmailJSConfig struct {
	ServiceID  string `envconfig:"EMAILJS_SERVICE_ID"`
	TemplateID string `envconfig:"EMAILJS_TEMPLATE_ID"`
	PublicKey  string `envconfig:"EMAILJS_PUBLIC_KEY"`
	Endpoint   string `envconfig:"EMAILJS_ENDPOINT" default:"https://api.emailjs.com/api/v1.0/email/send"`
}

type TelegramConfig struct {
	BotToken string `envconfig:"TELEGRAM_BOT_TOKEN" masked:"true"`
	Admins   string `envconfig:"TELEGRAM_ADMINS" masked:"true"`
}
