// Package email implementa el envío del formulario de contacto por SMTP.
package email

// Sender envía un email con cuerpo HTML y texto plano.
type Sender interface {
	Send(to, subject, htmlBody, textBody string) error
}

// SMTPConfig contiene la configuración para conectarse a un servidor SMTP.
type SMTPConfig struct {
	Host      string `yaml:"host"`
	Port      int    `yaml:"port"`       // default 587
	Username  string `yaml:"username"`   // Usuario para autenticación
	Password  string `yaml:"password"`   // Password (plain)
	FromEmail string `yaml:"from_email"` // Email del remitente
	ToEmail   string `yaml:"to_email"`   // Destino del formulario de contacto
	TLSMode   string `yaml:"tls_mode"`   // "auto" | "starttls" | "ssl" | "none"
}
