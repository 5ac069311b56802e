package email

import (
	"fmt"
	"html"
	"strings"
)

// ContactService arma y despacha los mensajes del formulario de contacto
// hacia la casilla configurada.
type ContactService struct {
	sender Sender
	to     string
}

// NewContactService crea el service del formulario de contacto.
func NewContactService(sender Sender, to string) *ContactService {
	return &ContactService{sender: sender, to: to}
}

// Send arma el email a partir del formulario. El contenido viene del
// usuario, así que el HTML se escapa completo.
func (s *ContactService) Send(name, from, subject, message string) error {
	text := fmt.Sprintf("From: %s <%s>\n\n%s", name, from, message)

	var b strings.Builder
	b.WriteString("<p><strong>From:</strong> ")
	b.WriteString(html.EscapeString(name))
	b.WriteString(" &lt;")
	b.WriteString(html.EscapeString(from))
	b.WriteString("&gt;</p><p>")
	b.WriteString(html.EscapeString(message))
	b.WriteString("</p>")

	return s.sender.Send(s.to, subject, b.String(), text)
}

// NoopSender descarta los emails. Para dev y tests.
type NoopSender struct{}

func (NoopSender) Send(to, subject, htmlBody, textBody string) error { return nil }
