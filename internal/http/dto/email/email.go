// Package email define el body del formulario de contacto.
package email

// SendRequest es el body de POST /email. Los cuatro campos son requeridos.
type SendRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// SendResponse confirma el envío.
type SendResponse struct {
	Message string `json:"message"`
}
