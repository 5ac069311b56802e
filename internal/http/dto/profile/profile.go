// Package profile define los bodies de /profiles.
package profile

// Profile es la vista pública del perfil.
type Profile struct {
	ID        string `json:"id"`
	AccountID string `json:"accountId"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// UpdateRequest es el body de PUT /profiles/{profileID}.
type UpdateRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}
