// Package entity contains the core business objects of the shop.
package entity

import "time"

// User is a registered customer. Credentials belong to the identity provider;
// the remaining fields form the user's details document.
type User struct {
	ID                string      `json:"uid,omitempty"`        // External ID assigned by the identity provider.
	UserName          string      `json:"userName"`             // Login name, stored as nombreUsuario.
	Email             string      `json:"email,omitempty"`      // Login email, never stored with the details.
	Password          string      `json:"-"`                    // Only travels towards the identity provider.
	FirstName         string      `json:"nombre"`
	LastName          string      `json:"apellido"`
	BirthDate         *time.Time  `json:"fechaNacimiento"`
	NationalID        string      `json:"DNI"`                  // National identity document number.
	Phone             string      `json:"telefono"`
	Address           string      `json:"direccion"`
	City              string      `json:"ciudad"`
	Province          string      `json:"provincia"`
	PostalCode        string      `json:"codigoPostal"`
	Country           string      `json:"pais"`
	RegisteredAt      *time.Time  `json:"fechaRegistro"`
	AccountStatus     string      `json:"estadoCuenta"`         // Free-form account state (activo, suspendido...).
	PreferredLanguage string      `json:"idiomaPreferido"`
	ProfilePhoto      string      `json:"fotoPerfil,omitempty"` // Storage key of the profile image.
	ProfileImage      *FileUpload `json:"-"`                    // New profile image attached to the request, if any.
}

// AccountUpdate carries the credential changes sent to the identity provider.
// Empty Email or Password leave the current value untouched.
type AccountUpdate struct {
	Email         string
	Password      string
	EmailVerified bool
	Disabled      bool
}
