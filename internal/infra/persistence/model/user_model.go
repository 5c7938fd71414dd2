package model

import (
	"time"

	"pescastur/internal/domain/entity"
)

// Field names of a users/{id} document.
const (
	UserFieldUserName          = "nombreUsuario"
	UserFieldFirstName         = "nombre"
	UserFieldLastName          = "apellido"
	UserFieldBirthDate         = "fechaNacimiento"
	UserFieldNationalID        = "DNI"
	UserFieldPhone             = "telefono"
	UserFieldAddress           = "direccion"
	UserFieldCity              = "ciudad"
	UserFieldProvince          = "provincia"
	UserFieldPostalCode        = "codigoPostal"
	UserFieldCountry           = "pais"
	UserFieldRegisteredAt      = "fechaRegistro"
	UserFieldAccountStatus     = "estadoCuenta"
	UserFieldPreferredLanguage = "idiomaPreferido"
	UserFieldProfilePhoto      = "fotoPerfil"
)

// userField binds one document field to one entity.User field.
// value returns nil when the entity field is empty.
type userField struct {
	path  string
	value func(u *entity.User) any
	load  func(u *entity.User, raw any)
}

func stringField(path string, field func(u *entity.User) *string) userField {
	return userField{
		path: path,
		value: func(u *entity.User) any {
			if v := *field(u); v != "" {
				return v
			}

			return nil
		},
		load: func(u *entity.User, raw any) {
			*field(u) = asString(raw)
		},
	}
}

func dateField(path string, field func(u *entity.User) **time.Time) userField {
	return userField{
		path: path,
		value: func(u *entity.User) any {
			if v := *field(u); v != nil {
				return v.UTC()
			}

			return nil
		},
		load: func(u *entity.User, raw any) {
			*field(u) = asTime(raw)
		},
	}
}

// userFields is the single mapping between entity.User and its document.
// Email and password are deliberately absent: they live in the identity provider.
var userFields = []userField{
	stringField(UserFieldUserName, func(u *entity.User) *string { return &u.UserName }),
	stringField(UserFieldFirstName, func(u *entity.User) *string { return &u.FirstName }),
	stringField(UserFieldLastName, func(u *entity.User) *string { return &u.LastName }),
	dateField(UserFieldBirthDate, func(u *entity.User) **time.Time { return &u.BirthDate }),
	stringField(UserFieldNationalID, func(u *entity.User) *string { return &u.NationalID }),
	stringField(UserFieldPhone, func(u *entity.User) *string { return &u.Phone }),
	stringField(UserFieldAddress, func(u *entity.User) *string { return &u.Address }),
	stringField(UserFieldCity, func(u *entity.User) *string { return &u.City }),
	stringField(UserFieldProvince, func(u *entity.User) *string { return &u.Province }),
	stringField(UserFieldPostalCode, func(u *entity.User) *string { return &u.PostalCode }),
	stringField(UserFieldCountry, func(u *entity.User) *string { return &u.Country }),
	dateField(UserFieldRegisteredAt, func(u *entity.User) **time.Time { return &u.RegisteredAt }),
	stringField(UserFieldAccountStatus, func(u *entity.User) *string { return &u.AccountStatus }),
	stringField(UserFieldPreferredLanguage, func(u *entity.User) *string { return &u.PreferredLanguage }),
	stringField(UserFieldProfilePhoto, func(u *entity.User) *string { return &u.ProfilePhoto }),
}

// UserToDocument renders the full document written on registration.
// Empty fields are stored as null so a replace clears them.
func UserToDocument(u *entity.User) map[string]any {
	doc := make(map[string]any, len(userFields))
	for _, f := range userFields {
		doc[f.path] = f.value(u)
	}

	return doc
}

// UserToPatch returns only the fields that carry a value, for merge updates.
func UserToPatch(u *entity.User) map[string]any {
	patch := make(map[string]any, len(userFields))
	for _, f := range userFields {
		if v := f.value(u); v != nil {
			patch[f.path] = v
		}
	}

	return patch
}

// UserFromDocument rebuilds the entity from a document snapshot's data.
func UserFromDocument(id string, data map[string]any) *entity.User {
	u := &entity.User{ID: id}
	for _, f := range userFields {
		if raw, ok := data[f.path]; ok && raw != nil {
			f.load(u, raw)
		}
	}

	return u
}
