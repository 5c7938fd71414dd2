package model

import (
	"testing"
	"time"

	"pescastur/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserToDocument_RemapsUserNameAndSkipsCredentials(t *testing.T) {
	birth := time.Date(1990, 5, 15, 0, 0, 0, 0, time.UTC)
	user := &entity.User{
		UserName:  "ana90",
		Email:     "ana@example.com",
		Password:  "secret",
		FirstName: "Ana",
		BirthDate: &birth,
	}

	doc := UserToDocument(user)

	assert.Equal(t, "ana90", doc[UserFieldUserName])
	assert.Equal(t, "Ana", doc[UserFieldFirstName])
	assert.Equal(t, birth, doc[UserFieldBirthDate])
	assert.NotContains(t, doc, "userName")
	assert.NotContains(t, doc, "email")
	assert.NotContains(t, doc, "password")
	// every mapped field is present on a full replace
	assert.Len(t, doc, len(userFields))
	assert.Nil(t, doc[UserFieldProfilePhoto])
}

func TestUserToPatch_OnlyNonEmptyFields(t *testing.T) {
	patch := UserToPatch(&entity.User{City: "Gijón", ProfilePhoto: "k-foto.png"})

	assert.Equal(t, map[string]any{
		UserFieldCity:         "Gijón",
		UserFieldProfilePhoto: "k-foto.png",
	}, patch)
}

func TestUserFromDocument(t *testing.T) {
	registered := time.Date(2024, 11, 1, 0, 0, 0, 0, time.UTC)
	user := UserFromDocument("uid-1", map[string]any{
		UserFieldUserName:     "ana90",
		UserFieldPostalCode:   int64(33201),
		UserFieldRegisteredAt: registered,
		UserFieldBirthDate:    "1990-05-15",
		UserFieldProfilePhoto: nil,
	})

	assert.Equal(t, "uid-1", user.ID)
	assert.Equal(t, "ana90", user.UserName)
	assert.Equal(t, "33201", user.PostalCode)
	require.NotNil(t, user.RegisteredAt)
	assert.True(t, registered.Equal(*user.RegisteredAt))
	require.NotNil(t, user.BirthDate)
	assert.Equal(t, 1990, user.BirthDate.Year())
	assert.Empty(t, user.ProfilePhoto)
}

func TestProductFromDocument_TolerantTypes(t *testing.T) {
	product := ProductFromDocument("UID1", map[string]any{
		ProductFieldName:     "Caña telescópica",
		ProductFieldPrice:    int64(20),
		ProductFieldCost:     10.5,
		ProductFieldStock:    int64(100),
		ProductFieldWeight:   1.2,
		ProductFieldComments: []any{"bueno", "muy bueno"},
		ProductFieldRatings:  []any{int64(5), int64(4)},
	})

	assert.Equal(t, "UID1", product.ID)
	assert.Equal(t, "Caña telescópica", product.Name)
	assert.InDelta(t, 20.0, product.Price, 0.0001)
	assert.InDelta(t, 10.5, product.Cost, 0.0001)
	assert.Equal(t, 100, product.Stock)
	assert.Equal(t, "1.2", product.Weight)
	assert.Equal(t, []string{"bueno", "muy bueno"}, product.Comments)
	assert.Equal(t, []int{5, 4}, product.Ratings)
}

func TestProductFromDocument_ScalarRating(t *testing.T) {
	product := ProductFromDocument("UID2", map[string]any{ProductFieldRatings: int64(3)})

	assert.Equal(t, []int{3}, product.Ratings)
	assert.Nil(t, product.Comments)
}

func TestProductToDocument_DropsQuantity(t *testing.T) {
	doc := ProductToDocument(&entity.Product{ID: "UID1", Stock: 10, Quantity: 3})

	assert.Equal(t, int64(10), doc[ProductFieldStock])
	assert.NotContains(t, doc, "cantidad")
	assert.Equal(t, []string{}, doc[ProductFieldComments])
	assert.Equal(t, []int64{}, doc[ProductFieldRatings])
}
