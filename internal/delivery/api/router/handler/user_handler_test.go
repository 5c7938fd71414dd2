package handler

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"pescastur/internal/domain/entity"
	domainerrors "pescastur/internal/domain/errors"
	mockUsecase "pescastur/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestUserHandler(t *testing.T) (*UserHandler, *mockUsecase.MockUserUsecase) {
	userUC := mockUsecase.NewMockUserUsecase(t)

	return NewUserHandler(UserHandlerParams{UserUC: userUC, Logger: newDiscardLogger()}), userUC
}

// newMultipartRequest builds a multipart POST with the given fields and an optional file.
func newMultipartRequest(t *testing.T, target string, fields map[string]string, fileField, fileName string, content []byte) *http.Request {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	for key, value := range fields {
		require.NoError(t, writer.WriteField(key, value))
	}
	if fileField != "" {
		part, err := writer.CreateFormFile(fileField, fileName)
		require.NoError(t, err)
		_, err = part.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, target, &body)
	req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())

	return req
}

func TestUserHandler_RegisterUser(t *testing.T) {
	fields := map[string]string{
		"email":           "ana@pescastur.es",
		"password":        "secret1",
		"userName":        "ana",
		"nombre":          "Ana",
		"fechaNacimiento": "1990-05-15",
		"fechaRegistro":   "01/11/2024",
		"ciudad":          "Gijón",
	}

	t.Run("registered", func(t *testing.T) {
		h, uc := newTestUserHandler(t)
		uc.EXPECT().
			RegisterUser(mock.Anything, mock.MatchedBy(func(u *entity.User) bool {
				return u.Email == "ana@pescastur.es" &&
					u.Password == "secret1" &&
					u.City == "Gijón" &&
					u.BirthDate != nil && u.BirthDate.Equal(time.Date(1990, 5, 15, 0, 0, 0, 0, time.UTC)) &&
					u.RegisteredAt != nil && u.RegisteredAt.Month() == time.November &&
					u.ProfileImage != nil && u.ProfileImage.Filename == "ana.jpg" && len(u.ProfileImage.Content) == 3
			})).
			Return(nil)

		req := newMultipartRequest(t, "/api/users/register", fields, "file", "ana.jpg", []byte{1, 2, 3})
		rec := httptest.NewRecorder()

		require.NoError(t, h.RegisterUser(newTestEcho().NewContext(req, rec)))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Usuario registrado correctamente y detalles guardados en Firestore.", decodeEnvelope(t, rec).Data["message"])
	})

	t.Run("missing photo is reported by the use case", func(t *testing.T) {
		h, uc := newTestUserHandler(t)
		uc.EXPECT().
			RegisterUser(mock.Anything, mock.MatchedBy(func(u *entity.User) bool { return u.ProfileImage == nil })).
			Return(domainerrors.ErrProfilePhotoRequired)

		req := newMultipartRequest(t, "/api/users/register", fields, "", "", nil)
		rec := httptest.NewRecorder()

		require.NoError(t, h.RegisterUser(newTestEcho().NewContext(req, rec)))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "La foto de perfil es obligatoria.", decodeEnvelope(t, rec).Error.Message)
	})

	t.Run("unparseable date", func(t *testing.T) {
		h, _ := newTestUserHandler(t)

		req := newMultipartRequest(t, "/api/users/register", map[string]string{
			"email":           "ana@pescastur.es",
			"fechaNacimiento": "15 de mayo",
		}, "file", "ana.jpg", []byte{1})
		rec := httptest.NewRecorder()

		require.NoError(t, h.RegisterUser(newTestEcho().NewContext(req, rec)))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "INVALID_DATE", decodeEnvelope(t, rec).Error.Code)
	})
}

func TestUserHandler_UpdateUserAuth(t *testing.T) {
	t.Run("null users", func(t *testing.T) {
		h, _ := newTestUserHandler(t)

		req := httptest.NewRequest(http.MethodPost, "/api/users/update-auth", strings.NewReader(`{"newUser":{"email":"b@pescastur.es"}}`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()

		require.NoError(t, h.UpdateUserAuth(newTestEcho().NewContext(req, rec)))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Error: Los datos de usuario son nulos.", decodeEnvelope(t, rec).Error.Message)
	})

	t.Run("updated", func(t *testing.T) {
		h, uc := newTestUserHandler(t)
		uc.EXPECT().
			UpdateUserAuth(mock.Anything,
				&entity.User{Email: "b@pescastur.es", Password: "secret2"},
				&entity.User{Email: "a@pescastur.es"},
			).
			Return(nil)

		body := `{"newUser":{"email":"b@pescastur.es","password":"secret2"},"oldUser":{"email":"a@pescastur.es"}}`
		req := httptest.NewRequest(http.MethodPost, "/api/users/update-auth", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()

		require.NoError(t, h.UpdateUserAuth(newTestEcho().NewContext(req, rec)))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Datos de autenticación actualizados.", decodeEnvelope(t, rec).Data["message"])
	})
}

func TestUserHandler_UpdateUserDetails_JSON(t *testing.T) {
	h, uc := newTestUserHandler(t)
	uc.EXPECT().
		UpdateUserDetails(mock.Anything, mock.MatchedBy(func(u *entity.User) bool {
			return u.Email == "ana@pescastur.es" && u.City == "Oviedo" && u.ProfileImage == nil
		})).
		Return(nil)

	req := httptest.NewRequest(http.MethodPost, "/api/users/update-details", strings.NewReader(`{"email":"ana@pescastur.es","ciudad":"Oviedo"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	require.NoError(t, h.UpdateUserDetails(newTestEcho().NewContext(req, rec)))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestUserHandler_UpdateUserDetails_MultipartPhoto(t *testing.T) {
	h, uc := newTestUserHandler(t)
	uc.EXPECT().
		UpdateUserDetails(mock.Anything, mock.MatchedBy(func(u *entity.User) bool {
			return u.ProfileImage != nil && u.ProfileImage.Filename == "nueva.png"
		})).
		Return(nil)

	req := newMultipartRequest(t, "/api/users/update-details", map[string]string{"email": "ana@pescastur.es"}, "fotoPerfil", "nueva.png", []byte{9})
	rec := httptest.NewRecorder()

	require.NoError(t, h.UpdateUserDetails(newTestEcho().NewContext(req, rec)))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestUserHandler_DeleteUser(t *testing.T) {
	t.Run("deleted", func(t *testing.T) {
		h, uc := newTestUserHandler(t)
		uc.EXPECT().DeleteUser(mock.Anything, "ana@pescastur.es").Return(nil)

		req := httptest.NewRequest(http.MethodPost, "/api/users/delete", strings.NewReader(`{"email":"ana@pescastur.es"}`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()

		require.NoError(t, h.DeleteUser(newTestEcho().NewContext(req, rec)))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Usuario eliminado.", decodeEnvelope(t, rec).Data["message"])
	})

	t.Run("unknown user", func(t *testing.T) {
		h, uc := newTestUserHandler(t)
		uc.EXPECT().DeleteUser(mock.Anything, "ana@pescastur.es").Return(domainerrors.ErrUserNotFound)

		req := httptest.NewRequest(http.MethodPost, "/api/users/delete", strings.NewReader(`{"email":"ana@pescastur.es"}`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()

		require.NoError(t, h.DeleteUser(newTestEcho().NewContext(req, rec)))

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestUserHandler_Authenticate(t *testing.T) {
	t.Run("valid token", func(t *testing.T) {
		h, uc := newTestUserHandler(t)
		uc.EXPECT().Authenticate(mock.Anything, "tok").Return("uid-1", nil)

		req := httptest.NewRequest(http.MethodPost, "/api/users/authenticate", strings.NewReader(`{"idToken":"tok"}`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()

		require.NoError(t, h.Authenticate(newTestEcho().NewContext(req, rec)))

		assert.Equal(t, http.StatusOK, rec.Code)
		env := decodeEnvelope(t, rec)
		assert.Equal(t, "Autenticación exitosa", env.Data["message"])
		assert.Equal(t, "uid-1", env.Data["uid"])
	})

	t.Run("rejected token", func(t *testing.T) {
		h, uc := newTestUserHandler(t)
		uc.EXPECT().Authenticate(mock.Anything, "tok").Return("", domainerrors.ErrAuthenticationFailed)

		req := httptest.NewRequest(http.MethodPost, "/api/users/authenticate", strings.NewReader(`{"idToken":"tok"}`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()

		require.NoError(t, h.Authenticate(newTestEcho().NewContext(req, rec)))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "Error de autenticación", decodeEnvelope(t, rec).Error.Message)
	})
}

func TestParseDate(t *testing.T) {
	for _, value := range []string{"1990-05-15", "15-05-1990", "15/05/1990", "1990-05-15T00:00:00Z"} {
		parsed, err := parseDate(value)
		require.NoError(t, err, value)
		assert.Equal(t, 1990, parsed.Year(), value)
		assert.Equal(t, time.May, parsed.Month(), value)
	}

	parsed, err := parseDate("")
	require.NoError(t, err)
	assert.Nil(t, parsed)

	_, err = parseDate("mayo")
	assert.Error(t, err)
}
