package handler

import (
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"pescastur/internal/delivery/api/response"
	"pescastur/internal/domain/entity"
	domainerrors "pescastur/internal/domain/errors"
	"pescastur/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	registerImageField = "file"
	updateImageField   = "fotoPerfil"
)

// dateLayouts are tried in order when parsing form dates.
var dateLayouts = []string{time.DateOnly, "02-01-2006", "02/01/2006", time.RFC3339}

// UserHandlerParams holds dependencies for UserHandler, injected by Fx.
type UserHandlerParams struct {
	fx.In

	UserUC usecase.UserUsecase
	Logger *slog.Logger
}

// UserHandler holds dependencies for user-related handlers
type UserHandler struct {
	userUC usecase.UserUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler
func NewUserHandler(params UserHandlerParams) *UserHandler {
	return &UserHandler{
		userUC: params.UserUC,
		logger: params.Logger,
	}
}

// UserForm carries the user fields of register and update-details, sent
// either as multipart form fields or as JSON.
type UserForm struct {
	Email             string `json:"email" form:"email"`
	Password          string `json:"password" form:"password"`
	UserName          string `json:"userName" form:"userName"`
	FirstName         string `json:"nombre" form:"nombre"`
	LastName          string `json:"apellido" form:"apellido"`
	BirthDate         string `json:"fechaNacimiento" form:"fechaNacimiento"`
	NationalID        string `json:"DNI" form:"DNI"`
	Phone             string `json:"telefono" form:"telefono"`
	Address           string `json:"direccion" form:"direccion"`
	City              string `json:"ciudad" form:"ciudad"`
	Province          string `json:"provincia" form:"provincia"`
	PostalCode        string `json:"codigoPostal" form:"codigoPostal"`
	Country           string `json:"pais" form:"pais"`
	RegisteredAt      string `json:"fechaRegistro" form:"fechaRegistro"`
	AccountStatus     string `json:"estadoCuenta" form:"estadoCuenta"`
	PreferredLanguage string `json:"idiomaPreferido" form:"idiomaPreferido"`
}

// CredentialsRequest is one side of an update-auth request
type CredentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UpdateAuthRequest represents the request body of update-auth
type UpdateAuthRequest struct {
	NewUser *CredentialsRequest `json:"newUser"`
	OldUser *CredentialsRequest `json:"oldUser"`
}

// DeleteUserRequest represents the request body of delete
type DeleteUserRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// AuthenticateRequest represents the request body of authenticate
type AuthenticateRequest struct {
	IDToken string `json:"idToken" validate:"required"`
}

// AuthenticateResponse is returned for a valid ID token
type AuthenticateResponse struct {
	Message string `json:"message"`
	UID     string `json:"uid"`
}

// RegisterUser handles POST /api/users/register
func (h *UserHandler) RegisterUser(c echo.Context) error {
	user, err := h.bindUser(c, registerImageField)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.userUC.RegisterUser(c.Request().Context(), user); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Message(c, "Usuario registrado correctamente y detalles guardados en Firestore.")
}

// UpdateUserAuth handles POST /api/users/update-auth
func (h *UserHandler) UpdateUserAuth(c echo.Context) error {
	var req UpdateAuthRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid user input")
	}

	if req.NewUser == nil || req.OldUser == nil {
		return response.HandleAppError(c, domainerrors.ErrNullUserData)
	}

	err := h.userUC.UpdateUserAuth(c.Request().Context(),
		&entity.User{Email: req.NewUser.Email, Password: req.NewUser.Password},
		&entity.User{Email: req.OldUser.Email},
	)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Message(c, "Datos de autenticación actualizados.")
}

// UpdateUserDetails handles POST /api/users/update-details
func (h *UserHandler) UpdateUserDetails(c echo.Context) error {
	user, err := h.bindUser(c, updateImageField)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.userUC.UpdateUserDetails(c.Request().Context(), user); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Message(c, "Detalles del usuario actualizados correctamente.")
}

// DeleteUser handles POST /api/users/delete
func (h *UserHandler) DeleteUser(c echo.Context) error {
	var req DeleteUserRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid user input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.userUC.DeleteUser(c.Request().Context(), req.Email); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Message(c, "Usuario eliminado.")
}

// Authenticate handles POST /api/users/authenticate
func (h *UserHandler) Authenticate(c echo.Context) error {
	var req AuthenticateRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid token input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	uid, err := h.userUC.Authenticate(c.Request().Context(), req.IDToken)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, AuthenticateResponse{
		Message: "Autenticación exitosa",
		UID:     uid,
	})
}

// GetUserDetails handles GET /api/users/:uid/details
func (h *UserHandler) GetUserDetails(c echo.Context) error {
	user, err := h.userUC.GetUserDetails(c.Request().Context(), c.Param("uid"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, user)
}

// GetProfilePhoto handles GET /api/users/:uid/photo
func (h *UserHandler) GetProfilePhoto(c echo.Context) error {
	photo, err := h.userUC.GetProfilePhoto(c.Request().Context(), c.Param("uid"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"fotoPerfil": photo})
}

// bindUser reads the user fields and, for multipart requests, the image in imageField.
func (h *UserHandler) bindUser(c echo.Context, imageField string) (*entity.User, error) {
	var form UserForm
	if err := c.Bind(&form); err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("invalid user input")
	}

	birthDate, err := parseDate(form.BirthDate)
	if err != nil {
		return nil, domainerrors.ErrInvalidDate.WithDetails("fechaNacimiento")
	}
	registeredAt, err := parseDate(form.RegisteredAt)
	if err != nil {
		return nil, domainerrors.ErrInvalidDate.WithDetails("fechaRegistro")
	}

	user := &entity.User{
		Email:             form.Email,
		Password:          form.Password,
		UserName:          form.UserName,
		FirstName:         form.FirstName,
		LastName:          form.LastName,
		BirthDate:         birthDate,
		NationalID:        form.NationalID,
		Phone:             form.Phone,
		Address:           form.Address,
		City:              form.City,
		Province:          form.Province,
		PostalCode:        form.PostalCode,
		Country:           form.Country,
		RegisteredAt:      registeredAt,
		AccountStatus:     form.AccountStatus,
		PreferredLanguage: form.PreferredLanguage,
	}

	if isMultipart(c) {
		fileHeader, err := c.FormFile(imageField)
		switch {
		case errors.Is(err, http.ErrMissingFile):
			// the use case decides whether the image is required
		case err != nil:
			return nil, domainerrors.ErrValidationFailed.WithDetails(imageField + ": unreadable file")
		default:
			image, err := readUpload(fileHeader)
			if err != nil {
				h.logger.Warn("Failed to read uploaded image", slog.Any("error", err))

				return nil, domainerrors.ErrValidationFailed.WithDetails(imageField + ": unreadable file")
			}
			user.ProfileImage = image
		}
	}

	return user, nil
}

func isMultipart(c echo.Context) bool {
	return strings.HasPrefix(c.Request().Header.Get(echo.HeaderContentType), echo.MIMEMultipartForm)
}

func parseDate(value string) (*time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}

	for _, layout := range dateLayouts {
		if parsed, err := time.Parse(layout, value); err == nil {
			return &parsed, nil
		}
	}

	return nil, errors.Errorf("unsupported date %q", value)
}

func readUpload(fileHeader *multipart.FileHeader) (*entity.FileUpload, error) {
	file, err := fileHeader.Open()
	if err != nil {
		return nil, errors.WithStack(err)
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return &entity.FileUpload{
		Filename:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get(echo.HeaderContentType),
		Content:     content,
	}, nil
}
