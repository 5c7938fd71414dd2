// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"pescastur/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler    *handler.UserHandler
	ProductHandler *handler.ProductHandler
	EmailHandler   *handler.EmailHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler    *handler.UserHandler
	productHandler *handler.ProductHandler
	emailHandler   *handler.EmailHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:    params.UserHandler,
		productHandler: params.ProductHandler,
		emailHandler:   params.EmailHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")

	emailGroup := api.Group("/email")
	{
		emailGroup.POST("/send", r.emailHandler.SendEmail)
	}

	productsGroup := api.Group("/products")
	{
		productsGroup.GET("/all", r.productHandler.GetAllProducts)
		productsGroup.GET("/:uid", r.productHandler.GetProduct)
		productsGroup.GET("/:uid/photo", r.productHandler.GetProductPhoto)
		productsGroup.PATCH("/addCommentToComments", r.productHandler.AddCommentToComments)
		productsGroup.PATCH("/addRatingToRatings", r.productHandler.AddRatingToRatings)
		productsGroup.POST("/update-stocks", r.productHandler.UpdateStocks)
	}

	usersGroup := api.Group("/users")
	{
		usersGroup.POST("/register", r.userHandler.RegisterUser)
		usersGroup.POST("/update-auth", r.userHandler.UpdateUserAuth)
		usersGroup.POST("/update-details", r.userHandler.UpdateUserDetails)
		usersGroup.POST("/delete", r.userHandler.DeleteUser)
		usersGroup.POST("/authenticate", r.userHandler.Authenticate)
		usersGroup.GET("/:uid/details", r.userHandler.GetUserDetails)
		usersGroup.GET("/:uid/photo", r.userHandler.GetProfilePhoto)
	}
}
