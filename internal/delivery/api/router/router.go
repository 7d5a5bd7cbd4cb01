// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"funnel/config"
	"funnel/internal/delivery/api/middleware"
	"funnel/internal/delivery/api/response"
	"funnel/internal/delivery/api/router/handler"
	"funnel/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
	"golang.org/x/time/rate"
)

type RouterParams struct {
	fx.In

	AccountHandler *handler.AccountHandler
	LeadHandler    *handler.LeadHandler
	ContactHandler *handler.ContactHandler
	AuthHandler    *handler.AuthHandler
	HealthHandler  *handler.HealthHandler
	AuthMiddleware *middleware.AuthMiddleware
	Registry       *prometheus.Registry
	Config         *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	accountHandler *handler.AccountHandler
	leadHandler    *handler.LeadHandler
	contactHandler *handler.ContactHandler
	authHandler    *handler.AuthHandler
	healthHandler  *handler.HealthHandler
	authMiddleware *middleware.AuthMiddleware
	registry       *prometheus.Registry
	config         *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		accountHandler: params.AccountHandler,
		leadHandler:    params.LeadHandler,
		contactHandler: params.ContactHandler,
		authHandler:    params.AuthHandler,
		healthHandler:  params.HealthHandler,
		authMiddleware: params.AuthMiddleware,
		registry:       params.Registry,
		config:         params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/", r.healthHandler.Root)
	e.GET("/health", r.healthHandler.Health)

	if r.config.Metrics != nil && r.config.Metrics.Enabled {
		e.GET(r.config.Metrics.Path, echo.WrapHandler(metrics.Handler(r.registry)))
	}

	authGroup := e.Group("/auth")
	{
		limited := authGroup.Group("", r.authRateLimiter()...)
		limited.POST("/register", r.authHandler.Register)
		limited.POST("/login", r.authHandler.Login)

		authGroup.GET("/me", r.authHandler.Me, r.authMiddleware.Authenticate)
	}

	// Resource routes attach the caller when a token is sent, or demand one with requireAuth.
	protect := r.authMiddleware.OptionalAuthenticate
	if r.config.Auth != nil && r.config.Auth.RequireAuth {
		protect = r.authMiddleware.Authenticate
	}

	accountsGroup := e.Group("/accounts", protect)
	{
		accountsGroup.GET("", r.accountHandler.ListAccounts)
		accountsGroup.POST("", r.accountHandler.CreateAccount)
		accountsGroup.GET("/:id", r.accountHandler.GetAccount)
		accountsGroup.PUT("/:id", r.accountHandler.UpdateAccount)
		accountsGroup.DELETE("/:id", r.accountHandler.DeleteAccount)
		accountsGroup.GET("/:id/contacts", r.accountHandler.ListAccountContacts)
	}

	leadsGroup := e.Group("/leads", protect)
	{
		leadsGroup.GET("", r.leadHandler.ListLeads)
		leadsGroup.POST("", r.leadHandler.CreateLead)
		leadsGroup.GET("/:id", r.leadHandler.GetLead)
		leadsGroup.PUT("/:id", r.leadHandler.UpdateLead)
		leadsGroup.DELETE("/:id", r.leadHandler.DeleteLead)

		leadsGroup.GET("/contacts/account/:account_id", r.leadHandler.ListAccountLeads)
		leadsGroup.POST("/contacts/account/:account_id/lead/:lead_id", r.leadHandler.AddContactToAccount)
		leadsGroup.DELETE("/contacts/account/:account_id/lead/:lead_id", r.leadHandler.RemoveContactFromAccount)

		leadsGroup.GET("/:id/details", r.leadHandler.GetLeadDetails)
		leadsGroup.PUT("/:id/details", r.leadHandler.UpsertLeadDetails)
		leadsGroup.DELETE("/:id/details", r.leadHandler.DeleteLeadDetails)

		leadsGroup.GET("/:id/notes", r.leadHandler.ListLeadNotes)
		leadsGroup.POST("/:id/notes", r.leadHandler.AddLeadNote)
		leadsGroup.DELETE("/:id/notes/:note_id", r.leadHandler.DeleteLeadNote)

		leadsGroup.GET("/:id/products", r.leadHandler.ListLeadProducts)
		leadsGroup.POST("/:id/products", r.leadHandler.AddLeadProduct)
		leadsGroup.PUT("/:id/products/:product_id", r.leadHandler.UpdateLeadProduct)
		leadsGroup.DELETE("/:id/products/:product_id", r.leadHandler.DeleteLeadProduct)
	}

	contactsGroup := e.Group("/contacts", protect)
	{
		contactsGroup.GET("", r.contactHandler.ListContacts)
		contactsGroup.POST("", r.contactHandler.CreateContact)
		contactsGroup.GET("/:id", r.contactHandler.GetContact)
		contactsGroup.PUT("/:id", r.contactHandler.UpdateContact)
		contactsGroup.DELETE("/:id", r.contactHandler.DeleteContact)
	}
}

// authRateLimiter throttles credential endpoints per client IP. A zero rate disables it.
func (r *router) authRateLimiter() []echo.MiddlewareFunc {
	cfg := r.config.HTTP.AuthRateLimit
	if cfg.Rate <= 0 {
		return nil
	}

	store := echomiddleware.NewRateLimiterMemoryStoreWithConfig(echomiddleware.RateLimiterMemoryStoreConfig{
		Rate:      rate.Limit(cfg.Rate),
		Burst:     cfg.Burst,
		ExpiresIn: cfg.ExpiresIn,
	})

	return []echo.MiddlewareFunc{echomiddleware.RateLimiterWithConfig(echomiddleware.RateLimiterConfig{
		Store: store,
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return response.TooManyRequests(c, "Unable to identify client")
		},
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			return response.TooManyRequests(c, "Too many requests, slow down")
		},
	})}
}
