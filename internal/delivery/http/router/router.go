// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"guildhall/internal/delivery/http/middleware"
	"guildhall/internal/delivery/http/router/handler"
	"guildhall/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
)

// RouterParams holds the handlers the router registers, injected by Fx.
type RouterParams struct {
	fx.In

	AuthHandler         *handler.AuthHandler
	PlayerHandler       *handler.PlayerHandler
	RetailerHandler     *handler.RetailerHandler
	ConnectionHandler   *handler.ConnectionHandler
	CampaignHandler     *handler.CampaignHandler
	TournamentHandler   *handler.TournamentHandler
	GameAccountHandler  *handler.GameAccountHandler
	ContentHandler      *handler.ContentHandler
	NotificationHandler *handler.NotificationHandler
	AuthMiddleware      *middleware.AuthMiddleware
	Metrics             *metrics.Metrics
}

// router holds all the handlers that need to be registered.
type router struct {
	params RouterParams
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{params: params}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check and metrics endpoints
	e.GET("/health", handler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(
		r.params.Metrics.Registry,
		promhttp.HandlerOpts{},
	)))

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.params.AuthHandler.Register)
		authGroup.POST("/login", r.params.AuthHandler.Login)
		authGroup.POST("/google", r.params.AuthHandler.GoogleSignIn)
		authGroup.POST("/refresh", r.params.AuthHandler.Refresh)
	}

	// Public catalog and content routes
	retailerGroup := e.Group("/retailers")
	{
		retailerGroup.GET("", r.params.RetailerHandler.ListRetailers)
		retailerGroup.POST("/nearby", r.params.RetailerHandler.FindNearby)
		retailerGroup.GET("/:retailerID", r.params.RetailerHandler.GetRetailer)
		retailerGroup.GET("/:retailerID/qr", r.params.RetailerHandler.ConnectQR)
	}

	e.GET("/campaigns", r.params.CampaignHandler.ListOpen)
	e.GET("/campaigns/:campaignID", r.params.CampaignHandler.GetCampaign)
	e.GET("/tournaments", r.params.TournamentHandler.ListUpcoming)
	e.GET("/tournaments/:tournamentID", r.params.TournamentHandler.GetTournament)
	e.GET("/conventions", r.params.ContentHandler.ListConventions)
	e.GET("/blog", r.params.ContentHandler.ListPosts)
	e.GET("/blog/:slug", r.params.ContentHandler.GetPost)

	// Profile routes for the authenticated account's own player
	meGroup := e.Group("/players/me")
	meGroup.Use(r.params.AuthMiddleware.Authenticate)
	{
		meGroup.GET("", r.params.PlayerHandler.GetProfile)
		meGroup.PATCH("", r.params.PlayerHandler.UpdateProfile)
	}

	// Player-scoped routes; each usecase verifies that the addressed player
	// belongs to the authenticated account.
	playerGroup := e.Group("/players/:playerID")
	playerGroup.Use(r.params.AuthMiddleware.Authenticate)
	{
		playerGroup.GET("/retailers", r.params.ConnectionHandler.ListConnected)
		playerGroup.GET("/retailers/available", r.params.ConnectionHandler.ListAvailable)
		playerGroup.POST("/retailers/:retailerID", r.params.ConnectionHandler.Connect)
		playerGroup.DELETE("/retailers/:retailerID", r.params.ConnectionHandler.Disconnect)

		playerGroup.GET("/campaigns", r.params.CampaignHandler.ListMemberships)
		playerGroup.POST("/campaigns/:campaignID", r.params.CampaignHandler.Join)
		playerGroup.DELETE("/campaigns/:campaignID", r.params.CampaignHandler.Leave)

		playerGroup.GET("/tournaments", r.params.TournamentHandler.ListEntries)
		playerGroup.POST("/tournaments/:tournamentID", r.params.TournamentHandler.Register)
		playerGroup.DELETE("/tournaments/:tournamentID", r.params.TournamentHandler.Withdraw)

		playerGroup.GET("/game-accounts", r.params.GameAccountHandler.ListGameAccounts)
		playerGroup.POST("/game-accounts", r.params.GameAccountHandler.AddGameAccount)
		playerGroup.DELETE("/game-accounts/:gameAccountID", r.params.GameAccountHandler.RemoveGameAccount)

		playerGroup.GET("/notifications", r.params.NotificationHandler.ListNotifications)
		playerGroup.POST("/notifications/:notificationID/read", r.params.NotificationHandler.MarkRead)
	}
}
