package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/sbilibin2017/tcg-trading-api/docs"
	"github.com/sbilibin2017/tcg-trading-api/internal/handlers"
	"github.com/sbilibin2017/tcg-trading-api/internal/middlewares"
)

// authService covers the three auth endpoints.
type authService interface {
	handlers.Registerer
	handlers.Loginer
	handlers.Logouter
}

// routerDeps collects everything the route table needs.
type routerDeps struct {
	DB       *sqlx.DB
	Tokener  middlewares.Tokener
	Denylist middlewares.TokenDenylist
	Admins   middlewares.AdminChecker

	Auth       authService
	Cards      handlers.CardManager
	Sets       handlers.SetManager
	Rarities   handlers.RarityManager
	Conditions handlers.ConditionManager
	Statuses   handlers.StatusReader
	Users      handlers.UserManager
	UserCards  handlers.UserCardManager
	Wishlists  handlers.WishlistManager
	Trades     handlers.TradeManager

	SwaggerURL string
}

// crudRoutes are the five handlers of a REST collection.
type crudRoutes struct {
	list, get, create, update, remove http.HandlerFunc
}

// mount registers a collection under path. Reads are public, writes go
// through the guard chain.
func (c crudRoutes) mount(r chi.Router, path string, guards ...func(http.Handler) http.Handler) {
	r.Route(path, func(r chi.Router) {
		r.Get("/", c.list)
		r.Get("/{id}", c.get)

		w := r.With(guards...)
		w.Post("/", c.create)
		w.Put("/{id}", c.update)
		w.Patch("/{id}", c.update)
		w.Delete("/{id}", c.remove)
	})
}

func newRouter(d routerDeps) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware)

	authMW := middlewares.AuthMiddleware(d.Tokener, d.Denylist)
	adminMW := middlewares.AdminMiddleware(d.Admins)
	txMW := middlewares.TxMiddleware(d.DB)

	// Public routes
	r.Get("/health", handlers.NewHealthHandler(d.DB))
	r.With(txMW).Post("/auth/register", handlers.NewRegisterHandler(d.Auth))
	r.Post("/auth/login", handlers.NewLoginHandler(d.Auth))

	// Protected routes with JWT middleware
	r.With(authMW).Post("/auth/logout", handlers.NewLogoutHandler(d.Auth))

	adminOnly := []func(http.Handler) http.Handler{authMW, adminMW, txMW}

	crudRoutes{
		list:   handlers.NewListCardsHandler(d.Cards),
		get:    handlers.NewGetCardHandler(d.Cards),
		create: handlers.NewCreateCardHandler(d.Cards),
		update: handlers.NewUpdateCardHandler(d.Cards),
		remove: handlers.NewDeleteCardHandler(d.Cards),
	}.mount(r, "/cards", adminOnly...)

	crudRoutes{
		list:   handlers.NewListSetsHandler(d.Sets),
		get:    handlers.NewGetSetHandler(d.Sets),
		create: handlers.NewCreateSetHandler(d.Sets),
		update: handlers.NewUpdateSetHandler(d.Sets),
		remove: handlers.NewDeleteSetHandler(d.Sets),
	}.mount(r, "/sets", adminOnly...)

	crudRoutes{
		list:   handlers.NewListRaritiesHandler(d.Rarities),
		get:    handlers.NewGetRarityHandler(d.Rarities),
		create: handlers.NewCreateRarityHandler(d.Rarities),
		update: handlers.NewUpdateRarityHandler(d.Rarities),
		remove: handlers.NewDeleteRarityHandler(d.Rarities),
	}.mount(r, "/rarities", adminOnly...)

	crudRoutes{
		list:   handlers.NewListConditionsHandler(d.Conditions),
		get:    handlers.NewGetConditionHandler(d.Conditions),
		create: handlers.NewCreateConditionHandler(d.Conditions),
		update: handlers.NewUpdateConditionHandler(d.Conditions),
		remove: handlers.NewDeleteConditionHandler(d.Conditions),
	}.mount(r, "/conditions", adminOnly...)

	crudRoutes{
		list:   handlers.NewListUsersHandler(d.Users),
		get:    handlers.NewGetUserHandler(d.Users),
		create: handlers.NewCreateUserHandler(d.Users),
		update: handlers.NewUpdateUserHandler(d.Users),
		remove: handlers.NewDeleteUserHandler(d.Users),
	}.mount(r, "/users", adminOnly...)

	crudRoutes{
		list:   handlers.NewListUserCardsHandler(d.UserCards),
		get:    handlers.NewGetUserCardHandler(d.UserCards),
		create: handlers.NewCreateUserCardHandler(d.UserCards),
		update: handlers.NewUpdateUserCardHandler(d.UserCards),
		remove: handlers.NewDeleteUserCardHandler(d.UserCards),
	}.mount(r, "/user-cards", adminOnly...)

	crudRoutes{
		list:   handlers.NewListWishlistsHandler(d.Wishlists),
		get:    handlers.NewGetWishlistHandler(d.Wishlists),
		create: handlers.NewCreateWishlistHandler(d.Wishlists),
		update: handlers.NewUpdateWishlistHandler(d.Wishlists),
		remove: handlers.NewDeleteWishlistHandler(d.Wishlists),
	}.mount(r, "/wishlists", adminOnly...)

	crudRoutes{
		list:   handlers.NewListTradesHandler(d.Trades),
		get:    handlers.NewGetTradeHandler(d.Trades),
		create: handlers.NewCreateTradeHandler(d.Trades),
		update: handlers.NewUpdateTradeHandler(d.Trades),
		remove: handlers.NewDeleteTradeHandler(d.Trades),
	}.mount(r, "/trades", adminOnly...)

	// Statuses are fixed by the schema check constraint.
	r.Route("/statuses", func(r chi.Router) {
		r.Get("/", handlers.NewListStatusesHandler(d.Statuses))
		r.Get("/{id}", handlers.NewGetStatusHandler(d.Statuses))
	})

	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL(d.SwaggerURL)))

	return r
}
