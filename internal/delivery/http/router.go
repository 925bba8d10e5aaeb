package http

import (
	"log/slog"
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"fyyur/internal/delivery/http/controllers"
	"fyyur/internal/delivery/http/middleware"
)

// Controllers bundles the handlers mounted by NewRouter.
type Controllers struct {
	Home    *controllers.HomeController
	Venues  *controllers.VenueController
	Artists *controllers.ArtistController
	Shows   *controllers.ShowController
}

// NewRouter initializes the HTTP router with all application routes
func NewRouter(c Controllers) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", c.Home.Home)
	mux.HandleFunc("GET /genres", c.Home.ListGenres)

	// Venues
	mux.HandleFunc("GET /venues", c.Venues.ListVenues)
	mux.HandleFunc("POST /venues/search", c.Venues.SearchVenues)
	mux.HandleFunc("GET /venues/create", c.Venues.CreateVenueForm)
	mux.HandleFunc("POST /venues/create", c.Venues.CreateVenue)
	mux.HandleFunc("GET /venues/{venueID}", c.Venues.GetVenue)
	mux.HandleFunc("DELETE /venues/{venueID}", c.Venues.DeleteVenue)
	mux.HandleFunc("GET /venues/{venueID}/edit", c.Venues.EditVenueForm)
	mux.HandleFunc("POST /venues/{venueID}/edit", c.Venues.EditVenue)

	// Artists
	mux.HandleFunc("GET /artists", c.Artists.ListArtists)
	mux.HandleFunc("POST /artists/search", c.Artists.SearchArtists)
	mux.HandleFunc("GET /artists/create", c.Artists.CreateArtistForm)
	mux.HandleFunc("POST /artists/create", c.Artists.CreateArtist)
	mux.HandleFunc("GET /artists/{artistID}", c.Artists.GetArtist)
	mux.HandleFunc("DELETE /artists/{artistID}", c.Artists.DeleteArtist)
	mux.HandleFunc("GET /artists/{artistID}/edit", c.Artists.EditArtistForm)
	mux.HandleFunc("POST /artists/{artistID}/edit", c.Artists.EditArtist)
	mux.HandleFunc("GET /artists/{artistID}/availability/create", c.Artists.CreateAvailabilityForm)
	mux.HandleFunc("POST /artists/{artistID}/availability/create", c.Artists.CreateAvailability)

	// Shows
	mux.HandleFunc("GET /shows", c.Shows.ListShows)
	mux.HandleFunc("GET /shows/create", c.Shows.CreateShowForm)
	mux.HandleFunc("POST /shows/create", c.Shows.CreateShow)

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}

// HandlerConfig configures the middleware stack of NewHandler.
type HandlerConfig struct {
	AllowedOrigins []string
	RateLimitRPS   float64
	RateLimitBurst int
}

// NewHandler wraps the router in the middleware stack. Outermost first:
// request id, logging, CORS, rate limiting.
func NewHandler(logger *slog.Logger, cfg HandlerConfig, c Controllers) http.Handler {
	var h http.Handler = NewRouter(c)
	h = middleware.RateLimit(middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst), logger, h)
	h = middleware.CORS(cfg.AllowedOrigins, h)
	h = middleware.LoggingMiddleware(logger, h)
	return middleware.RequestID(h)
}
