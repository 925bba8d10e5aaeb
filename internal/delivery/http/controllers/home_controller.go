package controllers

import (
	"log/slog"
	"net/http"

	"fyyur/internal/delivery/http/helpers"
	"fyyur/internal/domain"
)

// recentLimit is how many artists and venues the landing page shows.
const recentLimit = 10

// HomeResponse is the data of the landing page.
type HomeResponse struct {
	Artists []*domain.ListingItem `json:"artists"`
	Venues  []*domain.ListingItem `json:"venues"`
}

type HomeController struct {
	Logger  *slog.Logger
	Venues  domain.VenueService
	Artists domain.ArtistService
	Genres  domain.GenreService
}

func NewHomeController(logger *slog.Logger, venues domain.VenueService, artists domain.ArtistService, genres domain.GenreService) *HomeController {
	return &HomeController{
		Logger:  logger,
		Venues:  venues,
		Artists: artists,
		Genres:  genres,
	}
}

// Home godoc
// @Summary Landing page
// @Description The most recently listed artists and venues, newest first.
// @Tags home
// @Produce json
// @Success 200 {object} helpers.APIResponse{data=controllers.HomeResponse}
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router / [get]
func (c *HomeController) Home(w http.ResponseWriter, r *http.Request) {
	artists, err := c.Artists.ListRecent(r.Context(), recentLimit)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	venues, err := c.Venues.ListRecent(r.Context(), recentLimit)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, HomeResponse{Artists: artists, Venues: venues})
}

// ListGenres godoc
// @Summary List genres
// @Description The genre vocabulary accepted by the venue and artist forms.
// @Tags genres
// @Produce json
// @Success 200 {object} helpers.APIResponse{data=[]domain.Genre}
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /genres [get]
func (c *HomeController) ListGenres(w http.ResponseWriter, r *http.Request) {
	genres, err := c.Genres.List(r.Context())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, genres)
}
