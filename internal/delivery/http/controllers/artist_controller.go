package controllers

import (
	"log/slog"
	"net/http"
	"strconv"

	"fyyur/internal/delivery/http/helpers"
	"fyyur/internal/domain"
)

type ArtistController struct {
	Logger  *slog.Logger
	Service domain.ArtistService
	Booking domain.BookingService
}

func NewArtistController(logger *slog.Logger, svc domain.ArtistService, booking domain.BookingService) *ArtistController {
	return &ArtistController{
		Logger:  logger,
		Service: svc,
		Booking: booking,
	}
}

// ListArtists godoc
// @Summary List artists
// @Description Id and name of every artist.
// @Tags artists
// @Produce json
// @Success 200 {object} helpers.APIResponse{data=[]domain.ListingItem}
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /artists [get]
func (c *ArtistController) ListArtists(w http.ResponseWriter, r *http.Request) {
	items, err := c.Service.List(r.Context())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, items)
}

// SearchArtists godoc
// @Summary Search artists
// @Description Case-insensitive partial match on name, city or state. A term of the form "city, state" matches both parts.
// @Tags artists
// @Accept json
// @Produce json
// @Param search body SearchRequest true "Search term"
// @Success 200 {object} helpers.APIResponse{data=domain.SearchResult}
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /artists/search [post]
func (c *ArtistController) SearchArtists(w http.ResponseWriter, r *http.Request) {
	var req SearchRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	res, err := c.Service.Search(r.Context(), req.SearchTerm)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, res)
}

// GetArtist godoc
// @Summary Get an artist
// @Description Artist page: genres, availability windows and past and upcoming shows.
// @Tags artists
// @Produce json
// @Param artistID path int true "Artist ID"
// @Success 200 {object} helpers.APIResponse{data=domain.ArtistDetail}
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /artists/{artistID} [get]
func (c *ArtistController) GetArtist(w http.ResponseWriter, r *http.Request) {
	id, ok := helpers.PathID(w, r, "artistID", "artist")
	if !ok {
		return
	}
	detail, err := c.Service.GetDetail(r.Context(), id)
	if err != nil {
		writeLookupFailure(w, r, c.Logger, err, "artist")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, detail)
}

// CreateArtistForm godoc
// @Summary Empty artist form
// @Tags artists
// @Produce json
// @Success 200 {object} helpers.APIResponse{data=domain.ArtistForm}
// @Router /artists/create [get]
func (c *ArtistController) CreateArtistForm(w http.ResponseWriter, r *http.Request) {
	helpers.WriteJSONSuccess(w, http.StatusOK, domain.ArtistForm{Genres: []string{}})
}

// CreateArtist godoc
// @Summary Create an artist
// @Description Genres must name entries of the genre vocabulary.
// @Tags artists
// @Accept json
// @Produce json
// @Param artist body domain.ArtistForm true "Artist form"
// @Success 201 {object} controllers.SubmitSuccessResponse "data.artist contains the created artist"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 422 {object} controllers.FormErrorResponse "error.code: unknown_genre"
// @Failure 500 {object} controllers.FormErrorResponse "error.code: internal_error"
// @Router /artists/create [post]
func (c *ArtistController) CreateArtist(w http.ResponseWriter, r *http.Request) {
	var form domain.ArtistForm
	if !helpers.DecodeAndValidate(w, r, &form) {
		return
	}
	artist, err := c.Service.Create(r.Context(), form)
	if err != nil {
		writeFormFailure(w, r, c.Logger, err, "artist", notListedMessage("Artist", form.Name), form)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, SubmitResponse{
		Message:  listedMessage("Artist", artist.Name),
		Redirect: domain.LandingRedirect,
		Artist:   artist,
	})
}

// EditArtistForm godoc
// @Summary Prefilled artist form
// @Tags artists
// @Produce json
// @Param artistID path int true "Artist ID"
// @Success 200 {object} helpers.APIResponse{data=domain.ArtistForm}
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /artists/{artistID}/edit [get]
func (c *ArtistController) EditArtistForm(w http.ResponseWriter, r *http.Request) {
	id, ok := helpers.PathID(w, r, "artistID", "artist")
	if !ok {
		return
	}
	form, err := c.Service.GetForm(r.Context(), id)
	if err != nil {
		writeLookupFailure(w, r, c.Logger, err, "artist")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, form)
}

// EditArtist godoc
// @Summary Update an artist
// @Description Replaces every field and the genre set of the artist.
// @Tags artists
// @Accept json
// @Produce json
// @Param artistID path int true "Artist ID"
// @Param artist body domain.ArtistForm true "Artist form"
// @Success 200 {object} controllers.SubmitSuccessResponse "data.redirect points at the artist page"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 422 {object} controllers.FormErrorResponse "error.code: unknown_genre"
// @Failure 500 {object} controllers.FormErrorResponse "error.code: internal_error"
// @Router /artists/{artistID}/edit [post]
func (c *ArtistController) EditArtist(w http.ResponseWriter, r *http.Request) {
	id, ok := helpers.PathID(w, r, "artistID", "artist")
	if !ok {
		return
	}
	var form domain.ArtistForm
	if !helpers.DecodeAndValidate(w, r, &form) {
		return
	}
	artist, err := c.Service.Update(r.Context(), id, form)
	if err != nil {
		writeFormFailure(w, r, c.Logger, err, "artist", notListedMessage("Artist", form.Name), form)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, SubmitResponse{
		Message:  "Artist " + artist.Name + " was successfully updated!",
		Redirect: "/artists/" + strconv.FormatInt(artist.ID, 10),
		Artist:   artist,
	})
}

// DeleteArtist godoc
// @Summary Delete an artist
// @Description Deletes the artist with its shows, availability windows and genre links.
// @Tags artists
// @Produce json
// @Param artistID path int true "Artist ID"
// @Success 200 {object} controllers.SubmitSuccessResponse "data.redirect points at the landing page"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /artists/{artistID} [delete]
func (c *ArtistController) DeleteArtist(w http.ResponseWriter, r *http.Request) {
	id, ok := helpers.PathID(w, r, "artistID", "artist")
	if !ok {
		return
	}
	if err := c.Service.Delete(r.Context(), id); err != nil {
		writeLookupFailure(w, r, c.Logger, err, "artist")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, SubmitResponse{
		Message:  "Artist was successfully deleted!",
		Redirect: domain.LandingRedirect,
	})
}

// AvailabilityFormResponse is the data of GET /artists/{artistID}/availability/create.
type AvailabilityFormResponse struct {
	ArtistID int64                   `json:"artist_id"`
	Form     domain.AvailabilityForm `json:"form"`
}

// CreateAvailabilityForm godoc
// @Summary Empty availability form
// @Tags availability
// @Produce json
// @Param artistID path int true "Artist ID"
// @Success 200 {object} helpers.APIResponse{data=controllers.AvailabilityFormResponse}
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /artists/{artistID}/availability/create [get]
func (c *ArtistController) CreateAvailabilityForm(w http.ResponseWriter, r *http.Request) {
	id, ok := helpers.PathID(w, r, "artistID", "artist")
	if !ok {
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, AvailabilityFormResponse{ArtistID: id})
}

// CreateAvailability godoc
// @Summary Declare an availability window
// @Description Times use the layout "2006-01-02 15:04:05". The window must not overlap another window of the artist, bounds included.
// @Tags availability
// @Accept json
// @Produce json
// @Param artistID path int true "Artist ID"
// @Param availability body domain.AvailabilityForm true "Availability window"
// @Success 201 {object} controllers.SubmitSuccessResponse "data.availability contains the stored window"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 422 {object} controllers.FormErrorResponse "error.code: parse_error, invalid_order, colliding or not_found"
// @Failure 500 {object} controllers.FormErrorResponse "error.code: internal_error"
// @Router /artists/{artistID}/availability/create [post]
func (c *ArtistController) CreateAvailability(w http.ResponseWriter, r *http.Request) {
	id, ok := helpers.PathID(w, r, "artistID", "artist")
	if !ok {
		return
	}
	var form domain.AvailabilityForm
	if !helpers.DecodeAndValidate(w, r, &form) {
		return
	}
	res, err := c.Booking.CreateAvailability(r.Context(), id, form)
	if err != nil {
		writeBookingFailure(w, r, c.Logger, err, form, form, domain.MsgAvailabilityNotListed)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, SubmitResponse{
		Message:      res.Message,
		Redirect:     res.Redirect,
		Availability: res.Availability,
	})
}
