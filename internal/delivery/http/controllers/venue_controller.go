package controllers

import (
	"log/slog"
	"net/http"
	"strconv"

	"fyyur/internal/delivery/http/helpers"
	"fyyur/internal/domain"
)

type VenueController struct {
	Logger  *slog.Logger
	Service domain.VenueService
}

func NewVenueController(logger *slog.Logger, svc domain.VenueService) *VenueController {
	return &VenueController{
		Logger:  logger,
		Service: svc,
	}
}

// ListVenues godoc
// @Summary List venues by area
// @Description Venues grouped by (city, state), each with its number of upcoming shows.
// @Tags venues
// @Produce json
// @Success 200 {object} helpers.APIResponse{data=[]domain.VenueArea}
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /venues [get]
func (c *VenueController) ListVenues(w http.ResponseWriter, r *http.Request) {
	areas, err := c.Service.ListByArea(r.Context())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, areas)
}

// SearchVenues godoc
// @Summary Search venues
// @Description Case-insensitive partial match on name, city or state. A term of the form "city, state" matches both parts.
// @Tags venues
// @Accept json
// @Produce json
// @Param search body SearchRequest true "Search term"
// @Success 200 {object} helpers.APIResponse{data=domain.SearchResult}
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /venues/search [post]
func (c *VenueController) SearchVenues(w http.ResponseWriter, r *http.Request) {
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

// GetVenue godoc
// @Summary Get a venue
// @Description Venue page: genres, contact fields and its past and upcoming shows.
// @Tags venues
// @Produce json
// @Param venueID path int true "Venue ID"
// @Success 200 {object} helpers.APIResponse{data=domain.VenueDetail}
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /venues/{venueID} [get]
func (c *VenueController) GetVenue(w http.ResponseWriter, r *http.Request) {
	id, ok := helpers.PathID(w, r, "venueID", "venue")
	if !ok {
		return
	}
	detail, err := c.Service.GetDetail(r.Context(), id)
	if err != nil {
		writeLookupFailure(w, r, c.Logger, err, "venue")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, detail)
}

// CreateVenueForm godoc
// @Summary Empty venue form
// @Tags venues
// @Produce json
// @Success 200 {object} helpers.APIResponse{data=domain.VenueForm}
// @Router /venues/create [get]
func (c *VenueController) CreateVenueForm(w http.ResponseWriter, r *http.Request) {
	helpers.WriteJSONSuccess(w, http.StatusOK, domain.VenueForm{Genres: []string{}})
}

// CreateVenue godoc
// @Summary Create a venue
// @Description Genres must name entries of the genre vocabulary.
// @Tags venues
// @Accept json
// @Produce json
// @Param venue body domain.VenueForm true "Venue form"
// @Success 201 {object} controllers.SubmitSuccessResponse "data.venue contains the created venue"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 422 {object} controllers.FormErrorResponse "error.code: unknown_genre"
// @Failure 500 {object} controllers.FormErrorResponse "error.code: internal_error"
// @Router /venues/create [post]
func (c *VenueController) CreateVenue(w http.ResponseWriter, r *http.Request) {
	var form domain.VenueForm
	if !helpers.DecodeAndValidate(w, r, &form) {
		return
	}
	venue, err := c.Service.Create(r.Context(), form)
	if err != nil {
		writeFormFailure(w, r, c.Logger, err, "venue", notListedMessage("Venue", form.Name), form)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, SubmitResponse{
		Message:  listedMessage("Venue", venue.Name),
		Redirect: domain.LandingRedirect,
		Venue:    venue,
	})
}

// EditVenueForm godoc
// @Summary Prefilled venue form
// @Tags venues
// @Produce json
// @Param venueID path int true "Venue ID"
// @Success 200 {object} helpers.APIResponse{data=domain.VenueForm}
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /venues/{venueID}/edit [get]
func (c *VenueController) EditVenueForm(w http.ResponseWriter, r *http.Request) {
	id, ok := helpers.PathID(w, r, "venueID", "venue")
	if !ok {
		return
	}
	form, err := c.Service.GetForm(r.Context(), id)
	if err != nil {
		writeLookupFailure(w, r, c.Logger, err, "venue")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, form)
}

// EditVenue godoc
// @Summary Update a venue
// @Description Replaces every field and the genre set of the venue.
// @Tags venues
// @Accept json
// @Produce json
// @Param venueID path int true "Venue ID"
// @Param venue body domain.VenueForm true "Venue form"
// @Success 200 {object} controllers.SubmitSuccessResponse "data.redirect points at the venue page"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 422 {object} controllers.FormErrorResponse "error.code: unknown_genre"
// @Failure 500 {object} controllers.FormErrorResponse "error.code: internal_error"
// @Router /venues/{venueID}/edit [post]
func (c *VenueController) EditVenue(w http.ResponseWriter, r *http.Request) {
	id, ok := helpers.PathID(w, r, "venueID", "venue")
	if !ok {
		return
	}
	var form domain.VenueForm
	if !helpers.DecodeAndValidate(w, r, &form) {
		return
	}
	venue, err := c.Service.Update(r.Context(), id, form)
	if err != nil {
		writeFormFailure(w, r, c.Logger, err, "venue", notListedMessage("Venue", form.Name), form)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, SubmitResponse{
		Message:  "Venue " + venue.Name + " was successfully updated!",
		Redirect: "/venues/" + strconv.FormatInt(venue.ID, 10),
		Venue:    venue,
	})
}

// DeleteVenue godoc
// @Summary Delete a venue
// @Description Deletes the venue with its shows and genre links.
// @Tags venues
// @Produce json
// @Param venueID path int true "Venue ID"
// @Success 200 {object} controllers.SubmitSuccessResponse "data.redirect points at the landing page"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /venues/{venueID} [delete]
func (c *VenueController) DeleteVenue(w http.ResponseWriter, r *http.Request) {
	id, ok := helpers.PathID(w, r, "venueID", "venue")
	if !ok {
		return
	}
	if err := c.Service.Delete(r.Context(), id); err != nil {
		writeLookupFailure(w, r, c.Logger, err, "venue")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, SubmitResponse{
		Message:  "Venue was successfully deleted!",
		Redirect: domain.LandingRedirect,
	})
}
