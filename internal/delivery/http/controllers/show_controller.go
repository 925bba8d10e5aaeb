package controllers

import (
	"log/slog"
	"net/http"

	"fyyur/internal/delivery/http/helpers"
	"fyyur/internal/domain"
)

type ShowController struct {
	Logger  *slog.Logger
	Service domain.ShowService
	Booking domain.BookingService
}

func NewShowController(logger *slog.Logger, svc domain.ShowService, booking domain.BookingService) *ShowController {
	return &ShowController{
		Logger:  logger,
		Service: svc,
		Booking: booking,
	}
}

// ListShows godoc
// @Summary List shows
// @Description Every show with its artist and venue, ordered by start time.
// @Tags shows
// @Produce json
// @Success 200 {object} helpers.APIResponse{data=[]domain.ShowView}
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /shows [get]
func (c *ShowController) ListShows(w http.ResponseWriter, r *http.Request) {
	shows, err := c.Service.List(r.Context())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, shows)
}

// CreateShowForm godoc
// @Summary Empty show form
// @Tags shows
// @Produce json
// @Success 200 {object} helpers.APIResponse{data=domain.ShowForm}
// @Router /shows/create [get]
func (c *ShowController) CreateShowForm(w http.ResponseWriter, r *http.Request) {
	helpers.WriteJSONSuccess(w, http.StatusOK, domain.ShowForm{})
}

// CreateShow godoc
// @Summary Book a show
// @Description Books an artist at a venue. The show must lie inside one availability window of the artist and must not overlap another show of the artist, bounds included. Times use the layout "2006-01-02 15:04:05".
// @Tags shows
// @Accept json
// @Produce json
// @Param show body domain.ShowForm true "Show booking"
// @Success 201 {object} controllers.SubmitSuccessResponse "data.show contains the booked show"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 422 {object} controllers.FormErrorResponse "error.code: parse_error, invalid_order, outside_availability, colliding or not_found"
// @Failure 500 {object} controllers.FormErrorResponse "error.code: internal_error"
// @Router /shows/create [post]
func (c *ShowController) CreateShow(w http.ResponseWriter, r *http.Request) {
	var form domain.ShowForm
	if !helpers.DecodeAndValidate(w, r, &form) {
		return
	}
	res, err := c.Booking.CreateShow(r.Context(), form)
	if err != nil {
		writeBookingFailure(w, r, c.Logger, err, form, domain.ShowForm{}, domain.MsgShowNotListed)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, SubmitResponse{
		Message:  res.Message,
		Redirect: res.Redirect,
		Show:     res.Show,
	})
}
