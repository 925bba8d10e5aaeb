package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"fyyur/internal/delivery/http/helpers"
	"fyyur/internal/domain"
)

// SearchRequest is the request body of the venue and artist search endpoints.
type SearchRequest struct {
	SearchTerm string `json:"search_term"`
}

// SubmitResponse is the data of a successful form submission.
// Exactly one of the record fields is set.
type SubmitResponse struct {
	Message      string               `json:"message"`
	Redirect     string               `json:"redirect"`
	Venue        *domain.Venue        `json:"venue,omitempty"`
	Artist       *domain.Artist       `json:"artist,omitempty"`
	Show         *domain.Show         `json:"show,omitempty"`
	Availability *domain.Availability `json:"availability,omitempty"`
}

// SubmitSuccessResponse is the success envelope of form submissions (200/201).
type SubmitSuccessResponse struct {
	Data  SubmitResponse    `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// FormErrorResponse is the envelope of a rejected form submission; data.form echoes the input.
type FormErrorResponse struct {
	Data  helpers.FormEcho  `json:"data"`
	Error *helpers.APIError `json:"error"`
}

func listedMessage(kind, name string) string {
	return kind + " " + name + " was successfully listed!"
}

func notListedMessage(kind, name string) string {
	return "An error occurred. " + kind + " " + name + " could not be listed."
}

// writeFormFailure answers a failed venue or artist submission.
func writeFormFailure(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error, resource, failMsg string, form any) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, resource+" not found")
	case errors.Is(err, domain.ErrUnknownGenre):
		helpers.WriteJSONFormError(w, http.StatusUnprocessableEntity, helpers.ErrCodeUnknownGenre, failMsg, form)
	default:
		logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONFormError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, failMsg, form)
	}
}

// writeBookingFailure answers a failed booking workflow. Expected rejections
// answer 422 with the failure kind as code; parseEcho replaces the echoed form
// for parse errors. Anything else is a store failure.
func writeBookingFailure(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error, form, parseEcho any, notListed string) {
	var bookingErr *domain.BookingError
	if errors.As(err, &bookingErr) {
		logger.InfoContext(r.Context(), "booking rejected", "path", r.URL.Path, "kind", string(bookingErr.Kind), "err", err)
		echo := form
		if bookingErr.Kind == domain.BookingParseError {
			echo = parseEcho
		}
		helpers.WriteJSONFormError(w, http.StatusUnprocessableEntity, string(bookingErr.Kind), bookingErr.Message, echo)
		return
	}
	logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
	helpers.WriteJSONFormError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, notListed, form)
}

// writeLookupFailure answers a failed read of a single record.
func writeLookupFailure(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error, resource string) {
	if errors.Is(err, domain.ErrNotFound) {
		helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, resource+" not found")
		return
	}
	logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
	helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
}
