package domain

import "context"

// User-facing booking messages. The ordering message is shown when start is
// after end; its wording is kept as the product team wrote it.
const (
	MsgShowListed            = "Show was successfully listed!"
	MsgShowNotListed         = "Show was not listed!"
	MsgInvalidOrder          = "Start Time is less than equal to End time"
	MsgOutsideAvailability   = "Outside Artist Availability, Show was not listed!"
	MsgShowCollision         = "Artist Availability already occupied, Show was not listed!"
	MsgAvailabilityListed    = "Availability was successfully listed!"
	MsgAvailabilityNotListed = "Availability was not listed!"
	MsgAvailabilityCollision = "Availability Collide!"
	LandingRedirect          = "/"
)

// BookingErrorKind names the terminal failure state of a booking workflow.
type BookingErrorKind string

const (
	BookingParseError          BookingErrorKind = "parse_error"
	BookingInvalidOrder        BookingErrorKind = "invalid_order"
	BookingOutsideAvailability BookingErrorKind = "outside_availability"
	BookingColliding           BookingErrorKind = "colliding"
	BookingNotFound            BookingErrorKind = "not_found"
)

// BookingError is an expected rejection of a booking. Err is one of the
// booking sentinels (or ErrNotFound), possibly wrapped with detail.
type BookingError struct {
	Kind    BookingErrorKind
	Message string
	Err     error
}

// NewBookingError returns a BookingError of the given kind.
func NewBookingError(kind BookingErrorKind, message string, err error) *BookingError {
	return &BookingError{Kind: kind, Message: message, Err: err}
}

func (e *BookingError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return e.Message + ": " + e.Err.Error()
}

func (e *BookingError) Unwrap() error {
	return e.Err
}

// BookingResult is the outcome of a successful booking workflow.
// swagger:model BookingResult
type BookingResult struct {
	Message      string        `json:"message"`
	Redirect     string        `json:"redirect"`
	Show         *Show         `json:"show,omitempty"`
	Availability *Availability `json:"availability,omitempty"`
}

// BookingService runs the show and availability booking workflows.
// Expected rejections are returned as *BookingError; any other error is a store failure.
type BookingService interface {
	CreateShow(ctx context.Context, form ShowForm) (*BookingResult, error)
	CreateAvailability(ctx context.Context, artistID int64, form AvailabilityForm) (*BookingResult, error)
}
