package booking

import (
	"strings"
	"time"

	"meetingroom/internal/domain"

	"github.com/go-playground/validator/v10"
)

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type ValidationResult struct {
	IsValid bool         `json:"isValid"`
	Errors  []FieldError `json:"errors"`
}

// Hours is the daily booking window. Close is exclusive: with an 8-18 window
// the last admissible start hour is 17.
type Hours struct {
	Open  int
	Close int
}

// Validator checks a proposed booking's shape and business rules. Every
// independent rule is evaluated so the caller gets the full list of
// violations in one pass; range rules on a timestamp are skipped only when
// that timestamp itself does not parse.
type Validator struct {
	hours    Hours
	clock    domain.Clock
	validate *validator.Validate
}

func NewValidator(hours Hours, clock domain.Clock) *Validator {
	if clock == nil {
		clock = domain.RealClock{}
	}
	return &Validator{
		hours:    hours,
		clock:    clock,
		validate: validator.New(),
	}
}

func (v *Validator) Validate(req CreateBookingRequest) ValidationResult {
	errs := make([]FieldError, 0)

	if strings.TrimSpace(req.User.Name) == "" {
		errs = append(errs, FieldError{Field: "name", Message: "name must not be empty"})
	}

	if v.validate.Var(req.User.Email, "required,email") != nil {
		errs = append(errs, FieldError{Field: "email", Message: "email address is not valid"})
	}

	if req.RoomID == "" {
		errs = append(errs, FieldError{Field: "roomId", Message: "roomId must not be empty"})
	}

	start, startErr := time.Parse(time.RFC3339, req.StartTime)
	if startErr != nil {
		errs = append(errs, FieldError{Field: "startTime", Message: "start time is not a valid timestamp"})
	} else {
		if !start.After(v.clock.Now()) {
			errs = append(errs, FieldError{Field: "startTime", Message: "start time must be in the future"})
		}
		if !v.withinHours(start) {
			errs = append(errs, FieldError{Field: "startTime", Message: v.hoursMessage("start")})
		}
		if m := start.Minute(); m != 0 && m != 30 {
			errs = append(errs, FieldError{Field: "startTime", Message: "start time must begin on the hour or half hour"})
		}
	}

	end, endErr := time.Parse(time.RFC3339, req.EndTime)
	if endErr != nil {
		errs = append(errs, FieldError{Field: "endTime", Message: "end time is not a valid timestamp"})
	} else {
		if startErr == nil && !end.After(start) {
			errs = append(errs, FieldError{Field: "endTime", Message: "end time must be after start time"})
		}
		if !v.withinHours(end) {
			errs = append(errs, FieldError{Field: "endTime", Message: v.hoursMessage("end")})
		}
	}

	return ValidationResult{IsValid: len(errs) == 0, Errors: errs}
}

func (v *Validator) withinHours(t time.Time) bool {
	h := t.Hour()
	return h >= v.hours.Open && h < v.hours.Close
}

func (v *Validator) hoursMessage(which string) string {
	return which + " time must fall within business hours"
}
