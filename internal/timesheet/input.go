package timesheet

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// EntryInput is the raw entry form payload. Syntactic checks live here;
// the semantic checks (overlap, caps) run in Check once the input parses.
type EntryInput struct {
	Date         string `validate:"required,datetime=2006-01-02"`
	StartTime    string `validate:"required,datetime=15:04"`
	EndTime      string `validate:"required,datetime=15:04"`
	TaskName     string `validate:"required"`
	TaskCategory string `validate:"required"`
	Description  string `validate:"max=500"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks formats and field presence and returns a human-readable
// reason on failure. End before start is rejected here rather than being
// clamped away silently.
func (in EntryInput) Validate() error {
	if err := validate.Struct(in); err != nil {
		var errs validator.ValidationErrors
		if ok := asValidationErrors(err, &errs); ok && len(errs) > 0 {
			return fmt.Errorf("%s", describeFieldError(errs[0]))
		}
		return err
	}
	if ClockToMinutes(in.EndTime) < ClockToMinutes(in.StartTime) {
		return fmt.Errorf("end time %s is before start time %s", in.EndTime, in.StartTime)
	}
	return nil
}

// Candidate converts validated input into a validation candidate, deriving
// the duration from the interval.
func (in EntryInput) Candidate(excludeID, userID int64) Candidate {
	return Candidate{
		ExcludeID:     excludeID,
		UserID:        userID,
		Date:          in.Date,
		StartTime:     in.StartTime,
		EndTime:       in.EndTime,
		DurationHours: DurationHours(in.StartTime, in.EndTime),
		TaskName:      in.TaskName,
	}
}

func asValidationErrors(err error, target *validator.ValidationErrors) bool {
	errs, ok := err.(validator.ValidationErrors)
	if ok {
		*target = errs
	}
	return ok
}

func describeFieldError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "datetime":
		return fmt.Sprintf("%s has an invalid format", fe.Field())
	case "max":
		return fmt.Sprintf("%s is too long", fe.Field())
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}
