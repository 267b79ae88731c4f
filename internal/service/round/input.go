package round

import (
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/rondaflow-backend/internal/domain"
)

const (
	maxObservationLen = 2000
	maxNoteLen        = 5000
	maxFileNameLen    = 255
)

// CreateForAnalystInput holds the parameters for a manager opening a round.
type CreateForAnalystInput struct {
	AnalystID  uuid.UUID
	TemplateID uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i *CreateForAnalystInput) Validate() error {
	var errs []domain.FieldError

	if i.AnalystID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "analyst_id", Message: "required"})
	}
	if i.TemplateID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "template_id", Message: "required"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// AnswerItemInput holds the parameters for answering a checklist item.
// A nil Observation keeps the stored one; an empty string clears it.
type AnswerItemInput struct {
	RoundID      uuid.UUID
	ItemAnswerID uuid.UUID
	Status       domain.AnswerStatus
	Observation  *string
}

// Validate checks all fields and collects all errors.
func (i *AnswerItemInput) Validate() error {
	var errs []domain.FieldError

	if i.RoundID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "round_id", Message: "required"})
	}
	if i.ItemAnswerID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "item_answer_id", Message: "required"})
	}
	if !i.Status.IsAnswer() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "must be ok or incident"})
	}
	if i.Observation != nil && len(*i.Observation) > maxObservationLen {
		errs = append(errs, domain.FieldError{Field: "observation", Message: "too long (max 2000)"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// SetGeneralNoteInput holds the parameters for replacing a round's note.
type SetGeneralNoteInput struct {
	RoundID uuid.UUID
	Note    string
}

// Validate checks all fields and collects all errors.
func (i *SetGeneralNoteInput) Validate() error {
	var errs []domain.FieldError

	if i.RoundID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "round_id", Message: "required"})
	}
	if len(i.Note) > maxNoteLen {
		errs = append(errs, domain.FieldError{Field: "note", Message: "too long (max 5000)"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// RecordLocationInput holds one location sample. An empty Source means manual.
type RecordLocationInput struct {
	RoundID        uuid.UUID
	Latitude       float64
	Longitude      float64
	AccuracyMeters *float64
	Source         domain.LocationSource
}

// Validate checks all fields and collects all errors.
func (i *RecordLocationInput) Validate() error {
	var errs []domain.FieldError

	if i.RoundID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "round_id", Message: "required"})
	}
	if !(i.Latitude >= -90 && i.Latitude <= 90) {
		errs = append(errs, domain.FieldError{Field: "latitude", Message: "must be between -90 and 90"})
	}
	if !(i.Longitude >= -180 && i.Longitude <= 180) {
		errs = append(errs, domain.FieldError{Field: "longitude", Message: "must be between -180 and 180"})
	}
	if i.AccuracyMeters != nil && *i.AccuracyMeters < 0 {
		errs = append(errs, domain.FieldError{Field: "accuracy_meters", Message: "must not be negative"})
	}
	if i.Source != "" && !i.Source.IsValid() {
		errs = append(errs, domain.FieldError{Field: "source", Message: "must be gps, manual or simulated"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// AttachPhotoInput holds an image upload. A nil ItemAnswerID attaches the
// photo to the round itself.
type AttachPhotoInput struct {
	RoundID      uuid.UUID
	ItemAnswerID *uuid.UUID
	FileName     string
	DataURL      string
}

// Validate checks all fields and collects all errors. The payload itself is
// checked when decoded.
func (i *AttachPhotoInput) Validate() error {
	var errs []domain.FieldError

	if i.RoundID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "round_id", Message: "required"})
	}
	if i.ItemAnswerID != nil && *i.ItemAnswerID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "item_answer_id", Message: "invalid"})
	}
	if len(i.FileName) > maxFileNameLen {
		errs = append(errs, domain.FieldError{Field: "file_name", Message: "too long (max 255)"})
	}
	if strings.TrimSpace(i.DataURL) == "" {
		errs = append(errs, domain.FieldError{Field: "data_url", Message: "required"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// ListInput holds round listing parameters.
type ListInput struct {
	AnalystID *uuid.UUID
	Status    *domain.RoundStatus
	Limit     int
}

// Validate checks all fields and collects all errors.
func (i *ListInput) Validate() error {
	var errs []domain.FieldError

	if i.Status != nil && !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "must be open or finished"})
	}
	if i.Limit < 0 {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must not be negative"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
