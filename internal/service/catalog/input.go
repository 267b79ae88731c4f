package catalog

import (
	"math"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/rondaflow-backend/internal/domain"
)

const (
	maxNameLen        = 120
	maxHintLen        = 500
	maxTitleLen       = 200
	maxDescriptionLen = 2000
)

// CreateSectorInput holds parameters for creating a sector. Order arrives as
// a JSON number and is truncated to an integer.
type CreateSectorInput struct {
	Name           string
	Order          float64
	CheckpointHint string
}

func (i *CreateSectorInput) normalize() {
	i.Name = strings.TrimSpace(i.Name)
	i.CheckpointHint = strings.TrimSpace(i.CheckpointHint)
}

// Validate checks all fields and collects all errors.
func (i CreateSectorInput) Validate() error {
	var errs []domain.FieldError

	if i.Name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	} else if len(i.Name) > maxNameLen {
		errs = append(errs, domain.FieldError{Field: "name", Message: "too long"})
	}
	if math.IsNaN(i.Order) || math.IsInf(i.Order, 0) || i.Order <= 0 || i.Order > math.MaxInt32 {
		errs = append(errs, domain.FieldError{Field: "order", Message: "must be greater than 0"})
	}
	if len(i.CheckpointHint) > maxHintLen {
		errs = append(errs, domain.FieldError{Field: "checkpoint_hint", Message: "too long"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// TemplateItemInput is one checklist question of a new template.
type TemplateItemInput struct {
	SectorID                uuid.UUID
	Title                   string
	Description             string
	PhotoRequiredOnIncident bool
}

// CreateTemplateInput holds parameters for creating a template version.
type CreateTemplateInput struct {
	Name   string
	Active bool
	Items  []TemplateItemInput
}

// items returns the trimmed items that carry a sector, a title and a
// description, keeping each one's position in the input.
func (i CreateTemplateInput) items() []domain.TemplateItem {
	out := make([]domain.TemplateItem, 0, len(i.Items))
	for idx, it := range i.Items {
		title := strings.TrimSpace(it.Title)
		desc := strings.TrimSpace(it.Description)
		if it.SectorID == uuid.Nil || title == "" || desc == "" {
			continue
		}
		out = append(out, domain.TemplateItem{
			ID:                      uuid.New(),
			SectorID:                it.SectorID,
			Title:                   title,
			Description:             desc,
			PhotoRequiredOnIncident: it.PhotoRequiredOnIncident,
			Order:                   idx + 1,
		})
	}
	return out
}

// Validate checks the name and the items left after trimming.
func (i CreateTemplateInput) Validate() error {
	var errs []domain.FieldError

	name := strings.TrimSpace(i.Name)
	if name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	} else if len(name) > maxNameLen {
		errs = append(errs, domain.FieldError{Field: "name", Message: "too long"})
	}

	items := i.items()
	if len(items) == 0 {
		errs = append(errs, domain.FieldError{Field: "items", Message: "at least one complete item is required"})
	}
	for _, it := range items {
		if len(it.Title) > maxTitleLen || len(it.Description) > maxDescriptionLen {
			errs = append(errs, domain.FieldError{Field: "items", Message: "item text too long"})
			break
		}
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
