package domain

import (
	"time"

	"github.com/google/uuid"
)

// Sector is a physical area inspected during a round.
// Order is unique and drives checklist sequencing.
type Sector struct {
	ID             uuid.UUID
	Name           string
	Order          int
	CheckpointHint *string
	CreatedAt      time.Time
}

// ChecklistTemplate is one immutable version of a named checklist.
type ChecklistTemplate struct {
	ID        uuid.UUID
	Name      string
	Version   int
	Active    bool
	CreatedAt time.Time
	Items     []TemplateItem
}

// TemplateItem is a single question of a checklist template.
type TemplateItem struct {
	ID                      uuid.UUID
	TemplateID              uuid.UUID
	SectorID                uuid.UUID
	SectorName              string
	SectorOrder             int
	Title                   string
	Description             string
	PhotoRequiredOnIncident bool
	Order                   int
}
