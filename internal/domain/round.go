package domain

import (
	"sort"
	"time"

	"github.com/google/uuid"
)

// Round is one inspection performed by one analyst against a template snapshot.
// The answer set is seeded at creation and never grows or shrinks.
type Round struct {
	ID              uuid.UUID
	TemplateID      uuid.UUID
	TemplateName    string
	TemplateVersion int
	Status          RoundStatus
	AnalystID       uuid.UUID
	AnalystName     string
	StartedAt       time.Time
	FinishedAt      *time.Time
	GeneralNote     string

	PlannedSectors []PlannedSector
	Answers        []ItemAnswer
	GeneralPhotos  []Photo
	Pings          []LocationPing
}

// PlannedSector is a sector touched by at least one of the round's items.
type PlannedSector struct {
	SectorID uuid.UUID
	Name     string
	Order    int
}

// ItemAnswer is the analyst's outcome for one template item within a round.
type ItemAnswer struct {
	ID                      uuid.UUID
	RoundID                 uuid.UUID
	TemplateItemID          uuid.UUID
	SectorID                uuid.UUID
	SectorName              string
	SectorOrder             int
	Title                   string
	Description             string
	ItemOrder               int
	PhotoRequiredOnIncident bool
	Status                  AnswerStatus
	Observation             string
	AnsweredAt              *time.Time
	AnsweredByUserID        *uuid.UUID
	Photos                  []Photo
}

// Photo is image evidence attached to a round, optionally to one of its items.
type Photo struct {
	ID               uuid.UUID
	RoundID          uuid.UUID
	ItemAnswerID     *uuid.UUID
	FileName         string
	MimeType         string
	SizeBytes        int
	StorageKey       string
	CapturedAt       time.Time
	UploadedByUserID uuid.UUID
}

// LocationPing is one accepted position sample of a round.
type LocationPing struct {
	ID             uuid.UUID
	RoundID        uuid.UUID
	Latitude       float64
	Longitude      float64
	AccuracyMeters *float64
	CollectedAt    time.Time
	Source         LocationSource
}

// IsOpen reports whether the round still accepts mutations.
func (r *Round) IsOpen() bool {
	return r.Status == RoundStatusOpen
}

// Answer returns the item answer with the given id, if it belongs to the round.
func (r *Round) Answer(id uuid.UUID) (*ItemAnswer, bool) {
	for i := range r.Answers {
		if r.Answers[i].ID == id {
			return &r.Answers[i], true
		}
	}
	return nil, false
}

// PhotoCount counts item photos and general photos.
func (r *Round) PhotoCount() int {
	n := len(r.GeneralPhotos)
	for _, a := range r.Answers {
		n += len(a.Photos)
	}
	return n
}

// DerivePlannedSectors builds the distinct sectors of the answers, ordered by
// sector order and then name.
func DerivePlannedSectors(answers []ItemAnswer) []PlannedSector {
	seen := make(map[uuid.UUID]struct{}, len(answers))
	sectors := make([]PlannedSector, 0)
	for _, a := range answers {
		if _, ok := seen[a.SectorID]; ok {
			continue
		}
		seen[a.SectorID] = struct{}{}
		sectors = append(sectors, PlannedSector{SectorID: a.SectorID, Name: a.SectorName, Order: a.SectorOrder})
	}
	sort.SliceStable(sectors, func(i, j int) bool {
		if sectors[i].Order != sectors[j].Order {
			return sectors[i].Order < sectors[j].Order
		}
		return sectors[i].Name < sectors[j].Name
	})
	return sectors
}

// NewRoundAnswers seeds one pending answer per template item.
func NewRoundAnswers(roundID uuid.UUID, items []TemplateItem) []ItemAnswer {
	answers := make([]ItemAnswer, len(items))
	for i, it := range items {
		answers[i] = ItemAnswer{
			ID:                      uuid.New(),
			RoundID:                 roundID,
			TemplateItemID:          it.ID,
			SectorID:                it.SectorID,
			SectorName:              it.SectorName,
			SectorOrder:             it.SectorOrder,
			Title:                   it.Title,
			Description:             it.Description,
			ItemOrder:               it.Order,
			PhotoRequiredOnIncident: it.PhotoRequiredOnIncident,
			Status:                  AnswerStatusPending,
		}
	}
	return answers
}
