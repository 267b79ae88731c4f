package domain

import (
	"time"

	"github.com/google/uuid"
)

// Documented AuditMetadata keys. Each action writes only the keys listed for it.
const (
	MetaCreatedByManager = "createdByManager" // round_started (bool)
	MetaTemplateID       = "templateId"       // round_started, template_created (string)
	MetaVersion          = "version"          // template_created (int)
	MetaItemID           = "itemId"           // item_marked_*, item_observation_updated, photo_added (string)
	MetaStatus           = "status"           // item_marked_* (string)
	MetaLatitude         = "latitude"         // location_recorded (float64)
	MetaLongitude        = "longitude"        // location_recorded (float64)
	MetaSource           = "source"           // location_recorded (string)
	MetaBytes            = "bytes"            // photo_added (int)
	MetaRole             = "role"             // login, logout (string)
	MetaSectorOrder      = "order"            // sector_created (int)
)

// AuditMetadata is a flat bag of primitive values keyed by the Meta* constants.
type AuditMetadata map[string]any

// AuditEntry is an immutable record of one action against a round or account.
type AuditEntry struct {
	ID        uuid.UUID
	RoundID   *uuid.UUID
	UserID    uuid.UUID
	UserName  string
	Action    AuditAction
	Details   string
	Metadata  AuditMetadata
	CreatedAt time.Time
}

// NewAuditEntry builds an entry for actor. RoundID may be nil.
func NewAuditEntry(actor Actor, roundID *uuid.UUID, action AuditAction, details string, meta AuditMetadata) AuditEntry {
	return AuditEntry{
		ID:       uuid.New(),
		RoundID:  roundID,
		UserID:   actor.ID,
		UserName: actor.Name,
		Action:   action,
		Details:  details,
		Metadata: meta,
	}
}
