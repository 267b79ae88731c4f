package domain

// Role gates every operation a user may perform.
type Role string

const (
	RoleAnalyst Role = "analyst"
	RoleManager Role = "manager"
)

func (r Role) String() string { return string(r) }

func (r Role) IsValid() bool {
	switch r {
	case RoleAnalyst, RoleManager:
		return true
	}
	return false
}

// RoundStatus is the lifecycle state of a round.
type RoundStatus string

const (
	RoundStatusOpen     RoundStatus = "open"
	RoundStatusFinished RoundStatus = "finished"

	// roundStatusCancelled is a legacy stored value, read back as finished.
	roundStatusCancelled RoundStatus = "cancelled"
)

func (s RoundStatus) String() string { return string(s) }

func (s RoundStatus) IsValid() bool {
	switch s {
	case RoundStatusOpen, RoundStatusFinished:
		return true
	}
	return false
}

// NormalizeRoundStatus maps stored values onto the two live states.
// Anything that is not open counts as finished.
func NormalizeRoundStatus(raw string) RoundStatus {
	switch RoundStatus(raw) {
	case RoundStatusOpen:
		return RoundStatusOpen
	case RoundStatusFinished, roundStatusCancelled:
		return RoundStatusFinished
	}
	return RoundStatusFinished
}

// AnswerStatus is the outcome recorded for one checklist item.
type AnswerStatus string

const (
	AnswerStatusPending  AnswerStatus = "pending"
	AnswerStatusOK       AnswerStatus = "ok"
	AnswerStatusIncident AnswerStatus = "incident"
)

func (s AnswerStatus) String() string { return string(s) }

func (s AnswerStatus) IsValid() bool {
	switch s {
	case AnswerStatusPending, AnswerStatusOK, AnswerStatusIncident:
		return true
	}
	return false
}

// IsAnswer reports whether s is a status an analyst may set.
func (s AnswerStatus) IsAnswer() bool {
	return s == AnswerStatusOK || s == AnswerStatusIncident
}

// LocationSource tells how a location ping was produced.
type LocationSource string

const (
	LocationSourceGPS       LocationSource = "gps"
	LocationSourceManual    LocationSource = "manual"
	LocationSourceSimulated LocationSource = "simulated"
)

func (s LocationSource) String() string { return string(s) }

func (s LocationSource) IsValid() bool {
	switch s {
	case LocationSourceGPS, LocationSourceManual, LocationSourceSimulated:
		return true
	}
	return false
}

// AuditAction is the tag of an audit log entry.
type AuditAction string

const (
	AuditActionLogin                  AuditAction = "login"
	AuditActionLogout                 AuditAction = "logout"
	AuditActionRoundStarted           AuditAction = "round_started"
	AuditActionItemMarkedOK           AuditAction = "item_marked_ok"
	AuditActionItemMarkedIncident     AuditAction = "item_marked_incident"
	AuditActionItemObservationUpdated AuditAction = "item_observation_updated"
	AuditActionPhotoAdded             AuditAction = "photo_added"
	AuditActionLocationRecorded       AuditAction = "location_recorded"
	AuditActionRoundFinalized         AuditAction = "round_finalized"
	AuditActionSectorCreated          AuditAction = "sector_created"
	AuditActionTemplateCreated        AuditAction = "template_created"
)

func (a AuditAction) String() string { return string(a) }

func (a AuditAction) IsValid() bool {
	switch a {
	case AuditActionLogin, AuditActionLogout, AuditActionRoundStarted,
		AuditActionItemMarkedOK, AuditActionItemMarkedIncident, AuditActionItemObservationUpdated,
		AuditActionPhotoAdded, AuditActionLocationRecorded, AuditActionRoundFinalized,
		AuditActionSectorCreated, AuditActionTemplateCreated:
		return true
	}
	return false
}

// AnswerAuditAction returns the audit tag for marking an item with s.
func AnswerAuditAction(s AnswerStatus) AuditAction {
	if s == AnswerStatusIncident {
		return AuditActionItemMarkedIncident
	}
	return AuditActionItemMarkedOK
}
