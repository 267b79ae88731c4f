package rest

import (
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/rondaflow-backend/internal/domain"
	"github.com/heartmarshall/rondaflow-backend/internal/gps"
	"github.com/heartmarshall/rondaflow-backend/internal/service/dashboard"
)

type actorResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	Role string    `json:"role"`
}

type userResponse struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Username string    `json:"username"`
	Role     string    `json:"role"`
}

type sectorResponse struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Order          int       `json:"order"`
	CheckpointHint *string   `json:"checkpointHint"`
	CreatedAt      time.Time `json:"createdAt"`
}

type templateItemResponse struct {
	ID                      uuid.UUID `json:"id"`
	SectorID                uuid.UUID `json:"sectorId"`
	SectorName              string    `json:"sectorName"`
	Title                   string    `json:"title"`
	Description             string    `json:"description"`
	PhotoRequiredOnIncident bool      `json:"photoRequiredOnIncident"`
	Order                   int       `json:"order"`
}

type templateResponse struct {
	ID        uuid.UUID              `json:"id"`
	Name      string                 `json:"name"`
	Version   int                    `json:"version"`
	Active    bool                   `json:"active"`
	CreatedAt time.Time              `json:"createdAt"`
	Items     []templateItemResponse `json:"items"`
}

type photoResponse struct {
	ID           uuid.UUID  `json:"id"`
	ItemAnswerID *uuid.UUID `json:"itemAnswerId"`
	FileName     string     `json:"fileName"`
	MimeType     string     `json:"mimeType"`
	SizeBytes    int        `json:"sizeBytes"`
	CapturedAt   time.Time  `json:"capturedAt"`
	UploadedBy   uuid.UUID  `json:"uploadedByUserId"`
}

type answerResponse struct {
	ID                      uuid.UUID       `json:"id"`
	TemplateItemID          uuid.UUID       `json:"templateItemId"`
	SectorID                uuid.UUID       `json:"sectorId"`
	SectorName              string          `json:"sectorName"`
	SectorOrder             int             `json:"sectorOrder"`
	Title                   string          `json:"title"`
	Description             string          `json:"description"`
	ItemOrder               int             `json:"itemOrder"`
	PhotoRequiredOnIncident bool            `json:"photoRequiredOnIncident"`
	Status                  string          `json:"status"`
	Observation             string          `json:"observation"`
	AnsweredAt              *time.Time      `json:"answeredAt"`
	AnsweredByUserID        *uuid.UUID      `json:"answeredByUserId"`
	Photos                  []photoResponse `json:"photos"`
}

type pingResponse struct {
	ID             uuid.UUID `json:"id"`
	Latitude       float64   `json:"latitude"`
	Longitude      float64   `json:"longitude"`
	AccuracyMeters *float64  `json:"accuracyMeters"`
	CollectedAt    time.Time `json:"collectedAt"`
	Source         string    `json:"source"`
}

type plannedSectorResponse struct {
	SectorID uuid.UUID `json:"sectorId"`
	Name     string    `json:"name"`
	Order    int       `json:"order"`
}

type roundResponse struct {
	ID              uuid.UUID               `json:"id"`
	TemplateID      uuid.UUID               `json:"templateId"`
	TemplateName    string                  `json:"templateName"`
	TemplateVersion int                     `json:"templateVersion"`
	Status          string                  `json:"status"`
	AnalystID       uuid.UUID               `json:"analystId"`
	AnalystName     string                  `json:"analystName"`
	StartedAt       time.Time               `json:"startedAt"`
	FinishedAt      *time.Time              `json:"finishedAt"`
	GeneralNote     string                  `json:"generalNote"`
	PlannedSectors  []plannedSectorResponse `json:"plannedSectors"`
	Answers         []answerResponse        `json:"answers"`
	GeneralPhotos   []photoResponse         `json:"generalPhotos"`
	Pings           []pingResponse          `json:"pings"`
}

type auditResponse struct {
	ID        uuid.UUID      `json:"id"`
	RoundID   *uuid.UUID     `json:"roundId"`
	UserID    uuid.UUID      `json:"userId"`
	UserName  string         `json:"userName"`
	Action    string         `json:"action"`
	Details   string         `json:"details"`
	Metadata  map[string]any `json:"metadata"`
	CreatedAt time.Time      `json:"createdAt"`
}

type roundDetailResponse struct {
	Round roundResponse   `json:"round"`
	Audit []auditResponse `json:"audit"`
}

type routePointResponse struct {
	PingID      uuid.UUID `json:"pingId"`
	X           float64   `json:"x"`
	Y           float64   `json:"y"`
	Latitude    float64   `json:"latitude"`
	Longitude   float64   `json:"longitude"`
	CollectedAt time.Time `json:"collectedAt"`
	Source      string    `json:"source"`
}

type routeResponse struct {
	Width    int                  `json:"width"`
	Height   int                  `json:"height"`
	Points   []routePointResponse `json:"points"`
	BySource map[string]int       `json:"bySource"`
}

type roundSummaryResponse struct {
	ID              uuid.UUID  `json:"id"`
	Status          string     `json:"status"`
	AnalystID       uuid.UUID  `json:"analystId"`
	AnalystName     string     `json:"analystName"`
	TemplateName    string     `json:"templateName"`
	TemplateVersion int        `json:"templateVersion"`
	StartedAt       time.Time  `json:"startedAt"`
	FinishedAt      *time.Time `json:"finishedAt"`
	PercentComplete int        `json:"percentComplete"`
	TotalItems      int        `json:"totalItems"`
	OKCount         int        `json:"okCount"`
	IncidentCount   int        `json:"incidentCount"`
	OpenIncidents   int        `json:"openIncidents"`
	TotalPhotos     int        `json:"totalPhotos"`
	TotalPings      int        `json:"totalPings"`
}

type metricsResponse struct {
	RoundsToday        int `json:"roundsToday"`
	OpenRounds         int `json:"openRounds"`
	IncidentsToday     int `json:"incidentsToday"`
	AvgDurationMinutes int `json:"avgDurationMinutes"`
	PingsToday         int `json:"pingsToday"`
}

type dashboardResponse struct {
	Day         string                 `json:"day"`
	Metrics     metricsResponse        `json:"metrics"`
	Rounds      []roundSummaryResponse `json:"rounds"`
	RecentAudit []auditResponse        `json:"recentAudit"`
}

// ---------------------------------------------------------------------------
// Converters
// ---------------------------------------------------------------------------

func toActorResponse(a domain.Actor) actorResponse {
	return actorResponse{ID: a.ID, Name: a.Name, Role: string(a.Role)}
}

func toUserResponses(users []domain.User) []userResponse {
	out := make([]userResponse, len(users))
	for i, u := range users {
		out[i] = userResponse{ID: u.ID, Name: u.Name, Username: u.Username, Role: string(u.Role)}
	}
	return out
}

func toSectorResponse(s domain.Sector) sectorResponse {
	return sectorResponse{
		ID:             s.ID,
		Name:           s.Name,
		Order:          s.Order,
		CheckpointHint: s.CheckpointHint,
		CreatedAt:      s.CreatedAt,
	}
}

func toTemplateResponse(t domain.ChecklistTemplate) templateResponse {
	items := make([]templateItemResponse, len(t.Items))
	for i, it := range t.Items {
		items[i] = templateItemResponse{
			ID:                      it.ID,
			SectorID:                it.SectorID,
			SectorName:              it.SectorName,
			Title:                   it.Title,
			Description:             it.Description,
			PhotoRequiredOnIncident: it.PhotoRequiredOnIncident,
			Order:                   it.Order,
		}
	}
	return templateResponse{
		ID:        t.ID,
		Name:      t.Name,
		Version:   t.Version,
		Active:    t.Active,
		CreatedAt: t.CreatedAt,
		Items:     items,
	}
}

func toPhotoResponse(p domain.Photo) photoResponse {
	return photoResponse{
		ID:           p.ID,
		ItemAnswerID: p.ItemAnswerID,
		FileName:     p.FileName,
		MimeType:     p.MimeType,
		SizeBytes:    p.SizeBytes,
		CapturedAt:   p.CapturedAt,
		UploadedBy:   p.UploadedByUserID,
	}
}

func toPhotoResponses(photos []domain.Photo) []photoResponse {
	out := make([]photoResponse, len(photos))
	for i, p := range photos {
		out[i] = toPhotoResponse(p)
	}
	return out
}

func toPingResponse(p domain.LocationPing) pingResponse {
	return pingResponse{
		ID:             p.ID,
		Latitude:       p.Latitude,
		Longitude:      p.Longitude,
		AccuracyMeters: p.AccuracyMeters,
		CollectedAt:    p.CollectedAt,
		Source:         string(p.Source),
	}
}

func toRoundResponse(rd *domain.Round) roundResponse {
	sectors := make([]plannedSectorResponse, len(rd.PlannedSectors))
	for i, s := range rd.PlannedSectors {
		sectors[i] = plannedSectorResponse{SectorID: s.SectorID, Name: s.Name, Order: s.Order}
	}

	answers := make([]answerResponse, len(rd.Answers))
	for i, a := range rd.Answers {
		answers[i] = answerResponse{
			ID:                      a.ID,
			TemplateItemID:          a.TemplateItemID,
			SectorID:                a.SectorID,
			SectorName:              a.SectorName,
			SectorOrder:             a.SectorOrder,
			Title:                   a.Title,
			Description:             a.Description,
			ItemOrder:               a.ItemOrder,
			PhotoRequiredOnIncident: a.PhotoRequiredOnIncident,
			Status:                  string(a.Status),
			Observation:             a.Observation,
			AnsweredAt:              a.AnsweredAt,
			AnsweredByUserID:        a.AnsweredByUserID,
			Photos:                  toPhotoResponses(a.Photos),
		}
	}

	pings := make([]pingResponse, len(rd.Pings))
	for i, p := range rd.Pings {
		pings[i] = toPingResponse(p)
	}

	return roundResponse{
		ID:              rd.ID,
		TemplateID:      rd.TemplateID,
		TemplateName:    rd.TemplateName,
		TemplateVersion: rd.TemplateVersion,
		Status:          string(rd.Status),
		AnalystID:       rd.AnalystID,
		AnalystName:     rd.AnalystName,
		StartedAt:       rd.StartedAt,
		FinishedAt:      rd.FinishedAt,
		GeneralNote:     rd.GeneralNote,
		PlannedSectors:  sectors,
		Answers:         answers,
		GeneralPhotos:   toPhotoResponses(rd.GeneralPhotos),
		Pings:           pings,
	}
}

func toAuditResponses(entries []domain.AuditEntry) []auditResponse {
	out := make([]auditResponse, len(entries))
	for i, e := range entries {
		meta := map[string]any(e.Metadata)
		if meta == nil {
			meta = map[string]any{}
		}
		out[i] = auditResponse{
			ID:        e.ID,
			RoundID:   e.RoundID,
			UserID:    e.UserID,
			UserName:  e.UserName,
			Action:    string(e.Action),
			Details:   e.Details,
			Metadata:  meta,
			CreatedAt: e.CreatedAt,
		}
	}
	return out
}

func toRouteResponse(route gps.Route) routeResponse {
	points := make([]routePointResponse, len(route.Points))
	for i, p := range route.Points {
		points[i] = routePointResponse{
			PingID:      p.PingID,
			X:           p.X,
			Y:           p.Y,
			Latitude:    p.Latitude,
			Longitude:   p.Longitude,
			CollectedAt: p.CollectedAt,
			Source:      string(p.Source),
		}
	}
	bySource := make(map[string]int, len(route.BySource))
	for src, n := range route.BySource {
		bySource[string(src)] = n
	}
	return routeResponse{
		Width:    gps.CanvasWidth,
		Height:   gps.CanvasHeight,
		Points:   points,
		BySource: bySource,
	}
}

func toDashboardResponse(snap *dashboard.Snapshot) dashboardResponse {
	rounds := make([]roundSummaryResponse, len(snap.Rounds))
	for i, s := range snap.Rounds {
		rounds[i] = roundSummaryResponse{
			ID:              s.ID,
			Status:          string(s.Status),
			AnalystID:       s.AnalystID,
			AnalystName:     s.AnalystName,
			TemplateName:    s.TemplateName,
			TemplateVersion: s.TemplateVersion,
			StartedAt:       s.StartedAt,
			FinishedAt:      s.FinishedAt,
			PercentComplete: s.PercentComplete,
			TotalItems:      s.TotalItems,
			OKCount:         s.OKCount,
			IncidentCount:   s.IncidentCount,
			OpenIncidents:   s.OpenIncidents,
			TotalPhotos:     s.TotalPhotos,
			TotalPings:      s.TotalPings,
		}
	}
	m := snap.Metrics
	return dashboardResponse{
		Day: snap.Day.Format(time.DateOnly),
		Metrics: metricsResponse{
			RoundsToday:        m.RoundsToday,
			OpenRounds:         m.OpenRounds,
			IncidentsToday:     m.IncidentsToday,
			AvgDurationMinutes: m.AvgDurationMinutes,
			PingsToday:         m.PingsToday,
		},
		Rounds:      rounds,
		RecentAudit: toAuditResponses(snap.RecentAudit),
	}
}
