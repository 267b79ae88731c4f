package round

import "github.com/heartmarshall/rondaflow-backend/internal/domain"

// Detail is a round together with its audit trail, newest entry first.
type Detail struct {
	Round *domain.Round
	Audit []domain.AuditEntry
}
