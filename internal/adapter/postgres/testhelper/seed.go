package testhelper

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/rondaflow-backend/internal/domain"
)

var (
	fakerMu sync.Mutex
	faker   = gofakeit.New(0)

	orderMu   sync.Mutex
	nextOrder = int(time.Now().UnixNano() % 1_000_000)
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

func fakeName() string {
	fakerMu.Lock()
	defer fakerMu.Unlock()
	return faker.Name()
}

func fakeSentence(words int) string {
	fakerMu.Lock()
	defer fakerMu.Unlock()
	return faker.Sentence(words)
}

// uniqueOrder hands out sector orders that never collide within a test run,
// since sectors.sort_order is globally unique.
func uniqueOrder() int {
	orderMu.Lock()
	defer orderMu.Unlock()
	nextOrder++
	return nextOrder
}

// SeedUser creates an active user with the given role and a generated name.
func SeedUser(t *testing.T, pool *pgxpool.Pool, role domain.Role) domain.User {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	user := domain.User{
		ID:        uuid.New(),
		Name:      fakeName(),
		Username:  string(role) + "-" + suffix,
		Role:      role,
		Active:    true,
		CreatedAt: time.Now().UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO users (id, name, username, role, active, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		user.ID, user.Name, user.Username, string(user.Role), user.Active, user.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert: %v", err)
	}

	return user
}

// SeedSector creates a sector with a unique order.
func SeedSector(t *testing.T, pool *pgxpool.Pool) domain.Sector {
	t.Helper()
	ctx := context.Background()

	hint := "Checkpoint " + uniqueSuffix()
	sector := domain.Sector{
		ID:             uuid.New(),
		Name:           "Sector " + uniqueSuffix(),
		Order:          uniqueOrder(),
		CheckpointHint: &hint,
		CreatedAt:      time.Now().UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO sectors (id, name, sort_order, checkpoint_hint, created_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		sector.ID, sector.Name, sector.Order, sector.CheckpointHint, sector.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedSector insert: %v", err)
	}

	return sector
}

// SeedTemplate creates a template with itemsPerSector items for each sector.
// The template name is unique, so its version is always 1.
func SeedTemplate(t *testing.T, pool *pgxpool.Pool, active bool, sectors []domain.Sector, itemsPerSector int) domain.ChecklistTemplate {
	t.Helper()
	ctx := context.Background()

	tpl := domain.ChecklistTemplate{
		ID:        uuid.New(),
		Name:      "Template " + uniqueSuffix(),
		Version:   1,
		Active:    active,
		CreatedAt: time.Now().UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO checklist_templates (id, name, version, active, created_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		tpl.ID, tpl.Name, tpl.Version, tpl.Active, tpl.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedTemplate insert template: %v", err)
	}

	order := 0
	for _, s := range sectors {
		for i := 0; i < itemsPerSector; i++ {
			order++
			item := domain.TemplateItem{
				ID:                      uuid.New(),
				TemplateID:              tpl.ID,
				SectorID:                s.ID,
				SectorName:              s.Name,
				SectorOrder:             s.Order,
				Title:                   strings.TrimSuffix(fakeSentence(3), "."),
				Description:             fakeSentence(8),
				PhotoRequiredOnIncident: i%2 == 0,
				Order:                   order,
			}
			_, err := pool.Exec(ctx,
				`INSERT INTO template_items (id, template_id, sector_id, title, description, photo_required_on_incident, sort_order)
				 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
				item.ID, item.TemplateID, item.SectorID, item.Title, item.Description, item.PhotoRequiredOnIncident, item.Order,
			)
			if err != nil {
				t.Fatalf("testhelper: SeedTemplate insert item: %v", err)
			}
			tpl.Items = append(tpl.Items, item)
		}
	}

	return tpl
}

// CountRows returns the number of rows in table matching where (may be empty).
func CountRows(t *testing.T, pool *pgxpool.Pool, table, where string, args ...any) int {
	t.Helper()

	query := "SELECT count(*) FROM " + table
	if where != "" {
		query += " WHERE " + where
	}

	var n int
	if err := pool.QueryRow(context.Background(), query, args...).Scan(&n); err != nil {
		t.Fatalf("testhelper: CountRows %s: %v", table, err)
	}
	return n
}

// SeedRound opens a round for analyst on tpl and seeds one pending answer per item.
func SeedRound(t *testing.T, pool *pgxpool.Pool, analyst domain.User, tpl domain.ChecklistTemplate) domain.Round {
	t.Helper()
	ctx := context.Background()

	rd := domain.Round{
		ID:              uuid.New(),
		TemplateID:      tpl.ID,
		TemplateName:    tpl.Name,
		TemplateVersion: tpl.Version,
		Status:          domain.RoundStatusOpen,
		AnalystID:       analyst.ID,
		AnalystName:     analyst.Name,
		StartedAt:       time.Now().UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO rounds (id, template_id, template_name, template_version, status, analyst_id, analyst_name, started_at)
		 VALUES ($1, $2, $3, $4, 'open', $5, $6, $7)`,
		rd.ID, rd.TemplateID, rd.TemplateName, rd.TemplateVersion, rd.AnalystID, rd.AnalystName, rd.StartedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedRound insert round: %v", err)
	}

	rd.Answers = domain.NewRoundAnswers(rd.ID, tpl.Items)
	for _, a := range rd.Answers {
		_, err := pool.Exec(ctx,
			`INSERT INTO item_answers (id, round_id, template_item_id, sector_id, sector_name, sector_order,
				title, description, item_order, photo_required_on_incident, status)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, 'pending')`,
			a.ID, a.RoundID, a.TemplateItemID, a.SectorID, a.SectorName, a.SectorOrder,
			a.Title, a.Description, a.ItemOrder, a.PhotoRequiredOnIncident,
		)
		if err != nil {
			t.Fatalf("testhelper: SeedRound insert answer: %v", err)
		}
	}

	return rd
}

// SeedOpenRound seeds a fresh analyst, sector and template and opens a round.
func SeedOpenRound(t *testing.T, pool *pgxpool.Pool) (domain.User, domain.Round) {
	t.Helper()
	analyst := SeedUser(t, pool, domain.RoleAnalyst)
	tpl := SeedTemplate(t, pool, true, []domain.Sector{SeedSector(t, pool)}, 2)
	return analyst, SeedRound(t, pool, analyst, tpl)
}
