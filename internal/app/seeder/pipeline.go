package seeder

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"

	"github.com/heartmarshall/rondaflow-backend/internal/domain"
	"github.com/heartmarshall/rondaflow-backend/internal/auth"
)

// allPhases defines the canonical execution order. Templates reference
// sectors, so sectors always run first.
var allPhases = []string{"users", "sectors", "templates"}

// PhaseResult holds the outcome of a single pipeline phase.
type PhaseResult struct {
	Inserted int
	Skipped  int
	Errors   int
	Duration time.Duration
	Err      error
}

// Pipeline orchestrates the seeding phases.
type Pipeline struct {
	log     *slog.Logger
	repos   Repos
	cfg     Config
	fixture *Fixture
	faker   *gofakeit.Faker
	results map[string]PhaseResult
}

// NewPipeline creates a new Pipeline. A nil fixture seeds only fake analysts.
func NewPipeline(log *slog.Logger, repos Repos, fixture *Fixture, cfg Config) *Pipeline {
	if fixture == nil {
		fixture = &Fixture{}
	}
	return &Pipeline{
		log:     log,
		repos:   repos,
		cfg:     cfg,
		fixture: fixture,
		faker:   gofakeit.New(cfg.FakerSeed),
		results: make(map[string]PhaseResult),
	}
}

// Results returns phase results after Run completes.
func (p *Pipeline) Results() map[string]PhaseResult {
	return p.results
}

// HasErrors returns true if any phase recorded errors.
func (p *Pipeline) HasErrors() bool {
	for _, r := range p.results {
		if r.Err != nil || r.Errors > 0 {
			return true
		}
	}
	return false
}

// Run executes the pipeline. If phases is non-empty, only the listed phases run.
func (p *Pipeline) Run(ctx context.Context, phases []string) error {
	toRun := allPhases
	if len(phases) > 0 {
		filter := make(map[string]bool, len(phases))
		for _, ph := range phases {
			filter[ph] = true
		}
		var filtered []string
		for _, ph := range allPhases {
			if filter[ph] {
				filtered = append(filtered, ph)
				delete(filter, ph)
			}
		}
		for ph := range filter {
			return fmt.Errorf("unknown phase %q", ph)
		}
		toRun = filtered
	}

	for _, phase := range toRun {
		if err := ctx.Err(); err != nil {
			return err
		}

		start := time.Now()
		p.log.Info("starting phase", slog.String("phase", phase))

		var result PhaseResult
		switch phase {
		case "users":
			result = p.runUsers(ctx)
		case "sectors":
			result = p.runSectors(ctx)
		case "templates":
			result = p.runTemplates(ctx)
		}
		result.Duration = time.Since(start)
		p.results[phase] = result

		if result.Err != nil {
			p.log.Warn("phase failed",
				slog.String("phase", phase),
				slog.String("error", result.Err.Error()),
				slog.Duration("duration", result.Duration),
			)
		} else {
			p.log.Info("phase completed",
				slog.String("phase", phase),
				slog.Int("inserted", result.Inserted),
				slog.Int("skipped", result.Skipped),
				slog.Int("errors", result.Errors),
				slog.Duration("duration", result.Duration),
			)
		}
	}

	p.log.Info("pipeline completed", slog.Int("phases_run", len(toRun)), slog.Bool("dry_run", p.cfg.DryRun))
	return nil
}

// ---------------------------------------------------------------------------
// Phases
// ---------------------------------------------------------------------------

// runUsers creates fixture accounts plus the requested number of fake analysts.
// Accounts whose (username, role) already exists are skipped.
func (p *Pipeline) runUsers(ctx context.Context) PhaseResult {
	users := make([]FixtureUser, 0, len(p.fixture.Users)+p.cfg.FakeAnalysts)
	users = append(users, p.fixture.Users...)
	users = append(users, p.fakeAnalysts(p.cfg.FakeAnalysts)...)

	if p.cfg.DryRun {
		return PhaseResult{Skipped: len(users)}
	}

	var result PhaseResult
	for _, fu := range users {
		u, err := p.buildUser(fu)
		if err != nil {
			return PhaseResult{Err: fmt.Errorf("user %s: %w", fu.Username, err)}
		}

		_, err = p.repos.Users.Create(ctx, u)
		switch {
		case err == nil:
			result.Inserted++
		case errors.Is(err, domain.ErrAlreadyExists):
			result.Skipped++
		default:
			result.Errors++
			p.log.Warn("user insert failed", slog.String("username", fu.Username), slog.String("error", err.Error()))
		}
	}
	return result
}

// runSectors creates fixture sectors. A sector is skipped when its order or
// name is already taken.
func (p *Pipeline) runSectors(ctx context.Context) PhaseResult {
	if p.cfg.DryRun {
		return PhaseResult{Skipped: len(p.fixture.Sectors)}
	}

	existing, err := p.repos.Sectors.List(ctx)
	if err != nil {
		return PhaseResult{Err: fmt.Errorf("list sectors: %w", err)}
	}
	known := make(map[string]bool, len(existing))
	for _, s := range existing {
		known[sectorKey(s.Name)] = true
	}

	var result PhaseResult
	for _, fs := range p.fixture.Sectors {
		if known[sectorKey(fs.Name)] {
			result.Skipped++
			continue
		}

		s := domain.Sector{
			ID:    uuid.New(),
			Name:  strings.TrimSpace(fs.Name),
			Order: fs.Order,
		}
		if hint := strings.TrimSpace(fs.CheckpointHint); hint != "" {
			s.CheckpointHint = &hint
		}

		_, err := p.repos.Sectors.Create(ctx, s)
		switch {
		case err == nil:
			result.Inserted++
			known[sectorKey(fs.Name)] = true
		case errors.Is(err, domain.ErrAlreadyExists):
			result.Skipped++
		default:
			result.Errors++
			p.log.Warn("sector insert failed", slog.String("sector", fs.Name), slog.String("error", err.Error()))
		}
	}
	return result
}

// runTemplates creates a template for every fixture entry whose name has no
// version yet. Existing names are left alone so reseeding never bumps versions.
func (p *Pipeline) runTemplates(ctx context.Context) PhaseResult {
	if p.cfg.DryRun {
		return PhaseResult{Skipped: len(p.fixture.Templates)}
	}
	if len(p.fixture.Templates) == 0 {
		return PhaseResult{}
	}

	sectors, err := p.repos.Sectors.List(ctx)
	if err != nil {
		return PhaseResult{Err: fmt.Errorf("list sectors: %w", err)}
	}
	byName := make(map[string]domain.Sector, len(sectors))
	for _, s := range sectors {
		byName[sectorKey(s.Name)] = s
	}

	existing, err := p.repos.Templates.List(ctx)
	if err != nil {
		return PhaseResult{Err: fmt.Errorf("list templates: %w", err)}
	}
	seen := make(map[string]bool, len(existing))
	for _, t := range existing {
		seen[strings.ToLower(t.Name)] = true
	}

	var result PhaseResult
	for _, ft := range p.fixture.Templates {
		name := strings.TrimSpace(ft.Name)
		if seen[strings.ToLower(name)] {
			result.Skipped++
			continue
		}

		tpl, err := buildTemplate(ft, byName)
		if err != nil {
			result.Errors++
			p.log.Warn("template skipped", slog.String("template", name), slog.String("error", err.Error()))
			continue
		}

		err = p.repos.Tx.RunInTx(ctx, func(ctx context.Context) error {
			_, err := p.repos.Templates.Create(ctx, tpl)
			return err
		})
		if err != nil {
			result.Errors++
			p.log.Warn("template insert failed", slog.String("template", name), slog.String("error", err.Error()))
			continue
		}
		result.Inserted++
		seen[strings.ToLower(name)] = true
	}
	return result
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func (p *Pipeline) buildUser(fu FixtureUser) (domain.User, error) {
	u := domain.User{
		ID:       uuid.New(),
		Name:     strings.TrimSpace(fu.Name),
		Username: strings.TrimSpace(fu.Username),
		Role:     domain.Role(fu.Role),
		Active:   true,
	}
	if fu.Password != "" {
		hash, err := auth.HashPassword(fu.Password, p.cfg.BcryptCost)
		if err != nil {
			return domain.User{}, err
		}
		u.PasswordHash = &hash
	}
	return u, nil
}

// fakeAnalysts generates n password-less analysts with stable usernames for a given seed.
func (p *Pipeline) fakeAnalysts(n int) []FixtureUser {
	out := make([]FixtureUser, 0, max(n, 0))
	for i := 0; i < n; i++ {
		first, last := p.faker.FirstName(), p.faker.LastName()
		out = append(out, FixtureUser{
			Name:     first + " " + last,
			Username: strings.ToLower(fmt.Sprintf("%s.%s%d", first, last, i+1)),
			Role:     string(domain.RoleAnalyst),
		})
	}
	return out
}

func buildTemplate(ft FixtureTemplate, sectors map[string]domain.Sector) (domain.ChecklistTemplate, error) {
	tpl := domain.ChecklistTemplate{
		ID:     uuid.New(),
		Name:   strings.TrimSpace(ft.Name),
		Active: ft.IsActive(),
		Items:  make([]domain.TemplateItem, 0, len(ft.Items)),
	}
	for i, it := range ft.Items {
		s, ok := sectors[sectorKey(it.Sector)]
		if !ok {
			return domain.ChecklistTemplate{}, fmt.Errorf("item %d: unknown sector %q", i+1, it.Sector)
		}
		tpl.Items = append(tpl.Items, domain.TemplateItem{
			ID:                      uuid.New(),
			TemplateID:              tpl.ID,
			SectorID:                s.ID,
			SectorName:              s.Name,
			SectorOrder:             s.Order,
			Title:                   strings.TrimSpace(it.Title),
			Description:             strings.TrimSpace(it.Description),
			PhotoRequiredOnIncident: it.PhotoRequiredOnIncident,
			Order:                   i + 1,
		})
	}
	return tpl, nil
}
