package seeder

import (
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/heartmarshall/rondaflow-backend/internal/domain"
)

// Fixture is the YAML seed file: accounts, sectors and checklist templates.
type Fixture struct {
	Users     []FixtureUser     `yaml:"users"`
	Sectors   []FixtureSector   `yaml:"sectors"`
	Templates []FixtureTemplate `yaml:"templates"`
}

// FixtureUser is one account. An empty password leaves login password-less.
type FixtureUser struct {
	Name     string `yaml:"name"`
	Username string `yaml:"username"`
	Role     string `yaml:"role"`
	Password string `yaml:"password"`
}

// FixtureSector is one physical area.
type FixtureSector struct {
	Name           string `yaml:"name"`
	Order          int    `yaml:"order"`
	CheckpointHint string `yaml:"checkpoint_hint"`
}

// FixtureTemplate is one checklist. Items reference sectors by name.
type FixtureTemplate struct {
	Name   string        `yaml:"name"`
	Active *bool         `yaml:"active"`
	Items  []FixtureItem `yaml:"items"`
}

// FixtureItem is one checklist question.
type FixtureItem struct {
	Sector                  string `yaml:"sector"`
	Title                   string `yaml:"title"`
	Description             string `yaml:"description"`
	PhotoRequiredOnIncident bool   `yaml:"photo_required_on_incident"`
}

// IsActive defaults to true when the fixture omits the flag.
func (t FixtureTemplate) IsActive() bool {
	return t.Active == nil || *t.Active
}

// LoadFixture reads and validates a fixture file.
func LoadFixture(path string) (*Fixture, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open fixture: %w", err)
	}
	defer f.Close()

	return ParseFixture(f)
}

// ParseFixture decodes a fixture and checks cross references.
func ParseFixture(r io.Reader) (*Fixture, error) {
	var fx Fixture
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&fx); err != nil && err != io.EOF {
		return nil, fmt.Errorf("decode fixture: %w", err)
	}

	if err := fx.validate(); err != nil {
		return nil, err
	}
	return &fx, nil
}

func (fx *Fixture) validate() error {
	for i, u := range fx.Users {
		if strings.TrimSpace(u.Username) == "" || strings.TrimSpace(u.Name) == "" {
			return fmt.Errorf("fixture: users[%d]: name and username are required", i)
		}
		if !domain.Role(u.Role).IsValid() {
			return fmt.Errorf("fixture: users[%d]: invalid role %q", i, u.Role)
		}
	}

	orders := make(map[int]string, len(fx.Sectors))
	for i, s := range fx.Sectors {
		if strings.TrimSpace(s.Name) == "" || s.Order <= 0 {
			return fmt.Errorf("fixture: sectors[%d]: name and a positive order are required", i)
		}
		if prev, dup := orders[s.Order]; dup {
			return fmt.Errorf("fixture: sectors %q and %q share order %d", prev, s.Name, s.Order)
		}
		orders[s.Order] = s.Name
	}

	for i, t := range fx.Templates {
		if strings.TrimSpace(t.Name) == "" || len(t.Items) == 0 {
			return fmt.Errorf("fixture: templates[%d]: name and at least one item are required", i)
		}
		for j, it := range t.Items {
			if strings.TrimSpace(it.Title) == "" || strings.TrimSpace(it.Description) == "" {
				return fmt.Errorf("fixture: templates[%d].items[%d]: title and description are required", i, j)
			}
			// Sectors missing from the fixture may already exist in the database.
			if strings.TrimSpace(it.Sector) == "" {
				return fmt.Errorf("fixture: templates[%d].items[%d]: sector is required", i, j)
			}
		}
	}
	return nil
}

func sectorKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
