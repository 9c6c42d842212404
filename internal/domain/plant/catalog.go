package plant

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var seedCatalog []byte

// Catalog is the read-only set of plants available for recommendation.
type Catalog struct {
	plants []Plant
	byID   map[int]int
}

var defaultCatalog = sync.OnceValue(func() *Catalog {
	c, err := LoadCatalog(seedCatalog)
	if err != nil {
		panic(fmt.Sprintf("plant: invalid seed catalog: %v", err))
	}
	return c
})

// DefaultCatalog returns the compiled-in catalog, parsed on first use.
func DefaultCatalog() *Catalog {
	return defaultCatalog()
}

// LoadCatalog parses and validates a YAML catalog document.
func LoadCatalog(data []byte) (*Catalog, error) {
	var doc struct {
		Plants []Plant `yaml:"plants"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	if len(doc.Plants) == 0 {
		return nil, errors.New("catalog is empty")
	}

	c := &Catalog{
		plants: make([]Plant, 0, len(doc.Plants)),
		byID:   make(map[int]int, len(doc.Plants)),
	}
	for _, p := range doc.Plants {
		if err := validatePlant(p); err != nil {
			return nil, fmt.Errorf("plant %d: %w", p.ID, err)
		}
		if _, dup := c.byID[p.ID]; dup {
			return nil, fmt.Errorf("plant %d: duplicate id", p.ID)
		}
		if p.DiseaseTags == nil {
			p.DiseaseTags = []string{}
		}
		c.byID[p.ID] = len(c.plants)
		c.plants = append(c.plants, p)
	}
	return c, nil
}

func validatePlant(p Plant) error {
	if p.ID <= 0 {
		return errors.New("id must be positive")
	}
	if strings.TrimSpace(p.Name) == "" {
		return errors.New("name cannot be empty")
	}
	if p.Sunlight == "" || p.Watering == "" || p.CareIntensity == "" {
		return errors.New("sunlight, watering and careIntensity are required")
	}
	if _, err := ParseSunlight(string(p.Sunlight)); err != nil {
		return err
	}
	if _, err := ParseWatering(string(p.Watering)); err != nil {
		return err
	}
	if _, err := ParseCareIntensity(string(p.CareIntensity)); err != nil {
		return err
	}
	for _, tag := range p.DiseaseTags {
		if tag != strings.ToLower(tag) {
			return fmt.Errorf("disease tag %q must be lowercase", tag)
		}
	}
	return nil
}

// Len reports the number of plants.
func (c *Catalog) Len() int {
	return len(c.plants)
}

// All returns a copy of every plant in catalog order.
func (c *Catalog) All() []Plant {
	out := make([]Plant, 0, len(c.plants))
	for _, p := range c.plants {
		out = append(out, p.clone())
	}
	return out
}

// ByID looks a plant up by identifier.
func (c *Catalog) ByID(id int) (Plant, bool) {
	idx, ok := c.byID[id]
	if !ok {
		return Plant{}, false
	}
	return c.plants[idx].clone(), true
}

func (c *Catalog) each(fn func(p *Plant)) {
	for i := range c.plants {
		fn(&c.plants[i])
	}
}
