package plant

import "strings"

// Recommend returns the plants satisfying every set criterion, in catalog order.
// It never returns nil.
func Recommend(c *Catalog, crit Criteria) []Plant {
	disease := strings.ToLower(crit.Disease)
	out := make([]Plant, 0)
	c.each(func(p *Plant) {
		if crit.Sunlight != "" && p.Sunlight != crit.Sunlight {
			return
		}
		if crit.Watering != "" && p.Watering != crit.Watering {
			return
		}
		if crit.CareIntensity != "" && p.CareIntensity != crit.CareIntensity {
			return
		}
		if disease != "" && !treats(p, disease) {
			return
		}
		out = append(out, p.clone())
	})
	return out
}

func treats(p *Plant, disease string) bool {
	for _, tag := range p.DiseaseTags {
		if strings.Contains(strings.ToLower(tag), disease) {
			return true
		}
	}
	return strings.Contains(strings.ToLower(p.MedicinalValue), disease)
}
