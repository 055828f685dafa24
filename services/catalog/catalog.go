// Package catalog holds the fixed list of bookable protocol services and the
// lookups the pricing aggregator depends on.
package catalog

import (
	"fmt"

	"btmportal/models"
)

// Catalog is the per-flow service list. Primary (online) entries are bundled
// into the numeric total; additional (offline) entries are informational.
type Catalog struct {
	flow     models.Flow
	services []models.Service
	byID     map[string]models.Service
}

// New builds the catalog for a booking flow, normalizing option price ranges
// from the seed data. It fails on duplicate identifiers: a single selection
// set spans primary and additional services, so IDs must be unique across
// both.
func New(flow models.Flow) (*Catalog, error) {
	primary, ok := primarySeed[flow]
	if !ok {
		return nil, fmt.Errorf("unknown booking flow %q", flow)
	}

	c := &Catalog{
		flow: flow,
		byID: make(map[string]models.Service),
	}
	for _, raw := range primary {
		if err := c.add(raw, models.TagOnline); err != nil {
			return nil, err
		}
	}
	for _, raw := range additionalSeed {
		if err := c.add(raw, models.TagOffline); err != nil {
			return nil, err
		}
	}
	return c, nil
}

func (c *Catalog) add(raw rawService, tag models.ServiceTag) error {
	svc, err := buildService(raw, tag)
	if err != nil {
		return err
	}
	if _, exists := c.byID[svc.ID]; exists {
		return fmt.Errorf("duplicate service id %q", svc.ID)
	}
	c.byID[svc.ID] = svc
	c.services = append(c.services, svc)
	return nil
}

// Flow returns the booking flow this catalog was built for.
func (c *Catalog) Flow() models.Flow {
	return c.flow
}

// Services returns all entries in display order.
func (c *Catalog) Services() []models.Service {
	return c.services
}

// Find returns the entry for id. Absence is not an error; callers treat
// unknown identifiers as contributing zero to totals, since a selection may
// reference a stale or removed id.
func (c *Catalog) Find(id string) (models.Service, bool) {
	svc, ok := c.byID[id]
	return svc, ok
}

// IsPrimary reports whether id names an online (numeric-total) service.
func (c *Catalog) IsPrimary(id string) bool {
	svc, ok := c.byID[id]
	return ok && svc.Tag == models.TagOnline
}

// Primary returns the online entries in display order.
func (c *Catalog) Primary() []models.Service {
	return c.byTag(models.TagOnline)
}

// Additional returns the offline entries in display order.
func (c *Catalog) Additional() []models.Service {
	return c.byTag(models.TagOffline)
}

func (c *Catalog) byTag(tag models.ServiceTag) []models.Service {
	var out []models.Service
	for _, svc := range c.services {
		if svc.Tag == tag {
			out = append(out, svc)
		}
	}
	return out
}
