package pricing

import "btmportal/services/catalog"

// Selection models the booking flows where at most one primary service may be
// active at a time: the primary slot is a single optional value, so picking a
// second primary replaces the first instead of adding to it. Additional
// services accumulate freely. Insertion order is preserved for display.
type Selection struct {
	Primary    string
	Additional []string
}

// NewSelection folds a raw id list into a Selection using the catalog's
// partition; a later primary id wins over an earlier one.
func NewSelection(cat *catalog.Catalog, ids []string) Selection {
	var sel Selection
	for _, id := range ids {
		sel = sel.Select(cat, id)
	}
	return sel
}

// Select returns the selection with id added. Selecting a primary service
// replaces any previously selected primary.
func (s Selection) Select(cat *catalog.Catalog, id string) Selection {
	if cat.IsPrimary(id) {
		s.Primary = id
		return s
	}
	for _, existing := range s.Additional {
		if existing == id {
			return s
		}
	}
	s.Additional = append(append([]string(nil), s.Additional...), id)
	return s
}

// Deselect returns the selection with id removed. Dropping the sole primary
// zeroes the primary contribution without touching additional line items.
func (s Selection) Deselect(id string) Selection {
	if s.Primary == id {
		s.Primary = ""
		return s
	}
	out := make([]string, 0, len(s.Additional))
	for _, existing := range s.Additional {
		if existing != id {
			out = append(out, existing)
		}
	}
	s.Additional = out
	return s
}

// IDs flattens the selection back into the wire shape the forms send.
func (s Selection) IDs() []string {
	ids := make([]string, 0, len(s.Additional)+1)
	if s.Primary != "" {
		ids = append(ids, s.Primary)
	}
	return append(ids, s.Additional...)
}

// Empty reports whether nothing is selected.
func (s Selection) Empty() bool {
	return s.Primary == "" && len(s.Additional) == 0
}
