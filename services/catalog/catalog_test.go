package catalog

import (
	"testing"

	"btmportal/models"
)

func TestNew_BuildsBothFlows(t *testing.T) {
	for _, flow := range []models.Flow{models.FlowDomestic, models.FlowInternational} {
		cat, err := New(flow)
		if err != nil {
			t.Fatalf("New(%s): %v", flow, err)
		}
		if cat.Flow() != flow {
			t.Errorf("Flow() = %s, want %s", cat.Flow(), flow)
		}
		if got := len(cat.Primary()); got != 2 {
			t.Errorf("%s: primary services = %d, want 2", flow, got)
		}
		if got := len(cat.Additional()); got != 5 {
			t.Errorf("%s: additional services = %d, want 5", flow, got)
		}
	}
}

func TestNew_RejectsUnknownFlow(t *testing.T) {
	if _, err := New(models.Flow("interplanetary")); err == nil {
		t.Fatal("expected error for unknown flow")
	}
}

func TestCatalog_IdentifiersAreUnique(t *testing.T) {
	cat, err := New(models.FlowInternational)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	seen := make(map[string]bool)
	for _, svc := range cat.Services() {
		if seen[svc.ID] {
			t.Errorf("duplicate service id %q", svc.ID)
		}
		seen[svc.ID] = true
	}
}

func TestCatalog_Find(t *testing.T) {
	cat, _ := New(models.FlowInternational)

	svc, ok := cat.Find("standard-meet-greet")
	if !ok {
		t.Fatal("standard-meet-greet not found")
	}
	if svc.PriceNGN != 20000 || svc.PriceUSD != 20 {
		t.Errorf("international standard-meet-greet priced %v/%v, want 20000/20", svc.PriceNGN, svc.PriceUSD)
	}

	if _, ok := cat.Find("jet-charter"); ok {
		t.Error("unknown id should report absence, not a catalog entry")
	}
}

func TestCatalog_PerFlowPrimaryPrices(t *testing.T) {
	dom, _ := New(models.FlowDomestic)
	intl, _ := New(models.FlowInternational)

	tests := []struct {
		cat      *Catalog
		id       string
		wantNGN  float64
		wantUSD  float64
		flowName string
	}{
		{dom, "standard-meet-greet", 15000, 0, "domestic"},
		{dom, "vip-meet-greet", 30000, 0, "domestic"},
		{intl, "standard-meet-greet", 20000, 20, "international"},
		{intl, "vip-meet-greet", 35000, 40, "international"},
	}
	for _, tt := range tests {
		svc, ok := tt.cat.Find(tt.id)
		if !ok {
			t.Fatalf("%s: %s not found", tt.flowName, tt.id)
		}
		if svc.PriceNGN != tt.wantNGN || svc.PriceUSD != tt.wantUSD {
			t.Errorf("%s %s priced %v/%v, want %v/%v", tt.flowName, tt.id, svc.PriceNGN, svc.PriceUSD, tt.wantNGN, tt.wantUSD)
		}
	}
}

func TestCatalog_IsPrimaryPartition(t *testing.T) {
	cat, _ := New(models.FlowInternational)

	if !cat.IsPrimary("vip-meet-greet") {
		t.Error("vip-meet-greet should be primary")
	}
	for _, id := range []string{"car-hire", "lounge-services", "tour-entertainment"} {
		if cat.IsPrimary(id) {
			t.Errorf("%s should not be primary", id)
		}
	}
	if cat.IsPrimary("jet-charter") {
		t.Error("unknown id should not be primary")
	}
}

// Option price ranges are free text in the seed data; the catalog must expose
// them only as structured numeric bounds.
func TestCatalog_NormalizesOptionRanges(t *testing.T) {
	cat, _ := New(models.FlowInternational)

	carHire, ok := cat.Find("car-hire")
	if !ok {
		t.Fatal("car-hire not found")
	}
	if len(carHire.Options) != 3 {
		t.Fatalf("car-hire options = %d, want 3", len(carHire.Options))
	}
	bus := carHire.Options[0]
	if bus.Type != "Bus" || bus.MinNGN != 170000 || bus.MaxNGN != 200000 {
		t.Errorf("Bus option = %+v, want Bus 170000-200000", bus)
	}

	transfer, _ := cat.Find("airport-transfer")
	saloon := transfer.Options[0]
	if saloon.MinNGN != 90000 || saloon.MaxNGN != 0 {
		t.Errorf("single-figure option = %+v, want min 90000 and no max", saloon)
	}

	lounge, _ := cat.Find("lounge-services")
	if !lounge.Priced() || lounge.PriceNGN != 30200 {
		t.Errorf("lounge-services = %+v, want flat ₦30,200", lounge)
	}
}

func TestParseRange(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantMin float64
		wantMax float64
		wantErr bool
	}{
		{"full range", "₦170,000 - ₦200,000", 170000, 200000, false},
		{"single figure", "₦90,000", 90000, 0, false},
		{"no glyph", "1,500", 1500, 0, false},
		{"no separators", "₦500", 500, 0, false},
		{"tight spacing", "₦103,000-₦150,000", 103000, 150000, false},
		{"three bounds", "₦1 - ₦2 - ₦3", 0, 0, true},
		{"inverted", "₦200,000 - ₦170,000", 0, 0, true},
		{"garbage", "call us", 0, 0, true},
		{"empty", "", 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			min, max, err := parseRange(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("parseRange(%q) expected error", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseRange(%q): %v", tt.input, err)
			}
			if min != tt.wantMin || max != tt.wantMax {
				t.Errorf("parseRange(%q) = %v, %v, want %v, %v", tt.input, min, max, tt.wantMin, tt.wantMax)
			}
		})
	}
}

func TestArrivalCities(t *testing.T) {
	if got := len(ArrivalCities(models.FlowDomestic)); got != 12 {
		t.Errorf("domestic arrival cities = %d, want 12", got)
	}
	if got := len(ArrivalCities(models.FlowInternational)); got != 4 {
		t.Errorf("international arrival cities = %d, want 4", got)
	}
}
