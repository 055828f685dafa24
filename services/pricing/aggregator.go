// Package pricing derives price totals from a set of selected services and
// the return-service flag, and merges them into outbound submissions.
package pricing

import (
	"btmportal/models"
	"btmportal/services/catalog"
	"btmportal/services/currency"
)

// ReturnServiceDiscount is the multiplicative factor applied to the primary
// total when the customer books a return leg.
const ReturnServiceDiscount = 0.9

// OfflineItem is an informational line for a selected offline service. These
// never contribute to the numeric totals; they are settled outside the portal.
type OfflineItem struct {
	ID       string                 `json:"id"`
	Label    string                 `json:"label"`
	PriceNGN float64                `json:"price,omitempty"`
	Options  []models.ServiceOption `json:"options,omitempty"`
}

// Result is the derived pricing state. It is recomputed from scratch on every
// selection or flag change and never stored.
type Result struct {
	SubtotalNGN    float64       `json:"subtotalNGN"`
	SubtotalUSD    float64       `json:"subtotalUSD"`
	DiscountFactor float64       `json:"discountFactor"`
	TotalNGN       float64       `json:"totalNGN"`
	TotalUSD       float64       `json:"totalUSD"`
	OfflineItems   []OfflineItem `json:"offlineItems,omitempty"`
}

// Aggregator computes Results against a flow's catalog. USD prices missing
// from the catalog are derived from the configured exchange rate.
type Aggregator struct {
	Catalog   *catalog.Catalog
	Converter *currency.Converter
}

func NewAggregator(cat *catalog.Catalog, conv *currency.Converter) *Aggregator {
	return &Aggregator{Catalog: cat, Converter: conv}
}

// Compute partitions the selection into primary and offline services, sums
// the flat prices of primary selections in both currencies, and applies the
// return-service discount to the subtotals. Unknown identifiers contribute
// zero. Offline selections only populate the informational summary and are
// never discounted.
func (a *Aggregator) Compute(selection []string, returnService bool) Result {
	res := Result{DiscountFactor: 1}
	for _, id := range selection {
		svc, ok := a.Catalog.Find(id)
		if !ok {
			continue
		}
		if svc.Tag == models.TagOnline {
			res.SubtotalNGN += svc.PriceNGN
			res.SubtotalUSD += a.usdPrice(svc)
			continue
		}
		res.OfflineItems = append(res.OfflineItems, OfflineItem{
			ID:       svc.ID,
			Label:    svc.Label,
			PriceNGN: svc.PriceNGN,
			Options:  svc.Options,
		})
	}
	if returnService {
		res.DiscountFactor = ReturnServiceDiscount
	}
	res.TotalNGN = res.SubtotalNGN * res.DiscountFactor
	res.TotalUSD = res.SubtotalUSD * res.DiscountFactor
	return res
}

// Merge writes the computed totals and the fully resolved selected-service
// records into the outbound payload. The NGN total is canonical; whatever
// currency the user last displayed never changes what is submitted.
func (a *Aggregator) Merge(res Result, selection []string, sub *models.BookingSubmission) {
	sub.TotalPrice = res.TotalNGN
	sub.TotalPriceUSD = res.TotalUSD
	sub.Type = a.Catalog.Flow()

	sub.SelectedServicesDetails = sub.SelectedServicesDetails[:0]
	for _, id := range selection {
		svc, ok := a.Catalog.Find(id)
		if !ok {
			continue
		}
		detail := models.SelectedServiceDetail{
			ID:       svc.ID,
			Label:    svc.Label,
			PriceNGN: svc.PriceNGN,
			PriceUSD: svc.PriceUSD,
		}
		if svc.Tag == models.TagOnline {
			detail.PriceUSD = a.usdPrice(svc)
		}
		sub.SelectedServicesDetails = append(sub.SelectedServicesDetails, detail)
	}
}

func (a *Aggregator) usdPrice(svc models.Service) float64 {
	if svc.PriceUSD > 0 {
		return svc.PriceUSD
	}
	if svc.PriceNGN > 0 {
		return a.Converter.Convert(svc.PriceNGN, currency.NGN, currency.USD)
	}
	return 0
}
