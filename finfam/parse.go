package finfam

import "strings"

const product30YearFixed = "30-year-fixed"

// Summary is the flattened 30-year-fixed view of one daily document.
// Nil pointers mean the feed did not carry the value.
type Summary struct {
	ObservationDate string
	LastUpdated     string

	MedianAPR *float64
	MinAPR    *float64
	MaxAPR    *float64
	Count     *int

	// BestAPR is the lowest APR across all institutions' 30-year-fixed
	// offers, skipping any offer flagged with an outlier reason.
	BestAPR         *float64
	BestInstitution string
}

// Parse30Y extracts the 30-year-fixed summary metrics and computes the
// best non-outlier APR across institutions.
func Parse30Y(doc *Document) Summary {
	var s Summary
	if doc == nil {
		return s
	}

	s.ObservationDate = doc.Metadata.ObservationDate
	s.LastUpdated = doc.Metadata.LastUpdated

	if pt, ok := doc.ProductTypes[product30YearFixed]; ok {
		s.MedianAPR = pt.MedianAPR
		s.MinAPR = pt.MinAPR
		s.MaxAPR = pt.MaxAPR
		s.Count = pt.Count
	}

	for _, inst := range doc.Institutions {
		for _, rate := range inst.Rates {
			if rate.NormalizedProductType != product30YearFixed {
				continue
			}
			if strings.TrimSpace(rate.OutlierReason) != "" {
				continue
			}
			if rate.APR == nil {
				continue
			}
			if s.BestAPR == nil || *rate.APR < *s.BestAPR {
				s.BestAPR = rate.APR
				s.BestInstitution = inst.Name
			}
		}
	}

	return s
}
