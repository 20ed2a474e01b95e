package pipeline

// Merge inner-joins reconciled listings with demographics on the resolved
// canonical code and derives price_per_sqft for every joined row. Listings
// without a match produce no output row. Many listings may join the same
// demographic record.
//
// On duplicate canonical codes in the demographics table the first row in
// file order wins; later duplicates are unreachable as join targets.
func Merge(listings []ListingRecord, demographics []DemographicRecord) []EnrichedListing {
	index := make(map[string]DemographicRecord, len(demographics))
	for _, d := range demographics {
		if _, ok := index[d.ZipCode]; !ok {
			index[d.ZipCode] = d
		}
	}

	out := make([]EnrichedListing, 0, len(listings))
	for _, l := range listings {
		if l.MatchedZip == "" {
			continue
		}
		d, ok := index[l.MatchedZip]
		if !ok {
			continue
		}

		out = append(out, EnrichedListing{
			ZipCode:      d.ZipCode,
			PostalCode:   l.PostalCode,
			RawAddress:   l.RawAddress,
			ListingPrice: l.ListingPrice,
			SqFt:         l.SqFt,
			// Zero or NaN area yields a non-finite value; the row is kept and
			// consumers must skip non-finite metrics when aggregating.
			PricePerSqFt: Metric(float64(l.ListingPrice) / float64(l.SqFt)),
			SchoolRating: d.SchoolRating,
			CrimeIndex:   d.CrimeIndex,
			Extra:        mergeExtras(d.Extra, l.Extra),
		})
	}
	return out
}

// mergeExtras unions the pass-through columns of both sides. On a column name
// collision the listing value wins.
func mergeExtras(demographic, listing map[string]string) map[string]string {
	if demographic == nil && listing == nil {
		return nil
	}
	merged := make(map[string]string, len(demographic)+len(listing))
	for k, v := range demographic {
		merged[k] = v
	}
	for k, v := range listing {
		merged[k] = v
	}
	return merged
}
