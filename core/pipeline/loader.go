package pipeline

import (
	"context"
	"encoding/csv"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Column names the loader maps to typed fields. Anything else in the header
// is carried as a pass-through column.
const (
	colZipCode      = "zip_code"
	colSchoolRating = "school_rating"
	colCrimeIndex   = "crime_index"
	colPostalCode   = "postal_code"
	colListingPrice = "listing_price"
	colSqFt         = "sq_ft"
	colRawAddress   = "raw_address"
)

// LoadDemographics reads the demographics source into typed records.
// Postal codes are normalized to exactly 5 zero-padded characters, which
// repairs numeric-typed codes that dropped their leading zeros upstream.
func LoadDemographics(ctx context.Context, src Source) ([]DemographicRecord, error) {
	header, rows, err := readTable(ctx, src)
	if err != nil {
		return nil, err
	}

	if header == nil {
		// Zero-byte file: an empty table, not a malformed one
		return []DemographicRecord{}, nil
	}

	cols, err := indexColumns(header, colZipCode)
	if err != nil {
		return nil, fmt.Errorf("demographics %s: %w", src.Name(), err)
	}

	records := make([]DemographicRecord, 0, len(rows))
	for _, row := range rows {
		rec := DemographicRecord{
			ZipCode:      NormalizeZip(cell(row, col(cols, colZipCode))),
			SchoolRating: parseMetric(cell(row, col(cols, colSchoolRating))),
			CrimeIndex:   cell(row, col(cols, colCrimeIndex)),
			Extra:        passThrough(header, row, cols),
		}
		records = append(records, rec)
	}
	return records, nil
}

// LoadListings reads the listings source into typed records. Price and area
// cells that fail to parse become NaN; such rows still flow through matching
// and the join, surfacing as non-finite derived metrics.
func LoadListings(ctx context.Context, src Source) ([]ListingRecord, error) {
	header, rows, err := readTable(ctx, src)
	if err != nil {
		return nil, err
	}

	if header == nil {
		return []ListingRecord{}, nil
	}

	cols, err := indexColumns(header, colPostalCode, colListingPrice, colSqFt, colRawAddress)
	if err != nil {
		return nil, fmt.Errorf("listings %s: %w", src.Name(), err)
	}

	records := make([]ListingRecord, 0, len(rows))
	for _, row := range rows {
		rec := ListingRecord{
			PostalCode:   cell(row, col(cols, colPostalCode)),
			ListingPrice: parseMetric(cell(row, col(cols, colListingPrice))),
			SqFt:         parseMetric(cell(row, col(cols, colSqFt))),
			RawAddress:   cell(row, col(cols, colRawAddress)),
			Extra:        passThrough(header, row, cols),
		}
		records = append(records, rec)
	}
	return records, nil
}

// readTable opens a delimited source and returns its header and data rows.
// A missing source yields a MissingSourceError so the engine can degrade to
// an empty result instead of failing the run.
func readTable(ctx context.Context, src Source) ([]string, [][]string, error) {
	ok, err := src.Exists(ctx)
	if err != nil {
		return nil, nil, &MissingSourceError{Source: src.Name(), Err: err}
	}
	if !ok {
		return nil, nil, &MissingSourceError{Source: src.Name()}
	}

	r, err := src.Open(ctx)
	if err != nil {
		return nil, nil, &MissingSourceError{Source: src.Name(), Err: err}
	}
	defer r.Close()

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	all, err := reader.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("read %s: %w", src.Name(), err)
	}
	if len(all) == 0 {
		return nil, nil, nil
	}

	header := make([]string, len(all[0]))
	for i, h := range all[0] {
		header[i] = strings.ToLower(strings.TrimSpace(h))
	}
	return header, all[1:], nil
}

// indexColumns maps header names to positions and verifies the required ones.
func indexColumns(header []string, required ...string) (map[string]int, error) {
	cols := make(map[string]int, len(header))
	for i, h := range header {
		if _, seen := cols[h]; !seen {
			cols[h] = i
		}
	}
	for _, name := range required {
		if _, ok := cols[name]; !ok {
			return nil, fmt.Errorf("required column %q not found", name)
		}
	}
	return cols, nil
}

// col returns the position of a column, or -1 when the header lacks it.
func col(cols map[string]int, name string) int {
	if i, ok := cols[name]; ok {
		return i
	}
	return -1
}

// cell returns the trimmed value at index i, or "" when the row is short or
// the column is absent (i < 0 for unmapped optional columns).
func cell(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

// passThrough collects the columns not mapped to a typed field.
func passThrough(header, row []string, cols map[string]int) map[string]string {
	var extra map[string]string
	for i, name := range header {
		if isTypedColumn(name) || cols[name] != i {
			continue
		}
		if extra == nil {
			extra = make(map[string]string)
		}
		extra[name] = cell(row, i)
	}
	return extra
}

func isTypedColumn(name string) bool {
	switch name {
	case colZipCode, colSchoolRating, colCrimeIndex,
		colPostalCode, colListingPrice, colSqFt, colRawAddress:
		return true
	}
	return false
}

// NormalizeZip coerces a raw postal code to the canonical 5-character form by
// left-padding with zeros. Longer values are kept as-is.
func NormalizeZip(raw string) string {
	zip := strings.TrimSpace(raw)
	// Numeric ingestion upstream can leave a float rendering like "7040.0".
	zip = strings.TrimSuffix(zip, ".0")
	for len(zip) < 5 {
		zip = "0" + zip
	}
	return zip
}

// parseMetric converts a cell to a numeric metric. Currency symbols and
// thousands separators are tolerated; anything unparsable becomes NaN.
func parseMetric(raw string) Metric {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, "$")
	s = strings.ReplaceAll(s, ",", "")
	if s == "" {
		return Metric(math.NaN())
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return Metric(math.NaN())
	}
	return Metric(f)
}
