package dataset

import (
	"sort"
	"strings"

	"PanganPulse/internal/domain/models"
	"PanganPulse/pkg/util"
)

// Table is a raw rectangular dataset: a header row and string cells.
type Table struct {
	Columns []string
	Rows    [][]string
}

// commodityMap standardizes commodity names agreed with the trade office.
// Exact match against the upper-trimmed value, else passthrough.
var commodityMap = map[string]string{
	"CURAH":                     "MINYAK GORENG CURAH",
	"KEMASAN":                   "MINYAK GORENG KEMASAN",
	"MERAH BESAR":               "CABE MERAH BESAR",
	"MERAH KERITING":            "CABE MERAH KERITING",
	"MINYAK KITA":               "MINYAK GORENG MINYAK KITA",
	"RAWIT HIJAU":               "CABE RAWIT HIJAU",
	"RAWIT MERAH":               "CABE RAWIT MERAH",
	"SEGITIGA BIRU (KW MEDIUM)": "TEPUNG SEGITIGA BIRU (KW MEDIUM)",
}

// marketMap standardizes market name variants.
var marketMap = map[string]string{
	"PASAR CISOKA":  "CISOKA",
	"CISOKA":        "CISOKA",
	"PASAR SEPATAN": "SEPATAN",
	"SEPATAN":       "SEPATAN",
}

// columnAliases maps each canonical column to its accepted header names.
var columnAliases = map[string][]string{
	"tanggal":   {"tanggal", "tgl"},
	"komoditas": {"komoditas", "komoditi"},
	"pasar":     {"pasar"},
	"harga":     {"harga"},
}

// CanonicalCommodity upper-trims a commodity name and applies the mapping.
func CanonicalCommodity(name string) string {
	raw := strings.ToUpper(strings.TrimSpace(name))
	if mapped, ok := commodityMap[raw]; ok {
		return mapped
	}
	return raw
}

// CanonicalMarket upper-trims a market name and applies the mapping.
func CanonicalMarket(name string) string {
	raw := strings.ToUpper(strings.TrimSpace(name))
	if mapped, ok := marketMap[raw]; ok {
		return mapped
	}
	return raw
}

// Normalize cleans a raw price table into canonical records: resolves column
// aliases case-insensitively, parses dates and prices (dropping rows where
// either is unparsable), canonicalizes commodity and market names, and sorts
// ascending by (date, commodity, market). Returns an empty slice when the
// input is empty or a required column is missing entirely.
//
// Duplicate (date, commodity, market) rows survive in input order: the sort
// is stable, so the last observed row per date wins downstream.
func Normalize(t Table) []models.PriceRecord {
	if len(t.Rows) == 0 {
		return []models.PriceRecord{}
	}

	idx, ok := resolveColumns(t.Columns)
	if !ok {
		return []models.PriceRecord{}
	}

	records := make([]models.PriceRecord, 0, len(t.Rows))
	for _, row := range t.Rows {
		if len(row) <= idx.maxIndex() {
			continue
		}
		date, ok := util.ParseDate(row[idx.date])
		if !ok {
			continue
		}
		price, ok := util.ParseFloat(row[idx.price])
		if !ok {
			continue
		}
		records = append(records, models.PriceRecord{
			Date:      date,
			Commodity: CanonicalCommodity(row[idx.commodity]),
			Market:    CanonicalMarket(row[idx.market]),
			Price:     price,
		})
	}

	sort.SliceStable(records, func(i, j int) bool {
		a, b := records[i], records[j]
		if !a.Date.Equal(b.Date) {
			return a.Date.Before(b.Date)
		}
		if a.Commodity != b.Commodity {
			return a.Commodity < b.Commodity
		}
		return a.Market < b.Market
	})

	return records
}

// Series extracts the sorted history of one (market, commodity) pair from
// normalized records, preserving relative order of duplicate dates.
func Series(records []models.PriceRecord, market, commodity string) models.PriceSeries {
	series := make(models.PriceSeries, 0)
	for _, r := range records {
		if r.Market == market && r.Commodity == commodity {
			series = append(series, r)
		}
	}
	sort.SliceStable(series, func(i, j int) bool {
		return series[i].Date.Before(series[j].Date)
	})
	return series
}

type columnIndex struct {
	date, commodity, market, price int
}

func (c columnIndex) maxIndex() int {
	m := c.date
	for _, v := range []int{c.commodity, c.market, c.price} {
		if v > m {
			m = v
		}
	}
	return m
}

func resolveColumns(columns []string) (columnIndex, bool) {
	lowered := make([]string, len(columns))
	for i, c := range columns {
		lowered[i] = strings.ToLower(strings.TrimSpace(c))
	}

	find := func(canonical string) int {
		for _, alias := range columnAliases[canonical] {
			for i, c := range lowered {
				if c == alias {
					return i
				}
			}
		}
		return -1
	}

	idx := columnIndex{
		date:      find("tanggal"),
		commodity: find("komoditas"),
		market:    find("pasar"),
		price:     find("harga"),
	}
	if idx.date < 0 || idx.commodity < 0 || idx.market < 0 || idx.price < 0 {
		return columnIndex{}, false
	}
	return idx, true
}
