package dataset

import (
	"testing"
	"time"
)

func table(columns []string, rows ...[]string) Table {
	return Table{Columns: columns, Rows: rows}
}

func TestNormalizeEmptyInput(t *testing.T) {
	got := Normalize(Table{})
	if len(got) != 0 {
		t.Fatalf("expected empty result, got %d records", len(got))
	}
}

func TestNormalizeMissingRequiredColumn(t *testing.T) {
	got := Normalize(table(
		[]string{"tanggal", "komoditas", "harga"},
		[]string{"2024-01-02", "BERAS", "14000"},
	))
	if len(got) != 0 {
		t.Fatalf("expected empty result without pasar column, got %d", len(got))
	}
}

func TestNormalizeColumnAliases(t *testing.T) {
	got := Normalize(table(
		[]string{"TGL", "Komoditi", "PASAR", "Harga"},
		[]string{"2024-01-02", "beras", "pasar cisoka", "14000"},
	))
	if len(got) != 1 {
		t.Fatalf("expected 1 record, got %d", len(got))
	}
	r := got[0]
	if r.Commodity != "BERAS" || r.Market != "CISOKA" || r.Price != 14000 {
		t.Fatalf("unexpected record %+v", r)
	}
}

func TestNormalizeDropsUnparsableRows(t *testing.T) {
	got := Normalize(table(
		[]string{"tanggal", "komoditas", "pasar", "harga"},
		[]string{"2024-01-02", "BERAS", "CISOKA", "14000"},
		[]string{"bukan-tanggal", "BERAS", "CISOKA", "14000"},
		[]string{"2024-01-03", "BERAS", "CISOKA", "n/a"},
	))
	if len(got) != 1 {
		t.Fatalf("expected 1 surviving record, got %d", len(got))
	}
}

func TestNormalizeKeepsRowsWithBlankNames(t *testing.T) {
	got := Normalize(table(
		[]string{"tanggal", "komoditas", "pasar", "harga"},
		[]string{"2024-01-02", "", "", "14000"},
	))
	if len(got) != 1 {
		t.Fatalf("expected blank-name row kept, got %d records", len(got))
	}
	if got[0].Commodity != "" || got[0].Market != "" {
		t.Fatalf("expected empty canonical names, got %+v", got[0])
	}
}

func TestNormalizeSortsByDateCommodityMarket(t *testing.T) {
	got := Normalize(table(
		[]string{"tanggal", "komoditas", "pasar", "harga"},
		[]string{"2024-01-03", "GULA PASIR", "SEPATAN", "17500"},
		[]string{"2024-01-02", "GULA PASIR", "SEPATAN", "17000"},
		[]string{"2024-01-02", "BERAS", "CISOKA", "14000"},
	))
	if len(got) != 3 {
		t.Fatalf("expected 3 records, got %d", len(got))
	}
	if got[0].Commodity != "BERAS" {
		t.Fatalf("expected BERAS first, got %+v", got[0])
	}
	if !got[2].Date.Equal(time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("expected latest date last, got %+v", got[2])
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	in := table(
		[]string{"tanggal", "komoditas", "pasar", "harga"},
		[]string{"2024-01-02", "curah", " pasar sepatan ", "15500"},
		[]string{"2024-01-03", "MINYAK GORENG CURAH", "SEPATAN", "15600"},
	)
	first := Normalize(in)

	rows := make([][]string, len(first))
	for i, r := range first {
		rows[i] = []string{r.Date.Format("2006-01-02"), r.Commodity, r.Market, "15500"}
	}
	second := Normalize(table([]string{"tanggal", "komoditas", "pasar", "harga"}, rows...))

	for i := range second {
		if second[i].Commodity != first[i].Commodity || second[i].Market != first[i].Market {
			t.Fatalf("normalization not idempotent at %d: %+v vs %+v", i, second[i], first[i])
		}
	}
}

func TestNormalizeKeepsDuplicateDatesInRowOrder(t *testing.T) {
	got := Normalize(table(
		[]string{"tanggal", "komoditas", "pasar", "harga"},
		[]string{"2024-01-02", "BERAS", "CISOKA", "14000"},
		[]string{"2024-01-02", "BERAS", "CISOKA", "14100"},
	))
	if len(got) != 2 {
		t.Fatalf("expected duplicates kept, got %d", len(got))
	}
	// stable sort: last row in input order stays last, so it wins downstream
	if got[1].Price != 14100 {
		t.Fatalf("expected last observed price last, got %+v", got[1])
	}

	series := Series(got, "CISOKA", "BERAS")
	if series.LastPrice() != 14100 {
		t.Fatalf("expected last write wins, got %v", series.LastPrice())
	}
}

func TestCanonicalCommodityMapping(t *testing.T) {
	cases := map[string]string{
		"CURAH":                     "MINYAK GORENG CURAH",
		"kemasan":                   "MINYAK GORENG KEMASAN",
		" MERAH BESAR ":             "CABE MERAH BESAR",
		"merah keriting":            "CABE MERAH KERITING",
		"Minyak Kita":               "MINYAK GORENG MINYAK KITA",
		"RAWIT HIJAU":               "CABE RAWIT HIJAU",
		"rawit merah ":              "CABE RAWIT MERAH",
		"segitiga biru (kw medium)": "TEPUNG SEGITIGA BIRU (KW MEDIUM)",
		"Beras Medium":              "BERAS MEDIUM",
	}
	for in, want := range cases {
		if got := CanonicalCommodity(in); got != want {
			t.Fatalf("CanonicalCommodity(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestCanonicalMarketMapping(t *testing.T) {
	cases := map[string]string{
		"PASAR CISOKA":  "CISOKA",
		"cisoka ":       "CISOKA",
		"Pasar Sepatan": "SEPATAN",
		"SEPATAN":       "SEPATAN",
		"pasar lain":    "PASAR LAIN",
	}
	for in, want := range cases {
		if got := CanonicalMarket(in); got != want {
			t.Fatalf("CanonicalMarket(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestCategorizeCommodity(t *testing.T) {
	cases := map[string]string{
		"BERAS MEDIUM":        "BERAS",
		"MINYAK GORENG CURAH": "MINYAK GORENG",
		"CABE RAWIT MERAH":    "CABAI",
		"BAWANG PUTIH":        "BAWANG",
		"GULA PASIR":          "GULA",
		"TELUR AYAM RAS":      "TELUR",
		"DAGING SAPI":         "PROTEIN HEWANI",
		"TEPUNG SEGITIGA BIRU (KW MEDIUM)": "TEPUNG",
		"GARAM": "LAINNYA",
	}
	for in, want := range cases {
		if got := CategorizeCommodity(in); got != want {
			t.Fatalf("CategorizeCommodity(%q) = %q, want %q", in, got, want)
		}
	}
}
