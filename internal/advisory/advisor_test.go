package advisory

import (
	"strings"
	"testing"

	"PanganPulse/internal/domain/models"
)

func TestFormatRupiah(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{29625, "Rp 29,625"},
		{1000000, "Rp 1,000,000"},
		{950, "Rp 950"},
		{0, "Rp 0"},
		{14999.6, "Rp 15,000"},
		{14000.5, "Rp 14,000"},
		{14001.5, "Rp 14,002"},
		{-1234, "Rp -1,234"},
		{-1234.5, "Rp -1,234"},
	}
	for _, c := range cases {
		if got := FormatRupiah(c.in); got != c.want {
			t.Fatalf("FormatRupiah(%v) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestAdviseWithoutData(t *testing.T) {
	got := Advise(nil, nil, 7)
	if len(got) != 1 {
		t.Fatalf("expected single line, got %d", len(got))
	}
	want := "Data historis atau data prediksi belum tersedia sehingga " +
		"belum dapat disusun saran kebijakan yang spesifik."
	if got[0] != want {
		t.Fatalf("unexpected line %q", got[0])
	}

	hist := history(14000)
	if got := Advise(hist, nil, 7); len(got) != 1 {
		t.Fatalf("expected single line without forecast, got %d", len(got))
	}
}

func TestAdviseStableForecast(t *testing.T) {
	hist := history(29000, 29500, 29625)
	fc := prediction(hist.LastDate().AddDate(0, 0, 1),
		29625, 29625, 29625, 29625, 29625, 29625, 29625)

	got := Advise(hist, fc, 7)

	wantLines := []string{
		"**Ringkasan Prediksi Harga TELUR AYAM RAS – Pasar CISOKA**",
		"- Harga aktual terakhir: **Rp 29,625**",
		"- Rata-rata prediksi 7 hari: **Rp 29,625** (+0.0%)",
		"- Prediksi hari ke-7: **Rp 29,625** (+0.0%)",
		"- Tren: **relatif stabil** | Volatilitas: **relatif stabil** (±0.0%/hari)",
		"",
		"**Implikasi Kebijakan yang Disarankan:**",
		"- **Pertahankan pola distribusi:** harga relatif stabil, cukup monitoring rutin.",
		"- **Jaga kualitas & kontinuitas pasokan** agar stabilitas terjaga.",
	}
	if len(got) != len(wantLines) {
		t.Fatalf("expected %d lines, got %d:\n%s", len(wantLines), len(got), strings.Join(got, "\n"))
	}
	for i := range wantLines {
		if got[i] != wantLines[i] {
			t.Fatalf("line %d = %q, want %q", i, got[i], wantLines[i])
		}
	}
}

func TestAdviseRisingTrendBullets(t *testing.T) {
	hist := history(20000)
	fc := prediction(hist.LastDate().AddDate(0, 0, 1),
		22000, 22000, 22000, 22000, 22000, 22000, 22000)

	got := strings.Join(Advise(hist, fc, 7), "\n")
	if !strings.Contains(got, "**Penguatan pasokan cepat:**") {
		t.Fatalf("expected supply bullet, got:\n%s", got)
	}
	// flat prediction: no volatility bullet
	if strings.Contains(got, "**Pantau harian:**") {
		t.Fatalf("unexpected volatility bullet for flat forecast:\n%s", got)
	}
}

func TestAdviseVolatileStableAddsMonitoringBullet(t *testing.T) {
	hist := history(10000)
	// mean stays near last actual, day-over-day swings are large
	fc := prediction(hist.LastDate().AddDate(0, 0, 1),
		11000, 9000, 11000, 9000, 11000, 9000, 10000)

	a := Assess(hist, fc, 7)
	if a.Trend != models.TrendStable {
		t.Fatalf("scenario should classify stable, got %q (score %v)", a.Trend, a.Score)
	}
	if a.Volatility == models.VolatilityStable {
		t.Fatalf("scenario should be volatile, got %v%%", a.VolatilityPct)
	}

	got := strings.Join(Advise(hist, fc, 7), "\n")
	if !strings.Contains(got, "**Meski rata-rata stabil, fluktuasi tinggi:**") {
		t.Fatalf("expected monitoring bullet, got:\n%s", got)
	}
}

func TestAdviseMildFallHasNoVolatilityBullet(t *testing.T) {
	hist := history(10000)
	fc := prediction(hist.LastDate().AddDate(0, 0, 1),
		9700, 9700, 9700, 9700, 9700, 9700, 9700)

	a := Assess(hist, fc, 7)
	if a.Trend != models.TrendMildFall {
		t.Fatalf("scenario should classify mild fall, got %q (score %v)", a.Trend, a.Score)
	}

	got := Advise(hist, fc, 7)
	if got[len(got)-1] != "- **Monitoring rutin:** pastikan penurunan tidak berlanjut menjadi anjlok tajam." {
		t.Fatalf("unexpected final bullet %q", got[len(got)-1])
	}
}
