package advisory

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"PanganPulse/internal/domain/models"
)

// unavailableLine is returned when there is nothing to advise on.
const unavailableLine = "Data historis atau data prediksi belum tersedia sehingga " +
	"belum dapat disusun saran kebijakan yang spesifik."

// FormatRupiah renders a price for display, e.g. 29625 becomes "Rp 29,625".
// Halves round to even so the figures match the dashboard copy exactly.
func FormatRupiah(v float64) string {
	n := int64(math.RoundToEven(v))
	sign := ""
	if n < 0 {
		sign = "-"
		n = -n
	}
	digits := strconv.FormatInt(n, 10)

	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return "Rp " + sign + b.String()
}

// Advise turns a forecast into a policy recommendation text for regional
// food price officers. The output is a fixed sequence of markdown lines:
// a figure summary followed by bullets selected by the trend class, with
// an extra monitoring bullet whenever the forecast is not stable. The
// wording is the published dashboard copy and must not be reworded.
func Advise(history models.PriceSeries, forecast models.Forecast, horizonDays int) []string {
	if len(history) == 0 || len(forecast) == 0 {
		return []string{unavailableLine}
	}

	last := history[len(history)-1]
	a := Assess(history, forecast, horizonDays)

	lines := []string{
		fmt.Sprintf("**Ringkasan Prediksi Harga %s – Pasar %s**", last.Commodity, last.Market),
		fmt.Sprintf("- Harga aktual terakhir: **%s**", FormatRupiah(a.LastActual)),
		fmt.Sprintf("- Rata-rata prediksi %d hari: **%s** (%+.1f%%)", a.Horizon, FormatRupiah(a.MeanPred), a.ChangeMeanPct),
		fmt.Sprintf("- Prediksi hari ke-%d: **%s** (%+.1f%%)", a.Horizon, FormatRupiah(a.LastPred), a.ChangeLastPct),
		fmt.Sprintf("- Tren: **%s** | Volatilitas: **%s** (±%.1f%%/hari)", a.Trend, a.Volatility, a.VolatilityPct),
		"",
		"**Implikasi Kebijakan yang Disarankan:**",
	}

	volatile := a.Volatility != models.VolatilityStable

	switch a.Trend {
	case models.TrendSharpRise, models.TrendLikelyRise:
		lines = append(lines,
			"- **Penguatan pasokan cepat:** koordinasi pemasok/gapoktan untuk menambah suplai 3–7 hari ke depan.",
			"- **Pantau potensi spekulasi:** cek stok pedagang besar, pastikan tidak ada penahanan barang.",
			"- **Publikasi harga referensi:** perkuat informasi harga agar kenaikan tidak berlebihan.",
		)
		if volatile {
			lines = append(lines, "- **Pantau harian:** karena harga bergejolak, lakukan monitoring lebih sering & siapkan opsi intervensi.")
		}
	case models.TrendMildRise:
		lines = append(lines,
			"- **Antisipasi dini:** kenaikan masih ringan, namun disarankan memastikan pasokan lancar (hindari kekosongan stok).",
			"- **Monitoring lebih rapat:** cek konsistensi kenaikan 3–7 hari ke depan sebelum intervensi besar.",
			"- **Komunikasi ke pedagang:** ingatkan harga wajar & transparansi informasi agar kenaikan tidak berkembang jadi lonjakan.",
		)
		if volatile {
			lines = append(lines, "- **Waspadai lonjakan mendadak:** karena prediksi bergejolak, siapkan skenario operasi pasar bila diperlukan.")
		}
	case models.TrendSharpFall, models.TrendLikelyFall:
		lines = append(lines,
			"- **Evaluasi kualitas & serapan:** pastikan penurunan bukan karena kualitas menurun atau pasokan tidak terserap.",
			"- **Stabilisasi pelaku usaha:** bila jatuh tajam, pertimbangkan promosi pasar / kerja sama penyaluran / penguatan permintaan.",
		)
		if volatile {
			lines = append(lines, "- **Pantau harian:** fluktuasi tinggi bisa memicu harga kembali naik mendadak.")
		}
	case models.TrendMildFall:
		lines = append(lines,
			"- **Normalisasi ringan:** penurunan masih wajar, fokus pada menjaga kualitas & kelancaran distribusi.",
			"- **Monitoring rutin:** pastikan penurunan tidak berlanjut menjadi anjlok tajam.",
		)
	default:
		lines = append(lines,
			"- **Pertahankan pola distribusi:** harga relatif stabil, cukup monitoring rutin.",
			"- **Jaga kualitas & kontinuitas pasokan** agar stabilitas terjaga.",
		)
		if volatile {
			lines = append(lines, "- **Meski rata-rata stabil, fluktuasi tinggi:** lakukan pemantauan lebih sering untuk antisipasi lonjakan.")
		}
	}

	return lines
}
