package advisory

import (
	"math"

	"PanganPulse/internal/domain/models"
)

// Assess summarizes the first horizonDays of a forecast against the last
// actual price and classifies trend and volatility.
//
// The baseline is the last historical price; when that is zero or negative
// (bad upstream data) it falls back to the trailing 7-day mean, floored at
// 1.0 so percentage figures stay finite.
func Assess(history models.PriceSeries, forecast models.Forecast, horizonDays int) models.TrendAssessment {
	lastActual := history.LastPrice()
	if lastActual <= 0 {
		lastActual = math.Max(history.TrailingMean(7), 1.0)
	}

	h := horizonDays
	if len(forecast) < h {
		h = len(forecast)
	}
	preds := forecast.Prices()[:h]

	var meanPred, lastPred float64
	if h > 0 {
		sum := 0.0
		for _, p := range preds {
			sum += p
		}
		meanPred = sum / float64(h)
		lastPred = preds[h-1]
	}

	changeMean := (meanPred - lastActual) / lastActual * 100
	changeLast := (lastPred - lastActual) / lastActual * 100
	slopePct := regressionSlope(preds) / lastActual * 100
	vol := dailyChangeStddev(preds)

	score := 0.5*changeMean + 0.3*changeLast + 0.2*slopePct

	return models.TrendAssessment{
		Horizon:        h,
		LastActual:     lastActual,
		MeanPred:       meanPred,
		LastPred:       lastPred,
		ChangeMeanPct:  changeMean,
		ChangeLastPct:  changeLast,
		SlopePctPerDay: slopePct,
		VolatilityPct:  vol,
		Score:          score,
		Trend:          classifyTrend(score),
		Volatility:     classifyVolatility(vol),
	}
}

// regressionSlope is the least-squares slope of values against their index.
// Fewer than two points has no direction, so the slope is zero.
func regressionSlope(values []float64) float64 {
	n := len(values)
	if n < 2 {
		return 0
	}
	var sumX, sumY, sumXY, sumXX float64
	for i, v := range values {
		x := float64(i)
		sumX += x
		sumY += v
		sumXY += x * v
		sumXX += x * x
	}
	fn := float64(n)
	denom := fn*sumXX - sumX*sumX
	if denom == 0 {
		return 0
	}
	return (fn*sumXY - sumX*sumY) / denom
}

// dailyChangeStddev is the population standard deviation of day-over-day
// percentage changes. Each change divides by max(previous, 1.0) so values
// near zero do not blow the figure up.
func dailyChangeStddev(values []float64) float64 {
	if len(values) < 2 {
		return 0
	}
	changes := make([]float64, 0, len(values)-1)
	for i := 1; i < len(values); i++ {
		prev := math.Max(values[i-1], 1.0)
		changes = append(changes, (values[i]-values[i-1])/prev*100)
	}
	mean := 0.0
	for _, c := range changes {
		mean += c
	}
	mean /= float64(len(changes))
	variance := 0.0
	for _, c := range changes {
		d := c - mean
		variance += d * d
	}
	variance /= float64(len(changes))
	return math.Sqrt(variance)
}

func classifyTrend(score float64) models.TrendLabel {
	switch {
	case score >= 12:
		return models.TrendSharpRise
	case score >= 6:
		return models.TrendLikelyRise
	case score >= 2:
		return models.TrendMildRise
	case score <= -12:
		return models.TrendSharpFall
	case score <= -6:
		return models.TrendLikelyFall
	case score <= -2:
		return models.TrendMildFall
	default:
		return models.TrendStable
	}
}

func classifyVolatility(volatilityPct float64) models.VolatilityLabel {
	switch {
	case volatilityPct >= 8:
		return models.VolatilityHigh
	case volatilityPct >= 4:
		return models.VolatilityModerate
	default:
		return models.VolatilityStable
	}
}

// ClassifyBadge produces the compact dashboard labels. It picks the more
// decisive of the two change signals by absolute value and uses coarser
// thresholds than the advisory classification; the two are deliberately
// separate because they drive differently worded outputs. The volatility
// signal is its own as well: sample stddev of day-over-day changes across
// the whole forecast, not the advisory's analysis window.
func ClassifyBadge(a models.TrendAssessment, forecast models.Forecast) models.Badge {
	signal := a.ChangeMeanPct
	if math.Abs(a.ChangeLastPct) > math.Abs(a.ChangeMeanPct) {
		signal = a.ChangeLastPct
	}

	var trend models.BadgeTrend
	switch {
	case signal > 10:
		trend = models.BadgeTrendSharpRise
	case signal > 3:
		trend = models.BadgeTrendMildRise
	case signal < -10:
		trend = models.BadgeTrendSharpFall
	case signal < -3:
		trend = models.BadgeTrendMildFall
	default:
		trend = models.BadgeTrendStable
	}

	volatility := badgeVolatility(forecast.Prices())

	var vol models.BadgeVolatility
	switch {
	case volatility > 8:
		vol = models.BadgeVolHigh
	case volatility > 4:
		vol = models.BadgeVolMedium
	default:
		vol = models.BadgeVolLow
	}

	return models.Badge{Trend: trend, Volatility: vol}
}

// badgeVolatility is the sample standard deviation of day-over-day
// percentage changes over all values. Three values is the minimum for a
// meaningful figure; fewer yields zero.
func badgeVolatility(values []float64) float64 {
	if len(values) <= 2 {
		return 0
	}
	changes := make([]float64, 0, len(values)-1)
	for i := 1; i < len(values); i++ {
		changes = append(changes, (values[i]-values[i-1])/values[i-1]*100)
	}
	mean := 0.0
	for _, c := range changes {
		mean += c
	}
	mean /= float64(len(changes))
	variance := 0.0
	for _, c := range changes {
		d := c - mean
		variance += d * d
	}
	variance /= float64(len(changes) - 1)
	return math.Sqrt(variance)
}
