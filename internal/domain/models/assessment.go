package models

// TrendLabel is the 7-way trend classification of a forecast.
type TrendLabel string

const (
	TrendSharpRise   TrendLabel = "naik tajam"
	TrendLikelyRise  TrendLabel = "cenderung naik"
	TrendMildRise    TrendLabel = "naik ringan"
	TrendSharpFall   TrendLabel = "turun tajam"
	TrendLikelyFall  TrendLabel = "cenderung turun"
	TrendMildFall    TrendLabel = "turun ringan"
	TrendStable      TrendLabel = "relatif stabil"
)

// VolatilityLabel is the 3-way volatility classification of a forecast.
type VolatilityLabel string

const (
	VolatilityHigh     VolatilityLabel = "sangat bergejolak"
	VolatilityModerate VolatilityLabel = "cukup bergejolak"
	VolatilityStable   VolatilityLabel = "relatif stabil"
)

// TrendAssessment summarizes a forecast against the last actual price.
// All percentage figures are relative to LastActual.
type TrendAssessment struct {
	Horizon        int             `json:"horizon"`
	LastActual     float64         `json:"last_actual"`
	MeanPred       float64         `json:"mean_pred"`
	LastPred       float64         `json:"last_pred"`
	ChangeMeanPct  float64         `json:"change_mean_pct"`
	ChangeLastPct  float64         `json:"change_last_pct"`
	SlopePctPerDay float64         `json:"slope_pct_per_day"`
	VolatilityPct  float64         `json:"volatility_pct"`
	Score          float64         `json:"score"`
	Trend          TrendLabel      `json:"trend"`
	Volatility     VolatilityLabel `json:"volatility"`
}

// BadgeTrend is the coarse always-visible trend badge. It is classified
// from the dominant absolute signal with its own thresholds and is
// intentionally not unified with TrendLabel.
type BadgeTrend string

const (
	BadgeTrendSharpRise BadgeTrend = "naik tajam"
	BadgeTrendMildRise  BadgeTrend = "naik ringan"
	BadgeTrendSharpFall BadgeTrend = "turun tajam"
	BadgeTrendMildFall  BadgeTrend = "turun ringan"
	BadgeTrendStable    BadgeTrend = "stabil"
)

// BadgeVolatility is the coarse volatility badge.
type BadgeVolatility string

const (
	BadgeVolHigh   BadgeVolatility = "tinggi"
	BadgeVolMedium BadgeVolatility = "sedang"
	BadgeVolLow    BadgeVolatility = "rendah"
)

// Badge pairs the compact dashboard labels.
type Badge struct {
	Trend      BadgeTrend      `json:"trend"`
	Volatility BadgeVolatility `json:"volatility"`
}
