package models

// CommodityInfo is one commodity with its dashboard category.
type CommodityInfo struct {
	Name     string `json:"komoditas"`
	Category string `json:"kategori"`
}

// ForecastResponse is the forecast API payload.
type ForecastResponse struct {
	Market    string   `json:"pasar"`
	Commodity string   `json:"komoditas"`
	Days      int      `json:"days"`
	Points    Forecast `json:"points"`
	MAE       *float64 `json:"mae,omitempty"`
	RMSE      *float64 `json:"rmse,omitempty"`
}

// AdvisoryResponse is the advisory API payload: the assessment figures plus
// the recommendation text lines consumed verbatim by the dashboard.
type AdvisoryResponse struct {
	Market     string           `json:"pasar"`
	Commodity  string           `json:"komoditas"`
	Assessment *TrendAssessment `json:"assessment,omitempty"`
	Lines      []string         `json:"lines"`
}

// BadgeResponse is the compact badge API payload.
type BadgeResponse struct {
	Market    string `json:"pasar"`
	Commodity string `json:"komoditas"`
	Badge     Badge  `json:"badge"`
}
