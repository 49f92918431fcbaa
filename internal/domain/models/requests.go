package models

// Requests for the HTTP API. Defined in domain for consistency and reuse.

type PricesRequest struct {
	Market    string `query:"market" json:"market" validate:"required"`
	Commodity string `query:"commodity" json:"commodity" validate:"required"`
	Limit     int    `query:"limit" json:"limit" default:"365" validate:"gte=1,lte=5000"`
}

type CommoditiesRequest struct {
	Market string `query:"market" json:"market" validate:"required"`
}

type ForecastRequest struct {
	Market    string `query:"market" json:"market" validate:"required"`
	Commodity string `query:"commodity" json:"commodity" validate:"required"`
	Days      int    `query:"days" json:"days" default:"30" validate:"gte=7,lte=60"`
}

type AdvisoryRequest struct {
	Market    string `query:"market" json:"market" validate:"required"`
	Commodity string `query:"commodity" json:"commodity" validate:"required"`
	Days      int    `query:"days" json:"days" default:"30" validate:"gte=7,lte=60"`
	Horizon   int    `query:"horizon" json:"horizon" default:"7" validate:"gte=1,lte=60"`
}

type BadgeRequest struct {
	Market    string `query:"market" json:"market" validate:"required"`
	Commodity string `query:"commodity" json:"commodity" validate:"required"`
	Days      int    `query:"days" json:"days" default:"30" validate:"gte=7,lte=60"`
}
