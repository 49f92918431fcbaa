package models

// Predictor runs one inference step: a fixed-length scaled window in,
// one scaled next-value prediction out.
type Predictor interface {
	Predict(window []float64) float64
}

// Scaler is the invertible value transform fitted during training.
type Scaler interface {
	Transform(v float64) float64
	Inverse(v float64) float64
}

// ForecastArtifact bundles a trained sequence predictor with the scaler it
// was fitted with. Immutable after load; safe to share across requests.
type ForecastArtifact struct {
	Market     string
	Commodity  string
	WindowSize int
	Model      Predictor
	Scaler     Scaler
	MAE        *float64
	RMSE       *float64
}
