package artifact

// LinearModel is an autoregressive single-step predictor: a dot product of
// the scaled window with trained weights plus a bias. The training pipeline
// exports its fitted sequence model in this form.
type LinearModel struct {
	Weights []float64
	Bias    float64
}

// Predict runs one inference step on a scaled window. The window is consumed
// in chronological order and must match the weight vector length; extra
// leading values are ignored, a short window predicts from what is present.
func (m *LinearModel) Predict(window []float64) float64 {
	n := len(window)
	if n > len(m.Weights) {
		window = window[n-len(m.Weights):]
		n = len(window)
	}
	out := m.Bias
	for i := 0; i < n; i++ {
		out += m.Weights[len(m.Weights)-n+i] * window[i]
	}
	return out
}

// MinMaxScaler rescales prices into the [0, 1] model space fitted during
// training, and back.
type MinMaxScaler struct {
	Min float64
	Max float64
}

func (s *MinMaxScaler) span() float64 {
	d := s.Max - s.Min
	if d == 0 {
		return 1
	}
	return d
}

// Transform maps a real price into model space.
func (s *MinMaxScaler) Transform(v float64) float64 {
	return (v - s.Min) / s.span()
}

// Inverse maps a model-space value back to a real price.
func (s *MinMaxScaler) Inverse(v float64) float64 {
	return v*s.span() + s.Min
}
