package sat

// EMA is an exponential moving average. The engine uses it to smooth
// the conflicts-per-iteration rate it exposes through
// Engine.ConflictRate, so that a burst of conflicts in one iteration
// doesn't make the rate swing wildly.
type EMA struct {
	decay float64
	value float64
	init  bool
}

// NewEMA returns an EMA with the given decay in (0, 1].
func NewEMA(decay float64) EMA {
	return EMA{decay: decay}
}

// Add folds x into the running average.
func (ema *EMA) Add(x float64) {
	if !ema.init {
		ema.init = true
		ema.value = x
	} else {
		ema.value = ema.decay*ema.value + x*(1-ema.decay)
	}
}

// Val returns the current average.
func (ema *EMA) Val() float64 {
	return ema.value
}
