package interpret

// #region level

// Level is a qualitative bucket for a numeric classification.
type Level string

const (
	LevelLow    Level = "low"
	LevelMedium Level = "medium"
	LevelHigh   Level = "high"
)

// #endregion level

// #region readiness

// Readiness is the overall go/no-go classification.
type Readiness string

const (
	Ready    Readiness = "ready"
	NotReady Readiness = "not_ready"
)

// #endregion readiness

// #region interpretation

// Interpretation is the full qualitative classification of a calibration run.
type Interpretation struct {
	Pressure  Level
	Load      Level
	Clarity   Level
	Readiness Readiness
}

// Baseline returns the "nothing calibrated yet" interpretation. It is a
// sentinel state, not an error.
func Baseline() Interpretation {
	return Interpretation{
		Pressure:  LevelLow,
		Load:      LevelLow,
		Clarity:   LevelLow,
		Readiness: NotReady,
	}
}

// #endregion interpretation
