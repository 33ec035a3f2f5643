package models

// BiometricFeatures is the feature vector derived from exactly one Session.
// Every field is always populated; degenerate input yields neutral values
// (0 for rates and statistics, 1 for DirectnessRatio).
type BiometricFeatures struct {
	// Timing (milliseconds)
	MeanInterClickLatency   float64 `json:"meanInterClickLatency" yaml:"meanInterClickLatency"`
	StdDevInterClickLatency float64 `json:"stdDevInterClickLatency" yaml:"stdDevInterClickLatency"`
	LatencyEntropy          float64 `json:"latencyEntropy" yaml:"latencyEntropy"`

	// Velocity (px/ms)
	MeanVelocity    float64 `json:"meanVelocity" yaml:"meanVelocity"`
	StdDevVelocity  float64 `json:"stdDevVelocity" yaml:"stdDevVelocity"`
	VelocityEntropy float64 `json:"velocityEntropy" yaml:"velocityEntropy"`

	// Path shape
	PathDeviation   float64 `json:"pathDeviation" yaml:"pathDeviation"`
	PathLength      float64 `json:"pathLength" yaml:"pathLength"`
	DirectPath      float64 `json:"directPath" yaml:"directPath"`
	DirectnessRatio float64 `json:"directnessRatio" yaml:"directnessRatio"`
	CurvatureIndex  float64 `json:"curvatureIndex" yaml:"curvatureIndex"`

	// Precision and hesitation
	ClickPrecision      float64 `json:"clickPrecision" yaml:"clickPrecision"`
	HesitationCount     int     `json:"hesitationCount" yaml:"hesitationCount"`
	HesitationTotalTime float64 `json:"hesitationTotalTime" yaml:"hesitationTotalTime"`

	// Dynamics
	AccelerationVariance float64 `json:"accelerationVariance" yaml:"accelerationVariance"`
	AngularVelocityMean  float64 `json:"angularVelocityMean" yaml:"angularVelocityMean"`
	JitterScore          float64 `json:"jitterScore" yaml:"jitterScore"`
}

// FeatureComparison holds the percentage deltas of an attempt relative to a
// reference profile for the four headline metrics.
type FeatureComparison struct {
	LatencyDelta       float64 `json:"latencyDelta" yaml:"latencyDelta"`
	VelocityDelta      float64 `json:"velocityDelta" yaml:"velocityDelta"`
	PathDeviationDelta float64 `json:"pathDeviationDelta" yaml:"pathDeviationDelta"`
	PrecisionDelta     float64 `json:"precisionDelta" yaml:"precisionDelta"`
}

// Deltas returns the four deltas in a fixed order: latency, velocity,
// path deviation, precision.
func (c FeatureComparison) Deltas() []float64 {
	return []float64{c.LatencyDelta, c.VelocityDelta, c.PathDeviationDelta, c.PrecisionDelta}
}

// Field is one named entry of a feature vector, for tabular output.
type Field struct {
	Name  string
	Value float64
	Unit  string
}

// Fields lists every feature in declaration order.
func (f BiometricFeatures) Fields() []Field {
	return []Field{
		{"meanInterClickLatency", f.MeanInterClickLatency, "ms"},
		{"stdDevInterClickLatency", f.StdDevInterClickLatency, "ms"},
		{"latencyEntropy", f.LatencyEntropy, "bits"},
		{"meanVelocity", f.MeanVelocity, "px/ms"},
		{"stdDevVelocity", f.StdDevVelocity, "px/ms"},
		{"velocityEntropy", f.VelocityEntropy, "bits"},
		{"pathDeviation", f.PathDeviation, "px"},
		{"pathLength", f.PathLength, "px"},
		{"directPath", f.DirectPath, "px"},
		{"directnessRatio", f.DirectnessRatio, ""},
		{"curvatureIndex", f.CurvatureIndex, "rad"},
		{"clickPrecision", f.ClickPrecision, "px"},
		{"hesitationCount", float64(f.HesitationCount), ""},
		{"hesitationTotalTime", f.HesitationTotalTime, "ms"},
		{"accelerationVariance", f.AccelerationVariance, "(px/ms²)²"},
		{"angularVelocityMean", f.AngularVelocityMean, "rad/ms"},
		{"jitterScore", f.JitterScore, "px"},
	}
}
