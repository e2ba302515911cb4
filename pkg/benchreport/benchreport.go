package benchreport

const Version = "lifebench/v1"

// Measurement is one table row. Degree is zero for scalar tables.
type Measurement struct {
	Degree int     `json:"degree,omitempty"`
	Size   int     `json:"size"`
	Value  float64 `json:"value"`
}

type TableReport struct {
	Name         string        `json:"name"`
	Mode         string        `json:"mode"`
	NoIO         bool          `json:"no_io"`
	Grouped      bool          `json:"grouped"`
	Measurements []Measurement `json:"seconds"`
}

type SpeedupReport struct {
	Baseline string        `json:"baseline"`
	Table    string        `json:"table"`
	Speedup  []Measurement `json:"speedup"`
	// Parallel efficiency, only for grouped tables.
	Efficiency []Measurement `json:"efficiency,omitempty"`
}

type FastestReport struct {
	Size    int     `json:"size"`
	Table   string  `json:"table"`
	Mode    string  `json:"mode"`
	Degree  int     `json:"degree,omitempty"`
	Seconds float64 `json:"seconds"`
}

type Report struct {
	Version          string          `json:"version"`
	TimestampRFC3339 string          `json:"timestamp_rfc3339"`
	Sizes            []int           `json:"sizes"`
	Tables           []TableReport   `json:"tables"`
	Speedups         []SpeedupReport `json:"speedups"`
	Fastest          []FastestReport `json:"fastest"`
}
