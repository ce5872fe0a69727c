package solver

import (
	"encoding/json"
	"fmt"
	"time"
)

// SolutionJSON is the "Solution" object nested in the top-level report.
type SolutionJSON struct {
	NumberOfVertices int   `json:"NumberOfVertices"`
	Feasible         bool  `json:"Feasible"`
	Weight           int64 `json:"Weight"`
}

// eventEntry is one "Solution1..k" / "Bound1..k" object.
type eventEntry struct {
	Value  int64   `json:"Value"`
	Time   float64 `json:"Time"`
	String string  `json:"String"`
}

// Report is the top-level JSON object produced at the end of a run. It
// carries the fixed summary fields plus the numbered improvement events
// (Solution1, Solution2, ..., Bound1, Bound2, ...), emitted by MarshalJSON.
type Report struct {
	Solution              SolutionJSON
	Value                 int64
	Bound                 int64
	AbsoluteOptimalityGap int64
	RelativeOptimalityGap float64
	Time                  float64

	solutionEvents []Event
	boundEvents    []Event
}

// MarshalJSON merges the fixed fields with one numbered entry per
// recorded improvement event, matching §6's JSON output protocol.
func (r Report) MarshalJSON() ([]byte, error) {
	fields := map[string]interface{}{
		"Solution":              r.Solution,
		"Value":                 r.Value,
		"Bound":                 r.Bound,
		"AbsoluteOptimalityGap": r.AbsoluteOptimalityGap,
		"RelativeOptimalityGap": r.RelativeOptimalityGap,
		"Time":                  r.Time,
	}
	for i, e := range r.solutionEvents {
		fields[fmt.Sprintf("Solution%d", i+1)] = eventEntry{Value: e.Value, Time: e.Time.Seconds(), String: e.Tag}
	}
	for i, e := range r.boundEvents {
		fields[fmt.Sprintf("Bound%d", i+1)] = eventEntry{Value: e.Value, Time: e.Time.Seconds(), String: e.Tag}
	}
	return json.Marshal(fields)
}

// BuildReport assembles a Report from an Output's final state. numVertices
// is the instance's vertex count, used even when no feasible solution was
// found (Weight/Feasible then report the empty solution).
func BuildReport[S WeightedSolution](o *Output[S], numVertices int) Report {
	o.mu.Lock()
	defer o.mu.Unlock()

	var weight int64
	var feasible bool
	if o.hasSolution {
		weight = o.best.Weight()
		feasible = o.best.Feasible()
	}

	gap := o.bound - weight
	var relGap float64
	if o.bound != 0 {
		relGap = float64(gap) / float64(o.bound)
	}

	elapsed := o.endAt
	if !o.ended {
		elapsed = time.Since(o.start)
	}

	return Report{
		Solution: SolutionJSON{
			NumberOfVertices: numVertices,
			Feasible:         feasible,
			Weight:           weight,
		},
		Value:                 weight,
		Bound:                 o.bound,
		AbsoluteOptimalityGap: gap,
		RelativeOptimalityGap: relGap,
		Time:                  elapsed.Seconds(),
		solutionEvents:        append([]Event(nil), o.solutionEvents...),
		boundEvents:           append([]Event(nil), o.boundEvents...),
	}
}
