package solver_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fontanf/stablesolver-sub000/graph"
	"github.com/fontanf/stablesolver-sub000/solver"
	"github.com/fontanf/stablesolver-sub000/stable"
)

func triangle(t *testing.T) *graph.Graph {
	t.Helper()
	g, err := graph.New(
		[]int64{3, 5, 7},
		[]graph.Edge{{V1: 0, V2: 1}, {V1: 1, V2: 2}, {V1: 0, V2: 2}},
	)
	require.NoError(t, err)
	return g
}

func TestOutput_UpdateSolutionKeepsBestFeasible(t *testing.T) {
	g := triangle(t)
	out := solver.NewOutput[*stable.Solution](g.TotalWeight())

	low := stable.NewSolution(g)
	low.Add(0)
	assert.True(t, out.UpdateSolution(low, "first"))

	high := stable.NewSolution(g)
	high.Add(2)
	assert.True(t, out.UpdateSolution(high, "second"))

	worse := stable.NewSolution(g)
	worse.Add(1)
	assert.False(t, out.UpdateSolution(worse, "worse"))

	best, ok := out.Best()
	require.True(t, ok)
	assert.Equal(t, int64(7), best.Weight())
}

func TestOutput_UpdateSolutionRejectsInfeasible(t *testing.T) {
	g := triangle(t)
	out := solver.NewOutput[*stable.Solution](g.TotalWeight())

	infeasible := stable.NewSolution(g)
	infeasible.Add(0)
	infeasible.Add(1)
	require.False(t, infeasible.Feasible())

	assert.False(t, out.UpdateSolution(infeasible, "bad"))
	_, ok := out.Best()
	assert.False(t, ok)
}

func TestOutput_UpdateBoundOnlyTightens(t *testing.T) {
	out := solver.NewOutput[*stable.Solution](100)
	assert.True(t, out.UpdateBound(80, "tighter"))
	assert.Equal(t, int64(80), out.Bound())
	assert.False(t, out.UpdateBound(90, "looser"))
	assert.Equal(t, int64(80), out.Bound())
}

func TestOutput_CertificatePersistsLastSolution(t *testing.T) {
	g := triangle(t)
	path := t.TempDir() + "/cert.txt"
	out := solver.NewOutput[*stable.Solution](g.TotalWeight())
	out.SetCertificatePath(path)

	sol := stable.NewSolution(g)
	sol.Add(2)
	require.True(t, out.UpdateSolution(sol, ""))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "2\n", string(data))
}

func TestOutput_Optimal(t *testing.T) {
	g := triangle(t)
	out := solver.NewOutput[*stable.Solution](7)
	sol := stable.NewSolution(g)
	sol.Add(2)
	out.UpdateSolution(sol, "")
	assert.True(t, out.Optimal())
}

func TestBuildReport_ReflectsCurrentState(t *testing.T) {
	g := triangle(t)
	out := solver.NewOutput[*stable.Solution](g.TotalWeight())
	sol := stable.NewSolution(g)
	sol.Add(2)
	out.UpdateSolution(sol, "greedy")
	out.AlgorithmEnd()

	report := solver.BuildReport(out, g.NumVertices())
	assert.Equal(t, int64(7), report.Value)
	assert.True(t, report.Solution.Feasible)

	data, err := report.MarshalJSON()
	require.NoError(t, err)
	assert.Contains(t, string(data), `"Solution1"`)
}
