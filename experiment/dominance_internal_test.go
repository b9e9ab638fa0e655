package experiment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/MihaiBandur/HackathonQuantic/builder"
	"github.com/MihaiBandur/HackathonQuantic/maxcut"
)

func TestCheckDominanceIssues(t *testing.T) {
	c4, err := builder.BuildGraph(nil, builder.Cycle(4))
	require.NoError(t, err)
	k3, err := builder.BuildGraph(nil, builder.Complete(3))
	require.NoError(t, err)

	tests := []struct {
		name   string
		out    Outcome
		issues []string
	}{
		{
			name: "consistent",
			out: Outcome{Graph: c4, Bipartite: true, Results: []maxcut.Result{
				{Algorithm: maxcut.AlgoExact, Cut: 4},
				{Algorithm: maxcut.AlgoLocal, Cut: 4},
			}},
		},
		{
			name: "bipartite exact short of edge count",
			out: Outcome{Graph: c4, Bipartite: true, Results: []maxcut.Result{
				{Algorithm: maxcut.AlgoExact, Cut: 3},
				{Algorithm: maxcut.AlgoLocal, Cut: 2},
			}},
			issues: []string{"exact cut 3 on a bipartite graph with 4 edges"},
		},
		{
			name: "heuristic above exact",
			out: Outcome{Graph: k3, Results: []maxcut.Result{
				{Algorithm: maxcut.AlgoExact, Cut: 1},
				{Algorithm: maxcut.AlgoLocal, Cut: 2},
			}},
			issues: []string{"local cut 2 exceeds exact cut 1"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			core, logs := observer.New(zapcore.WarnLevel)
			r := &Runner{log: zap.New(core)}

			got := r.checkDominance(tc.out)
			assert.Equal(t, tc.issues, got)
			assert.Equal(t, len(tc.issues), logs.Len())
		})
	}
}
