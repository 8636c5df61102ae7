package scan_test

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/binmorph/scan"
)

func TestNewPlan_2D(t *testing.T) {
	p, err := scan.NewPlan([]int{4, 3}, []int{1, 4}, 0)
	require.NoError(t, err)

	assert.Equal(t, 0, p.Dim())
	assert.Equal(t, 3, p.Lines())
	assert.Equal(t, 4, p.LineLength())
	assert.Equal(t, 1, p.Stride())

	wantStarts := []int{0, 4, 8}
	wantBorder := []bool{true, false, true}
	for line := 0; line < p.Lines(); line++ {
		assert.Equal(t, wantStarts[line], p.Start(line))
		assert.Equal(t, wantBorder[line], p.OnBorder(line))
		assert.Equal(t, []int{0, line}, p.Coords(line))
	}
}

func TestNewPlan_3DBorderFlags(t *testing.T) {
	p, err := scan.NewPlan([]int{2, 3, 3}, []int{1, 2, 6}, 0)
	require.NoError(t, err)
	require.Equal(t, 9, p.Lines())

	// Only the line at (y,z) = (1,1) is fully interior.
	interior := 0
	for line := 0; line < p.Lines(); line++ {
		if !p.OnBorder(line) {
			interior++
			assert.Equal(t, []int{0, 1, 1}, p.Coords(line))
		}
	}
	assert.Equal(t, 1, interior)
}

func TestNewPlan_AutoDim(t *testing.T) {
	p, err := scan.NewPlan([]int{1, 5, 3}, []int{1, 1, 5}, scan.AutoDim)
	require.NoError(t, err)
	assert.Equal(t, 1, p.Dim(), "smallest stride among dims longer than one")

	// All-singleton shape falls back to dimension 0.
	p, err = scan.NewPlan([]int{1, 1}, []int{1, 1}, scan.AutoDim)
	require.NoError(t, err)
	assert.Equal(t, 0, p.Dim())
	assert.Equal(t, 1, p.Lines())
}

func TestNewPlan_Errors(t *testing.T) {
	_, err := scan.NewPlan(nil, nil, 0)
	assert.ErrorIs(t, err, scan.ErrBadPlan)
	_, err = scan.NewPlan([]int{4}, []int{1, 4}, 0)
	assert.ErrorIs(t, err, scan.ErrBadPlan)
	_, err = scan.NewPlan([]int{4, 0}, []int{1, 4}, 0)
	assert.ErrorIs(t, err, scan.ErrBadPlan)
	_, err = scan.NewPlan([]int{4, 3}, []int{1, 4}, 2)
	assert.ErrorIs(t, err, scan.ErrBadPlan)
}

func TestRun_CoversEveryLineOnce(t *testing.T) {
	p, err := scan.NewPlan([]int{2, 8, 4}, []int{1, 2, 16}, 0)
	require.NoError(t, err)
	n := p.Lines()

	for _, workers := range []int{1, 2, 3, 16, 64} {
		hits := make([]int32, n)
		p.Run(workers, func(line int) {
			atomic.AddInt32(&hits[line], 1)
		})
		for line, h := range hits {
			assert.Equal(t, int32(1), h, "workers=%d line=%d", workers, line)
		}
	}
}

func TestRun_SequentialOrder(t *testing.T) {
	p, err := scan.NewPlan([]int{3, 5}, []int{1, 3}, 0)
	require.NoError(t, err)
	var got []int
	p.Run(1, func(line int) { got = append(got, line) })
	assert.Equal(t, []int{0, 1, 2, 3, 4}, got)
}
