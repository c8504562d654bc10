package runningstat_test

import (
	"testing"

	"github.com/usnistgov/berdecode/core/runningstat"
	"github.com/usnistgov/berdecode/core/testenv"
)

func TestRunningStat(t *testing.T) {
	assert, require := testenv.MakeAR(t)

	var a, b runningstat.RunningStat
	s := a.Read()
	assert.EqualValues(0, s.Count)
	assert.Nil(s.Min)
	assert.Nil(s.Max)

	input := []uint64{2, 4, 4, 4, 5, 5, 7, 9}
	for _, x := range input[:3] {
		a.Push(x)
	}
	for _, x := range input[3:] {
		b.Push(x)
	}

	sa := a.Read()
	assert.EqualValues(3, sa.Count)
	assert.InDelta(3.333, sa.Mean, 0.001)

	s = sa.Add(b.Read())
	assert.EqualValues(8, s.Count)
	assert.InDelta(5.0, s.Mean, 0.001)
	assert.InDelta(4.571, s.Variance, 0.001)
	assert.InDelta(2.138, s.Stdev, 0.001)
	require.NotNil(s.Min)
	require.NotNil(s.Max)
	assert.EqualValues(2, *s.Min)
	assert.EqualValues(9, *s.Max)

	assert.Equal(s, s.Add(runningstat.Snapshot{}))
	assert.Equal(s, runningstat.Snapshot{}.Add(s))

	var c runningstat.RunningStat
	c.Push(7)
	s = c.Read()
	assert.EqualValues(1, s.Count)
	assert.InDelta(7.0, s.Mean, 0.001)
	assert.InDelta(0.0, s.Variance, 0.001)
}
