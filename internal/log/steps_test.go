package log

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStageTimer_RecordsStagesInOrder(t *testing.T) {
	timer := NewStageTimer("rank")

	timer.Stage("load")
	timer.Stage("score")
	timer.Stage("write")
	total := timer.Finish()

	stages := timer.Stages()
	require.Len(t, stages, 3)
	assert.Equal(t, "load", stages[0].Name)
	assert.Equal(t, "score", stages[1].Name)
	assert.Equal(t, "write", stages[2].Name)

	var sum time.Duration
	for _, s := range stages {
		assert.GreaterOrEqual(t, s.Duration, time.Duration(0))
		sum += s.Duration
	}
	assert.GreaterOrEqual(t, total, sum)
}

func TestStageTimer_FinishWithoutStages(t *testing.T) {
	timer := NewStageTimer("rank")

	total := timer.Finish()

	assert.Empty(t, timer.Stages())
	assert.GreaterOrEqual(t, total, time.Duration(0))
}

func TestStageTimer_StagesReturnsCopy(t *testing.T) {
	timer := NewStageTimer("rank")
	timer.Stage("load")
	timer.Finish()

	stages := timer.Stages()
	stages[0].Name = "mutated"

	assert.Equal(t, "load", timer.Stages()[0].Name)
}
