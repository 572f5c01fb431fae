package profiler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zaptest"
)

func TestStageTimerRecordsInOrder(t *testing.T) {
	st := NewStageTimer()

	done := st.StartOperation("decode")
	time.Sleep(time.Millisecond)
	done()
	st.StartOperation("combine")()

	stages := st.Stages()
	assert.Len(t, stages, 2)
	assert.Equal(t, []string{"decode", "combine"}, st.Names())
	assert.GreaterOrEqual(t, stages[0].Duration, time.Millisecond)
	assert.Equal(t, stages[0].Duration+stages[1].Duration, st.Total())

	st.Log(zaptest.NewLogger(t))
}

func TestStageTimerStagesIsACopy(t *testing.T) {
	st := NewStageTimer()
	st.StartOperation("encode")()

	stages := st.Stages()
	stages[0].Name = "changed"
	assert.Equal(t, []string{"encode"}, st.Names())
}

func TestFormatBytes(t *testing.T) {
	assert.Equal(t, "512 B", FormatBytes(512))
	assert.Equal(t, "1.0 KB", FormatBytes(1024))
	assert.Equal(t, "1.5 MB", FormatBytes(1536*1024))
}
