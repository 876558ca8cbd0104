package msgalloc

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestLogifaceLoggerWritesThroughZerolog(t *testing.T) {
	var buf bytes.Buffer
	z := zerolog.New(&buf)
	l := NewZerologLogger(z, LevelDebug)

	require.True(t, l.IsEnabled(LevelInfo))
	l.Log(LogEntry{Level: LevelInfo, Category: "evict", Message: "dispatch entry overwritten", Offset: 42})

	require.Contains(t, buf.String(), "evict")
	require.Contains(t, buf.String(), "dispatch entry overwritten")
}

func TestLogifaceLoggerRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	z := zerolog.New(&buf)
	l := NewZerologLogger(z, LevelError)

	require.False(t, l.IsEnabled(LevelDebug))
	l.Log(LogEntry{Level: LevelDebug, Category: "evict", Message: "should not appear"})
	require.Empty(t, buf.String())
}

func TestAllocatorWiredToLogifaceLogger(t *testing.T) {
	var buf bytes.Buffer
	z := zerolog.New(&buf)

	cfg := NewConfig(testN, testH, testM)
	cfg.MaxPayloadSize = testMAX
	cfg.Logger = NewZerologLogger(z, LevelDebug)
	a, err := New(cfg)
	require.NoError(t, err)

	const container Container = 1
	a.LuosTaskAlloc(container, Offset(0))
	_, _ = a.PullMsg(container)

	a.currentMsg = 0
	a.dataPtr = 0
	for i := byte(0); i < 10; i++ {
		a.SetData(i)
	}
	a.ValidHeader(true, 2)

	require.Contains(t, buf.String(), "in-use handle overlaps new header")
}
