package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestGetReturnsNamedLogger(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	SetLogger(zap.New(core))
	defer SetLogger(zap.NewNop())

	Get(CategoryRanking).Info("scored")

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "ranking", entries[0].LoggerName)
}

func TestGetCachesPerCategory(t *testing.T) {
	SetLogger(zap.NewNop())
	a := Get(CategoryIntent)
	b := Get(CategoryIntent)
	assert.Same(t, a, b)
}

func TestDefaultIsNoop(t *testing.T) {
	SetLogger(zap.NewNop())
	// Must not panic without Initialize.
	Get(CategoryBoot).Debug("quiet")
	Sync()
}
