package common

import (
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupLogger(t *testing.T) {
	original := slog.Default()
	defer slog.SetDefault(original)

	for _, format := range []string{"json", "console", "unknown"} {
		t.Run(format, func(t *testing.T) {
			require.NoError(t, SetupLogger(slog.LevelInfo, format))
			assert.NotNil(t, slog.Default())
		})
	}
}

func TestLogHelpersDoNotPanic(t *testing.T) {
	original := slog.Default()
	defer slog.SetDefault(original)
	require.NoError(t, SetupLogger(slog.LevelDebug, "console"))

	assert.NotPanics(t, func() {
		LogInfo("catalog loaded", Fields{"rows": 42, "version": uint64(3)})
		LogDebug("filter applied", Fields{"candidates": 7})
		LogError(errors.New("boom"), "query failed", Fields{"query_id": "abc"})
		LogInfo("no fields", nil)
	})
}
