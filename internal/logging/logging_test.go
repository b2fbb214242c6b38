package logging

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigure(t *testing.T) {
	defer zerolog.SetGlobalLevel(zerolog.TraceLevel)

	var buf bytes.Buffer
	require.NoError(t, Configure("info", &buf))

	Debugf("hidden %d", 1)
	log.Info().Str("move", "C2-D3").Msg("move applied")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "move applied")
	assert.Contains(t, out, "C2-D3")
}

func TestConfigureRejectsUnknownLevel(t *testing.T) {
	assert.Error(t, Configure("loud", &bytes.Buffer{}))
}
