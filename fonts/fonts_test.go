package fonts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	require.NoError(t, LoadDefaults())
	for _, name := range []FontName{Regular, Small, Mono} {
		face := name.Get()
		require.NotNil(t, face, name)
		assert.Greater(t, face.Metrics().Height.Ceil(), 0, name)
	}
}

func TestLoadFontRejectsGarbage(t *testing.T) {
	assert.Error(t, LoadFont("broken", []byte("not a font")))
}

func TestMissingFontPanics(t *testing.T) {
	assert.Panics(t, func() { FontName("nope").Get() })
}
