package vectorizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashingTransform(t *testing.T) {
	v := NewHashing(64, Options{})

	feat, err := v.Transform("good good movie")
	require.NoError(t, err)
	assert.Equal(t, 64, feat.Dims)
	assert.True(t, feat.Len() > 0)

	// deterministic: same text, same vector
	again, err := v.Transform("good good movie")
	require.NoError(t, err)
	assert.Equal(t, feat, again)
}

func TestHashingEmptyInput(t *testing.T) {
	v := NewHashing(64, Options{})

	feat, err := v.Transform("")
	require.NoError(t, err)
	assert.Equal(t, 64, feat.Dims)
	assert.Equal(t, 0, feat.Len())
}

func TestHashingFixedWidth(t *testing.T) {
	v := NewHashing(16, Options{})

	for _, doc := range []string{"one", "two words", "three word snippet", ""} {
		feat, err := v.Transform(doc)
		require.NoError(t, err)
		assert.Equal(t, 16, feat.Dims)
		assert.Equal(t, 16, v.NumFeatures())
	}
}
