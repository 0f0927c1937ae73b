package text

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	text := "  a   slick ,  engrossing   melodrama .    "
	text = Normalize(text)

	assert.Equal(t, "a slick , engrossing melodrama .", text)
}
