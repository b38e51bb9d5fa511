package qyaml

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const doc = `
rarities:
  Vanilla: 99
  RendLevel: 10
custom-levels:
  - Example Moon
  - 42 Gordion
empty:
title: moons
`

func TestParse(t *testing.T) {
	y, err := Parse([]byte(doc))
	require.NoError(t, err)

	assert.Equal(t, []string{"rarities", "custom-levels", "empty", "title"}, y.Keys())
	assert.Equal(t, "moons", y.Key("title"))
	assert.True(t, y.Has("empty"))
	assert.Nil(t, y.Key("empty"))
	assert.False(t, y.Has("missing"))

	rarities := y.Map("rarities")
	require.Len(t, rarities, 2)
	assert.Equal(t, "Vanilla", rarities[0].Key)
	assert.Equal(t, 99, rarities[0].Value)
	assert.Equal(t, "RendLevel", rarities[1].Key)
	assert.Equal(t, 10, rarities[1].Value)

	assert.Equal(t, []string{"Example Moon", "42 Gordion"}, y.StringSlice("custom-levels"))
	assert.Nil(t, y.Map("title"))
}

func TestParseEmpty(t *testing.T) {
	y, err := Parse(nil)
	require.NoError(t, err)
	assert.Empty(t, y.Keys())
}

func TestParseRejectsSequence(t *testing.T) {
	_, err := Parse([]byte("- a\n- b\n"))
	assert.Error(t, err)
}
