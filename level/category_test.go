package level

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCategory(t *testing.T) {
	cases := []struct {
		name     string
		category Category
		ok       bool
	}{
		{"ExperimentationLevel", Specific(Experimentation), true},
		{"EmbrionLevel", Specific(Embrion), true},
		{"Vanilla", Vanilla, true},
		{"Modded", Modded, true},
		{"All", All, true},
		{"None", None, true},
		{"Experimentation", Category{}, false},
		{"experimentationlevel", Category{}, false},
		{" RendLevel", Category{}, false},
		{"4", Category{}, false},
		{"", Category{}, false},
	}
	for _, test := range cases {
		c, ok := ParseCategory(test.name)
		if ok != test.ok || c != test.category {
			t.Errorf("ParseCategory(%#v) == (%v, %v), expected (%v, %v)",
				test.name, c, ok, test.category, test.ok)
		}
		if IsBuiltin(test.name) != test.ok {
			t.Errorf("IsBuiltin(%#v) == %v, expected %v", test.name, !test.ok, test.ok)
		}
	}
}

func TestCategoryStringRoundTrip(t *testing.T) {
	for _, c := range append(VanillaLevels(), None, Vanilla, Modded, All) {
		assert.Equal(t, c, MustParseCategory(c.String()))
	}
	assert.Panics(t, func() { MustParseCategory("GordionLevel") })
}

func TestVanillaLevels(t *testing.T) {
	levels := VanillaLevels()
	require.Len(t, levels, 11)
	assert.Equal(t, Specific(Experimentation), levels[0])
	assert.Equal(t, Specific(Embrion), levels[10])

	levels[0] = All
	assert.Equal(t, Specific(Experimentation), VanillaLevels()[0], "VanillaLevels must return a copy")
}

func TestCategoryContains(t *testing.T) {
	rend := Specific(Rend)
	dine := Specific(Dine)
	cases := []struct {
		c, o     Category
		contains bool
	}{
		{All, rend, true},
		{All, Modded, true},
		{All, Vanilla, true},
		{Vanilla, rend, true},
		{Vanilla, Modded, false},
		{Vanilla, All, false},
		{Modded, rend, false},
		{Modded, Modded, true},
		{rend, rend, true},
		{rend, dine, false},
		{rend, Vanilla, false},
		{rend, None, true},
		{None, rend, false},
	}
	for _, test := range cases {
		if actual := test.c.Contains(test.o); actual != test.contains {
			t.Errorf("%v.Contains(%v) == %v, expected %v", test.c, test.o, actual, test.contains)
		}
	}
}

func TestCategoryText(t *testing.T) {
	text, err := Specific(Titan).MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "TitanLevel", string(text))

	var c Category
	require.NoError(t, c.UnmarshalText([]byte("Modded")))
	assert.Equal(t, Modded, c)
	assert.Error(t, c.UnmarshalText([]byte("Gordion")))
	assert.Equal(t, "ID(99)", ID(99).String())
}
