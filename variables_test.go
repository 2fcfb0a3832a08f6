package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLetter(t *testing.T) {
	name, ok := parseLetter("Q")
	assert.True(t, ok)
	assert.Equal(t, varName('Q'), name)
	assert.Equal(t, "Q", name.String())

	for _, tok := range []string{"", "q", "AB", "$A", "1", "["} {
		_, ok := parseLetter(tok)
		assert.False(t, ok, "%q is not a letter", tok)
	}
}

func TestParseRef(t *testing.T) {
	name, isRef, err := parseRef("$Z")
	require.NoError(t, err)
	assert.True(t, isRef)
	assert.Equal(t, varName('Z'), name)

	for _, tok := range []string{"", "Z", "$", "$AB", "A$", "5"} {
		_, isRef, err := parseRef(tok)
		assert.NoError(t, err)
		assert.False(t, isRef, "%q is not a reference", tok)
	}

	for _, tok := range []string{"$a", "$1", "$["} {
		_, isRef, err := parseRef(tok)
		assert.True(t, isRef)
		assert.Equal(t, invalidVariableError(tok), err)
	}
	assert.EqualError(t, invalidVariableError("$a"),
		`invalid variable "$a", please use an uppercase letter from A-Z`)
}

func TestValue(t *testing.T) {
	var unset value
	assert.Equal(t, 0.0, unset.number())
	_, isColour := unset.colour()
	assert.False(t, isColour)
	assert.Equal(t, "unset", unset.String())

	n := number(2.5)
	assert.Equal(t, 2.5, n.number())
	assert.Equal(t, "2.5", n.String())

	c := colour(red)
	assert.Equal(t, 0.0, c.number(), "colours have no numeric payload")
	code, isColour := c.colour()
	assert.True(t, isColour)
	assert.Equal(t, red, code)
	assert.Equal(t, "colour(R)", c.String())
}

func TestVarStore(t *testing.T) {
	var vs varStore
	_, ok := vs.lookup('A')
	assert.False(t, ok)

	a := vs.get('A')
	assert.Same(t, a, vs.get('A'))
	_, ok = vs.lookup('A')
	assert.False(t, ok, "not in use until assigned")

	a.inUse = true
	a.value = colour(blue)
	a.value = number(3)
	got, ok := vs.lookup('A')
	require.True(t, ok)
	assert.Equal(t, number(3), got.value, "assigning a number clears the colour")
}
