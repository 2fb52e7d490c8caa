package core

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const specYAML = `
default_instructions: "Answer in the source language."
transformations:
  - name: summary
    title: Summary
    prompt: "Summarize the text."
    apply_default: true
  - name: key-points
    title: Key Points
    prompt: "List the key points."
  - name: toc
    title: Table of Contents
    prompt: "Produce a table of contents."
    apply_default: true
`

func TestReadTransformationSet(t *testing.T) {
	set, err := ReadTransformationSet(strings.NewReader(specYAML))
	require.NoError(t, err)

	assert.Equal(t, "Answer in the source language.", set.DefaultInstructions)
	require.Len(t, set.Specs, 3)
	assert.Equal(t, "summary", set.Specs[0].Name)
	assert.Equal(t, "Summary", set.Specs[0].Title)
	assert.True(t, set.Specs[0].ApplyDefault)
	assert.False(t, set.Specs[1].ApplyDefault)
}

func TestTransformationSet_Defaults(t *testing.T) {
	set, err := ReadTransformationSet(strings.NewReader(specYAML))
	require.NoError(t, err)

	defaults := set.Defaults()
	require.Len(t, defaults, 2)
	assert.Equal(t, "summary", defaults[0].Name)
	assert.Equal(t, "toc", defaults[1].Name)
}

func TestTransformationSet_ByName(t *testing.T) {
	set, err := ReadTransformationSet(strings.NewReader(specYAML))
	require.NoError(t, err)

	spec, ok := set.ByName("key-points")
	require.True(t, ok)
	assert.Equal(t, "Key Points", spec.Title)

	_, ok = set.ByName("missing")
	assert.False(t, ok)
}

func TestReadTransformationSet_InvalidSpec(t *testing.T) {
	bad := `
transformations:
  - name: summary
    title: Summary
`
	_, err := ReadTransformationSet(strings.NewReader(bad))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrEmptyPrompt)
}

func TestReadTransformationSet_MalformedYAML(t *testing.T) {
	_, err := ReadTransformationSet(strings.NewReader("transformations: ["))
	require.Error(t, err)
}
