package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/osuushi/skeleton"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadPaths(t *testing.T) {
	paths, err := readPaths(strings.NewReader("0 0\n1 0\n1 1\n0 1\n\n\n5 5\n6 5\n6 6\n"))
	require.NoError(t, err)
	require.Len(t, paths, 2)
	assert.True(t, paths[0].IsClosed())
	assert.Equal(t, 4, paths[0].Len())
	assert.Equal(t, 3, paths[1].Len())

	_, err = readPaths(strings.NewReader("0 0\n1\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")
	_, err = readPaths(strings.NewReader("0 zero\n"))
	assert.Error(t, err)
}

func TestWrite(t *testing.T) {
	paths, err := readPaths(strings.NewReader("0 0\n1 0\n1 1\n0 1\n"))
	require.NoError(t, err)
	s, err := skeleton.New(paths[0], 0.25, skeleton.Options{})
	require.NoError(t, err)

	var text bytes.Buffer
	writeText(&text, s)
	assert.Equal(t, 8, strings.Count(text.String(), "spoke "))
	assert.Contains(t, text.String(), "wave inner ")
	assert.Contains(t, text.String(), "wave outer ")

	var svg bytes.Buffer
	writeSVG(&svg, s)
	assert.Equal(t, 8, strings.Count(svg.String(), "<line"))
	assert.Equal(t, 2, strings.Count(svg.String(), "<polygon"))
}
