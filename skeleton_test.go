package skeleton

import (
	"bytes"
	"log/slog"
	"math"
	"strings"
	"testing"

	"github.com/osuushi/skeleton/geom"
	"github.com/osuushi/skeleton/shape"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func square() *shape.Path {
	return shape.FromPoints([]geom.Vector2{geom.V(0, 0), geom.V(1, 0), geom.V(1, 1), geom.V(0, 1)}, true)
}

// Smoke test. The internals are already tested.
func TestNew(t *testing.T) {
	s, err := New(square(), Infinity, Options{Validate: true})
	require.NoError(t, err)
	assert.Len(t, s.Spokes, 4)
	assert.Empty(t, s.Waves)

	s, err = New(square(), 0.25, Options{})
	require.NoError(t, err)
	require.Len(t, s.WavesOf(InnerEdge), 1)
	require.Len(t, s.WavesOf(OuterEdge), 1)
	inner := s.WavesOf(InnerEdge)[0].BoundingBox()
	assert.InDelta(t, 0.25, inner.Left(), 1e-6)
	assert.InDelta(t, 0.75, inner.Right(), 1e-6)
}

func TestNew_Errors(t *testing.T) {
	open := shape.FromPoints([]geom.Vector2{geom.V(0, 0), geom.V(1, 1)}, false)
	_, err := New(open, Infinity, Options{})
	assert.ErrorIs(t, err, ErrUnsupportedConfiguration)

	_, err = New(nil, 1, Options{})
	assert.ErrorIs(t, err, ErrEmptyPath)

	_, err = New(square(), -1, Options{})
	assert.Error(t, err)

	weight := 2.0
	_, err = New(open, 1, Options{CapWeight: &weight})
	assert.ErrorIs(t, err, ErrInvalidCapWeight)
}

func TestParseOptions(t *testing.T) {
	opts, err := ParseOptions([]byte("capWeight: 0.25\nvalidate: true\ndebugDraw: out.png\n"))
	require.NoError(t, err)
	require.NotNil(t, opts.CapWeight)
	assert.Equal(t, 0.25, *opts.CapWeight)
	assert.True(t, opts.Validate)
	assert.False(t, opts.Debug)
	assert.Equal(t, "out.png", opts.DebugDraw)

	_, err = ParseOptions([]byte("capWeight: -1\n"))
	assert.ErrorIs(t, err, ErrInvalidCapWeight)

	_, err = LoadOptions(strings.NewReader("validate: [nope"))
	assert.Error(t, err)

	opts, err = LoadOptions(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, Options{}, opts)
}

func TestSetLogger(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	defer SetLogger(nil)

	_, err := New(square(), math.Inf(1), Options{Debug: true})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "processing batch")
}
