package shape

import (
	"strings"
	"testing"

	"github.com/osuushi/skeleton/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSVG(t *testing.T) {
	doc := `<svg xmlns="http://www.w3.org/2000/svg">
  <polygon points="0,0 1,0 1,1 0,1" />
  <polyline points="0 0 2 2 4 0" />
  <path d="M0,0 L3,0 l0,3 H0 Z m10,10 h1 v1" />
</svg>`
	paths, err := ParseSVG(strings.NewReader(doc))
	require.NoError(t, err)
	require.Len(t, paths, 4)

	polygon := paths[0]
	assert.True(t, polygon.IsClosed())
	assert.Equal(t, 4, polygon.Len())

	polyline := paths[1]
	assert.False(t, polyline.IsClosed())
	assert.Equal(t, 2, polyline.Len())
	assert.Equal(t, v(4, 0), polyline.End())

	closed := paths[2]
	assert.True(t, closed.IsClosed())
	assert.Equal(t, []geom.Vector2{v(0, 0), v(3, 0), v(3, 3), v(0, 3)}, closed.Points())

	open := paths[3]
	assert.False(t, open.IsClosed())
	assert.Equal(t, []geom.Vector2{v(10, 10), v(11, 10), v(11, 11)}, open.Points())
}

func TestParseSVGErrors(t *testing.T) {
	for name, doc := range map[string]string{
		"odd points":   `<svg><polygon points="0,0 1" /></svg>`,
		"bad number":   `<svg><polyline points="0,0 x,1" /></svg>`,
		"curve":        `<svg><path d="M0,0 C1,1 2,2 3,3" /></svg>`,
		"single point": `<svg><polyline points="1,1" /></svg>`,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := ParseSVG(strings.NewReader(doc))
			assert.ErrorIs(t, err, ErrInvalidSVG)
		})
	}
}

func TestSeparateSigns(t *testing.T) {
	numbers, err := parseNumbers(separateSigns("1-2 3e-2-4"))
	require.NoError(t, err)
	assert.Equal(t, []float64{1, -2, 0.03, -4}, numbers)
}
