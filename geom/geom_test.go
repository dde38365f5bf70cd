package geom

import (
	"image"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBetween(t *testing.T) {
	from, to := Pt(1, 2), Pt(4, -2)
	v := Between(from, to)
	require.Equal(t, V(3, -4), v)
	require.Equal(t, to, v.Translate(from))
}

func TestVectorPointDistinct(t *testing.T) {
	v := V(1, 2)
	p := Pt(1, 2)
	require.Equal(t, v.DX, p.X)
	require.Equal(t, v.DY, p.Y)
	require.NotEqual(t, any(v), any(p))
}

func TestPredicates(t *testing.T) {
	require.True(t, Vector{}.IsZero())
	require.False(t, V(0, 1e-300).IsZero())
	require.True(t, V(math.NaN(), 0).IsNaN())
	require.False(t, V(1, 2).IsNaN())
	require.True(t, V(0, math.Inf(-1)).IsInf())
	require.Equal(t, V(-1, 2), V(1, -2).Neg())
}

func TestCross(t *testing.T) {
	require.Equal(t, 1.0, V(1, 0).Cross(V(0, 1)))
	require.Equal(t, -1.0, V(0, 1).Cross(V(1, 0)))
	require.Equal(t, 0.0, V(2, 2).Cross(V(1, 1)))
}

func TestPixel(t *testing.T) {
	require.Equal(t, image.Pt(2, -3), Pt(1.6, -2.5).Pixel())
	require.Equal(t, image.Pt(0, 0), Pt(0.49, -0.49).Pixel())
}

func TestString(t *testing.T) {
	require.Equal(t, "⟨1, -2.5⟩", V(1, -2.5).String())
	require.Equal(t, "(3, 4)", Pt(3, 4).String())
}
