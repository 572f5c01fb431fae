package images

import (
	"image/color"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func getTestImage(width, height int, c color.NRGBA) *Image {
	return FromImage(getSolidImage(width, height, c), FormatPNG)
}

func TestResize(t *testing.T) {
	src := getTestImage(100, 100, color.NRGBA{R: 255, A: 255})
	before := append([]byte(nil), src.Data...)

	out, err := Resize(src, 50, 25)
	require.NoError(t, err)
	assert.Equal(t, 50, out.Width)
	assert.Equal(t, 25, out.Height)
	assert.Len(t, out.Data, 50*25*BytesPerPixel)
	assert.Equal(t, FormatPNG, out.Format)

	// A uniform image stays uniform under a triangle filter.
	for i := 0; i < len(out.Data); i += BytesPerPixel {
		assert.InDelta(t, 255, int(out.Data[i]), 1)
		assert.InDelta(t, 0, int(out.Data[i+1]), 1)
		assert.InDelta(t, 255, int(out.Data[i+3]), 1)
	}

	assert.Equal(t, before, src.Data, "source must not be modified")
}

func TestResizeSameSizeReturnsCopy(t *testing.T) {
	src := getTestImage(4, 4, color.NRGBA{B: 255, A: 255})

	out, err := Resize(src, 4, 4)
	require.NoError(t, err)
	assert.Equal(t, src.Data, out.Data)

	out.Data[0] = 42
	assert.NotEqual(t, src.Data[0], out.Data[0], "result must own its buffer")
}

func TestResizeInvalidDimensions(t *testing.T) {
	src := getTestImage(4, 4, color.NRGBA{A: 255})

	_, err := Resize(src, 0, 4)
	assert.True(t, errors.Is(err, ErrInvalidDimensions))

	_, err = Resize(&Image{Format: FormatPNG}, 2, 2)
	assert.True(t, errors.Is(err, ErrInvalidDimensions))
}

func TestStandardize(t *testing.T) {
	tests := []struct {
		name           string
		aW, aH, bW, bH int
		wantW, wantH   int
		aResized       bool
		bResized       bool
	}{
		{name: "first smaller", aW: 2, aH: 2, bW: 4, bH: 4, wantW: 2, wantH: 2, bResized: true},
		{name: "second smaller", aW: 8, aH: 6, bW: 3, bH: 5, wantW: 3, wantH: 5, aResized: true},
		{name: "equal shapes", aW: 5, aH: 5, bW: 5, bH: 5, wantW: 5, wantH: 5},
		{name: "equal count different shapes", aW: 2, aH: 8, bW: 4, bH: 4, wantW: 4, wantH: 4, aResized: true},
		{name: "smaller is wider", aW: 10, aH: 1, bW: 3, bH: 4, wantW: 10, wantH: 1, bResized: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := getTestImage(tt.aW, tt.aH, color.NRGBA{R: 255, A: 255})
			b := getTestImage(tt.bW, tt.bH, color.NRGBA{B: 255, A: 255})

			outA, outB, err := Standardize(a, b)
			require.NoError(t, err)

			assert.Equal(t, tt.wantW, outA.Width)
			assert.Equal(t, tt.wantH, outA.Height)
			assert.Equal(t, tt.wantW, outB.Width)
			assert.Equal(t, tt.wantH, outB.Height)
			assert.NoError(t, outA.Validate())
			assert.NoError(t, outB.Validate())

			assert.Equal(t, tt.aResized, outA.Width != tt.aW || outA.Height != tt.aH)
			assert.Equal(t, tt.bResized, outB.Width != tt.bW || outB.Height != tt.bH)

			// Inputs keep their original grids.
			assert.Equal(t, tt.aW, a.Width)
			assert.Equal(t, tt.bW, b.Width)
			assert.Len(t, a.Data, tt.aW*tt.aH*BytesPerPixel)
			assert.Len(t, b.Data, tt.bW*tt.bH*BytesPerPixel)
		})
	}
}

func TestStandardizeZeroDimensions(t *testing.T) {
	ok := getTestImage(2, 2, color.NRGBA{A: 255})
	empty := &Image{Format: FormatPNG, Width: 0, Height: 3}

	_, _, err := Standardize(empty, ok)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidDimensions))

	_, _, err = Standardize(ok, empty)
	require.Error(t, err)
	assert.Equal(t, ErrInvalidDimensions, KindOf(err))
}

func TestStandardizeKeepsColors(t *testing.T) {
	a := getTestImage(4, 4, color.NRGBA{R: 255, A: 255})
	b := getTestImage(2, 2, color.NRGBA{B: 255, A: 255})

	outA, outB, err := Standardize(a, b)
	require.NoError(t, err)
	assert.InDelta(t, 255, int(outA.Data[0]), 1)
	assert.InDelta(t, 0, int(outA.Data[2]), 1)
	assert.Equal(t, []byte{0, 0, 255, 255}, outB.Data[:4])
}
