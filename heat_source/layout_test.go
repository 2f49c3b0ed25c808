package heat_source

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLayout_Order(t *testing.T) {
	var names []string
	for _, r := range DefaultLayout.Regions() {
		names = append(names, r.Name)
	}
	assert.Equal(t, []string{
		"window1", "window2", "heater", "body",
		"wall-left", "wall-right",
		"wall-top-left", "wall-top-middle", "wall-top-right",
		"wall-bottom",
	}, names)

	regions := DefaultLayout.Regions()
	for k := 1; k < len(regions); k++ {
		assert.LessOrEqual(t, regions[k-1].Priority, regions[k].Priority)
	}
}

func TestNewLayout_DesignSizeKeepsLiterals(t *testing.T) {
	for k, r := range DefaultLayout.Regions() {
		assert.Equal(t, design[k].Rows, r.Rows, r.Name)
		assert.Equal(t, design[k].Cols, r.Cols, r.Name)
	}
}

func TestNewLayout_Scaled(t *testing.T) {
	l := NewLayout(1024)
	require.Equal(t, 1024, l.Size())

	r, ok := l.Lookup(10, 200)
	require.True(t, ok)
	assert.Equal(t, "window1", r.Name)
	assert.Equal(t, Span{0, 32}, r.Rows)
	assert.Equal(t, Span{128, 384}, r.Cols)

	r, ok = l.Lookup(1023, 500)
	require.True(t, ok)
	assert.Equal(t, "wall-bottom", r.Name)

	small := NewLayout(256)
	r, ok = small.Lookup(20, 20)
	require.True(t, ok)
	assert.Equal(t, "body", r.Name)
	assert.Equal(t, Span{16, 32}, r.Rows)
}

func TestLayout_Apply_Scaled(t *testing.T) {
	l := NewLayout(256)
	grid := newGrid(256, 256)
	l.Apply(grid, 256, testParams)

	assert.Equal(t, testParams.KhaiTemp, grid[20*256+20])
	assert.Equal(t, testParams.HeaterTemp, grid[50*256+230])
	assert.Equal(t, testParams.WallTemp, grid[255*256+100])
	assert.Equal(t, untouched, grid[150*256+150])
}

func TestLayout_Mask(t *testing.T) {
	mask := DefaultLayout.Mask(512)
	regions := DefaultLayout.Regions()
	require.Len(t, mask, 512*512)

	grid := newGrid(512, 512)
	Initialize(grid, 512, testParams)

	for i := 0; i < 512; i++ {
		for j := 0; j < 512; j++ {
			owner := mask[i*512+j]
			if owner < 0 {
				require.Equal(t, untouched, grid[i*512+j])
				continue
			}
			require.Equal(t, regions[owner].Rule(testParams), grid[i*512+j], "(%d, %d)", i, j)
		}
	}
}

func TestLayout_Mask_SinksWin(t *testing.T) {
	mask := DefaultLayout.Mask(512)
	regions := DefaultLayout.Regions()

	// 重叠处一定是墙
	for i := 0; i < 512; i++ {
		for j := 0; j < 512; j++ {
			owners := 0
			for _, r := range regions {
				if r.Contains(i, j) {
					owners++
				}
			}
			if owners > 1 {
				require.Equal(t, Sink, regions[mask[i*512+j]].Kind, "(%d, %d)", i, j)
			}
		}
	}
}

func TestLayout_Lookup(t *testing.T) {
	cases := []struct {
		row, col int
		name     string
		ok       bool
	}{
		{5, 100, "window1", true},
		{5, 400, "window2", true},
		{100, 460, "heater", true},
		{40, 40, "body", true},
		{0, 0, "wall-top-left", true},
		{100, 5, "wall-left", true},
		{100, 500, "wall-right", true},
		{5, 200, "wall-top-middle", true},
		{5, 450, "wall-top-right", true},
		{500, 256, "wall-bottom", true},
		{300, 300, "", false},
	}

	for _, c := range cases {
		r, ok := DefaultLayout.Lookup(c.row, c.col)
		assert.Equal(t, c.ok, ok, "(%d, %d)", c.row, c.col)
		assert.Equal(t, c.name, r.Name, "(%d, %d)", c.row, c.col)
	}
}

func TestLayout_RegionsIsCopy(t *testing.T) {
	regions := DefaultLayout.Regions()
	regions[0].Name = "changed"
	assert.Equal(t, "window1", DefaultLayout.Regions()[0].Name)
}

func TestSpan(t *testing.T) {
	s := Span{2, 5}
	assert.True(t, s.Contains(2))
	assert.False(t, s.Contains(5))
	assert.False(t, s.Empty())
	assert.True(t, Span{3, 3}.Empty())
	assert.Equal(t, "[2, 5)", s.String())
	assert.Equal(t, "sink", Sink.String())
}

func TestLayout_Mask_NarrowStride(t *testing.T) {
	assert.PanicsWithValue(t,
		"heat_source: mask stride 400 is smaller than layout size 512",
		func() { DefaultLayout.Mask(400) })
}
