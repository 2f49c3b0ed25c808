package render

import (
	"errors"
	"fmt"

	"heatroom/model"

	log "github.com/sirupsen/logrus"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

var ErrEmptyField = errors.New("render: empty field")

// fieldGrid 实现 plotter.GridXYZ，坐标为抽样前的网格下标
type fieldGrid struct {
	data [][]float32
	step int
}

func (g fieldGrid) Dims() (c, r int) {
	return len(g.data[0]), len(g.data)
}

func (g fieldGrid) Z(c, r int) float64 {
	return float64(g.data[r][c])
}

func (g fieldGrid) X(c int) float64 {
	return float64(c * g.step)
}

func (g fieldGrid) Y(r int) float64 {
	return float64(r * g.step)
}

// HeatMap 将温度场按 step 抽样后绘制成云图，输出格式由 path 的扩展名决定
func HeatMap(f *model.Field, step int, title, path string) error {
	snapshot := f.Snapshot(step)
	if len(snapshot.Data) == 0 || len(snapshot.Data[0]) == 0 {
		return ErrEmptyField
	}

	g := fieldGrid{data: snapshot.Data, step: snapshot.Step}
	h := plotter.NewHeatMap(g, palette.Heat(64, 1))
	// 温度场为常数时避免色阶除零
	if h.Max == h.Min {
		h.Max = h.Min + 1
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "x (cell)"
	p.Y.Label.Text = "y (cell)"
	p.Add(h)

	if err := p.Save(8*vg.Inch, 8*vg.Inch, path); err != nil {
		return fmt.Errorf("save heat map: %w", err)
	}

	log.WithFields(log.Fields{
		"path": path,
		"min":  h.Min,
		"max":  h.Max,
	}).Info("温度场云图已输出")
	return nil
}
