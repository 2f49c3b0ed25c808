package heat_source

import (
	"fmt"
	"sort"

	log "github.com/sirupsen/logrus"
)

const (
	// DesignSize 布局坐标按 512×512 的网格给出
	DesignSize = 512
	// CellsPerUnit 物理区域 32×32，每个单位 16 个网格点
	CellsPerUnit = 16
)

// 512×512 网格下的区域定义，注释中的 x / y 为物理坐标
var design = []Region{
	// 热源
	{Name: "window1", Rows: Span{0, 16}, Cols: Span{64, 192}, Kind: Source, Priority: PrioritySource, Rule: window1},  // x = [4, 12), y = 0
	{Name: "window2", Rows: Span{0, 16}, Cols: Span{320, 448}, Kind: Source, Priority: PrioritySource, Rule: window2}, // x = [20, 28), y = 0
	{Name: "heater", Rows: Span{32, 176}, Cols: Span{448, 496}, Kind: Source, Priority: PrioritySource, Rule: heater}, // x = [28, 31), y = [2, 11)
	{Name: "body", Rows: Span{32, 64}, Cols: Span{32, 256}, Kind: Source, Priority: PrioritySource, Rule: khai},       // x = [2, 16), y = [2, 4)

	// 热沉
	{Name: "wall-left", Rows: Span{0, 512}, Cols: Span{0, 16}, Kind: Sink, Priority: PrioritySink, Rule: wall},
	{Name: "wall-right", Rows: Span{0, 512}, Cols: Span{496, 512}, Kind: Sink, Priority: PrioritySink, Rule: wall},
	{Name: "wall-top-left", Rows: Span{0, 16}, Cols: Span{0, 64}, Kind: Sink, Priority: PrioritySink, Rule: wall},
	{Name: "wall-top-middle", Rows: Span{0, 16}, Cols: Span{192, 320}, Kind: Sink, Priority: PrioritySink, Rule: wall},
	{Name: "wall-top-right", Rows: Span{0, 16}, Cols: Span{448, 512}, Kind: Sink, Priority: PrioritySink, Rule: wall},
	{Name: "wall-bottom", Rows: Span{496, 512}, Cols: Span{0, 512}, Kind: Sink, Priority: PrioritySink, Rule: wall},
}

// DefaultLayout 512×512 网格的布局
var DefaultLayout = NewLayout(DesignSize)

// Layout 按优先级排好序的区域表
type Layout struct {
	size    int
	regions []Region
}

// NewLayout 将 512×512 的区域定义等比例缩放到 size×size 的网格
func NewLayout(size int) *Layout {
	regions := make([]Region, len(design))
	for i, r := range design {
		r.Rows = scaleSpan(r.Rows, size)
		r.Cols = scaleSpan(r.Cols, size)
		regions[i] = r
	}
	// 同一优先级内保持声明顺序
	sort.SliceStable(regions, func(a, b int) bool {
		return regions[a].Priority < regions[b].Priority
	})
	return &Layout{
		size:    size,
		regions: regions,
	}
}

func scaleSpan(s Span, size int) Span {
	return Span{From: s.From * size / DesignSize, To: s.To * size / DesignSize}
}

func (l *Layout) Size() int {
	return l.size
}

// Regions 返回区域的副本，顺序即写入顺序
func (l *Layout) Regions() []Region {
	regions := make([]Region, len(l.regions))
	copy(regions, l.regions)
	return regions
}

// Apply 依次写入每个区域，后写入的覆盖先写入的。
// 列坐标不会根据 stride 重新计算，stride 与布局大小不一致时只打印警告。
func (l *Layout) Apply(grid []float32, stride int, p Params) {
	if stride != l.size {
		log.WithFields(log.Fields{
			"stride": stride,
			"size":   l.size,
		}).Warn("stride 与布局大小不一致，列坐标未缩放")
	}

	for _, r := range l.regions {
		checkBounds(grid, stride, r)
		v := r.Rule(p)
		for i := r.Rows.From; i < r.Rows.To; i++ {
			for j := r.Cols.From; j < r.Cols.To; j++ {
				grid[i*stride+j] = v
			}
		}
	}
}

// Mask 将区域栅格化为所属区域的下标（对应 Regions() 的顺序），-1 表示不属于任何区域。
// stride 不能小于布局大小。
// 冲突时优先级高者胜出，优先级相同则后声明者胜出，与 Apply 的结果一致。
func (l *Layout) Mask(stride int) []int {
	if stride < l.size {
		panic(fmt.Sprintf("heat_source: mask stride %d is smaller than layout size %d", stride, l.size))
	}
	mask := make([]int, l.size*stride)
	for k := range mask {
		mask[k] = -1
	}
	for idx, r := range l.regions {
		for i := r.Rows.From; i < r.Rows.To; i++ {
			for j := r.Cols.From; j < r.Cols.To; j++ {
				owner := mask[i*stride+j]
				if owner < 0 || l.regions[owner].Priority <= r.Priority {
					mask[i*stride+j] = idx
				}
			}
		}
	}
	return mask
}

// Lookup 返回最终决定 (row, col) 温度的区域
func (l *Layout) Lookup(row, col int) (Region, bool) {
	for k := len(l.regions) - 1; k >= 0; k-- {
		if l.regions[k].Contains(row, col) {
			return l.regions[k], true
		}
	}
	return Region{}, false
}

func checkBounds(grid []float32, stride int, r Region) {
	if !debugBounds || r.Rows.Empty() || r.Cols.Empty() {
		return
	}
	if r.Cols.To > stride {
		panic(fmt.Sprintf("heat_source: %s exceeds stride %d", r, stride))
	}
	if last := (r.Rows.To-1)*stride + r.Cols.To - 1; last >= len(grid) {
		panic(fmt.Sprintf("heat_source: %s writes index %d, grid length %d", r, last, len(grid)))
	}
}
