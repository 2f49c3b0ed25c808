package heat_source

import "fmt"

// Span 半开区间 [From, To)，单位为网格点
type Span struct {
	From int
	To   int
}

func (s Span) Contains(i int) bool {
	return i >= s.From && i < s.To
}

func (s Span) Empty() bool {
	return s.To <= s.From
}

func (s Span) String() string {
	return fmt.Sprintf("[%d, %d)", s.From, s.To)
}

// Kind 区域类型：热源 / 热沉
type Kind int

const (
	Source Kind = iota
	Sink
)

func (k Kind) String() string {
	switch k {
	case Source:
		return "source"
	case Sink:
		return "sink"
	default:
		return "unknown"
	}
}

// 优先级高的区域后写入，重叠处以高优先级为准（墙 > 热源）
const (
	PrioritySource = 0
	PrioritySink   = 1
)

// Rule 根据参数计算区域内每个点的温度
type Rule func(p Params) float32

// Region 网格中一个轴对齐的矩形区域
type Region struct {
	Name     string
	Rows     Span // y 方向
	Cols     Span // x 方向
	Kind     Kind
	Priority int
	Rule     Rule
}

func (r Region) Contains(row, col int) bool {
	return r.Rows.Contains(row) && r.Cols.Contains(col)
}

func (r Region) String() string {
	return fmt.Sprintf("%s(%s) rows %s cols %s", r.Name, r.Kind, r.Rows, r.Cols)
}

func khai(p Params) float32   { return p.KhaiTemp }
func heater(p Params) float32 { return p.HeaterTemp }
func wall(p Params) float32   { return p.WallTemp }

func window1(p Params) float32 { return Blend(p.Window1, p.OutsideTemp, p.HeaterTemp) }
func window2(p Params) float32 { return Blend(p.Window2, p.OutsideTemp, p.HeaterTemp) }
