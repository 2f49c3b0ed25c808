package heat_source

// Params 初始化热源/热沉所需的参数
type Params struct {
	KhaiTemp    float32 `json:"khai_temp"`    // 人体温度
	OutsideTemp float32 `json:"outside_temp"` // 室外温度
	HeaterTemp  float32 `json:"heater_temp"`  // 暖气温度
	WallTemp    float32 `json:"wall_temp"`    // 墙体温度
	Window1     float32 `json:"window1"`      // 窗户1 开度，[0, 1]
	Window2     float32 `json:"window2"`      // 窗户2 开度，[0, 1]
}

// Blend 窗户温度：coef = 1 时为室外温度，coef = 0 时为暖气温度。
// 不做截断，超出 [0, 1] 的系数按原样计算。
func Blend(coef, outside, heater float32) float32 {
	return coef*outside + (1-coef)*heater
}

// Initialize 按 512×512 的默认布局写入热源和热沉。
// grid 为行优先存储，stride 为行宽，调用方保证 grid 足够大；
// 不在任何区域内的点保持原值。
func Initialize(grid []float32, stride int, p Params) {
	DefaultLayout.Apply(grid, stride, p)
}
