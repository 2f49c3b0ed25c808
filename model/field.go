package model

// Field 行优先存储的二维温度场
type Field struct {
	Rows   int
	Stride int
	Data   []float32
}

func NewField(rows, stride int) *Field {
	return &Field{
		Rows:   rows,
		Stride: stride,
		Data:   make([]float32, rows*stride),
	}
}

func (f *Field) At(row, col int) float32 {
	return f.Data[row*f.Stride+col]
}

func (f *Field) Set(row, col int, v float32) {
	f.Data[row*f.Stride+col] = v
}

// Fill 将所有节点设为同一温度，作为初始化热源前的环境温度
func (f *Field) Fill(v float32) {
	for i := range f.Data {
		f.Data[i] = v
	}
}

// Downsample 每隔 step 个点取一个，step < 1 按 1 处理
func (f *Field) Downsample(step int) [][]float32 {
	if step < 1 {
		step = 1
	}
	res := make([][]float32, 0, (f.Rows+step-1)/step)
	for i := 0; i < f.Rows; i += step {
		row := make([]float32, 0, (f.Stride+step-1)/step)
		for j := 0; j < f.Stride; j += step {
			row = append(row, f.At(i, j))
		}
		res = append(res, row)
	}
	return res
}

func (f *Field) Snapshot(step int) FieldData {
	if step < 1 {
		step = 1
	}
	return FieldData{
		Rows: f.Rows,
		Cols: f.Stride,
		Step: step,
		Data: f.Downsample(step),
	}
}
