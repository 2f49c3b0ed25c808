package model

// 前后端通信消息结构
type Msg struct {
	Type    string `json:"type"`
	Content string `json:"content"`
}

// 请求类型
const (
	MsgEnv   = "env"   // 设置热源参数，Content 为 json
	MsgStart = "start" // 初始化温度场并推送
	MsgStop  = "stop"
)

// 响应类型
const (
	MsgEnvSet  = "envSet"
	MsgStarted = "started"
	MsgStopped = "stopped"
	MsgError   = "error"
)

// 推送给前端的温度场，Data 按 Step 抽样
type FieldData struct {
	Rows int         `json:"rows"`
	Cols int         `json:"cols"`
	Step int         `json:"step"`
	Data [][]float32 `json:"data"`
}
