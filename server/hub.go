package server

import (
	"encoding/json"
	"fmt"

	"heatroom/config"
	"heatroom/heat_source"
	"heatroom/model"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"
)

// Hub 每个连接一个，保存该连接的热源参数和温度场
type Hub struct {
	cfg    config.Config
	layout *heat_source.Layout
	params heat_source.Params
	field  *model.Field

	conn *websocket.Conn
	// request
	msg chan model.Msg
	// response
	reply chan model.Msg
	done  chan struct{}
}

func NewHub(cfg config.Config) *Hub {
	return &Hub{
		cfg:    cfg,
		layout: heat_source.NewLayout(cfg.Size),
		params: cfg.Zone,
		msg:    make(chan model.Msg, 10),
		reply:  make(chan model.Msg, 10),
		done:   make(chan struct{}),
	}
}

func (h *Hub) handleResponse() {
	for {
		select {
		case reply := <-h.reply:
			if err := h.conn.WriteJSON(&reply); err != nil {
				log.WithField("type", reply.Type).Error("err: ", err)
			}
		case <-h.done:
			return
		}
	}
}

func (h *Hub) handleRequest() {
	for {
		select {
		case msg := <-h.msg:
			select {
			case h.reply <- h.handle(msg):
			case <-h.done:
				return
			}
		case <-h.done:
			return
		}
	}
}

func (h *Hub) handle(msg model.Msg) model.Msg {
	switch msg.Type {
	case model.MsgEnv:
		var p heat_source.Params
		if err := json.Unmarshal([]byte(msg.Content), &p); err != nil {
			return errorMsg(fmt.Errorf("parse env: %w", err))
		}
		h.params = p
		log.WithFields(log.Fields{
			"khai_temp":    p.KhaiTemp,
			"outside_temp": p.OutsideTemp,
			"heater_temp":  p.HeaterTemp,
			"wall_temp":    p.WallTemp,
			"window1":      p.Window1,
			"window2":      p.Window2,
		}).Info("env is set")
		return model.Msg{
			Type:    model.MsgEnvSet,
			Content: "env is set",
		}
	case model.MsgStart:
		data, err := json.Marshal(h.initField())
		if err != nil {
			return errorMsg(fmt.Errorf("marshal field: %w", err))
		}
		return model.Msg{
			Type:    model.MsgStarted,
			Content: string(data),
		}
	case model.MsgStop:
		h.field = nil
		return model.Msg{
			Type:    model.MsgStopped,
			Content: "stopped",
		}
	default:
		log.WithField("type", msg.Type).Warn("no such type")
		return errorMsg(fmt.Errorf("no such type: %q", msg.Type))
	}
}

// initField 按当前参数重新生成初始温度场
func (h *Hub) initField() model.FieldData {
	size := h.layout.Size()
	h.field = model.NewField(size, size)
	h.field.Fill(h.cfg.Ambient)
	h.layout.Apply(h.field.Data, h.field.Stride, h.params)
	return h.field.Snapshot(h.cfg.RenderStep)
}

func (h *Hub) close() {
	close(h.done)
}

func errorMsg(err error) model.Msg {
	return model.Msg{
		Type:    model.MsgError,
		Content: err.Error(),
	}
}
