package main

import (
	"flag"
	"net/http"

	"heatroom/config"
	"heatroom/heat_source"
	"heatroom/model"
	"heatroom/render"
	"heatroom/server"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

func main() {
	confPath := flag.String("conf", "conf/config.ini", "配置文件路径")
	png := flag.String("png", "", "温度场云图输出路径，覆盖配置文件中的 render.Output")
	serve := flag.Bool("serve", false, "启动 websocket 服务")
	flag.Parse()

	cfg := config.Load(*confPath)
	cfg.SetupLog()
	if *png != "" {
		cfg.RenderOutput = *png
	}

	field := model.NewField(cfg.Size, cfg.Size)
	field.Fill(cfg.Ambient)
	heat_source.NewLayout(cfg.Size).Apply(field.Data, field.Stride, cfg.Zone)
	log.WithFields(log.Fields{
		"size":    cfg.Size,
		"ambient": cfg.Ambient,
	}).Info("初始温度场已生成")

	if cfg.RenderOutput != "" {
		if err := render.HeatMap(field, cfg.RenderStep, "initial temperature field", cfg.RenderOutput); err != nil {
			log.Fatal("render: ", err)
		}
	}

	if *serve {
		upgrader.CheckOrigin = func(r *http.Request) bool {
			return true
		}
		s := server.NewServer(cfg, upgrader)
		if err := s.Serve(); err != nil {
			log.Fatal("ListenAndServe: ", err)
		}
	}
}
