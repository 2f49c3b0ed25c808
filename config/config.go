package config

import (
	"heatroom/heat_source"

	log "github.com/sirupsen/logrus"
	"gopkg.in/ini.v1"
)

type Config struct {
	Addr string

	Size    int     // 网格边长
	Ambient float32 // 初始化热源前温度场的环境温度

	Zone heat_source.Params

	LogLevel string

	RenderOutput string // 温度场云图输出路径，为空则不输出
	RenderStep   int
}

// Load 读取配置文件，读取失败时使用默认值
func Load(path string) Config {
	file, err := ini.Load(path)
	if err != nil {
		log.WithFields(log.Fields{
			"path": path,
			"err":  err,
		}).Warn("配置文件读取错误，使用默认配置")
		file = ini.Empty()
	}

	return loadCfg(file)
}

func loadCfg(file *ini.File) Config {
	zone := file.Section("zone")
	return Config{
		Addr:    file.Section("server").Key("Addr").MustString(":9000"),
		Size:    file.Section("grid").Key("Size").MustInt(heat_source.DesignSize),
		Ambient: float32(file.Section("grid").Key("Ambient").MustFloat64(20)),
		Zone: heat_source.Params{
			KhaiTemp:    float32(zone.Key("KhaiTemp").MustFloat64(37)),
			OutsideTemp: float32(zone.Key("OutsideTemp").MustFloat64(-5)),
			HeaterTemp:  float32(zone.Key("HeaterTemp").MustFloat64(60)),
			WallTemp:    float32(zone.Key("WallTemp").MustFloat64(10)),
			Window1:     float32(zone.Key("Window1").MustFloat64(0)),
			Window2:     float32(zone.Key("Window2").MustFloat64(0)),
		},
		LogLevel:     file.Section("log").Key("Level").MustString("info"),
		RenderOutput: file.Section("render").Key("Output").MustString(""),
		RenderStep:   file.Section("render").Key("Step").MustInt(4),
	}
}

// SetupLog 按配置设置日志级别
func (c Config) SetupLog() {
	level, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		log.WithField("level", c.LogLevel).Warn("未知的日志级别，使用 info")
		level = log.InfoLevel
	}
	log.SetLevel(level)
}
