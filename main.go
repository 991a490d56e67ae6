package main

import (
	"github.com/samber/lo"

	"openvid/cmd"
	"openvid/config"
	"openvid/logger"
)

func main() {
	// 初始化配置
	lo.Must0(config.Setup())
	logger.Setup(config.AppConfig.LogLevel, config.AppConfig.LogJSON)

	cmd.Execute()
}
