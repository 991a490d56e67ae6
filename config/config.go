/*
Package config 配置管理包

项目结构说明：
================

项目目录结构：
/
├── main.go              # 程序入口，加载配置和日志后交给 cmd
├── cmd/                 # 命令行（serve / search / sources）
├── config/              # 配置（viper，环境变量优先）
├── logger/              # logrus 初始化
├── filesystem/          # afero 文件系统抽象
├── server/              # HTTP服务器、静态页面、优雅退出
├── routes/              # 路由注册
├── handles/             # API处理器
├── services/            # 聚合器和筛选逻辑
├── sources/             # 五个数据源适配器
├── models/              # 统一的数据结构
├── middleware/          # CORS、请求日志
└── utils/               # 时长/时间/HTML/类型转换工具

数据流向：
1. handles -> services.SearchService
2. SearchService -> 并发调用 sources 下选中的适配器
3. 适配器 -> utils 统一时长和时间 -> 返回 models.Video
4. SearchService 合并 -> 筛选 -> 排序 -> handles 输出JSON

运行方式：
1. 服务器模式: ./openvid serve --port=3000
2. CLI模式:    ./openvid search "space" --sources archive --sort views
*/
package config

import (
	"time"

	"github.com/spf13/viper"

	"openvid/filesystem"
)

// 配置项
const (
	KeyServerPort    = "server.port"
	KeyStaticDir     = "server.static_dir"
	KeySearchTimeout = "search.timeout"
	KeyLogLevel      = "log.level"
	KeyLogJSON       = "log.json"
)

// 配置项对应的环境变量
var envBindings = map[string]string{
	KeyServerPort:    "PORT",
	KeyStaticDir:     "STATIC_DIR",
	KeySearchTimeout: "SEARCH_TIMEOUT",
	KeyLogLevel:      "LOG_LEVEL",
	KeyLogJSON:       "LOG_JSON",
}

var defaults = map[string]interface{}{
	KeyServerPort:    "3000",
	KeyStaticDir:     "public",
	KeySearchTimeout: 10 * time.Second,
	KeyLogLevel:      "info",
	KeyLogJSON:       false,
}

type Config struct {
	ServerPort    string
	StaticDir     string
	SearchTimeout time.Duration
	LogLevel      string
	LogJSON       bool
}

var AppConfig *Config

// Setup 初始化 viper：默认值、环境变量、可选的 openvid.yaml
func Setup() error {
	viper.SetConfigName("openvid")
	viper.SetConfigType("yaml")
	viper.SetFs(filesystem.API())
	viper.AddConfigPath(".")

	for key, env := range envBindings {
		if err := viper.BindEnv(key, env); err != nil {
			return err
		}
	}
	for key, value := range defaults {
		viper.SetDefault(key, value)
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return err
		}
	}

	LoadConfig()
	return nil
}

// LoadConfig 从 viper 读取当前配置到 AppConfig
func LoadConfig() {
	AppConfig = &Config{
		ServerPort:    viper.GetString(KeyServerPort),
		StaticDir:     viper.GetString(KeyStaticDir),
		SearchTimeout: viper.GetDuration(KeySearchTimeout),
		LogLevel:      viper.GetString(KeyLogLevel),
		LogJSON:       viper.GetBool(KeyLogJSON),
	}
}
