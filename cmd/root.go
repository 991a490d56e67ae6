// Package cmd 命令行入口
package cmd

import (
	"fmt"
	"os"

	cc "github.com/ivanpirog/coloredcobra"
	"github.com/samber/lo"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"openvid/config"
	"openvid/logger"
)

func init() {
	rootCmd.PersistentFlags().String("log-level", "", "日志级别 (trace, debug, info, warn, error)")
	lo.Must0(viper.BindPFlag(config.KeyLogLevel, rootCmd.PersistentFlags().Lookup("log-level")))

	rootCmd.PersistentFlags().Bool("log-json", false, "以JSON格式输出日志")
	lo.Must0(viper.BindPFlag(config.KeyLogJSON, rootCmd.PersistentFlags().Lookup("log-json")))

	addServeFlags(rootCmd)
}

// rootCmd 不带子命令时直接启动服务器
var rootCmd = &cobra.Command{
	Use:   "openvid",
	Short: "聚合 PeerTube、Internet Archive、Dailymotion、Wikimedia Commons 和 NASA 的公开视频搜索",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// 命令行参数绑定后重新读取配置
		config.LoadConfig()
		logger.Setup(config.AppConfig.LogLevel, config.AppConfig.LogJSON)
	},
	Run: func(cmd *cobra.Command, args []string) {
		runServe(cmd.Context())
	},
}

// Execute 执行命令行
func Execute() {
	cc.Init(&cc.Config{
		RootCmd:       rootCmd,
		Headings:      cc.HiCyan + cc.Bold + cc.Underline,
		Commands:      cc.HiYellow + cc.Bold,
		Example:       cc.Italic,
		ExecName:      cc.Bold,
		Flags:         cc.Bold,
		FlagsDataType: cc.Italic + cc.HiBlue,
	})

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func handleErr(err error) {
	if err != nil {
		log.Error(err)
		fmt.Fprintf(os.Stderr, "❌ %v\n", err)
		os.Exit(1)
	}
}
