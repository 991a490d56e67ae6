package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"openvid/config"
	"openvid/server"
)

func init() {
	rootCmd.AddCommand(serveCmd)
}

// serveCmd 服务器模式
var serveCmd = &cobra.Command{
	Use:     "serve",
	Short:   "启动HTTP服务器（/api/search、/api/health 和前端页面）",
	Example: "  openvid serve --port 8080 --static-dir ./public",
	Args:    cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		runServe(cmd.Context())
	},
}

// addServeFlags 服务器相关参数，子命令通过 PersistentFlags 继承
func addServeFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()

	flags.StringP("port", "p", "", "监听端口 (默认读取 PORT，未设置时为 3000)")
	lo.Must0(viper.BindPFlag(config.KeyServerPort, flags.Lookup("port")))

	flags.String("static-dir", "", "前端静态文件目录")
	lo.Must0(viper.BindPFlag(config.KeyStaticDir, flags.Lookup("static-dir")))

	flags.Duration("timeout", 0, "单个数据源的超时时间")
	lo.Must0(viper.BindPFlag(config.KeySearchTimeout, flags.Lookup("timeout")))
}

func runServe(parent context.Context) {
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := config.AppConfig
	srv := server.NewDefaultServer(cfg.ServerPort, cfg.StaticDir, cfg.SearchTimeout)
	handleErr(srv.Start(ctx))
}
