package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/afero"

	"openvid/filesystem"
	"openvid/handles"
	"openvid/middleware"
	"openvid/routes"
	"openvid/services"
	"openvid/sources"
)

// 退出时等待处理中请求的最长时间
const shutdownTimeout = 5 * time.Second

type Server struct {
	Port   string
	router *gin.Engine
}

// NewServer 创建服务器实例
// staticDir 为空或目录不存在时不提供前端页面
func NewServer(port, staticDir string, searcher handles.Searcher) *Server {
	if gin.Mode() == gin.DebugMode {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.CORS())

	routes.SetupRoutes(router, handles.NewSearchHandler(searcher), staticHandler(staticDir))

	return &Server{
		Port:   port,
		router: router,
	}
}

// NewDefaultServer 使用全部线上数据源
func NewDefaultServer(port, staticDir string, timeout time.Duration) *Server {
	searchService := services.NewSearchService(
		sources.Defaults(nil),
		services.WithTimeout(timeout),
	)
	return NewServer(port, staticDir, searchService)
}

// Handler 返回底层路由，测试用
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start 启动服务器，ctx 结束时优雅退出
func (s *Server) Start(ctx context.Context) error {
	srv := &http.Server{
		Addr:              ":" + s.Port,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.WithField("port", s.Port).Info("服务器启动")
		log.Infof("访问地址: http://localhost:%s", s.Port)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("服务器启动失败: %w", err)
	case <-ctx.Done():
	}

	log.Info("正在关闭服务器")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("服务器关闭失败: %w", err)
	}
	return nil
}

func staticHandler(dir string) http.Handler {
	if dir == "" {
		return nil
	}
	fs := filesystem.API()
	if ok, err := fs.DirExists(dir); err != nil || !ok {
		log.WithField("dir", dir).Warn("静态目录不存在，不提供前端页面")
		return nil
	}
	return http.FileServer(afero.NewHttpFs(fs.Fs).Dir(dir))
}
