// Package filesystem 文件系统抽象，配置文件读取和前端静态文件都经过这里
// 测试时可以切换到内存文件系统
package filesystem

import "github.com/spf13/afero"

var backend = afero.Afero{Fs: afero.NewOsFs()}

// API 返回当前使用的文件系统
func API() afero.Afero {
	return backend
}

// SetOsFs 切换回操作系统文件系统
func SetOsFs() {
	backend = afero.Afero{Fs: afero.NewOsFs()}
}

// SetMemMapFs 切换到内存文件系统
func SetMemMapFs() {
	backend = afero.Afero{Fs: afero.NewMemMapFs()}
}
