// Package embedded 让各个包读取随二进制发布的 data/ 目录
//
// //go:embed 只能引用所在目录之下的文件，所以 embed.FS 声明在根目录的 embed.go，
// main 启动时通过 Init 交给本包。测试可以传入 os.DirFS 或 fstest.MapFS。
package embedded

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
)

const (
	SchemaPath        = "data/catalog.schema.json"
	DefaultConfigPath = "data/launcher.yaml"
	DemoCatalogPath   = "data/demo/catalog.yaml"
)

// ErrNotInitialized 未调用 Init 就访问资源
var ErrNotInitialized = errors.New("embedded: data filesystem not set")

var (
	dataFS      fs.FS
	initialized bool
)

// Init 设置数据文件系统，须在加载任何资源之前调用
func Init(data fs.FS) {
	dataFS = data
	initialized = dataFS != nil
}

func IsInitialized() bool {
	return initialized
}

// normalize 转成 fs.FS 要求的斜杠路径，只接受 data/ 下的文件
func normalize(path string) (string, error) {
	path = strings.TrimPrefix(filepath.ToSlash(path), "./")
	if !strings.HasPrefix(path, "data/") || !fs.ValidPath(path) {
		return "", fmt.Errorf("embedded: %q is not under data/", path)
	}
	return path, nil
}

// Open 打开 data/ 下的文件
func Open(path string) (fs.File, error) {
	if !initialized {
		return nil, ErrNotInitialized
	}
	path, err := normalize(path)
	if err != nil {
		return nil, err
	}
	return dataFS.Open(path)
}

// ReadFile 读取 data/ 下的文件
func ReadFile(path string) ([]byte, error) {
	if !initialized {
		return nil, ErrNotInitialized
	}
	path, err := normalize(path)
	if err != nil {
		return nil, err
	}
	return fs.ReadFile(dataFS, path)
}

func Exists(path string) bool {
	f, err := Open(path)
	if err != nil {
		return false
	}
	f.Close()
	return true
}
