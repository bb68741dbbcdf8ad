package catalog

import "errors"

var (
	// ErrUnsupportedExtension 目录文件扩展名不是 .json / .yaml / .yml
	ErrUnsupportedExtension = errors.New("catalog: unsupported file extension")

	// ErrNotFound 目录文件不存在
	ErrNotFound = errors.New("catalog: file not found")

	// ErrSchema 目录内容不符合 JSON Schema
	ErrSchema = errors.New("catalog: schema validation failed")

	// ErrEmpty 目录中没有任何游戏
	ErrEmpty = errors.New("catalog: no games")
)
