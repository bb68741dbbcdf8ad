package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/decker502/launcher/pkg/embedded"
	"gopkg.in/yaml.v3"
)

// Format 目录文档格式
type Format int

const (
	FormatJSON Format = iota
	FormatYAML
)

// String 返回格式名称
func (f Format) String() string {
	if f == FormatYAML {
		return "yaml"
	}
	return "json"
}

// FormatOf 根据扩展名判断格式
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return 0, fmt.Errorf("%w: %q (want .json, .yaml or .yml)", ErrUnsupportedExtension, filepath.Ext(path))
	}
}

// Load 加载目录文件
//
// 参数：
//   - path: 目录文件路径
//   - v: schema 校验器，为 nil 时跳过校验
//
// 返回：
//   - error: ErrUnsupportedExtension / ErrNotFound / ErrSchema / ErrEmpty，或解码错误
func Load(path string, v *Validator) (*Catalog, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}

	dir, err := filepath.Abs(filepath.Dir(path))
	if err != nil {
		dir = filepath.Dir(path)
	}

	c, err := Parse(data, format, v)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	c.Dir = dir

	log.Printf("[Catalog] 加载目录 %s: %d 个游戏", path, c.Len())
	return c, nil
}

// LoadDemo 加载内置的演示目录
func LoadDemo(v *Validator) (*Catalog, error) {
	data, err := embedded.ReadFile(embedded.DemoCatalogPath)
	if err != nil {
		return nil, fmt.Errorf("read demo catalog: %w", err)
	}
	c, err := Parse(data, FormatYAML, v)
	if err != nil {
		return nil, fmt.Errorf("demo catalog: %w", err)
	}
	log.Printf("[Catalog] 使用内置演示目录: %d 个游戏", c.Len())
	return c, nil
}

// Parse 校验并解码目录文档
func Parse(data []byte, format Format, v *Validator) (*Catalog, error) {
	if v != nil {
		if err := v.Validate(data, format); err != nil {
			return nil, err
		}
	}

	var c Catalog
	if err := decode(data, format, &c); err != nil {
		return nil, fmt.Errorf("decode %s: %w", format, err)
	}
	if len(c.Games) == 0 {
		return nil, ErrEmpty
	}
	return &c, nil
}

// decode JSON 文档常用制表符缩进，而 YAML 不允许，因此按格式分别解码
func decode(data []byte, format Format, out *Catalog) error {
	if format == FormatJSON {
		return json.Unmarshal(data, out)
	}
	return yaml.Unmarshal(data, out)
}
