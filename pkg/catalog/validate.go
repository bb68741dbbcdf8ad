package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/decker502/launcher/pkg/embedded"
	"github.com/santhosh-tekuri/jsonschema/v6"
	"gopkg.in/yaml.v3"
)

// schemaURL 编译 schema 时使用的资源地址，只作为标识，不会发起网络请求
const schemaURL = "https://github.com/decker502/launcher/catalog.schema.json"

// Validator 目录文档的 JSON Schema 校验器
type Validator struct {
	schema *jsonschema.Schema
}

// NewValidator 编译 JSON Schema
func NewValidator(schemaDoc []byte) (*Validator, error) {
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(schemaDoc))
	if err != nil {
		return nil, fmt.Errorf("parse schema: %w", err)
	}

	c := jsonschema.NewCompiler()
	if err := c.AddResource(schemaURL, doc); err != nil {
		return nil, fmt.Errorf("add schema resource: %w", err)
	}
	sch, err := c.Compile(schemaURL)
	if err != nil {
		return nil, fmt.Errorf("compile schema: %w", err)
	}
	return &Validator{schema: sch}, nil
}

// DefaultValidator 使用嵌入的 data/catalog.schema.json
func DefaultValidator() (*Validator, error) {
	data, err := embedded.ReadFile(embedded.SchemaPath)
	if err != nil {
		return nil, fmt.Errorf("read embedded schema: %w", err)
	}
	return NewValidator(data)
}

// LoadValidator 从文件读取 JSON Schema；path 为空时使用内置 schema
func LoadValidator(path string) (*Validator, error) {
	if path == "" {
		return DefaultValidator()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read schema %s: %w", path, err)
	}
	return NewValidator(data)
}

// Validate 校验目录文档
//
// 参数：
//   - data: 文档内容
//   - format: 文档格式；YAML 先转换为 JSON 数据模型再校验
//
// 返回：
//   - error: 不符合 schema 时返回包装了 ErrSchema 的错误，
//     可以用 errors.As 取出 *jsonschema.ValidationError 查看细节
func (v *Validator) Validate(data []byte, format Format) error {
	inst, err := toInstance(data, format)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSchema, err)
	}
	if err := v.schema.Validate(inst); err != nil {
		return fmt.Errorf("%w: %w", ErrSchema, err)
	}
	return nil
}

// toInstance 把文档解码为校验器接受的 JSON 数据模型
func toInstance(data []byte, format Format) (any, error) {
	if format == FormatYAML {
		var doc any
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("parse yaml: %w", err)
		}
		// 经过一次 JSON 编码，统一数字和映射的类型
		b, err := json.Marshal(doc)
		if err != nil {
			return nil, fmt.Errorf("convert yaml to json: %w", err)
		}
		data = b
	}

	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parse json: %w", err)
	}
	return inst, nil
}
