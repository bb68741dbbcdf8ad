// check_embed 检查将被嵌入的 data/ 目录：打印每个文件的 MD5，
// 并确认 schema 能编译、演示目录能通过校验、默认配置能解析。
// 在仓库根目录运行：go run ./cmd/check_embed
package main

import (
	"crypto/md5"
	"fmt"
	"os"

	"github.com/decker502/launcher/pkg/catalog"
	"github.com/decker502/launcher/pkg/config"
	"github.com/decker502/launcher/pkg/embedded"
)

func main() {
	embedded.Init(os.DirFS("."))

	failed := false
	for _, path := range []string{embedded.SchemaPath, embedded.DefaultConfigPath, embedded.DemoCatalogPath} {
		data, err := embedded.ReadFile(path)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			failed = true
			continue
		}
		fmt.Printf("%-28s MD5 %x  %d bytes\n", path, md5.Sum(data), len(data))
	}

	v, err := catalog.DefaultValidator()
	if err != nil {
		fmt.Printf("Schema: %v\n", err)
		os.Exit(1)
	}

	c, err := catalog.LoadDemo(v)
	if err != nil {
		fmt.Printf("Demo catalog: %v\n", err)
		failed = true
	} else {
		fmt.Printf("Demo catalog: %d games\n", c.Len())
	}

	defaults, _ := embedded.ReadFile(embedded.DefaultConfigPath)
	if _, err := config.LoadLauncherConfig(defaults, embedded.DefaultConfigPath); err != nil {
		fmt.Printf("Default config: %v\n", err)
		failed = true
	}

	if failed {
		os.Exit(1)
	}
}
