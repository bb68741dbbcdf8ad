package main

import (
	"os"

	"github.com/decker502/launcher/pkg/cli"
	"github.com/decker502/launcher/pkg/embedded"
)

func main() {
	// 初始化嵌入资源（必须在任何资源加载之前）
	embedded.Init(dataFS)

	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
