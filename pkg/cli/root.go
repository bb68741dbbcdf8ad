// Package cli 命令行入口
package cli

import (
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/decker502/launcher/pkg/app"
	"github.com/decker502/launcher/pkg/catalog"
	"github.com/decker502/launcher/pkg/config"
	"github.com/decker502/launcher/pkg/embedded"
	"github.com/decker502/launcher/pkg/game"
	"github.com/decker502/launcher/pkg/tui"
)

// demoKey 内置演示目录在设置中的标识
const demoKey = "demo"

// runners 前端入口，测试中替换为记录调用的实现
type runners struct {
	gui func(app.Config) error
	tui func(*catalog.Catalog, tui.Options) error
}

func defaultRunners() runners {
	return runners{
		gui: app.Run,
		tui: func(c *catalog.Catalog, o tui.Options) error {
			o.Settings, _ = game.NewSettingsManager(game.OpenStorage(app.StorageName))
			return tui.Run(c, o)
		},
	}
}

// rootOptions 命令行参数和合并后的配置
type rootOptions struct {
	configPath string
	schemaPath string
	verbose    bool
	fullscreen bool

	cfg config.LauncherConfig
}

// Execute 解析命令行并运行
func Execute() error {
	return newRootCmd(defaultRunners()).Execute()
}

func newRootCmd(r runners) *cobra.Command {
	o := &rootOptions{}

	root := &cobra.Command{
		Use:          "launcher [catalog]",
		Short:        "Momentum carousel game launcher",
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return o.load(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			path, key := o.catalogPath(args)
			return r.gui(app.Config{
				Options:    o.cfg,
				CatalogKey: key,
				Load:       o.loader(path),
			})
		},
	}

	root.PersistentFlags().StringVar(&o.configPath, "config", "", "config file (default ~/.config/launcher/launcher.yaml)")
	root.PersistentFlags().StringVar(&o.schemaPath, "schema", "", "catalog JSON Schema (default: builtin)")
	root.PersistentFlags().BoolVarP(&o.verbose, "verbose", "v", false, "enable verbose logging")
	root.Flags().BoolVar(&o.fullscreen, "fullscreen", false, "start in fullscreen mode")

	root.AddCommand(validateCmd(o), tuiCmd(o, r))
	return root
}

// load 读取配置文件并用命令行参数覆盖
func (o *rootOptions) load(cmd *cobra.Command) error {
	// 没有嵌入资源时使用代码中的默认值
	defaults, _ := embedded.ReadFile(embedded.DefaultConfigPath)

	cfg, err := config.LoadLauncherConfig(defaults, o.configPath)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("verbose") {
		cfg.Verbose = o.verbose
	}
	if flags.Changed("schema") {
		cfg.Schema = o.schemaPath
	}
	if flags.Lookup("fullscreen") != nil && flags.Changed("fullscreen") {
		cfg.Window.Fullscreen = o.fullscreen
	}
	o.cfg = cfg

	if cfg.Verbose {
		log.SetOutput(os.Stderr)
	} else {
		log.SetOutput(io.Discard)
	}
	return nil
}

// catalogPath 命令行参数优先，其次是配置文件；都没有时使用内置演示目录
// 返回的 key 用于在设置中区分目录
func (o *rootOptions) catalogPath(args []string) (path, key string) {
	path = o.cfg.Catalog
	if len(args) > 0 {
		path = args[0]
	}
	if path == "" {
		return "", demoKey
	}
	if abs, err := filepath.Abs(path); err == nil {
		return path, abs
	}
	return path, path
}

// loader 返回加载目录的函数；path 为空时加载内置演示目录
func (o *rootOptions) loader(path string) func() (*catalog.Catalog, error) {
	schema := o.cfg.Schema
	return func() (*catalog.Catalog, error) {
		v, err := catalog.LoadValidator(schema)
		if err != nil {
			return nil, err
		}
		if path == "" {
			return catalog.LoadDemo(v)
		}
		return catalog.Load(path, v)
	}
}
