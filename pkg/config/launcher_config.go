package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/decker502/launcher/pkg/carousel"
	"github.com/spf13/viper"
)

// EnvPrefix 环境变量前缀，例如 LAUNCHER_WINDOW_WIDTH
const EnvPrefix = "LAUNCHER"

// LauncherConfig 启动器配置
// 来源优先级：命令行参数 > 环境变量 > 配置文件 > 内置默认值
type LauncherConfig struct {
	Catalog  string         `mapstructure:"catalog"`
	Schema   string         `mapstructure:"schema"`
	Verbose  bool           `mapstructure:"verbose"`
	Window   WindowConfig   `mapstructure:"window"`
	Carousel CarouselConfig `mapstructure:"carousel"`
	Text     TextConfig     `mapstructure:"text"`
}

// WindowConfig 窗口配置
type WindowConfig struct {
	Width      int    `mapstructure:"width"`
	Height     int    `mapstructure:"height"`
	Title      string `mapstructure:"title"`
	Fullscreen bool   `mapstructure:"fullscreen"`
}

// CarouselConfig 轮播物理参数
type CarouselConfig struct {
	ItemHeightRatio   float64 `mapstructure:"item_height_ratio"`
	FocusScale        float64 `mapstructure:"focus_scale"`
	VelocityFloor     float64 `mapstructure:"velocity_floor"`
	VelocityMax       float64 `mapstructure:"velocity_max"`
	FrictionThreshold float64 `mapstructure:"friction_threshold"`
	FrictionFar       float64 `mapstructure:"friction_far"`
	FrictionNear      float64 `mapstructure:"friction_near"`
}

// TextConfig 文字滚动参数
type TextConfig struct {
	Font        string  `mapstructure:"font"`         // TTF/OTF 路径，为空时使用内置的 Go Regular
	ScrollSpeed float64 `mapstructure:"scroll_speed"` // px/s
	HiddenTime  float64 `mapstructure:"hidden_time"`  // 滚出后额外隐藏的时间（秒）
	ScrollDelay float64 `mapstructure:"scroll_delay"` // 停稳多久后开始滚动（秒）
}

// LoadLauncherConfig 读取启动器配置
//
// 参数：
//   - defaults: 内置默认配置（YAML），通常来自嵌入的 data/launcher.yaml，可为 nil
//   - path: 配置文件路径；为空时查找 $HOME/.config/launcher/launcher.yaml，找不到不算错误
//
// 返回：
//   - error: 指定的文件无法读取或格式错误时返回
func LoadLauncherConfig(defaults []byte, path string) (LauncherConfig, error) {
	v := viper.New()
	setDefaults(v)
	v.SetConfigType("yaml")

	if len(defaults) > 0 {
		if err := v.ReadConfig(bytes.NewReader(defaults)); err != nil {
			return LauncherConfig{}, fmt.Errorf("read default config: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.MergeInConfig(); err != nil {
			return LauncherConfig{}, fmt.Errorf("read config %s: %w", path, err)
		}
	} else if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".config", "launcher"))
		v.SetConfigName("launcher")
		// 用户配置文件可选
		_ = v.MergeInConfig()
	}

	var c LauncherConfig
	if err := v.Unmarshal(&c); err != nil {
		return LauncherConfig{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

// DefaultLauncherConfig 返回内置默认值，不读取任何文件和环境变量
func DefaultLauncherConfig() LauncherConfig {
	v := viper.New()
	setDefaults(v)
	var c LauncherConfig
	if err := v.Unmarshal(&c); err != nil {
		// 默认值都是基本类型，解码不会失败
		panic(fmt.Sprintf("config: unmarshal defaults: %v", err))
	}
	return c
}

// setDefaults 与 data/launcher.yaml 保持一致，保证没有嵌入资源时也能启动
// 同时让 AutomaticEnv 能识别所有键
func setDefaults(v *viper.Viper) {
	v.SetDefault("catalog", "")
	v.SetDefault("schema", "")
	v.SetDefault("verbose", false)

	v.SetDefault("window.width", DefaultWindowWidth)
	v.SetDefault("window.height", DefaultWindowHeight)
	v.SetDefault("window.title", DefaultWindowTitle)
	v.SetDefault("window.fullscreen", false)

	v.SetDefault("carousel.item_height_ratio", ItemHeightRatio)
	v.SetDefault("carousel.focus_scale", carousel.DefaultFocusScale)
	v.SetDefault("carousel.velocity_floor", carousel.DefaultVelocityFloor)
	v.SetDefault("carousel.velocity_max", carousel.DefaultVelocityMax)
	v.SetDefault("carousel.friction_threshold", carousel.DefaultFrictionThreshold)
	v.SetDefault("carousel.friction_far", carousel.DefaultFrictionFar)
	v.SetDefault("carousel.friction_near", carousel.DefaultFrictionNear)

	v.SetDefault("text.font", "")
	v.SetDefault("text.scroll_speed", 250.0)
	v.SetDefault("text.hidden_time", 1.0)
	v.SetDefault("text.scroll_delay", 0.5)
}

// EngineConfig 根据屏幕高度生成轮播引擎配置
func (c LauncherConfig) EngineConfig(screenHeight int, viewport func() carousel.Rect) carousel.Config {
	h := c.Carousel.ItemHeightRatio * float64(screenHeight)
	cfg := carousel.DefaultConfig(h, viewport)
	if c.Carousel.FocusScale >= 1 {
		cfg.MaxFocusedHeight = h * c.Carousel.FocusScale
	}
	cfg.VelocityFloor = c.Carousel.VelocityFloor
	cfg.VelocityMax = c.Carousel.VelocityMax
	cfg.FrictionThreshold = c.Carousel.FrictionThreshold
	cfg.FrictionFar = c.Carousel.FrictionFar
	cfg.FrictionNear = c.Carousel.FrictionNear
	return cfg
}
