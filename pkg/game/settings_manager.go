package game

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// LauncherSettings 启动器偏好设置
// 只保存用户偏好，从不保存轮播的运行状态
type LauncherSettings struct {
	// 上次退出时居中的游戏，仅在打开同一个目录时恢复
	LastCatalog  string `yaml:"lastCatalog"`
	LastSelected string `yaml:"lastSelected"` // 游戏标题

	Fullscreen bool `yaml:"fullscreen"` // 下次启动时是否全屏
}

// DefaultSettings 返回默认设置
func DefaultSettings() *LauncherSettings {
	return &LauncherSettings{}
}

// gdata 中的存储位置：对象 settings 的 global 属性，内容为 YAML
const (
	settingsObject   = "settings"
	settingsProperty = "global"
)

// SettingsManager 启动器偏好的读写
// storage 为 nil 时只在内存中保存，Save 不报错
type SettingsManager struct {
	storage  *gdata.Manager
	settings *LauncherSettings
}

// NewSettingsManager 创建设置管理器并立即读取已保存的设置
//
// 参数：
//   - storage: gdata 存储，可为 nil（仅内存）
//
// 返回：
//   - error: 始终为 nil；读取失败只记录日志并使用默认设置
func NewSettingsManager(storage *gdata.Manager) (*SettingsManager, error) {
	sm := &SettingsManager{storage: storage, settings: DefaultSettings()}
	if err := sm.Load(); err != nil {
		log.Printf("[SettingsManager] 读取设置失败，使用默认值: %v", err)
	}
	return sm, nil
}

// OpenStorage 打开启动器的 gdata 存储
// 失败时返回 nil，调用方进入降级模式
func OpenStorage(appName string) *gdata.Manager {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		log.Printf("[SettingsManager] gdata 不可用，设置只保存在内存中: %v", err)
		return nil
	}
	return m
}

// Load 从存储读取设置；没有存储或从未保存过时使用默认设置
// 读取或解析失败时同样回到默认设置，并返回错误
func (sm *SettingsManager) Load() error {
	sm.settings = DefaultSettings()
	if sm.storage == nil || !sm.storage.ObjectPropExists(settingsObject, settingsProperty) {
		return nil
	}

	data, err := sm.storage.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}

	loaded := DefaultSettings()
	if err := yaml.Unmarshal(data, loaded); err != nil {
		return fmt.Errorf("parse settings: %w", err)
	}
	sm.settings = loaded
	log.Printf("[SettingsManager] 已读取设置 (lastSelected=%q, fullscreen=%v)", loaded.LastSelected, loaded.Fullscreen)
	return nil
}

// Save 把内存中的设置写入存储
func (sm *SettingsManager) Save() error {
	if sm.storage == nil {
		return nil
	}

	data, err := yaml.Marshal(sm.settings)
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	if err := sm.storage.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	log.Printf("[SettingsManager] 设置已保存")
	return nil
}

// GetSettings 返回当前设置
func (sm *SettingsManager) GetSettings() *LauncherSettings {
	return sm.settings
}

// SetLastSelected 记录目录 catalogPath 中居中的游戏，需要 Save 才会持久化
func (sm *SettingsManager) SetLastSelected(catalogPath, title string) {
	sm.settings.LastCatalog = catalogPath
	sm.settings.LastSelected = title
}

// LastSelected 返回目录 catalogPath 上次居中的游戏标题
// 上次打开的是别的目录时返回空串
func (sm *SettingsManager) LastSelected(catalogPath string) string {
	if sm.settings.LastCatalog != catalogPath {
		return ""
	}
	return sm.settings.LastSelected
}

// SetFullscreen 记录全屏状态，需要 Save 才会持久化
func (sm *SettingsManager) SetFullscreen(enabled bool) {
	sm.settings.Fullscreen = enabled
}
