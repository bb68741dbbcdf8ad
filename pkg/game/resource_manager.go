package game

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// DefaultFontPath 内置字体在缓存中使用的路径
const DefaultFontPath = "builtin:goregular"

// ResourceManager 缓存图标图片和字体
//
// 加载失败的图片以 nil 记录，缺失的图标不会每帧重新读盘，调用方拿到 nil 后绘制占位图。
//
// 缓存是普通 map，只能在主循环中访问。后台 goroutine 用 DecodeImageFile 解码，
// 再由主循环调用 AddImage 上传。
//
//	rm := NewResourceManager()
//	face := rm.Font("", 24) // 空路径使用内置字体
//	icon := rm.GetImage(c.IconPath(i))
type ResourceManager struct {
	imageCache map[string]*ebiten.Image
	faces      map[faceKey]*text.GoTextFace
	sources    map[string]*text.GoTextFaceSource
}

type faceKey struct {
	path string
	size float64
}

// NewResourceManager 创建资源管理器
func NewResourceManager() *ResourceManager {
	return &ResourceManager{
		imageCache: make(map[string]*ebiten.Image),
		faces:      make(map[faceKey]*text.GoTextFace),
		sources:    make(map[string]*text.GoTextFaceSource),
	}
}

// DecodeImageFile 解码 PNG 或 JPEG 文件，不触碰 GPU，可在任意 goroutine 调用
func DecodeImageFile(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open image: %w", err)
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode image %s: %w", path, err)
	}
	log.Printf("[ResourceManager] 解码 %s (%s, %dx%d)", path, format, img.Bounds().Dx(), img.Bounds().Dy())
	return img, nil
}

// AddImage 上传解码结果并放入缓存，img 为 nil 时记为加载失败
func (rm *ResourceManager) AddImage(path string, img image.Image) *ebiten.Image {
	var uploaded *ebiten.Image
	if img != nil {
		uploaded = ebiten.NewImageFromImage(img)
	}
	rm.imageCache[path] = uploaded
	return uploaded
}

// LoadImage 同步加载图片，失败结果同样缓存
func (rm *ResourceManager) LoadImage(path string) (*ebiten.Image, error) {
	if img, ok := rm.imageCache[path]; ok {
		if img == nil {
			return nil, fmt.Errorf("image %s: previous load failed", path)
		}
		return img, nil
	}

	decoded, err := DecodeImageFile(path)
	if err != nil {
		log.Printf("[ResourceManager] 图片不可用: %v", err)
		rm.imageCache[path] = nil
		return nil, err
	}
	return rm.AddImage(path, decoded), nil
}

// GetImage 空路径或加载失败时返回 nil
func (rm *ResourceManager) GetImage(path string) *ebiten.Image {
	if path == "" {
		return nil
	}
	img, _ := rm.LoadImage(path)
	return img
}

// LoadFont 按字号返回字体 face，path 为空时使用内置的 Go Regular
func (rm *ResourceManager) LoadFont(path string, size float64) (*text.GoTextFace, error) {
	if path == "" {
		path = DefaultFontPath
	}
	key := faceKey{path: path, size: size}
	if face, ok := rm.faces[key]; ok {
		return face, nil
	}

	src, err := rm.fontSource(path)
	if err != nil {
		return nil, err
	}
	face := &text.GoTextFace{Source: src, Size: size, Direction: text.DirectionLeftToRight}
	rm.faces[key] = face
	return face, nil
}

// fontSource 同一字体文件的各个字号共享 source
func (rm *ResourceManager) fontSource(path string) (*text.GoTextFaceSource, error) {
	if src, ok := rm.sources[path]; ok {
		return src, nil
	}

	data := goregular.TTF
	if path != DefaultFontPath {
		var err error
		if data, err = os.ReadFile(path); err != nil {
			return nil, fmt.Errorf("read font: %w", err)
		}
	}

	src, err := text.NewGoTextFaceSource(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parse font %s: %w", path, err)
	}
	rm.sources[path] = src
	return src, nil
}

// Font 与 LoadFont 相同，但失败时回退到内置字体并记住回退结果
func (rm *ResourceManager) Font(path string, size float64) *text.GoTextFace {
	face, err := rm.LoadFont(path, size)
	if err == nil {
		return face
	}
	log.Printf("[ResourceManager] 字体不可用，改用内置字体: %v", err)
	fallback, err := rm.LoadFont(DefaultFontPath, size)
	if err != nil {
		return nil
	}
	rm.faces[faceKey{path: path, size: size}] = fallback
	return fallback
}
