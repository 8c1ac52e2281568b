package theme

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"sync"
)

type Mode string

const (
	Light Mode = "light"
	Dark  Mode = "dark"
)

type Template string

const (
	Modern  Template = "modern"
	Classic Template = "classic"
	Minimal Template = "minimal"
)

func (t Template) Valid() bool {
	switch t {
	case Modern, Classic, Minimal:
		return true
	}
	return false
}

var (
	ErrUnknownTemplate = errors.New("unknown template")
	ErrUnknownPalette  = errors.New("unknown palette")
	ErrInvalidColor    = errors.New("invalid color")
)

// Settings 是纯展示用的外观配置，与简历文档互不影响。
type Settings struct {
	Mode         Mode     `json:"mode"`
	Template     Template `json:"template"`
	PrimaryColor string   `json:"primary_color"`
}

const DefaultPrimaryColor = "#3b82f6"

func Default() Settings {
	return Settings{Mode: Light, Template: Modern, PrimaryColor: DefaultPrimaryColor}
}

// TemplateInfo 用于模板选择列表。
type TemplateInfo struct {
	ID          Template `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
}

var Templates = []TemplateInfo{
	{ID: Modern, Name: "Modern", Description: "Clean with gradient accents"},
	{ID: Classic, Name: "Classic", Description: "Traditional professional"},
	{ID: Minimal, Name: "Minimal", Description: "Simple and elegant"},
}

// Palette 是一组预设配色。
type Palette struct {
	Name      string `json:"name"`
	Primary   string `json:"primary"`
	Secondary string `json:"secondary"`
}

var Palettes = []Palette{
	{Name: "Ocean Blue", Primary: "#3b82f6", Secondary: "#8b5cf6"},
	{Name: "Emerald", Primary: "#10b981", Secondary: "#14b8a6"},
	{Name: "Sunset", Primary: "#f59e0b", Secondary: "#ef4444"},
	{Name: "Royal", Primary: "#8b5cf6", Secondary: "#ec4899"},
}

// Context 在进程生命周期内保存当前外观配置，不做持久化。
// 通过构造函数显式创建并注入给使用方。
type Context struct {
	mu       sync.RWMutex
	settings Settings
}

func New(initial Settings) *Context {
	if initial.Mode != Dark {
		initial.Mode = Light
	}
	if !initial.Template.Valid() {
		initial.Template = Modern
	}
	if !ValidColor(initial.PrimaryColor) {
		initial.PrimaryColor = DefaultPrimaryColor
	}
	return &Context{settings: initial}
}

func (c *Context) Settings() Settings {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.settings
}

// Toggle 在浅色与深色之间切换。
func (c *Context) Toggle() Settings {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.settings.Mode == Dark {
		c.settings.Mode = Light
	} else {
		c.settings.Mode = Dark
	}
	return c.settings
}

func (c *Context) SetTemplate(t Template) (Settings, error) {
	if !t.Valid() {
		return c.Settings(), fmt.Errorf("%w: %q", ErrUnknownTemplate, t)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.settings.Template = t
	return c.settings, nil
}

// 主色会写进 CSS 变量，只接受 #rgb 与 #rrggbb。
var hexColor = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

func ValidColor(color string) bool {
	return hexColor.MatchString(color)
}

func (c *Context) SetPrimaryColor(color string) (Settings, error) {
	if !ValidColor(color) {
		return c.Settings(), fmt.Errorf("%w: %q", ErrInvalidColor, color)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.settings.PrimaryColor = color
	return c.settings, nil
}

// ApplyPalette 按名称（不区分大小写）应用预设配色的主色。
func (c *Context) ApplyPalette(name string) (Settings, error) {
	for _, p := range Palettes {
		if strings.EqualFold(p.Name, strings.TrimSpace(name)) {
			return c.SetPrimaryColor(p.Primary)
		}
	}
	return c.Settings(), fmt.Errorf("%w: %q", ErrUnknownPalette, name)
}
