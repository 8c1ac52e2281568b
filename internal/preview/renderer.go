package preview

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/ecodeclub/ekit/slice"

	"resumehub/internal/resume"
	"resumehub/internal/theme"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// View 是模板渲染所需的全部数据，全部由文档派生。
type View struct {
	Settings   theme.Settings
	Info       resume.PersonalInfo
	Links      []resume.Link
	Summary    string
	Activities []ActivityView
	Technical  []resume.Skill
	Education  []resume.Education
	Stats      Stats
	Print      bool
}

type ActivityView struct {
	resume.Activity
	Icon     string
	Verified bool
}

// BuildView 把文档投影成视图，不修改入参。
func BuildView(doc resume.ResumeData, settings theme.Settings) View {
	return View{
		Settings: settings,
		Info:     doc.PersonalInfo,
		Links:    doc.PersonalInfo.Links(),
		Summary:  doc.Summary,
		Activities: slice.Map(doc.Activities, func(_ int, a resume.Activity) ActivityView {
			return ActivityView{
				Activity: a,
				Icon:     ActivityIcon(a.Type),
				Verified: a.Status == resume.StatusVerified,
			}
		}),
		Technical: TechnicalSkills(doc.Skills),
		Education: doc.Education,
		Stats:     ComputeStats(doc.Activities),
	}
}

// Renderer 把文档渲染为 HTML，每个模板 id 对应一套样式。
type Renderer struct {
	layouts map[theme.Template]*template.Template
}

func NewRenderer() (*Renderer, error) {
	base, err := template.New("layout.tmpl").ParseFS(templateFS, "templates/layout.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parse layout template: %w", err)
	}

	layouts := make(map[theme.Template]*template.Template, len(theme.Templates))
	for _, info := range theme.Templates {
		t, err := base.Clone()
		if err != nil {
			return nil, fmt.Errorf("clone layout for %s: %w", info.ID, err)
		}
		if _, err := t.ParseFS(templateFS, "templates/"+string(info.ID)+".tmpl"); err != nil {
			return nil, fmt.Errorf("parse %s template: %w", info.ID, err)
		}
		layouts[info.ID] = t
	}
	return &Renderer{layouts: layouts}, nil
}

// MustNewRenderer 在模板无法解析时 panic，模板随二进制一起编译。
func MustNewRenderer() *Renderer {
	r, err := NewRenderer()
	if err != nil {
		panic(err)
	}
	return r
}

func (r *Renderer) Render(w io.Writer, doc resume.ResumeData, settings theme.Settings) error {
	return r.render(w, BuildView(doc, settings))
}

// RenderPrint 渲染带分页样式的打印版本。
func (r *Renderer) RenderPrint(w io.Writer, doc resume.ResumeData, settings theme.Settings) error {
	view := BuildView(doc, settings)
	view.Print = true
	return r.render(w, view)
}

// RenderString 是 Render 的便捷包装。
func (r *Renderer) RenderString(doc resume.ResumeData, settings theme.Settings) (string, error) {
	var buf bytes.Buffer
	if err := r.Render(&buf, doc, settings); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func (r *Renderer) render(w io.Writer, view View) error {
	t, ok := r.layouts[view.Settings.Template]
	if !ok {
		t = r.layouts[theme.Modern]
	}
	if err := t.ExecuteTemplate(w, "layout.tmpl", view); err != nil {
		return fmt.Errorf("execute %s template: %w", view.Settings.Template, err)
	}
	return nil
}
