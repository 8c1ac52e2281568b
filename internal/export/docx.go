package export

import (
	"context"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ecodeclub/ekit/slice"
	"github.com/lukasjarosch/go-docx"

	"resumehub/internal/preview"
	"resumehub/internal/resume"
	"resumehub/internal/tasks"
)

//go:embed templates/resume.docx
var docxTemplate []byte

const entrySeparator = "   |   "

// DOCXConverter 用占位符替换的方式填充内置的 Word 模板。
// go-docx 只支持基于文件的读写，所以借助临时目录中转。
type DOCXConverter struct {
	tempDir string
}

func NewDOCXConverter() *DOCXConverter {
	return &DOCXConverter{}
}

func (c *DOCXConverter) Convert(_ context.Context, p tasks.ExportPayload) ([]byte, error) {
	dir, err := os.MkdirTemp(c.tempDir, "resume-docx-*")
	if err != nil {
		return nil, fmt.Errorf("create temp dir: %w", err)
	}
	defer os.RemoveAll(dir)

	templatePath := filepath.Join(dir, "template.docx")
	if err := os.WriteFile(templatePath, docxTemplate, 0o600); err != nil {
		return nil, fmt.Errorf("write docx template: %w", err)
	}

	doc, err := docx.Open(templatePath)
	if err != nil {
		return nil, fmt.Errorf("open docx template: %w", err)
	}
	if err := doc.ReplaceAll(Placeholders(p.Document)); err != nil {
		return nil, fmt.Errorf("replace docx placeholders: %w", err)
	}

	outPath := filepath.Join(dir, "resume.docx")
	if err := doc.WriteToFile(outPath); err != nil {
		return nil, fmt.Errorf("write docx: %w", err)
	}
	data, err := os.ReadFile(outPath)
	if err != nil {
		return nil, fmt.Errorf("read docx: %w", err)
	}
	return data, nil
}

// Placeholders 把文档展开为模板占位符，段落内容用分隔符连接成单行。
func Placeholders(doc resume.ResumeData) docx.PlaceholderMap {
	info := doc.PersonalInfo
	return docx.PlaceholderMap{
		"name":    info.Name,
		"title":   info.Title,
		"contact": joinNonEmpty(entrySeparator, info.Email, info.Phone, info.Location),
		"links": strings.Join(slice.Map(info.Links(), func(_ int, l resume.Link) string {
			return l.URL
		}), entrySeparator),
		"summary": doc.Summary,
		"activities": strings.Join(slice.Map(doc.Activities, func(_ int, a resume.Activity) string {
			return fmt.Sprintf("%s %s, %s (%s): %s", preview.ActivityIcon(a.Type), a.Title, a.Organization, a.Date, a.Description)
		}), entrySeparator),
		"skills": strings.Join(slice.Map(preview.TechnicalSkills(doc.Skills), func(_ int, s resume.Skill) string {
			return s.Name
		}), ", "),
		"education": strings.Join(slice.Map(doc.Education, func(_ int, e resume.Education) string {
			if e.GPA == "" {
				return fmt.Sprintf("%s, %s (%s)", e.Degree, e.Institution, e.Year)
			}
			return fmt.Sprintf("%s, %s (%s) GPA %s", e.Degree, e.Institution, e.Year, e.GPA)
		}), entrySeparator),
	}
}

func joinNonEmpty(sep string, parts ...string) string {
	return strings.Join(slice.FindAll(parts, func(s string) bool { return s != "" }), sep)
}
