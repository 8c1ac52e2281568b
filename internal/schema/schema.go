// Package schema 在整体替换文档前校验 JSON 结构。
package schema

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed resume.schema.json
var resumeSchema []byte

// ErrInvalidDocument 表示文档不符合简历结构。
var ErrInvalidDocument = errors.New("invalid resume document")

var (
	compileOnce sync.Once
	compiled    *gojsonschema.Schema
	compileErr  error
)

func load() (*gojsonschema.Schema, error) {
	compileOnce.Do(func() {
		compiled, compileErr = gojsonschema.NewSchema(gojsonschema.NewBytesLoader(resumeSchema))
	})
	return compiled, compileErr
}

// Validate 校验原始 JSON，失败时返回包裹 ErrInvalidDocument 的错误，
// 错误信息按字段列出全部问题。
func Validate(raw []byte) error {
	s, err := load()
	if err != nil {
		return fmt.Errorf("compile resume schema: %w", err)
	}

	res, err := s.Validate(gojsonschema.NewBytesLoader(raw))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	if res.Valid() {
		return nil
	}

	msgs := make([]string, 0, len(res.Errors()))
	for _, e := range res.Errors() {
		msgs = append(msgs, e.String())
	}
	return fmt.Errorf("%w: %s", ErrInvalidDocument, strings.Join(msgs, "; "))
}
