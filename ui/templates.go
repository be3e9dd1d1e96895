package ui

import (
	"bytes"
	"fmt"
	"html/template"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func parseTemplates() (*template.Template, error) {
	funcMap := template.FuncMap{
		"upper": strings.ToUpper,
		// column header label: "conceito_st" -> "CONCEITO ST"
		"label": func(column string) string {
			return strings.ToUpper(strings.ReplaceAll(column, "_", " "))
		},
	}

	templates, err := template.New("").Funcs(funcMap).ParseFS(embeddedFiles, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	return templates, nil
}

// renderTemplate executes a template into a buffer first so a failure can
// still produce a clean 500
func (s *Server) renderTemplate(c *gin.Context, templateName string, data interface{}) {
	var buf bytes.Buffer
	if err := s.templates.ExecuteTemplate(&buf, templateName, data); err != nil {
		s.logger.Error("template error", zap.String("template", templateName), zap.Error(err))
		c.String(http.StatusInternalServerError, msgTableUnavailable)
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}
