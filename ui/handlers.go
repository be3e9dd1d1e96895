package ui

import (
	"encoding/json"
	"html/template"
	"net/http"

	"slviewer/domain/queue"
	"slviewer/internal/errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Messages returned to clients
const (
	msgTableUnavailable = "Erro ao conectar ao banco de dados"
	msgInvalidIndex     = "Índice inválido"
	msgRouteNotFound    = "Rota não encontrada"
)

// indexPage is the data handed to index.html
type indexPage struct {
	DadosJSON        template.JS
	Columns          []string
	ConceitoPOpcoes  []string
	ConceitoSTOpcoes []string
	Timestamp        string
	Sample           bool
}

// handleIndex renders the queue page with its filter options
func (s *Server) handleIndex(c *gin.Context) {
	table, source, ok := s.loadTable(c)
	if !ok {
		c.String(http.StatusInternalServerError, msgTableUnavailable)
		return
	}

	dados, err := json.Marshal(table.Records)
	if err != nil {
		s.logger.Error("failed to serialize queue table", zap.Error(err))
		c.String(http.StatusInternalServerError, msgTableUnavailable)
		return
	}

	s.renderTemplate(c, "index.html", indexPage{
		DadosJSON:        template.JS(dados),
		Columns:          table.Columns,
		ConceitoPOpcoes:  queue.FilterOptionStrings(table, queue.FilterColumnProcess),
		ConceitoSTOpcoes: queue.FilterOptionStrings(table, queue.FilterColumnStatus),
		Timestamp:        s.timestamp(),
		Sample:           source.IsSample(),
	})
}

// handleDados returns every record plus the time of the read
func (s *Server) handleDados(c *gin.Context) {
	table, _, ok := s.loadTable(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"erro": msgTableUnavailable})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"dados":     table.Records,
		"timestamp": s.timestamp(),
	})
}

// handleDetalhe returns the record at the given row index as a flat object
func (s *Server) handleDetalhe(c *gin.Context) {
	index, ok := parseIndex(c.Param("index"))
	if !ok {
		s.handleNotFound(c)
		return
	}

	table, _, ok := s.loadTable(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"erro": msgTableUnavailable})
		return
	}

	record, err := table.At(index)
	if errors.HasCode(err, errors.CodeIndexOutOfRange) {
		c.JSON(http.StatusNotFound, gin.H{"erro": msgInvalidIndex})
		return
	}

	c.JSON(http.StatusOK, record)
}

func (s *Server) handleNotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{"erro": msgRouteNotFound})
}

// parseIndex accepts an optional minus sign followed by up to nine digits
func parseIndex(raw string) (int, bool) {
	digits := raw
	negative := len(digits) > 0 && digits[0] == '-'
	if negative {
		digits = digits[1:]
	}
	if digits == "" || len(digits) > 9 {
		return 0, false
	}

	n := 0
	for _, r := range digits {
		if r < '0' || r > '9' {
			return 0, false
		}
		n = n*10 + int(r-'0')
	}
	if negative {
		n = -n
	}
	return n, true
}
