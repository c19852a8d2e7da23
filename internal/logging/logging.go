// Package logging configura o logger padrão (charmbracelet/log) usado por toda a aplicação.
package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

// New cria um logger com nível e formato ("json" ou "text").
// Nível inválido cai para info.
func New(w io.Writer, level, format string) *log.Logger {
	lvl, err := log.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		lvl = log.InfoLevel
	}

	formatter := log.TextFormatter
	if strings.EqualFold(strings.TrimSpace(format), "json") {
		formatter = log.JSONFormatter
	}

	return log.NewWithOptions(w, log.Options{
		Level:           lvl,
		Formatter:       formatter,
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339,
	})
}

// Setup instala o logger como padrão do pacote log em stderr
func Setup(level, format string) *log.Logger {
	logger := New(os.Stderr, level, format)
	log.SetDefault(logger)
	return logger
}
