package utils

import (
	"bytes"
	"strings"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/ast"
)

// CleanActionItem remove a formatação markdown de um item de ação e devolve uma única linha
// Exemplo: "1. Add **schema** to [the page](/x)" -> "Add schema to the page"
func CleanActionItem(text string) string {
	if strings.TrimSpace(text) == "" {
		return ""
	}

	doc := markdown.Parse([]byte(text), nil)

	var buf bytes.Buffer
	extractText(doc, &buf)

	return strings.Join(strings.Fields(buf.String()), " ")
}

// CleanActionItems limpa cada item e descarta os que ficarem vazios
func CleanActionItems(items []string) []string {
	cleaned := make([]string, 0, len(items))
	for _, item := range items {
		if s := CleanActionItem(item); s != "" {
			cleaned = append(cleaned, s)
		}
	}
	return cleaned
}

// extractText percorre a AST acumulando apenas o texto
func extractText(node ast.Node, buf *bytes.Buffer) {
	switch n := node.(type) {
	case *ast.Text:
		buf.Write(n.Literal)
		return
	case *ast.Code:
		buf.Write(n.Literal)
		return
	case *ast.CodeBlock:
		buf.Write(n.Literal)
		buf.WriteString(" ")
		return
	case *ast.Hardbreak, *ast.Softbreak:
		buf.WriteString(" ")
		return
	case *ast.HTMLBlock, *ast.HTMLSpan:
		return
	}

	container := node.AsContainer()
	if container == nil {
		return
	}

	for _, child := range container.Children {
		extractText(child, buf)
	}

	switch node.(type) {
	case *ast.Paragraph, *ast.Heading, *ast.ListItem:
		buf.WriteString(" ")
	}
}
