// Package siteanalysis busca uma página e extrai título, meta description, texto e headings.
// É o colaborador de análise de site usado pelo gerador de IA; falhas nunca interrompem o pipeline.
package siteanalysis

import (
	"bytes"
	"compress/gzip"
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html/charset"
)

var (
	ErrInvalidURL     = errors.New("url inválida")
	ErrNonHTMLContent = errors.New("conteúdo não é HTML")
)

const (
	defaultTimeout  = 15 * time.Second
	defaultMaxBytes = 2 << 20
	maxTextLength   = 5000
	userAgent       = "app-seo-keywords/1.0 (+site analysis)"
)

var whitespaceRe = regexp.MustCompile(`\s+`)

// SiteAnalysis é o resumo de uma página
type SiteAnalysis struct {
	URL             string   `json:"url"`
	Title           string   `json:"title"`
	MetaDescription string   `json:"metaDescription"`
	TextContent     string   `json:"textContent"`
	Headings        []string `json:"headings"`
}

// Empty retorna a análise padrão usada quando a busca falha
func Empty(rawURL string) *SiteAnalysis {
	return &SiteAnalysis{
		URL:      rawURL,
		Headings: []string{},
	}
}

// IsEmpty indica se a análise não tem conteúdo aproveitável
func (a *SiteAnalysis) IsEmpty() bool {
	return a == nil || (a.Title == "" && a.MetaDescription == "" && a.TextContent == "" && len(a.Headings) == 0)
}

// Summary monta um resumo curto para prompts
func (a *SiteAnalysis) Summary(maxText int) string {
	if a.IsEmpty() {
		return ""
	}
	var parts []string
	if a.Title != "" {
		parts = append(parts, "Title: "+a.Title)
	}
	if a.MetaDescription != "" {
		parts = append(parts, "Meta description: "+a.MetaDescription)
	}
	if len(a.Headings) > 0 {
		headings := a.Headings
		if len(headings) > 10 {
			headings = headings[:10]
		}
		parts = append(parts, "Headings: "+strings.Join(headings, " | "))
	}
	if a.TextContent != "" {
		text := a.TextContent
		if maxText > 0 && len(text) > maxText {
			text = truncateUTF8(text, maxText) + "..."
		}
		parts = append(parts, "Content excerpt: "+text)
	}
	return strings.Join(parts, "\n")
}

// Analyzer busca e analisa páginas HTML
type Analyzer struct {
	client   *http.Client
	maxBytes int64
}

// New cria um analyzer com timeout e limite de tamanho da resposta
func New(timeout time.Duration, maxBytes int64) *Analyzer {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	if maxBytes <= 0 {
		maxBytes = defaultMaxBytes
	}
	return &Analyzer{
		client:   &http.Client{Timeout: timeout},
		maxBytes: maxBytes,
	}
}

// Analyze busca a URL e extrai o conteúdo principal
func (a *Analyzer) Analyze(ctx context.Context, rawURL string) (*SiteAnalysis, error) {
	target, err := normalizeURL(rawURL)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("erro ao criar requisição: %w", err)
	}
	req.Header.Set("Accept", "text/html,application/xhtml+xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Encoding", "gzip")
	req.Header.Set("User-Agent", userAgent)

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar %s: %w", target, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 400 {
		return nil, fmt.Errorf("status http %d ao buscar %s", resp.StatusCode, target)
	}

	contentType := resp.Header.Get("Content-Type")
	mediaType, _, _ := mime.ParseMediaType(contentType)
	if mediaType != "" && !strings.Contains(mediaType, "text/html") && !strings.Contains(mediaType, "application/xhtml+xml") {
		return nil, ErrNonHTMLContent
	}

	var body io.Reader = resp.Body
	if strings.EqualFold(resp.Header.Get("Content-Encoding"), "gzip") {
		gz, err := gzip.NewReader(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("erro ao descompactar resposta: %w", err)
		}
		defer gz.Close()
		body = gz
	}

	data, err := io.ReadAll(io.LimitReader(body, a.maxBytes))
	if err != nil {
		return nil, fmt.Errorf("erro ao ler resposta: %w", err)
	}

	analysis, err := Extract(data, contentType)
	if err != nil {
		return nil, err
	}
	analysis.URL = resp.Request.URL.String()
	return analysis, nil
}

// Extract analisa um documento HTML já baixado
func Extract(data []byte, contentType string) (*SiteAnalysis, error) {
	enc, _, _ := charset.DetermineEncoding(data, contentType)
	utf8data, err := enc.NewDecoder().Bytes(data)
	if err != nil {
		if !utf8.Valid(data) {
			return nil, fmt.Errorf("erro ao decodificar charset: %w", err)
		}
		utf8data = data
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(utf8data))
	if err != nil {
		return nil, fmt.Errorf("erro ao parsear HTML: %w", err)
	}

	doc.Find("script,noscript,style,svg").Remove()

	analysis := Empty("")
	analysis.Title = clean(doc.Find("title").First().Text())
	analysis.MetaDescription = clean(doc.Find(`meta[name="description"]`).AttrOr("content", ""))
	if analysis.MetaDescription == "" {
		analysis.MetaDescription = clean(doc.Find(`meta[property="og:description"]`).AttrOr("content", ""))
	}

	doc.Find("h1,h2,h3").Each(func(_ int, s *goquery.Selection) {
		if h := clean(s.Text()); h != "" {
			analysis.Headings = append(analysis.Headings, h)
		}
	})

	var parts []string
	doc.Find("p,li").Each(func(_ int, s *goquery.Selection) {
		if t := clean(s.Text()); t != "" {
			parts = append(parts, t)
		}
	})
	analysis.TextContent = truncateUTF8(strings.Join(parts, " "), maxTextLength)

	return analysis, nil
}

// normalizeURL aceita domínios sem esquema ("example.com") e assume https
func normalizeURL(rawURL string) (string, error) {
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return "", ErrInvalidURL
	}
	if !strings.Contains(rawURL, "://") {
		rawURL = "https://" + rawURL
	}
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return "", ErrInvalidURL
	}
	return u.String(), nil
}

func clean(s string) string {
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(s, " "))
}

func truncateUTF8(s string, max int) string {
	if len(s) <= max {
		return s
	}
	s = s[:max]
	for len(s) > 0 && !utf8.ValidString(s) {
		s = s[:len(s)-1]
	}
	return s
}
