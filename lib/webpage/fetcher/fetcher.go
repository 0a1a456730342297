package webfetcher

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"

	ollamaclient "devassist-backend/lib/ai/ollama"
	apperrors "devassist-backend/lib/utils/app-errors"

	"golang.org/x/net/html"
	"golang.org/x/net/html/charset"
)

const maxBodySize = 2 << 20

var (
	multiNewlinePattern = regexp.MustCompile(`\n{3,}`)
	multiSpacePattern   = regexp.MustCompile(`[ \t]{2,}`)
)

type Page struct {
	Title string
	Text  string
}

type Provider interface {
	Fetch(ctx context.Context, url string) (Page, error)
}

type impl struct {
	client    *http.Client
	userAgent string
	timeout   time.Duration
}

func NewFetcher(userAgent string, timeout time.Duration) Provider {
	return impl{
		client:    &http.Client{},
		userAgent: userAgent,
		timeout:   timeout,
	}
}

func (i impl) Fetch(ctx context.Context, url string) (Page, error) {
	if i.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, i.timeout)
		defer cancel()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return Page{}, apperrors.New(apperrors.KindValidation, "Invalid URL", err.Error(), err)
	}
	req.Header.Set("User-Agent", i.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,text/plain;q=0.9,*/*;q=0.8")

	resp, err := i.client.Do(req)
	if err != nil {
		return Page{}, classifyFetchError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return Page{}, apperrors.New(apperrors.KindValidation, "Failed to fetch the webpage",
			fmt.Sprintf("HTTP %s", resp.Status), nil)
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return Page{}, classifyFetchError(err)
	}

	contentType := resp.Header.Get("Content-Type")
	text := toUTF8(body, contentType)
	if strings.Contains(contentType, "text/plain") {
		return Page{Text: clean(text)}, nil
	}
	page, err := ExtractPage(text)
	if err != nil {
		return Page{}, apperrors.New(apperrors.KindValidation, "Failed to parse the webpage", err.Error(), err)
	}
	return page, nil
}

// toUTF8 перекодирует тело по charset из заголовка или <meta>, при ошибке тело возвращается как есть
func toUTF8(body []byte, contentType string) string {
	reader, err := charset.NewReader(bytes.NewReader(body), contentType)
	if err != nil {
		return string(body)
	}
	decoded, err := io.ReadAll(reader)
	if err != nil {
		return string(body)
	}
	return string(decoded)
}

func classifyFetchError(err error) error {
	if ollamaclient.IsTimeoutError(err) {
		return apperrors.New(apperrors.KindUpstreamTimeout, "Timed out fetching the webpage", err.Error(), err)
	}
	return apperrors.New(apperrors.KindValidation, "Failed to fetch the webpage", err.Error(), err)
}

// ExtractPage заголовок документа и его читаемый текст
func ExtractPage(htmlContent string) (Page, error) {
	doc, err := html.Parse(strings.NewReader(htmlContent))
	if err != nil {
		return Page{}, err
	}
	page := Page{}
	sb := strings.Builder{}
	extractText(doc, &sb, &page.Title, 0)
	page.Title = strings.TrimSpace(multiSpacePattern.ReplaceAllString(page.Title, " "))
	page.Text = clean(sb.String())
	return page, nil
}

func extractText(n *html.Node, sb *strings.Builder, title *string, depth int) {
	if depth > 100 {
		return
	}
	switch n.Type {
	case html.TextNode:
		text := strings.TrimSpace(n.Data)
		if text != "" {
			sb.WriteString(text)
			sb.WriteString(" ")
		}
	case html.ElementNode:
		switch n.Data {
		case "script", "style", "noscript", "iframe", "svg", "nav", "footer", "header", "form":
			return
		case "title":
			if *title == "" && n.FirstChild != nil {
				*title = n.FirstChild.Data
			}
			return
		case "p", "div", "section", "article", "h1", "h2", "h3", "h4", "h5", "h6", "tr", "pre", "blockquote":
			sb.WriteString("\n\n")
		case "br":
			sb.WriteString("\n")
		case "li":
			sb.WriteString("\n- ")
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		extractText(c, sb, title, depth+1)
	}
}

func clean(text string) string {
	lines := strings.Split(text, "\n")
	for k, line := range lines {
		lines[k] = strings.TrimSpace(multiSpacePattern.ReplaceAllString(line, " "))
	}
	text = strings.Join(lines, "\n")
	return strings.TrimSpace(multiNewlinePattern.ReplaceAllString(text, "\n\n"))
}
