package webpageapimodels

import (
	"net/url"
	"strings"

	"github.com/pkg/errors"
)

type SummarizeRequest struct {
	URL string `json:"url"`
}

func (r SummarizeRequest) Validate() error {
	raw := strings.TrimSpace(r.URL)
	if raw == "" {
		return errors.New("URL is required")
	}
	u, err := url.Parse(raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return errors.New("A valid http(s) URL is required")
	}
	return nil
}

type SummarizeResponse struct {
	Title         string `json:"title"`
	URL           string `json:"url"`
	Summary       string `json:"summary"`
	ContentLength int    `json:"contentLength"`
}
