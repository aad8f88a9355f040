package proxy

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/net/html"
)

const ogpTimeout = 10 * time.Second

const maxOGPBody = 2 << 20

// OGP is the subset of Open Graph metadata the UI cards need.
type OGP struct {
	URL         string `json:"url"`
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	Image       string `json:"image,omitempty"`
}

// handleOGP fetches the page named by ?url= and extracts its Open Graph
// metadata.
func (s *Server) handleOGP(w http.ResponseWriter, r *http.Request) {
	target := r.URL.Query().Get("url")
	if target == "" {
		writeError(w, http.StatusBadRequest, "url parameter required")
		return
	}
	parsed, err := url.Parse(target)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") {
		writeError(w, http.StatusBadRequest, "url must be http or https")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), ogpTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid url")
		return
	}
	req.Header.Set("User-Agent", "hackmatch-ogp/1.0")

	resp, err := s.http.Do(req)
	if err != nil {
		s.log.Error(r.Context(), "ogp fetch failed", "url", target, "error", err)
		writeError(w, http.StatusBadGateway, "fetch failed")
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		writeError(w, http.StatusBadGateway, fmt.Sprintf("upstream returned %d", resp.StatusCode))
		return
	}

	ogp, err := extractOGP(io.LimitReader(resp.Body, maxOGPBody))
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, "parse failed")
		return
	}
	ogp.URL = target

	writeJSON(w, http.StatusOK, ogp)
}

// extractOGP walks the document and collects og:/twitter: meta tags, with
// the page <title> as a fallback title.
func extractOGP(r io.Reader) (OGP, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return OGP{}, err
	}

	var ogp OGP
	var pageTitle string

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "title":
				if n.FirstChild != nil && pageTitle == "" {
					pageTitle = strings.TrimSpace(n.FirstChild.Data)
				}
			case "meta":
				key, content := metaAttrs(n)
				switch key {
				case "og:title":
					ogp.Title = content
				case "og:description", "twitter:description":
					if ogp.Description == "" {
						ogp.Description = content
					}
				case "og:image", "twitter:image":
					if ogp.Image == "" {
						ogp.Image = content
					}
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	if ogp.Title == "" {
		ogp.Title = pageTitle
	}
	return ogp, nil
}

func metaAttrs(n *html.Node) (key, content string) {
	for _, a := range n.Attr {
		switch a.Key {
		case "property", "name":
			key = a.Val
		case "content":
			content = a.Val
		}
	}
	return key, content
}
