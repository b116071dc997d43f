package unfurl

import (
	"context"
	"net/http"
	"regexp"
	"strings"

	"golang.org/x/net/html"

	"github.com/appdotbuilder/hacker-chat/config"
)

// Preview carries best-effort page metadata. URL always echoes the input,
// even when the fetch failed or the URL turned out to be garbage.
type Preview struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Image       *string `json:"image"`
	URL         string  `json:"url"`
}

// Unfurler resolves a URL into preview metadata. Implementations never
// return an error; failures degrade to a null-filled Preview.
type Unfurler interface {
	Unfurl(ctx context.Context, url string) Preview
}

// urlRegex intentionally stays naive: the first http(s) run of
// non-whitespace wins, not the "best" match. Existing message content
// depends on exactly this heuristic.
var urlRegex = regexp.MustCompile(`https?://[^\s]+`)

// FirstURL returns the first URL substring of content, or "" if none.
func FirstURL(content string) string {
	return urlRegex.FindString(content)
}

// HTTPUnfurler fetches the page and scrapes OpenGraph tags, falling back
// to <title> and meta description.
type HTTPUnfurler struct {
	client       *http.Client
	maxBodyBytes int64
}

func NewHTTPUnfurler(cfg *config.Config) *HTTPUnfurler {
	return &HTTPUnfurler{
		client:       &http.Client{Timeout: cfg.Unfurl.Timeout},
		maxBodyBytes: cfg.Unfurl.MaxBodyBytes,
	}
}

func (u *HTTPUnfurler) Unfurl(ctx context.Context, url string) Preview {
	preview := Preview{URL: url}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return preview
	}
	req.Header.Set("User-Agent", "hacker-chat-unfurl/1.0")

	resp, err := u.client.Do(req)
	if err != nil {
		return preview
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return preview
	}

	meta := scrape(html.NewTokenizer(http.MaxBytesReader(nil, resp.Body, u.maxBodyBytes)))

	preview.Title = firstNonEmpty(meta["og:title"], meta["title"])
	preview.Description = firstNonEmpty(meta["og:description"], meta["description"])
	preview.Image = firstNonEmpty(meta["og:image"])
	return preview
}

// scrape walks tokens until </head> or EOF and collects the tags we care
// about. Tokenizer errors (truncated body, size cap hit) just end the scan.
func scrape(z *html.Tokenizer) map[string]string {
	meta := map[string]string{}
	for {
		switch z.Next() {
		case html.ErrorToken:
			return meta
		case html.StartTagToken, html.SelfClosingTagToken:
			t := z.Token()
			switch t.Data {
			case "meta":
				key, content := "", ""
				for _, a := range t.Attr {
					switch a.Key {
					case "property", "name":
						key = strings.ToLower(a.Val)
					case "content":
						content = a.Val
					}
				}
				if key != "" && content != "" {
					if _, seen := meta[key]; !seen {
						meta[key] = content
					}
				}
			case "title":
				if z.Next() == html.TextToken {
					if _, seen := meta["title"]; !seen {
						meta["title"] = strings.TrimSpace(z.Token().Data)
					}
				}
			}
		case html.EndTagToken:
			if z.Token().Data == "head" {
				return meta
			}
		}
	}
}

func firstNonEmpty(values ...string) *string {
	for _, v := range values {
		if v != "" {
			value := v
			return &value
		}
	}
	return nil
}
