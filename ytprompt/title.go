package ytprompt

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"golang.org/x/net/html"
)

const (
	// TitleUnavailable is the placeholder the web pipeline shows when the
	// watch-page scrape fails.
	TitleUnavailable = "Title not available"
	// TitleFallback is the generic placeholder the CLI uses when the oEmbed
	// lookup fails entirely.
	TitleFallback = "Video de YouTube"
	// titleUntitled is returned when oEmbed responds without a title field.
	titleUntitled = "Video sin título"

	defaultWatchURL  = "https://www.youtube.com/watch?v="
	defaultOEmbedURL = "https://www.youtube.com/oembed"
)

// TitleFetcher obtains a display title for a video ID.
type TitleFetcher interface {
	FetchTitle(ctx context.Context, videoID string) (string, error)
}

// WatchPageTitleFetcher scrapes the <title> element of the public watch page.
// A trailing " - YouTube" suffix is stripped from the result.
type WatchPageTitleFetcher struct {
	Client   *http.Client
	WatchURL string // defaults to the public watch page endpoint
}

func (f *WatchPageTitleFetcher) FetchTitle(ctx context.Context, videoID string) (string, error) {
	base := f.WatchURL
	if base == "" {
		base = defaultWatchURL
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, base+videoID, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	resp, err := httpClient(f.Client).Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to fetch watch page: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("watch page returned status %d", resp.StatusCode)
	}
	doc, err := html.Parse(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to parse watch page: %w", err)
	}
	title := findTitle(doc)
	if title == "" {
		return "", fmt.Errorf("no title element in watch page")
	}
	return strings.TrimSpace(strings.TrimSuffix(title, " - YouTube")), nil
}

// OEmbedTitleFetcher reads the title field of the oEmbed JSON endpoint.
// No API key is required.
type OEmbedTitleFetcher struct {
	Client    *http.Client
	OEmbedURL string // defaults to the public oEmbed endpoint
}

func (f *OEmbedTitleFetcher) FetchTitle(ctx context.Context, videoID string) (string, error) {
	base := f.OEmbedURL
	if base == "" {
		base = defaultOEmbedURL
	}
	q := url.Values{}
	q.Set("url", defaultWatchURL+videoID)
	q.Set("format", "json")
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, base+"?"+q.Encode(), nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	resp, err := httpClient(f.Client).Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to fetch oEmbed data: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("oEmbed endpoint returned status %d", resp.StatusCode)
	}
	var payload struct {
		Title string `json:"title"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", fmt.Errorf("failed to decode oEmbed response: %w", err)
	}
	if payload.Title == "" {
		return titleUntitled, nil
	}
	return payload.Title, nil
}

func httpClient(c *http.Client) *http.Client {
	if c != nil {
		return c
	}
	return http.DefaultClient
}

func findTitle(n *html.Node) string {
	if n.Type == html.ElementNode && n.Data == "title" {
		if n.FirstChild != nil {
			return strings.TrimSpace(n.FirstChild.Data)
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if title := findTitle(c); title != "" {
			return title
		}
	}
	return ""
}
