package ytprompt

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// TranscriptLine is one caption entry: start offset in whole seconds and text.
type TranscriptLine struct {
	Start int
	Text  string
}

// TranscriptDescriptor describes one advertised transcript track before its
// content is fetched.
type TranscriptDescriptor struct {
	LanguageCode string
	LanguageName string
	Generated    bool

	trackURL string
}

// TranscriptProvider enumerates and fetches transcript tracks for a video.
// Enumeration order is whatever the provider advertises.
type TranscriptProvider interface {
	List(ctx context.Context, videoID string) ([]TranscriptDescriptor, error)
	Fetch(ctx context.Context, d TranscriptDescriptor) ([]TranscriptLine, error)
}

// WatchPageProvider reads caption track metadata out of the watch page's
// embedded player response and fetches track content from the timedtext
// endpoint it advertises. No API key is required.
type WatchPageProvider struct {
	Client   *http.Client
	WatchURL string // defaults to the public watch page endpoint
}

const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/74.0.3729.157 Safari/537.36"

type playerResponse struct {
	Captions struct {
		PlayerCaptionsTracklistRenderer struct {
			CaptionTracks []struct {
				BaseURL      string `json:"baseUrl"`
				LanguageCode string `json:"languageCode"`
				Kind         string `json:"kind"`
				Name         struct {
					SimpleText string `json:"simpleText"`
				} `json:"name"`
			} `json:"captionTracks"`
		} `json:"playerCaptionsTracklistRenderer"`
	} `json:"captions"`
}

type timedTextResponse struct {
	Events []struct {
		TStartMs int64 `json:"tStartMs"`
		Segs     []struct {
			UTF8 string `json:"utf8"`
		} `json:"segs"`
	} `json:"events"`
}

func (p *WatchPageProvider) List(ctx context.Context, videoID string) ([]TranscriptDescriptor, error) {
	base := p.WatchURL
	if base == "" {
		base = defaultWatchURL
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, base+videoID, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	resp, err := httpClient(p.Client).Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch watch page: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("watch page returned status %d", resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read watch page: %w", err)
	}
	// The player response is inlined as a script assignment on the watch page.
	split := strings.SplitN(string(body), "ytInitialPlayerResponse = ", 2)
	if len(split) < 2 {
		return nil, fmt.Errorf("player response not found in watch page")
	}
	jsonData, _, found := strings.Cut(split[1], ";</script>")
	if !found {
		return nil, fmt.Errorf("player response end marker not found")
	}
	var player playerResponse
	if err := json.Unmarshal([]byte(jsonData), &player); err != nil {
		return nil, fmt.Errorf("failed to parse player response: %w", err)
	}
	tracks := player.Captions.PlayerCaptionsTracklistRenderer.CaptionTracks
	if len(tracks) == 0 {
		return nil, ErrTranscriptsDisabled
	}
	descriptors := make([]TranscriptDescriptor, 0, len(tracks))
	for _, t := range tracks {
		descriptors = append(descriptors, TranscriptDescriptor{
			LanguageCode: t.LanguageCode,
			LanguageName: t.Name.SimpleText,
			Generated:    t.Kind == "asr",
			trackURL:     t.BaseURL,
		})
	}
	return descriptors, nil
}

func (p *WatchPageProvider) Fetch(ctx context.Context, d TranscriptDescriptor) ([]TranscriptLine, error) {
	if d.trackURL == "" {
		return nil, fmt.Errorf("descriptor has no track URL")
	}
	trackURL := d.trackURL
	if strings.Contains(trackURL, "?") {
		trackURL += "&fmt=json3"
	} else {
		trackURL += "?fmt=json3"
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, trackURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	resp, err := httpClient(p.Client).Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch transcript track: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("transcript track returned status %d", resp.StatusCode)
	}
	var timedText timedTextResponse
	if err := json.NewDecoder(resp.Body).Decode(&timedText); err != nil {
		return nil, fmt.Errorf("failed to parse transcript track: %w", err)
	}
	var lines []TranscriptLine
	for _, event := range timedText.Events {
		var text strings.Builder
		for _, seg := range event.Segs {
			text.WriteString(seg.UTF8)
		}
		// json3 interleaves newline-only filler events; drop them
		cleaned := strings.TrimSpace(strings.ReplaceAll(text.String(), "\n", " "))
		if cleaned == "" {
			continue
		}
		lines = append(lines, TranscriptLine{
			Start: int(event.TStartMs / 1000),
			Text:  cleaned,
		})
	}
	if len(lines) == 0 {
		return nil, ErrEmptyTranscript
	}
	return lines, nil
}
