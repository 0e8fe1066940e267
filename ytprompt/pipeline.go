package ytprompt

import (
	"context"

	log "github.com/rs/zerolog/log"
)

// Pipeline wires the fetchers, the selection policies, and the composer for
// one URL at a time. Cache is optional; when set, title and transcript
// lookups are memoized per video ID.
type Pipeline struct {
	Titles      TitleFetcher
	Transcripts TranscriptProvider
	Cache       *Cache
}

// Result carries everything the web UI renders for one successful run.
type Result struct {
	VideoID    string
	Title      string
	Transcript string
	English    string
	Spanish    string
}

// Run processes one URL with the web variant's semantics: manual-preferred
// transcript with timestamps, composed into English and Spanish prompts.
// Returns ErrNoVideoID before any network call when the URL has no
// identifier, an error satisfying IsTranscriptUnavailable when no transcript
// exists, or the wrapped provider error for unexpected failures. Title fetch
// failures never fail the run; the placeholder title is used instead.
func (p *Pipeline) Run(ctx context.Context, rawURL string) (*Result, error) {
	videoID, err := ExtractVideoID(rawURL)
	if err != nil {
		return nil, err
	}
	title := p.cachedTitle(ctx, videoID)
	transcript, err := p.cachedTranscript(ctx, videoID)
	if err != nil {
		return nil, err
	}
	return &Result{
		VideoID:    videoID,
		Title:      title,
		Transcript: transcript,
		English:    ComposeEnglish(title, transcript),
		Spanish:    ComposeSpanish(title, transcript),
	}, nil
}

// PlainTranscript fetches the transcript with the CLI variant's language
// preference order and returns the concatenated text plus the selected
// language code.
func (p *Pipeline) PlainTranscript(ctx context.Context, videoID string) (string, string, error) {
	list, err := p.Transcripts.List(ctx, videoID)
	if err != nil {
		return "", "", err
	}
	chosen, ok := SelectByLanguage(list, FallbackLanguages)
	if !ok {
		return "", "", ErrNoTranscriptFound
	}
	lines, err := p.Transcripts.Fetch(ctx, chosen)
	if err != nil {
		return "", "", err
	}
	if len(lines) == 0 {
		return "", "", ErrEmptyTranscript
	}
	return JoinPlain(lines), chosen.LanguageCode, nil
}

func (p *Pipeline) cachedTitle(ctx context.Context, videoID string) string {
	if p.Cache != nil {
		if title, ok := p.Cache.Get("title:" + videoID); ok {
			return title
		}
	}
	title, err := p.Titles.FetchTitle(ctx, videoID)
	if err != nil {
		log.Debug().Err(err).Str("videoID", videoID).Msg("title fetch failed")
		return TitleUnavailable
	}
	if p.Cache != nil {
		p.Cache.Set("title:"+videoID, title)
	}
	return title
}

func (p *Pipeline) cachedTranscript(ctx context.Context, videoID string) (string, error) {
	if p.Cache != nil {
		if transcript, ok := p.Cache.Get("transcript:" + videoID); ok {
			return transcript, nil
		}
	}
	list, err := p.Transcripts.List(ctx, videoID)
	if err != nil {
		return "", err
	}
	chosen, ok := SelectPreferManual(list)
	if !ok {
		return "", ErrTranscriptUnavailable
	}
	lines, err := p.Transcripts.Fetch(ctx, chosen)
	if err != nil {
		return "", err
	}
	if len(lines) == 0 {
		return "", ErrEmptyTranscript
	}
	transcript := RenderTimestamped(lines)
	if p.Cache != nil {
		p.Cache.Set("transcript:"+videoID, transcript)
	}
	return transcript, nil
}
