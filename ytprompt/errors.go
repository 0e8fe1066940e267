package ytprompt

import "errors"

// Typed conditions for the pipeline. Provider implementations return the
// specific sentinel; callers classify with IsTranscriptUnavailable instead of
// matching message substrings.
var (
	ErrNoVideoID             = errors.New("no video ID found in URL")
	ErrTranscriptsDisabled   = errors.New("transcripts are disabled for this video")
	ErrNoTranscriptFound     = errors.New("no transcript matches the requested languages")
	ErrEmptyTranscript       = errors.New("transcript has no entries")
	ErrTranscriptUnavailable = errors.New("transcript unavailable")
)

// IsTranscriptUnavailable reports whether err is an expected unavailability
// condition rather than an unexpected provider failure.
func IsTranscriptUnavailable(err error) bool {
	return errors.Is(err, ErrTranscriptsDisabled) ||
		errors.Is(err, ErrNoTranscriptFound) ||
		errors.Is(err, ErrEmptyTranscript) ||
		errors.Is(err, ErrTranscriptUnavailable)
}
