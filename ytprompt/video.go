package ytprompt

import "regexp"

var videoIDPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:youtube\.com/watch\?v=|youtu\.be/|youtube\.com/embed/)([^&\n?#]+)`),
	regexp.MustCompile(`(?:v=|/)([0-9A-Za-z_-]{11}).*`),
}

// ExtractVideoID pulls the video identifier out of a YouTube URL. It accepts
// the watch, youtu.be, and embed forms plus a generic v=/path-suffix fallback.
// The captured token is returned as-is without further validation.
func ExtractVideoID(rawURL string) (string, error) {
	for _, pattern := range videoIDPatterns {
		if m := pattern.FindStringSubmatch(rawURL); m != nil {
			return m[1], nil
		}
	}
	return "", ErrNoVideoID
}
