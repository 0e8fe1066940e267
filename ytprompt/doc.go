// Package ytprompt turns a YouTube video link into ready-to-paste prompts for
// a conversational AI. It fetches the video title and transcript from public
// endpoints and substitutes both into fixed summary templates.
//
// The package offers two pipeline flavors:
//   - Web: manual-preferred transcript with [HH:MM:SS] timestamps, composed
//     into an English and a Spanish summary prompt.
//   - CLI: language-preference transcript joined into plain text, composed
//     into a single Spanish analytic prompt.
//
// Usage:
//
//	pipeline := &ytprompt.Pipeline{
//	    Titles:      &ytprompt.WatchPageTitleFetcher{},
//	    Transcripts: &ytprompt.WatchPageProvider{},
//	    Cache:       ytprompt.NewCache(256, time.Hour),
//	}
//
//	// Web flavor: both prompts at once
//	result, err := pipeline.Run(ctx, "https://www.youtube.com/watch?v=...")
//
//	// CLI flavor: plain text plus selected language
//	text, lang, err := pipeline.PlainTranscript(ctx, videoID)
//	prompt := ytprompt.ComposeAnalytic(title, text)
package ytprompt
