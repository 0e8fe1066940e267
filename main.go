// YT Prompt fetches a YouTube video's title and transcript and formats them
// into ready-to-paste summary prompts for a conversational AI.
//
// Two entry points share the same pipeline:
//
// Interactive CLI (default):
//   - Reads video links from stdin in a loop
//   - Builds a Spanish analytic prompt from the plain transcript
//   - Copies the prompt to the clipboard, falling back to prompt.txt
//
// Local web UI (serve subcommand):
//   - Single input field processed as you type
//   - English and Spanish summary prompts with [HH:MM:SS] timestamps
//   - Per-language copy buttons
//
// Example Usage:
//
//	# Interactive loop
//	yt-prompt
//
//	# Local web form on port 8080
//	yt-prompt serve
package main

import "github.com/carlos-otero/youtube-transcript-prompt-app/cmd"

func main() {
	cmd.Execute()
}
