package cmd

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"time"

	"github.com/google/uuid"
	log "github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/carlos-otero/youtube-transcript-prompt-app/ytprompt"
)

//go:embed all:web
var webFS embed.FS

var servePort string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Launch a local web form for generating prompts from video links.",
	Run:   runServer,
}

type generateRequest struct {
	URL string `json:"url"`
}

type generateResponse struct {
	Status  string `json:"status"`
	Title   string `json:"title,omitempty"`
	English string `json:"english,omitempty"`
	Spanish string `json:"spanish,omitempty"`
	Message string `json:"message,omitempty"`
}

func runServer(cmd *cobra.Command, args []string) {
	staticFS, err := fs.Sub(webFS, "web")
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create static file system")
	}
	pipeline := &ytprompt.Pipeline{
		Titles:      &ytprompt.WatchPageTitleFetcher{},
		Transcripts: &ytprompt.WatchPageProvider{},
		Cache:       ytprompt.NewCache(256, time.Hour),
	}

	http.Handle("/static/", http.StripPrefix("/static/", http.FileServer(http.FS(staticFS))))
	http.HandleFunc("/generate", generateHandler(pipeline))
	http.HandleFunc("/", rootHandler())

	fmt.Printf("Starting server at http://localhost:%s\n", servePort)
	if err := http.ListenAndServe(":"+servePort, nil); err != nil {
		log.Fatal().Err(err).Msg("failed to start server")
	}
}

func rootHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		indexHTML, err := webFS.ReadFile("web/index.html")
		if err != nil {
			http.Error(w, "Could not read index.html", http.StatusInternalServerError)
			log.Error().Err(err).Msg("failed to read embedded index.html")
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write(indexHTML)
	}
}

func generateHandler(p *ytprompt.Pipeline) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "Only POST method is allowed", http.StatusMethodNotAllowed)
			return
		}
		var req generateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Invalid request body", http.StatusBadRequest)
			return
		}
		if req.URL == "" {
			http.Error(w, "URL is required", http.StatusBadRequest)
			return
		}

		logger := log.With().Str("request", uuid.New().String()).Str("url", req.URL).Logger()
		result, err := p.Run(r.Context(), req.URL)

		var resp generateResponse
		switch {
		case errors.Is(err, ytprompt.ErrNoVideoID):
			resp = generateResponse{
				Status:  "invalid_link",
				Message: "Invalid link. Make sure it's a valid YouTube link.",
			}
		case ytprompt.IsTranscriptUnavailable(err):
			resp = generateResponse{
				Status:  "no_transcript",
				Message: "Could not get the transcript. Verify that the video has available subtitles.",
			}
		case err != nil:
			logger.Error().Err(err).Msg("unexpected transcript provider error")
			resp = generateResponse{
				Status:  "provider_error",
				Message: "Error getting transcript: " + err.Error(),
			}
		default:
			logger.Info().Str("title", result.Title).Msg("generated prompts")
			resp = generateResponse{
				Status:  "ok",
				Title:   result.Title,
				English: result.English,
				Spanish: result.Spanish,
			}
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(resp); err != nil {
			logger.Error().Err(err).Msg("failed to encode response")
		}
	}
}

func init() {
	serveCmd.Flags().StringVarP(&servePort, "port", "p", "8080", "Port to listen on")
	rootCmd.AddCommand(serveCmd)
}
