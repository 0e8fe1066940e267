package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	u "github.com/carlos-otero/youtube-transcript-prompt-app/utils"
	"github.com/carlos-otero/youtube-transcript-prompt-app/ytprompt"
)

var AppVersion = "dev"

var exitTokens = map[string]bool{"salir": true, "exit": true, "quit": true}

// overridable for tests
var (
	clipboardWrite = clipboard.WriteAll
	promptFile     = "prompt.txt"
)

var rootCmd = &cobra.Command{
	Use:     "yt-prompt",
	Short:   "Turn a YouTube video link into a ready-to-paste AI summary prompt.",
	Version: AppVersion,
	Run: func(cmd *cobra.Command, args []string) {
		runInteractive()
	},
}

func runInteractive() {
	pipeline := &ytprompt.Pipeline{
		Titles:      &ytprompt.OEmbedTitleFetcher{},
		Transcripts: &ytprompt.WatchPageProvider{},
	}
	u.PrintHeader("\n🎬 --- YouTube Transcript a IA --- 🎬")
	u.PrintInfo("Este programa copiará al portapapeles un prompt listo para ChatGPT/Claude/Gemini.\n")
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("Pegue el enlace del video de YouTube (o 'salir' para terminar): ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if exitTokens[strings.ToLower(line)] {
			break
		}
		processURL(pipeline, line)
		fmt.Println("\n" + strings.Repeat("-", 30) + "\n")
	}
}

func processURL(p *ytprompt.Pipeline, rawURL string) {
	ctx := context.Background()
	videoID, err := ytprompt.ExtractVideoID(rawURL)
	if err != nil {
		u.PrintError("❌ URL no válida. Inténtalo de nuevo.")
		return
	}
	u.PrintDetail("⏳ Obteniendo información del video...")
	title, err := p.Titles.FetchTitle(ctx, videoID)
	if err != nil {
		u.PrintWarning(fmt.Sprintf("⚠️ No se pudo obtener el título: %v", err))
		title = ytprompt.TitleFallback
	}
	u.PrintSuccess(fmt.Sprintf("✅ Video detectado: %s", title))
	u.PrintDetail("⏳ Descargando transcripción...")
	text, lang, err := p.PlainTranscript(ctx, videoID)
	if err != nil {
		if !ytprompt.IsTranscriptUnavailable(err) {
			u.PrintError(fmt.Sprintf("❌ Error al obtener transcripción: %v", err))
		}
		u.PrintError("❌ No se pudo encontrar una transcripción para este video (puede que no tenga subtítulos activados).")
		return
	}
	u.PrintSuccess(fmt.Sprintf("✅ Transcripción obtenida (Idioma: %s)", lang))
	deliverPrompt(title, ytprompt.ComposeAnalytic(title, text))
}

// deliverPrompt copies the prompt to the clipboard, falling back to a local
// file when the clipboard is unavailable (headless sessions).
func deliverPrompt(title, prompt string) {
	if err := clipboardWrite(prompt); err != nil {
		u.PrintWarning(fmt.Sprintf("⚠️ No se pudo copiar al portapapeles automáticamente: %v", err))
		u.PrintInfo(fmt.Sprintf("Guardando en un archivo de texto '%s' en su lugar...", promptFile))
		if werr := os.WriteFile(promptFile, []byte(prompt), 0644); werr != nil {
			u.PrintError(fmt.Sprintf("❌ No se pudo guardar %s: %v", promptFile, werr))
		}
		return
	}
	u.PrintSuccess2("\n✨ ¡ÉXITO! ✨")
	u.PrintSuccess(fmt.Sprintf("El prompt para el video '%s' ha sido copiado a tu portapapeles.", title))
	u.PrintInfo("Ahora solo tienes que ir a tu IA favorita y presionar 'Pegar' (Ctrl+V).")
}

func Execute() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.SetHelpCommand(&cobra.Command{Hidden: true})
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
