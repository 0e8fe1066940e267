package ytprompt

import (
	"strings"
	"testing"
)

func TestComposeIsPureAndIdempotent(t *testing.T) {
	title := "Demo Video"
	transcript := "[00:00:00] Hello\n[00:00:05] world"

	first := ComposeEnglish(title, transcript)
	second := ComposeEnglish(title, transcript)
	if first != second {
		t.Error("ComposeEnglish is not idempotent for identical inputs")
	}
	if ComposeSpanish(title, transcript) != ComposeSpanish(title, transcript) {
		t.Error("ComposeSpanish is not idempotent for identical inputs")
	}
	if ComposeAnalytic(title, transcript) != ComposeAnalytic(title, transcript) {
		t.Error("ComposeAnalytic is not idempotent for identical inputs")
	}
}

func TestComposeEnglish(t *testing.T) {
	title := "Demo Video"
	transcript := "[00:00:00] Hello\n[00:00:05] world"
	prompt := ComposeEnglish(title, transcript)

	if !strings.HasPrefix(prompt, "Conversation title: Demo Video\n") {
		t.Errorf("English prompt does not open with the conversation title: %q", prompt[:60])
	}
	if !strings.Contains(prompt, transcript) {
		t.Error("English prompt does not embed the transcript block verbatim")
	}
	if !strings.Contains(prompt, "[End of Notes, Message #1]") {
		t.Error("English prompt is missing the terminator token")
	}
	if !strings.HasSuffix(prompt, "Video transcript:\n"+transcript) {
		t.Error("English prompt does not end with the literal transcript block")
	}
}

func TestComposeSpanish(t *testing.T) {
	title := "Demo Video"
	transcript := "[00:00:00] Hello\n[00:00:05] world"
	english := ComposeEnglish(title, transcript)
	spanish := ComposeSpanish(title, transcript)

	if spanish == english {
		t.Error("Spanish prompt should differ from the English prompt")
	}
	if !strings.Contains(spanish, transcript) {
		t.Error("Spanish prompt does not embed the same transcript block")
	}
	if !strings.HasPrefix(spanish, "Título de la conversación: Demo Video\n") {
		t.Error("Spanish prompt does not open with the conversation title")
	}
	if !strings.Contains(spanish, "[End of Notes, Message #1]") {
		t.Error("Spanish prompt is missing the terminator token")
	}
}

func TestComposeAnalytic(t *testing.T) {
	prompt := ComposeAnalytic("Demo Video", "Hello world")

	if !strings.Contains(prompt, `Título: "Demo Video"`) {
		t.Error("analytic prompt is missing the quoted title line")
	}
	if !strings.Contains(prompt, "---\nHello world\n---") {
		t.Error("analytic prompt does not fence the transcript with --- markers")
	}
	if !strings.Contains(prompt, "resumen ejecutivo") {
		t.Error("analytic prompt is missing the executive summary instruction")
	}
}

func TestComposeSubstitutesVerbatim(t *testing.T) {
	// no escaping, no truncation: odd characters and long bodies pass through
	title := `A "quoted" <title> & more`
	transcript := strings.Repeat("long transcript line\n", 1000)
	transcript = strings.TrimSuffix(transcript, "\n")

	prompt := ComposeEnglish(title, transcript)
	if !strings.Contains(prompt, title) {
		t.Error("title was not substituted verbatim")
	}
	if !strings.Contains(prompt, transcript) {
		t.Error("long transcript was not embedded in full")
	}
}
