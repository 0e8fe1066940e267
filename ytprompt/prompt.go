package ytprompt

import (
	"strings"
	"text/template"
)

type promptData struct {
	Title      string
	Transcript string
}

// English summary template for the web variant.
const englishTemplate = `Conversation title: {{.Title}}

You are an expert in YouTube video summaries. You have been tasked with creating a concise and in-depth summary of the following video transcript. Use **only** the provided transcript text, without incorporating external information or assumptions.

**Step-by-step instructions for the summary:**
1. **Main summary**: Write a detailed, exhaustive, thorough, and concise summary in paragraph format. Capture the main ideas and essential information, eliminating unnecessary details and emphasizing critical points. Maintain clarity and fluency for easy reading. Bold (**text**) key terms, complex vocabulary, or important concepts within the summary, and provide a brief definition or explanation inline based on their use in the transcript.

2. **Contextual analogy**: Create a short and complex analogy from everyday life to provide context or illustrate the main theme of the transcript (e.g., comparing it to something relatable like a train journey or an urban ecosystem).

3. **Key points**: Generate 8-12 bullet points (each with a relevant emoji) that summarize the important moments or key ideas from the transcript. Keep each point brief but impactful.

4. **Keywords and terms**: Extract the 5-10 most important keywords, complex words not common to the average reader, and acronyms mentioned. For each, provide a brief explanation and definition based on its context in the transcript. Format as a list with **bold** for the term.

**General rules:**
- Keep the summary objective, clear, and user-friendly.
- Focus on the essence of the content to maximize understanding.
- End your notes with [End of Notes, Message #1] to indicate completion (increment the counter in future interactions if applicable).

Video transcript:
{{.Transcript}}`

// Spanish summary template for the web variant.
const spanishTemplate = `Título de la conversación: {{.Title}}

Eres un experto en resúmenes de videos de YouTube. Has sido asignado para crear un resumen conciso y profundo del siguiente transcript del video. Usa **solo** el texto proporcionado del transcript, sin incorporar información externa o suposiciones.

**Instrucciones paso a paso para el resumen:**
1. **Resumen principal**: Escribe un resumen detallado, exhaustivo, thorough y conciso en formato de párrafo. Captura las ideas principales y la información esencial, eliminando detalles innecesarios y enfatizando puntos críticos. Mantén claridad y fluidez para una lectura fácil. Bold (**texto**) los términos clave, vocabulario complejo o conceptos importantes dentro del resumen, y proporciona una breve definición o explicación inline basada en su uso en el transcript.

2. **Analogía contextual**: Crea una analogía corta y compleja de la vida cotidiana para dar contexto o ilustrar el tema principal del transcript (por ejemplo, comparándolo con algo relatable como un viaje en tren o un ecosistema urbano).

3. **Puntos clave**: Genera 8-12 bullet points (cada uno con un emoji relevante) que resuman los momentos importantes o ideas clave del transcript. Mantén cada punto breve pero impactante.

4. **Keywords y términos**: Extrae los 5-10 keywords más importantes, palabras complejas no comunes para un lector promedio, y acrónimos mencionados. Para cada uno, proporciona una explicación breve y una definición basada en su contexto en el transcript. Formatea como una lista con **bold** para el término.

**Reglas generales:**
- Mantén el resumen objetivo, claro y user-friendly.
- Enfócate en la esencia del contenido para maximizar la comprensión.
- Termina tus notas con [End of Notes, Message #1] para indicar completitud (incrementa el contador en futuras interacciones si aplica).

Transcript del video:
{{.Transcript}}`

// Spanish analytic template for the CLI variant.
const analyticTemplate = `Hola, actúa como un experto analista de contenidos y redactor.

Tengo la transcripción del siguiente video de YouTube:
Título: "{{.Title}}"

Por favor, realiza las siguientes tareas:
1. Genera un resumen ejecutivo de los puntos clave.
2. Extrae las conclusiones principales.
3. Si hay pasos prácticos o tutoriales, lístalos.

Aquí está la transcripción:
---
{{.Transcript}}
---
`

var (
	englishPrompt  = template.Must(template.New("english").Parse(englishTemplate))
	spanishPrompt  = template.Must(template.New("spanish").Parse(spanishTemplate))
	analyticPrompt = template.Must(template.New("analytic").Parse(analyticTemplate))
)

// ComposeEnglish fills the English summary template. Title and transcript are
// substituted verbatim, with no escaping or truncation.
func ComposeEnglish(title, transcript string) string {
	return compose(englishPrompt, title, transcript)
}

// ComposeSpanish fills the Spanish summary template.
func ComposeSpanish(title, transcript string) string {
	return compose(spanishPrompt, title, transcript)
}

// ComposeAnalytic fills the Spanish analytic template used by the CLI.
func ComposeAnalytic(title, transcript string) string {
	return compose(analyticPrompt, title, transcript)
}

func compose(t *template.Template, title, transcript string) string {
	var buf strings.Builder
	// static templates over plain string fields cannot fail to execute
	_ = t.Execute(&buf, promptData{Title: title, Transcript: transcript})
	return buf.String()
}
