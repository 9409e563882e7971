package generate

import (
	"fmt"
	"strings"
)

// maxNamesInPrompt bounds how many registry names a prompt carries; a
// large design system would otherwise dominate the context window.
const maxNamesInPrompt = 20

// SystemPrompt instructs the model to stay inside the known component
// vocabulary for a framework.
func SystemPrompt(framework string) string {
	var b strings.Builder
	b.WriteString("You are a UI component generator.\n")
	switch framework {
	case "vue":
		b.WriteString("Generate Vue single-file-component template code.\n")
	case "web-components":
		b.WriteString("Generate HTML using custom elements.\n")
	default:
		b.WriteString("Generate React JSX/TSX code.\n")
	}
	b.WriteString(`
RULES:
- Use ONLY components from the AVAILABLE COMPONENTS list. Never invent component names.
- No dangerouslySetInnerHTML, eval, new Function, document.write, or innerHTML assignment.
- No javascript: URLs and no string-valued event handlers.
- Respond with a single fenced code block and nothing else.`)
	return b.String()
}

// BuildGenerationPrompt assembles the initial user prompt from the request
// and a bounded sample of the known component names.
func BuildGenerationPrompt(request string, knownNames []string) string {
	return fmt.Sprintf(`--- REQUEST ---
%s

--- AVAILABLE COMPONENTS ---
%s

Generate the component code:`, request, SampleNames(knownNames))
}

// SampleNames renders up to maxNamesInPrompt names, noting how many were
// held back. Input order is preserved; callers pass sorted registry names.
func SampleNames(names []string) string {
	if len(names) == 0 {
		return "(none known)"
	}
	shown := names
	var extra int
	if len(names) > maxNamesInPrompt {
		shown = names[:maxNamesInPrompt]
		extra = len(names) - maxNamesInPrompt
	}
	out := strings.Join(shown, ", ")
	if extra > 0 {
		out += fmt.Sprintf(" (+%d more)", extra)
	}
	return out
}

// CodeBlockLang maps a framework to the fence language its output uses.
func CodeBlockLang(framework string) string {
	switch framework {
	case "vue":
		return "vue"
	case "web-components":
		return "html"
	default:
		return "tsx"
	}
}

// ExtractCodeBlock pulls the first fenced code block out of a model
// response, preferring the requested language. Responses without a fence
// are assumed to be raw code.
func ExtractCodeBlock(text, lang string) string {
	patterns := []string{
		"```" + lang + "\n",
		"```" + lang + "\r\n",
		"```\n",
	}

	for _, pattern := range patterns {
		if idx := strings.Index(text, pattern); idx != -1 {
			start := idx + len(pattern)
			end := strings.Index(text[start:], "```")
			if end != -1 {
				return strings.TrimSpace(text[start : start+end])
			}
		}
	}

	return strings.TrimSpace(text)
}
