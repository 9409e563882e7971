package generate

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractCodeBlock(t *testing.T) {
	t.Run("language-tagged fence", func(t *testing.T) {
		text := "Here you go:\n```tsx\n<Button>Save</Button>\n```\nEnjoy."
		assert.Equal(t, "<Button>Save</Button>", ExtractCodeBlock(text, "tsx"))
	})

	t.Run("untagged fence fallback", func(t *testing.T) {
		text := "```\n<Card />\n```"
		assert.Equal(t, "<Card />", ExtractCodeBlock(text, "tsx"))
	})

	t.Run("prefers tagged fence over earlier untagged one", func(t *testing.T) {
		text := "```\nnot code\n```\n```tsx\n<Page />\n```"
		assert.Equal(t, "<Page />", ExtractCodeBlock(text, "tsx"))
	})

	t.Run("raw response passes through", func(t *testing.T) {
		assert.Equal(t, "<Badge tone=\"info\" />", ExtractCodeBlock("  <Badge tone=\"info\" />  ", "tsx"))
	})

	t.Run("unterminated fence falls back to whole text", func(t *testing.T) {
		text := "```tsx\n<Button />"
		assert.Equal(t, text, ExtractCodeBlock(text, "tsx"))
	})
}

func TestSampleNames(t *testing.T) {
	t.Run("small sets render fully", func(t *testing.T) {
		assert.Equal(t, "Button, Card", SampleNames([]string{"Button", "Card"}))
	})

	t.Run("empty set", func(t *testing.T) {
		assert.Equal(t, "(none known)", SampleNames(nil))
	})

	t.Run("large sets are truncated with a count", func(t *testing.T) {
		names := make([]string, 25)
		for i := range names {
			names[i] = fmt.Sprintf("Component%02d", i)
		}
		out := SampleNames(names)
		assert.Contains(t, out, "Component00")
		assert.Contains(t, out, "Component19")
		assert.NotContains(t, out, "Component20")
		assert.Contains(t, out, "(+5 more)")
	})
}

func TestBuildGenerationPrompt(t *testing.T) {
	prompt := BuildGenerationPrompt("a settings page", []string{"Page", "Card"})
	assert.Contains(t, prompt, "a settings page")
	assert.Contains(t, prompt, "Page, Card")
}

func TestSystemPrompt(t *testing.T) {
	for framework, want := range map[string]string{
		"react":          "JSX",
		"vue":            "Vue",
		"web-components": "custom elements",
	} {
		assert.True(t, strings.Contains(SystemPrompt(framework), want), framework)
	}
	assert.Contains(t, SystemPrompt("react"), "AVAILABLE COMPONENTS")
}

func TestCodeBlockLang(t *testing.T) {
	assert.Equal(t, "tsx", CodeBlockLang("react"))
	assert.Equal(t, "vue", CodeBlockLang("vue"))
	assert.Equal(t, "html", CodeBlockLang("web-components"))
	assert.Equal(t, "tsx", CodeBlockLang(""))
}
