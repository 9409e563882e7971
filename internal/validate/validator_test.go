package validate

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"uismith/internal/symbol"
)

func testRegistry(names ...string) *symbol.Registry {
	records := make([]symbol.Record, len(names))
	for i, n := range names {
		records[i] = symbol.Record{Name: n, SourceKind: symbol.SourcePackage, SourcePath: "@acme/ui"}
	}
	return symbol.Resolve(records)
}

type stubSyntax struct {
	valid bool
	errs  []string
}

func (s stubSyntax) CheckSyntax(string) (bool, []string) { return s.valid, s.errs }

type stubPatterns struct{ findings []PatternFinding }

func (s stubPatterns) CheckPatterns(string) []PatternFinding { return s.findings }

func TestValidateSoundness(t *testing.T) {
	reg := testRegistry("Button", "Card", "CardHeader")
	v := New(reg)

	t.Run("unknown reference reported", func(t *testing.T) {
		set := v.Validate(`<Buton onClick={fn}>Hi</Buton><Card />`)
		want := []string{"Buton is not a valid component"}
		if diff := cmp.Diff(want, set.Import); diff != "" {
			t.Errorf("import errors mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("known references pass", func(t *testing.T) {
		set := v.Validate(`<Card><Button>Go</Button></Card>`)
		assert.True(t, set.Empty())
	})

	t.Run("lowercase html tags ignored", func(t *testing.T) {
		set := v.Validate(`<div><span>plain</span></div>`)
		assert.True(t, set.Empty())
	})

	t.Run("each unknown reported once", func(t *testing.T) {
		set := v.Validate(`<Buton /><Buton /><Buton />`)
		assert.Len(t, set.Import, 1)
	})
}

func TestValidateCompoundNames(t *testing.T) {
	reg := testRegistry("Card", "List")
	v := New(reg)

	t.Run("suffix compound resolves to base", func(t *testing.T) {
		set := v.Validate(`<Card><CardHeader /><ListItem /></Card>`)
		assert.True(t, set.Empty())
	})

	t.Run("dotted member resolves to base", func(t *testing.T) {
		set := v.Validate(`<Card.Header>hi</Card.Header>`)
		assert.True(t, set.Empty())
	})

	t.Run("unknown base still fails", func(t *testing.T) {
		set := v.Validate(`<ModalHeader />`)
		assert.Equal(t, []string{"ModalHeader is not a valid component"}, set.Import)
	})
}

func TestValidateComponentPrefix(t *testing.T) {
	reg := testRegistry("Button")
	v := New(reg, WithComponentPrefix("Polaris"))

	set := v.Validate(`<PolarisButton />`)
	assert.True(t, set.Empty())
}

func TestValidateMergesExternalCheckers(t *testing.T) {
	reg := testRegistry("Card")
	v := New(reg,
		WithSyntaxChecker(stubSyntax{valid: false, errs: []string{"line 1: unexpected token"}}),
		WithPatternChecker(stubPatterns{findings: []PatternFinding{{Line: 3, Message: "eval is forbidden"}}}),
	)

	set := v.Validate(`<Card />`)
	assert.Equal(t, []string{"line 1: unexpected token"}, set.Syntax)
	assert.Equal(t, []string{"line 3: eval is forbidden"}, set.Pattern)
	assert.Empty(t, set.Import)
}

func TestValidateWebComponents(t *testing.T) {
	reg := testRegistry("UiButton", "UiCard")
	v := New(reg, WithFramework(FrameworkWebComponents))

	t.Run("kebab tags resolve", func(t *testing.T) {
		set := v.Validate(`<ui-card><ui-button>Go</ui-button></ui-card>`)
		assert.True(t, set.Empty())
	})

	t.Run("unknown custom element reported", func(t *testing.T) {
		set := v.Validate(`<ui-wombat></ui-wombat>`)
		assert.Equal(t, []string{"UiWombat is not a valid component"}, set.Import)
	})

	t.Run("builtin tags ignored", func(t *testing.T) {
		set := v.Validate(`<div><section>plain</section></div>`)
		assert.True(t, set.Empty())
	})
}

func TestValidateIsDeterministic(t *testing.T) {
	reg := testRegistry("Button")
	v := New(reg)
	code := `<Buton /><Missing /><Button />`

	first := v.Validate(code)
	for i := 0; i < 10; i++ {
		require.True(t, first.Equal(v.Validate(code)))
	}
}

func TestErrorSetSemantics(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		assert.True(t, ErrorSet{}.Empty())
		assert.False(t, ErrorSet{Import: []string{"x"}}.Empty())
	})

	t.Run("total", func(t *testing.T) {
		set := ErrorSet{Syntax: []string{"a"}, Pattern: []string{"b", "c"}, Import: []string{"d"}}
		assert.Equal(t, 4, set.Total())
	})

	t.Run("equality ignores order and category boundaries", func(t *testing.T) {
		a := ErrorSet{Syntax: []string{"x", "y"}, Import: []string{"z"}}
		b := ErrorSet{Syntax: []string{"y"}, Pattern: []string{"z"}, Import: []string{"x"}}
		assert.True(t, a.Equal(b))
	})

	t.Run("inequality on differing contents", func(t *testing.T) {
		a := ErrorSet{Import: []string{"x"}}
		b := ErrorSet{Import: []string{"y"}}
		assert.False(t, a.Equal(b))
	})

	t.Run("flatten dedupes", func(t *testing.T) {
		set := ErrorSet{Syntax: []string{"dup"}, Pattern: []string{"dup"}}
		assert.Equal(t, []string{"dup"}, set.Flatten())
	})
}

func TestCompoundBase(t *testing.T) {
	tests := []struct {
		in       string
		base     string
		stripped bool
	}{
		{"CardHeader", "Card", true},
		{"DescriptionListItem", "DescriptionList", true},
		{"ModalFooter", "Modal", true},
		{"Button", "Button", false},
		{"Header", "Header", false}, // stripping would leave nothing
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			base, ok := CompoundBase(tt.in)
			assert.Equal(t, tt.base, base)
			assert.Equal(t, tt.stripped, ok)
		})
	}
}

func TestKebabToPascal(t *testing.T) {
	assert.Equal(t, "UiButtonGroup", KebabToPascal("ui-button-group"))
	assert.Equal(t, "MyCard", KebabToPascal("my-card"))
}
