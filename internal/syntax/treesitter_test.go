package syntax

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckSyntaxValidTSX(t *testing.T) {
	checker := NewTreeChecker("react")
	defer checker.Close()

	valid, errs := checker.CheckSyntax(`
function Preview() {
  return (
    <Card>
      <Button onClick={() => {}}>Go</Button>
    </Card>
  );
}
`)
	assert.True(t, valid)
	assert.Empty(t, errs)
}

func TestCheckSyntaxBrokenFragment(t *testing.T) {
	checker := NewTreeChecker("react")
	defer checker.Close()

	valid, errs := checker.CheckSyntax(`function Broken() { return (<Card>]]; }`)
	assert.False(t, valid)
	require.NotEmpty(t, errs)
	assert.Contains(t, errs[0], "line")
}

func TestCheckSyntaxJavaScriptDialect(t *testing.T) {
	checker := NewTreeChecker("web-components")
	defer checker.Close()

	valid, errs := checker.CheckSyntax(`const el = document.createElement("ui-button");`)
	assert.True(t, valid)
	assert.Empty(t, errs)
}
