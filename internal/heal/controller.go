package heal

import (
	"context"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/google/uuid"

	"uismith/internal/generate"
	"uismith/internal/logging"
	"uismith/internal/suggest"
	"uismith/internal/validate"
)

// Validator is the validation capability the loop drives. Satisfied by
// *validate.Validator.
type Validator interface {
	Validate(code string) validate.ErrorSet
}

// Controller runs healing sessions against one registry snapshot. The
// known-names slice is read-only for the controller's lifetime; rebuilds
// produce a new controller, never a mutation.
type Controller struct {
	generator generate.Generator
	validator Validator
	known     []string
	framework string
}

// NewController wires a healing controller.
func NewController(generator generate.Generator, validator Validator, known []string, framework string) *Controller {
	return &Controller{
		generator: generator,
		validator: validator,
		known:     known,
		framework: framework,
	}
}

// Result is the outcome of one session. A failed session still carries
// the best candidate and its remaining errors so callers can present
// "generated with warnings" instead of a hard failure.
type Result struct {
	Success      bool
	Code         string
	Attempts     int
	ErrorHistory []validate.ErrorSet
	FinalErrors  validate.ErrorSet
	SessionID    uuid.UUID
	Stuck        bool
}

// Heal validates initialCode and regenerates until it is valid, the
// attempt budget is spent, or two consecutive attempts stop making
// progress. It never returns an error: generator failures and
// cancellation end the session with the best attempt so far.
// Cancellation is honored only between attempts, never mid-generation.
func (c *Controller) Heal(ctx context.Context, initialCode string, maxAttempts int) Result {
	timer := logging.StartTimer(logging.CategoryHeal, "Controller.Heal")
	defer timer.Stop()

	session := NewSession(maxAttempts)
	logging.Heal("session %s started (budget %d)", session.ID, session.MaxAttempts)

	code := initialCode
	autoFixed := false
	stuck := false

	for {
		errs := c.validator.Validate(code)
		session.Record(Attempt{Code: code, Errors: errs, AutoFixApplied: autoFixed})
		logging.Heal("session %s attempt %d: %d errors (autofix=%v)",
			session.ID, len(session.Attempts), errs.Total(), autoFixed)

		if errs.Empty() {
			logging.Heal("session %s converged on attempt %d", session.ID, len(session.Attempts))
			return c.finish(session, false)
		}
		if session.Stuck() {
			logging.Heal("session %s stuck: identical error sets on consecutive attempts", session.ID)
			stuck = true
			break
		}
		if session.Exhausted() {
			logging.Heal("session %s exhausted its budget", session.ID)
			break
		}
		if ctx.Err() != nil {
			logging.Heal("session %s abandoned between attempts: %v", session.ID, ctx.Err())
			break
		}

		next, wasAutoFix, err := c.nextCandidate(ctx, code, errs)
		if err != nil {
			logging.Get(logging.CategoryHeal).Warn("session %s regeneration failed: %v", session.ID, err)
			break
		}
		code, autoFixed = next, wasAutoFix
	}

	return c.finish(session, stuck)
}

// finish builds the result from the session, picking the best attempt
// when the last one is not valid.
func (c *Controller) finish(session *Session, stuck bool) Result {
	best := session.Best()
	return Result{
		Success:      best.Errors.Empty(),
		Code:         best.Code,
		Attempts:     len(session.Attempts),
		ErrorHistory: session.History(),
		FinalErrors:  best.Errors,
		SessionID:    session.ID,
		Stuck:        stuck,
	}
}

// nextCandidate produces the next attempt's code. When every error is an
// unknown-component error with a suggestion, the fix is a deterministic
// rename and skips the generator entirely.
func (c *Controller) nextCandidate(ctx context.Context, code string, errs validate.ErrorSet) (string, bool, error) {
	unknowns := unknownNames(errs.Import)
	suggestions := suggest.Map(unknowns, c.known)

	if len(errs.Syntax) == 0 && len(errs.Pattern) == 0 &&
		len(unknowns) > 0 && len(suggestions) == len(unknowns) {
		fixed := applyRenames(code, suggestions)
		if fixed != code {
			logging.HealDebug("auto-fix renamed %d components", len(suggestions))
			return fixed, true, nil
		}
	}

	prompt := buildCorrectivePrompt(code, errs, suggestions, c.known)
	raw, err := c.generator.CompleteWithSystem(ctx, generate.SystemPrompt(c.framework), prompt)
	if err != nil {
		return "", false, err
	}
	return generate.ExtractCodeBlock(raw, generate.CodeBlockLang(c.framework)), false, nil
}

// unknownNames extracts the offending component names from import-error
// messages of the form "<name> is not a valid component".
func unknownNames(importErrors []string) []string {
	names := make([]string, 0, len(importErrors))
	for _, e := range importErrors {
		if fields := strings.Fields(e); len(fields) > 0 {
			names = append(names, fields[0])
		}
	}
	return names
}

// applyRenames rewrites component references in tag position, leaving
// prose and attribute values alone.
func applyRenames(code string, renames map[string]string) string {
	for from, to := range renames {
		tagPattern := regexp.MustCompile(`(</?)` + regexp.QuoteMeta(from) + `([\s/>.])`)
		code = tagPattern.ReplaceAllString(code, "${1}"+to+"${2}")
	}
	return code
}

// buildCorrectivePrompt renders the previous attempt and its errors into
// the regeneration prompt, with resolvable names mapped to suggestions
// and a bounded sample of the authoritative set for grounding.
func buildCorrectivePrompt(previousCode string, errs validate.ErrorSet, suggestions map[string]string, known []string) string {
	var b strings.Builder

	b.WriteString("Your previous code failed validation. Fix every error listed below.\n\n")
	b.WriteString("--- PREVIOUS CODE ---\n")
	b.WriteString(previousCode)
	b.WriteString("\n")

	writeErrorSection(&b, "SYNTAX ERRORS", errs.Syntax)
	writeErrorSection(&b, "FORBIDDEN PATTERNS", errs.Pattern)
	writeErrorSection(&b, "UNKNOWN COMPONENTS", errs.Import)

	if len(suggestions) > 0 {
		b.WriteString("\n--- SUGGESTED REPLACEMENTS ---\n")
		keys := make([]string, 0, len(suggestions))
		for k := range suggestions {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Fprintf(&b, "%s -> %s\n", k, suggestions[k])
		}
	}

	b.WriteString("\n--- AVAILABLE COMPONENTS ---\n")
	b.WriteString(generate.SampleNames(known))
	b.WriteString("\n\nGenerate corrected code that resolves every error:")

	return b.String()
}

func writeErrorSection(b *strings.Builder, title string, errors []string) {
	if len(errors) == 0 {
		return
	}
	fmt.Fprintf(b, "\n--- %s ---\n", title)
	for _, e := range errors {
		b.WriteString(e)
		b.WriteString("\n")
	}
}
