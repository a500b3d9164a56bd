package service

import (
	"context"
	"fmt"
	"strings"

	"molecuview/internal/contextutil"
)

// correctionPrompt instructs the model to return exactly one bare name, or
// the literal token "null" when it cannot recognize the input.
const correctionPrompt = `The user searched for chemical compound %q but it was not found in the database.
Determine the correct standard chemical name or IUPAC name used in PubChem.
It handles:
1. Typos (e.g., "carbon di oxide" -> "Carbon Dioxide")
2. Formulas (e.g., "C8H10N4O2" -> "Caffeine")
3. Common names (e.g., "bleach" -> "Sodium Hypochlorite")

Return ONLY the corrected name string. Do not add markdown.
If the input is unrecognizable, return "null".`

// Advisor proposes corrected compound names for failed searches using a
// generative text model. It is a best-effort assist: failures in the
// underlying call are absorbed and reported as "no suggestion".
type Advisor struct {
	generator TextGenerator
}

// NewAdvisor creates a new Advisor.
func NewAdvisor(generator TextGenerator) *Advisor {
	return &Advisor{generator: generator}
}

// Suggest returns the corrected name for originalQuery, or "" when no
// correction is possible. It never returns an error.
func (a *Advisor) Suggest(ctx context.Context, originalQuery string) string {
	logger := contextutil.LoggerFromContext(ctx)

	text, err := a.generator.GenerateText(ctx, fmt.Sprintf(correctionPrompt, originalQuery))
	if err != nil {
		logger.WarnContext(ctx, "name correction failed", "query", originalQuery, "error", err)
		return ""
	}

	text = strings.TrimSpace(text)
	if text == "" || strings.EqualFold(text, "null") {
		return ""
	}
	// The model echoing the query back means no correction was possible;
	// treating it as a suggestion would retry the identical lookup.
	if strings.EqualFold(text, strings.TrimSpace(originalQuery)) {
		return ""
	}

	logger.InfoContext(ctx, "name correction suggested", "query", originalQuery, "suggestion", text)
	return text
}
