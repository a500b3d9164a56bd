package service

import (
	"context"
	"fmt"

	"molecuview/internal/contextutil"
	"molecuview/internal/genai"
)

// Insight holds AI-generated descriptive facts about a molecule.
type Insight struct {
	Description      string   `json:"description"`
	MolecularFormula string   `json:"molecularFormula"`
	MolarMass        string   `json:"molarMass"`
	CommonUses       []string `json:"commonUses"`
	SafetyProfile    string   `json:"safetyProfile"`
	FunFact          string   `json:"funFact"`
}

// insightSchema is the structured-output schema every enrichment response
// must conform to. All six fields are required.
var insightSchema = &genai.Schema{
	Type: "object",
	Properties: map[string]*genai.Schema{
		"description": {
			Type:        "string",
			Description: "A concise 2-3 sentence description of what the molecule is and its classification.",
		},
		"molecularFormula": {
			Type:        "string",
			Description: "The chemical formula (e.g., C8H10N4O2).",
		},
		"molarMass": {
			Type:        "string",
			Description: "Molar mass with units (e.g., 194.19 g/mol).",
		},
		"commonUses": {
			Type:        "array",
			Items:       &genai.Schema{Type: "string"},
			Description: "List of 3-4 common applications or occurrences.",
		},
		"safetyProfile": {
			Type:        "string",
			Description: "A brief summary of safety/toxicity (e.g., Safe for consumption, Toxic if inhaled).",
		},
		"funFact": {
			Type:        "string",
			Description: "An interesting or surprising fact about this molecule.",
		},
	},
	Required: []string{"description", "molecularFormula", "molarMass", "commonUses", "safetyProfile", "funFact"},
}

// fallbackInsight is substituted whenever enrichment fails. Its texts state
// that the data is unavailable; nothing is fabricated.
func fallbackInsight() Insight {
	return Insight{
		Description:      "Could not retrieve AI insights for this molecule at this time.",
		MolecularFormula: "Unknown",
		MolarMass:        "Unknown",
		CommonUses:       []string{},
		SafetyProfile:    "Unknown",
		FunFact:          "Try searching again later.",
	}
}

// Enricher produces an Insight for a resolved molecule name via a
// generative text model with structured output.
type Enricher struct {
	generator TextGenerator
}

// NewEnricher creates a new Enricher.
func NewEnricher(generator TextGenerator) *Enricher {
	return &Enricher{generator: generator}
}

// Enrich returns descriptive facts for the named molecule. It never returns
// an error: any failure in the underlying call yields the fallback record,
// so callers always have a usable Insight.
func (e *Enricher) Enrich(ctx context.Context, moleculeName string) Insight {
	logger := contextutil.LoggerFromContext(ctx)

	prompt := fmt.Sprintf(`Provide detailed chemical information for the molecule: %s.
Focus on being accurate and educational.`, moleculeName)

	var insight Insight
	if err := e.generator.GenerateJSON(ctx, prompt, insightSchema, &insight); err != nil {
		logger.WarnContext(ctx, "enrichment failed, using fallback", "molecule", moleculeName, "error", err)
		return fallbackInsight()
	}

	if insight.CommonUses == nil {
		insight.CommonUses = []string{}
	}
	logger.InfoContext(ctx, "enrichment completed", "molecule", moleculeName, "formula", insight.MolecularFormula)
	return insight
}
