package service

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_deps.go -package=mocks molecuview/internal/service TextGenerator,StructureResolver,CorrectionAdvisor,MoleculeEnricher
//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_search_service.go -package=mocks -mock_names=SearchService=MockSearchService molecuview/internal/service SearchService

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"molecuview/internal/chem"
	"molecuview/internal/contextutil"
	"molecuview/internal/genai"
	"molecuview/internal/storage"
)

// TextGenerator is the generative-AI surface the advisor and enricher
// depend on. This interface is defined from the service layer's
// perspective (consumer-first).
type TextGenerator interface {
	// GenerateText sends a prompt and returns the reply text.
	GenerateText(ctx context.Context, prompt string) (string, error)
	// GenerateJSON sends a prompt with a response schema and decodes the
	// JSON reply into out.
	GenerateJSON(ctx context.Context, prompt string, schema *genai.Schema, out any) error
}

// StructureResolver resolves a compound name to its structure record.
type StructureResolver interface {
	Resolve(ctx context.Context, query string) (*chem.Molecule, error)
}

// CorrectionAdvisor proposes a corrected compound name, or "" for none.
type CorrectionAdvisor interface {
	Suggest(ctx context.Context, originalQuery string) string
}

// MoleculeEnricher produces descriptive facts for a molecule name.
type MoleculeEnricher interface {
	Enrich(ctx context.Context, moleculeName string) Insight
}

// State identifies the phase a search session is in.
type State int

const (
	StateIdle State = iota
	StateResolving
	StateCorrecting
	StateResolvingRetry
	StateEnriching
	StateDone
	StateError
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateResolving:
		return "resolving"
	case StateCorrecting:
		return "correcting"
	case StateResolvingRetry:
		return "resolving_retry"
	case StateEnriching:
		return "enriching"
	case StateDone:
		return "done"
	case StateError:
		return "error"
	default:
		return "unknown"
	}
}

// loading reports whether a session in this state is still in flight.
func (s State) loading() bool {
	switch s {
	case StateResolving, StateCorrecting, StateResolvingRetry, StateEnriching:
		return true
	default:
		return false
	}
}

// Result is the outcome of a completed search session. Insight is always
// populated on success; CorrectedFrom holds the original query text when
// the search succeeded through an auto-corrected name.
type Result struct {
	Molecule      *chem.Molecule
	Insight       Insight
	CorrectedFrom string
}

// SearchService runs molecule search sessions.
type SearchService interface {
	// Search resolves the query, enriches the result, and returns both.
	// It returns ErrSearchInFlight when a session is already loading.
	Search(ctx context.Context, query string) (Result, error)
	// State returns the current session state.
	State() State
}

// Searcher implements SearchService. It coordinates the resolver, the
// correction advisor and the enricher for one session at a time:
//
//	Idle -> Resolving -> {Correcting -> ResolvingRetry} -> Enriching -> Done
//	Idle -> Resolving -> ... -> Error
type Searcher struct {
	resolver StructureResolver
	advisor  CorrectionAdvisor
	enricher MoleculeEnricher
	history  storage.HistoryStore

	mu    sync.Mutex
	state State
}

// NewSearcher creates a new Searcher. history may be nil to disable
// search-history recording.
func NewSearcher(resolver StructureResolver, advisor CorrectionAdvisor, enricher MoleculeEnricher, history storage.HistoryStore) *Searcher {
	return &Searcher{
		resolver: resolver,
		advisor:  advisor,
		enricher: enricher,
		history:  history,
		state:    StateIdle,
	}
}

// State returns the current session state.
func (s *Searcher) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// begin starts a new session if none is loading. Done and Error are
// terminal states of the previous session, so a new submit restarts from
// either of them.
func (s *Searcher) begin() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state.loading() {
		return false
	}
	s.state = StateResolving
	return true
}

func (s *Searcher) transition(ctx context.Context, next State) {
	s.mu.Lock()
	prev := s.state
	s.state = next
	s.mu.Unlock()
	contextutil.LoggerFromContext(ctx).DebugContext(ctx, "search state transition", "from", prev.String(), "to", next.String())
}

// Search runs one full session. The resolver is tried with the raw query
// first; on failure, one correction-and-retry cycle runs before the
// original failure is surfaced. Enrichment cannot fail the session.
func (s *Searcher) Search(ctx context.Context, query string) (Result, error) {
	logger := contextutil.LoggerFromContext(ctx)

	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return Result{}, &ValidationError{Field: "query", Message: "cannot be empty"}
	}

	if !s.begin() {
		logger.WarnContext(ctx, "submit rejected, search already in flight", "query", trimmed)
		return Result{}, ErrSearchInFlight
	}

	mol, resolveErr := s.resolver.Resolve(ctx, trimmed)
	correctedFrom := ""

	if resolveErr != nil {
		logger.InfoContext(ctx, "direct resolution failed, attempting correction", "query", trimmed, "error", resolveErr)
		s.transition(ctx, StateCorrecting)

		suggestion := s.advisor.Suggest(ctx, trimmed)
		if suggestion == "" {
			return Result{}, s.fail(ctx, trimmed, resolveErr)
		}

		s.transition(ctx, StateResolvingRetry)
		retryMol, retryErr := s.resolver.Resolve(ctx, suggestion)
		if retryErr != nil {
			// The retry's own failure is discarded: the error shown to the
			// user keeps their original search context.
			logger.InfoContext(ctx, "corrected name did not resolve either", "suggestion", suggestion, "error", retryErr)
			return Result{}, s.fail(ctx, trimmed, resolveErr)
		}

		mol = retryMol
		correctedFrom = trimmed
	}

	// Enrichment keys off the name the final successful resolve produced.
	s.transition(ctx, StateEnriching)
	insight := s.enricher.Enrich(ctx, mol.Name)

	s.transition(ctx, StateDone)
	logger.InfoContext(ctx, "search completed", "query", trimmed, "cid", mol.CID, "name", mol.Name, "corrected", correctedFrom != "")

	s.record(ctx, &storage.SearchEntry{
		Query:         trimmed,
		CorrectedFrom: correctedFrom,
		CID:           mol.CID,
		Name:          mol.Name,
		Outcome:       storage.OutcomeOK,
	})

	return Result{Molecule: mol, Insight: insight, CorrectedFrom: correctedFrom}, nil
}

// fail moves the session to Error and returns the original resolver error.
// Transport failures additionally carry ErrExternalService for the HTTP
// layer's status mapping.
func (s *Searcher) fail(ctx context.Context, query string, resolveErr error) error {
	s.transition(ctx, StateError)
	s.record(ctx, &storage.SearchEntry{
		Query:   query,
		Outcome: storage.OutcomeError,
		Detail:  resolveErr.Error(),
	})

	var transport *chem.TransportError
	if errors.As(resolveErr, &transport) {
		return fmt.Errorf("%w: %w", ErrExternalService, resolveErr)
	}
	return resolveErr
}

// record appends a history entry. History is a convenience log; failures
// never affect the session outcome.
func (s *Searcher) record(ctx context.Context, entry *storage.SearchEntry) {
	if s.history == nil {
		return
	}
	if err := s.history.Record(ctx, entry); err != nil {
		contextutil.LoggerFromContext(ctx).WarnContext(ctx, "failed to record search history", "error", err)
	}
}
