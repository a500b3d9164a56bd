package service_test

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/mock/gomock"

	"molecuview/internal/chem"
	"molecuview/internal/service"
	"molecuview/internal/service/mocks"
	"molecuview/internal/storage"
	storagemocks "molecuview/internal/storage/mocks"
)

func caffeine() *chem.Molecule {
	return &chem.Molecule{CID: 2519, Name: "Caffeine", SDF: "caffeine sdf"}
}

func newTestSearcher(t *testing.T) (*service.Searcher, *mocks.MockStructureResolver, *mocks.MockCorrectionAdvisor, *mocks.MockMoleculeEnricher) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	resolver := mocks.NewMockStructureResolver(ctrl)
	advisor := mocks.NewMockCorrectionAdvisor(ctrl)
	enricher := mocks.NewMockMoleculeEnricher(ctrl)
	return service.NewSearcher(resolver, advisor, enricher, nil), resolver, advisor, enricher
}

func TestSearcher_Search_DirectSuccess(t *testing.T) {
	searcher, resolver, _, enricher := newTestSearcher(t)

	resolver.EXPECT().Resolve(gomock.Any(), "Caffeine").Return(caffeine(), nil)
	enricher.EXPECT().Enrich(gomock.Any(), "Caffeine").Return(service.Insight{MolecularFormula: "C8H10N4O2"})
	// The advisor must never run on a direct hit.

	result, err := searcher.Search(context.Background(), "Caffeine")
	if err != nil {
		t.Fatalf("Search() unexpected error: %v", err)
	}
	if result.Molecule.CID != 2519 {
		t.Errorf("Search() CID = %d, want 2519", result.Molecule.CID)
	}
	if result.Molecule.Name != "Caffeine" {
		t.Errorf("Search() Name = %q, want Caffeine", result.Molecule.Name)
	}
	if result.Insight.MolecularFormula != "C8H10N4O2" {
		t.Errorf("Search() formula = %q, want C8H10N4O2", result.Insight.MolecularFormula)
	}
	if result.CorrectedFrom != "" {
		t.Errorf("Search() CorrectedFrom = %q, want empty", result.CorrectedFrom)
	}
	if searcher.State() != service.StateDone {
		t.Errorf("State() = %v, want %v", searcher.State(), service.StateDone)
	}
}

func TestSearcher_Search_TrimsQuery(t *testing.T) {
	searcher, resolver, _, enricher := newTestSearcher(t)

	resolver.EXPECT().Resolve(gomock.Any(), "Caffeine").Return(caffeine(), nil)
	enricher.EXPECT().Enrich(gomock.Any(), "Caffeine").Return(service.Insight{})

	if _, err := searcher.Search(context.Background(), "  Caffeine \n"); err != nil {
		t.Fatalf("Search() unexpected error: %v", err)
	}
}

func TestSearcher_Search_EmptyQuery(t *testing.T) {
	searcher, _, _, _ := newTestSearcher(t)

	_, err := searcher.Search(context.Background(), "   ")
	var validationErr *service.ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("Search() error = %v, want ValidationError", err)
	}
	if !errors.Is(err, service.ErrInvalidInput) {
		t.Errorf("Search() error = %v, want it to match ErrInvalidInput", err)
	}
	if searcher.State() != service.StateIdle {
		t.Errorf("State() = %v, want %v (rejected before the session started)", searcher.State(), service.StateIdle)
	}
}

func TestSearcher_Search_CorrectionRoundTrip(t *testing.T) {
	searcher, resolver, advisor, enricher := newTestSearcher(t)

	co2 := &chem.Molecule{CID: 280, Name: "Carbon Dioxide", SDF: "co2 sdf"}
	notFound := &chem.NotFoundError{Query: "carbon di oxide"}

	resolver.EXPECT().Resolve(gomock.Any(), "carbon di oxide").Return(nil, notFound)
	advisor.EXPECT().Suggest(gomock.Any(), "carbon di oxide").Return("Carbon Dioxide")
	resolver.EXPECT().Resolve(gomock.Any(), "Carbon Dioxide").Return(co2, nil)
	// Enrichment keys off the retry's resolved name.
	enricher.EXPECT().Enrich(gomock.Any(), "Carbon Dioxide").Return(service.Insight{MolecularFormula: "CO2"})

	result, err := searcher.Search(context.Background(), "carbon di oxide")
	if err != nil {
		t.Fatalf("Search() unexpected error: %v", err)
	}
	if result.Molecule.Name != "Carbon Dioxide" {
		t.Errorf("Search() Name = %q, want Carbon Dioxide", result.Molecule.Name)
	}
	if result.CorrectedFrom != "carbon di oxide" {
		t.Errorf("Search() CorrectedFrom = %q, want the original query", result.CorrectedFrom)
	}
	if searcher.State() != service.StateDone {
		t.Errorf("State() = %v, want %v", searcher.State(), service.StateDone)
	}
}

func TestSearcher_Search_NoSuggestion(t *testing.T) {
	searcher, resolver, advisor, _ := newTestSearcher(t)

	notFound := &chem.NotFoundError{Query: "zzzxyznotreal"}
	resolver.EXPECT().Resolve(gomock.Any(), "zzzxyznotreal").Return(nil, notFound)
	advisor.EXPECT().Suggest(gomock.Any(), "zzzxyznotreal").Return("")

	_, err := searcher.Search(context.Background(), "zzzxyznotreal")
	if !errors.Is(err, error(notFound)) {
		t.Fatalf("Search() error = %v, want the original resolver failure", err)
	}
	if searcher.State() != service.StateError {
		t.Errorf("State() = %v, want %v", searcher.State(), service.StateError)
	}
}

func TestSearcher_Search_RetryFailureSurfacesOriginalError(t *testing.T) {
	searcher, resolver, advisor, _ := newTestSearcher(t)

	originalErr := &chem.NotFoundError{Query: "carbun dioxide"}
	retryErr := &chem.TransportError{Op: "name lookup", Err: errors.New("bad status 500")}

	resolver.EXPECT().Resolve(gomock.Any(), "carbun dioxide").Return(nil, originalErr)
	advisor.EXPECT().Suggest(gomock.Any(), "carbun dioxide").Return("Carbon Dioxide")
	resolver.EXPECT().Resolve(gomock.Any(), "Carbon Dioxide").Return(nil, retryErr)

	_, err := searcher.Search(context.Background(), "carbun dioxide")
	if !errors.Is(err, error(originalErr)) {
		t.Fatalf("Search() error = %v, want the original failure, not the retry's", err)
	}
	if errors.Is(err, error(retryErr)) {
		t.Error("Search() surfaced the retry's failure")
	}
}

func TestSearcher_Search_TransportFailureCarriesSentinel(t *testing.T) {
	searcher, resolver, advisor, _ := newTestSearcher(t)

	transportErr := &chem.TransportError{Op: "name lookup", Err: errors.New("bad status 503")}
	resolver.EXPECT().Resolve(gomock.Any(), "Caffeine").Return(nil, transportErr)
	advisor.EXPECT().Suggest(gomock.Any(), "Caffeine").Return("")

	_, err := searcher.Search(context.Background(), "Caffeine")
	if !errors.Is(err, service.ErrExternalService) {
		t.Errorf("Search() error = %v, want it to match ErrExternalService", err)
	}
	// The typed failure stays reachable through the chain.
	var transport *chem.TransportError
	if !errors.As(err, &transport) {
		t.Errorf("Search() error = %v, want the TransportError preserved", err)
	}
}

func TestSearcher_Search_RejectsConcurrentSubmit(t *testing.T) {
	searcher, resolver, _, enricher := newTestSearcher(t)

	resolver.EXPECT().
		Resolve(gomock.Any(), "Caffeine").
		DoAndReturn(func(ctx context.Context, query string) (*chem.Molecule, error) {
			// A submit arriving while this session is loading must be a no-op.
			if _, err := searcher.Search(ctx, "Caffeine"); !errors.Is(err, service.ErrSearchInFlight) {
				t.Errorf("nested Search() error = %v, want ErrSearchInFlight", err)
			}
			return caffeine(), nil
		})
	enricher.EXPECT().Enrich(gomock.Any(), "Caffeine").Return(service.Insight{})

	result, err := searcher.Search(context.Background(), "Caffeine")
	if err != nil {
		t.Fatalf("Search() unexpected error: %v", err)
	}
	if result.Molecule.CID != 2519 {
		t.Errorf("final result CID = %d, want the single session's result", result.Molecule.CID)
	}
	if searcher.State() != service.StateDone {
		t.Errorf("State() = %v, want %v", searcher.State(), service.StateDone)
	}
}

func TestSearcher_Search_RestartsAfterTerminalStates(t *testing.T) {
	searcher, resolver, advisor, enricher := newTestSearcher(t)

	notFound := &chem.NotFoundError{Query: "nope"}
	resolver.EXPECT().Resolve(gomock.Any(), "nope").Return(nil, notFound)
	advisor.EXPECT().Suggest(gomock.Any(), "nope").Return("")

	if _, err := searcher.Search(context.Background(), "nope"); err == nil {
		t.Fatal("Search() expected error")
	}

	// Error is terminal for the session, not for the searcher.
	resolver.EXPECT().Resolve(gomock.Any(), "Caffeine").Return(caffeine(), nil)
	enricher.EXPECT().Enrich(gomock.Any(), "Caffeine").Return(service.Insight{})
	if _, err := searcher.Search(context.Background(), "Caffeine"); err != nil {
		t.Fatalf("Search() after Error state: %v", err)
	}

	// Done as well.
	resolver.EXPECT().Resolve(gomock.Any(), "Caffeine").Return(caffeine(), nil)
	enricher.EXPECT().Enrich(gomock.Any(), "Caffeine").Return(service.Insight{})
	if _, err := searcher.Search(context.Background(), "Caffeine"); err != nil {
		t.Fatalf("Search() after Done state: %v", err)
	}
}

func TestSearcher_Search_RecordsHistory(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	resolver := mocks.NewMockStructureResolver(ctrl)
	advisor := mocks.NewMockCorrectionAdvisor(ctrl)
	enricher := mocks.NewMockMoleculeEnricher(ctrl)
	history := storagemocks.NewMockHistoryStore(ctrl)
	searcher := service.NewSearcher(resolver, advisor, enricher, history)

	resolver.EXPECT().Resolve(gomock.Any(), "carbon di oxide").Return(nil, &chem.NotFoundError{Query: "carbon di oxide"})
	advisor.EXPECT().Suggest(gomock.Any(), "carbon di oxide").Return("Carbon Dioxide")
	resolver.EXPECT().Resolve(gomock.Any(), "Carbon Dioxide").Return(&chem.Molecule{CID: 280, Name: "Carbon Dioxide", SDF: "x"}, nil)
	enricher.EXPECT().Enrich(gomock.Any(), "Carbon Dioxide").Return(service.Insight{})
	history.EXPECT().
		Record(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, entry *storage.SearchEntry) error {
			if entry.Query != "carbon di oxide" || entry.CorrectedFrom != "carbon di oxide" {
				t.Errorf("history entry = %+v", entry)
			}
			if entry.Outcome != storage.OutcomeOK || entry.CID != 280 {
				t.Errorf("history entry = %+v", entry)
			}
			return nil
		})

	if _, err := searcher.Search(context.Background(), "carbon di oxide"); err != nil {
		t.Fatalf("Search() unexpected error: %v", err)
	}
}

func TestSearcher_Search_HistoryFailureIsAbsorbed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	resolver := mocks.NewMockStructureResolver(ctrl)
	advisor := mocks.NewMockCorrectionAdvisor(ctrl)
	enricher := mocks.NewMockMoleculeEnricher(ctrl)
	history := storagemocks.NewMockHistoryStore(ctrl)
	searcher := service.NewSearcher(resolver, advisor, enricher, history)

	resolver.EXPECT().Resolve(gomock.Any(), "Caffeine").Return(caffeine(), nil)
	enricher.EXPECT().Enrich(gomock.Any(), "Caffeine").Return(service.Insight{})
	history.EXPECT().Record(gomock.Any(), gomock.Any()).Return(errors.New("disk full"))

	if _, err := searcher.Search(context.Background(), "Caffeine"); err != nil {
		t.Fatalf("Search() should not fail on a history error: %v", err)
	}
}

func TestState_String(t *testing.T) {
	states := map[service.State]string{
		service.StateIdle:           "idle",
		service.StateResolving:      "resolving",
		service.StateCorrecting:     "correcting",
		service.StateResolvingRetry: "resolving_retry",
		service.StateEnriching:      "enriching",
		service.StateDone:           "done",
		service.StateError:          "error",
		service.State(99):           "unknown",
	}
	for state, want := range states {
		if got := state.String(); got != want {
			t.Errorf("State(%d).String() = %q, want %q", state, got, want)
		}
	}
}
