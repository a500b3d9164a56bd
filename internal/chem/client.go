package chem

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"molecuview/internal/contextutil"
)

// DefaultBaseURL is the public PubChem PUG REST endpoint.
const DefaultBaseURL = "https://pubchem.ncbi.nlm.nih.gov/rest/pug"

const defaultHTTPTimeout = 30 * time.Second

// Molecule is a resolved compound: its PubChem CID, the name it was
// searched under, and the raw SDF payload for the rendering surface.
// The SDF bytes are passed through unmodified.
type Molecule struct {
	CID  int    `json:"cid"`
	Name string `json:"name"`
	SDF  string `json:"sdf"`
}

// StructureCache stores SDF payloads keyed by CID and record type ("3d" or
// "2d"). Any error from Get is treated as a cache miss; Put failures are
// logged and ignored.
type StructureCache interface {
	Get(ctx context.Context, cid int, recordType string) (string, error)
	Put(ctx context.Context, cid int, recordType, sdf string) error
}

// Client talks to the PubChem PUG REST API.
type Client struct {
	BaseURL string
	client  *http.Client
	cache   StructureCache
}

// NewClient creates a new PubChem client. cache may be nil, in which case
// every structure request hits the network.
func NewClient(baseURL string, cache StructureCache) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: defaultHTTPTimeout},
		cache:   cache,
	}
}

// compoundList mirrors the PubChem name-lookup envelope. Only the CID path
// is decoded; everything else in the record is ignored.
type compoundList struct {
	PCCompounds []struct {
		ID struct {
			ID struct {
				CID int `json:"cid"`
			} `json:"id"`
		} `json:"id"`
	} `json:"PC_Compounds"`
}

// Resolve looks up a compound by name and fetches its structure data.
//
// The query is trimmed before lookup. 3D coordinates are requested first;
// if PubChem has no 3D record for the compound, the 2D record is fetched
// instead without surfacing an error. The returned Molecule's Name is
// always the trimmed query passed to this call, not any canonical name
// from the database.
func (c *Client) Resolve(ctx context.Context, query string) (*Molecule, error) {
	trimmed := strings.TrimSpace(query)
	logger := contextutil.LoggerFromContext(ctx)

	cid, err := c.lookupCID(ctx, trimmed)
	if err != nil {
		return nil, err
	}
	logger.DebugContext(ctx, "resolved compound id", "query", trimmed, "cid", cid)

	sdf, err := c.fetchSDF(ctx, cid, "3d")
	if err != nil {
		// Not every compound has computed 3D coordinates. Fall back to the
		// 2D record; only fail if that is missing too.
		logger.DebugContext(ctx, "no 3d record, falling back to 2d", "cid", cid)
		sdf, err = c.fetchSDF(ctx, cid, "2d")
		if err != nil {
			return nil, err
		}
	}

	return &Molecule{CID: cid, Name: trimmed, SDF: sdf}, nil
}

// lookupCID resolves a compound name to its CID.
func (c *Client) lookupCID(ctx context.Context, name string) (int, error) {
	lookupURL := fmt.Sprintf("%s/compound/name/%s/JSON", c.BaseURL, url.PathEscape(name))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, lookupURL, nil)
	if err != nil {
		return 0, &TransportError{Op: "name lookup", Err: err}
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return 0, &TransportError{Op: "name lookup", Err: err}
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode == http.StatusNotFound {
		return 0, &NotFoundError{Query: name}
	}
	if resp.StatusCode != http.StatusOK {
		return 0, &TransportError{Op: "name lookup", Err: fmt.Errorf("bad status %d", resp.StatusCode)}
	}

	var list compoundList
	if err := json.NewDecoder(resp.Body).Decode(&list); err != nil {
		return 0, &TransportError{Op: "name lookup", Err: fmt.Errorf("failed to decode response: %w", err)}
	}

	// A nominally successful lookup can still come back without a CID.
	if len(list.PCCompounds) == 0 || list.PCCompounds[0].ID.ID.CID <= 0 {
		return 0, &NotFoundError{Query: name}
	}

	return list.PCCompounds[0].ID.ID.CID, nil
}

// fetchSDF downloads the structure-data file for a CID. recordType is "3d"
// or "2d"; PubChem's default record is 2D, so only the 3D request carries
// the record_type parameter.
func (c *Client) fetchSDF(ctx context.Context, cid int, recordType string) (string, error) {
	logger := contextutil.LoggerFromContext(ctx)

	if c.cache != nil {
		if sdf, err := c.cache.Get(ctx, cid, recordType); err == nil && sdf != "" {
			logger.DebugContext(ctx, "structure cache hit", "cid", cid, "record_type", recordType)
			return sdf, nil
		}
	}

	sdfURL := fmt.Sprintf("%s/compound/cid/%d/SDF", c.BaseURL, cid)
	if recordType == "3d" {
		sdfURL += "?record_type=3d"
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, sdfURL, nil)
	if err != nil {
		return "", &TransportError{Op: "structure download", Err: err}
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return "", &TransportError{Op: "structure download", Err: err}
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return "", &TransportError{Op: "structure download", Err: fmt.Errorf("bad status %d", resp.StatusCode)}
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &TransportError{Op: "structure download", Err: err}
	}
	sdf := string(raw)

	if c.cache != nil {
		if err := c.cache.Put(ctx, cid, recordType, sdf); err != nil {
			logger.WarnContext(ctx, "failed to cache structure", "cid", cid, "error", err)
		}
	}

	return sdf, nil
}
