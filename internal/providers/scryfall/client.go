package scryfall

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/google/uuid"

	"github.com/cardfolio/cardfolio-api/internal/adapter"
)

const PROVIDER_NAME = "scryfall"

// LookupError reports a failed card lookup against the external service.
// StatusCode carries the upstream HTTP status when one was received, and 0
// when the request never produced a response (network error, timeout).
type LookupError struct {
	StatusCode int
	Err        error
}

func (e *LookupError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("card lookup failed (upstream status %d): %v", e.StatusCode, e.Err)
	}
	return fmt.Sprintf("card lookup failed: %v", e.Err)
}

func (e *LookupError) Unwrap() error {
	return e.Err
}

// ImageURIs holds the image links of one card face, by size
type ImageURIs struct {
	Small  *string `json:"small"`
	Normal *string `json:"normal"`
	Large  *string `json:"large"`
	PNG    *string `json:"png"`
}

// CardFace represents one face of a multi-faced card
type CardFace struct {
	ImageURIs *ImageURIs `json:"image_uris"`
}

// cardResponse represents the fields we read from the Scryfall named-card endpoint
type cardResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	TypeLine string `json:"type_line"`
	Prices   struct {
		USD *string `json:"usd"`
	} `json:"prices"`
	Colors    []string   `json:"colors"`
	ImageURIs *ImageURIs `json:"image_uris"`
	CardFaces []CardFace `json:"card_faces"`
}

// CardRecord is the normalized lookup result
type CardRecord struct {
	Name       string
	Price      *float64
	ExternalID string
	Colors     []string
	TypeLine   string
	ImageURL   *string
}

// Client defines the interface for card lookup operations to enable mocking
//
//go:generate mockgen -source=client.go -destination=../../mocks/scryfall_client.go -package=mocks -mock_names=Client=MockScryfallClient
type Client interface {
	// GetCardByExactName resolves an exact card name to its canonical metadata
	GetCardByExactName(ctx context.Context, name string) (*CardRecord, error)
}

// ScryfallClient implements the card lookup client
type ScryfallClient struct {
	httpClient adapter.HTTPClient
	apiURL     string
	userAgent  string
}

// NewClient creates a new Scryfall client
func NewClient(httpClient adapter.HTTPClient, apiURL string, userAgent string) Client {
	return &ScryfallClient{
		httpClient: httpClient,
		apiURL:     apiURL,
		userAgent:  userAgent,
	}
}

// GetCardByExactName resolves an exact card name via the named-card endpoint.
// Any network error, non-success status, or malformed body is reported as a
// *LookupError; the caller must not conflate it with store failures.
func (c *ScryfallClient) GetCardByExactName(ctx context.Context, name string) (*CardRecord, error) {
	lookupURL := fmt.Sprintf("%s/cards/named?exact=%s", c.apiURL, url.QueryEscape(name))

	headers := map[string]string{
		"User-Agent": c.userAgent,
		"Accept":     "application/json",
	}

	body, status, err := c.httpClient.Get(ctx, lookupURL, headers)
	if err != nil {
		return nil, &LookupError{StatusCode: status, Err: err}
	}
	if status != http.StatusOK {
		return nil, &LookupError{StatusCode: status, Err: fmt.Errorf("unexpected status code %d", status)}
	}

	var raw cardResponse
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, &LookupError{StatusCode: status, Err: fmt.Errorf("failed to decode response: %w", err)}
	}

	if raw.Name == "" {
		return nil, &LookupError{StatusCode: status, Err: fmt.Errorf("response has no card name")}
	}
	// Scryfall card identifiers are UUIDs; anything else means a malformed response
	if _, err := uuid.Parse(raw.ID); err != nil {
		return nil, &LookupError{StatusCode: status, Err: fmt.Errorf("invalid card id %q: %w", raw.ID, err)}
	}

	price, err := parsePrice(raw.Prices.USD)
	if err != nil {
		return nil, &LookupError{StatusCode: status, Err: err}
	}

	return &CardRecord{
		Name:       raw.Name,
		Price:      price,
		ExternalID: raw.ID,
		Colors:     raw.Colors,
		TypeLine:   raw.TypeLine,
		ImageURL:   bestAvailableImage(raw.ImageURIs, raw.CardFaces),
	}, nil
}

// parsePrice converts the service's string price into a number; absent is valid
func parsePrice(usd *string) (*float64, error) {
	if usd == nil {
		return nil, nil
	}
	price, err := strconv.ParseFloat(*usd, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid usd price %q: %w", *usd, err)
	}
	return &price, nil
}

// bestAvailableImage picks the best-available image link. Single-faced image
// sets are scanned in preference order small, normal, large, png; multi-faced
// cards fall back to the same scan over the first face only. No image at all
// is a valid outcome, not an error.
func bestAvailableImage(uris *ImageURIs, faces []CardFace) *string {
	if uris != nil {
		if img := firstPresent(uris); img != nil {
			return img
		}
	}
	if len(faces) > 0 && faces[0].ImageURIs != nil {
		return firstPresent(faces[0].ImageURIs)
	}
	return nil
}

func firstPresent(uris *ImageURIs) *string {
	for _, candidate := range []*string{uris.Small, uris.Normal, uris.Large, uris.PNG} {
		if candidate != nil {
			return candidate
		}
	}
	return nil
}
