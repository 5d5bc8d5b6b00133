package plandb

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"preplan.flightworks.org/internal/logging"
	"preplan.flightworks.org/internal/models"
)

// MasterDataDocument is the on-disk/remote master-data format: the airports
// and weekly requirements a preplan session operates on.
type MasterDataDocument struct {
	Airports     []models.Airport           `json:"airports"`
	Requirements []models.FlightRequirement `json:"requirements"`
}

const maxDocumentSize = 50 * 1024 * 1024

// ImportFromFile imports a master-data JSON document from a local file.
func (c *Client) ImportFromFile(ctx context.Context, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("error reading master-data file: %w", err)
	}
	return c.importDocument(ctx, data, path)
}

// DownloadAndStore downloads a master-data JSON document from the given URL
// and imports it, optionally sending an auth header.
func (c *Client) DownloadAndStore(ctx context.Context, url, authHeaderKey, authHeaderValue string) error {
	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return err
	}
	if authHeaderKey != "" && authHeaderValue != "" {
		req.Header.Set(authHeaderKey, authHeaderValue)
	}

	client := &http.Client{
		Timeout: 5 * time.Minute,
		Transport: &http.Transport{
			TLSHandshakeTimeout:   10 * time.Second,
			ResponseHeaderTimeout: 30 * time.Second,
			IdleConnTimeout:       90 * time.Second,
		}}
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer logging.SafeCloseWithLogging(resp.Body, c.logger, "http_response_body")

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("failed to download master data: received HTTP status %s", resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxDocumentSize+1))
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}
	if int64(len(body)) > maxDocumentSize {
		return fmt.Errorf("master-data response exceeds size limit of %d bytes", maxDocumentSize)
	}

	return c.importDocument(ctx, body, url)
}

func (c *Client) importDocument(ctx context.Context, data []byte, source string) error {
	var doc MasterDataDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("malformed master-data document from %q: %w", source, err)
	}

	for _, ap := range doc.Airports {
		if ap.IATA == "" {
			return fmt.Errorf("master-data document from %q contains an airport without an IATA code", source)
		}
		if err := c.UpsertAirport(ctx, ap); err != nil {
			return err
		}
	}
	for _, req := range doc.Requirements {
		if req.ID == "" {
			return fmt.Errorf("master-data document from %q contains a requirement without an id", source)
		}
		if err := c.UpsertRequirement(ctx, req); err != nil {
			return err
		}
	}

	if c.config.verbose {
		c.logger.Info("imported master data",
			"source", source,
			"airports", len(doc.Airports),
			"requirements", len(doc.Requirements))
	}
	return nil
}
