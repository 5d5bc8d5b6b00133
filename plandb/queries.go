package plandb

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"preplan.flightworks.org/internal/logging"
	"preplan.flightworks.org/internal/models"
)

// UpsertAirport stores or replaces an airport and its offset history.
func (c *Client) UpsertAirport(ctx context.Context, ap models.Airport) error {
	tx, err := c.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO airports (iata, name, international, lat, lon)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(iata) DO UPDATE SET
		   name = excluded.name,
		   international = excluded.international,
		   lat = excluded.lat,
		   lon = excluded.lon`,
		ap.IATA, ap.Name, boolToInt(ap.International), ap.Lat, ap.Lon)
	if err != nil {
		return fmt.Errorf("failed to upsert airport %s: %w", ap.IATA, err)
	}

	if _, err = tx.ExecContext(ctx,
		`DELETE FROM utc_offset_records WHERE airport_iata = ?`, ap.IATA); err != nil {
		return fmt.Errorf("failed to clear offset records for %s: %w", ap.IATA, err)
	}

	for _, rec := range ap.OffsetRecords {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO utc_offset_records (airport_iata, offset_minutes, dst, start_utc, end_utc)
			 VALUES (?, ?, ?, ?, ?)`,
			ap.IATA, rec.OffsetMinutes, boolToInt(rec.DST),
			rec.StartUTC.UTC().Format(time.RFC3339), rec.EndUTC.UTC().Format(time.RFC3339))
		if err != nil {
			return fmt.Errorf("failed to insert offset record for %s: %w", ap.IATA, err)
		}
	}

	return tx.Commit()
}

// GetAirport loads one airport with its offset history. Returns
// sql.ErrNoRows when the airport is unknown.
func (c *Client) GetAirport(ctx context.Context, iata string) (*models.Airport, error) {
	row := c.DB.QueryRowContext(ctx,
		`SELECT iata, name, international, lat, lon FROM airports WHERE iata = ?`, iata)

	var ap models.Airport
	var international int
	if err := row.Scan(&ap.IATA, &ap.Name, &international, &ap.Lat, &ap.Lon); err != nil {
		return nil, err
	}
	ap.International = international != 0

	records, err := c.offsetRecords(ctx, ap.IATA)
	if err != nil {
		return nil, err
	}
	ap.OffsetRecords = records
	return &ap, nil
}

// ListAirports loads every airport with its offset history.
func (c *Client) ListAirports(ctx context.Context) ([]*models.Airport, error) {
	rows, err := c.DB.QueryContext(ctx,
		`SELECT iata, name, international, lat, lon FROM airports ORDER BY iata`)
	if err != nil {
		return nil, fmt.Errorf("failed to query airports: %w", err)
	}
	defer logging.SafeCloseWithLogging(rows, c.logger, "database_rows")

	var airports []*models.Airport
	for rows.Next() {
		var ap models.Airport
		var international int
		if err := rows.Scan(&ap.IATA, &ap.Name, &international, &ap.Lat, &ap.Lon); err != nil {
			return nil, fmt.Errorf("failed to scan airport: %w", err)
		}
		ap.International = international != 0
		airports = append(airports, &ap)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, ap := range airports {
		records, err := c.offsetRecords(ctx, ap.IATA)
		if err != nil {
			return nil, err
		}
		ap.OffsetRecords = records
	}
	return airports, nil
}

func (c *Client) offsetRecords(ctx context.Context, iata string) ([]models.UTCOffsetRecord, error) {
	rows, err := c.DB.QueryContext(ctx,
		`SELECT offset_minutes, dst, start_utc, end_utc
		 FROM utc_offset_records WHERE airport_iata = ? ORDER BY start_utc`, iata)
	if err != nil {
		return nil, fmt.Errorf("failed to query offset records for %s: %w", iata, err)
	}
	defer logging.SafeCloseWithLogging(rows, c.logger, "database_rows")

	var records []models.UTCOffsetRecord
	for rows.Next() {
		var rec models.UTCOffsetRecord
		var dst int
		var start, end string
		if err := rows.Scan(&rec.OffsetMinutes, &dst, &start, &end); err != nil {
			return nil, fmt.Errorf("failed to scan offset record: %w", err)
		}
		rec.DST = dst != 0
		if rec.StartUTC, err = time.Parse(time.RFC3339, start); err != nil {
			return nil, fmt.Errorf("malformed start_utc %q: %w", start, err)
		}
		if rec.EndUTC, err = time.Parse(time.RFC3339, end); err != nil {
			return nil, fmt.Errorf("malformed end_utc %q: %w", end, err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// UpsertRequirement stores or replaces a flight requirement document.
func (c *Client) UpsertRequirement(ctx context.Context, req models.FlightRequirement) error {
	document, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("failed to marshal requirement %s: %w", req.ID, err)
	}

	_, err = c.DB.ExecContext(ctx,
		`INSERT INTO flight_requirements (id, label, document)
		 VALUES (?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET label = excluded.label, document = excluded.document`,
		req.ID, req.Label, string(document))
	if err != nil {
		return fmt.Errorf("failed to upsert requirement %s: %w", req.ID, err)
	}
	return nil
}

// GetRequirement loads one requirement document. Returns sql.ErrNoRows when
// the id is unknown.
func (c *Client) GetRequirement(ctx context.Context, id string) (*models.FlightRequirement, error) {
	var document string
	err := c.DB.QueryRowContext(ctx,
		`SELECT document FROM flight_requirements WHERE id = ?`, id).Scan(&document)
	if err != nil {
		return nil, err
	}
	return unmarshalRequirement(document)
}

// ListRequirements loads every stored requirement ordered by id.
func (c *Client) ListRequirements(ctx context.Context) ([]*models.FlightRequirement, error) {
	rows, err := c.DB.QueryContext(ctx,
		`SELECT document FROM flight_requirements ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query requirements: %w", err)
	}
	defer logging.SafeCloseWithLogging(rows, c.logger, "database_rows")

	var reqs []*models.FlightRequirement
	for rows.Next() {
		var document string
		if err := rows.Scan(&document); err != nil {
			return nil, fmt.Errorf("failed to scan requirement: %w", err)
		}
		req, err := unmarshalRequirement(document)
		if err != nil {
			return nil, err
		}
		reqs = append(reqs, req)
	}
	return reqs, rows.Err()
}

func unmarshalRequirement(document string) (*models.FlightRequirement, error) {
	var req models.FlightRequirement
	if err := json.Unmarshal([]byte(document), &req); err != nil {
		return nil, fmt.Errorf("malformed requirement document: %w", err)
	}
	return &req, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
