// Package masterdata loads and serves preplan master data: airports with
// UTC-offset histories and weekly flight requirements, backed by plandb and
// indexed in memory for the HTTP layer and the pack engine.
package masterdata

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/tidwall/rtree"
	"preplan.flightworks.org/internal/appconf"
	"preplan.flightworks.org/internal/models"
	"preplan.flightworks.org/internal/utils"
	"preplan.flightworks.org/plandb"
)

// Config controls where master data is loaded from.
type Config struct {
	// DataPath is the sqlite path, ":memory:" for ephemeral stores.
	DataPath string
	// MasterDataPath is a local JSON file path or an http(s) URL.
	MasterDataPath  string
	AuthHeaderKey   string
	AuthHeaderValue string
	Env             appconf.Environment
	Verbose         bool
}

// Manager holds the loaded master data. The RWMutex guards the in-memory
// indexes during reloads; handlers take the read lock for the duration of a
// request.
type Manager struct {
	sync.RWMutex

	PlanDB *plandb.Client

	config       Config
	logger       *slog.Logger
	airports     map[string]*models.Airport
	requirements map[string]*models.FlightRequirement
	spatial      rtree.RTreeG[*models.Airport]
	ready        atomic.Bool
}

// InitManager builds the plandb store, imports the configured master-data
// document, and indexes it in memory.
func InitManager(config Config) (*Manager, error) {
	client, err := plandb.NewClient(plandb.NewConfig(config.DataPath, config.Env, config.Verbose))
	if err != nil {
		return nil, fmt.Errorf("failed to create plandb client: %w", err)
	}

	manager := &Manager{
		PlanDB: client,
		config: config,
		logger: slog.Default().With(slog.String("component", "masterdata")),
	}

	ctx := context.Background()
	if isRemote(config.MasterDataPath) {
		err = client.DownloadAndStore(ctx, config.MasterDataPath, config.AuthHeaderKey, config.AuthHeaderValue)
	} else {
		err = client.ImportFromFile(ctx, config.MasterDataPath)
	}
	if err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to import master data: %w", err)
	}

	if err := manager.reload(ctx); err != nil {
		_ = client.Close()
		return nil, err
	}

	manager.ready.Store(true)
	return manager, nil
}

func isRemote(path string) bool {
	return strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://")
}

// reload rebuilds the in-memory indexes from the store.
func (m *Manager) reload(ctx context.Context) error {
	airports, err := m.PlanDB.ListAirports(ctx)
	if err != nil {
		return fmt.Errorf("failed to load airports: %w", err)
	}
	requirements, err := m.PlanDB.ListRequirements(ctx)
	if err != nil {
		return fmt.Errorf("failed to load requirements: %w", err)
	}

	m.Lock()
	defer m.Unlock()

	m.airports = make(map[string]*models.Airport, len(airports))
	m.spatial = rtree.RTreeG[*models.Airport]{}
	for _, ap := range airports {
		m.airports[ap.IATA] = ap
		point := [2]float64{ap.Lon, ap.Lat}
		m.spatial.Insert(point, point, ap)
	}

	m.requirements = make(map[string]*models.FlightRequirement, len(requirements))
	for _, req := range requirements {
		m.requirements[req.ID] = req
	}

	m.logger.Info("master data indexed",
		slog.Int("airports", len(airports)),
		slog.Int("requirements", len(requirements)))
	return nil
}

// IsReady reports whether the manager finished importing and indexing.
func (m *Manager) IsReady() bool {
	return m.ready.Load()
}

// Airport returns the airport with the given IATA code, or nil.
// Caller must hold the read lock.
func (m *Manager) Airport(code string) *models.Airport {
	return m.airports[code]
}

// AirportLookup returns the lookup function the pack engine consumes.
// Caller must hold the read lock for as long as the function is used.
func (m *Manager) AirportLookup() func(code string) *models.Airport {
	return m.Airport
}

// Airports returns every airport ordered by the underlying store.
// Caller must hold the read lock.
func (m *Manager) Airports() []*models.Airport {
	airports := make([]*models.Airport, 0, len(m.airports))
	for _, ap := range m.airports {
		airports = append(airports, ap)
	}
	return airports
}

// Requirement returns the requirement with the given id, or nil.
// Caller must hold the read lock.
func (m *Manager) Requirement(id string) *models.FlightRequirement {
	return m.requirements[id]
}

// Requirements returns every loaded requirement. Caller must hold the read
// lock.
func (m *Manager) Requirements() []*models.FlightRequirement {
	reqs := make([]*models.FlightRequirement, 0, len(m.requirements))
	for _, req := range m.requirements {
		reqs = append(reqs, req)
	}
	return reqs
}

// AirportsWithin returns airports inside the given bounding box, expressed
// as a center point and half-spans in degrees. Caller must hold the read
// lock.
func (m *Manager) AirportsWithin(lat, lon, latSpan, lonSpan float64) []*models.Airport {
	var found []*models.Airport
	bounds := utils.CalculateBoundsFromSpan(lat, lon, latSpan, lonSpan)
	min := [2]float64{bounds.MinLon, bounds.MinLat}
	max := [2]float64{bounds.MaxLon, bounds.MaxLat}
	m.spatial.Search(min, max, func(_, _ [2]float64, ap *models.Airport) bool {
		found = append(found, ap)
		return true
	})
	return found
}

// Shutdown closes the underlying store.
func (m *Manager) Shutdown() {
	if m.PlanDB != nil {
		if err := m.PlanDB.Close(); err != nil {
			m.logger.Error("failed to close plandb", slog.Any("error", err))
		}
	}
}
