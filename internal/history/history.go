// Package history keeps the bounded list of saved calculations.
package history

import (
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Eronmosele95/electrical-dashboard/internal/model"
	"github.com/Eronmosele95/electrical-dashboard/internal/storage"
)

// StorageKey is the store key holding the serialized history list.
const StorageKey = "calculationHistory"

// DefaultMaxEntries caps the history list.
const DefaultMaxEntries = 10

// ErrNotFound is returned when no history item has the requested id.
var ErrNotFound = errors.New("history item not found")

// Item is one saved calculation snapshot. Items are immutable once created;
// the only mutations to history are insertion at the front and deletion.
// Inputs are stored resolved — the values the calculation actually used —
// so loading an item back into the input fields reproduces its result.
type Item struct {
	ID          string       `json:"id"`
	Timestamp   int64        `json:"timestamp"` // epoch milliseconds
	Voltage     float64      `json:"voltage"`
	Current     float64      `json:"current"`
	Phase       model.Phase  `json:"phase"`
	PowerFactor float64      `json:"power_factor"`
	Efficiency  float64      `json:"efficiency"`
	Rate        float64      `json:"rate"`
	Result      model.Result `json:"result"`
}

// NewItem snapshots a calculation. IDs are UUIDv7 so they sort in creation
// order like timestamp-derived ids, without same-millisecond clashes.
func NewItem(in model.Resolved, res model.Result) Item {
	return Item{
		ID:          uuid.Must(uuid.NewV7()).String(),
		Timestamp:   time.Now().UnixMilli(),
		Voltage:     in.Voltage,
		Current:     in.Current,
		Phase:       in.Phase,
		PowerFactor: in.PowerFactor,
		Efficiency:  in.Efficiency,
		Rate:        in.RatePerKWh,
		Result:      res,
	}
}

// Store keeps the history list in a storage.Store under StorageKey. The
// whole list is one serialized blob and every write replaces it; the mutex
// serializes the read-modify-write cycle so the single-writer discipline
// the blob format assumes holds under concurrent requests.
type Store struct {
	mu         sync.Mutex
	store      storage.Store
	maxEntries int
	logger     *zap.Logger
}

// NewStore wraps s. A maxEntries <= 0 falls back to DefaultMaxEntries; a
// nil logger disables logging.
func NewStore(s storage.Store, maxEntries int, logger *zap.Logger) *Store {
	if maxEntries <= 0 {
		maxEntries = DefaultMaxEntries
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{store: s, maxEntries: maxEntries, logger: logger}
}

// Save prepends item and truncates the list to the newest maxEntries.
func (s *Store) Save(item Item) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.load()
	if err != nil {
		return err
	}
	items = append([]Item{item}, items...)
	if len(items) > s.maxEntries {
		items = items[:s.maxEntries]
	}
	return s.persist(items)
}

// List returns the saved items, newest first.
func (s *Store) List() ([]Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

// Load finds one item by id.
func (s *Store) Load(id string) (Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.load()
	if err != nil {
		return Item{}, err
	}
	for _, it := range items {
		if it.ID == id {
			return it, nil
		}
	}
	return Item{}, ErrNotFound
}

// Delete removes the item with the given id. An unknown id returns
// ErrNotFound and leaves the persisted list untouched.
func (s *Store) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.load()
	if err != nil {
		return err
	}
	kept := make([]Item, 0, len(items))
	found := false
	for _, it := range items {
		if it.ID == id {
			found = true
			continue
		}
		kept = append(kept, it)
	}
	if !found {
		return ErrNotFound
	}
	return s.persist(kept)
}

// Clear removes the persisted list entirely.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.Remove(StorageKey)
}

// load deserializes the persisted list. An absent key is an empty history;
// so is a corrupt blob — history is convenience state, not worth failing a
// request over. Corruption is logged and the next Save overwrites it.
func (s *Store) load() ([]Item, error) {
	raw, ok, err := s.store.Get(StorageKey)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []Item{}, nil
	}
	var items []Item
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		s.logger.Warn("discarding corrupt history blob", zap.Error(err))
		return []Item{}, nil
	}
	return items, nil
}

func (s *Store) persist(items []Item) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return s.store.Set(StorageKey, string(raw))
}
