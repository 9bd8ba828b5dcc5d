package history

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/Eronmosele95/electrical-dashboard/internal/model"
	"github.com/Eronmosele95/electrical-dashboard/internal/storage"
)

// newItem builds a distinguishable item; voltage doubles as a sequence
// marker in ordering assertions.
func newItem(voltage float64) Item {
	resolved := model.Resolve(model.Inputs{
		Voltage: voltage,
		Current: 10,
		Phase:   model.SinglePhase,
	}, model.StandardDefaults())
	return NewItem(resolved, model.Calculate(resolved))
}

func TestSavePrependsNewestFirst(t *testing.T) {
	s := NewStore(storage.NewMemStore(), DefaultMaxEntries, nil)

	require.NoError(t, s.Save(newItem(100)))
	require.NoError(t, s.Save(newItem(200)))
	require.NoError(t, s.Save(newItem(300)))

	items, err := s.List()
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, 300.0, items[0].Voltage)
	assert.Equal(t, 200.0, items[1].Voltage)
	assert.Equal(t, 100.0, items[2].Voltage)
}

func TestSaveCapsAtMaxEntries(t *testing.T) {
	s := NewStore(storage.NewMemStore(), DefaultMaxEntries, nil)

	for i := 1; i <= 11; i++ {
		require.NoError(t, s.Save(newItem(float64(100+i))))
	}

	items, err := s.List()
	require.NoError(t, err)
	require.Len(t, items, 10)
	assert.Equal(t, 111.0, items[0].Voltage, "newest stays")
	assert.Equal(t, 102.0, items[9].Voltage, "oldest surviving entry")
}

func TestSaveRespectsCustomCap(t *testing.T) {
	s := NewStore(storage.NewMemStore(), 3, nil)

	for i := 0; i < 5; i++ {
		require.NoError(t, s.Save(newItem(float64(i))))
	}

	items, err := s.List()
	require.NoError(t, err)
	assert.Len(t, items, 3)
}

func TestLoadByID(t *testing.T) {
	s := NewStore(storage.NewMemStore(), DefaultMaxEntries, nil)

	item := newItem(480)
	require.NoError(t, s.Save(item))

	got, err := s.Load(item.ID)
	require.NoError(t, err)
	assert.Equal(t, item.ID, got.ID)
	assert.Equal(t, 480.0, got.Voltage)
	assert.InDelta(t, item.Result.RealPowerKW, got.Result.RealPowerKW, 1e-9)

	_, err = s.Load("no-such-id")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDelete(t *testing.T) {
	s := NewStore(storage.NewMemStore(), DefaultMaxEntries, nil)

	first := newItem(100)
	second := newItem(200)
	require.NoError(t, s.Save(first))
	require.NoError(t, s.Save(second))

	require.NoError(t, s.Delete(first.ID))

	items, err := s.List()
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, second.ID, items[0].ID)
}

func TestDeleteUnknownIDLeavesListUnchanged(t *testing.T) {
	s := NewStore(storage.NewMemStore(), DefaultMaxEntries, nil)

	require.NoError(t, s.Save(newItem(100)))
	require.NoError(t, s.Save(newItem(200)))

	err := s.Delete("no-such-id")
	assert.ErrorIs(t, err, ErrNotFound)

	items, err := s.List()
	require.NoError(t, err)
	assert.Len(t, items, 2)
}

func TestClear(t *testing.T) {
	s := NewStore(storage.NewMemStore(), DefaultMaxEntries, nil)

	require.NoError(t, s.Save(newItem(100)))
	require.NoError(t, s.Clear())

	items, err := s.List()
	require.NoError(t, err)
	assert.Empty(t, items)

	// Clearing an already empty history is fine.
	require.NoError(t, s.Clear())
}

func TestCorruptBlobFailsSoft(t *testing.T) {
	mem := storage.NewMemStore()
	require.NoError(t, mem.Set(StorageKey, "{not json"))

	core, logs := observer.New(zap.WarnLevel)
	s := NewStore(mem, DefaultMaxEntries, zap.New(core))

	items, err := s.List()
	require.NoError(t, err)
	assert.Empty(t, items)
	assert.Equal(t, 1, logs.FilterMessage("discarding corrupt history blob").Len())

	// The next save starts a fresh list over the corrupt blob.
	require.NoError(t, s.Save(newItem(100)))
	items, err = s.List()
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestPersistsAcrossStoreInstances(t *testing.T) {
	mem := storage.NewMemStore()

	first := NewStore(mem, DefaultMaxEntries, nil)
	item := newItem(480)
	require.NoError(t, first.Save(item))

	second := NewStore(mem, DefaultMaxEntries, nil)
	items, err := second.List()
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, item.ID, items[0].ID)
}

func TestItemIDsAreUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		item := newItem(float64(i))
		if seen[item.ID] {
			t.Fatalf("duplicate id %s at iteration %d", item.ID, i)
		}
		seen[item.ID] = true
	}
}

func TestNewItemRecordsResolvedInputs(t *testing.T) {
	resolved := model.Resolve(model.Inputs{
		Voltage: 480,
		Current: 100,
		Phase:   model.ThreePhase,
	}, model.StandardDefaults())
	item := NewItem(resolved, model.Calculate(resolved))

	// The stored inputs are the values the calculation used, defaults
	// included, so reloading the item reproduces the result.
	assert.Equal(t, 0.9, item.PowerFactor)
	assert.Equal(t, 100.0, item.Efficiency)
	assert.Equal(t, 0.12, item.Rate)
	assert.Positive(t, item.Timestamp)

	recomputed := model.Calculate(model.Resolved{
		Voltage:     item.Voltage,
		Current:     item.Current,
		Phase:       item.Phase,
		PowerFactor: item.PowerFactor,
		Efficiency:  item.Efficiency,
		RatePerKWh:  item.Rate,
	})
	assert.InDelta(t, item.Result.AdjustedPowerKW, recomputed.AdjustedPowerKW, 1e-9)
}

func TestListIsEmptyNotNilOnFreshStore(t *testing.T) {
	s := NewStore(storage.NewMemStore(), DefaultMaxEntries, nil)
	items, err := s.List()
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}
