package persistence_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/talgya/households/internal/persistence"
)

func openTestDB(t *testing.T) *persistence.DB {
	t.Helper()
	path := filepath.Join(t.TempDir(), "year_stats.db")
	db, err := persistence.Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestSaveAndLoadYearStatsRoundTrips(t *testing.T) {
	db := openTestDB(t)

	rows := []persistence.YearStats{
		{CommunityID: "village-a", Year: 1, Population: 20, Births: 1, Deaths: 0, Marriages: 0, Moves: 0, OccupiedHouses: 5, HousingCapacity: 40},
		{CommunityID: "village-a", Year: 2, Population: 21, Births: 2, Deaths: 1, Marriages: 1, Moves: 1, OccupiedHouses: 5, HousingCapacity: 40},
	}
	for _, row := range rows {
		require.NoError(t, db.SaveYearStats(row))
	}

	loaded, err := db.LoadYearStats("village-a")
	require.NoError(t, err)
	require.Equal(t, rows, loaded)
}

func TestSaveYearStatsOverwritesSameYear(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, db.SaveYearStats(persistence.YearStats{CommunityID: "village-b", Year: 1, Population: 10}))
	require.NoError(t, db.SaveYearStats(persistence.YearStats{CommunityID: "village-b", Year: 1, Population: 11}))

	loaded, err := db.LoadYearStats("village-b")
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	require.Equal(t, 11, loaded[0].Population)
}

func TestLoadYearStatsUnknownCommunityIsEmpty(t *testing.T) {
	db := openTestDB(t)

	loaded, err := db.LoadYearStats("no-such-community")
	require.NoError(t, err)
	require.Empty(t, loaded)
}
