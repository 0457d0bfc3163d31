package sqlite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/misaka10843/ReinaManager/pkg/types"
)

func TestStatisticsUpdateAndGet(t *testing.T) {
	b := attachTestBackend(t)
	stats, err := b.Statistics()
	require.NoError(t, err)

	lastPlayed := int64(1717243260)
	daily := []types.DailyStat{{Date: "2024-06-01", Playtime: 60}}
	require.NoError(t, stats.Update(7, 60, 1, &lastPlayed, daily))

	got, err := stats.Get(7)
	require.NoError(t, err)
	assert.Equal(t, int64(7), got.GameID)
	assert.Equal(t, int64(60), got.TotalTime)
	assert.Equal(t, int64(1), got.SessionCount)
	require.NotNil(t, got.LastPlayed)
	assert.Equal(t, lastPlayed, *got.LastPlayed)
	assert.Equal(t, daily, got.Daily)

	// Update replaces the row wholesale; nothing is added to prior values.
	require.NoError(t, stats.Update(7, 90, 2, &lastPlayed, []types.DailyStat{
		{Date: "2024-06-01", Playtime: 90},
	}))
	got, err = stats.Get(7)
	require.NoError(t, err)
	assert.Equal(t, int64(90), got.TotalTime)
	assert.Equal(t, int64(2), got.SessionCount)
	assert.Len(t, got.Daily, 1)
}

func TestStatisticsGetMissing(t *testing.T) {
	b := attachTestBackend(t)
	stats, err := b.Statistics()
	require.NoError(t, err)

	_, err = stats.Get(404)
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestStatisticsInitIfNotExists(t *testing.T) {
	b := attachTestBackend(t)
	stats, err := b.Statistics()
	require.NoError(t, err)

	require.NoError(t, stats.InitIfNotExists(3))
	got, err := stats.Get(3)
	require.NoError(t, err)
	assert.Equal(t, int64(0), got.TotalTime)
	assert.Equal(t, int64(0), got.SessionCount)
	assert.Nil(t, got.LastPlayed)
	assert.Empty(t, got.Daily)

	// A second init does not clobber real data.
	lastPlayed := int64(5000)
	require.NoError(t, stats.Update(3, 120, 2, &lastPlayed, []types.DailyStat{
		{Date: "2024-06-01", Playtime: 120},
	}))
	require.NoError(t, stats.InitIfNotExists(3))
	got, err = stats.Get(3)
	require.NoError(t, err)
	assert.Equal(t, int64(120), got.TotalTime)
}

func TestStatisticsGetTodayPlaytime(t *testing.T) {
	b := attachTestBackend(t)
	stats, err := b.Statistics()
	require.NoError(t, err)

	require.NoError(t, stats.Update(1, 60, 1, nil, []types.DailyStat{
		{Date: "2024-06-01", Playtime: 60},
	}))

	// Recorded date answers with its playtime, any other date with zero,
	// and an unknown game with zero as well.
	got, err := stats.GetTodayPlaytime(1, "2024-06-01")
	require.NoError(t, err)
	assert.Equal(t, int64(60), got)

	got, err = stats.GetTodayPlaytime(1, "2024-06-02")
	require.NoError(t, err)
	assert.Equal(t, int64(0), got)

	got, err = stats.GetTodayPlaytime(999, "2024-06-01")
	require.NoError(t, err)
	assert.Equal(t, int64(0), got)
}

func TestStatisticsCorruptHistogram(t *testing.T) {
	b := attachTestBackend(t)
	stats, err := b.Statistics()
	require.NoError(t, err)

	_, err = b.db.Exec(
		"INSERT INTO game_statistics (game_id, total_time, session_count, last_played, daily_stats) VALUES (8, 60, 1, NULL, 'not json')",
	)
	require.NoError(t, err)

	_, err = stats.Get(8)
	assert.ErrorIs(t, err, types.ErrStatsCorrupt)

	_, err = stats.GetTodayPlaytime(8, "2024-06-01")
	assert.ErrorIs(t, err, types.ErrStatsCorrupt)
}

func TestStatisticsBatchAndAll(t *testing.T) {
	b := attachTestBackend(t)
	stats, err := b.Statistics()
	require.NoError(t, err)

	for id := int64(1); id <= 3; id++ {
		require.NoError(t, stats.Update(id, id*10, 1, nil, nil))
	}

	batch, err := stats.GetBatch([]int64{1, 3, 999})
	require.NoError(t, err)
	assert.Len(t, batch, 2)

	empty, err := stats.GetBatch(nil)
	require.NoError(t, err)
	assert.Empty(t, empty)

	all, err := stats.GetAll()
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestStatisticsDelete(t *testing.T) {
	b := attachTestBackend(t)
	stats, err := b.Statistics()
	require.NoError(t, err)

	require.NoError(t, stats.InitIfNotExists(4))
	require.NoError(t, stats.Delete(4))
	assert.ErrorIs(t, stats.Delete(4), types.ErrNotFound)
}

func TestParseDailyStats(t *testing.T) {
	daily, err := ParseDailyStats(`[{"date":"2024-06-01","playtime":60}]`)
	require.NoError(t, err)
	assert.Equal(t, []types.DailyStat{{Date: "2024-06-01", Playtime: 60}}, daily)

	daily, err = ParseDailyStats("null")
	require.NoError(t, err)
	assert.Empty(t, daily)

	_, err = ParseDailyStats("{broken")
	assert.ErrorIs(t, err, types.ErrStatsCorrupt)
}
