package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeDaily(t *testing.T) {
	t.Run("appends a new date", func(t *testing.T) {
		daily := []DailyStat{{Date: "2024-01-01", Playtime: 60}}
		merged, err := MergeDaily(daily, "2024-01-02", 30)
		require.NoError(t, err)
		assert.Equal(t, []DailyStat{
			{Date: "2024-01-01", Playtime: 60},
			{Date: "2024-01-02", Playtime: 30},
		}, merged)
	})

	t.Run("increments an existing date", func(t *testing.T) {
		daily := []DailyStat{
			{Date: "2024-01-01", Playtime: 60},
			{Date: "2024-01-02", Playtime: 10},
		}
		merged, err := MergeDaily(daily, "2024-01-02", 50)
		require.NoError(t, err)
		assert.Equal(t, []DailyStat{
			{Date: "2024-01-01", Playtime: 60},
			{Date: "2024-01-02", Playtime: 60},
		}, merged)
	})

	t.Run("keeps at most one entry per date", func(t *testing.T) {
		merged, err := MergeDaily(nil, "2024-01-01", 10)
		require.NoError(t, err)
		merged, err = MergeDaily(merged, "2024-01-01", 10)
		require.NoError(t, err)
		assert.Len(t, merged, 1)
		assert.Equal(t, int64(20), merged[0].Playtime)
	})

	t.Run("does not mutate the input", func(t *testing.T) {
		daily := []DailyStat{{Date: "2024-01-01", Playtime: 60}}
		_, err := MergeDaily(daily, "2024-01-01", 40)
		require.NoError(t, err)
		assert.Equal(t, int64(60), daily[0].Playtime)
	})

	t.Run("rejects negative seconds", func(t *testing.T) {
		_, err := MergeDaily(nil, "2024-01-01", -1)
		assert.ErrorIs(t, err, ErrNegativeDuration)
	})

	t.Run("total grows by exactly the merged seconds", func(t *testing.T) {
		daily := []DailyStat{
			{Date: "2024-01-01", Playtime: 100},
			{Date: "2024-01-02", Playtime: 200},
		}
		before := TotalPlaytime(daily)
		merged, err := MergeDaily(daily, "2024-01-03", 77)
		require.NoError(t, err)
		assert.Equal(t, before+77, TotalPlaytime(merged))
	})
}

func TestTotalPlaytime(t *testing.T) {
	assert.Equal(t, int64(0), TotalPlaytime(nil))
	assert.Equal(t, int64(90), TotalPlaytime([]DailyStat{
		{Date: "2024-01-01", Playtime: 60},
		{Date: "2024-01-02", Playtime: 30},
	}))
}

func TestSettingsOverrides(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  string
	}{
		{name: "blank is absent", value: "", want: ""},
		{name: "whitespace-only is absent", value: "   \t", want: ""},
		{name: "path passes through trimmed", value: "  /mnt/saves ", want: "/mnt/saves"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Settings{DBBackupPath: tt.value, SaveRootPath: tt.value}
			assert.Equal(t, tt.want, s.DBBackupOverride())
			assert.Equal(t, tt.want, s.SaveRootOverride())
		})
	}
}
