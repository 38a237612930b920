package repository

import (
	"context"
	"testing"

	"github.com/lk16/reversi/internal/models"
	"github.com/lk16/reversi/internal/services"
	"github.com/stretchr/testify/require"
)

func TestGameRepositoryDisabled(t *testing.T) {
	ctx := context.Background()

	for _, repo := range []*GameRepository{
		NewGameRepositoryFromServices(nil),
		NewGameRepositoryFromServices(&services.Services{}),
	} {
		require.False(t, repo.Enabled())

		require.ErrorIs(t, repo.CreateSchema(ctx), ErrStorageDisabled)

		_, err := repo.SaveGame(ctx, models.GameRecord{})
		require.ErrorIs(t, err, ErrStorageDisabled)

		_, err = repo.GetGame(ctx, "6f1c1f5e-2f0c-4c55-9a39-6f0f3f6d4f3a")
		require.ErrorIs(t, err, ErrStorageDisabled)

		_, err = repo.ListGames(ctx, 10)
		require.ErrorIs(t, err, ErrStorageDisabled)

		_, err = repo.GetGameStats(ctx)
		require.ErrorIs(t, err, ErrStorageDisabled)
	}
}

func TestParseGameStats(t *testing.T) {
	tests := []struct {
		name    string
		counts  map[string]string
		wantErr bool
		want    []models.GameStats
	}{
		{
			name: "valid",
			counts: map[string]string{
				gameStatsField(3, 1, "black"): "7",
				gameStatsField(1, 3, "white"): "5",
				gameStatsField(1, 3, "draw"):  "1",
			},
			want: []models.GameStats{
				{BlackDepth: 1, WhiteDepth: 3, Winner: "draw", Count: 1},
				{BlackDepth: 1, WhiteDepth: 3, Winner: "white", Count: 5},
				{BlackDepth: 3, WhiteDepth: 1, Winner: "black", Count: 7},
			},
		},
		{
			name:   "empty",
			counts: map[string]string{},
			want:   []models.GameStats{},
		},
		{
			name:    "invalid field",
			counts:  map[string]string{"1:2": "1"},
			wantErr: true,
		},
		{
			name:    "invalid depth",
			counts:  map[string]string{"x:2:black": "1"},
			wantErr: true,
		},
		{
			name:    "invalid count",
			counts:  map[string]string{"1:2:black": "many"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stats, err := parseGameStats(tt.counts)
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			require.Equal(t, tt.want, stats)
		})
	}
}

func TestClampListLimit(t *testing.T) {
	require.Equal(t, defaultListLimit, clampListLimit(0))
	require.Equal(t, defaultListLimit, clampListLimit(-5))
	require.Equal(t, 7, clampListLimit(7))
	require.Equal(t, maxListLimit, clampListLimit(1000))
}
