package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mtamigo/focus/internal/domain"
	"github.com/mtamigo/focus/internal/testutil"
)

// stubConfigLoader returns a fixed config.
type stubConfigLoader struct {
	cfg *domain.Config
}

func (s *stubConfigLoader) Load() (*domain.Config, error) {
	if s.cfg != nil {
		return s.cfg, nil
	}
	return domain.NewDefaultConfig(), nil
}

func TestSetCapacity_Execute(t *testing.T) {
	repo := testutil.NewMockCapacityRepository()
	uc := NewSetCapacity(repo, testutil.NopLogger{})

	out, err := uc.Execute(context.Background(), SetCapacityInput{
		Kind:  domain.Weekday,
		Start: "19:00",
		End:   "23:00",
	})
	require.NoError(t, err)
	assert.Empty(t, out.Warning)
	assert.Equal(t, 240, out.Capacity.TotalMinutes)

	stored := repo.Overrides[domain.Weekday]
	require.NotNil(t, stored)
	assert.Equal(t, 19*60, stored.Start)
	assert.Equal(t, 23*60, stored.End)
}

func TestSetCapacity_Execute_InconsistentTotalStoredWithWarning(t *testing.T) {
	repo := testutil.NewMockCapacityRepository()
	uc := NewSetCapacity(repo, testutil.NopLogger{})

	out, err := uc.Execute(context.Background(), SetCapacityInput{
		Kind:         domain.Weekend,
		Start:        "09:00",
		End:          "15:00",
		TotalMinutes: 300, // window spans 360
	})
	require.NoError(t, err)
	assert.NotEmpty(t, out.Warning)

	// The advertised total is stored as given, not corrected.
	stored := repo.Overrides[domain.Weekend]
	require.NotNil(t, stored)
	assert.Equal(t, 300, stored.TotalMinutes)
}

func TestSetCapacity_Execute_Validation(t *testing.T) {
	uc := NewSetCapacity(testutil.NewMockCapacityRepository(), testutil.NopLogger{})

	_, err := uc.Execute(context.Background(), SetCapacityInput{Kind: "holiday", Start: "09:00", End: "10:00"})
	require.Error(t, err)

	_, err = uc.Execute(context.Background(), SetCapacityInput{Kind: domain.Weekday, Start: "25:00", End: "10:00"})
	assert.ErrorIs(t, err, domain.ErrInvalidClock)

	_, err = uc.Execute(context.Background(), SetCapacityInput{Kind: domain.Weekday, Start: "10:00", End: "09:00"})
	require.Error(t, err)
}

func TestShowCapacity_Execute(t *testing.T) {
	repo := testutil.NewMockCapacityRepository()
	override := domain.TimeCapacity{Start: 20 * 60, End: 23 * 60, TotalMinutes: 180}
	repo.Overrides[domain.Weekday] = &override

	uc := NewShowCapacity(repo, &stubConfigLoader{})
	out, err := uc.Execute(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "override", out.Weekday.Source)
	assert.Equal(t, override, out.Weekday.Capacity)

	assert.Equal(t, "default", out.Weekend.Source)
	assert.Equal(t, domain.DefaultCapacity(domain.Weekend), out.Weekend.Capacity)
}

func TestShowCapacity_Execute_ConfigSource(t *testing.T) {
	cfg := domain.NewDefaultConfig()
	cfg.Weekday = domain.TimeCapacity{Start: 17 * 60, End: 21 * 60, TotalMinutes: 240}

	uc := NewShowCapacity(testutil.NewMockCapacityRepository(), &stubConfigLoader{cfg: cfg})
	out, err := uc.Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "config", out.Weekday.Source)
	assert.Equal(t, cfg.Weekday, out.Weekday.Capacity)
}
