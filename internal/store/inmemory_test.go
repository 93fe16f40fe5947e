package store

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemory_GetSet(t *testing.T) {
	ctx := context.Background()
	s := NewInMemory()

	_, err := s.Get(ctx, KeyWaterIntake)
	require.ErrorIs(t, err, ErrKeyNotFound)

	require.NoError(t, s.Set(ctx, KeyWaterIntake, `{"date":"2024-01-02","glasses":5}`))

	value, err := s.Get(ctx, KeyWaterIntake)
	require.NoError(t, err)
	assert.Equal(t, `{"date":"2024-01-02","glasses":5}`, value)

	require.NoError(t, s.Set(ctx, KeyWaterIntake, `{"date":"2024-01-03","glasses":0}`))
	value, err = s.Get(ctx, KeyWaterIntake)
	require.NoError(t, err)
	assert.Equal(t, `{"date":"2024-01-03","glasses":0}`, value)
}

func TestInMemory_injectedErrors(t *testing.T) {
	ctx := context.Background()
	s := NewInMemory()

	s.GetErr = errors.New("store broken")
	s.SetErr = errors.New("store broken")

	_, err := s.Get(ctx, KeyWaterGoal)
	assert.EqualError(t, err, "store broken")
	assert.EqualError(t, s.Set(ctx, KeyWaterGoal, "8"), "store broken")
}
