package utils

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHealthSnapshotReportsEachRole(t *testing.T) {
	up := func(context.Context) error { return nil }
	down := func(context.Context) error { return errors.New("connection refused") }

	probes := HealthProbes{
		Mongo:         up,
		Cache:         up,
		Auth:          down,
		ReminderQueue: down,
	}

	status := probes.snapshot(context.Background())
	assert.True(t, status.Mongo)
	assert.True(t, status.CacheRedis)
	assert.False(t, status.AuthRedis)
	assert.False(t, status.ReminderQueue)
	assert.False(t, status.CheckedAt.IsZero())
}

func TestHealthSnapshotTreatsMissingProbeAsDown(t *testing.T) {
	status := HealthProbes{}.snapshot(context.Background())
	assert.False(t, status.Mongo)
	assert.False(t, status.CacheRedis)
	assert.False(t, status.AuthRedis)
	assert.False(t, status.ReminderQueue)
}
