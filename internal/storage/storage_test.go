package storage

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestConnect_GivesUpAfterRetries(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)

	// nothing listens on port 1
	db, err := Connect(context.Background(),
		"host=127.0.0.1 port=1 user=u password=p dbname=d sslmode=disable connect_timeout=1",
		Retry{Attempts: 2, Delay: time.Millisecond},
		zap.New(core),
	)

	assert.Nil(t, db)
	assert.ErrorContains(t, err, "after 2 attempts")
	assert.Equal(t, 2, logs.FilterMessage("Database not ready").Len())
}

func TestConnect_StopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	db, err := Connect(ctx,
		"host=127.0.0.1 port=1 user=u password=p dbname=d sslmode=disable connect_timeout=1",
		Retry{Attempts: 5, Delay: time.Hour},
		zap.NewNop(),
	)

	assert.Nil(t, db)
	assert.ErrorIs(t, err, context.Canceled)
}
