package translate

import (
	"context"
	"github.com/stretchr/testify/assert"
	"testing"
	"time"
)

func TestSleepDelay(t *testing.T) {
	start := time.Now()
	err := SleepDelay(5 * time.Millisecond)(context.Background())

	assert.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), 5*time.Millisecond)
}

func TestSleepDelay_Zero(t *testing.T) {
	assert.NoError(t, SleepDelay(0)(context.Background()))
}

func TestSleepDelay_Cancelled(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Millisecond)
	defer cancel()

	err := SleepDelay(time.Minute)(ctx)

	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
