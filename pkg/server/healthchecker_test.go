package server

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHealthCheckers(t *testing.T) {
	ctx := context.Background()

	assert.True(t, NewOkHealthChecker().Healthy(ctx))

	var hc HealthChecker = HealthCheckerFunc(func(ctx context.Context) bool { return false })
	assert.False(t, hc.Healthy(ctx))
}
