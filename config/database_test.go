package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithCustomTimeout(t *testing.T) {
	ctx, cancel := WithCustomTimeout(15 * time.Second)
	defer cancel()

	deadline, ok := ctx.Deadline()
	require.True(t, ok)
	assert.WithinDuration(t, time.Now().Add(15*time.Second), deadline, time.Second)
}

func TestWithTimeout(t *testing.T) {
	ctx, cancel := WithTimeout()
	defer cancel()

	deadline, ok := ctx.Deadline()
	require.True(t, ok)
	assert.WithinDuration(t, time.Now().Add(10*time.Second), deadline, time.Second)
}
