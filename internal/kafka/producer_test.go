package kafka

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProducer_CheckConnection_NoBrokers(t *testing.T) {
	p := NewProducer(nil)
	defer p.Close()

	partitions, err := p.CheckConnection(context.Background())

	assert.Zero(t, partitions)
	assert.EqualError(t, err, "no Kafka brokers configured")
}

func TestProducer_CheckConnection_Unreachable(t *testing.T) {
	p := NewProducer([]string{"127.0.0.1:1"})
	defer p.Close()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	partitions, err := p.CheckConnection(ctx)

	require.Error(t, err)
	assert.Zero(t, partitions)
	assert.Contains(t, err.Error(), "failed to connect to Kafka")
}
