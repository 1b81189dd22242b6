package mq

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type publishCall struct {
	exchange string
	key      string
	msg      amqp.Publishing
}

type fakeChannel struct {
	calls  []publishCall
	err    error
	closed bool
}

func (f *fakeChannel) PublishWithContext(_ context.Context, exchange, key string, _, _ bool, msg amqp.Publishing) error {
	if f.err != nil {
		return f.err
	}
	f.calls = append(f.calls, publishCall{exchange: exchange, key: key, msg: msg})
	return nil
}

func (f *fakeChannel) Close() error {
	f.closed = true
	return nil
}

func TestPublisher_Publish(t *testing.T) {
	ch := &fakeChannel{}
	p := &Publisher{channel: ch, exchange: "bookstock.events", logger: zap.NewNop()}

	err := p.Publish(context.Background(), "leftover.recorded", map[string]int{"book_id": 7, "quantity": 3})
	require.NoError(t, err)

	require.Len(t, ch.calls, 1)
	call := ch.calls[0]
	assert.Equal(t, "bookstock.events", call.exchange)
	assert.Equal(t, "leftover.recorded", call.key)
	assert.Equal(t, "application/json", call.msg.ContentType)
	assert.Equal(t, amqp.Persistent, call.msg.DeliveryMode)

	var body map[string]int
	require.NoError(t, json.Unmarshal(call.msg.Body, &body))
	assert.Equal(t, 7, body["book_id"])
}

func TestPublisher_PublishError(t *testing.T) {
	ch := &fakeChannel{err: errors.New("channel closed")}
	p := &Publisher{channel: ch, exchange: "x", logger: zap.NewNop()}

	err := p.Publish(context.Background(), "leftover.recorded", struct{}{})
	assert.ErrorContains(t, err, "channel closed")
}

func TestPublisher_MarshalError(t *testing.T) {
	ch := &fakeChannel{}
	p := &Publisher{channel: ch, exchange: "x", logger: zap.NewNop()}

	err := p.Publish(context.Background(), "k", make(chan int))
	assert.Error(t, err)
	assert.Empty(t, ch.calls)
}

func TestPublisher_Close(t *testing.T) {
	ch := &fakeChannel{}
	p := &Publisher{channel: ch, logger: zap.NewNop()}
	require.NoError(t, p.Close())
	assert.True(t, ch.closed)
}
