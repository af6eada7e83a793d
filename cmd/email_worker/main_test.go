package main

import (
	"testing"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
)

func TestShouldRequeue(t *testing.T) {
	// A first failure gets one retry.
	assert.True(t, shouldRequeue(amqp.Delivery{Redelivered: false}))

	// A redelivered message has already had its retry; drop it.
	assert.False(t, shouldRequeue(amqp.Delivery{Redelivered: true}))
}
