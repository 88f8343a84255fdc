package gateway

import (
	nsqpkg "github.com/staffloop/identity/internal/pkg/nsq"
)

// NotifierGW publishes outbound code deliveries to the notification
// workers over NSQ.
type NotifierGW struct {
	producer *nsqpkg.Producer
}

// NewNotifierGW creates a new notifier gateway instance
func NewNotifierGW(producer *nsqpkg.Producer) *NotifierGW {
	return &NotifierGW{producer: producer}
}
