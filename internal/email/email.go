package email

import (
	"context"
	"fmt"

	"github.com/rkhan0192/sapienscare/internal/kafka"
)

type Sender struct{}

func NewSender() *Sender {
	return &Sender{}
}

func (s *Sender) Send(ctx context.Context, event kafka.OrderEvent) error {
	fmt.Printf("send email to %s about %s for order %s (%s x%d)\n", event.Email, event.Type, event.OrderID, event.ProductName, event.Quantity)
	return nil
}
