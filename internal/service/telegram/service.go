package service

import (
	"context"
	"fmt"

	converter "github.com/you-humble/frio-catalog/internal/converter/telegram"
	"github.com/you-humble/frio-catalog/internal/model"
)

type MessageSender interface {
	SendMessage(ctx context.Context, chatID int64, text string) error
}

type service struct {
	client MessageSender
	chatID int64
}

func NewTgService(client MessageSender, chatID int64) *service {
	return &service{client: client, chatID: chatID}
}

func (svc *service) NotifyOrderCreated(ctx context.Context, event model.OrderCreated) error {
	msg, err := converter.BuildOrderCreated(event)
	if err != nil {
		return fmt.Errorf("build order created message: %w", err)
	}

	if err := svc.client.SendMessage(ctx, svc.chatID, msg); err != nil {
		return fmt.Errorf("send telegram message: %w", err)
	}

	return nil
}
