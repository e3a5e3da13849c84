package memory

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/accountkit/user-service/internal/application/account"
)

// NoopPublisher stands in for RabbitMQ when no broker is configured.
type NoopPublisher struct{}

func NewNoopPublisher() *NoopPublisher { return &NoopPublisher{} }

func (p *NoopPublisher) PublishUserRegistered(ctx context.Context, evt account.UserRegisteredEvent) error {
	log.Debug().Str("user_id", evt.UserID).Str("email", evt.Email).Msg("noop publish user_registered")
	return nil
}

func (p *NoopPublisher) PublishUserDeleted(ctx context.Context, evt account.UserDeletedEvent) error {
	log.Debug().Str("user_id", evt.UserID).Str("email", evt.Email).Msg("noop publish user_deleted")
	return nil
}
