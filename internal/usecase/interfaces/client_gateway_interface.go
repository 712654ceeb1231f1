package interfaces

import (
	"context"

	"budget_service/internal/domain/entities"
)

// IClientGateway reads the client registry.
type IClientGateway interface {
	ClientExists(ctx context.Context, clientID string) (bool, error)
	FindClient(ctx context.Context, clientID string) (entities.Client, error)
}
