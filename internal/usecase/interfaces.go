package usecase

import (
	"context"

	"github.com/xavierca1/mini-crm/internal/entity"
	"github.com/xavierca1/mini-crm/internal/infra/queue"
)

// LeadEventPublisher publica eventos de ciclo de vida do lead. Opcional: os use
// cases tratam nil como "sem broker configurado".
type LeadEventPublisher interface {
	PublishLeadEvent(ctx context.Context, payload queue.LeadEventPayload) error
}

// LeadNotifier avisa o time quando um negócio é ganho. Também opcional.
type LeadNotifier interface {
	SendLeadWon(lead *entity.Lead) error
}
