package usecase

import (
	"context"
	"strings"

	"github.com/xavierca1/mini-crm/internal/entity"
	"github.com/xavierca1/mini-crm/internal/infra/queue"
)

type UpdateLeadUseCase struct {
	Repo     entity.LeadRepositoryInterface
	Events   LeadEventPublisher
	Notifier LeadNotifier
}

func NewUpdateLeadUseCase(repo entity.LeadRepositoryInterface, events LeadEventPublisher, notifier LeadNotifier) *UpdateLeadUseCase {
	return &UpdateLeadUseCase{Repo: repo, Events: events, Notifier: notifier}
}

func (uc *UpdateLeadUseCase) Execute(ctx context.Context, id string, patch entity.LeadPatch) (*entity.Lead, error) {
	normalizeLeadPatch(&patch)

	if validationErrors := ValidateLeadPatch(patch); len(validationErrors) > 0 {
		return nil, &DomainError{
			Code:    "VALIDATION_ERROR",
			Message: joinValidationErrors(validationErrors),
		}
	}

	prior, err := uc.Repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if prior == nil {
		return nil, entity.ErrLeadNotFound
	}

	lead, err := uc.Repo.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}

	publishLeadEvent(ctx, uc.Events, queue.EventLeadUpdated, lead)
	if prior.Stage != entity.StageWon && lead.Stage == entity.StageWon {
		publishLeadEvent(ctx, uc.Events, queue.EventLeadWon, lead)
		notifyLeadWon(uc.Notifier, lead)
	}

	return lead, nil
}

func normalizeLeadPatch(patch *entity.LeadPatch) {
	if patch.CNPJ != nil {
		cleaned := OnlyDigits(*patch.CNPJ)
		patch.CNPJ = &cleaned
	}
	if patch.CEP != nil && *patch.CEP != "" {
		cleaned := OnlyDigits(*patch.CEP)
		patch.CEP = &cleaned
	}
	if patch.State != nil {
		upper := strings.ToUpper(strings.TrimSpace(*patch.State))
		patch.State = &upper
	}
}
