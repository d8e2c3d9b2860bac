package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/xavierca1/mini-crm/internal/entity"
	"github.com/xavierca1/mini-crm/internal/infra/queue"
)

type CreateLeadUseCase struct {
	Repo     entity.LeadRepositoryInterface
	Events   LeadEventPublisher
	Notifier LeadNotifier
}

func NewCreateLeadUseCase(repo entity.LeadRepositoryInterface, events LeadEventPublisher, notifier LeadNotifier) *CreateLeadUseCase {
	return &CreateLeadUseCase{Repo: repo, Events: events, Notifier: notifier}
}

func (uc *CreateLeadUseCase) Execute(ctx context.Context, input entity.LeadInput) (*entity.Lead, error) {
	NormalizeLeadInput(&input)

	if validationErrors := ValidateLeadInput(input); len(validationErrors) > 0 {
		return nil, &DomainError{
			Code:    "VALIDATION_ERROR",
			Message: joinValidationErrors(validationErrors),
		}
	}

	lead, err := uc.Repo.Create(ctx, input)
	if err != nil {
		return nil, err
	}

	publishLeadEvent(ctx, uc.Events, queue.EventLeadCreated, lead)
	if lead.Stage == entity.StageWon {
		publishLeadEvent(ctx, uc.Events, queue.EventLeadWon, lead)
		notifyLeadWon(uc.Notifier, lead)
	}

	return lead, nil
}

func joinValidationErrors(errors []ValidationError) string {
	parts := make([]string, len(errors))
	for i, e := range errors {
		parts[i] = e.Field + " (" + e.Message + ")"
	}
	return "validação falhou: " + strings.Join(parts, ", ")
}

// publishLeadEvent e notifyLeadWon são best-effort: falha de broker ou SMTP
// nunca derruba a mutação que já foi persistida.
func publishLeadEvent(ctx context.Context, events LeadEventPublisher, event string, lead *entity.Lead) {
	if events == nil {
		return
	}

	payload := queue.LeadEventPayload{
		Event:      event,
		LeadID:     lead.ID,
		LegalName:  lead.LegalName,
		Stage:      string(lead.Stage),
		Score:      lead.Score,
		City:       lead.City,
		State:      lead.State,
		OccurredAt: time.Now().UTC(),
	}
	if err := events.PublishLeadEvent(ctx, payload); err != nil {
		logrus.WithError(err).WithField("event", event).Error("falha ao publicar evento de lead")
	}
}

func notifyLeadWon(notifier LeadNotifier, lead *entity.Lead) {
	if notifier == nil {
		return
	}
	if err := notifier.SendLeadWon(lead); err != nil {
		logrus.WithError(err).WithField("lead_id", lead.ID).Error("falha ao enviar notificação de negócio ganho")
	}
}
