package database

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/xavierca1/mini-crm/internal/entity"
	"github.com/xavierca1/mini-crm/internal/storage"
)

const leadsStorageKey = "@mini-crm/leads"

// DefaultLatency simula a ida ao banco remoto que o store local substitui.
const DefaultLatency = 250 * time.Millisecond

type leadStore struct {
	Leads []entity.Lead `json:"leads"`
}

// LeadRepository faz o CRUD de leads sobre a porta de armazenamento. O slot
// persistido pertence exclusivamente a ele; nenhum outro componente escreve ali.
type LeadRepository struct {
	mu      sync.Mutex
	store   storage.Store
	latency time.Duration
}

// NewLeadRepository cria o repositório. A latência é fixada na construção
// (DefaultLatency em produção, zero nos testes) e não é configurável por chamada.
func NewLeadRepository(store storage.Store, latency time.Duration) *LeadRepository {
	return &LeadRepository{store: store, latency: latency}
}

func (r *LeadRepository) wait(ctx context.Context) error {
	if r.latency <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(r.latency)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func (r *LeadRepository) load(ctx context.Context) leadStore {
	return storage.ReadJSON(ctx, r.store, leadsStorageKey, leadStore{Leads: SeedLeads()})
}

func (r *LeadRepository) save(ctx context.Context, s leadStore) error {
	if err := storage.WriteJSON(ctx, r.store, leadsStorageKey, s); err != nil {
		logrus.WithError(err).Error("lead_repository: falha ao persistir store")
		return err
	}
	return nil
}

// List retorna todos os leads ordenados por updatedAt decrescente.
func (r *LeadRepository) List(ctx context.Context) ([]entity.Lead, error) {
	if err := r.wait(ctx); err != nil {
		return nil, err
	}

	store := r.load(ctx)
	leads := make([]entity.Lead, len(store.Leads))
	copy(leads, store.Leads)

	sort.SliceStable(leads, func(i, j int) bool {
		return leads[i].UpdatedAt.After(leads[j].UpdatedAt)
	})
	return leads, nil
}

// FindByID devolve nil sem erro quando o id não existe; ausência não é falha.
func (r *LeadRepository) FindByID(ctx context.Context, id string) (*entity.Lead, error) {
	if err := r.wait(ctx); err != nil {
		return nil, err
	}

	store := r.load(ctx)
	for i := range store.Leads {
		if store.Leads[i].ID == id {
			lead := store.Leads[i]
			return &lead, nil
		}
	}
	return nil, nil
}

// Create gera id e timestamps, insere o lead no início da coleção e persiste.
func (r *LeadRepository) Create(ctx context.Context, input entity.LeadInput) (*entity.Lead, error) {
	if err := r.wait(ctx); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	lead := entity.Lead{
		ID:              uuid.New().String(),
		LegalName:       input.LegalName,
		TradeName:       input.TradeName,
		CNPJ:            input.CNPJ,
		CNAECode:        input.CNAECode,
		CNAEDescription: input.CNAEDescription,
		Email:           input.Email,
		Phone:           input.Phone,
		CEP:             input.CEP,
		Street:          input.Street,
		Number:          input.Number,
		Complement:      input.Complement,
		Neighborhood:    input.Neighborhood,
		City:            input.City,
		State:           input.State,
		Bank:            input.Bank,
		Score:           input.Score,
		Stage:           input.Stage,
		Notes:           input.Notes,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	store := r.load(ctx)
	store.Leads = append([]entity.Lead{lead}, store.Leads...)
	if err := r.save(ctx, store); err != nil {
		return nil, err
	}
	return &lead, nil
}

// Update aplica um merge parcial sobre o lead existente, preservando id,
// createdAt e a posição na coleção. Id desconhecido devolve ErrLeadNotFound.
func (r *LeadRepository) Update(ctx context.Context, id string, patch entity.LeadPatch) (*entity.Lead, error) {
	if err := r.wait(ctx); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	store := r.load(ctx)
	index := -1
	for i := range store.Leads {
		if store.Leads[i].ID == id {
			index = i
			break
		}
	}
	if index == -1 {
		return nil, entity.ErrLeadNotFound
	}

	lead := store.Leads[index]
	applyPatch(&lead, patch)
	lead.UpdatedAt = time.Now().UTC()

	store.Leads[index] = lead
	if err := r.save(ctx, store); err != nil {
		return nil, err
	}
	return &lead, nil
}

// Reset substitui o store inteiro pelo conjunto default e o retorna.
func (r *LeadRepository) Reset(ctx context.Context) ([]entity.Lead, error) {
	if err := r.wait(ctx); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	seed := SeedLeads()
	if err := r.save(ctx, leadStore{Leads: seed}); err != nil {
		return nil, err
	}
	return seed, nil
}

func applyPatch(lead *entity.Lead, patch entity.LeadPatch) {
	if patch.LegalName != nil {
		lead.LegalName = *patch.LegalName
	}
	if patch.TradeName != nil {
		lead.TradeName = *patch.TradeName
	}
	if patch.CNPJ != nil {
		lead.CNPJ = *patch.CNPJ
	}
	if patch.CNAECode != nil {
		lead.CNAECode = *patch.CNAECode
	}
	if patch.CNAEDescription != nil {
		lead.CNAEDescription = *patch.CNAEDescription
	}
	if patch.Email != nil {
		lead.Email = *patch.Email
	}
	if patch.Phone != nil {
		lead.Phone = *patch.Phone
	}
	if patch.CEP != nil {
		lead.CEP = *patch.CEP
	}
	if patch.Street != nil {
		lead.Street = *patch.Street
	}
	if patch.Number != nil {
		lead.Number = *patch.Number
	}
	if patch.Complement != nil {
		lead.Complement = *patch.Complement
	}
	if patch.Neighborhood != nil {
		lead.Neighborhood = *patch.Neighborhood
	}
	if patch.City != nil {
		lead.City = *patch.City
	}
	if patch.State != nil {
		lead.State = *patch.State
	}
	if patch.Bank != nil {
		lead.Bank = patch.Bank
	}
	if patch.Score != nil {
		lead.Score = *patch.Score
	}
	if patch.Stage != nil {
		lead.Stage = *patch.Stage
	}
	if patch.Notes != nil {
		lead.Notes = *patch.Notes
	}
}
