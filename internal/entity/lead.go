package entity

import (
	"context"
	"errors"
	"sort"
	"time"
)

// LeadStage identifica a fase do lead no funil de vendas.
type LeadStage string

const (
	StageNew       LeadStage = "new"
	StageContacted LeadStage = "contacted"
	StageQualified LeadStage = "qualified"
	StageProposal  LeadStage = "proposal"
	StageWon       LeadStage = "won"
)

type StageInfo struct {
	Label         string `json:"label"`
	Description   string `json:"description"`
	BadgeVariant  string `json:"badgeVariant"`
	PipelineOrder int    `json:"pipelineOrder"`
}

// LeadStages define rótulo, descrição e ordem fixa de cada fase do funil.
var LeadStages = map[LeadStage]StageInfo{
	StageNew: {
		Label:         "Novo",
		Description:   "Leads recém-importados aguardando primeiro contato.",
		BadgeVariant:  "neutral",
		PipelineOrder: 0,
	},
	StageContacted: {
		Label:         "Contato Feito",
		Description:   "Já receberam contato inicial.",
		BadgeVariant:  "info",
		PipelineOrder: 1,
	},
	StageQualified: {
		Label:         "Qualificado",
		Description:   "Problema mapeado e interesse confirmado.",
		BadgeVariant:  "success",
		PipelineOrder: 2,
	},
	StageProposal: {
		Label:         "Proposta",
		Description:   "Proposta enviada e negociação ativa.",
		BadgeVariant:  "warning",
		PipelineOrder: 3,
	},
	StageWon: {
		Label:         "Ganho",
		Description:   "Negócio fechado com sucesso.",
		BadgeVariant:  "secondary",
		PipelineOrder: 4,
	},
}

func (s LeadStage) Valid() bool {
	_, ok := LeadStages[s]
	return ok
}

// StagesInOrder retorna as fases em ordem crescente de pipelineOrder.
func StagesInOrder() []LeadStage {
	stages := make([]LeadStage, 0, len(LeadStages))
	for stage := range LeadStages {
		stages = append(stages, stage)
	}
	sort.Slice(stages, func(i, j int) bool {
		return LeadStages[stages[i]].PipelineOrder < LeadStages[stages[j]].PipelineOrder
	})
	return stages
}

type BankRef struct {
	Code int    `json:"code"`
	Name string `json:"name"`
}

type Lead struct {
	ID              string    `json:"id"`
	LegalName       string    `json:"legalName"`
	TradeName       string    `json:"tradeName,omitempty"`
	CNPJ            string    `json:"cnpj"`
	CNAECode        string    `json:"cnaeCode,omitempty"`
	CNAEDescription string    `json:"cnaeDescription,omitempty"`
	Email           string    `json:"email,omitempty"`
	Phone           string    `json:"phone,omitempty"`
	CEP             string    `json:"cep,omitempty"`
	Street          string    `json:"street,omitempty"`
	Number          string    `json:"number,omitempty"`
	Complement      string    `json:"complement,omitempty"`
	Neighborhood    string    `json:"neighborhood,omitempty"`
	City            string    `json:"city"`
	State           string    `json:"state"`
	Bank            *BankRef  `json:"bank,omitempty"`
	Score           int       `json:"score"`
	Stage           LeadStage `json:"stage"`
	Notes           string    `json:"notes,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// LeadInput é um Lead sem os campos controlados pelo repositório (id e timestamps).
type LeadInput struct {
	LegalName       string    `json:"legalName" validate:"required,min=2,max=200"`
	TradeName       string    `json:"tradeName,omitempty"`
	CNPJ            string    `json:"cnpj" validate:"required,cnpj"`
	CNAECode        string    `json:"cnaeCode,omitempty"`
	CNAEDescription string    `json:"cnaeDescription,omitempty"`
	Email           string    `json:"email,omitempty" validate:"omitempty,email"`
	Phone           string    `json:"phone,omitempty"`
	CEP             string    `json:"cep,omitempty" validate:"omitempty,cep"`
	Street          string    `json:"street,omitempty"`
	Number          string    `json:"number,omitempty"`
	Complement      string    `json:"complement,omitempty"`
	Neighborhood    string    `json:"neighborhood,omitempty"`
	City            string    `json:"city" validate:"required"`
	State           string    `json:"state" validate:"required,len=2"`
	Bank            *BankRef  `json:"bank,omitempty"`
	Score           int       `json:"score" validate:"min=0,max=100"`
	Stage           LeadStage `json:"stage" validate:"required,stage"`
	Notes           string    `json:"notes,omitempty"`
}

// LeadPatch é uma atualização parcial: campo nil significa "manter o valor atual".
type LeadPatch struct {
	LegalName       *string    `json:"legalName,omitempty"`
	TradeName       *string    `json:"tradeName,omitempty"`
	CNPJ            *string    `json:"cnpj,omitempty"`
	CNAECode        *string    `json:"cnaeCode,omitempty"`
	CNAEDescription *string    `json:"cnaeDescription,omitempty"`
	Email           *string    `json:"email,omitempty"`
	Phone           *string    `json:"phone,omitempty"`
	CEP             *string    `json:"cep,omitempty"`
	Street          *string    `json:"street,omitempty"`
	Number          *string    `json:"number,omitempty"`
	Complement      *string    `json:"complement,omitempty"`
	Neighborhood    *string    `json:"neighborhood,omitempty"`
	City            *string    `json:"city,omitempty"`
	State           *string    `json:"state,omitempty"`
	Bank            *BankRef   `json:"bank,omitempty"`
	Score           *int       `json:"score,omitempty"`
	Stage           *LeadStage `json:"stage,omitempty"`
	Notes           *string    `json:"notes,omitempty"`
}

var ErrLeadNotFound = errors.New("lead não encontrado")

type LeadRepositoryInterface interface {
	List(ctx context.Context) ([]Lead, error)
	FindByID(ctx context.Context, id string) (*Lead, error)
	Create(ctx context.Context, input LeadInput) (*Lead, error)
	Update(ctx context.Context, id string, patch LeadPatch) (*Lead, error)
	Reset(ctx context.Context) ([]Lead, error)
}
