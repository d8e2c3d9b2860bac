package usecase

import (
	"math"
	"sort"
	"time"

	"github.com/xavierca1/mini-crm/internal/entity"
)

// ConversionTarget é a meta fixa de negócios ganhos usada na barra de conversão.
const ConversionTarget = 20

type PipelineColumn struct {
	Stage       entity.LeadStage `json:"stage"`
	Label       string           `json:"label"`
	Description string           `json:"description"`
	Leads       []entity.Lead    `json:"leads"`
}

type Summary struct {
	TotalActive     int `json:"totalActive"`
	InProposal      int `json:"inProposal"`
	Qualified       int `json:"qualified"`
	WonCurrentMonth int `json:"wonCurrentMonth"`
}

type CityDistribution struct {
	City  string `json:"city"`
	State string `json:"state"`
	Total int    `json:"total"`
}

type Conversion struct {
	Target     int `json:"target"`
	Won        int `json:"won"`
	Percentage int `json:"percentage"`
}

// BuildPipelineColumns particiona os leads em uma coluna por fase, na ordem do
// funil. Dentro de cada coluna o sort por score é estável: empates preservam a
// ordem relativa original.
func BuildPipelineColumns(leads []entity.Lead) []PipelineColumn {
	columns := make([]PipelineColumn, 0, len(entity.LeadStages))
	for _, stage := range entity.StagesInOrder() {
		info := entity.LeadStages[stage]

		var stageLeads []entity.Lead
		for _, lead := range leads {
			if lead.Stage == stage {
				stageLeads = append(stageLeads, lead)
			}
		}
		sort.SliceStable(stageLeads, func(i, j int) bool {
			return stageLeads[i].Score > stageLeads[j].Score
		})

		columns = append(columns, PipelineColumn{
			Stage:       stage,
			Label:       info.Label,
			Description: info.Description,
			Leads:       stageLeads,
		})
	}
	return columns
}

// BuildSummary produz os cards do dashboard. wonCurrentMonth compara o
// updatedAt de cada lead ganho com o mês e ano civis de now.
func BuildSummary(leads []entity.Lead, now time.Time) Summary {
	summary := Summary{TotalActive: len(leads)}
	for _, lead := range leads {
		switch lead.Stage {
		case entity.StageProposal:
			summary.InProposal++
		case entity.StageQualified:
			summary.Qualified++
		case entity.StageWon:
			updated := lead.UpdatedAt
			if updated.Month() == now.Month() && updated.Year() == now.Year() {
				summary.WonCurrentMonth++
			}
		}
	}
	return summary
}

// DistributionByCity agrupa por (cidade, UF) e ordena por total decrescente.
// Empate desempata por nome de cidade, só para manter a saída determinística.
func DistributionByCity(leads []entity.Lead) []CityDistribution {
	type cityKey struct {
		city  string
		state string
	}

	totals := map[cityKey]int{}
	for _, lead := range leads {
		totals[cityKey{lead.City, lead.State}]++
	}

	groups := make([]CityDistribution, 0, len(totals))
	for key, total := range totals {
		groups = append(groups, CityDistribution{City: key.city, State: key.state, Total: total})
	}
	sort.Slice(groups, func(i, j int) bool {
		if groups[i].Total != groups[j].Total {
			return groups[i].Total > groups[j].Total
		}
		return groups[i].City < groups[j].City
	})
	return groups
}

// ConversionProgress mede o avanço até a meta; o percentual satura em 100.
func ConversionProgress(leads []entity.Lead) Conversion {
	won := 0
	for _, lead := range leads {
		if lead.Stage == entity.StageWon {
			won++
		}
	}

	percentage := int(math.Round(float64(won) / float64(ConversionTarget) * 100))
	if percentage > 100 {
		percentage = 100
	}

	return Conversion{Target: ConversionTarget, Won: won, Percentage: percentage}
}
