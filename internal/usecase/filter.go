package usecase

import (
	"strings"

	"github.com/xavierca1/mini-crm/internal/entity"
)

// StageAll é o valor sentinela que desliga o filtro por fase.
const StageAll = "all"

type LeadFilters struct {
	Stage  string
	Search string
}

func (f LeadFilters) empty() bool {
	return (f.Stage == "" || f.Stage == StageAll) && strings.TrimSpace(f.Search) == ""
}

// FilterLeads reduz a coleção pelos critérios de fase e busca livre. Os dois
// filtros são conjuntivos; sem critérios a entrada volta intacta, na mesma ordem.
func FilterLeads(leads []entity.Lead, filters LeadFilters) []entity.Lead {
	if filters.empty() {
		return leads
	}

	term := strings.ToLower(strings.TrimSpace(filters.Search))
	byStage := filters.Stage != "" && filters.Stage != StageAll

	filtered := make([]entity.Lead, 0, len(leads))
	for _, lead := range leads {
		if byStage && string(lead.Stage) != filters.Stage {
			continue
		}
		if term != "" && !matchesSearch(lead, term) {
			continue
		}
		filtered = append(filtered, lead)
	}
	return filtered
}

// matchesSearch procura o termo como substring, sem diferenciar maiúsculas, nos
// campos pesquisáveis: razão social, nome fantasia, CNPJ, cidade, UF e CNAE.
func matchesSearch(lead entity.Lead, term string) bool {
	fields := []string{
		lead.LegalName,
		lead.TradeName,
		lead.CNPJ,
		lead.City,
		lead.State,
		lead.CNAECode,
	}
	for _, field := range fields {
		if field == "" {
			continue
		}
		if strings.Contains(strings.ToLower(field), term) {
			return true
		}
	}
	return false
}
