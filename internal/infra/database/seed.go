package database

import (
	"time"

	"github.com/xavierca1/mini-crm/internal/entity"
)

var seedLeads = []entity.Lead{
	{
		ID:              "lead-alpha-tech",
		LegalName:       "Alpha Tecnologia LTDA",
		TradeName:       "Alpha Tech",
		CNPJ:            "12345678000190",
		CNAECode:        "6201-5/01",
		CNAEDescription: "Desenvolvimento de programas de computador sob encomenda",
		Email:           "contato@alphatech.com.br",
		Phone:           "11 4002-8922",
		CEP:             "01001000",
		Street:          "Av. Paulista",
		Number:          "1000",
		Neighborhood:    "Bela Vista",
		City:            "Sao Paulo",
		State:           "SP",
		Score:           78,
		Stage:           entity.StageQualified,
		Notes:           "Proposta tecnica revisada e aguardando retorno do decisor.",
		CreatedAt:       time.Date(2024, time.September, 12, 10, 0, 0, 0, time.UTC),
		UpdatedAt:       time.Date(2024, time.October, 1, 14, 30, 0, 0, time.UTC),
	},
	{
		ID:              "lead-beta-foods",
		LegalName:       "Beta Industria de Alimentos S.A.",
		TradeName:       "Beta Foods",
		CNPJ:            "45987321000112",
		CNAECode:        "1031-7/00",
		CNAEDescription: "Beneficiamento de produtos alimenticios",
		Email:           "compras@betafoods.com",
		Phone:           "51 3030-7070",
		CEP:             "90035972",
		Street:          "Rua dos Andradas",
		Number:          "1550",
		Neighborhood:    "Centro Historico",
		City:            "Porto Alegre",
		State:           "RS",
		Score:           63,
		Stage:           entity.StageProposal,
		Notes:           "Proposta comercial enviada. Reuniao de follow-up agendada.",
		CreatedAt:       time.Date(2024, time.October, 5, 18, 45, 0, 0, time.UTC),
		UpdatedAt:       time.Date(2024, time.October, 10, 12, 0, 0, 0, time.UTC),
	},
	{
		ID:              "lead-gammalog",
		LegalName:       "Gamma Logistica ME",
		TradeName:       "GammaLog",
		CNPJ:            "07654321000155",
		CNAECode:        "4930-2/02",
		CNAEDescription: "Transporte rodoviario de cargas intermunicipal",
		Email:           "logistica@gammalog.com",
		Phone:           "96 3245-8899",
		CEP:             "68900089",
		Street:          "Av. FAB",
		Number:          "210",
		Neighborhood:    "Centro",
		City:            "Macapa",
		State:           "AP",
		Score:           85,
		Stage:           entity.StageContacted,
		Notes:           "CS mapeou aderencia alta. Solicitar documentos para proposta.",
		CreatedAt:       time.Date(2024, time.September, 28, 8, 15, 0, 0, time.UTC),
		UpdatedAt:       time.Date(2024, time.October, 7, 9, 20, 0, 0, time.UTC),
	},
}

// SeedLeads retorna uma cópia nova do conjunto default, usado quando não há
// estado persistido e na operação de reset.
func SeedLeads() []entity.Lead {
	leads := make([]entity.Lead, len(seedLeads))
	copy(leads, seedLeads)
	return leads
}
