package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xavierca1/mini-crm/internal/entity"
)

func validLeadInput() entity.LeadInput {
	return entity.LeadInput{
		LegalName: "Alpha Tecnologia LTDA",
		CNPJ:      "11222333000181",
		City:      "Sao Paulo",
		State:     "SP",
		Score:     78,
		Stage:     entity.StageQualified,
	}
}

func TestNormalizeLeadInputStripsMasks(t *testing.T) {
	input := entity.LeadInput{
		LegalName: "  Alpha Tecnologia LTDA  ",
		CNPJ:      "11.222.333/0001-81",
		CEP:       "01001-000",
		City:      "Sao Paulo",
		State:     " sp ",
		Score:     50,
		Stage:     entity.StageNew,
	}

	NormalizeLeadInput(&input)

	assert.Equal(t, "11222333000181", input.CNPJ)
	assert.Len(t, input.CNPJ, 14)
	assert.Equal(t, "01001000", input.CEP)
	assert.Equal(t, "SP", input.State)
	assert.Equal(t, "Alpha Tecnologia LTDA", input.LegalName)
}

func TestValidateLeadInputAcceptsValid(t *testing.T) {
	assert.Empty(t, ValidateLeadInput(validLeadInput()))
}

func TestValidateLeadInputRejectsShortCNPJ(t *testing.T) {
	input := validLeadInput()
	input.CNPJ = "1122233300018" // 13 dígitos

	errs := ValidateLeadInput(input)

	require.NotEmpty(t, errs)
	assert.Equal(t, "cnpj", errs[0].Field)
}

func TestValidateLeadInputRequiredFields(t *testing.T) {
	errs := ValidateLeadInput(entity.LeadInput{})

	fields := map[string]bool{}
	for _, e := range errs {
		fields[e.Field] = true
	}
	assert.True(t, fields["legalName"])
	assert.True(t, fields["cnpj"])
	assert.True(t, fields["city"])
	assert.True(t, fields["state"])
	assert.True(t, fields["stage"])
}

func TestValidateLeadInputScoreBounds(t *testing.T) {
	input := validLeadInput()
	input.Score = 101
	errs := ValidateLeadInput(input)
	require.NotEmpty(t, errs)
	assert.Equal(t, "score", errs[0].Field)

	input.Score = -1
	assert.NotEmpty(t, ValidateLeadInput(input))

	input.Score = 0
	assert.Empty(t, ValidateLeadInput(input))
	input.Score = 100
	assert.Empty(t, ValidateLeadInput(input))
}

func TestValidateLeadInputInvalidStage(t *testing.T) {
	input := validLeadInput()
	input.Stage = "archived"

	errs := ValidateLeadInput(input)

	require.NotEmpty(t, errs)
	assert.Equal(t, "stage", errs[0].Field)
}

func TestValidateLeadInputOptionalEmailAndCEP(t *testing.T) {
	input := validLeadInput()
	assert.Empty(t, ValidateLeadInput(input))

	input.Email = "nao-e-email"
	assert.NotEmpty(t, ValidateLeadInput(input))

	input.Email = "contato@alphatech.com.br"
	input.CEP = "123"
	assert.NotEmpty(t, ValidateLeadInput(input))

	input.CEP = "01001000"
	assert.Empty(t, ValidateLeadInput(input))
}

func TestValidateLeadPatchChecksOnlyPresentFields(t *testing.T) {
	assert.Empty(t, ValidateLeadPatch(entity.LeadPatch{}))

	badScore := 120
	errs := ValidateLeadPatch(entity.LeadPatch{Score: &badScore})
	require.Len(t, errs, 1)
	assert.Equal(t, "score", errs[0].Field)

	badStage := entity.LeadStage("archived")
	shortCNPJ := "123"
	errs = ValidateLeadPatch(entity.LeadPatch{Stage: &badStage, CNPJ: &shortCNPJ})
	assert.Len(t, errs, 2)
}
