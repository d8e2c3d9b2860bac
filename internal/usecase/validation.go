package usecase

import (
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/xavierca1/mini-crm/internal/entity"
)

type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

var nonDigits = regexp.MustCompile(`\D`)

// OnlyDigits remove tudo que não é dígito (máscaras de CNPJ, CEP, telefone).
func OnlyDigits(value string) string {
	return nonDigits.ReplaceAllString(value, "")
}

func IsValidCNPJ(cnpj string) bool {
	return len(OnlyDigits(cnpj)) == 14
}

func IsValidCEP(cep string) bool {
	return len(OnlyDigits(cep)) == 8
}

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func leadValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterValidation("cnpj", func(fl validator.FieldLevel) bool {
			return IsValidCNPJ(fl.Field().String())
		})
		validate.RegisterValidation("cep", func(fl validator.FieldLevel) bool {
			return IsValidCEP(fl.Field().String())
		})
		validate.RegisterValidation("stage", func(fl validator.FieldLevel) bool {
			return entity.LeadStage(fl.Field().String()).Valid()
		})
	})
	return validate
}

// NormalizeLeadInput aplica as normalizações que o formulário fazia no front:
// CNPJ e CEP viram só dígitos, UF vira maiúscula, textos perdem espaços soltos.
func NormalizeLeadInput(input *entity.LeadInput) {
	input.LegalName = strings.TrimSpace(input.LegalName)
	input.TradeName = strings.TrimSpace(input.TradeName)
	input.CNPJ = OnlyDigits(input.CNPJ)
	if input.CEP != "" {
		input.CEP = OnlyDigits(input.CEP)
	}
	input.Email = strings.TrimSpace(input.Email)
	input.City = strings.TrimSpace(input.City)
	input.State = strings.ToUpper(strings.TrimSpace(input.State))
	input.Notes = strings.TrimSpace(input.Notes)
}

// ValidateLeadInput roda o conjunto de regras declarado nas tags da struct e
// traduz cada violação para um erro de campo legível.
func ValidateLeadInput(input entity.LeadInput) []ValidationError {
	err := leadValidator().Struct(input)
	if err == nil {
		return nil
	}

	invalid, ok := err.(validator.ValidationErrors)
	if !ok {
		return []ValidationError{{Field: "input", Message: err.Error()}}
	}

	var errors []ValidationError
	for _, fieldErr := range invalid {
		errors = append(errors, ValidationError{
			Field:   jsonFieldName(fieldErr.Field()),
			Message: messageForTag(fieldErr),
		})
	}
	return errors
}

// ValidateLeadPatch valida só os campos presentes na atualização parcial.
func ValidateLeadPatch(patch entity.LeadPatch) []ValidationError {
	var errors []ValidationError

	if patch.LegalName != nil && len(strings.TrimSpace(*patch.LegalName)) < 2 {
		errors = append(errors, ValidationError{"legalName", "deve ter ao menos 2 caracteres"})
	}
	if patch.CNPJ != nil && !IsValidCNPJ(*patch.CNPJ) {
		errors = append(errors, ValidationError{"cnpj", "deve ter 14 dígitos"})
	}
	if patch.CEP != nil && *patch.CEP != "" && !IsValidCEP(*patch.CEP) {
		errors = append(errors, ValidationError{"cep", "deve ter 8 dígitos"})
	}
	if patch.City != nil && strings.TrimSpace(*patch.City) == "" {
		errors = append(errors, ValidationError{"city", "é obrigatório"})
	}
	if patch.State != nil && len(strings.TrimSpace(*patch.State)) != 2 {
		errors = append(errors, ValidationError{"state", "deve ter 2 letras"})
	}
	if patch.Score != nil && (*patch.Score < 0 || *patch.Score > 100) {
		errors = append(errors, ValidationError{"score", "deve estar entre 0 e 100"})
	}
	if patch.Stage != nil && !patch.Stage.Valid() {
		errors = append(errors, ValidationError{"stage", "fase inválida"})
	}
	return errors
}

func messageForTag(fieldErr validator.FieldError) string {
	switch fieldErr.Tag() {
	case "required":
		return "é obrigatório"
	case "min", "max":
		if fieldErr.Field() == "Score" {
			return "deve estar entre 0 e 100"
		}
		if fieldErr.Tag() == "min" {
			return fmt.Sprintf("deve ter ao menos %s caracteres", fieldErr.Param())
		}
		return fmt.Sprintf("deve ter no máximo %s caracteres", fieldErr.Param())
	case "len":
		return fmt.Sprintf("deve ter %s letras", fieldErr.Param())
	case "email":
		return "deve ser um e-mail válido"
	case "cnpj":
		return "deve ter 14 dígitos"
	case "cep":
		return "deve ter 8 dígitos"
	case "stage":
		return "fase inválida"
	default:
		return "é inválido"
	}
}

// jsonFieldName mapeia o nome do campo Go para o nome exposto no JSON.
func jsonFieldName(field string) string {
	switch field {
	case "CNPJ", "CEP", "CNAECode", "CNAEDescription":
		replacer := strings.NewReplacer("CNPJ", "cnpj", "CEP", "cep", "CNAE", "cnae")
		return replacer.Replace(field)
	default:
		return strings.ToLower(field[:1]) + field[1:]
	}
}
