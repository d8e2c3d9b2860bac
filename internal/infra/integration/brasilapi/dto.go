package brasilapi

// CompanyResponse é o retorno de GET /cnpj/v1/{cnpj}.
type CompanyResponse struct {
	CNPJ            string  `json:"cnpj"`
	LegalName       string  `json:"razao_social"`
	TradeName       string  `json:"nome_fantasia"`
	BranchType      string  `json:"descricao_matriz_filial"`
	CNAECode        int     `json:"cnae_fiscal"`
	CNAEDescription string  `json:"cnae_fiscal_descricao"`
	CEP             string  `json:"cep"`
	City            string  `json:"municipio"`
	State           string  `json:"uf"`
	Street          string  `json:"logradouro"`
	Number          string  `json:"numero"`
	Complement      string  `json:"complemento"`
	Neighborhood    string  `json:"bairro"`
	Phone           string  `json:"ddd_telefone_1"`
	Email           string  `json:"email"`
	ShareCapital    float64 `json:"capital_social"`
}

// AddressResponse é o retorno de GET /cep/v2/{cep}.
type AddressResponse struct {
	CEP          string `json:"cep"`
	Street       string `json:"street"`
	Neighborhood string `json:"neighborhood"`
	City         string `json:"city"`
	State        string `json:"state"`
	Service      string `json:"service"`
}

// Bank é um item do retorno de GET /banks/v1.
type Bank struct {
	Name     string `json:"name"`
	Code     int    `json:"code"`
	FullName string `json:"fullName"`
	ISPB     string `json:"ispb"`
}
