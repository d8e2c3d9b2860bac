package brasilapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"time"
)

const DefaultBaseURL = "https://brasilapi.com.br/api"

const defaultErrorMessage = "não foi possível completar a requisição ao BrasilAPI, tente novamente"

// Erros de validação locais: disparam antes de qualquer chamada de rede.
var (
	ErrInvalidCNPJ = errors.New("informe um CNPJ válido com 14 dígitos")
	ErrInvalidCEP  = errors.New("informe um CEP válido com 8 dígitos")
)

// APIError carrega o que deu errado do lado do serviço externo: status HTTP,
// corpo bruto e uma mensagem legível extraída do payload quando existe.
type APIError struct {
	Status  int
	Body    []byte
	Message string
	Err     error
}

func (e *APIError) Error() string {
	return e.Message
}

func (e *APIError) Unwrap() error {
	return e.Err
}

type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

var nonDigits = regexp.MustCompile(`\D`)

// CompanyByCNPJ busca os dados cadastrais da empresa pelo CNPJ.
func (c *Client) CompanyByCNPJ(ctx context.Context, cnpj string) (*CompanyResponse, error) {
	sanitized := nonDigits.ReplaceAllString(cnpj, "")
	if len(sanitized) != 14 {
		return nil, ErrInvalidCNPJ
	}

	var company CompanyResponse
	if err := c.get(ctx, fmt.Sprintf("/cnpj/v1/%s", sanitized), &company); err != nil {
		return nil, err
	}
	return &company, nil
}

// AddressByCEP busca o endereço pelo CEP.
func (c *Client) AddressByCEP(ctx context.Context, cep string) (*AddressResponse, error) {
	sanitized := nonDigits.ReplaceAllString(cep, "")
	if len(sanitized) != 8 {
		return nil, ErrInvalidCEP
	}

	var address AddressResponse
	if err := c.get(ctx, fmt.Sprintf("/cep/v2/%s", sanitized), &address); err != nil {
		return nil, err
	}
	return &address, nil
}

// Banks lista os bancos brasileiros.
func (c *Client) Banks(ctx context.Context) ([]Bank, error) {
	var banks []Bank
	if err := c.get(ctx, "/banks/v1", &banks); err != nil {
		return nil, err
	}
	return banks, nil
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	c.setHeaders(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return &APIError{Message: defaultErrorMessage, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(resp.Body)
		return &APIError{
			Status:  resp.StatusCode,
			Body:    body,
			Message: upstreamMessage(body),
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &APIError{Status: resp.StatusCode, Message: defaultErrorMessage, Err: err}
	}
	return nil
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", "MiniCRM/1.0")
}

// upstreamMessage tenta aproveitar a mensagem de erro do próprio serviço.
func upstreamMessage(body []byte) string {
	var payload struct {
		Message string `json:"message"`
		Errors  []struct {
			Message string `json:"message"`
		} `json:"errors"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		if payload.Message != "" {
			return payload.Message
		}
		if len(payload.Errors) > 0 && payload.Errors[0].Message != "" {
			return payload.Errors[0].Message
		}
	}
	return defaultErrorMessage
}
