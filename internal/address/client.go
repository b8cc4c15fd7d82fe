package address

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/sirupsen/logrus"
	"github.com/sony/gobreaker"

	"github.com/comandareal/comanda-backend/internal/metrics"
	"github.com/comandareal/comanda-backend/internal/store"
)

var (
	ErrInvalidCEP   = errors.New("invalid CEP")
	ErrNotFound     = errors.New("CEP not found")
	ErrLookupFailed = errors.New("address lookup failed")
)

// Address is the resolved location for a CEP.
type Address struct {
	CEP      string `json:"cep"`
	Street   string `json:"street"`
	District string `json:"district"`
	City     string `json:"city"`
	State    string `json:"state"`
}

type viaCEPResponse struct {
	CEP        string `json:"cep"`
	Logradouro string `json:"logradouro"`
	Bairro     string `json:"bairro"`
	Localidade string `json:"localidade"`
	UF         string `json:"uf"`
	Erro       bool   `json:"erro"`
}

// Client looks CEPs up against a ViaCEP-compatible endpoint. The breaker
// keeps a flapping provider from stalling every checkout on the lookup.
type Client struct {
	http    *resty.Client
	breaker *gobreaker.CircuitBreaker
}

func NewClient(baseURL string) *Client {
	httpClient := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(5 * time.Second)

	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    "viacep",
		Timeout: 30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logrus.WithFields(logrus.Fields{
				"breaker": name,
				"from":    from.String(),
				"to":      to.String(),
			}).Warn("circuit breaker state changed")
		},
	})

	return &Client{http: httpClient, breaker: breaker}
}

// Lookup resolves cep. Malformed codes are rejected locally before any
// request goes out.
func (c *Client) Lookup(cep string) (Address, error) {
	normalized := store.NormalizeCEP(cep)
	if len(normalized) != 8 {
		metrics.AddressLookups.WithLabelValues("invalid").Inc()
		return Address{}, ErrInvalidCEP
	}

	result, err := c.breaker.Execute(func() (any, error) {
		resp, err := c.http.R().
			SetResult(&viaCEPResponse{}).
			Get(fmt.Sprintf("/ws/%s/json/", normalized))
		if err != nil {
			return nil, err
		}
		if resp.IsError() {
			return nil, fmt.Errorf("%w: status %d", ErrLookupFailed, resp.StatusCode())
		}
		return resp.Result().(*viaCEPResponse), nil
	})
	if err != nil {
		metrics.AddressLookups.WithLabelValues("error").Inc()
		logrus.WithField("cep", normalized).WithError(err).Warn("address lookup failed")
		return Address{}, ErrLookupFailed
	}

	body := result.(*viaCEPResponse)
	if body.Erro {
		metrics.AddressLookups.WithLabelValues("not_found").Inc()
		return Address{}, ErrNotFound
	}

	metrics.AddressLookups.WithLabelValues("ok").Inc()
	return Address{
		CEP:      store.NormalizeCEP(body.CEP),
		Street:   body.Logradouro,
		District: body.Bairro,
		City:     body.Localidade,
		State:    body.UF,
	}, nil
}
