package http

import (
	"encoding/json"
	"net/http"
	"time"
	"travel-companion/domain"
	"travel-companion/exchange"
)

// amountField accepts an amount as a JSON number or as the text a user typed.
// It is parsed later so bad input surfaces as InvalidAmount, not bad JSON.
type amountField string

func (a *amountField) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*a = amountField(s)
		return nil
	}
	*a = amountField(data)
	return nil
}

// convertRequest for unmarshalling conversion requests posted by clients
type convertRequest struct {
	Amount amountField     `json:"amount"`
	From   domain.Currency `json:"from" validate:"max=8"`
	To     domain.Currency `json:"to" validate:"max=8"`
}

// convert produces HTTP handler for currency conversions
func (s *Server) convert() http.HandlerFunc {

	// response for marshalling JSON responses to return to clients
	type response struct {
		Rate            domain.Rate     `json:"rate"`
		ConvertedAmount domain.Amount   `json:"convertedAmount"`
		DisplayAmount   string          `json:"displayAmount"`
		Timestamp       time.Time       `json:"timestamp"`
		Amount          domain.Amount   `json:"amount"`
		From            domain.Currency `json:"from"`
		To              domain.Currency `json:"to"`
	}

	return func(rw http.ResponseWriter, r *http.Request) {
		var request convertRequest
		if !s.decode(rw, r, &request) {
			return
		}

		amount, err := exchange.ParseAmount(string(request.Amount))
		if err != nil {
			s.fail(rw, err)
			return
		}

		result, err := s.Exchange.Convert(r.Context(), amount, request.From, request.To)
		if err != nil {
			s.fail(rw, err)
			return
		}

		s.writeJSON(rw, http.StatusOK, response{
			Rate:            result.Rate,
			ConvertedAmount: result.Amount,
			DisplayAmount:   result.Display(),
			Timestamp:       result.Timestamp,
			Amount:          amount,
			From:            request.From,
			To:              request.To,
		})
	}
}

// swap produces HTTP handler that exchanges the currencies of a request without converting
func (s *Server) swap() http.HandlerFunc {

	type response struct {
		Amount domain.Amount   `json:"amount"`
		From   domain.Currency `json:"from"`
		To     domain.Currency `json:"to"`
	}

	return func(rw http.ResponseWriter, r *http.Request) {
		var request convertRequest
		if !s.decode(rw, r, &request) {
			return
		}

		var amount domain.Amount
		if request.Amount != "" {
			parsed, err := exchange.ParseAmount(string(request.Amount))
			if err != nil {
				s.fail(rw, err)
				return
			}
			amount = parsed
		}

		swapped := s.Exchange.Swap(domain.ConversionRequest{Amount: amount, From: request.From, To: request.To})

		s.writeJSON(rw, http.StatusOK, response{
			Amount: swapped.Amount,
			From:   swapped.From,
			To:     swapped.To,
		})
	}
}

// currencies produces HTTP handler listing the supported currencies
func (s *Server) currencies() http.HandlerFunc {

	type response struct {
		Currencies []domain.Currency `json:"currencies"`
	}

	return func(rw http.ResponseWriter, r *http.Request) {
		currencies, err := s.Exchange.Currencies(r.Context())
		if err != nil {
			s.fail(rw, err)
			return
		}
		s.writeJSON(rw, http.StatusOK, response{Currencies: currencies})
	}
}

// health produces HTTP handler for liveness checks
func (s *Server) health() http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		s.writeJSON(rw, http.StatusOK, map[string]string{"status": "ok"})
	}
}
