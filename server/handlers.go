package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/martinjakubec/fxproxy/provider/currencies"
	"github.com/martinjakubec/fxproxy/storage/types"
)

// Exact validation messages of the external contract
const (
	msgNoCurrency            = "No currency code provided"
	msgCurrencyNotSupported  = "Currency not supported"
	msgInvalidStartDate      = "Invalid Start date"
	msgInvalidEndDate        = "Invalid End date"
	msgInvalidBaseCurrency   = "Invalid Base Currency"
	msgInvalidTargetCurrency = "Invalid Target Currency"
	msgFutureQuery           = "Cannot query into the future"
	msgEndBeforeStart        = "End Date cannot be lower than Start Date"
	msgServerError           = "Server error."
)

var requiredHistoryParams = []string{
	"startDate",
	"endDate",
	"baseCurrency",
	"targetCurrency",
}

func (s *Server) SupportedCurrencies(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, currencies.Codes())
}

func (s *Server) Latest(w http.ResponseWriter, r *http.Request) {
	currency := types.Currency(chi.URLParam(r, "currency"))

	if currency == "" {
		writeError(w, http.StatusBadRequest, msgNoCurrency)

		return
	}

	if !currencies.Supported(currency) {
		writeError(w, http.StatusBadRequest, msgCurrencyNotSupported)

		return
	}

	payload, err := s.rates.Latest(r.Context(), currency)
	if err != nil {
		s.logger.Error(
			"unable to serve latest rates",
			"currency", currency,
			"err", err,
		)

		writeError(w, http.StatusInternalServerError, msgServerError)

		return
	}

	writeJSON(w, http.StatusOK, &LatestResponse{Data: payload})
}

func (s *Server) History(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()

	// All validation happens eagerly, before any I/O
	missing := make([]string, 0, len(requiredHistoryParams))

	for _, name := range requiredHistoryParams {
		if !params.Has(name) {
			missing = append(missing, name)
		}
	}

	if len(missing) > 0 {
		writeError(
			w,
			http.StatusBadRequest,
			fmt.Sprintf(
				"Missing following query parameters: %s",
				quoteJoin(missing),
			),
		)

		return
	}

	start, err := types.ParseDay(params.Get("startDate"))
	if err != nil {
		writeError(w, http.StatusBadRequest, msgInvalidStartDate)

		return
	}

	end, err := types.ParseDay(params.Get("endDate"))
	if err != nil {
		writeError(w, http.StatusBadRequest, msgInvalidEndDate)

		return
	}

	base := types.Currency(params.Get("baseCurrency"))
	if !currencies.Supported(base) {
		writeError(w, http.StatusBadRequest, msgInvalidBaseCurrency)

		return
	}

	target := types.Currency(params.Get("targetCurrency"))
	if !currencies.Supported(target) {
		writeError(w, http.StatusBadRequest, msgInvalidTargetCurrency)

		return
	}

	// The parsed end date is midnight UTC, so a range ending today is
	// accepted at any time of day
	if end.After(time.Now()) {
		writeError(w, http.StatusBadRequest, msgFutureQuery)

		return
	}

	if start.After(end) {
		writeError(w, http.StatusBadRequest, msgEndBeforeStart)

		return
	}

	history, err := s.rates.History(r.Context(), base, target, start, end)
	if err != nil {
		s.logger.Error(
			"unable to serve history",
			"base", base,
			"target", target,
			"err", err,
		)

		writeError(w, http.StatusInternalServerError, msgServerError)

		return
	}

	writeJSON(w, http.StatusOK, history)
}

// quoteJoin renders the names as a `"a", "b"` listing
func quoteJoin(names []string) string {
	quoted := make([]string, 0, len(names))

	for _, name := range names {
		quoted = append(quoted, fmt.Sprintf("%q", name))
	}

	return strings.Join(quoted, ", ")
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	_ = json.NewEncoder(w).Encode(v) //nolint:errcheck // Fine to ignore
}

func writeError(w http.ResponseWriter, status int, message string) {
	resp := &ErrorResponse{
		Message: message,
	}

	writeJSON(w, status, resp)
}
