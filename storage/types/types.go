package types

import "time"

type Currency string

func (c Currency) String() string {
	return string(c)
}

// Source tags where a snapshot's data came from
type Source string

const (
	SourceCache     Source = "cache"
	SourceProvider  Source = "provider"
	SourceSynthetic Source = "synthetic"
)

func (s Source) String() string {
	return string(s)
}

// Payload is a single upstream provider response for one base currency.
// The provider returns the same envelope for the latest and the historic
// endpoints; the year / month / day fields are only set on historic responses
type Payload struct {
	Result          string               `json:"result"`
	BaseCode        Currency             `json:"base_code"`
	Documentation   string               `json:"documentation,omitempty"`
	TermsOfUse      string               `json:"terms_of_use,omitempty"`
	Year            int                  `json:"year,omitempty"`
	Month           int                  `json:"month,omitempty"`
	Day             int                  `json:"day,omitempty"`
	ConversionRates map[Currency]float64 `json:"conversion_rates"`

	TimeLastUpdateUnix int64  `json:"time_last_update_unix,omitempty"`
	TimeLastUpdateUTC  string `json:"time_last_update_utc,omitempty"`
	TimeNextUpdateUnix int64  `json:"time_next_update_unix,omitempty"`
	TimeNextUpdateUTC  string `json:"time_next_update_utc,omitempty"`
}

// Declined reports whether the payload signals a logical provider error,
// such as an access-tier restriction. Declines are detected by payload
// inspection, never by HTTP status
func (p *Payload) Declined() bool {
	return p.Result == "error"
}

// EffectiveDay reconstructs the calendar day the payload itself reports,
// normalized to noon UTC. Returns false if the payload carries no date
func (p *Payload) EffectiveDay() (time.Time, bool) {
	if p.Year == 0 || p.Month == 0 || p.Day == 0 {
		return time.Time{}, false
	}

	return DayAt(p.Year, time.Month(p.Month), p.Day), true
}

// Snapshot is one provider payload for one currency on one calendar day.
// (Currency, Day) uniquely identifies at most one persisted snapshot
type Snapshot struct {
	Currency Currency  `json:"currency"`
	Day      time.Time `json:"day"`
	Source   Source    `json:"source"`
	Payload  Payload   `json:"payload"`
}

// RatePoint is a single day's entry in a history response. Rate is absent
// when the day's payload carries no rate for the requested target currency
type RatePoint struct {
	Date   string   `json:"date"`
	Rate   *float64 `json:"rate,omitempty"`
	Source Source   `json:"source"`
}

// History is the uniform external response for a date-range query,
// ordered by ascending date
type History struct {
	BaseCurrency   Currency    `json:"baseCurrency"`
	TargetCurrency Currency    `json:"targetCurrency"`
	Rates          []RatePoint `json:"rates"`
}
