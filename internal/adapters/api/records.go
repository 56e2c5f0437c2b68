package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"

	"github.com/andrescamacho/smuggler-go/internal/domain/market"
)

// flexBool decodes the API's 0/1 flags, and also accepts true/false and "1"/"0"
type flexBool bool

func (b *flexBool) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch string(data) {
	case "null", "0", "false", `"0"`, `""`:
		*b = false
		return nil
	case "1", "true", `"1"`:
		*b = true
		return nil
	}
	n, err := strconv.ParseFloat(string(bytes.Trim(data, `"`)), 64)
	if err != nil {
		return fmt.Errorf("invalid flag value %s", data)
	}
	*b = n != 0
	return nil
}

// commodityRecord is one row of the commodities endpoint
type commodityRecord struct {
	ID        int      `json:"id"`
	Name      string   `json:"name"`
	Kind      string   `json:"kind"`
	IsIllegal flexBool `json:"is_illegal"`
	PriceBuy  float64  `json:"price_buy"`
	PriceSell float64  `json:"price_sell"`
}

func (r commodityRecord) toDomain() (*market.Commodity, error) {
	return market.NewCommodity(r.Name, r.Kind, bool(r.IsIllegal), r.PriceBuy, r.PriceSell)
}

// priceRecord is one row of the commodities_prices_all endpoint
type priceRecord struct {
	CommodityName string  `json:"commodity_name"`
	TerminalName  string  `json:"terminal_name"`
	PriceBuy      float64 `json:"price_buy"`
	PriceSell     float64 `json:"price_sell"`
	ScuBuy        float64 `json:"scu_buy"`
}

func (r priceRecord) toDomain() (*market.PriceQuote, error) {
	if r.ScuBuy < 0 || r.ScuBuy > math.MaxInt32 {
		return nil, fmt.Errorf("%w: scu_buy %v out of range", market.ErrInvalidStock, r.ScuBuy)
	}
	return market.NewPriceQuote(r.CommodityName, r.TerminalName, r.PriceBuy, r.PriceSell, int(r.ScuBuy))
}

// locationRecord covers terminals and space stations
type locationRecord struct {
	ID             int    `json:"id"`
	Name           string `json:"name"`
	StarSystemName string `json:"star_system_name"`
}

// starSystemRecord is one row of the star_systems endpoint
type starSystemRecord struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Code string `json:"code"`
}

// decodeRecords converts raw records one by one, skipping those that fail to decode or
// validate. It returns the converted values and the number skipped, plus the first
// skip reason for logging.
func decodeRecords[R any, T any](raw []json.RawMessage, convert func(R) (*T, error)) ([]T, int, error) {
	out := make([]T, 0, len(raw))
	skipped := 0
	var firstErr error

	for i, msg := range raw {
		var rec R
		if err := json.Unmarshal(msg, &rec); err != nil {
			skipped++
			if firstErr == nil {
				firstErr = fmt.Errorf("record %d: %w", i, err)
			}
			continue
		}
		value, err := convert(rec)
		if err != nil {
			skipped++
			if firstErr == nil {
				firstErr = fmt.Errorf("record %d: %w", i, err)
			}
			continue
		}
		out = append(out, *value)
	}

	return out, skipped, firstErr
}

func decodeCommodities(raw []json.RawMessage) ([]market.Commodity, int, error) {
	return decodeRecords(raw, commodityRecord.toDomain)
}

func decodeQuotes(raw []json.RawMessage) ([]market.PriceQuote, int, error) {
	return decodeRecords(raw, priceRecord.toDomain)
}

func decodeTerminals(raw []json.RawMessage) ([]market.Terminal, int, error) {
	return decodeRecords(raw, func(r locationRecord) (*market.Terminal, error) {
		return market.NewTerminal(r.ID, r.Name, r.StarSystemName)
	})
}

func decodeStations(raw []json.RawMessage) ([]market.Station, int, error) {
	return decodeRecords(raw, func(r locationRecord) (*market.Station, error) {
		return market.NewStation(r.ID, r.Name, r.StarSystemName)
	})
}

func decodeSystems(raw []json.RawMessage) ([]market.StarSystem, int, error) {
	return decodeRecords(raw, func(r starSystemRecord) (*market.StarSystem, error) {
		return market.NewStarSystem(r.ID, r.Name, r.Code)
	})
}
