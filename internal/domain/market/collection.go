package market

import "fmt"

// Collection names one of the independently fetched data sets
type Collection string

const (
	CollectionCommodities Collection = "commodities"
	CollectionPrices      Collection = "prices"
	CollectionTerminals   Collection = "terminals"
	CollectionStations    Collection = "stations"
	CollectionSystems     Collection = "systems"
)

// AllCollections lists every collection in fetch order
var AllCollections = []Collection{
	CollectionCommodities,
	CollectionPrices,
	CollectionTerminals,
	CollectionStations,
	CollectionSystems,
}

// endpoints maps each collection to its path on the trading-data API
var endpoints = map[Collection]string{
	CollectionCommodities: "commodities",
	CollectionPrices:      "commodities_prices_all",
	CollectionTerminals:   "terminals",
	CollectionStations:    "space_stations",
	CollectionSystems:     "star_systems",
}

// Endpoint returns the API path for the collection
func (c Collection) Endpoint() (string, error) {
	path, ok := endpoints[c]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownCollection, string(c))
	}
	return path, nil
}

func (c Collection) String() string {
	return string(c)
}
