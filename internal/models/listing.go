package models

import "github.com/google/uuid"

// CountMissing marks a bedroom or bathroom count that could not be parsed
// from the raw row. Listings with a missing count survive cleaning but are
// excluded from the filter option sets and never match a specific selection.
const CountMissing = -1

// Listing is one cleaned rental property record. Immutable after load.
type Listing struct {
	ID             uuid.UUID `json:"id"`
	Price          float64   `json:"price"`
	Bedrooms       int       `json:"bedrooms"`
	Bathrooms      int       `json:"bathrooms"`
	Latitude       float64   `json:"latitude"`
	Longitude      float64   `json:"longitude"`
	Area           string    `json:"area"`
	DisplayAddress string    `json:"displayAddress,omitempty"`
	AddedOn        string    `json:"addedOn,omitempty"`
	PropertyType   string    `json:"propertyType,omitempty"`
	URL            string    `json:"url,omitempty"`
}

// HasBedrooms reports whether the bedroom count was present in the raw data.
func (l Listing) HasBedrooms() bool { return l.Bedrooms != CountMissing }

// HasBathrooms reports whether the bathroom count was present in the raw data.
func (l Listing) HasBathrooms() bool { return l.Bathrooms != CountMissing }
