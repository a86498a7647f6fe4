package monitor

import "time"

// Status is the last observed state of the catalog store.
type Status struct {
	Catalog   bool      `json:"catalog"`
	Users     int       `json:"users"`
	Books     int       `json:"books"`
	LastCheck time.Time `json:"lastCheck"`
}
