package models

import "time"

// Station is the JSON representation of a metro station.
type Station struct {
	ID       int    `json:"id"`
	Line     string `json:"line"`
	Terminus bool   `json:"terminus"`
	Name     string `json:"name"`
}

// TripTime is a journey duration split into whole minutes and leftover seconds.
type TripTime struct {
	Minutes int `json:"minutes"`
	Seconds int `json:"seconds"`
}

// ImportInfo is the provenance row recorded with each network import.
type ImportInfo struct {
	ID           string    `json:"importId"`
	Source       string    `json:"source"`
	StationCount int       `json:"stationCount"`
	TripCount    int       `json:"tripCount"`
	ImportedAt   time.Time `json:"importedAt"`
}
