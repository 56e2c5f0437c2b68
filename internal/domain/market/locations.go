package market

import "fmt"

// Terminal is a trading location where quotes are posted
type Terminal struct {
	ID             int
	Name           string
	StarSystemName string
}

// Station is a space station; only counted by the dashboard
type Station struct {
	ID             int
	Name           string
	StarSystemName string
}

// StarSystem is a star system record
type StarSystem struct {
	ID   int
	Name string
	Code string
}

// NewTerminal validates and creates a Terminal
func NewTerminal(id int, name, starSystemName string) (*Terminal, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: terminal %d has no name", ErrInvalidLocation, id)
	}
	return &Terminal{ID: id, Name: name, StarSystemName: starSystemName}, nil
}

// NewStation validates and creates a Station
func NewStation(id int, name, starSystemName string) (*Station, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: station %d has no name", ErrInvalidLocation, id)
	}
	return &Station{ID: id, Name: name, StarSystemName: starSystemName}, nil
}

// NewStarSystem validates and creates a StarSystem
func NewStarSystem(id int, name, code string) (*StarSystem, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: star system %d has no name", ErrInvalidLocation, id)
	}
	return &StarSystem{ID: id, Name: name, Code: code}, nil
}
