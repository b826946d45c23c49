package mansion

import (
	"encoding/json"
	"fmt"
	"os"
)

// Blueprint is the declarative description of a mansion: a flat list of
// rooms plus the edges wiring them into a binary tree.
type Blueprint struct {
	Entrance string     `json:"entrance"`
	Rooms    []RoomSpec `json:"rooms"`
	Edges    []Edge     `json:"edges"`
}

type RoomSpec struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Clue    string `json:"clue,omitempty"`
	Suspect string `json:"suspect,omitempty"`
}

type Edge struct {
	Parent    string    `json:"parent"`
	Direction Direction `json:"direction"`
	Child     string    `json:"child"`
}

// LoadBlueprint reads a mansion blueprint from a JSON file.
func LoadBlueprint(filename string) (*Blueprint, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file %s: %w", filename, err)
	}
	defer file.Close()

	decoder := json.NewDecoder(file)
	var bp Blueprint
	if err := decoder.Decode(&bp); err != nil {
		return nil, fmt.Errorf("failed to decode blueprint JSON: %w", err)
	}

	return &bp, nil
}
