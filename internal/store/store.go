// Package store is the persistence collaborator for the CLI: it loads
// an already-serialized data snapshot into the engine's model shapes.
// The engine never touches this package; it only sees the slices.
package store

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fintrack-dev/fintrack/internal/model"
)

// Snapshot is the full input set the engine computes over.
type Snapshot struct {
	Accounts     []model.Account        `json:"accounts"`
	Transactions []model.Transaction    `json:"transactions"`
	Budgets      []model.BudgetCategory `json:"budgets"`
	Businesses   []model.BusinessEntity `json:"businesses"`
	Investments  []model.Investment     `json:"investments"`
}

// Load reads a snapshot file and validates its referential shape.
func Load(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading snapshot: %w", err)
	}

	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("parsing snapshot: %w", err)
	}

	if verrs := Validate(&snap); len(verrs) > 0 {
		return nil, fmt.Errorf("snapshot failed validation: %s", verrs[0].Error())
	}
	return &snap, nil
}

// Save writes a snapshot back to disk, typically after the caller has
// applied reconciled balances or appended synthesized transactions.
func Save(path string, snap *Snapshot) error {
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling snapshot: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing snapshot: %w", err)
	}
	return nil
}
