package store

import (
	"fmt"
	"time"

	"github.com/fintrack-dev/fintrack/internal/model"
)

// ValidationError describes a single shape violation in a loaded
// snapshot. Validation happens here, at the collaborator boundary; the
// engine trusts its inputs.
type ValidationError struct {
	Invariant   int
	ID          string
	Description string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("invariant %d [%s]: %s", e.Invariant, e.ID, e.Description)
}

// Validate enforces 4 invariants on a loaded snapshot.
func Validate(snap *Snapshot) []ValidationError {
	var errs []ValidationError

	accounts := make(map[string]bool, len(snap.Accounts))
	for _, a := range snap.Accounts {
		accounts[a.ID] = true
	}
	businesses := make(map[string]bool, len(snap.Businesses))
	for _, b := range snap.Businesses {
		businesses[b.ID] = true
	}

	for _, tx := range snap.Transactions {
		// Invariant 1: valid account reference.
		if !accounts[tx.AccountID] {
			errs = append(errs, ValidationError{
				Invariant:   1,
				ID:          tx.ID,
				Description: fmt.Sprintf("unknown account %q", tx.AccountID),
			})
		}

		// Invariant 2: parseable ISO date.
		if _, err := time.Parse(model.DateFormat, tx.Date); err != nil {
			errs = append(errs, ValidationError{
				Invariant:   2,
				ID:          tx.ID,
				Description: fmt.Sprintf("unparseable date %q", tx.Date),
			})
		}

		// Invariant 3: non-negative amount; Type carries the sign.
		if tx.Amount.IsNegative() {
			errs = append(errs, ValidationError{
				Invariant:   3,
				ID:          tx.ID,
				Description: fmt.Sprintf("negative amount %s", tx.Amount),
			})
		}

		// Invariant 4: valid business reference when tagged.
		if tx.BusinessID != "" && !businesses[tx.BusinessID] {
			errs = append(errs, ValidationError{
				Invariant:   4,
				ID:          tx.ID,
				Description: fmt.Sprintf("unknown business %q", tx.BusinessID),
			})
		}
	}

	return errs
}
