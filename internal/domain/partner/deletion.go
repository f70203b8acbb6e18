package partner

import (
	"fmt"

	"github.com/goldledger/backend/internal/domain/shared"
)

// Dependents holds how many ledger records still point at a customer
type Dependents struct {
	Transactions int64
	Jobs         int64
}

// EnsureDeletable rejects deletion of a customer that still has
// transactions or jobs. Transactions are reported first.
func EnsureDeletable(d Dependents) error {
	if d.Transactions > 0 {
		return shared.NewDomainError("HAS_DEPENDENTS", fmt.Sprintf(
			"Cannot delete customer. Customer has %d transaction(s). Delete transactions first.", d.Transactions))
	}
	if d.Jobs > 0 {
		return shared.NewDomainError("HAS_DEPENDENTS", fmt.Sprintf(
			"Cannot delete customer. Customer has %d job(s). Delete jobs first.", d.Jobs))
	}
	return nil
}
