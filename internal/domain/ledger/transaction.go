// Package ledger holds the tenant transaction ledger, the operator-managed
// sales configuration, and the derived financial metrics computed from
// both. The ledger and configuration are owned by an external subsystem;
// everything here reads them and derives.
package ledger

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionStatus mirrors the ledger subsystem's status vocabulary.
type TransactionStatus string

const (
	TxApproved TransactionStatus = "APPROVED"
	TxPending  TransactionStatus = "PENDING"
	TxRefunded TransactionStatus = "REFUNDED"
)

// Transaction is one immutable ledger entry.
type Transaction struct {
	ID       uint
	TenantID uint
	Amount   decimal.Decimal
	Status   TransactionStatus
	Date     time.Time
}

// Approved reports whether the transaction counts toward gross revenue.
func (t Transaction) Approved() bool {
	return t.Status == TxApproved
}
