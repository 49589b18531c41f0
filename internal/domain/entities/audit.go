package entities

import "time"

// AuditAction names a mutating operation recorded in the audit log.

type AuditAction string

const (
	AuditActionFulfillOrder  AuditAction = "order.fulfill"
	AuditActionCancelOrder   AuditAction = "order.cancel"
	AuditActionManualSale    AuditAction = "order.manual_sale"
	AuditActionRestock       AuditAction = "product.restock"
	AuditActionCreateProduct AuditAction = "product.create"
	AuditActionDeleteProduct AuditAction = "product.delete"
	AuditActionRecordExpense AuditAction = "expense.record"
)

// AuditEntry is one append-only row in the action log. Entries are written
// after the business write succeeds and are never updated or deleted.
//
// Storage model (DynamoDB):
//   - PK: id
type AuditEntry struct {
	ID        string      `json:"id"`
	Actor     string      `json:"actor"`
	Action    AuditAction `json:"action"`
	Entity    string      `json:"entity"`
	EntityID  string      `json:"entity_id"`
	Detail    string      `json:"detail,omitempty"`
	CreatedAt time.Time   `json:"created_at"`
}
