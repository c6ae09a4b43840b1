package handler

import "storeapi/internal/repository"

// Resource names an entity in responses.
type Resource struct {
	// Label starts not found messages, e.g. "Store" gives "Store not found".
	Label string
	// UniqueMessage replaces the generic message when a write breaks a uniqueness rule.
	UniqueMessage string
}

var (
	storeResource           = Resource{Label: "Store"}
	storeInspectionResource = Resource{Label: "Store inspection"}
	productResource         = Resource{Label: "Product"}
	productArrivalResource  = Resource{Label: "Product arrival"}
	customerResource        = Resource{Label: "Customer", UniqueMessage: "email already registered"}
	purchaseResource        = Resource{Label: "Purchase"}
)

func (r Resource) constraintMessage(ce *repository.ConstraintError, deleting bool) string {
	switch ce.Kind {
	case repository.ConstraintUnique:
		if r.UniqueMessage != "" {
			return r.UniqueMessage
		}
		return "record already exists"
	case repository.ConstraintForeignKey:
		if deleting {
			return msgReferenced
		}
		return msgMissingTarget
	case repository.ConstraintCheck:
		return "value out of range"
	default:
		return "constraint violation"
	}
}
