package request

import "strings"

// Marketing sources staff may attribute a phone/WhatsApp sale to.
const (
	SourceDirectCall  = "Appel Direct"
	SourceWordOfMouth = "Bouche à oreille"
	SourceUnknown     = "Inconnu"
)

// ManualSaleRequest is a sale taken by staff outside the storefront.
type ManualSaleRequest struct {
	CustomerPhone  string `json:"customer_phone" binding:"required"`
	ProductID      string `json:"product_id" binding:"required"`
	Quantity       int    `json:"quantity" binding:"required,min=1"`
	TotalAmountCFA int64  `json:"total_amount_cfa" binding:"required,min=1"`
	Source         string `json:"marketing_source"`
}

// ResolveSource maps free-form input onto the known source labels, defaulting
// to "Inconnu".
func (r ManualSaleRequest) ResolveSource() string {
	switch strings.TrimSpace(r.Source) {
	case SourceDirectCall:
		return SourceDirectCall
	case SourceWordOfMouth:
		return SourceWordOfMouth
	case "":
		return SourceUnknown
	default:
		return strings.TrimSpace(r.Source)
	}
}
