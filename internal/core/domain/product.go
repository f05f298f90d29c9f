package domain

// ProductStatus is the availability of a product. Values outside the four
// recognized ones are stored verbatim and rendered as sold.
type ProductStatus string

const (
	StatusAvailable ProductStatus = "available"
	StatusReserved  ProductStatus = "reserved"
	StatusSold      ProductStatus = "sold"
	StatusHidden    ProductStatus = "hidden"
)

// Storefront labels.
const (
	LabelAvailable = "可購買"
	LabelReserved  = "洽談中"
	LabelSold      = "已售出"
)

// Product is a catalog entry. The id is supplied by the caller and is not
// checked for uniqueness. Fields absent from the submitted document stay
// absent when it is stored and served back.
type Product struct {
	ID     string        `json:"id"`
	Name   string        `json:"name,omitempty"`
	Note   string        `json:"note,omitempty"`
	Price  *float64      `json:"price,omitempty"`
	Status ProductStatus `json:"status,omitempty"`
}

// Listed reports whether the storefront shows the product at all.
func (p Product) Listed() bool {
	return p.Status != StatusHidden
}

// StatusLabel returns the storefront label for a status.
func StatusLabel(s ProductStatus) string {
	switch s {
	case StatusAvailable:
		return LabelAvailable
	case StatusReserved:
		return LabelReserved
	default:
		return LabelSold
	}
}

// DisplayName is the name used in audit messages.
func (p Product) DisplayName() string {
	if p.Name == "" {
		return "unnamed"
	}
	return p.Name
}
