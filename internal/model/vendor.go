package model

// Vendor is a portal account. Projects reference it by id only; deleting a
// vendor does not cascade to its projects.
type Vendor struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Logo  string `json:"logo,omitempty"`
}

// VendorLookup resolves vendor ids to display names.
type VendorLookup map[string]string

// NewVendorLookup builds a lookup table from a vendor list.
func NewVendorLookup(vendors []Vendor) VendorLookup {
	lookup := make(VendorLookup, len(vendors))
	for _, v := range vendors {
		lookup[v.ID] = v.Name
	}
	return lookup
}

// Name returns the display name for a vendor id, or fallback when the id
// does not resolve.
func (l VendorLookup) Name(vendorID, fallback string) string {
	if name, ok := l[vendorID]; ok {
		return name
	}
	return fallback
}
