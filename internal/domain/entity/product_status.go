// Package entity contains the core business objects of the project.
package entity

import "slices"

// ProductStatus represents the availability of a product on the storefront.
// There are no automatic transitions; an administrator may set any status to
// any other status.
type ProductStatus string

const (
	// StatusAvailable indicates the product can be ordered normally.
	StatusAvailable ProductStatus = "AVAILABLE"
	// StatusLowStock indicates the product is running low.
	StatusLowStock ProductStatus = "LOW_STOCK"
	// StatusOutOfStock indicates the product cannot currently be ordered.
	StatusOutOfStock ProductStatus = "OUT_OF_STOCK"
)

// String returns the string representation of the ProductStatus.
func (s ProductStatus) String() string {
	return string(s)
}

// IsValid checks if the ProductStatus is a valid value.
func (s ProductStatus) IsValid() bool {
	return ContainsStatus(ProductStatuses(), s)
}

// ProductStatuses lists every valid product status.
func ProductStatuses() []ProductStatus {
	return []ProductStatus{StatusAvailable, StatusLowStock, StatusOutOfStock}
}

// ContainsStatus reports whether the given status is one of the valid values.
func ContainsStatus(statuses []ProductStatus, status ProductStatus) bool {
	return slices.Contains(statuses, status)
}
