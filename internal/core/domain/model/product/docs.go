// Package product contains the Product aggregate of the catalogue domain.
//
// Order items snapshot a product's price at order time; catalogue changes
// never propagate into existing orders.
package product
