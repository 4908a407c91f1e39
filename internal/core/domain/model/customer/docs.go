// Package customer contains the Customer aggregate of the ordering domain.
//
// Customers are referenced by orders through their identifier only; no order
// data lives on the customer side.
package customer
