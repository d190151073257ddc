// Package pair provides a generic two-field container for ad hoc tuple returns.
package pair
