package models

// ValidCategories is the fixed set of prompt categories accepted on
// submission. Keep the error string in the submission handler in sync when
// this changes.
var ValidCategories = map[string]bool{
	"marketing":      true,
	"sales":          true,
	"product-design": true,
	"engineering":    true,
	"productivity":   true,
}
