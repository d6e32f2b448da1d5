package types

// Record is a single API entity as decoded from the response envelope.
type Record map[string]any

// MergeMissing copies fields from src that the record does not already carry.
// Existing values always win; the list endpoint's view of a field is treated
// as authoritative over the detail endpoint's.
func (r Record) MergeMissing(src Record) {
	for k, v := range src {
		if _, ok := r[k]; !ok {
			r[k] = v
		}
	}
}
