package fields

// Field is a registered venue. Immutable after creation; there are no
// update or delete operations.
type Field struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	City     string `json:"city"`
	District string `json:"district"`
}
