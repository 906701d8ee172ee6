package model

// Item is the domain model for a todo entry.
// ID is assigned in memory by the list that holds the item; it is never
// written to the Markdown file.
type Item struct {
	ID   uint64
	Text string
	Done bool
}

// Box returns the checkbox marker character for the item.
func (it Item) Box() string {
	if it.Done {
		return "X"
	}
	return " "
}
