package domain

import "time"

type Item struct {
	ID          int64  `json:"id" db:"id"`
	OwnerID     int64  `json:"owner_id" db:"owner_id"`
	Name        string `json:"name" db:"name"`
	Description string `json:"description" db:"description"`
	Available   bool   `json:"available" db:"available"`
	// RequestID links the item to the ItemRequest it was listed in response to.
	RequestID *int64 `json:"request_id,omitempty" db:"request_id"`
}

type ItemPatch struct {
	Name        *string
	Description *string
	Available   *bool
}

func (p ItemPatch) Apply(it *Item) {
	if p.Name != nil {
		it.Name = *p.Name
	}
	if p.Description != nil {
		it.Description = *p.Description
	}
	if p.Available != nil {
		it.Available = *p.Available
	}
}

type Comment struct {
	ID       int64     `json:"id" db:"id"`
	ItemID   int64     `json:"item_id" db:"item_id"`
	AuthorID int64     `json:"author_id" db:"author_id"`
	Text     string    `json:"text" db:"text"`
	Created  time.Time `json:"created" db:"created"`
	// AuthorName is populated on reads.
	AuthorName string `json:"author_name" db:"author_name"`
}

// ItemView is an item enriched with its comments and booking hints.
// NextBooking and LastBooking are the start instants of the earliest and the
// latest future booking of the item; both are nil when none exists.
type ItemView struct {
	Item
	Comments    []Comment
	NextBooking *time.Time
	LastBooking *time.Time
}
