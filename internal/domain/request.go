package domain

import "time"

type ItemRequest struct {
	ID          int64     `json:"id" db:"id"`
	Description string    `json:"description" db:"description"`
	AuthorID    int64     `json:"author_id" db:"author_id"`
	Created     time.Time `json:"created" db:"created"`
}

// ItemResponse is the short form of an item offered against a request.
type ItemResponse struct {
	ItemID   int64
	ItemName string
	OwnerID  int64
}

type RequestView struct {
	ItemRequest
	Responses []ItemResponse
}
