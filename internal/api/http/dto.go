package http

import (
	"fmt"
	"strings"
	"time"

	"shareit-backend/internal/domain"
)

// TimestampLayout is the wire format of every timestamp.
const TimestampLayout = "2006-01-02T15:04:05"

// Timestamp renders as a local ISO date-time without zone. RFC 3339 input
// is accepted too and converted to local time, so every rendered value
// shares one zone.
type Timestamp time.Time

func (t Timestamp) MarshalJSON() ([]byte, error) {
	return []byte(`"` + time.Time(t).In(time.Local).Format(TimestampLayout) + `"`), nil
}

func (t *Timestamp) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		return nil
	}
	if parsed, err := time.ParseInLocation(TimestampLayout, s, time.Local); err == nil {
		*t = Timestamp(parsed)
		return nil
	}
	parsed, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return fmt.Errorf("invalid timestamp %q", s)
	}
	*t = Timestamp(parsed.In(time.Local))
	return nil
}

func (t Timestamp) Time() time.Time {
	return time.Time(t)
}

func timestampPtr(t *time.Time) *Timestamp {
	if t == nil {
		return nil
	}
	ts := Timestamp(*t)
	return &ts
}

// Requests

type UserCreateRequest struct {
	Name  string `json:"name" validate:"notblank"`
	Email string `json:"email" validate:"required,email"`
}

type UserUpdateRequest struct {
	Name  *string `json:"name" validate:"omitempty,notblank"`
	Email *string `json:"email" validate:"omitempty,email"`
}

type ItemCreateRequest struct {
	Name        string `json:"name" validate:"notblank"`
	Description string `json:"description" validate:"notblank"`
	Available   *bool  `json:"available" validate:"required"`
	RequestID   *int64 `json:"requestId" validate:"omitempty,gt=0"`
}

type ItemUpdateRequest struct {
	Name        *string `json:"name" validate:"omitempty,notblank"`
	Description *string `json:"description" validate:"omitempty,notblank"`
	Available   *bool   `json:"available"`
}

type BookingCreateRequest struct {
	ItemID int64      `json:"itemId" validate:"required,gt=0"`
	Start  *Timestamp `json:"start" validate:"required"`
	End    *Timestamp `json:"end" validate:"required"`
}

type CommentCreateRequest struct {
	Text string `json:"text" validate:"notblank"`
}

type ItemRequestCreateRequest struct {
	Description string `json:"description" validate:"notblank"`
}

// Responses

type UserDTO struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type ItemDTO struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Available   bool   `json:"available"`
	RequestID   *int64 `json:"requestId"`
}

type CommentDTO struct {
	ID         int64     `json:"id"`
	Text       string    `json:"text"`
	AuthorName string    `json:"authorName"`
	Created    Timestamp `json:"created"`
}

type ItemViewDTO struct {
	ID          int64        `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Available   bool         `json:"available"`
	Comments    []CommentDTO `json:"comments"`
	LastBooking *Timestamp   `json:"lastBooking"`
	NextBooking *Timestamp   `json:"nextBooking"`
}

type BookingDTO struct {
	ID     int64     `json:"id"`
	Start  Timestamp `json:"start"`
	End    Timestamp `json:"end"`
	Status string    `json:"status"`
	Item   ItemDTO   `json:"item"`
	Booker UserDTO   `json:"booker"`
}

type ItemRequestDTO struct {
	ID          int64     `json:"id"`
	Description string    `json:"description"`
	Created     Timestamp `json:"created"`
}

type ItemResponseDTO struct {
	ItemID   int64  `json:"itemId"`
	ItemName string `json:"itemName"`
	OwnerID  int64  `json:"ownerId"`
}

type ItemRequestWithResponsesDTO struct {
	ItemRequestDTO
	Items []ItemResponseDTO `json:"items"`
}

// Mappers

func MapUserToDTO(u *domain.User) UserDTO {
	return UserDTO{ID: u.ID, Name: u.Name, Email: u.Email}
}

func MapItemToDTO(it *domain.Item) ItemDTO {
	return ItemDTO{
		ID:          it.ID,
		Name:        it.Name,
		Description: it.Description,
		Available:   it.Available,
		RequestID:   it.RequestID,
	}
}

func MapItemsToDTO(items []domain.Item) []ItemDTO {
	out := make([]ItemDTO, 0, len(items))
	for i := range items {
		out = append(out, MapItemToDTO(&items[i]))
	}
	return out
}

func MapCommentToDTO(c *domain.Comment) CommentDTO {
	return CommentDTO{
		ID:         c.ID,
		Text:       c.Text,
		AuthorName: c.AuthorName,
		Created:    Timestamp(c.Created),
	}
}

func MapItemViewToDTO(v *domain.ItemView) ItemViewDTO {
	comments := make([]CommentDTO, 0, len(v.Comments))
	for i := range v.Comments {
		comments = append(comments, MapCommentToDTO(&v.Comments[i]))
	}
	return ItemViewDTO{
		ID:          v.ID,
		Name:        v.Name,
		Description: v.Description,
		Available:   v.Available,
		Comments:    comments,
		LastBooking: timestampPtr(v.LastBooking),
		NextBooking: timestampPtr(v.NextBooking),
	}
}

func MapItemViewsToDTO(views []domain.ItemView) []ItemViewDTO {
	out := make([]ItemViewDTO, 0, len(views))
	for i := range views {
		out = append(out, MapItemViewToDTO(&views[i]))
	}
	return out
}

func MapBookingToDTO(b *domain.Booking) BookingDTO {
	dto := BookingDTO{
		ID:     b.ID,
		Start:  Timestamp(b.Start),
		End:    Timestamp(b.End),
		Status: string(b.Status),
	}
	if b.Item != nil {
		dto.Item = MapItemToDTO(b.Item)
	}
	if b.Booker != nil {
		dto.Booker = MapUserToDTO(b.Booker)
	}
	return dto
}

func MapBookingsToDTO(bookings []domain.Booking) []BookingDTO {
	out := make([]BookingDTO, 0, len(bookings))
	for i := range bookings {
		out = append(out, MapBookingToDTO(&bookings[i]))
	}
	return out
}

func MapItemRequestToDTO(r *domain.ItemRequest) ItemRequestDTO {
	return ItemRequestDTO{
		ID:          r.ID,
		Description: r.Description,
		Created:     Timestamp(r.Created),
	}
}

func MapItemRequestsToDTO(reqs []domain.ItemRequest) []ItemRequestDTO {
	out := make([]ItemRequestDTO, 0, len(reqs))
	for i := range reqs {
		out = append(out, MapItemRequestToDTO(&reqs[i]))
	}
	return out
}

func MapRequestViewToDTO(v *domain.RequestView) ItemRequestWithResponsesDTO {
	items := make([]ItemResponseDTO, 0, len(v.Responses))
	for _, resp := range v.Responses {
		items = append(items, ItemResponseDTO{
			ItemID:   resp.ItemID,
			ItemName: resp.ItemName,
			OwnerID:  resp.OwnerID,
		})
	}
	return ItemRequestWithResponsesDTO{
		ItemRequestDTO: MapItemRequestToDTO(&v.ItemRequest),
		Items:          items,
	}
}

func MapRequestViewsToDTO(views []domain.RequestView) []ItemRequestWithResponsesDTO {
	out := make([]ItemRequestWithResponsesDTO, 0, len(views))
	for i := range views {
		out = append(out, MapRequestViewToDTO(&views[i]))
	}
	return out
}
