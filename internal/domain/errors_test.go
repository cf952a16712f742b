package domain

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestError_IsMatchesByKind(t *testing.T) {
	err := NotFound("user id = %d does not exist", 7)

	assert.ErrorIs(t, err, ErrNotFound)
	assert.NotErrorIs(t, err, ErrAccessDenied)
	assert.Equal(t, "user id = 7 does not exist", err.Error())

	wrapped := fmt.Errorf("loading booker: %w", err)
	assert.ErrorIs(t, wrapped, ErrNotFound)
	assert.Equal(t, KindNotFound, KindOf(wrapped))
}

func TestKindOf_PlainError(t *testing.T) {
	assert.Equal(t, ErrorKind(0), KindOf(fmt.Errorf("boom")))
}

func TestParseBookingState(t *testing.T) {
	for _, st := range BookingStates {
		got, err := ParseBookingState(string(st))
		assert.NoError(t, err)
		assert.Equal(t, st, got)
	}

	got, err := ParseBookingState("")
	assert.NoError(t, err)
	assert.Equal(t, BookingStateAll, got)

	got, err = ParseBookingState("future")
	assert.NoError(t, err)
	assert.Equal(t, BookingStateFuture, got)

	_, err = ParseBookingState("UNSUPPORTED_STATUS")
	assert.ErrorIs(t, err, ErrInvalid)
	assert.Equal(t, "Unknown state: UNSUPPORTED_STATUS", err.Error())
}

func TestPatchApply(t *testing.T) {
	name := "Drill"
	avail := false
	it := Item{ID: 1, Name: "Saw", Description: "sharp", Available: true}
	ItemPatch{Name: &name, Available: &avail}.Apply(&it)
	assert.Equal(t, "Drill", it.Name)
	assert.Equal(t, "sharp", it.Description)
	assert.False(t, it.Available)

	email := "new@mail.com"
	u := User{ID: 1, Name: "Ann", Email: "old@mail.com"}
	UserPatch{Email: &email}.Apply(&u)
	assert.Equal(t, "Ann", u.Name)
	assert.Equal(t, "new@mail.com", u.Email)
}
