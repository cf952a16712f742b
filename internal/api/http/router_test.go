package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shareit-backend/internal/clock"
	"shareit-backend/internal/repository/memory"
	"shareit-backend/internal/security"
	"shareit-backend/internal/service"
)

const testSecret = "0123456789abcdef0123456789abcdef"

type testAPI struct {
	t      *testing.T
	router *mux.Router
	clock  *clock.Manual
}

func newTestAPI(t *testing.T, tm security.TokenManager) *testAPI {
	t.Helper()
	store := memory.NewStore()
	clk := clock.NewManual(time.Date(2026, 6, 1, 9, 0, 0, 0, time.Local))
	router := NewRouter(Services{
		Users:    service.NewUserService(store.UserRepository),
		Items:    service.NewItemService(store.ItemRepository, store.UserRepository, store.RequestRepository, store.BookingRepository, store.CommentRepository, clk),
		Bookings: service.NewBookingService(store.BookingRepository, store.ItemRepository, store.UserRepository, clk),
		Requests: service.NewRequestService(store.RequestRepository, store.ItemRepository, store.UserRepository, clk),
	}, tm)
	return &testAPI{t: t, router: router, clock: clk}
}

// do sends a request as userID (0 sends no identity header) and decodes the
// JSON response into out when out is non-nil.
func (a *testAPI) do(method, path string, userID int64, body string, out any) *httptest.ResponseRecorder {
	a.t.Helper()
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	if userID > 0 {
		req.Header.Set(UserIDHeader, strconv.FormatInt(userID, 10))
	}
	rec := httptest.NewRecorder()
	a.router.ServeHTTP(rec, req)
	if out != nil && rec.Body.Len() > 0 {
		require.NoError(a.t, json.Unmarshal(rec.Body.Bytes(), out), rec.Body.String())
	}
	return rec
}

func (a *testAPI) createUser(name string) int64 {
	a.t.Helper()
	var u UserDTO
	rec := a.do(http.MethodPost, "/users", 0, `{"name":"`+name+`","email":"`+name+`@mail.com"}`, &u)
	require.Equal(a.t, http.StatusCreated, rec.Code, rec.Body.String())
	return u.ID
}

func (a *testAPI) createItem(ownerID int64, name string) int64 {
	a.t.Helper()
	var it ItemDTO
	rec := a.do(http.MethodPost, "/items", ownerID, `{"name":"`+name+`","description":"for rent","available":true}`, &it)
	require.Equal(a.t, http.StatusCreated, rec.Code, rec.Body.String())
	return it.ID
}

func (a *testAPI) createBooking(bookerID, itemID int64, start, end string) *httptest.ResponseRecorder {
	a.t.Helper()
	body := `{"itemId":` + strconv.FormatInt(itemID, 10) + `,"start":"` + start + `","end":"` + end + `"}`
	return a.do(http.MethodPost, "/bookings", bookerID, body, nil)
}

func TestAPI_BookingFlow(t *testing.T) {
	api := newTestAPI(t, nil)
	owner := api.createUser("ann")
	booker := api.createUser("bob")
	item := api.createItem(owner, "drill")

	rec := api.createBooking(booker, item, "2026-06-01T10:00:00", "2026-06-01T11:00:00")
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var created BookingDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, "WAITING", created.Status)
	assert.Equal(t, item, created.Item.ID)
	assert.Equal(t, "bob", created.Booker.Name)
	assert.Contains(t, rec.Body.String(), `"start":"2026-06-01T10:00:00"`)

	path := "/bookings/" + strconv.FormatInt(created.ID, 10)
	var approved BookingDTO
	rec = api.do(http.MethodPatch, path+"?approved=true", owner, "", &approved)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "APPROVED", approved.Status)

	var future []BookingDTO
	rec = api.do(http.MethodGet, "/bookings?state=future", booker, "", &future)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, future, 1)

	api.clock.Advance(90 * time.Minute)
	var current []BookingDTO
	rec = api.do(http.MethodGet, "/bookings/owner?state=CURRENT", owner, "", &current)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, current, 1)
	assert.Equal(t, created.ID, current[0].ID)

	var all []BookingDTO
	rec = api.do(http.MethodGet, "/bookings", booker, "", &all)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, all, 1)
}

func TestAPI_BookingErrors(t *testing.T) {
	api := newTestAPI(t, nil)
	owner := api.createUser("ann")
	booker := api.createUser("bob")
	stranger := api.createUser("eve")
	item := api.createItem(owner, "drill")

	rec := api.createBooking(owner, item, "2026-06-01T10:00:00", "2026-06-01T11:00:00")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"cannot book own item"}`, rec.Body.String())

	rec = api.createBooking(booker, item, "2026-06-01T11:00:00", "2026-06-01T10:00:00")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"invalid time window"}`, rec.Body.String())

	rec = api.createBooking(booker, 999, "2026-06-01T10:00:00", "2026-06-01T11:00:00")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = api.createBooking(booker, item, "2026-06-01T10:00:00Z", "2026-06-01T11:00:00Z")
	require.Equal(t, http.StatusCreated, rec.Code, "RFC 3339 input is accepted")
	var b BookingDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &b))
	path := "/bookings/" + strconv.FormatInt(b.ID, 10)

	rec = api.do(http.MethodGet, path, stranger, "", nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = api.do(http.MethodPatch, path+"?approved=true", booker, "", nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = api.do(http.MethodPatch, path+"?approved=maybe", owner, "", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = api.do(http.MethodGet, "/bookings?state=SOON", booker, "", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"Unknown state: SOON"}`, rec.Body.String())

	rec = api.do(http.MethodGet, "/bookings/999", booker, "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = api.do(http.MethodGet, "/bookings", 0, "", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = api.do(http.MethodPost, "/bookings", booker, `{"itemId":1}`, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAPI_UserErrors(t *testing.T) {
	api := newTestAPI(t, nil)
	api.createUser("ann")

	rec := api.do(http.MethodPost, "/users", 0, `{"name":"Other","email":"ann@mail.com"}`, nil)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = api.do(http.MethodPost, "/users", 0, `{"name":"  ","email":"x@mail.com"}`, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "name must not be blank")

	rec = api.do(http.MethodPost, "/users", 0, `{"name":"X","email":"not-an-email"}`, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = api.do(http.MethodPost, "/users", 0, `{"name":`, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = api.do(http.MethodGet, "/users/42", 0, "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	var u UserDTO
	rec = api.do(http.MethodPatch, "/users/1", 0, `{"name":"Ann B."}`, &u)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Ann B.", u.Name)
	assert.Equal(t, "ann@mail.com", u.Email)

	rec = api.do(http.MethodDelete, "/users/1", 0, "", nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestAPI_ItemViewsAndComments(t *testing.T) {
	api := newTestAPI(t, nil)
	owner := api.createUser("ann")
	booker := api.createUser("bob")
	item := api.createItem(owner, "drill")
	itemPath := "/items/" + strconv.FormatInt(item, 10)

	rec := api.do(http.MethodGet, "/items", owner, "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[{"id":1,"name":"drill","description":"for rent","available":true,"comments":[],"lastBooking":null,"nextBooking":null}]`, rec.Body.String())

	require.Equal(t, http.StatusCreated, api.createBooking(booker, item, "2026-06-01T10:00:00", "2026-06-01T11:00:00").Code)
	require.Equal(t, http.StatusCreated, api.createBooking(booker, item, "2026-06-01T14:00:00", "2026-06-01T15:00:00").Code)

	var views []ItemViewDTO
	rec = api.do(http.MethodGet, "/items", owner, "", &views)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, views, 1)
	require.NotNil(t, views[0].NextBooking)
	require.NotNil(t, views[0].LastBooking)
	assert.Contains(t, rec.Body.String(), `"nextBooking":"2026-06-01T10:00:00"`)
	assert.Contains(t, rec.Body.String(), `"lastBooking":"2026-06-01T14:00:00"`)

	rec = api.do(http.MethodPost, itemPath+"/comment", booker, `{"text":"great"}`, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	api.clock.Advance(2 * time.Hour)
	var comment CommentDTO
	rec = api.do(http.MethodPost, itemPath+"/comment", booker, `{"text":"great"}`, &comment)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Equal(t, "bob", comment.AuthorName)
	assert.Contains(t, rec.Body.String(), `"created":"2026-06-01T11:00:00"`)

	var view ItemViewDTO
	rec = api.do(http.MethodGet, itemPath, booker, "", &view)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, view.Comments, 1)
	assert.Nil(t, view.NextBooking)

	rec = api.do(http.MethodPatch, itemPath, booker, `{"available":false}`, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = api.do(http.MethodPatch, itemPath, owner, `{"available":false}`, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = api.do(http.MethodGet, "/items/search?text=DRILL", 0, "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String(), "unavailable items are not found")

	rec = api.do(http.MethodGet, "/items/search?text=", 0, "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())

	rec = api.do(http.MethodDelete, itemPath, owner, "", nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestAPI_Requests(t *testing.T) {
	api := newTestAPI(t, nil)
	author := api.createUser("cid")
	lender := api.createUser("dan")

	var req ItemRequestDTO
	rec := api.do(http.MethodPost, "/requests", author, `{"description":"need a tent"}`, &req)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	body := `{"name":"Tent","description":"2 person","available":true,"requestId":` + strconv.FormatInt(req.ID, 10) + `}`
	var it ItemDTO
	rec = api.do(http.MethodPost, "/items", lender, body, &it)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	require.NotNil(t, it.RequestID)

	var own []ItemRequestWithResponsesDTO
	rec = api.do(http.MethodGet, "/requests", author, "", &own)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, own, 1)
	assert.Equal(t, []ItemResponseDTO{{ItemID: it.ID, ItemName: "Tent", OwnerID: lender}}, own[0].Items)

	var others []ItemRequestDTO
	rec = api.do(http.MethodGet, "/requests/all", lender, "", &others)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, others, 1)

	rec = api.do(http.MethodGet, "/requests/"+strconv.FormatInt(req.ID, 10), lender, "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"itemName":"Tent"`)

	rec = api.do(http.MethodGet, "/requests/77", lender, "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAPI_BearerIdentity(t *testing.T) {
	tm := security.NewTokenManager(testSecret, time.Hour)
	api := newTestAPI(t, tm)
	owner := api.createUser("ann")

	token, err := tm.GenerateAccessToken(owner)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/items", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set(UserIDHeader, "999")
	rec := httptest.NewRecorder()
	api.router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code, "token takes precedence over the header")

	req = httptest.NewRequest(http.MethodGet, "/items", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	rec = httptest.NewRecorder()
	api.router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = api.do(http.MethodGet, "/items", owner, "", nil)
	assert.Equal(t, http.StatusOK, rec.Code, "header identity still works")
}

func TestAPI_RequestID(t *testing.T) {
	api := newTestAPI(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/users/1", nil)
	req.Header.Set(RequestIDHeader, "req-123")
	rec := httptest.NewRecorder()
	api.router.ServeHTTP(rec, req)
	assert.Equal(t, "req-123", rec.Header().Get(RequestIDHeader))

	rec = api.do(http.MethodGet, "/nowhere", 0, "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
