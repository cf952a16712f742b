package http

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"shareit-backend/internal/domain"
)

var errMissingPathID = errors.New("missing path id")

func pathID(r *http.Request, name string) (int64, error) {
	raw, ok := mux.Vars(r)[name]
	if !ok {
		return 0, fmt.Errorf("%w: %s", errMissingPathID, name)
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.Invalid(fmt.Sprintf("invalid %s: %s", name, raw))
	}
	return id, nil
}

func queryBool(r *http.Request, name string) (bool, error) {
	raw := r.URL.Query().Get(name)
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return false, domain.Invalid(fmt.Sprintf("invalid %s: %q", name, raw))
	}
	return b, nil
}
