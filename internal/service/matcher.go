package service

import "shareit-backend/internal/domain"

// AttachResponses groups candidate items by the request they answer and
// returns one view per request in the order given. Items without a request
// are ignored.
func AttachResponses(requests []domain.ItemRequest, candidates []domain.Item) []domain.RequestView {
	byRequest := make(map[int64][]domain.ItemResponse)
	for _, it := range candidates {
		if it.RequestID == nil {
			continue
		}
		byRequest[*it.RequestID] = append(byRequest[*it.RequestID], domain.ItemResponse{
			ItemID:   it.ID,
			ItemName: it.Name,
			OwnerID:  it.OwnerID,
		})
	}

	views := make([]domain.RequestView, 0, len(requests))
	for _, r := range requests {
		responses := byRequest[r.ID]
		if responses == nil {
			responses = []domain.ItemResponse{}
		}
		views = append(views, domain.RequestView{ItemRequest: r, Responses: responses})
	}
	return views
}

func requestIDs(requests []domain.ItemRequest) []int64 {
	ids := make([]int64, 0, len(requests))
	for _, r := range requests {
		ids = append(ids, r.ID)
	}
	return ids
}
