package rest

import (
	"encoding/json"
	"strconv"
	"time"

	"github.com/heartmarshall/draftstore-backend/internal/domain"
	"github.com/heartmarshall/draftstore-backend/internal/service/draft"
)

type draftRequest struct {
	Type     string          `json:"type"`
	Document json.RawMessage `json:"document"`
}

type draftResponse struct {
	ID       string          `json:"id"`
	Type     string          `json:"type"`
	Document json.RawMessage `json:"document"`
	Created  string          `json:"created"`
	Updated  string          `json:"updated"`
}

type listResponse struct {
	Data   []draftResponse `json:"data"`
	Paging pagingResponse  `json:"paging"`
}

type pagingResponse struct {
	After string `json:"after,omitempty"`
}

func toDraftResponse(d *domain.Draft) draftResponse {
	return draftResponse{
		ID:       strconv.FormatInt(d.ID, 10),
		Type:     d.Type,
		Document: d.Document,
		Created:  d.CreatedAt.UTC().Format(time.RFC3339),
		Updated:  d.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func toListResponse(res *draft.ListResult) listResponse {
	resp := listResponse{Data: make([]draftResponse, 0, len(res.Drafts))}
	for i := range res.Drafts {
		resp.Data = append(resp.Data, toDraftResponse(&res.Drafts[i]))
	}
	if res.NextAfter != nil {
		resp.Paging.After = strconv.FormatInt(*res.NextAfter, 10)
	}
	return resp
}

func draftLocation(id int64) string {
	return "/drafts/" + strconv.FormatInt(id, 10)
}
