package response

import (
	"catalog-service/internal/usecase/commands"
)

type SyncReportResponse struct {
	ProductID string            `json:"product_id"`
	Kind      string            `json:"kind"`
	Updated   []string          `json:"updated"`
	Skipped   []string          `json:"skipped"`
	Failed    map[string]string `json:"failed"`
}

func FromSyncReport(r *commands.SyncReport) *SyncReportResponse {
	res := &SyncReportResponse{
		ProductID: r.ProductID,
		Kind:      string(r.Kind),
		Updated:   make([]string, 0, len(r.Updated)),
		Skipped:   make([]string, 0, len(r.Skipped)),
		Failed:    make(map[string]string, len(r.Failed)),
	}
	for _, id := range r.Updated {
		res.Updated = append(res.Updated, id.String())
	}
	for _, id := range r.Skipped {
		res.Skipped = append(res.Skipped, id.String())
	}
	for id, err := range r.Failed {
		res.Failed[id.String()] = err.Error()
	}
	return res
}
