package usecase

// Item statuses in an ingestion report.
const (
	ItemSuccess = "success"
	ItemSkipped = "skipped"
	ItemFailed  = "failed"
)

// ItemResult records the outcome of one unit of ingestion work, keyed by the
// provider identifier it concerned.
type ItemResult struct {
	Key    string `json:"key"`
	Status string `json:"status"`
	Reason string `json:"reason,omitempty"`
}

// Report summarizes an ingestion run. One failed item never fails the run;
// callers inspect the counts to decide how loudly to complain.
type Report struct {
	Items []ItemResult `json:"items"`
}

func (r *Report) add(key, status, reason string) {
	r.Items = append(r.Items, ItemResult{Key: key, Status: status, Reason: reason})
}

func (r *Report) Succeeded() int { return r.count(ItemSuccess) }
func (r *Report) Skipped() int   { return r.count(ItemSkipped) }
func (r *Report) Failed() int    { return r.count(ItemFailed) }

func (r *Report) count(status string) int {
	n := 0
	for _, item := range r.Items {
		if item.Status == status {
			n++
		}
	}
	return n
}
