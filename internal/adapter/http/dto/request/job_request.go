package request

// FinalizeJobRequest settles a job. The cost carries no binding tag: the use
// case owns the >0 rule, so an explicit zero gets the cost-specific error
// rather than a generic binding failure.
type FinalizeJobRequest struct {
	Description string  `json:"description" binding:"required"`
	FinalCost   float64 `json:"final_cost"`
}

// CreatePreferenceRequest asks for a checkout preference for a finished job.
type CreatePreferenceRequest struct {
	JobID       string  `json:"job_id" binding:"required"`
	Title       string  `json:"title" binding:"required"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount" binding:"required"`
	Quantity    int     `json:"quantity"`
}
