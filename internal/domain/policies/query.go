package policies

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// PolicyMetaQuery filters and paginates policy metadata listings.
type PolicyMetaQuery struct {
	PolicyType    string
	DetectedType  string
	Filename      string
	UploadedAfter time.Time
	Limit         int    `validate:"min=1,max=100"`
	Offset        int    `validate:"min=0"`
	SortBy        string `validate:"omitempty,oneof=upload_time overall_risk filename"`
	SortOrder     string `validate:"omitempty,oneof=asc desc"`
}

// NewPolicyMetaQuery creates a query with default pagination.
func NewPolicyMetaQuery() *PolicyMetaQuery {
	return &PolicyMetaQuery{
		Limit:     10,
		SortBy:    "upload_time",
		SortOrder: "desc",
	}
}

// Validate for validating PolicyMetaQuery struct
func (q *PolicyMetaQuery) Validate() error {
	validate := validator.New()
	if err := validate.Struct(q); err != nil {
		return fmt.Errorf("validation failed for PolicyMetaQuery: %w", err)
	}
	return nil
}
