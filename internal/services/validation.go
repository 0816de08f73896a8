package services

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"podverse-web/internal/domain"
)

// ValidateListQuery checks paging and sort before a query reaches the backend.
func ValidateListQuery(q domain.ListQuery, sorts []domain.SortKey) error {
	allowed := make([]any, 0, len(sorts))
	for _, s := range sorts {
		allowed = append(allowed, s)
	}
	err := validation.ValidateStruct(&q,
		validation.Field(&q.Page, validation.Required, validation.Min(1)),
		validation.Field(&q.Sort, validation.Required, validation.In(allowed...)),
		validation.Field(&q.PageSize, validation.Min(0), validation.Max(domain.MaxPageSize)),
	)
	if err != nil {
		return domain.ValidationError{Field: "query", Msg: err.Error(), Err: err}
	}
	return nil
}
