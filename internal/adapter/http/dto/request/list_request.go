package request

import "motomind/internal/usecase"

type ListRecordsRequest struct {
	Page      int    `form:"page"`
	StartDate string `form:"start_date"`
	EndDate   string `form:"end_date"`
}

func (r ListRecordsRequest) ToQuery() (usecase.ListQuery, error) {
	q := usecase.ListQuery{Page: r.Page}
	var err error
	if q.StartDate, err = ParseDate("start_date", r.StartDate); err != nil {
		return usecase.ListQuery{}, err
	}
	if q.EndDate, err = ParseDate("end_date", r.EndDate); err != nil {
		return usecase.ListQuery{}, err
	}
	return q, nil
}
