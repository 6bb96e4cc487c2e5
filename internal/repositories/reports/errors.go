package reports

import (
	apperr "github.com/KirkDiggler/wavebattle/internal/errors"
)

func newReportNotFoundError(id string) error {
	return apperr.NotFoundf("report %s not found", id).WithMeta("report_id", id)
}

func validateReport(report *Report) error {
	if report == nil {
		return apperr.InvalidArgument("report cannot be nil")
	}
	if report.ID == "" {
		return apperr.InvalidArgument("report ID cannot be empty")
	}
	return nil
}

func cloneReport(r *Report) *Report {
	c := *r
	c.Party = append([]string(nil), r.Party...)
	c.Survivors = append([]string(nil), r.Survivors...)
	c.Log = append([]string(nil), r.Log...)
	return &c
}
