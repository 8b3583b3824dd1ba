package usecase

import (
	"errors"

	dataset "covid-dashboard-service/internal/dataset/core/domain"
)

var ErrSnapshotNotFound = errors.New("aggregate snapshot not found")

// LatestSnapshot returns the World record with the greatest date.
func LatestSnapshot(ds *dataset.Dataset) (*dataset.Record, error) {
	var latest *dataset.Record
	if ds != nil {
		for _, r := range ds.Records {
			if r.Location != dataset.WorldLocation {
				continue
			}
			if latest == nil || r.Date.After(latest.Date) {
				latest = r
			}
		}
	}
	if latest == nil {
		return nil, ErrSnapshotNotFound
	}
	return latest, nil
}
