package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/NecoOcean/sky-take-out/pkg/audit"
	"github.com/NecoOcean/sky-take-out/pkg/errs"
)

// PageResult is the uniform shape for admin page queries.
type PageResult struct {
	Total   int64 `json:"total"`
	Records any   `json:"records"`
}

// storeErr passes business errors through untouched and wraps everything
// else as a storage failure.
func storeErr(err error) error {
	if err == nil {
		return nil
	}
	var e *errs.Error
	if errors.As(err, &e) {
		return err
	}
	return errs.Storage(err)
}

// notFoundOr translates a gorm record-not-found into the business NotFound
// with the given reason; other errors become storage failures.
func notFoundOr(err error, reason string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.NotFound(reason)
	}
	return storeErr(err)
}

func actorOf(ctx context.Context) uint {
	id, _ := audit.ActorID(ctx)
	return id
}
