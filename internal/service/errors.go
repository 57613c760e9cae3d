package service

import (
	"errors"

	"github.com/spec-kit/jobboard-admin/internal/repository"
	apperrors "github.com/spec-kit/jobboard-admin/pkg/util/errorutil"
)

// mapRepoError converts repository sentinels into API errors; resource names the missing entity.
func mapRepoError(err error, resource string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repository.ErrNotFound):
		return apperrors.NewNotFound(resource)
	case errors.Is(err, repository.ErrDuplicate):
		return apperrors.NewConflict(resource+" already exists", nil)
	default:
		var de *apperrors.DomainError
		if errors.As(err, &de) {
			return err
		}
		return apperrors.NewInternalError(err)
	}
}

var errNoStorage = errors.New("logo storage is not configured")
