package impl

import (
	domainerrors "funnel/internal/domain/errors"
	"funnel/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// notFoundMappings pairs persistence sentinels with the application error reported for them.
var notFoundMappings = []struct {
	sentinel error
	appErr   *domainerrors.BaseError
}{
	{repository.ErrAccountNotFound, domainerrors.ErrAccountNotFound},
	{repository.ErrContactNotFound, domainerrors.ErrContactNotFound},
	{repository.ErrLeadNotFound, domainerrors.ErrLeadNotFound},
	{repository.ErrLeadDetailsNotFound, domainerrors.ErrLeadDetailsNotFound},
	{repository.ErrLeadNoteNotFound, domainerrors.ErrLeadNoteNotFound},
	{repository.ErrLeadProductNotFound, domainerrors.ErrLeadProductNotFound},
}

// translateRepoError converts repository sentinels into application errors and
// annotates anything else with msg.
func translateRepoError(err error, msg string) error {
	if err == nil {
		return nil
	}

	for _, m := range notFoundMappings {
		if errors.Is(err, m.sentinel) {
			return errors.Wrap(m.appErr, msg)
		}
	}

	return errors.Wrap(err, msg)
}

// uniqueIDs drops duplicates while keeping the first-seen order. A nil input stays nil.
func uniqueIDs(ids []uuid.UUID) []uuid.UUID {
	if ids == nil {
		return nil
	}

	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}

	return out
}
