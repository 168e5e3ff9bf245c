package service

import (
	"context"
	"fmt"

	"go-gin-cinema-booking/internal/idgen"
	"go-gin-cinema-booking/internal/model"
	"go-gin-cinema-booking/internal/repository"
	apperrors "go-gin-cinema-booking/pkg/app_errors"

	"github.com/jackc/pgx/v5"
)

// validateID rejects identifiers that cannot have been allocated for entity.
func validateID(id, entity string) error {
	if !model.HasIDPrefix(id, entity) {
		return fmt.Errorf("%w: invalid %sID format", apperrors.ErrInvalidID, entity)
	}
	return nil
}

func commit(ctx context.Context, tx pgx.Tx) error {
	return repository.TranslateError(tx.Commit(ctx))
}

// resolveID keeps a client-chosen id or allocates one. A client id in the generated form
// raises the counter first, so later allocations never collide with it.
func resolveID(ctx context.Context, ids idgen.Allocator, entity, clientID string) (string, error) {
	if clientID == "" {
		return ids.Next(ctx, entity)
	}
	if n, ok := model.IDSuffix(clientID, entity); ok {
		if err := ids.WarmUp(ctx, entity, n); err != nil {
			return "", err
		}
	}
	return clientID, nil
}
