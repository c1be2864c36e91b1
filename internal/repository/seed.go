package repository

import (
	"context"
	"fmt"

	"github.com/alexanderramin/linebrief/internal/db"
	"github.com/alexanderramin/linebrief/internal/domain"
)

// SeedCatalog writes every record set into the mirror in one transaction.
// Modules are registered in tab order and records keep their slice order.
// Seeding a mirror that already holds records for a module fails with
// ErrAlreadySeeded.
func SeedCatalog(ctx context.Context, uow db.UnitOfWork, sets map[domain.ModuleKey][]domain.Record) error {
	return uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		repo := NewSQLiteRecordRepo(tx)
		for order, key := range domain.ModuleKeys {
			if err := repo.RegisterModule(ctx, key, order); err != nil {
				return err
			}
			n, err := repo.Count(ctx, key)
			if err != nil {
				return err
			}
			if n > 0 {
				return fmt.Errorf("seeding %s: %w", key, ErrAlreadySeeded)
			}
			for pos, rec := range sets[key] {
				if rec.Module() != key {
					return fmt.Errorf("seeding %s: record %d belongs to %s", key, pos, rec.Module())
				}
				if err := repo.Insert(ctx, pos, rec); err != nil {
					return err
				}
			}
		}
		return nil
	})
}
