package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/SscSPs/money_rates_app/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		RateStore:     newPgxKeyValueRepository(dbPool, NamespaceRates),
		SettingsStore: newPgxKeyValueRepository(dbPool, NamespaceSettings),
	}
}
