package components

import (
	"venue-pricing/internal/infra/query"
	"venue-pricing/internal/infra/readstore"
	"venue-pricing/internal/infra/uow"
	"venue-pricing/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
)

var baseOption = fx.Provide(
	uow.NewPostgresUoW,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		fx.Annotate(
			NewQueries,
			fx.As(new(readstore.TariffReadQueries)),
		),
		fx.Annotate(
			readstore.NewTariffReadStore,
			fx.As(new(shared.TariffReadStore)),
		),
	),
)

func NewQueries(_ *pgxpool.Pool) *query.Queries {
	return query.New()
}
