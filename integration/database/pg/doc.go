// Package pg provides PostgreSQL connection management for the auth
// stores: a pgxpool with retry-based establishment, goose migrations and
// a health check probe.
//
// Typical startup:
//
//	cfg := config.MustLoad[pg.Config]()
//	pool, err := pg.Connect(ctx, cfg)
//	if err != nil {
//	    return err
//	}
//	defer pool.Close()
//
//	if err := pg.Migrate(ctx, pool, cfg, log); err != nil {
//	    return err
//	}
//
//	users := user.NewPostgresStore(pool)
//	tokens := logintoken.NewPostgresStore(pool)
//	ips := iplog.NewPostgresStore(pool)
//
// Error classification helpers (IsNotFoundError, IsDuplicateKeyError) map
// driver errors to the patterns store code cares about. WithTx and
// TxFromContext propagate a pgx.Tx through a context so multiple store
// calls can share one transaction.
package pg
