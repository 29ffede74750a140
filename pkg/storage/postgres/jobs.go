package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverdatabasesql"
	"github.com/riverqueue/river/rivertype"
)

// AddJob enqueues a River job on the handle's connection. Inside a transaction
// the job is inserted with InsertTx and only becomes visible to workers once the
// surrounding transaction commits, which keeps a batch row and its job atomic.
// It reports false when River skipped the insert as a unique duplicate.
func (p *PgSQL) AddJob(ctx context.Context, args river.JobArgs, opts *river.InsertOpts) (bool, error) {
	var (
		res *rivertype.JobInsertResult
		err error
	)

	switch db := p.DB.(type) {
	case *sql.Tx:
		res, err = insertClient(nil, func(c *river.Client[*sql.Tx]) (*rivertype.JobInsertResult, error) {
			return c.InsertTx(ctx, db, args, opts)
		})
	case *sql.DB:
		res, err = insertClient(db, func(c *river.Client[*sql.Tx]) (*rivertype.JobInsertResult, error) {
			return c.Insert(ctx, args, opts)
		})
	default:
		return false, fmt.Errorf("unsupported db handle %T", p.DB)
	}
	if err != nil {
		return false, err
	}

	return !res.UniqueSkippedAsDuplicate, nil
}

// insertClient builds an insert-only River client and hands it to insert.
func insertClient(db *sql.DB,
	insert func(c *river.Client[*sql.Tx]) (*rivertype.JobInsertResult, error)) (*rivertype.JobInsertResult, error) {
	client, err := river.NewClient(riverdatabasesql.New(db), &river.Config{})
	if err != nil {
		return nil, fmt.Errorf("could not create river queue client: %w", err)
	}

	res, err := insert(client)
	if err != nil {
		return nil, fmt.Errorf("could not insert job: %w", err)
	}

	return res, nil
}
