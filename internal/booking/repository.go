package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	Create(ctx context.Context, b *Booking) error
	GetByID(ctx context.Context, id int64) (*Booking, error)
	List(ctx context.Context, filter Filter) ([]*Booking, error)
	ListByItemID(ctx context.Context, itemID int64) ([]*Booking, error)
	ListByItemIDs(ctx context.Context, itemIDs []int64) ([]*Booking, error)

	// SetStatusIfWaiting flips the status in a single conditional update so
	// two concurrent approval attempts cannot both win. It reports whether
	// a row was changed.
	SetStatusIfWaiting(ctx context.Context, id int64, status Status) (bool, error)

	// HasCompletedBooking reports whether the user has a booking of the
	// item that ended before the given moment. Satisfies the item module's
	// comment-eligibility check.
	HasCompletedBooking(ctx context.Context, itemID, bookerID int64, at time.Time) (bool, error)
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func selectBookings() squirrel.SelectBuilder {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	return psql.Select(
		"b.id", "b.start_time", "b.end_time",
		"b.item_id", "i.name", "i.owner_id",
		"b.booker_id", "u.name", "b.status",
	).
		From("public.bookings b").
		Join("public.items i ON b.item_id = i.id").
		Join("public.users u ON b.booker_id = u.id")
}

func (r *pgxRepository) Create(ctx context.Context, b *Booking) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.bookings").
		Columns("start_time", "end_time", "item_id", "booker_id", "status").
		Values(b.Start, b.End, b.ItemID, b.BookerID, b.Status).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create booking query failed: %w", err)
	}

	if err := r.pool.QueryRow(ctx, query, args...).Scan(&b.ID); err != nil {
		return fmt.Errorf("create booking failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id int64) (*Booking, error) {
	query, args, err := selectBookings().
		Where(squirrel.Eq{"b.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get booking query failed: %w", err)
	}

	row := r.pool.QueryRow(ctx, query, args...)

	var b Booking
	if err := row.Scan(
		&b.ID, &b.Start, &b.End,
		&b.ItemID, &b.ItemName, &b.ItemOwnerID,
		&b.BookerID, &b.BookerName, &b.Status,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get booking failed: %w", err)
	}
	return &b, nil
}

func (r *pgxRepository) List(ctx context.Context, filter Filter) ([]*Booking, error) {
	query := selectBookings()

	switch filter.Role {
	case RoleOwner:
		query = query.Where(squirrel.Eq{"i.owner_id": filter.ViewerID})
	default:
		query = query.Where(squirrel.Eq{"b.booker_id": filter.ViewerID})
	}

	query = applyStateFilter(query, filter.State, filter.Now).
		OrderBy("b.start_time DESC").
		Limit(uint64(filter.Limit)).
		Offset(uint64(filter.Offset))

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list bookings query failed: %w", err)
	}

	return r.queryBookings(ctx, sql, args)
}

// applyStateFilter narrows the listing to one state view. CURRENT, PAST and
// FUTURE classify the window against one fixed `now`; WAITING and REJECTED
// select on status alone, so the views overlap rather than partition.
func applyStateFilter(query squirrel.SelectBuilder, state State, now time.Time) squirrel.SelectBuilder {
	switch state {
	case StateCurrent:
		return query.
			Where(squirrel.LtOrEq{"b.start_time": now}).
			Where(squirrel.Gt{"b.end_time": now})
	case StatePast:
		return query.Where(squirrel.Lt{"b.end_time": now})
	case StateFuture:
		return query.Where(squirrel.Gt{"b.start_time": now})
	case StateWaiting:
		return query.Where(squirrel.Eq{"b.status": StatusWaiting})
	case StateRejected:
		return query.Where(squirrel.Eq{"b.status": StatusRejected})
	default:
		return query
	}
}

func (r *pgxRepository) ListByItemID(ctx context.Context, itemID int64) ([]*Booking, error) {
	query, args, err := selectBookings().
		Where(squirrel.Eq{"b.item_id": itemID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list bookings by item query failed: %w", err)
	}
	return r.queryBookings(ctx, query, args)
}

func (r *pgxRepository) ListByItemIDs(ctx context.Context, itemIDs []int64) ([]*Booking, error) {
	if len(itemIDs) == 0 {
		return nil, nil
	}

	query, args, err := selectBookings().
		Where(squirrel.Eq{"b.item_id": itemIDs}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list bookings by items query failed: %w", err)
	}
	return r.queryBookings(ctx, query, args)
}

func (r *pgxRepository) SetStatusIfWaiting(ctx context.Context, id int64, status Status) (bool, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Update("public.bookings").
		Set("status", status).
		Where(squirrel.Eq{"id": id, "status": StatusWaiting}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build set booking status query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("set booking status failed: %w", err)
	}
	return ct.RowsAffected() > 0, nil
}

func (r *pgxRepository) HasCompletedBooking(ctx context.Context, itemID, bookerID int64, at time.Time) (bool, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	sub, args, err := psql.Select("1").
		From("public.bookings").
		Where(squirrel.Eq{"item_id": itemID, "booker_id": bookerID}).
		Where(squirrel.Lt{"end_time": at}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build completed booking query failed: %w", err)
	}

	var exists bool
	if err := r.pool.QueryRow(ctx, "SELECT EXISTS ("+sub+")", args...).Scan(&exists); err != nil {
		return false, fmt.Errorf("check completed booking failed: %w", err)
	}
	return exists, nil
}

func (r *pgxRepository) queryBookings(ctx context.Context, query string, args []any) ([]*Booking, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list bookings failed: %w", err)
	}
	defer rows.Close()

	var bookings []*Booking
	for rows.Next() {
		var b Booking
		if err := rows.Scan(
			&b.ID, &b.Start, &b.End,
			&b.ItemID, &b.ItemName, &b.ItemOwnerID,
			&b.BookerID, &b.BookerName, &b.Status,
		); err != nil {
			return nil, fmt.Errorf("scan booking failed: %w", err)
		}
		bookings = append(bookings, &b)
	}
	return bookings, rows.Err()
}
