package db

import (
	"context"

	"github.com/kitmak72/room-booking-system/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgxpool"
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS rooms (
	id BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
	name TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS bookings (
	id BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
	room_id BIGINT NOT NULL REFERENCES rooms(id),
	start_time TIMESTAMPTZ NOT NULL,
	end_time TIMESTAMPTZ NOT NULL,
	request_time TIMESTAMPTZ NOT NULL DEFAULT now(),
	status TEXT NOT NULL DEFAULT 'PENDING',
	CONSTRAINT bookings_slot_valid CHECK (start_time < end_time),
	CONSTRAINT bookings_status_valid CHECK (status IN ('PENDING', 'ACCEPTED', 'REJECTED'))
);

CREATE INDEX IF NOT EXISTS idx_bookings_pending ON bookings(request_time, id) WHERE status = 'PENDING';
CREATE INDEX IF NOT EXISTS idx_bookings_room_accepted ON bookings(room_id, start_time, end_time) WHERE status = 'ACCEPTED';
`

func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, schemaSQL); err != nil {
		return errs.Wrap(err, "failed to apply schema")
	}
	return nil
}
