package store

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"datetime-picker/internal/model"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	_ "modernc.org/sqlite"
)

// Values are stored as RFC3339Nano text so the original offset survives a
// round trip.
const valueLayout = time.RFC3339Nano

func (s Store) openSQLite(ctx context.Context) (*sql.DB, error) {
	if err := s.Ensure(); err != nil {
		return nil, errors.Wrap(err, "create store dir")
	}
	// modernc.org/sqlite driver name is "sqlite".
	db, err := sql.Open("sqlite", s.sqlitePath())
	if err != nil {
		return nil, errors.Wrap(err, "open sqlite")
	}
	// WAL enables one writer + many readers; busy_timeout helps when the CLI
	// and a running picker touch the store at the same time.
	pragmas := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA synchronous=NORMAL;",
		"PRAGMA busy_timeout=5000;",
	}
	for _, p := range pragmas {
		if _, err := db.ExecContext(ctx, p); err != nil {
			_ = db.Close()
			return nil, errors.Wrapf(err, "sqlite %s", strings.TrimSuffix(p, ";"))
		}
	}
	if err := s.migrateSQLite(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

func (s Store) migrateSQLite(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS slots (
			name TEXT PRIMARY KEY,
			value TEXT NOT NULL,
			updated_at_unixms INTEGER NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS picks (
			id TEXT PRIMARY KEY,
			slot TEXT NOT NULL,
			value TEXT NOT NULL,
			source TEXT NOT NULL,
			committed_at_unixms INTEGER NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_picks_slot ON picks(slot, committed_at_unixms);`,
	}
	for _, st := range stmts {
		if _, err := db.ExecContext(ctx, st); err != nil {
			return errors.Wrap(err, "migrate sqlite")
		}
	}
	s.log().WithField("path", s.sqlitePath()).Debug("sqlite schema ready")
	return nil
}

func normalizeSlot(slot string) string {
	slot = strings.TrimSpace(slot)
	if slot == "" {
		return model.DefaultSlot
	}
	return slot
}

// SaveCommit records value as the slot's last committed value and appends
// it to the slot history.
func (s Store) SaveCommit(ctx context.Context, slot string, value time.Time, source string) (model.Pick, error) {
	slot = normalizeSlot(slot)
	db, err := s.openSQLite(ctx)
	if err != nil {
		return model.Pick{}, err
	}
	defer db.Close()

	tx, err := db.BeginTx(ctx, &sql.TxOptions{})
	if err != nil {
		return model.Pick{}, errors.Wrap(err, "begin tx")
	}
	defer func() { _ = tx.Rollback() }()

	now := time.Now().UTC()
	p := model.Pick{
		ID:          newPickID(),
		Slot:        slot,
		Value:       value,
		CommittedAt: now.Truncate(time.Millisecond),
		Source:      strings.TrimSpace(source),
	}
	raw := value.Format(valueLayout)

	if _, err := tx.ExecContext(ctx, `INSERT OR REPLACE INTO slots(name, value, updated_at_unixms) VALUES(?, ?, ?)`,
		slot, raw, now.UnixMilli()); err != nil {
		return model.Pick{}, errors.Wrap(err, "upsert slot")
	}
	if _, err := tx.ExecContext(ctx, `INSERT INTO picks(id, slot, value, source, committed_at_unixms) VALUES(?, ?, ?, ?, ?)`,
		p.ID, slot, raw, p.Source, now.UnixMilli()); err != nil {
		return model.Pick{}, errors.Wrap(err, "insert pick")
	}
	if err := tx.Commit(); err != nil {
		return model.Pick{}, errors.Wrap(err, "commit tx")
	}

	s.log().WithFields(logrus.Fields{"slot": slot, "value": raw, "id": p.ID}).Debug("pick committed")
	return p, nil
}

// LastCommitted returns the slot's last committed value.
func (s Store) LastCommitted(ctx context.Context, slot string) (time.Time, bool, error) {
	slot = normalizeSlot(slot)
	db, err := s.openSQLite(ctx)
	if err != nil {
		return time.Time{}, false, err
	}
	defer db.Close()

	var raw string
	err = db.QueryRowContext(ctx, `SELECT value FROM slots WHERE name = ?`, slot).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return time.Time{}, false, nil
	}
	if err != nil {
		return time.Time{}, false, errors.Wrap(err, "query slot")
	}
	v, err := time.Parse(valueLayout, raw)
	if err != nil {
		return time.Time{}, false, errors.Wrapf(err, "parse stored value for slot %q", slot)
	}
	return v, true, nil
}

// Slots lists every slot, by name.
func (s Store) Slots(ctx context.Context) ([]model.Slot, error) {
	db, err := s.openSQLite(ctx)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	rows, err := db.QueryContext(ctx, `SELECT name, value, updated_at_unixms FROM slots ORDER BY name`)
	if err != nil {
		return nil, errors.Wrap(err, "query slots")
	}
	defer rows.Close()

	out := []model.Slot{}
	for rows.Next() {
		var (
			name, raw string
			updated   int64
		)
		if err := rows.Scan(&name, &raw, &updated); err != nil {
			return nil, errors.Wrap(err, "scan slot")
		}
		v, err := time.Parse(valueLayout, raw)
		if err != nil {
			return nil, errors.Wrapf(err, "parse stored value for slot %q", name)
		}
		out = append(out, model.Slot{Name: name, Value: v, UpdatedAt: time.UnixMilli(updated).UTC()})
	}
	return out, errors.Wrap(rows.Err(), "iterate slots")
}

// History returns the newest picks first. An empty slot lists every slot;
// limit <= 0 means no limit.
func (s Store) History(ctx context.Context, slot string, limit int) ([]model.Pick, error) {
	db, err := s.openSQLite(ctx)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	q := `SELECT id, slot, value, source, committed_at_unixms FROM picks`
	var args []any
	if strings.TrimSpace(slot) != "" {
		q += ` WHERE slot = ?`
		args = append(args, strings.TrimSpace(slot))
	}
	q += ` ORDER BY committed_at_unixms DESC, rowid DESC`
	if limit > 0 {
		q += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, errors.Wrap(err, "query picks")
	}
	defer rows.Close()

	out := []model.Pick{}
	for rows.Next() {
		var (
			p         model.Pick
			raw       string
			committed int64
		)
		if err := rows.Scan(&p.ID, &p.Slot, &raw, &p.Source, &committed); err != nil {
			return nil, errors.Wrap(err, "scan pick")
		}
		v, err := time.Parse(valueLayout, raw)
		if err != nil {
			return nil, errors.Wrapf(err, "parse stored value for pick %s", p.ID)
		}
		p.Value = v
		p.CommittedAt = time.UnixMilli(committed).UTC()
		out = append(out, p)
	}
	return out, errors.Wrap(rows.Err(), "iterate picks")
}
