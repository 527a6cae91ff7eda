package ladder

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/elo-ladder/internal/rating"
)

// store keeps one table per mode in a SQL database.
type store struct {
	db *sql.DB
}

// New creates a Store backed by db. The caller owns db and closes it.
func New(db *sql.DB) Store {
	return &store{
		db: db,
	}
}

const playerColumns = "name, rating, wins, losses, version"

func (s *store) Get(ctx context.Context, mode Mode, name string) (PlayerRecord, error) {
	table, err := mode.table()
	if err != nil {
		return PlayerRecord{}, err
	}

	row := s.db.QueryRowContext(ctx, "SELECT "+playerColumns+" FROM "+table+" WHERE name = ?", name)
	player, err := scanPlayer(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return PlayerRecord{}, fmt.Errorf("%w: %s in %s", ErrPlayerNotFound, name, mode)
		}
		log.Error("Failed to query player", "error", err, "mode", mode, "name", name)
		return PlayerRecord{}, unavailable(err)
	}
	return player, nil
}

// GetAll matches rows back to names by the name column; row order is
// irrelevant.
func (s *store) GetAll(ctx context.Context, mode Mode, names []string) (map[string]PlayerRecord, error) {
	table, err := mode.table()
	if err != nil {
		return nil, err
	}
	if err := distinct(names); err != nil {
		return nil, err
	}
	if len(names) == 0 {
		return map[string]PlayerRecord{}, nil
	}

	query := fmt.Sprintf("SELECT %s FROM %s WHERE name IN (%s)", playerColumns, table, placeholders(len(names)))
	rows, err := s.db.QueryContext(ctx, query, ToAnySlice(names)...)
	if err != nil {
		log.Error("Failed to query players", "error", err, "mode", mode, "names", names)
		return nil, unavailable(err)
	}
	defer rows.Close()

	players := make(map[string]PlayerRecord, len(names))
	for rows.Next() {
		player, err := scanPlayer(rows)
		if err != nil {
			return nil, unavailable(err)
		}
		players[player.Name] = player
	}
	if err := rows.Err(); err != nil {
		return nil, unavailable(err)
	}

	var missing []string
	for _, name := range names {
		if _, ok := players[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s in %s", ErrPlayerNotFound, strings.Join(missing, ", "), mode)
	}
	return players, nil
}

func (s *store) List(ctx context.Context, mode Mode) ([]PlayerRecord, error) {
	table, err := mode.table()
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, "SELECT "+playerColumns+" FROM "+table+" ORDER BY rating DESC, name ASC")
	if err != nil {
		log.Error("Failed to list ladder", "error", err, "mode", mode)
		return nil, unavailable(err)
	}
	defer rows.Close()

	players := make([]PlayerRecord, 0)
	for rows.Next() {
		player, err := scanPlayer(rows)
		if err != nil {
			return nil, unavailable(err)
		}
		players = append(players, player)
	}
	if err := rows.Err(); err != nil {
		return nil, unavailable(err)
	}
	return players, nil
}

func (s *store) Create(ctx context.Context, mode Mode, name string) (PlayerRecord, error) {
	table, err := mode.table()
	if err != nil {
		return PlayerRecord{}, err
	}
	if strings.TrimSpace(name) == "" {
		return PlayerRecord{}, fmt.Errorf("%w: %q", ErrInvalidName, name)
	}

	res, err := s.db.ExecContext(ctx,
		"INSERT INTO "+table+" ("+playerColumns+") VALUES (?, ?, 0, 0, 0) ON CONFLICT(name) DO NOTHING",
		name, rating.Initial)
	if err != nil {
		log.Error("Failed to add player", "error", err, "mode", mode, "name", name)
		return PlayerRecord{}, unavailable(err)
	}
	inserted, err := res.RowsAffected()
	if err != nil {
		return PlayerRecord{}, unavailable(err)
	}
	if inserted == 0 {
		return PlayerRecord{}, fmt.Errorf("%w: %s in %s", ErrAlreadyExists, name, mode)
	}

	log.Info("Added player to ladder", "mode", mode, "name", name)
	return PlayerRecord{Name: name, Rating: rating.Initial}, nil
}

// ApplyUpdates writes every update inside one transaction. Each row is
// compared on its version so a concurrent writer is detected instead of
// overwritten. Rows are written in name order.
func (s *store) ApplyUpdates(ctx context.Context, mode Mode, updates []Update) error {
	table, err := mode.table()
	if err != nil {
		return err
	}
	if len(updates) == 0 {
		return nil
	}

	ordered := slices.Clone(updates)
	slices.SortFunc(ordered, func(a, b Update) int { return strings.Compare(a.Name, b.Name) })
	for i := 1; i < len(ordered); i++ {
		if ordered[i].Name == ordered[i-1].Name {
			return fmt.Errorf("%w: %s", ErrDuplicateParticipant, ordered[i].Name)
		}
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return unavailable(err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx,
		"UPDATE "+table+" SET rating = ?, wins = ?, losses = ?, version = version + 1 WHERE name = ? AND version = ?")
	if err != nil {
		return unavailable(err)
	}
	defer stmt.Close()

	for _, u := range ordered {
		res, err := stmt.ExecContext(ctx, u.Rating, u.Wins, u.Losses, u.Name, u.Version)
		if err != nil {
			log.Error("Failed to update player", "error", err, "mode", mode, "name", u.Name)
			return unavailable(err)
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return unavailable(err)
		}
		if affected == 1 {
			continue
		}

		var exists bool
		if err := tx.QueryRowContext(ctx, "SELECT EXISTS(SELECT 1 FROM "+table+" WHERE name = ?)", u.Name).Scan(&exists); err != nil {
			return unavailable(err)
		}
		if !exists {
			return fmt.Errorf("%w: %s in %s", ErrPlayerNotFound, u.Name, mode)
		}
		log.Debug("Version changed since snapshot", "mode", mode, "name", u.Name, "version", u.Version)
		return fmt.Errorf("%w: %s in %s", ErrStoreConflict, u.Name, mode)
	}

	if err := tx.Commit(); err != nil {
		log.Error("Failed to commit ladder update", "error", err, "mode", mode)
		return unavailable(err)
	}
	return nil
}

func scanPlayer(scanner interface{ Scan(...any) error }) (PlayerRecord, error) {
	var p PlayerRecord
	err := scanner.Scan(&p.Name, &p.Rating, &p.Wins, &p.Losses, &p.Version)
	return p, err
}

func distinct(names []string) error {
	seen := make(map[string]struct{}, len(names))
	for _, name := range names {
		if _, ok := seen[name]; ok {
			return fmt.Errorf("%w: %s", ErrDuplicateParticipant, name)
		}
		seen[name] = struct{}{}
	}
	return nil
}

func placeholders(n int) string {
	return strings.TrimSuffix(strings.Repeat("?, ", n), ", ")
}

func unavailable(err error) error {
	return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
}

func ToAnySlice[T any](s []T) []any {
	a := make([]any, len(s))
	for i, v := range s {
		a[i] = v
	}
	return a
}
