// Package store holds the persistence layer: ClickHouse for the flat
// match-participant rows the analytics engine consumes, Postgres for the
// editable catalogs, and Redis for computed-aggregate caching.
package store

import (
	"context"
	"fmt"

	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"
	"go.uber.org/zap"

	"github.com/devbm7/deadshot-stats/internal/models"
)

const participantsTable = "deadshot.match_participants"

// MatchStore reads and writes the flat per-player match rows. Every analytics
// computation runs on an in-memory snapshot of this table; ClickHouse only
// ever sees inserts and full scans.
type MatchStore struct {
	ch     driver.Conn
	logger *zap.SugaredLogger
}

func NewMatchStore(ch driver.Conn, logger *zap.SugaredLogger) *MatchStore {
	return &MatchStore{ch: ch, logger: logger}
}

// InstallSchema creates the database and participant table if absent. Safe to
// run on every startup.
func (s *MatchStore) InstallSchema(ctx context.Context) error {
	if err := s.ch.Exec(ctx, "CREATE DATABASE IF NOT EXISTS deadshot"); err != nil {
		return fmt.Errorf("create database: %w", err)
	}
	ddl := fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s (
			match_id     Int64,
			datetime     DateTime,
			game_mode    LowCardinality(String),
			map_name     LowCardinality(String),
			team         Nullable(String),
			player_name  String,
			kills        Int32,
			deaths       Int32,
			assists      Nullable(Int32),
			score        Int32,
			weapon       LowCardinality(String),
			ping         Nullable(Int32),
			coins        Nullable(Int32),
			tags         Nullable(Int32),
			match_length Int32
		) ENGINE = MergeTree()
		ORDER BY (datetime, match_id)
	`, participantsTable)
	if err := s.ch.Exec(ctx, ddl); err != nil {
		return fmt.Errorf("create table: %w", err)
	}
	return nil
}

// Snapshot loads the entire participant table ordered by datetime then match
// id. The table is small by analytical standards (thousands of rows, not
// billions), so a full scan per refresh is the simplest correct approach.
func (s *MatchStore) Snapshot(ctx context.Context) ([]models.MatchRow, error) {
	query := fmt.Sprintf(`
		SELECT match_id, datetime, game_mode, map_name, team, player_name,
		       kills, deaths, assists, score, weapon, ping, coins, tags, match_length
		FROM %s
		ORDER BY datetime, match_id
	`, participantsTable)

	rows, err := s.ch.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("snapshot query: %w", err)
	}
	defer rows.Close()

	var out []models.MatchRow
	for rows.Next() {
		var (
			row                        models.MatchRow
			mode                       string
			kills, deaths, score, mlen int32
			assists, ping, coins, tags *int32
		)
		if err := rows.Scan(
			&row.MatchID, &row.Datetime, &mode, &row.MapName, &row.Team,
			&row.PlayerName, &kills, &deaths, &assists, &score,
			&row.Weapon, &ping, &coins, &tags, &mlen,
		); err != nil {
			return nil, fmt.Errorf("snapshot scan: %w", err)
		}
		row.GameMode = models.GameMode(mode)
		row.Kills = int(kills)
		row.Deaths = int(deaths)
		row.Score = int(score)
		row.MatchLength = int(mlen)
		row.Assists = intPtr(assists)
		row.Ping = intPtr(ping)
		row.Coins = intPtr(coins)
		row.Tags = intPtr(tags)
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("snapshot rows: %w", err)
	}
	return out, nil
}

// InsertRows batch-inserts participant rows. Callers normalize datetimes
// before handing rows over; the store writes them verbatim.
func (s *MatchStore) InsertRows(ctx context.Context, rows []models.MatchRow) error {
	if len(rows) == 0 {
		return nil
	}
	batch, err := s.ch.PrepareBatch(ctx, fmt.Sprintf(`
		INSERT INTO %s (
			match_id, datetime, game_mode, map_name, team, player_name,
			kills, deaths, assists, score, weapon, ping, coins, tags, match_length
		)
	`, participantsTable))
	if err != nil {
		return fmt.Errorf("prepare batch: %w", err)
	}
	for _, row := range rows {
		if err := batch.Append(
			row.MatchID,
			row.Datetime,
			string(row.GameMode),
			row.MapName,
			row.Team,
			row.PlayerName,
			int32(row.Kills),
			int32(row.Deaths),
			int32Ptr(row.Assists),
			int32(row.Score),
			row.Weapon,
			int32Ptr(row.Ping),
			int32Ptr(row.Coins),
			int32Ptr(row.Tags),
			int32(row.MatchLength),
		); err != nil {
			return fmt.Errorf("append row: %w", err)
		}
	}
	if err := batch.Send(); err != nil {
		return fmt.Errorf("send batch: %w", err)
	}
	return nil
}

// NextMatchID returns max(match_id)+1, or 1 for an empty table. Ids are
// assigned server-side at insert time, never by clients.
func (s *MatchStore) NextMatchID(ctx context.Context) (int64, error) {
	var max int64
	row := s.ch.QueryRow(ctx, fmt.Sprintf("SELECT max(match_id) FROM %s", participantsTable))
	if err := row.Scan(&max); err != nil {
		return 0, fmt.Errorf("next match id: %w", err)
	}
	return max + 1, nil
}

func (s *MatchStore) Ping(ctx context.Context) error {
	return s.ch.Ping(ctx)
}

func intPtr(v *int32) *int {
	if v == nil {
		return nil
	}
	i := int(*v)
	return &i
}

func int32Ptr(v *int) *int32 {
	if v == nil {
		return nil
	}
	i := int32(*v)
	return &i
}
