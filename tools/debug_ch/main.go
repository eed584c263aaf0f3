package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/ClickHouse/clickhouse-go/v2"
)

// Quick look at what the match table holds. Reads CLICKHOUSE_URL, defaults
// to a local instance.
func main() {
	ctx := context.Background()

	dsn := os.Getenv("CLICKHOUSE_URL")
	if dsn == "" {
		dsn = "clickhouse://default:@localhost:9000/deadshot"
	}
	opts, err := clickhouse.ParseDSN(dsn)
	if err != nil {
		log.Fatal(err)
	}
	conn, err := clickhouse.Open(opts)
	if err != nil {
		log.Fatal(err)
	}
	if err := conn.Ping(ctx); err != nil {
		log.Fatalf("Failed to ping ClickHouse: %v", err)
	}

	var rows, matches, players uint64
	err = conn.QueryRow(ctx, `
		SELECT count(), count(DISTINCT match_id), count(DISTINCT player_name)
		FROM deadshot.match_participants
	`).Scan(&rows, &matches, &players)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("rows=%d matches=%d players=%d\n", rows, matches, players)

	fmt.Println("\nMatches per map:")
	mapRows, err := conn.Query(ctx, `
		SELECT map_name, count(DISTINCT match_id) AS matches
		FROM deadshot.match_participants
		GROUP BY map_name
		ORDER BY matches DESC
	`)
	if err != nil {
		log.Fatal(err)
	}
	defer mapRows.Close()
	for mapRows.Next() {
		var name string
		var n uint64
		if err := mapRows.Scan(&name, &n); err != nil {
			log.Fatal(err)
		}
		fmt.Printf("  %-20s %d\n", name, n)
	}

	fmt.Println("\nLatest matches:")
	recent, err := conn.Query(ctx, `
		SELECT match_id, any(datetime), any(game_mode), any(map_name), count()
		FROM deadshot.match_participants
		GROUP BY match_id
		ORDER BY match_id DESC
		LIMIT 10
	`)
	if err != nil {
		log.Fatal(err)
	}
	defer recent.Close()
	for recent.Next() {
		var id int64
		var dt time.Time
		var mode, mapName string
		var n uint64
		if err := recent.Scan(&id, &dt, &mode, &mapName, &n); err != nil {
			log.Fatal(err)
		}
		fmt.Printf("  #%d %s %s on %s (%d players)\n", id, dt.Format(time.DateTime), mode, mapName, n)
	}
}
