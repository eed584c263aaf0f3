package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"math/rand"
	"net/http"
	"time"
)

// Config
const (
	API_URL     = "http://localhost:8084/api/v1/ingest/matches"
	NUM_MATCHES = 5
)

var (
	players = []string{"Ace", "Bolt", "Crow", "Dart", "Echo", "Frost", "Ghost", "Hawk"}
	maps    = []string{"Warehouse", "Rooftops", "Canyon", "Docks"}
	weapons = []string{"AR", "SMG", "Sniper", "Shotgun", "Pistol"}
)

// Row mirrors the ingest wire format (simplified, numbers as plain ints).
type Row struct {
	GameMode    string  `json:"game_mode"`
	MapName     string  `json:"map_name"`
	Team        *string `json:"team,omitempty"`
	PlayerName  string  `json:"player_name"`
	Kills       int     `json:"kills"`
	Deaths      int     `json:"deaths"`
	Assists     *int    `json:"assists,omitempty"`
	Score       int     `json:"score"`
	Weapon      string  `json:"weapon"`
	Ping        int     `json:"ping"`
	MatchLength int     `json:"match_length"`
}

type Submission struct {
	Datetime time.Time `json:"datetime"`
	Rows     []Row     `json:"rows"`
}

func mockMatch(rng *rand.Rand, at time.Time) Submission {
	teamMatch := rng.Intn(2) == 0
	mode := "FFA"
	if teamMatch {
		mode = "Team"
	}
	mapName := maps[rng.Intn(len(maps))]
	length := 10 + rng.Intn(15)

	names := append([]string(nil), players...)
	rng.Shuffle(len(names), func(i, j int) { names[i], names[j] = names[j], names[i] })
	names = names[:4+rng.Intn(3)]

	sub := Submission{Datetime: at}
	for i, name := range names {
		row := Row{
			GameMode:    mode,
			MapName:     mapName,
			PlayerName:  name,
			Kills:       rng.Intn(25),
			Deaths:      rng.Intn(15),
			Score:       50 + rng.Intn(300),
			Weapon:      weapons[rng.Intn(len(weapons))],
			Ping:        20 + rng.Intn(80),
			MatchLength: length,
		}
		if teamMatch {
			team := "Alpha"
			if i%2 == 1 {
				team = "Bravo"
			}
			row.Team = &team
			assists := rng.Intn(10)
			row.Assists = &assists
		}
		sub.Rows = append(sub.Rows, row)
	}
	return sub
}

func main() {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	client := &http.Client{Timeout: 5 * time.Second}

	accepted := 0
	for i := 0; i < NUM_MATCHES; i++ {
		at := time.Now().Add(-time.Duration(NUM_MATCHES-i) * 6 * time.Hour)
		sub := mockMatch(rng, at)

		payload, err := json.Marshal(sub)
		if err != nil {
			log.Fatalf("Failed to marshal JSON: %v", err)
		}

		req, err := http.NewRequest("POST", API_URL, bytes.NewBuffer(payload))
		if err != nil {
			log.Fatalf("Failed to create request: %v", err)
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := client.Do(req)
		if err != nil {
			log.Fatalf("Failed to send request: %v", err)
		}

		body, _ := io.ReadAll(resp.Body)
		resp.Body.Close()
		fmt.Printf("Match %d: %s %s\n", i+1, resp.Status, string(body))

		if resp.StatusCode == 202 {
			accepted++
		}
	}

	fmt.Printf("Accepted %d/%d matches\n", accepted, NUM_MATCHES)
}
