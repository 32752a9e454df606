package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/blockduel/internal/multiplayer"
)

// DuelRecord is one finished match as stored.
type DuelRecord struct {
	ID        int64
	MatchID   string
	GameID    string
	Mode      string
	EndReason string // "completed" or "abandoned"
	Winner    int    // 1 or 2; 0 for a draw or an abandoned match
	SessionID string
	Score1    int
	Score2    int
	Lines1    int
	Lines2    int
	Garbage1  int // Rows player 1 sent
	Garbage2  int // Rows player 2 sent
	Duration  int // Duration in seconds
	CreatedAt time.Time
}

// HeadToHead tallies completed duels for one game.
type HeadToHead struct {
	Player1Wins int
	Player2Wins int
	Draws       int
}

// Total returns the number of completed duels.
func (h HeadToHead) Total() int {
	return h.Player1Wins + h.Player2Wins + h.Draws
}

const duelColumns = `id, match_id, game_id, mode, end_reason, winner, session_id,
	score1, score2, lines1, lines2, garbage1, garbage2, duration_secs, created_at`

// SaveDuelResult records a finished duel.
// Returns the ID of the inserted record.
func (s *Store) SaveDuelResult(r DuelRecord) (int64, error) {
	res, err := s.db.Exec(
		`INSERT INTO duel_results
		 (match_id, game_id, mode, end_reason, winner, session_id,
		  score1, score2, lines1, lines2, garbage1, garbage2, duration_secs)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.MatchID, r.GameID, r.Mode, r.EndReason, r.Winner, r.SessionID,
		r.Score1, r.Score2, r.Lines1, r.Lines2, r.Garbage1, r.Garbage2, r.Duration,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save duel result: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// DuelResultByID retrieves a duel by its match ID.
// Returns nil without error when no such match exists.
func (s *Store) DuelResultByID(matchID string) (*DuelRecord, error) {
	row := s.db.QueryRow(
		`SELECT `+duelColumns+` FROM duel_results WHERE match_id = ?`,
		matchID,
	)

	r, err := scanDuel(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query duel result: %w", err)
	}
	return &r, nil
}

// RecentDuelResults retrieves the most recent duels, newest first.
func (s *Store) RecentDuelResults(limit int) ([]DuelRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT `+duelColumns+` FROM duel_results
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query duel results: %w", err)
	}
	return scanDuels(rows)
}

// SessionDuelResults retrieves the duels hosted by one session, newest first.
func (s *Store) SessionDuelResults(sessionID string, limit int) ([]DuelRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT `+duelColumns+` FROM duel_results
		 WHERE session_id = ?
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		sessionID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query session duels: %w", err)
	}
	return scanDuels(rows)
}

// HeadToHeadFor tallies wins and draws of completed two-player duels for
// a game. Solo rounds are not counted.
func (s *Store) HeadToHeadFor(gameID string) (HeadToHead, error) {
	var h HeadToHead
	err := s.db.QueryRow(
		`SELECT
		   COALESCE(SUM(CASE WHEN winner = 1 THEN 1 ELSE 0 END), 0),
		   COALESCE(SUM(CASE WHEN winner = 2 THEN 1 ELSE 0 END), 0),
		   COALESCE(SUM(CASE WHEN winner = 0 THEN 1 ELSE 0 END), 0)
		 FROM duel_results
		 WHERE game_id = ? AND end_reason = 'completed' AND mode != ?`,
		gameID, multiplayer.MatchModeSolo.String(),
	).Scan(&h.Player1Wins, &h.Player2Wins, &h.Draws)
	if err != nil {
		return h, fmt.Errorf("storage: cannot tally duels: %w", err)
	}
	return h, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanDuel(row rowScanner) (DuelRecord, error) {
	var r DuelRecord
	var createdAt any
	err := row.Scan(
		&r.ID, &r.MatchID, &r.GameID, &r.Mode, &r.EndReason, &r.Winner, &r.SessionID,
		&r.Score1, &r.Score2, &r.Lines1, &r.Lines2, &r.Garbage1, &r.Garbage2,
		&r.Duration, &createdAt,
	)
	if err != nil {
		return r, err
	}
	r.CreatedAt = parseTime(createdAt)
	return r, nil
}

func scanDuels(rows *sql.Rows) ([]DuelRecord, error) {
	defer rows.Close()

	var results []DuelRecord
	for rows.Next() {
		r, err := scanDuel(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		results = append(results, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return results, nil
}

// SaveMatchResult implements multiplayer.MatchResultSaver.
func (s *Store) SaveMatchResult(result multiplayer.MatchResult) error {
	_, err := s.SaveDuelResult(DuelRecord{
		MatchID:   string(result.MatchID),
		GameID:    result.GameID,
		Mode:      result.Mode.String(),
		EndReason: result.Reason.String(),
		Winner:    int(result.Winner),
		SessionID: string(result.Session),
		Score1:    result.Player1.Score,
		Score2:    result.Player2.Score,
		Lines1:    result.Player1.Lines,
		Lines2:    result.Player2.Lines,
		Garbage1:  result.Player1.GarbageSent,
		Garbage2:  result.Player2.GarbageSent,
		Duration:  int(result.Duration / time.Second),
	})
	return err
}

// Ensure Store implements MatchResultSaver
var _ multiplayer.MatchResultSaver = (*Store)(nil)
