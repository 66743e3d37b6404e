package round

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/fadedpez/blackjack/internal/logging"
	"github.com/fadedpez/blackjack/pkg/db/migrations"
	"github.com/fadedpez/blackjack/pkg/entities"
	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

const (
	insertRoundSQL = `
		INSERT INTO round_results (
			id, table_id, number, completed_at, max_score, aborted
		) VALUES (?, ?, ?, ?, ?, ?)`

	insertParticipantSQL = `
		INSERT INTO participant_results (
			round_id, seat, participant_id, name, role, cards, score, result
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	// A negative LIMIT means no limit in SQLite
	selectTableResultsSQL = `
		SELECT r.id, r.number, r.completed_at, r.max_score, r.aborted,
		       p.participant_id, p.name, p.role, p.cards, p.score, p.result
		FROM round_results r
		JOIN participant_results p ON p.round_id = r.id
		WHERE r.id IN (
			SELECT id FROM round_results
			WHERE table_id = ?
			ORDER BY number DESC
			LIMIT ?
		)
		ORDER BY r.number, p.seat`
)

// SQLiteRepository implements Repository on an in-memory SQLite database.
// Each repository gets its own database, dropped on Close.
type SQLiteRepository struct {
	db *sql.DB
}

// NewSQLiteRepository opens a private in-memory database and applies the schema
func NewSQLiteRepository(logger *logging.Logger) (*SQLiteRepository, error) {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", uuid.New().String())
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}
	// The database lives as long as its last connection
	db.SetMaxOpenConns(1)
	db.SetConnMaxLifetime(0)
	db.SetConnMaxIdleTime(0)

	migrator := migrations.NewMigrator(db, logger)
	if err := migrator.MigrateUp(); err != nil {
		db.Close()
		return nil, fmt.Errorf("error applying migrations: %w", err)
	}

	return &SQLiteRepository{db: db}, nil
}

// SaveRoundResult stores a round result and its participants
func (r *SQLiteRepository) SaveRoundResult(ctx context.Context, result *entities.RoundResult) error {
	if result == nil || result.TableID == "" {
		return fmt.Errorf("round result needs a table id")
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, insertRoundSQL,
		result.ID, result.TableID, result.Number, result.CompletedAt, result.MaxScore, result.Aborted)
	if err != nil {
		return fmt.Errorf("failed to insert round %d: %w", result.Number, err)
	}

	for seat, pr := range result.Participants {
		cardsJSON, err := json.Marshal(pr.Cards)
		if err != nil {
			return err
		}

		_, err = tx.ExecContext(ctx, insertParticipantSQL,
			result.ID, seat, pr.ParticipantID, pr.Name, pr.Role, string(cardsJSON), pr.Score, string(pr.Result))
		if err != nil {
			return fmt.Errorf("failed to insert result for %s: %w", pr.Name, err)
		}
	}

	return tx.Commit()
}

// GetTableResults retrieves recent round results for a table
func (r *SQLiteRepository) GetTableResults(ctx context.Context, tableID string, limit int) ([]*entities.RoundResult, error) {
	if limit <= 0 {
		limit = -1
	}

	rows, err := r.db.QueryContext(ctx, selectTableResultsSQL, tableID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query round results: %w", err)
	}
	defer rows.Close()

	results := make([]*entities.RoundResult, 0)
	var current *entities.RoundResult
	for rows.Next() {
		var (
			id          string
			number      int
			completedAt time.Time
			maxScore    int
			aborted     bool
			cardsJSON   string
			result      string
			pr          entities.ParticipantResult
		)
		if err := rows.Scan(&id, &number, &completedAt, &maxScore, &aborted,
			&pr.ParticipantID, &pr.Name, &pr.Role, &cardsJSON, &pr.Score, &result); err != nil {
			return nil, fmt.Errorf("failed to scan round result: %w", err)
		}
		if err := json.Unmarshal([]byte(cardsJSON), &pr.Cards); err != nil {
			return nil, fmt.Errorf("failed to decode cards of %s: %w", pr.Name, err)
		}
		pr.Result = entities.Result(result)

		if current == nil || current.ID != id {
			current = &entities.RoundResult{
				ID:          id,
				TableID:     tableID,
				Number:      number,
				CompletedAt: completedAt,
				MaxScore:    maxScore,
				Aborted:     aborted,
			}
			results = append(results, current)
		}
		current.Participants = append(current.Participants, &pr)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating round results: %w", err)
	}

	return results, nil
}

// GetTableStatistics computes per seat statistics for a table
func (r *SQLiteRepository) GetTableStatistics(ctx context.Context, tableID string) ([]*entities.ParticipantStatistics, error) {
	rounds, err := r.GetTableResults(ctx, tableID, 0)
	if err != nil {
		return nil, err
	}
	return aggregate(tableID, rounds), nil
}

// Close closes the database connection, dropping the data
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}
