package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/itbasis/go-clock"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/papapp1293/FantasyFootballDraftHelper/model"
)

var (
	ErrPlayerNotFound error = errors.New("player not found")
	ErrDraftNotFound  error = errors.New("draft result not found")
)

func New(ctx context.Context, connString string, clock clock.Clock) (DB, error) {
	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		return nil, err
	}

	// Test the connection
	if err := pool.Ping(ctx); err != nil {
		return nil, err
	}

	return &postgresDB{pool: pool, clock: clock}, nil
}

type postgresDB struct {
	pool  *pgxpool.Pool
	clock clock.Clock
}

func (db *postgresDB) Close() {
	db.pool.Close()
}

const playerColumns = `id, name, position, team, bye_week, injury_risk,
		proj_ppr, proj_half_ppr, proj_std,
		adp_ppr, adp_half_ppr, adp_std,
		ecr_ppr, ecr_half_ppr, ecr_std`

func (db *postgresDB) GetPlayer(ctx context.Context, id string) (*model.Player, error) {
	query := fmt.Sprintf(`SELECT %s FROM players WHERE id=@id`, playerColumns)

	row := db.pool.QueryRow(ctx, query, pgx.NamedArgs{"id": id})
	p, err := scanPlayer(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrPlayerNotFound
		}
		return nil, fmt.Errorf("error scanning player %s: %w", id, err)
	}
	return p, nil
}

func (db *postgresDB) SavePlayer(ctx context.Context, p *model.Player) error {
	if p == nil {
		return errors.New("SavePlayer - player is nil")
	}
	const query = `INSERT INTO players (
		id, name, position, team, bye_week, injury_risk,
		proj_ppr, proj_half_ppr, proj_std,
		adp_ppr, adp_half_ppr, adp_std,
		ecr_ppr, ecr_half_ppr, ecr_std, updated
	) VALUES (
		@id, @name, @position, @team, @byeWeek, @injuryRisk,
		@projPPR, @projHalfPPR, @projStd,
		@adpPPR, @adpHalfPPR, @adpStd,
		@ecrPPR, @ecrHalfPPR, @ecrStd, @updated
	) ON CONFLICT (id) DO UPDATE SET
		name=excluded.name,
		position=excluded.position,
		team=excluded.team,
		bye_week=excluded.bye_week,
		injury_risk=excluded.injury_risk,
		proj_ppr=excluded.proj_ppr,
		proj_half_ppr=excluded.proj_half_ppr,
		proj_std=excluded.proj_std,
		adp_ppr=excluded.adp_ppr,
		adp_half_ppr=excluded.adp_half_ppr,
		adp_std=excluded.adp_std,
		ecr_ppr=excluded.ecr_ppr,
		ecr_half_ppr=excluded.ecr_half_ppr,
		ecr_std=excluded.ecr_std,
		updated=excluded.updated`

	args := pgx.NamedArgs{
		"id":          p.ID,
		"name":        p.Name,
		"position":    &DBPosition{position: p.Position},
		"team":        &DBNFLTeam{team: p.Team},
		"byeWeek":     p.ByeWeek,
		"injuryRisk":  p.InjuryRisk,
		"projPPR":     p.ProjectedPPR,
		"projHalfPPR": p.ProjectedHalfPPR,
		"projStd":     p.ProjectedStandard,
		"adpPPR":      p.ADPPPR,
		"adpHalfPPR":  p.ADPHalfPPR,
		"adpStd":      p.ADPStandard,
		"ecrPPR":      p.ECRPPR,
		"ecrHalfPPR":  p.ECRHalfPPR,
		"ecrStd":      p.ECRStandard,
		"updated":     db.clock.Now().UTC(),
	}
	if _, err := db.pool.Exec(ctx, query, args); err != nil {
		return fmt.Errorf("error saving player %s: %w", p.ID, err)
	}
	return nil
}

func (db *postgresDB) ListPlayers(ctx context.Context, mode model.ScoringMode, limit int) ([]*model.Player, error) {
	adpCol := "adp_ppr"
	switch mode {
	case model.ScoringHalfPPR:
		adpCol = "adp_half_ppr"
	case model.ScoringStandard:
		adpCol = "adp_std"
	}

	// Players with no ADP data sort last so the head of the list is always
	// the draftable pool.
	query := fmt.Sprintf(`SELECT %s FROM players
			ORDER BY CASE WHEN %s > 0 THEN %s ELSE 9999 END, id`,
		playerColumns, adpCol, adpCol)
	if limit > 0 {
		query = fmt.Sprintf("%s LIMIT %d", query, limit)
	}

	rows, err := db.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error listing players: %w", err)
	}
	defer rows.Close()

	results := make([]*model.Player, 0, 64)
	for rows.Next() {
		p, err := scanPlayer(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning player row: %w", err)
		}
		results = append(results, p)
	}
	return results, rows.Err()
}

func (db *postgresDB) SaveDraftResult(ctx context.Context, d model.CompletedDraft) error {
	cfg, err := json.Marshal(d.Config)
	if err != nil {
		return fmt.Errorf("error marshaling league config: %w", err)
	}

	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("error starting transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	const insertDraft = `INSERT INTO draft_results (session_id, config, created)
		VALUES (@sessionID, @config, @created)
		ON CONFLICT (session_id) DO NOTHING`
	args := pgx.NamedArgs{
		"sessionID": d.SessionID,
		"config":    cfg,
		"created":   db.clock.Now().UTC(),
	}
	tag, err := tx.Exec(ctx, insertDraft, args)
	if err != nil {
		return fmt.Errorf("error saving draft result %s: %w", d.SessionID, err)
	}
	if tag.RowsAffected() == 0 {
		// Already stored, a completed draft never changes.
		return nil
	}

	const insertPick = `INSERT INTO draft_picks
		(session_id, overall, team_id, player_id, round, pick_in_round, picked_at, auto, rationale)
		VALUES (@sessionID, @overall, @teamID, @playerID, @round, @pickInRound, @pickedAt, @auto, @rationale)`
	for _, pick := range d.Picks {
		args := pgx.NamedArgs{
			"sessionID":   d.SessionID,
			"overall":     pick.Overall,
			"teamID":      pick.TeamID,
			"playerID":    pick.PlayerID,
			"round":       pick.Round,
			"pickInRound": pick.PickInRound,
			"pickedAt":    pick.Timestamp,
			"auto":        pick.Auto,
			"rationale":   pick.Rationale,
		}
		if _, err := tx.Exec(ctx, insertPick, args); err != nil {
			return fmt.Errorf("error saving pick %d of %s: %w", pick.Overall, d.SessionID, err)
		}
	}

	return tx.Commit(ctx)
}

func (db *postgresDB) GetDraftResult(ctx context.Context, sessionID string) (*model.CompletedDraft, error) {
	const query = `SELECT config FROM draft_results WHERE session_id=@sessionID`

	var cfg []byte
	row := db.pool.QueryRow(ctx, query, pgx.NamedArgs{"sessionID": sessionID})
	if err := row.Scan(&cfg); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrDraftNotFound
		}
		return nil, fmt.Errorf("error reading draft result %s: %w", sessionID, err)
	}

	d := &model.CompletedDraft{SessionID: sessionID}
	if err := json.Unmarshal(cfg, &d.Config); err != nil {
		return nil, fmt.Errorf("error parsing league config for %s: %w", sessionID, err)
	}

	picks, err := db.getPicks(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	d.Picks = picks
	return d, nil
}

func (db *postgresDB) ListDraftResults(ctx context.Context) ([]model.CompletedDraft, error) {
	const query = `SELECT session_id, config FROM draft_results ORDER BY created DESC`

	rows, err := db.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error listing draft results: %w", err)
	}
	defer rows.Close()

	results := make([]model.CompletedDraft, 0, 8)
	for rows.Next() {
		var d model.CompletedDraft
		var cfg []byte
		if err := rows.Scan(&d.SessionID, &cfg); err != nil {
			return nil, fmt.Errorf("error scanning draft result: %w", err)
		}
		if err := json.Unmarshal(cfg, &d.Config); err != nil {
			return nil, fmt.Errorf("error parsing league config for %s: %w", d.SessionID, err)
		}
		results = append(results, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range results {
		picks, err := db.getPicks(ctx, results[i].SessionID)
		if err != nil {
			return nil, err
		}
		results[i].Picks = picks
	}
	return results, nil
}

func (db *postgresDB) getPicks(ctx context.Context, sessionID string) ([]model.PickRecord, error) {
	const query = `SELECT overall, team_id, player_id, round, pick_in_round, picked_at, auto, rationale
		FROM draft_picks WHERE session_id=@sessionID ORDER BY overall`

	rows, err := db.pool.Query(ctx, query, pgx.NamedArgs{"sessionID": sessionID})
	if err != nil {
		return nil, fmt.Errorf("error reading picks for %s: %w", sessionID, err)
	}
	defer rows.Close()

	picks := make([]model.PickRecord, 0, 32)
	for rows.Next() {
		var p model.PickRecord
		var pickedAt pgtype.Timestamptz
		if err := rows.Scan(&p.Overall, &p.TeamID, &p.PlayerID, &p.Round,
			&p.PickInRound, &pickedAt, &p.Auto, &p.Rationale); err != nil {
			return nil, fmt.Errorf("error scanning pick for %s: %w", sessionID, err)
		}
		p.Timestamp = pickedAt.Time
		picks = append(picks, p)
	}
	return picks, rows.Err()
}

func scanPlayer(row pgx.Row) (*model.Player, error) {
	var result model.Player
	var pos DBPosition
	var team DBNFLTeam
	err := row.Scan(
		&result.ID,
		&result.Name,
		&pos,
		&team,
		&result.ByeWeek,
		&result.InjuryRisk,
		&result.ProjectedPPR,
		&result.ProjectedHalfPPR,
		&result.ProjectedStandard,
		&result.ADPPPR,
		&result.ADPHalfPPR,
		&result.ADPStandard,
		&result.ECRPPR,
		&result.ECRHalfPPR,
		&result.ECRStandard)

	if err != nil {
		return nil, err
	}

	result.Position = pos.position
	result.Team = team.team
	return &result, nil
}

type DBPosition struct {
	position model.Position
}

func (p *DBPosition) ScanText(v pgtype.Text) error {
	p.position = model.ParsePosition(v.String)
	return nil
}

func (p *DBPosition) TextValue() (pgtype.Text, error) {
	return pgtype.Text{
		String: string(p.position),
		Valid:  true,
	}, nil
}

type DBNFLTeam struct {
	team *model.NFLTeam
}

func (t *DBNFLTeam) ScanText(v pgtype.Text) error {
	t.team = model.ParseTeam(v.String)
	return nil
}

func (t *DBNFLTeam) TextValue() (pgtype.Text, error) {
	team := t.team
	if team == nil {
		team = model.TEAM_FA
	}
	return pgtype.Text{
		String: team.String(),
		Valid:  true,
	}, nil
}
