package testutils

import (
	"context"
	"log"
	"time"

	"github.com/itbasis/go-clock"

	"github.com/papapp1293/FantasyFootballDraftHelper/containers"
	"github.com/papapp1293/FantasyFootballDraftHelper/db"
	"github.com/papapp1293/FantasyFootballDraftHelper/model"
)

// Fixture players with enough projection spread to exercise replacement
// level, scarcity cliffs and ADP ordering in integration tests.
var (
	JalenHurts = &model.Player{
		ID:           "6904",
		Name:         "Jalen Hurts",
		Position:     model.POS_QB,
		Team:         model.TEAM_PHI,
		ByeWeek:      5,
		ProjectedPPR: 372.4, ProjectedHalfPPR: 372.4, ProjectedStandard: 372.4,
		ADPPPR: 28.3, ADPHalfPPR: 27.1, ADPStandard: 24.9,
		ECRPPR: 25, ECRHalfPPR: 24, ECRStandard: 22,
	}
	BreeceHall = &model.Player{
		ID:           "8155",
		Name:         "Breece Hall",
		Position:     model.POS_RB,
		Team:         model.TEAM_NYJ,
		ByeWeek:      12,
		ProjectedPPR: 289.6, ProjectedHalfPPR: 263.1, ProjectedStandard: 236.5,
		ADPPPR: 3.2, ADPHalfPPR: 3.8, ADPStandard: 4.1,
		ECRPPR: 3, ECRHalfPPR: 4, ECRStandard: 4,
	}
	BijanRobinson = &model.Player{
		ID:           "9509",
		Name:         "Bijan Robinson",
		Position:     model.POS_RB,
		Team:         model.TEAM_ATL,
		ByeWeek:      12,
		ProjectedPPR: 301.2, ProjectedHalfPPR: 276.0, ProjectedStandard: 250.8,
		ADPPPR: 2.1, ADPHalfPPR: 2.3, ADPStandard: 2.6,
		ECRPPR: 2, ECRHalfPPR: 2, ECRStandard: 3,
	}
	CeeDeeLamb = &model.Player{
		ID:           "6786",
		Name:         "CeeDee Lamb",
		Position:     model.POS_WR,
		Team:         model.TEAM_DAL,
		ByeWeek:      7,
		ProjectedPPR: 312.8, ProjectedHalfPPR: 276.3, ProjectedStandard: 239.9,
		ADPPPR: 1.4, ADPHalfPPR: 1.9, ADPStandard: 3.3,
		ECRPPR: 1, ECRHalfPPR: 1, ECRStandard: 2,
	}
	TylerLockett = &model.Player{
		ID:           "2374",
		Name:         "Tyler Lockett",
		Position:     model.POS_WR,
		Team:         model.TEAM_SEA,
		ByeWeek:      10,
		ProjectedPPR: 198.5, ProjectedHalfPPR: 174.0, ProjectedStandard: 149.6,
		ADPPPR: 94.7, ADPHalfPPR: 98.2, ADPStandard: 104.5,
		ECRPPR: 90, ECRHalfPPR: 95, ECRStandard: 101,
	}
	TJHockenson = &model.Player{
		ID:           "5844",
		Name:         "T.J. Hockenson",
		Position:     model.POS_TE,
		Team:         model.TEAM_MIN,
		ByeWeek:      6,
		ProjectedPPR: 211.3, ProjectedHalfPPR: 186.9, ProjectedStandard: 162.4,
		ADPPPR: 51.8, ADPHalfPPR: 55.2, ADPStandard: 61.7,
		ECRPPR: 48, ECRHalfPPR: 52, ECRStandard: 58,
	}
)

type TestDB struct {
	container *containers.DBContainer
	DB        db.DB
	Clock     clock.Clock
}

func NewTestDB() *TestDB {
	container := containers.NewDBContainer()
	clock := clock.New()

	db, err := db.New(context.Background(), container.ConnectionString(), clock)
	if err != nil {
		log.Fatalf("error connecting to db in test container: %v", err)
	}

	if err := InsertTestPlayers(db); err != nil {
		log.Fatalf("error populating db in test container: %v", err)
	}

	return &TestDB{
		container: container,
		DB:        db,
		Clock:     clock,
	}
}

func (db *TestDB) Shutdown() {
	db.container.Shutdown()
}

func InsertTestPlayers(db db.DB) error {
	players := []*model.Player{
		JalenHurts,
		BreeceHall,
		BijanRobinson,
		CeeDeeLamb,
		TylerLockett,
		TJHockenson,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	for _, p := range players {
		err := db.SavePlayer(ctx, p)
		if err != nil {
			return err
		}
	}

	return nil
}
