package match

import (
	"strings"
	"testing"
)

const sampleCSV = `game,team,difficulty,formation,lineup,lineup_numbers,lineup_goals,source_match_id
Derby (2023),Galatasaray,easy,4-2-3-1,MUSLERA;BOEY;NELSSON;KEREM;ANGELINO;TORREIRA;OLIVEIRA;ZAHA;MERTENS;AKTURKOGLU;ICARDI,1;25;4;42;3;34;25;31;10;7;9,0;0;0;0;0;0;0;1;0;0;1,gs-1
Cup Final (2022),Sivasspor,hard,3-5-2,VURAL;GOUTAS;APPINDANGOYE;CAGLAR;KILINC;ULVESTAD;COFIE;GRADEL;YESILYURT;SAIZ;YATABARE,,,,
Short Row,Whoever,easy,4-4-2,ONLY;TWO,,,
Unknown Tier,Whoever,medium,4-4-2,A;B;C;D;E;F;G;H;I;J;K,,,
`

func TestParseFiltersAndPools(t *testing.T) {
	pools, err := Parse(strings.NewReader(sampleCSV))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(pools.Easy) != 1 || len(pools.Hard) != 1 {
		t.Fatalf("pools = easy %d hard %d, want 1/1", len(pools.Easy), len(pools.Hard))
	}

	rec := pools.Easy[0]
	if rec.Label != "Derby (2023)" || rec.Team != "Galatasaray" || rec.Formation != "4-2-3-1" {
		t.Fatalf("record = %+v", rec)
	}
	if len(rec.Lineup) != 11 || rec.Lineup[0] != "MUSLERA" || rec.Lineup[10] != "ICARDI" {
		t.Fatalf("lineup = %v", rec.Lineup)
	}
	if rec.Numbers[0] == nil || *rec.Numbers[0] != 1 {
		t.Fatalf("shirt numbers = %v", rec.Numbers)
	}
	if rec.Goals[10] != 1 || rec.Goals[0] != 0 {
		t.Fatalf("goals = %v", rec.Goals)
	}
	if rec.SourceMatchID != "gs-1" {
		t.Fatalf("source id = %q", rec.SourceMatchID)
	}

	hard := pools.Hard[0]
	if hard.Numbers != nil || hard.Goals != nil {
		t.Fatalf("missing stat columns must stay nil, got %+v", hard)
	}
}

func TestParsePositionalFallback(t *testing.T) {
	// No header row at all: fixed positional layout applies and the first
	// row is data.
	raw := `My Match,My Team,easy,4-4-2,A;B;C;D;E;F;G;H;I;J;K
`
	pools, err := Parse(strings.NewReader(raw))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(pools.Easy) != 1 {
		t.Fatalf("easy pool = %d, want 1", len(pools.Easy))
	}
	if pools.Easy[0].Label != "My Match" {
		t.Fatalf("label = %q", pools.Easy[0].Label)
	}
}

func TestParseUnparseableStats(t *testing.T) {
	raw := `game,team,difficulty,formation,lineup,lineup_numbers,lineup_cards
M,T,easy,4-4-2,A;B;C;D;E;F;G;H;I;J;K,1;x;3,y;2
`
	pools, err := Parse(strings.NewReader(raw))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	rec := pools.Easy[0]
	if rec.Numbers[0] == nil || rec.Numbers[1] != nil || *rec.Numbers[2] != 3 {
		t.Fatalf("numbers = %v", rec.Numbers)
	}
	if rec.Cards[0] != 0 || rec.Cards[1] != 2 {
		t.Fatalf("cards = %v", rec.Cards)
	}
}

func TestParseEmptyInput(t *testing.T) {
	if _, err := Parse(strings.NewReader("")); err == nil {
		t.Fatal("expected error for empty input")
	}
}

func TestLoadEmbeddedDefault(t *testing.T) {
	pools, err := Load("")
	if err != nil {
		t.Fatalf("load embedded: %v", err)
	}
	if len(pools.Easy) == 0 || len(pools.Hard) == 0 {
		t.Fatalf("embedded data must populate both pools, got easy %d hard %d",
			len(pools.Easy), len(pools.Hard))
	}
}

func TestPlayersExpansion(t *testing.T) {
	pools, err := Parse(strings.NewReader(sampleCSV))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	players := pools.Easy[0].Players()
	if len(players) != 11 {
		t.Fatalf("players = %d", len(players))
	}
	if players[0].Position != "GK" || players[0].ID != 0 {
		t.Fatalf("goalkeeper = %+v", players[0])
	}
	if players[10].Position != "ST" || players[10].CanonicalName != "ICARDI" {
		t.Fatalf("striker = %+v", players[10])
	}
	if players[10].Goals != 1 {
		t.Fatalf("striker goals = %d", players[10].Goals)
	}
}

func TestPlayersUnknownFormationFallback(t *testing.T) {
	rec := Record{
		Formation: "2-4-4",
		Lineup:    []string{"A", "B", "C", "D", "E", "F", "G", "H", "I", "J", "K"},
	}
	players := rec.Players()
	if players[0].Position != "P1" || players[10].Position != "P11" {
		t.Fatalf("fallback positions = %v, %v", players[0].Position, players[10].Position)
	}
}

func TestByDifficulty(t *testing.T) {
	p := Pools{Easy: []Record{{}}, Hard: []Record{{}, {}}}
	if len(p.ByDifficulty(DifficultyEasy)) != 1 || len(p.ByDifficulty(DifficultyHard)) != 2 {
		t.Fatal("pool routing broken")
	}
	if p.ByDifficulty("medium") != nil {
		t.Fatal("unknown tier must return nil")
	}
}
