// internal/httpserver/routes_daily.go
//
// HTTP routes for the daily lineup game, mounted under /daily:
//   - GET  /daily/game        → today's selection + the caller's progress
//   - POST /daily/guess       → submit one guess for one player puzzle
//   - POST /daily/abandon     → commit a locally-composed guess history
//   - GET  /daily/share       → shareable result text (text/plain)
//   - GET  /daily/leaderboard → top completed lineups for a date
//
// The selection itself is a pure function of the date and the pools; the
// server only adds identity (cookie or account) and durable progress.
// Snapshot writes are best-effort: failures are logged and gameplay
// continues in memory.

package httpserver

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/firsteleven/go-server/internal/daily"
	"github.com/firsteleven/go-server/internal/formation"
	"github.com/firsteleven/go-server/internal/game"
	"github.com/firsteleven/go-server/internal/match"
	"github.com/firsteleven/go-server/internal/metrics"
	"github.com/firsteleven/go-server/internal/share"
	"github.com/firsteleven/go-server/internal/store"
)

// dailyServer wraps dependencies for /daily endpoints.
type dailyServer struct {
	srv     *Server
	results *daily.Store
}

// mountDaily registers all /daily routes.
func (s *Server) mountDaily(r chi.Router) {
	dd := &dailyServer{srv: s, results: daily.NewStore(s.db)}
	r.Route("/daily", func(r chi.Router) {
		r.Get("/game", dd.handleGame)
		r.Post("/guess", dd.handleGuess)
		r.Post("/abandon", dd.handleAbandon)
		r.Get("/share", dd.handleShare)
		r.Get("/leaderboard", dd.handleLeaderboard)
	})
}

// userIDWithAnon returns the authenticated user ID if logged in, otherwise
// ensures an anonymous ID cookie.
func (d *dailyServer) userIDWithAnon(w http.ResponseWriter, r *http.Request) string {
	if me, _ := r.Context().Value(ctxUserKey{}).(*authUser); me != nil {
		return me.ID
	}
	return d.srv.ensureAnonID(w, r)
}

// resolveToday computes today's selection and the record + gameId for a
// difficulty tier.
func (d *dailyServer) resolveToday(difficulty string) (daily.Selection, match.Record, int, error) {
	sel, err := daily.Select(d.srv.pools, d.srv.now(), d.srv.loc)
	if err != nil {
		return daily.Selection{}, match.Record{}, 0, err
	}
	rec, _ := sel.ByDifficulty(difficulty)
	return sel, rec, daily.GameID(sel.DayIndex, difficulty), nil
}

// loadSnapshot fetches and decodes the owner's snapshot for a gameId.
// Missing or corrupt snapshots degrade to empty.
func (d *dailyServer) loadSnapshot(r *http.Request, owner string, gameID int) game.Snapshot {
	raw, ok, err := d.srv.kv.Get(r.Context(), store.ProgressKey(owner, gameID))
	if err != nil {
		log.Warn().Err(err).Int("gameId", gameID).Msg("load snapshot")
		return game.NewSnapshot()
	}
	if !ok {
		return game.NewSnapshot()
	}
	snap, err := game.DecodeSnapshot(raw)
	if err != nil {
		log.Warn().Err(err).Int("gameId", gameID).Msg("corrupt snapshot, starting fresh")
	}
	return snap
}

// saveSnapshot persists the snapshot, best effort.
func (d *dailyServer) saveSnapshot(r *http.Request, owner string, gameID int, snap game.Snapshot) {
	raw, err := snap.Encode()
	if err != nil {
		log.Warn().Err(err).Int("gameId", gameID).Msg("encode snapshot")
		metrics.SnapshotWriteFailures.Inc()
		return
	}
	if err := d.srv.kv.Set(r.Context(), store.ProgressKey(owner, gameID), raw); err != nil {
		log.Warn().Err(err).Int("gameId", gameID).Msg("save snapshot")
		metrics.SnapshotWriteFailures.Inc()
	}
}

// -----------------------------------------------------------------------------
// GET /daily/game

type guessView struct {
	Word  string      `json:"word"`
	Marks []game.Mark `json:"marks"`
}

type playerView struct {
	ID          int                      `json:"id"`
	Position    string                   `json:"position"`
	Cells       []game.Cell              `json:"cells"`
	Length      int                      `json:"length"`
	ShirtNumber *int                     `json:"shirtNumber,omitempty"`
	Goals       int                      `json:"goals,omitempty"`
	Assists     int                      `json:"assists,omitempty"`
	Cards       int                      `json:"cards,omitempty"`
	Guesses     []guessView              `json:"guesses"`
	State       game.State               `json:"state"`
	Keys        map[string]game.KeyState `json:"keys,omitempty"`
	Name        string                   `json:"name,omitempty"` // revealed once terminal
}

type gameRes struct {
	GameID    int          `json:"gameId"`
	Date      string       `json:"date"`
	DayIndex  int          `json:"dayIndex"`
	Match     string       `json:"match"`
	Team      string       `json:"team"`
	Formation string       `json:"formation"`
	Rows      []int        `json:"rows"`
	Players   []playerView `json:"players"`
	Solved    int          `json:"solved"`
	Failed    int          `json:"failed"`
	Complete  bool         `json:"complete"`
}

// handleGame returns today's lineup for a difficulty plus the caller's
// progress. Player names travel only for terminal puzzles.
func (d *dailyServer) handleGame(w http.ResponseWriter, r *http.Request) {
	difficulty := r.URL.Query().Get("difficulty")
	if difficulty == "" {
		difficulty = match.DifficultyEasy
	}
	if difficulty != match.DifficultyEasy && difficulty != match.DifficultyHard {
		http.Error(w, `{"error":"unknown_difficulty"}`, http.StatusBadRequest)
		return
	}

	sel, rec, gameID, err := d.resolveToday(difficulty)
	if err != nil {
		log.Error().Err(err).Msg("daily selection")
		http.Error(w, `{"error":"no_game_available"}`, http.StatusServiceUnavailable)
		return
	}

	owner := d.userIDWithAnon(w, r)
	snap := d.loadSnapshot(r, owner, gameID)
	players := rec.Players()

	res := gameRes{
		GameID:    gameID,
		Date:      sel.DateKey,
		DayIndex:  sel.DayIndex,
		Match:     rec.Label,
		Team:      rec.Team,
		Formation: rec.Formation,
		Rows:      formation.Rows(rec.Formation),
		Players:   make([]playerView, 0, len(players)),
		Solved:    snap.SolvedCount(),
		Failed:    snap.FailedCount(),
		Complete:  snap.Complete(formation.LineupSize),
	}
	for _, p := range players {
		res.Players = append(res.Players, d.playerView(p, snap.Progress(p.ID)))
	}

	metrics.DailyGamesServed.WithLabelValues(difficulty).Inc()
	_ = json.NewEncoder(w).Encode(res)
}

func (d *dailyServer) playerView(p game.Player, prog game.Progress) playerView {
	sess := game.Resume(p.CanonicalName, prog)
	pv := playerView{
		ID:          p.ID,
		Position:    p.Position,
		Cells:       game.DisplayCells(p.DisplayName),
		Length:      len(p.CanonicalName),
		ShirtNumber: p.ShirtNumber,
		Goals:       p.Goals,
		Assists:     p.Assists,
		Cards:       p.Cards,
		Guesses:     make([]guessView, 0, len(sess.Guesses)),
		State:       sess.State(),
	}
	for _, g := range sess.Guesses {
		pv.Guesses = append(pv.Guesses, guessView{Word: g, Marks: game.ScoreGuess(p.CanonicalName, g)})
	}
	if len(sess.Guesses) > 0 {
		pv.Keys = game.KeyStatuses(p.CanonicalName, sess.Guesses)
	}
	if sess.Over() {
		pv.Name = p.DisplayName
	}
	return pv
}

// -----------------------------------------------------------------------------
// POST /daily/guess

type guessReq struct {
	GameID   int    `json:"gameId"`
	PlayerID int    `json:"playerId"`
	Guess    string `json:"guess"`
}

type guessRes struct {
	Marks    []game.Mark              `json:"marks"`
	State    game.State               `json:"state"`
	Keys     map[string]game.KeyState `json:"keys"`
	Guesses  int                      `json:"guesses"`
	Answer   string                   `json:"answer,omitempty"` // revealed on loss
	Solved   int                      `json:"solved"`
	Failed   int                      `json:"failed"`
	Complete bool                     `json:"complete"`
}

// handleGuess scores one guess for one player puzzle and persists the
// updated snapshot. Submissions against a stale gameId (yesterday's tab)
// conflict rather than corrupting today's state.
func (d *dailyServer) handleGuess(w http.ResponseWriter, r *http.Request) {
	var req guessReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"bad_json"}`, http.StatusBadRequest)
		return
	}

	rec, gameID, ok := d.matchForGameID(w, req.GameID)
	if !ok {
		return
	}
	if req.PlayerID < 0 || req.PlayerID >= formation.LineupSize {
		http.Error(w, `{"error":"bad_player"}`, http.StatusBadRequest)
		return
	}

	owner := d.userIDWithAnon(w, r)
	snap := d.loadSnapshot(r, owner, gameID)
	player := rec.Players()[req.PlayerID]
	sess := game.Resume(player.CanonicalName, snap.Progress(req.PlayerID))

	if sess.Over() {
		// Terminal puzzles ignore input; report state instead of erroring.
		_ = json.NewEncoder(w).Encode(d.guessRes(game.SubmitResult{State: sess.State()}, player, snap))
		return
	}

	wasComplete := snap.Complete(formation.LineupSize)
	res, err := sess.SubmitGuess(game.Canonical(req.Guess))
	if err != nil {
		http.Error(w, `{"error":"bad_length"}`, http.StatusBadRequest)
		return
	}
	snap.Set(req.PlayerID, sess.Progress())
	d.saveSnapshot(r, owner, gameID, snap)
	metrics.GuessesScored.WithLabelValues(string(res.State)).Inc()

	if !wasComplete && snap.Complete(formation.LineupSize) {
		d.recordCompletion(r, owner, rec, snap)
	}

	_ = json.NewEncoder(w).Encode(d.guessRes(res, player, snap))
}

func (d *dailyServer) guessRes(res game.SubmitResult, player game.Player, snap game.Snapshot) guessRes {
	out := guessRes{
		Marks:    res.Marks,
		State:    res.State,
		Keys:     res.Keys,
		Guesses:  len(snap.Progress(player.ID).Guesses),
		Solved:   snap.SolvedCount(),
		Failed:   snap.FailedCount(),
		Complete: snap.Complete(formation.LineupSize),
	}
	if res.State == game.StateLost {
		out.Answer = player.DisplayName
	}
	return out
}

// matchForGameID validates a client-held gameId against today's selection
// and returns the record it addresses.
func (d *dailyServer) matchForGameID(w http.ResponseWriter, gameID int) (match.Record, int, bool) {
	difficulty := match.DifficultyEasy
	if gameID%2 != 0 {
		difficulty = match.DifficultyHard
	}
	_, rec, want, err := d.resolveToday(difficulty)
	if err != nil {
		log.Error().Err(err).Msg("daily selection")
		http.Error(w, `{"error":"no_game_available"}`, http.StatusServiceUnavailable)
		return match.Record{}, 0, false
	}
	if gameID != want {
		http.Error(w, `{"error":"stale_game"}`, http.StatusConflict)
		return match.Record{}, 0, false
	}
	return rec, want, true
}

// recordCompletion bumps account stats and writes the leaderboard row once
// all eleven puzzles are terminal. Best effort. A day already recorded for
// this owner and tier (a snapshot rebuilt after claim-on-auth, say) is left
// alone rather than re-counted.
func (d *dailyServer) recordCompletion(r *http.Request, owner string, rec match.Record, snap game.Snapshot) {
	metrics.LineupsCompleted.Inc()
	if d.srv.db == nil {
		return
	}

	sel, err := daily.Select(d.srv.pools, d.srv.now(), d.srv.loc)
	if err != nil {
		return
	}
	if done, err := d.results.AlreadyCompleted(r.Context(), owner, sel.DateKey, rec.Difficulty); err == nil && done {
		return
	}
	result := daily.Result{
		UserID:     owner,
		Date:       sel.DateKey,
		Difficulty: rec.Difficulty,
		Solved:     snap.SolvedCount(),
		Failed:     snap.FailedCount(),
		Guesses:    snap.GuessCount(),
	}
	if err := d.results.InsertResult(r.Context(), result); err != nil {
		log.Warn().Err(err).Msg("insert lineup result")
	}

	if me, _ := r.Context().Value(ctxUserKey{}).(*authUser); me != nil {
		tx, err := d.srv.db.Begin()
		if err != nil {
			return
		}
		defer func() { _ = tx.Rollback() }()
		solvedAll := snap.SolvedCount() == formation.LineupSize
		if err := d.srv.bumpStats(tx, me.ID, solvedAll); err != nil {
			log.Warn().Err(err).Str("user", me.ID).Msg("bump stats")
			return
		}
		_ = tx.Commit()
	}
}

// -----------------------------------------------------------------------------
// POST /daily/abandon

type abandonReq struct {
	GameID   int      `json:"gameId"`
	PlayerID int      `json:"playerId"`
	Guesses  []string `json:"guesses"`
}

// handleAbandon merges a locally-composed guess history into the stored
// snapshot when a puzzle dialog closes. The stored history only ever
// grows; closing mid-compose never forces a loss.
func (d *dailyServer) handleAbandon(w http.ResponseWriter, r *http.Request) {
	var req abandonReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"bad_json"}`, http.StatusBadRequest)
		return
	}
	rec, gameID, ok := d.matchForGameID(w, req.GameID)
	if !ok {
		return
	}
	if req.PlayerID < 0 || req.PlayerID >= formation.LineupSize {
		http.Error(w, `{"error":"bad_player"}`, http.StatusBadRequest)
		return
	}

	owner := d.userIDWithAnon(w, r)
	snap := d.loadSnapshot(r, owner, gameID)
	player := rec.Players()[req.PlayerID]
	sess := game.Resume(player.CanonicalName, snap.Progress(req.PlayerID))

	for i := len(sess.Guesses); i < len(req.Guesses) && !sess.Over(); i++ {
		if _, err := sess.SubmitGuess(game.Canonical(req.Guesses[i])); err != nil {
			http.Error(w, `{"error":"bad_length"}`, http.StatusBadRequest)
			return
		}
	}
	snap.Set(req.PlayerID, sess.Progress())
	d.saveSnapshot(r, owner, gameID, snap)

	_ = json.NewEncoder(w).Encode(map[string]any{"ok": true, "state": sess.State()})
}

// -----------------------------------------------------------------------------
// GET /daily/share

// handleShare renders the shareable result text for a gameId. Past days
// resolve too: the selection is reconstructible from the day index alone.
func (d *dailyServer) handleShare(w http.ResponseWriter, r *http.Request) {
	gameID, err := strconv.Atoi(r.URL.Query().Get("gameId"))
	if err != nil || gameID < 0 {
		http.Error(w, `{"error":"bad_game_id"}`, http.StatusBadRequest)
		return
	}
	difficulty := match.DifficultyEasy
	if gameID%2 != 0 {
		difficulty = match.DifficultyHard
	}
	sel, err := daily.SelectForDay(d.srv.pools, gameID/2)
	if err != nil {
		http.Error(w, `{"error":"no_game_available"}`, http.StatusServiceUnavailable)
		return
	}
	rec, _ := sel.ByDifficulty(difficulty)

	order := share.GoalkeeperFirst
	if r.URL.Query().Get("rows") == "gk_last" {
		order = share.GoalkeeperLast
	}

	owner := d.userIDWithAnon(w, r)
	snap := d.loadSnapshot(r, owner, gameID)

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte(share.Render(rec, gameID, snap, order)))
}

// -----------------------------------------------------------------------------
// GET /daily/leaderboard

type lbRes struct {
	Date       string        `json:"date"`
	Difficulty string        `json:"difficulty"`
	Top        []daily.LBRow `json:"top"`
}

// handleLeaderboard returns the leaderboard for the given date and
// difficulty (defaults: today, easy).
func (d *dailyServer) handleLeaderboard(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		date = daily.DateKey(d.srv.now(), d.srv.loc)
	}
	difficulty := r.URL.Query().Get("difficulty")
	if difficulty == "" {
		difficulty = match.DifficultyEasy
	}
	rows, err := d.results.Leaderboard(r.Context(), date, difficulty, 20)
	if err != nil {
		http.Error(w, `{"error":"server_error"}`, http.StatusInternalServerError)
		return
	}
	_ = json.NewEncoder(w).Encode(lbRes{Date: date, Difficulty: difficulty, Top: rows})
}
