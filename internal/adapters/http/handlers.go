// Package httpadapter exposes game sessions over a JSON API.
package httpadapter

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"svw.info/hanoi/internal/domain"
	"svw.info/hanoi/internal/usecase"
)

// Handler owns the live game sessions and their HTTP surface. Each session is
// one independent usecase.Service keyed by a UUID the client carries.
type Handler struct {
	mu    sync.Mutex
	games map[string]*usecase.Service

	pace time.Duration
	log  *zap.Logger
}

func New(pace time.Duration, log *zap.Logger) *Handler {
	return &Handler{games: make(map[string]*usecase.Service), pace: pace, log: log}
}

func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("/api/new", h.handleNew)
	mux.HandleFunc("/api/reset", h.handleReset)
	mux.HandleFunc("/api/move", h.handleMove)
	mux.HandleFunc("/api/select", h.handleSelect)
	mux.HandleFunc("/api/deselect", h.handleDeselect)
	mux.HandleFunc("/api/click", h.handleClick)
	mux.HandleFunc("/api/activate", h.handleActivate)
	mux.HandleFunc("/api/solve", h.handleSolve)
	mux.HandleFunc("/api/hint", h.handleHint)
	mux.HandleFunc("/api/state", h.handleState)
}

func (h *Handler) game(id string) (*usecase.Service, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	svc, ok := h.games[id]
	return svc, ok
}

// ---- New / Reset ----

type newReq struct {
	NumDisks int `json:"numDisks"`
}

type newResp struct {
	ID       string          `json:"id,omitempty"`
	Snapshot domain.Snapshot `json:"snapshot"`
	Error    string          `json:"error,omitempty"`
}

func (h *Handler) handleNew(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodPost {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	var req newReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && err.Error() != "EOF" {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(newResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	if req.NumDisks == 0 {
		req.NumDisks = 5
	}
	svc, err := usecase.New(req.NumDisks, usecase.WithPace(h.pace))
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(newResp{Error: err.Error()})
		return
	}
	id := uuid.NewString()
	h.mu.Lock()
	h.games[id] = svc
	h.mu.Unlock()
	GamesCreated.Inc()
	ActiveGames.Inc()
	h.log.Info("game created", zap.String("id", id), zap.Int("disks", req.NumDisks))
	_ = json.NewEncoder(w).Encode(newResp{ID: id, Snapshot: svc.Snapshot()})
}

type resetReq struct {
	ID       string `json:"id"`
	NumDisks int    `json:"numDisks"`
}

func (h *Handler) handleReset(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodPost {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	var req resetReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ID == "" {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(newResp{Error: "invalid JSON or missing id"})
		return
	}
	svc, ok := h.game(req.ID)
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(newResp{Error: "unknown game"})
		return
	}
	if req.NumDisks == 0 {
		req.NumDisks = svc.Snapshot().NumDisks
	}
	if err := svc.Reset(req.NumDisks); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(newResp{Error: err.Error()})
		return
	}
	_ = json.NewEncoder(w).Encode(newResp{ID: req.ID, Snapshot: svc.Snapshot()})
}

// ---- Move / Click / Activate ----

type moveReq struct {
	ID   string `json:"id"`
	From int    `json:"from"`
	To   int    `json:"to"`
}

type moveResp struct {
	Result   domain.MoveResult `json:"result"`
	Snapshot domain.Snapshot   `json:"snapshot"`
	Error    string            `json:"error,omitempty"`
}

func (h *Handler) handleMove(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodPost {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	var req moveReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ID == "" {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(moveResp{Error: "invalid JSON or missing id"})
		return
	}
	svc, ok := h.game(req.ID)
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(moveResp{Error: "unknown game"})
		return
	}
	if !domain.ValidPeg(req.From) || !domain.ValidPeg(req.To) {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(moveResp{Error: "peg index out of range"})
		return
	}
	res := svc.AttemptMove(req.From, req.To)
	observeMove(res.Applied, res.Reason.String())
	_ = json.NewEncoder(w).Encode(moveResp{Result: res, Snapshot: svc.Snapshot()})
}

type clickReq struct {
	ID  string `json:"id"`
	Peg int    `json:"peg"`
	// Disk is true when the click landed on the peg's top disk rather than
	// the peg area.
	Disk bool `json:"disk"`
}

func (h *Handler) handleClick(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodPost {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	var req clickReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ID == "" {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(moveResp{Error: "invalid JSON or missing id"})
		return
	}
	svc, ok := h.game(req.ID)
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(moveResp{Error: "unknown game"})
		return
	}
	if !domain.ValidPeg(req.Peg) {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(moveResp{Error: "peg index out of range"})
		return
	}
	var res domain.MoveResult
	if req.Disk {
		svc.ClickDisk(req.Peg)
	} else {
		res = svc.ClickPeg(req.Peg)
		if res.Applied || res.Reason != domain.ReasonNone {
			observeMove(res.Applied, res.Reason.String())
		}
	}
	_ = json.NewEncoder(w).Encode(moveResp{Result: res, Snapshot: svc.Snapshot()})
}

type activateReq struct {
	ID  string `json:"id"`
	Peg int    `json:"peg"`
}

func (h *Handler) handleActivate(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodPost {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	var req activateReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ID == "" {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(moveResp{Error: "invalid JSON or missing id"})
		return
	}
	svc, ok := h.game(req.ID)
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(moveResp{Error: "unknown game"})
		return
	}
	if !domain.ValidPeg(req.Peg) {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(moveResp{Error: "peg index out of range"})
		return
	}
	res := svc.Activate(req.Peg)
	if res.Applied || res.Reason != domain.ReasonNone {
		observeMove(res.Applied, res.Reason.String())
	}
	_ = json.NewEncoder(w).Encode(moveResp{Result: res, Snapshot: svc.Snapshot()})
}

// ---- Select / Deselect ----

type selectReq struct {
	ID  string `json:"id"`
	Peg int    `json:"peg"`
}

type selectResp struct {
	Selected bool            `json:"selected"`
	Snapshot domain.Snapshot `json:"snapshot"`
	Error    string          `json:"error,omitempty"`
}

func (h *Handler) handleSelect(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodPost {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	var req selectReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ID == "" {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(selectResp{Error: "invalid JSON or missing id"})
		return
	}
	svc, ok := h.game(req.ID)
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(selectResp{Error: "unknown game"})
		return
	}
	if !domain.ValidPeg(req.Peg) {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(selectResp{Error: "peg index out of range"})
		return
	}
	ok = svc.Select(req.Peg)
	_ = json.NewEncoder(w).Encode(selectResp{Selected: ok, Snapshot: svc.Snapshot()})
}

func (h *Handler) handleDeselect(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodPost {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	var req selectReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ID == "" {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(selectResp{Error: "invalid JSON or missing id"})
		return
	}
	svc, ok := h.game(req.ID)
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(selectResp{Error: "unknown game"})
		return
	}
	svc.Deselect()
	_ = json.NewEncoder(w).Encode(selectResp{Snapshot: svc.Snapshot()})
}

// ---- Solve / Hint / State ----

type solveResp struct {
	Solving  bool            `json:"solving"`
	Snapshot domain.Snapshot `json:"snapshot"`
	Error    string          `json:"error,omitempty"`
}

func (h *Handler) handleSolve(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodPost {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	var req selectReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ID == "" {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(solveResp{Error: "invalid JSON or missing id"})
		return
	}
	svc, ok := h.game(req.ID)
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(solveResp{Error: "unknown game"})
		return
	}
	if err := svc.StartAutoSolve(); err != nil {
		w.WriteHeader(http.StatusConflict)
		_ = json.NewEncoder(w).Encode(solveResp{Solving: svc.IsSolving(), Error: err.Error()})
		return
	}
	SolveRuns.Inc()
	h.log.Info("auto-solve started", zap.String("id", req.ID))
	_ = json.NewEncoder(w).Encode(solveResp{Solving: true, Snapshot: svc.Snapshot()})
}

type hintResp struct {
	Found bool        `json:"found"`
	Move  domain.Move `json:"move"`
	Error string      `json:"error,omitempty"`
}

func (h *Handler) handleHint(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodPost {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	var req selectReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ID == "" {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(hintResp{Error: "invalid JSON or missing id"})
		return
	}
	svc, ok := h.game(req.ID)
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(hintResp{Error: "unknown game"})
		return
	}
	mv, found := svc.Hint()
	if found {
		HintsServed.Inc()
	}
	_ = json.NewEncoder(w).Encode(hintResp{Found: found, Move: mv})
}

type stateResp struct {
	Snapshot domain.Snapshot `json:"snapshot"`
	Error    string          `json:"error,omitempty"`
}

func (h *Handler) handleState(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodGet {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	svc, ok := h.game(r.URL.Query().Get("id"))
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(stateResp{Error: "unknown game"})
		return
	}
	_ = json.NewEncoder(w).Encode(stateResp{Snapshot: svc.Snapshot()})
}
