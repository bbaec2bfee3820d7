package server

import (
	crand "crypto/rand"
	"encoding/hex"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"nhooyr.io/websocket"

	"github.com/lgbarn/chessrules/internal/chess"
	"github.com/lgbarn/chessrules/internal/config"
	"github.com/lgbarn/chessrules/internal/errors"
	"github.com/lgbarn/chessrules/internal/game"
	"github.com/lgbarn/chessrules/internal/notation"
	"github.com/lgbarn/chessrules/internal/output"
)

// ---------- message envelope ----------

// Msg is the envelope of every message in both directions.
type Msg struct {
	T string                 `json:"t"`           // type
	M map[string]interface{} `json:"m,omitempty"` // payload
}

// ---------- client / table / hub ----------

type client struct {
	id   string
	conn *websocket.Conn
	send chan []byte
}

// table is one shared game and the clients watching it.
type table struct {
	session *game.Session
	members map[*client]struct{}
}

// Hub owns the connected clients and the games they share.
type Hub struct {
	cfg *config.Config

	mu      sync.RWMutex
	clients map[*client]struct{}

	tablesMu sync.RWMutex
	tables   map[string]*table
}

// NewHub creates a hub using cfg.Engine for new games and cfg.Server for
// connection settings.
func NewHub(cfg *config.Config) *Hub {
	return &Hub{
		cfg:     cfg,
		clients: map[*client]struct{}{},
		tables:  map[string]*table{},
	}
}

// ---------- websockets ----------

// ServeWS upgrades the request and serves the client until it disconnects.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request) {
	c, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns: h.cfg.Server.AllowOrigins,
	})
	if err != nil {
		log.Printf("accept: %v", err)
		return
	}

	cl := &client{id: randID(), conn: c, send: make(chan []byte, 64)}

	h.mu.Lock()
	h.clients[cl] = struct{}{}
	h.mu.Unlock()
	log.Printf("client %s connected", cl.id)

	ctx := r.Context()

	// writer
	done := make(chan struct{})
	go func() {
		defer close(done)
		var pings <-chan time.Time
		if h.cfg.Server.PingInterval > 0 {
			ticker := time.NewTicker(h.cfg.Server.PingInterval)
			defer ticker.Stop()
			pings = ticker.C
		}
		for {
			select {
			case msg, ok := <-cl.send:
				if !ok {
					return
				}
				if err := c.Write(ctx, websocket.MessageText, msg); err != nil {
					return
				}
			case <-pings:
				_ = c.Ping(ctx)
			}
		}
	}()

	h.sendTo(cl, Msg{T: "hello", M: map[string]interface{}{"id": cl.id}})

	// reader
	for {
		_, data, err := c.Read(ctx)
		if err != nil {
			break
		}
		var m Msg
		if err := json.Unmarshal(data, &m); err != nil {
			h.sendError(cl, "", fmt.Errorf("bad message: %v: %w", err, errors.ErrParseFailure))
			continue
		}
		h.handle(cl, m)
	}

	// disconnect
	h.leaveAll(cl)
	h.mu.Lock()
	delete(h.clients, cl)
	close(cl.send)
	h.mu.Unlock()
	<-done
	_ = c.Close(websocket.StatusNormalClosure, "bye")

	log.Printf("client %s disconnected", cl.id)
}

// handle dispatches one client message.
func (h *Hub) handle(cl *client, m Msg) {
	gameID, _ := m.M["game"].(string)

	switch m.T {

	// ---- Lobby ----
	case "new":
		fen, _ := m.M["fen"].(string)
		id, err := h.createTable(fen)
		if err != nil {
			h.sendError(cl, "", err)
			return
		}
		h.join(cl, id)
		log.Printf("game %s created by %s", id, cl.id)
		h.sendTo(cl, Msg{T: "created", M: map[string]interface{}{"game": id}})
		h.sendState(cl, id)

	case "join":
		if err := h.join(cl, gameID); err != nil {
			h.sendError(cl, gameID, err)
			return
		}
		log.Printf("game %s joined by %s", gameID, cl.id)
		h.sendState(cl, gameID)

	case "leave":
		h.leave(cl, gameID)
		h.sendTo(cl, Msg{T: "left", M: map[string]interface{}{"game": gameID}})

	case "list":
		h.sendTo(cl, Msg{T: "games", M: map[string]interface{}{"list": h.gamesSnapshot()}})

	// ---- Play ----
	case "move":
		sess, err := h.session(gameID)
		if err != nil {
			h.sendError(cl, gameID, err)
			return
		}
		mv, err := moveFromPayload(m.M)
		if err != nil {
			h.sendError(cl, gameID, err)
			return
		}
		h.play(cl, sess, mv)

	case "say":
		sess, err := h.session(gameID)
		if err != nil {
			h.sendError(cl, gameID, err)
			return
		}
		text, _ := m.M["text"].(string)
		mv, err := notation.ParsePhrase(text)
		if err != nil {
			h.sendError(cl, gameID, err)
			return
		}
		h.play(cl, sess, mv)

	case "undo":
		sess, err := h.session(gameID)
		if err != nil {
			h.sendError(cl, gameID, err)
			return
		}
		if !sess.Undo() {
			h.sendTo(cl, Msg{T: "error", M: map[string]interface{}{
				"game": gameID, "code": "NOTHING_TO_UNDO", "message": "no move to undo",
			}})
			return
		}
		h.broadcastState(gameID)

	case "legal":
		sess, err := h.session(gameID)
		if err != nil {
			h.sendError(cl, gameID, err)
			return
		}
		text, _ := m.M["from"].(string)
		from, err := chess.ParseSquare(text)
		if err != nil {
			h.sendError(cl, gameID, err)
			return
		}
		to := []string{}
		for _, sq := range sess.LegalDestinations(from) {
			to = append(to, sq.String())
		}
		h.sendTo(cl, Msg{T: "legal", M: map[string]interface{}{"game": gameID, "from": from.String(), "to": to}})

	case "state":
		if _, err := h.session(gameID); err != nil {
			h.sendError(cl, gameID, err)
			return
		}
		h.sendState(cl, gameID)

	case "ping":
		h.sendTo(cl, Msg{T: "pong"})

	default:
		h.sendError(cl, gameID, fmt.Errorf("unknown message type %q: %w", m.T, errors.ErrParseFailure))
	}
}

// play attempts mv and reports the outcome: the new state to every member
// of the game, a promotion prompt or an error to the sender only.
func (h *Hub) play(cl *client, sess *game.Session, mv notation.Move) {
	res, err := sess.AttemptMove(mv.From, mv.To, mv.Promotion)
	switch {
	case err != nil:
		h.sendError(cl, sess.ID, err)
	case res.PendingPromotion:
		h.sendTo(cl, Msg{T: "promotion", M: map[string]interface{}{
			"game": sess.ID, "from": mv.From.String(), "to": mv.To.String(),
			"choices": []string{"q", "r", "b", "n"},
		}})
	default:
		h.broadcastState(sess.ID)
	}
}

// moveFromPayload reads a move either as {"move": "e2e4"} or as
// {"from": "e2", "to": "e4", "promotion": "q"}.
func moveFromPayload(p map[string]interface{}) (notation.Move, error) {
	if text, ok := p["move"].(string); ok {
		return notation.ParseMove(text)
	}
	from, _ := p["from"].(string)
	to, _ := p["to"].(string)
	text := from + to
	if promo, _ := p["promotion"].(string); promo != "" {
		text += promo
	}
	return notation.ParseMove(text)
}

// ---------- tables ----------

func (h *Hub) createTable(fen string) (string, error) {
	var g *game.Game
	var err error
	if fen == "" {
		g, err = game.FromConfig(h.cfg.Engine)
	} else {
		g, err = game.NewGameFromFEN(fen, game.WithUndoLimit(h.cfg.Engine.MaxUndoDepth))
	}
	if err != nil {
		return "", err
	}

	h.tablesMu.Lock()
	defer h.tablesMu.Unlock()
	if limit := h.cfg.Server.MaxSessions; limit > 0 && len(h.tables) >= limit {
		return "", fmt.Errorf("limit is %d: %w", limit, errors.ErrTooManyGames)
	}
	id := randID()
	h.tables[id] = &table{session: game.NewSession(id, g), members: map[*client]struct{}{}}
	return id, nil
}

func (h *Hub) session(id string) (*game.Session, error) {
	h.tablesMu.RLock()
	defer h.tablesMu.RUnlock()
	t, ok := h.tables[id]
	if !ok {
		return nil, fmt.Errorf("game %q: %w", id, errors.ErrNoSuchGame)
	}
	return t.session, nil
}

func (h *Hub) join(cl *client, id string) error {
	h.tablesMu.Lock()
	defer h.tablesMu.Unlock()
	t, ok := h.tables[id]
	if !ok {
		return fmt.Errorf("game %q: %w", id, errors.ErrNoSuchGame)
	}
	t.members[cl] = struct{}{}
	return nil
}

// leave removes cl from a game; the game is dropped with its last member.
func (h *Hub) leave(cl *client, id string) {
	h.tablesMu.Lock()
	defer h.tablesMu.Unlock()
	h.leaveLocked(cl, id)
}

func (h *Hub) leaveAll(cl *client) {
	h.tablesMu.Lock()
	defer h.tablesMu.Unlock()
	for id := range h.tables {
		h.leaveLocked(cl, id)
	}
}

func (h *Hub) leaveLocked(cl *client, id string) {
	t, ok := h.tables[id]
	if !ok {
		return
	}
	if _, member := t.members[cl]; !member {
		return
	}
	delete(t.members, cl)
	if len(t.members) == 0 {
		delete(h.tables, id)
		log.Printf("game %s closed", id)
	}
}

// NumGames returns the number of open games.
func (h *Hub) NumGames() int {
	h.tablesMu.RLock()
	defer h.tablesMu.RUnlock()
	return len(h.tables)
}

func (h *Hub) gamesSnapshot() []map[string]interface{} {
	h.tablesMu.RLock()
	defer h.tablesMu.RUnlock()
	list := make([]map[string]interface{}, 0, len(h.tables))
	for id, t := range h.tables {
		status := t.session.Status()
		list = append(list, map[string]interface{}{
			"game": id, "players": len(t.members),
			"status": status.Status.String(), "toMove": status.ToMove.String(),
		})
	}
	return list
}

// ---------- helpers (send/broadcast/state) ----------

func randID() string {
	var b [8]byte
	_, _ = crand.Read(b[:])
	return hex.EncodeToString(b[:])
}

func (h *Hub) sendTo(c *client, msg Msg) {
	b, _ := json.Marshal(msg)
	h.mu.RLock()
	defer h.mu.RUnlock()
	if _, ok := h.clients[c]; !ok {
		return
	}
	select {
	case c.send <- b:
	default:
	}
}

func (h *Hub) stateMsg(id string) (Msg, bool) {
	h.tablesMu.RLock()
	t, ok := h.tables[id]
	h.tablesMu.RUnlock()
	if !ok {
		return Msg{}, false
	}
	var state *output.JSONState
	t.session.View(func(g *game.Game) {
		state = output.GameToJSON(g)
	})
	return Msg{T: "state", M: map[string]interface{}{"game": id, "state": state}}, true
}

func (h *Hub) sendState(c *client, id string) {
	if msg, ok := h.stateMsg(id); ok {
		h.sendTo(c, msg)
	}
}

func (h *Hub) broadcastState(id string) {
	msg, ok := h.stateMsg(id)
	if !ok {
		return
	}
	h.tablesMu.RLock()
	var members []*client
	if t, ok := h.tables[id]; ok {
		for c := range t.members {
			members = append(members, c)
		}
	}
	h.tablesMu.RUnlock()
	for _, c := range members {
		h.sendTo(c, msg)
	}
}

func (h *Hub) sendError(c *client, gameID string, err error) {
	h.sendTo(c, Msg{T: "error", M: map[string]interface{}{
		"game": gameID, "code": errorCode(err), "message": err.Error(),
	}})
}

// errorCode maps an error onto the code sent to clients.
func errorCode(err error) string {
	switch {
	case stderrors.Is(err, errors.ErrGameOver):
		return "GAME_OVER"
	case stderrors.Is(err, errors.ErrNotYourTurn):
		return "NOT_YOUR_TURN"
	case stderrors.Is(err, errors.ErrInvalidPromotion):
		return "INVALID_PROMOTION"
	case stderrors.Is(err, errors.ErrIllegalMove):
		return "ILLEGAL_MOVE"
	case stderrors.Is(err, errors.ErrInvalidSquare), stderrors.Is(err, errors.ErrParseFailure):
		return "BAD_INPUT"
	case stderrors.Is(err, errors.ErrInvalidFEN), stderrors.Is(err, errors.ErrInvalidPosition):
		return "BAD_POSITION"
	case stderrors.Is(err, errors.ErrNoSuchGame):
		return "NO_SUCH_GAME"
	case stderrors.Is(err, errors.ErrTooManyGames):
		return "TOO_MANY_GAMES"
	default:
		return "INTERNAL"
	}
}
