package network

import (
	"errors"
	"log"
	"net/http"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	jsoniter "github.com/json-iterator/go"

	"github.com/shadowgov/server/consts"
	"github.com/shadowgov/server/game"
	"github.com/shadowgov/server/manager"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type Websocket struct {
	addr    string
	manager *manager.Manager
}

func NewWebsocketServer(addr string, m *manager.Manager) Websocket {
	return Websocket{addr: addr, manager: m}
}

func (w Websocket) Serve() error {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", w.serveWs)
	log.Printf("websocket server listening on %s", w.addr)
	return http.ListenAndServe(w.addr, mux)
}

func (w Websocket) serveWs(rw http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(rw, r, nil)
	if err != nil {
		log.Println(err)
		return
	}
	client := &client{id: uuid.NewString(), conn: conn, manager: w.manager}
	defer client.close()
	client.listen()
}

// client is one websocket connection. Writes are serialized because the
// broadcast fanout and the request loop both push frames.
type client struct {
	id      string
	conn    *websocket.Conn
	manager *manager.Manager

	writeMu sync.Mutex
	matchID string
}

func (c *client) listen() {
	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			return
		}
		var req Request
		if err := json.Unmarshal(data, &req); err != nil {
			c.send(errResponse("", consts.ErrorsInvalidAction))
			continue
		}
		c.send(c.handle(req))
	}
}

func (c *client) handle(req Request) Response {
	switch req.Type {
	case RequestCreateMatch:
		match, err := c.manager.CreateMatch(req.Humans, req.Seats, 0)
		if err != nil {
			return errResponse(req.Type, err)
		}
		return Response{Type: req.Type, OK: true, MatchID: match.Game.ID, View: match.Game.ViewFor("")}

	case RequestStartMatch:
		match := c.manager.GetMatch(req.MatchID)
		if match == nil {
			return errResponse(req.Type, errors.New("match not found"))
		}
		result, err := match.Start()
		if err != nil {
			return errResponse(req.Type, err)
		}
		return Response{Type: req.Type, OK: true, MatchID: req.MatchID, Result: result}

	case RequestAction:
		match := c.manager.GetMatch(req.MatchID)
		if match == nil || req.Action == nil {
			return errResponse(req.Type, consts.ErrorsInvalidAction)
		}
		result, err := match.Submit(*req.Action)
		if err != nil {
			return errResponse(req.Type, err)
		}
		return Response{Type: req.Type, OK: true, MatchID: req.MatchID, Result: result}

	case RequestState:
		match := c.manager.GetMatch(req.MatchID)
		if match == nil {
			return errResponse(req.Type, errors.New("match not found"))
		}
		return Response{Type: req.Type, OK: true, MatchID: req.MatchID, View: match.Game.ViewFor(req.PlayerID)}

	case RequestActions:
		match := c.manager.GetMatch(req.MatchID)
		if match == nil {
			return errResponse(req.Type, errors.New("match not found"))
		}
		return Response{Type: req.Type, OK: true, MatchID: req.MatchID, Actions: match.Game.AvailableActions(req.PlayerID)}

	case RequestClaim:
		match := c.manager.GetMatch(req.MatchID)
		if match == nil || req.PlayerID == "" {
			return errResponse(req.Type, consts.ErrorsInvalidAction)
		}
		match.RecordClaim(req.PlayerID, req.Policies)
		return Response{Type: req.Type, OK: true, MatchID: req.MatchID}

	case RequestSubscribe:
		match := c.manager.GetMatch(req.MatchID)
		if match == nil {
			return errResponse(req.Type, errors.New("match not found"))
		}
		c.matchID = req.MatchID
		match.Subscribe(c.id, func(e game.Event) {
			c.send(Response{Type: "event", OK: true, MatchID: e.MatchID, Event: &e})
		})
		match.SubscribeChat(c.id, func(msg manager.ChatMessage) {
			c.send(Response{Type: "chat", OK: true, MatchID: msg.MatchID, Chat: &msg})
		})
		return Response{Type: req.Type, OK: true, MatchID: req.MatchID}

	default:
		return errResponse(req.Type, consts.ErrorsInvalidAction)
	}
}

func (c *client) send(resp Response) {
	data, err := json.Marshal(resp)
	if err != nil {
		log.Println(err)
		return
	}
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
		log.Println(err)
	}
}

func (c *client) close() {
	if c.matchID != "" {
		if match := c.manager.GetMatch(c.matchID); match != nil {
			match.Unsubscribe(c.id)
		}
	}
	_ = c.conn.Close()
}
