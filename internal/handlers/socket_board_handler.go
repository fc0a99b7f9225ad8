package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"socketBoard/internal/enums"
	"socketBoard/internal/logger"
	"socketBoard/internal/models"
	"socketBoard/internal/models/board"
	redisModels "socketBoard/internal/models/redis"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/redis/go-redis/v9"
)

// SocketBoardHandler owns the realtime surface: it upgrades connections,
// keeps room membership in the hub, and moves draw/clear events through a
// redis channel before fanning them out. The hub alone decides delivery, so
// membership never leaves this process.
type SocketBoardHandler struct {
	ctx      context.Context
	upgrader websocket.Upgrader
	hub      *board.BoardSocketHub
	redis    *redis.Client
	log      *logger.Logger
}

func NewSocketBoardHandler(redis *redis.Client, ctx context.Context, log *logger.Logger) *SocketBoardHandler {
	sbh := &SocketBoardHandler{
		ctx: ctx,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
		hub:   board.NewBoardSocketHub(),
		redis: redis,
		log:   log,
	}
	go sbh.HandleRedisMessages()
	return sbh
}

func (sbh *SocketBoardHandler) Hub() *board.BoardSocketHub {
	return sbh.hub
}

func (sbh *SocketBoardHandler) HandleSocketBoardRoute(ctx *gin.Context) {
	ws, err := sbh.upgrader.Upgrade(ctx.Writer, ctx.Request, nil)
	if err != nil {
		sbh.log.Errorw("failed to upgrade connection", "err", err)
		return
	}

	client := &models.SocketClient{
		ID:   uuid.NewString(),
		Conn: ws,
	}
	defer func() {
		sbh.hub.Leave(client.ID)
		_ = ws.Close()
	}()

	sbh.log.Infow("client connected", "conn_id", client.ID)
	sbh.handleIncomingEvents(client)
	sbh.log.Infow("client disconnected", "conn_id", client.ID)
}

func (sbh *SocketBoardHandler) handleIncomingEvents(client *models.SocketClient) {
	for {
		var event models.SocketEvent
		if err := client.Conn.ReadJSON(&event); err != nil {
			// Read errors mean the connection is closing; membership is
			// dropped synchronously by the deferred Leave.
			return
		}

		switch event.Event {
		case enums.SOCKET_EVENT_JOIN_ROOM:
			sbh.handleJoinRoomEvent(client, &event)
		case enums.SOCKET_EVENT_DRAW:
			sbh.handleDrawEvent(client, &event)
		case enums.SOCKET_EVENT_CLEAR:
			sbh.handleClearEvent(client, &event)
		default:
			sbh.log.Warnw("unknown event", "event", event.Event, "conn_id", client.ID)
		}
	}
}

func (sbh *SocketBoardHandler) handleJoinRoomEvent(client *models.SocketClient, event *models.SocketEvent) {
	var room string
	if err := json.Unmarshal(event.Payload, &room); err != nil || room == "" {
		sbh.log.Warnw("invalid joinRoom payload", "conn_id", client.ID)
		return
	}
	sbh.hub.Join(client, room)
	sbh.log.Infow("joined room", "conn_id", client.ID, "room", room)
}

func (sbh *SocketBoardHandler) handleDrawEvent(client *models.SocketClient, event *models.SocketEvent) {
	var draw models.DrawPayload
	if err := json.Unmarshal(event.Payload, &draw); err != nil || draw.Room == "" {
		sbh.log.Warnw("draw event without room", "conn_id", client.ID)
		return
	}
	sbh.publishEvent(&redisModels.RelayedBoardEvent{
		Event:   enums.SOCKET_EVENT_DRAW,
		Room:    draw.Room,
		Origin:  client.ID,
		Payload: event.Payload,
	})
}

func (sbh *SocketBoardHandler) handleClearEvent(client *models.SocketClient, event *models.SocketEvent) {
	var room string
	if err := json.Unmarshal(event.Payload, &room); err != nil || room == "" {
		sbh.log.Warnw("invalid clear payload", "conn_id", client.ID)
		return
	}
	sbh.publishEvent(&redisModels.RelayedBoardEvent{
		Event:  enums.SOCKET_EVENT_CLEAR,
		Room:   room,
		Origin: client.ID,
	})
}

func (sbh *SocketBoardHandler) publishEvent(event *redisModels.RelayedBoardEvent) {
	jsonEvent, err := json.Marshal(event)
	if err != nil {
		sbh.log.Errorw("error marshalling event", "err", err)
		return
	}
	if err := sbh.redis.Publish(sbh.ctx, redisModels.REDIS_CHANNEL_BOARD, jsonEvent).Err(); err != nil {
		sbh.log.Errorw("error publishing event", "err", err)
	}
}

// HandleRedisMessages is the single fan-out point: one subscriber drains the
// board channel in arrival order, which preserves FIFO per sender.
func (sbh *SocketBoardHandler) HandleRedisMessages() {
	pubsub := sbh.redis.Subscribe(sbh.ctx, redisModels.REDIS_CHANNEL_BOARD)
	if _, err := pubsub.Receive(sbh.ctx); err != nil {
		sbh.log.Errorw("could not subscribe to board channel", "err", err)
		return
	}

	for msg := range pubsub.Channel() {
		var event redisModels.RelayedBoardEvent
		if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
			sbh.log.Errorw("error unmarshalling event", "err", err)
			continue
		}
		sbh.dispatch(&event)
	}
}

func (sbh *SocketBoardHandler) dispatch(event *redisModels.RelayedBoardEvent) {
	switch event.Event {
	case enums.SOCKET_EVENT_DRAW:
		sbh.hub.BroadcastDraw(event.Origin, event.Room, event.Payload)
	case enums.SOCKET_EVENT_CLEAR:
		sbh.hub.BroadcastClear(event.Origin, event.Room)
	default:
		sbh.log.Warnw("unknown relayed event", "event", event.Event)
	}
}

// Shutdown closes every live connection.
func (sbh *SocketBoardHandler) Shutdown() {
	sbh.hub.CloseAll()
}
