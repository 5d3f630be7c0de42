package controller

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/AndrewSs45/Projecto-Algebra/internal/middleware"
	"github.com/AndrewSs45/Projecto-Algebra/internal/service"
	"github.com/AndrewSs45/Projecto-Algebra/internal/ws"
	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"
)

type WebSocketController struct{}

func NewWebSocketController() *WebSocketController {
	return &WebSocketController{}
}

// HandleConnection is called when a new WebSocket connection is established
func (wsc *WebSocketController) HandleConnection(c *websocket.Conn) {
	session, ok := c.Locals(middleware.SessionKey).(*service.Session)
	if !ok {
		log.Printf("websocket without session for %s", c.Params("sessionId"))
		c.Close()
		return
	}
	connID := uuid.NewString()

	if err := session.Subscribe(connID, c); err != nil {
		log.Printf("Failed to subscribe connection: %v", err)
		c.Close()
		return
	}
	log.Printf("session %s: connection %s subscribed", session.ID, connID)

	for {
		messageType, message, err := c.ReadMessage()
		if err != nil {
			log.Printf("read error: %v", err)
			break
		}
		if messageType != websocket.TextMessage {
			continue
		}

		var msg ws.Message
		if err := json.Unmarshal(message, &msg); err != nil {
			log.Printf("parse error: %v", err)
			wsc.sendError(session, connID, fmt.Errorf("malformed message: %w", err))
			continue
		}
		if err := wsc.handleMessage(session, msg); err != nil {
			log.Printf("handle error: %v", err)
			wsc.sendError(session, connID, err)
		}
	}

	session.Unsubscribe(connID)
}

// handleMessage applies one inbound message. Successful changes reach every
// subscriber through the session's broadcast.
func (wsc *WebSocketController) handleMessage(session *service.Session, msg ws.Message) error {
	switch msg.Type {
	case ws.MessageTypeSelect, ws.MessageTypeClick:
		var payload ws.SquarePayload
		if err := json.Unmarshal(msg.Payload, &payload); err != nil {
			return err
		}
		if msg.Type == ws.MessageTypeSelect {
			_, err := session.Select(payload.Square)
			return err
		}
		_, err := session.Click(payload.Square)
		return err

	case ws.MessageTypeMove:
		var move ws.MovePayload
		if err := json.Unmarshal(msg.Payload, &move); err != nil {
			return err
		}
		_, err := session.Move(move.From, move.To)
		return err

	case ws.MessageTypeReset:
		session.Reset()
		return nil

	default:
		return fmt.Errorf("unknown message type: %s", msg.Type)
	}
}

func (wsc *WebSocketController) sendError(session *service.Session, connID string, err error) {
	if sendErr := session.Send(connID, ws.MessageTypeError, ws.ErrorPayload{Error: err.Error()}); sendErr != nil {
		log.Printf("send error to %s: %v", connID, sendErr)
	}
}
