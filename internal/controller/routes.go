package controller

import (
	"github.com/AndrewSs45/Projecto-Algebra/internal/middleware"
	"github.com/AndrewSs45/Projecto-Algebra/internal/service"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

// RegisterRoutes mounts the REST API under /api and the live board feed
// under /ws.
func RegisterRoutes(app *fiber.App, boardService *service.BoardService, wsConfig websocket.Config) {
	boardController := NewBoardController(boardService)
	wsController := NewWebSocketController()
	withSession := middleware.EnsureSession(boardService)

	app.Get("/ws/session/:sessionId",
		withSession,
		middleware.WebSocketUpgrade(),
		websocket.New(wsController.HandleConnection, wsConfig),
	)

	api := app.Group("/api")
	api.Get("/notation/:square", boardController.LocateSquare)
	api.Post("/session", boardController.CreateSession)

	api.Get("/session/:sessionId", withSession, boardController.GetState)
	api.Delete("/session/:sessionId", withSession, boardController.DeleteSession)
	api.Post("/session/:sessionId/reset", withSession, boardController.Reset)
	api.Get("/session/:sessionId/moves/:square", withSession, boardController.ValidMoves)
	api.Post("/session/:sessionId/select", withSession, boardController.Select)
	api.Post("/session/:sessionId/click", withSession, boardController.Click)
	api.Post("/session/:sessionId/move", withSession, boardController.Move)
}
