package controller

import (
	"errors"
	"log"

	"github.com/AndrewSs45/Projecto-Algebra/internal/middleware"
	"github.com/AndrewSs45/Projecto-Algebra/internal/model"
	"github.com/AndrewSs45/Projecto-Algebra/internal/service"
	"github.com/AndrewSs45/Projecto-Algebra/internal/ws"
	"github.com/gofiber/fiber/v2"
)

type BoardController struct {
	boardService *service.BoardService
}

func NewBoardController(boardService *service.BoardService) *BoardController {
	return &BoardController{boardService: boardService}
}

// errorStatus maps service and model errors to HTTP status codes.
func errorStatus(err error) int {
	switch {
	case errors.Is(err, service.ErrSessionNotFound), errors.Is(err, service.ErrNoPiece):
		return fiber.StatusNotFound
	case errors.Is(err, service.ErrIllegalMove):
		return fiber.StatusUnprocessableEntity
	case errors.Is(err, model.ErrInvalidSquare):
		return fiber.StatusBadRequest
	}
	return fiber.StatusInternalServerError
}

func sendError(c *fiber.Ctx, err error) error {
	status := errorStatus(err)
	if status == fiber.StatusInternalServerError {
		log.Printf("%s %s: %v", c.Method(), c.Path(), err)
	}
	return c.Status(status).JSON(fiber.Map{
		"error": err.Error(),
	})
}

func badBody(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error": "invalid request body: " + err.Error(),
	})
}

func (bc *BoardController) CreateSession(c *fiber.Ctx) error {
	session, err := bc.boardService.CreateSession()
	if err != nil {
		return sendError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"sessionId": session.ID,
		"state":     session.Snapshot(),
	})
}

func (bc *BoardController) GetState(c *fiber.Ctx) error {
	return c.JSON(middleware.SessionFrom(c).Snapshot())
}

func (bc *BoardController) DeleteSession(c *fiber.Ctx) error {
	if err := bc.boardService.DeleteSession(c.Params("sessionId")); err != nil {
		return sendError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (bc *BoardController) Reset(c *fiber.Ctx) error {
	return c.JSON(middleware.SessionFrom(c).Reset())
}

func (bc *BoardController) ValidMoves(c *fiber.Ctx) error {
	square := c.Params("square")
	moves, err := middleware.SessionFrom(c).ValidMoves(square)
	if err != nil {
		return sendError(c, err)
	}
	return c.JSON(fiber.Map{
		"square": square,
		"moves":  moves,
	})
}

func (bc *BoardController) Select(c *fiber.Ctx) error {
	var body ws.SquarePayload
	if err := c.BodyParser(&body); err != nil {
		return badBody(c, err)
	}
	view, err := middleware.SessionFrom(c).Select(body.Square)
	if err != nil {
		return sendError(c, err)
	}
	return c.JSON(view)
}

func (bc *BoardController) Click(c *fiber.Ctx) error {
	var body ws.SquarePayload
	if err := c.BodyParser(&body); err != nil {
		return badBody(c, err)
	}
	outcome, err := middleware.SessionFrom(c).Click(body.Square)
	if err != nil {
		return sendError(c, err)
	}
	return c.JSON(outcome)
}

func (bc *BoardController) Move(c *fiber.Ctx) error {
	var body ws.MovePayload
	if err := c.BodyParser(&body); err != nil {
		return badBody(c, err)
	}
	report, err := middleware.SessionFrom(c).Move(body.From, body.To)
	if err != nil {
		return sendError(c, err)
	}
	return c.JSON(report)
}

// LocateSquare converts an algebraic square to grid coordinates.
func (bc *BoardController) LocateSquare(c *fiber.Ctx) error {
	sq, err := bc.boardService.LocateSquare(c.Params("square"))
	if err != nil {
		return sendError(c, err)
	}
	return c.JSON(sq)
}
