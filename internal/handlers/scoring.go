package handlers

import (
	"errors"

	apperrors "fraudguard/internal/errors"
	"fraudguard/internal/models"
	"fraudguard/internal/repositories"
	"fraudguard/internal/services/scoring"
	"fraudguard/internal/utils/response"
	"fraudguard/internal/validation"

	"github.com/gofiber/fiber/v2"
)

type ScoringHandler struct {
	scoringService scoring.Service
	evalRepo       repositories.EvaluationRepository
}

func NewScoringHandler(scoringService scoring.Service, evalRepo repositories.EvaluationRepository) *ScoringHandler {
	return &ScoringHandler{
		scoringService: scoringService,
		evalRepo:       evalRepo,
	}
}

// ScoreTransaction runs one full scoring pass for the submitted transaction
// and returns the verdict report plus the gauge payload.
func (h *ScoringHandler) ScoreTransaction(c *fiber.Ctx) error {
	var raw models.RawTransaction
	if err := c.BodyParser(&raw); err != nil {
		return response.BadRequest(c, "invalid request body")
	}

	v := validation.New()
	v.RawTransaction(&raw)
	if !v.Valid() {
		return response.ValidationError(c, v.Errors)
	}

	claims, _ := c.Locals("claims").(*models.OperatorClaims)
	operator := ""
	if claims != nil {
		operator = claims.Email
	}

	outcome, err := h.scoringService.Evaluate(c.Context(), raw, operator)
	if err != nil {
		switch {
		case errors.Is(err, scoring.ErrArtifactsUnavailable):
			return response.ErrorWithCode(c, fiber.StatusServiceUnavailable,
				apperrors.ErrArtifactUnavailable.Code, apperrors.ErrArtifactUnavailable.Message)
		case errors.Is(err, scoring.ErrInvalidInput):
			return response.ErrorWithCode(c, fiber.StatusBadRequest,
				apperrors.ErrInvalidInput.Code, err.Error())
		case errors.Is(err, scoring.ErrInvalidProbability):
			return response.ErrorWithCode(c, fiber.StatusInternalServerError,
				apperrors.ErrInvalidProbability.Code, apperrors.ErrInvalidProbability.Message)
		default:
			return response.ServerError(c, "failed to score transaction")
		}
	}

	return response.Success(c, "Transaction scored successfully", outcome)
}

// GetEvaluations returns the recent evaluation history, newest first.
func (h *ScoringHandler) GetEvaluations(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 20)
	offset := c.QueryInt("offset", 0)
	if limit < 1 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	evals, total, err := h.evalRepo.GetRecent(c.Context(), limit, offset)
	if err != nil {
		return response.ServerError(c, "failed to get evaluations")
	}

	return response.Success(c, "Evaluations retrieved successfully", fiber.Map{
		"evaluations": evals,
		"total":       total,
		"limit":       limit,
		"offset":      offset,
	})
}

// GetEvaluation returns a single evaluation by its external reference ID.
func (h *ScoringHandler) GetEvaluation(c *fiber.Ctx) error {
	id := c.Params("id")

	eval, err := h.evalRepo.GetByEvaluationID(c.Context(), id)
	if err != nil {
		if errors.Is(err, repositories.ErrEvaluationNotFound) {
			return response.Error(c, fiber.StatusNotFound, "evaluation not found")
		}
		return response.ServerError(c, "failed to get evaluation")
	}

	return response.Success(c, "Evaluation retrieved successfully", eval)
}
