package handler

import (
	"errors"

	"talent-ops/internal/delivery/http/dto"
	"talent-ops/internal/delivery/http/middleware"
	"talent-ops/internal/domain/staffing"
	"talent-ops/internal/pkg/response"
	"talent-ops/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type StaffingHandler struct {
	uc usecase.StaffingUsecase
}

func NewStaffingHandler(uc usecase.StaffingUsecase) *StaffingHandler {
	return &StaffingHandler{uc: uc}
}

func (h *StaffingHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	grp := r.Group("/projects")
	grp.Post("/:project_id/recommendations", h.Recommend)
}

func (h *StaffingHandler) Recommend(c fiber.Ctx) error {
	projectID, err := uuid.Parse(c.Params("project_id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid project id", nil, err)
	}

	var req dto.StaffingRecommendationRequest
	if len(c.Body()) > 0 {
		if err := c.Bind().Body(&req); err != nil {
			return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
		}
	}

	priority := staffing.ParsePriority(req.Priority)
	res, err := h.uc.Recommend(c.Context(), usecase.StaffingParams{
		ProjectID:      projectID,
		RequiredSkills: req.RequiredSkills,
		TeamSize:       req.TeamSize,
		Priority:       priority,
	})
	if err != nil {
		return mapStaffingUsecaseError(err)
	}

	out := dto.StaffingRecommendationResponse{
		ProjectID:       res.ProjectID,
		Priority:        string(priority),
		TotalCandidates: len(res.Recommendations),
		Recommendations: make([]dto.CandidateResponse, 0, len(res.Recommendations)),
		Warnings:        res.Warnings,
	}
	for _, cand := range res.Recommendations {
		out.Recommendations = append(out.Recommendations, toCandidateResponse(cand))
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func toCandidateResponse(cand staffing.Candidate) dto.CandidateResponse {
	details := make([]dto.SkillDetailResponse, 0, len(cand.SkillDetails))
	for _, d := range cand.SkillDetails {
		details = append(details, dto.SkillDetailResponse{
			Skill: d.Skill,
			Level: string(d.Level),
			Years: d.Years,
			Score: d.Score,
		})
	}
	return dto.CandidateResponse{
		EmployeeID:        cand.EmployeeID,
		Name:              cand.Name,
		Role:              cand.Role,
		YearsOfExperience: cand.YearsOfExperience,
		MatchedSkills:     cand.MatchedSkills,
		SkillDetails:      details,
		SkillMatchScore:   cand.SkillMatchScore,
		SimilarityScore:   cand.SimilarityScore,
		AffinityScore:     cand.AffinityScore,
		OverallScore:      cand.OverallScore,
		DomainBonus:       cand.DomainBonus,
		Availability:      string(cand.Availability),
		Reasoning:         cand.Reasoning,
	}
}

func mapStaffingUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	case errors.Is(err, usecase.ErrProjectNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Project not found", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, "", nil, err)
	}
}
