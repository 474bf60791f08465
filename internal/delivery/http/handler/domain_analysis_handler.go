package handler

import (
	"talent-ops/internal/delivery/http/dto"
	"talent-ops/internal/delivery/http/middleware"
	"talent-ops/internal/pkg/response"
	"talent-ops/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

// Each identified domain surfaces at most this many transferable employees.
const recommendedTeamCap = 5

type DomainAnalysisHandler struct {
	uc usecase.DomainAnalysisUsecase
}

func NewDomainAnalysisHandler(uc usecase.DomainAnalysisUsecase) *DomainAnalysisHandler {
	return &DomainAnalysisHandler{uc: uc}
}

func (h *DomainAnalysisHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	grp := r.Group("/domains")
	grp.Post("/analysis", h.Analyze)
}

func (h *DomainAnalysisHandler) Analyze(c fiber.Ctx) error {
	var req dto.DomainAnalysisRequest
	if len(c.Body()) > 0 {
		if err := c.Bind().Body(&req); err != nil {
			return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
		}
	}

	res, err := h.uc.Analyze(c.Context(), usecase.DomainAnalysisParams{AnalysisType: req.AnalysisType})
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, "", nil, err)
	}

	out := dto.DomainAnalysisResponse{
		AnalysisType:          res.AnalysisType,
		CurrentDomains:        res.CurrentDomains,
		IdentifiedDomains:     toDomainCandidateResponses(res.IdentifiedDomains),
		RecommendedDomains:    toDomainCandidateResponses(res.RecommendedDomains),
		TotalProjectsAnalyzed: res.TotalProjectsAnalyzed,
		TotalEmployees:        res.TotalEmployees,
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func toDomainCandidateResponses(candidates []usecase.DomainCandidate) []dto.DomainCandidateResponse {
	out := make([]dto.DomainCandidateResponse, 0, len(candidates))
	for _, cand := range candidates {
		proficiency := make(map[string]string, len(cand.SkillProficiency))
		for skill, level := range cand.SkillProficiency {
			proficiency[skill] = string(level)
		}

		team := cand.Transferable
		if len(team) > recommendedTeamCap {
			team = team[:recommendedTeamCap]
		}
		members := make([]dto.TransferableEmployeeResponse, 0, len(team))
		for _, e := range team {
			members = append(members, dto.TransferableEmployeeResponse{
				EmployeeID: e.ID,
				Name:       e.Name,
				Role:       e.Role,
			})
		}

		out = append(out, dto.DomainCandidateResponse{
			DomainName:       cand.DomainName,
			RequiredSkills:   cand.RequiredSkills,
			MatchedSkills:    cand.MatchedSkills,
			SkillGap:         cand.SkillGap,
			SkillProficiency: proficiency,
			Market: dto.MarketSignalResponse{
				GrowthRate:  cand.Market.GrowthRate,
				DemandScore: cand.Market.DemandScore,
				TrendScore:  cand.Market.TrendScore,
			},
			SkillMatchRate:    cand.SkillMatchRate,
			OpportunityScore:  cand.OpportunityScore,
			FeasibilityScore:  cand.FeasibilityScore,
			TransferableTotal: len(cand.Transferable),
			RecommendedTeam:   members,
			Reasoning:         cand.Reasoning,
		})
	}
	return out
}
