package service

import "codetrack_backend/internal/model"

// InsightsService serves static, hand-written insight content. None of this
// is computed from user data; it is intentionally kept apart from the
// analytics aggregation path so the derived report stays purely derived.
type InsightsService struct{}

func NewInsightsService() *InsightsService {
	return &InsightsService{}
}

var staticInsights = model.InsightsReport{
	BestHours: []model.ProductivitySlot{
		{Label: "06:00-09:00", Productivity: 72},
		{Label: "09:00-12:00", Productivity: 85},
		{Label: "12:00-15:00", Productivity: 61},
		{Label: "15:00-18:00", Productivity: 68},
		{Label: "18:00-21:00", Productivity: 80},
		{Label: "21:00-00:00", Productivity: 55},
	},
	ProductivityPatterns: []model.ProductivitySlot{
		{Label: "Monday", Productivity: 70},
		{Label: "Tuesday", Productivity: 78},
		{Label: "Wednesday", Productivity: 82},
		{Label: "Thursday", Productivity: 75},
		{Label: "Friday", Productivity: 66},
		{Label: "Saturday", Productivity: 88},
		{Label: "Sunday", Productivity: 84},
	},
	Cards: []model.InsightCard{
		{
			Title:       "Morning sessions pay off",
			Description: "Users with similar activity solve 23% more problems before noon.",
			Kind:        "insight",
		},
		{
			Title:       "Keep the streak alive",
			Description: "Solving at least one problem a day doubles long-term retention.",
			Kind:        "recommendation",
		},
		{
			Title:       "Dynamic programming is trending up",
			Description: "Your recent DP attempts suggest readiness for medium difficulty.",
			Kind:        "prediction",
		},
	},
}

// GetInsights returns the canned insight content.
func (s *InsightsService) GetInsights() model.InsightsReport {
	return staticInsights
}
