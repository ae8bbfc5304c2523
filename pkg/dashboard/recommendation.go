package dashboard

import (
	"sort"

	"go.uber.org/zap"
	"greenvolt.xyz/energy-dashboard-service/pkg/common"
	"greenvolt.xyz/energy-dashboard-service/pkg/models"
)

func (d *Dashboard) listRecommendations() ([]models.Recommendation, error) {
	var recommendations []models.Recommendation
	err := d.Db.Conn.
		Order("created_at asc").
		Find(&recommendations).Error
	return recommendations, err
}

// removeRecommendation is the shared terminal transition for accept
// and dismiss: the row leaves the active set and never comes back.
// A second call with the same id reports NotFoundError so the caller
// can surface UI/state desync instead of hiding it.
func (d *Dashboard) removeRecommendation(recommendationID, outcome string) error {
	logger := common.GetLoggerWith(
		common.LoggerNameDashCore,
		zap.String(common.LoggerFieldDashCategory, common.LoggerCategoryRecommendation),
	)

	result := d.Db.Conn.Delete(&models.Recommendation{}, "id = ?", recommendationID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return &NotFoundError{Kind: "recommendation", ID: recommendationID}
	}

	logger.Info("Removed recommendation",
		zap.String("recommendation_id", recommendationID),
		zap.String("outcome", outcome))

	return nil
}

func (d *Dashboard) acceptRecommendation(recommendationID string) error {
	return d.removeRecommendation(recommendationID, "accepted")
}

func (d *Dashboard) dismissRecommendation(recommendationID string) error {
	return d.removeRecommendation(recommendationID, "dismissed")
}

// RankRecommendations orders the active set for display: priority high
// to low, ties broken by descending estimated savings. The sort is
// stable so equal entries keep their ingestion order.
func RankRecommendations(recommendations []models.Recommendation) []models.Recommendation {
	ranked := make([]models.Recommendation, len(recommendations))
	copy(ranked, recommendations)

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Priority.Weight() != ranked[j].Priority.Weight() {
			return ranked[i].Priority.Weight() > ranked[j].Priority.Weight()
		}
		return ranked[i].EstimatedSavings > ranked[j].EstimatedSavings
	})

	return ranked
}

type IRecommendationImpl struct {
	dash *Dashboard
}

func (ir *IRecommendationImpl) ListRecommendations() ([]models.Recommendation, error) {
	return ir.dash.listRecommendations()
}

func (ir *IRecommendationImpl) AcceptRecommendation(recommendationID string) error {
	return ir.dash.acceptRecommendation(recommendationID)
}

func (ir *IRecommendationImpl) DismissRecommendation(recommendationID string) error {
	return ir.dash.dismissRecommendation(recommendationID)
}

func (d *Dashboard) GetIRecommendation() IRecommendation {
	return &IRecommendationImpl{dash: d}
}
