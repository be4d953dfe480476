package googleads

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"time"

	"ideaproof/internal/core/domain"
)

// searchRow holds the fields selected by the queries below.
type searchRow struct {
	Customer struct {
		ID              flexInt `json:"id"`
		DescriptiveName string  `json:"descriptiveName"`
		CurrencyCode    string  `json:"currencyCode"`
	} `json:"customer"`
	Campaign struct {
		ResourceName string  `json:"resourceName"`
		ID           flexInt `json:"id"`
		Name         string  `json:"name"`
		Status       string  `json:"status"`
	} `json:"campaign"`
	CampaignBudget struct {
		AmountMicros flexInt `json:"amountMicros"`
	} `json:"campaignBudget"`
	Metrics struct {
		Impressions flexInt `json:"impressions"`
		Clicks      flexInt `json:"clicks"`
		CTR         float64 `json:"ctr"`
		CostMicros  flexInt `json:"costMicros"`
		Conversions float64 `json:"conversions"`
	} `json:"metrics"`
	Segments struct {
		Date string `json:"date"`
	} `json:"segments"`
}

const campaignFields = `SELECT campaign.resource_name, campaign.id, campaign.name, campaign.status,
  campaign_budget.amount_micros,
  metrics.impressions, metrics.clicks, metrics.ctr, metrics.cost_micros, metrics.conversions
FROM campaign`

// ListCampaigns returns every campaign that is not removed with its
// lifetime metrics. The snapshot is stamped with the fetch time.
func (b *Backend) ListCampaigns(ctx context.Context, creds domain.Credentials, accountID string) ([]domain.Campaign, error) {
	rows, err := b.search(ctx, creds, accountID, campaignFields+" WHERE campaign.status != 'REMOVED' ORDER BY campaign.id")
	if err != nil {
		return nil, err
	}
	asOf := time.Now().UTC()
	out := make([]domain.Campaign, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.campaign(accountID, asOf))
	}
	return out, nil
}

func (b *Backend) GetCampaign(ctx context.Context, creds domain.Credentials, accountID, campaignID string) (domain.Campaign, error) {
	if !numeric(campaignID) {
		return domain.Campaign{}, domain.NewValidationError("googleads.get_campaign", "campaign id must be numeric")
	}
	rows, err := b.search(ctx, creds, accountID, campaignFields+" WHERE campaign.id = "+campaignID)
	if err != nil {
		return domain.Campaign{}, err
	}
	if len(rows) == 0 {
		return domain.Campaign{}, fmt.Errorf("campaign %s: %w", campaignID, errNotFound)
	}
	return rows[0].campaign(accountID, time.Now().UTC()), nil
}

// GetInsights queries the campaign segmented by day. The range token is
// passed to DURING unchanged.
func (b *Backend) GetInsights(ctx context.Context, creds domain.Credentials, accountID, campaignID string, r domain.DateRange) (domain.Insights, error) {
	if !numeric(campaignID) {
		return domain.Insights{}, domain.NewValidationError("googleads.get_insights", "campaign id must be numeric")
	}
	query := fmt.Sprintf(`SELECT segments.date, metrics.impressions, metrics.clicks, metrics.cost_micros, metrics.conversions
FROM campaign WHERE campaign.id = %s AND segments.date DURING %s ORDER BY segments.date`, campaignID, r)
	rows, err := b.search(ctx, creds, accountID, query)
	if err != nil {
		return domain.Insights{}, err
	}

	ins := domain.Insights{CampaignID: campaignID, Range: r, Daily: make([]domain.DailyMetrics, 0, len(rows))}
	for _, row := range rows {
		d := domain.DailyMetrics{
			Date:           row.Segments.Date,
			Impressions:    int64(row.Metrics.Impressions),
			Clicks:         int64(row.Metrics.Clicks),
			CostMinorUnits: int64(row.Metrics.CostMicros) / microsPerMinor,
			Conversions:    row.Metrics.Conversions,
		}
		ins.Daily = append(ins.Daily, d)
		ins.Summary.Impressions += d.Impressions
		ins.Summary.Clicks += d.Clicks
		ins.Summary.CostMinorUnits += d.CostMinorUnits
		ins.Summary.Conversions += d.Conversions
	}
	sort.SliceStable(ins.Daily, func(i, j int) bool { return ins.Daily[i].Date < ins.Daily[j].Date })
	if ins.Summary.Impressions > 0 {
		ins.Summary.CTR = float64(ins.Summary.Clicks) / float64(ins.Summary.Impressions)
	}
	ins.Summary.AsOf = time.Now().UTC()
	return ins, nil
}

func (r searchRow) campaign(accountID string, asOf time.Time) domain.Campaign {
	id := strconv.FormatInt(int64(r.Campaign.ID), 10)
	resource := r.Campaign.ResourceName
	if resource == "" {
		resource = fmt.Sprintf("customers/%s/campaigns/%s", accountID, id)
	}
	status, ok := domain.ParseCampaignStatus(r.Campaign.Status)
	if !ok {
		status = domain.StatusPaused
	}
	return domain.Campaign{
		ID:                    id,
		AccountID:             accountID,
		ResourceName:          resource,
		Name:                  r.Campaign.Name,
		Status:                status,
		DailyBudgetMinorUnits: int64(r.CampaignBudget.AmountMicros) / microsPerMinor,
		Metrics: domain.MetricsSnapshot{
			Impressions:    int64(r.Metrics.Impressions),
			Clicks:         int64(r.Metrics.Clicks),
			CTR:            r.Metrics.CTR,
			CostMinorUnits: int64(r.Metrics.CostMicros) / microsPerMinor,
			Conversions:    r.Metrics.Conversions,
			AsOf:           asOf,
		},
	}
}

func numeric(id string) bool {
	if id == "" {
		return false
	}
	_, err := strconv.ParseUint(id, 10, 64)
	return err == nil
}
