package mirroring

import (
	"context"

	"github.com/vfg2006/ads-mirror-api/internal/domain"
)

// Snapshot lê do espelho o recorte de status e orçamento observado pelo polling
func (s *Service) Snapshot(ctx context.Context, userID int) (domain.Snapshot, error) {
	accounts, err := s.repos.Accounts.ListAccountsByUser(ctx, userID)
	if err != nil {
		return nil, newDatabaseError("", err)
	}

	accountIDs := make([]string, 0, len(accounts))
	for _, a := range accounts {
		accountIDs = append(accountIDs, a.ID)
	}

	snapshot := domain.Snapshot{}
	if len(accountIDs) == 0 {
		return snapshot, nil
	}

	campaigns, err := s.repos.Campaigns.ListCampaignsByAccounts(ctx, accountIDs)
	if err != nil {
		return nil, newDatabaseError("", err)
	}
	for _, c := range campaigns {
		snapshot.Add(domain.EntityState{
			Kind:            domain.EntityCampaign,
			ID:              c.ID,
			AccountID:       c.AccountID,
			Status:          c.Status,
			EffectiveStatus: c.EffectiveStatus,
			Budget:          c.Budget(),
		})
	}

	adSets, err := s.repos.AdSets.ListAdSetsByAccounts(ctx, accountIDs)
	if err != nil {
		return nil, newDatabaseError("", err)
	}
	for _, a := range adSets {
		snapshot.Add(domain.EntityState{
			Kind:            domain.EntityAdSet,
			ID:              a.ID,
			AccountID:       a.AccountID,
			Status:          a.Status,
			EffectiveStatus: a.EffectiveStatus,
			Budget:          a.Budget(),
		})
	}

	ads, err := s.repos.Ads.ListAdsByAccounts(ctx, accountIDs)
	if err != nil {
		return nil, newDatabaseError("", err)
	}
	for _, ad := range ads {
		snapshot.Add(domain.EntityState{
			Kind:            domain.EntityAd,
			ID:              ad.ID,
			AccountID:       ad.AccountID,
			Status:          ad.Status,
			EffectiveStatus: ad.EffectiveStatus,
		})
	}

	return snapshot, nil
}
