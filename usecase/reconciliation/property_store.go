package reconciliation

import (
	"context"
	"fmt"

	"github.com/radhian/reservation-reconciliation/infra/db/dao"
	"github.com/radhian/reservation-reconciliation/infra/db/model"
	"github.com/radhian/reservation-reconciliation/resolver"
	"github.com/radhian/reservation-reconciliation/split"
)

// propertyStore lets the resolver write what it learns through the DAO.
type propertyStore struct {
	dao dao.DaoMethod
}

func (s *propertyStore) AddAlias(_ context.Context, accountID string, propertyID int64, platform, alias string) error {
	return s.dao.AddPropertyAlias(accountID, propertyID, platform, alias)
}

func (s *propertyStore) ProvisionProperty(_ context.Context, accountID, name, platform string) (resolver.PropertyEntry, error) {
	property, billing, err := s.dao.ProvisionProperty(accountID, name, platform)
	if err != nil {
		return resolver.PropertyEntry{}, err
	}
	return propertyEntry(property, &billing), nil
}

// loadCatalog builds the account's catalog from its properties and billing configs.
func (u *reconciliationUsecase) loadCatalog(accountID string) (resolver.Catalog, error) {
	properties, err := u.dao.GetPropertiesByAccount(accountID)
	if err != nil {
		return resolver.Catalog{}, fmt.Errorf("failed to load properties: %w", err)
	}
	configs, err := u.dao.GetBillingConfigsByAccount(accountID)
	if err != nil {
		return resolver.Catalog{}, fmt.Errorf("failed to load billing configs: %w", err)
	}

	byProperty := make(map[int64]*model.BillingConfig, len(configs))
	for i := range configs {
		byProperty[configs[i].PropertyID] = &configs[i]
	}

	entries := make([]resolver.PropertyEntry, 0, len(properties))
	for _, p := range properties {
		entries = append(entries, propertyEntry(p, byProperty[p.ID]))
	}
	return resolver.NewCatalog(accountID, entries), nil
}

func propertyEntry(p model.Property, billing *model.BillingConfig) resolver.PropertyEntry {
	entry := resolver.PropertyEntry{
		PropertyID: p.ID,
		Name:       p.Name,
		Aliases:    p.AliasesByPlatform(),
	}
	if billing != nil {
		entry.BillingConfigID = billing.ID
		entry.Billing = split.Config{
			CommissionType:       billing.CommissionType,
			CommissionValue:      billing.CommissionValue,
			CleaningFeeRecipient: billing.CleaningFeeRecipient,
			CleaningFeeSplitPct:  billing.CleaningFeeSplitPct,
		}
	}
	return entry
}
