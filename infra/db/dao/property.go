package dao

import (
	"fmt"
	"time"

	"github.com/jinzhu/gorm"
	"github.com/radhian/reservation-reconciliation/consts"
	"github.com/radhian/reservation-reconciliation/infra/db/model"
	"github.com/shopspring/decimal"
)

func (d *dao) GetPropertiesByAccount(accountID string) ([]model.Property, error) {
	var properties []model.Property
	if err := d.db.Where("account_id = ?", accountID).Order("id ASC").Find(&properties).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch properties: %w", err)
	}
	return properties, nil
}

func (d *dao) GetBillingConfigsByAccount(accountID string) ([]model.BillingConfig, error) {
	var configs []model.BillingConfig
	if err := d.db.Where("account_id = ?", accountID).Find(&configs).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch billing configs: %w", err)
	}
	return configs, nil
}

// AddPropertyAlias appends alias to the platform's alias list unless it is already there.
func (d *dao) AddPropertyAlias(accountID string, propertyID int64, platform, alias string) error {
	col := model.AliasColumn(platform)
	err := d.db.Model(&model.Property{}).
		Where("id = ? AND account_id = ?", propertyID, accountID).
		Where("NOT (? = ANY(COALESCE("+col+", '{}')))", alias).
		UpdateColumns(map[string]interface{}{
			col:           gorm.Expr("array_append(COALESCE("+col+", '{}'), ?)", alias),
			"update_time": time.Now().Unix(),
			"update_by":   consts.SystemUser,
		}).Error
	if err != nil {
		return fmt.Errorf("failed to add alias to property %d: %w", propertyID, err)
	}
	return nil
}

// ProvisionProperty creates a property named after an unmatched listing together with a
// zero commission billing config where the manager keeps the cleaning fee.
func (d *dao) ProvisionProperty(accountID, name, platform string) (model.Property, model.BillingConfig, error) {
	now := time.Now().Unix()
	property := model.Property{
		AccountID:  accountID,
		Name:       name,
		CreateTime: now,
		CreateBy:   consts.SystemUser,
		UpdateTime: now,
		UpdateBy:   consts.SystemUser,
	}
	property.AddAlias(platform, name)

	billing := model.BillingConfig{
		AccountID:            accountID,
		CommissionType:       consts.CommissionPercentage,
		CommissionValue:      decimal.Zero,
		CleaningFeeRecipient: consts.CleaningToManager,
		CleaningFeeSplitPct:  decimal.Zero,
		CreateTime:           now,
		CreateBy:             consts.SystemUser,
		UpdateTime:           now,
		UpdateBy:             consts.SystemUser,
	}

	err := d.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&property).Error; err != nil {
			return err
		}
		billing.PropertyID = property.ID
		return tx.Create(&billing).Error
	})
	if err != nil {
		return model.Property{}, model.BillingConfig{}, fmt.Errorf("failed to provision property %q: %w", name, err)
	}
	return property, billing, nil
}
