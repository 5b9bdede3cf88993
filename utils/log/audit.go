package log

import (
	"encoding/json"

	"gorm.io/gorm"

	"mart-api/models"
	"mart-api/utils/common"
)

func CreateOrderAuditLog(
	db *gorm.DB,
	action string,
	entityID uint,
	oldOrder, newOrder *models.Order,
	userID *uint,
	ipAddress string,
	description string,
) error {
	auditLog := models.AuditLog{
		EntityType:  "order",
		EntityID:    entityID,
		Action:      action,
		UserID:      userID,
		OldValue:    toJSONString(oldOrder),
		NewValue:    toJSONString(newOrder),
		Changes:     calculateOrderChanges(action, oldOrder, newOrder),
		IPAddress:   &ipAddress,
		Description: description,
	}

	return db.Create(&auditLog).Error
}

func calculateOrderChanges(action string, oldOrder, newOrder *models.Order) *string {
	if action != "update" || oldOrder == nil || newOrder == nil {
		return nil
	}

	changes := make(map[string]interface{})

	if oldOrder.Status != newOrder.Status {
		changes["status"] = map[string]string{
			"old": oldOrder.Status,
			"new": newOrder.Status,
		}
	}

	if common.GetStringValue(oldOrder.RejectReason) != common.GetStringValue(newOrder.RejectReason) {
		changes["reject_reason"] = map[string]string{
			"old": common.GetStringValue(oldOrder.RejectReason),
			"new": common.GetStringValue(newOrder.RejectReason),
		}
	}

	if len(changes) == 0 {
		return nil
	}

	return toJSONString(changes)
}

func CreateProductAuditLog(
	db *gorm.DB,
	action string,
	entityID uint,
	oldProduct, newProduct *models.Product,
	userID *uint,
	ipAddress string,
	description string,
) error {
	auditLog := models.AuditLog{
		EntityType:  "product",
		EntityID:    entityID,
		Action:      action,
		UserID:      userID,
		OldValue:    toJSONString(oldProduct),
		NewValue:    toJSONString(newProduct),
		Changes:     calculateProductChanges(action, oldProduct, newProduct),
		IPAddress:   &ipAddress,
		Description: description,
	}

	return db.Create(&auditLog).Error
}

func calculateProductChanges(action string, oldProduct, newProduct *models.Product) *string {
	if action != "update" || oldProduct == nil || newProduct == nil {
		return nil
	}

	changes := make(map[string]interface{})

	if oldProduct.Name != newProduct.Name {
		changes["name"] = map[string]string{"old": oldProduct.Name, "new": newProduct.Name}
	}

	if common.GetStringValue(oldProduct.Description) != common.GetStringValue(newProduct.Description) {
		changes["description"] = map[string]string{
			"old": common.GetStringValue(oldProduct.Description),
			"new": common.GetStringValue(newProduct.Description),
		}
	}

	if oldProduct.Stock != newProduct.Stock {
		changes["stock"] = map[string]int{"old": oldProduct.Stock, "new": newProduct.Stock}
	}

	if oldProduct.BuyPrice != newProduct.BuyPrice {
		changes["buy_price"] = map[string]float64{"old": oldProduct.BuyPrice, "new": newProduct.BuyPrice}
	}

	if oldProduct.Price != newProduct.Price {
		changes["price"] = map[string]float64{"old": oldProduct.Price, "new": newProduct.Price}
	}

	if common.GetStringValue(oldProduct.ImageURL) != common.GetStringValue(newProduct.ImageURL) {
		changes["image_url"] = map[string]string{
			"old": common.GetStringValue(oldProduct.ImageURL),
			"new": common.GetStringValue(newProduct.ImageURL),
		}
	}

	if len(changes) == 0 {
		return nil
	}

	return toJSONString(changes)
}

func toJSONString(v interface{}) *string {
	if v == nil {
		return nil
	}
	bytes, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	str := string(bytes)
	return &str
}
