package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/Skotchmaster/mock_ecom/internal/models"
)

func (r *GormRepo) AddLine(ctx context.Context, item *models.CartItem) error {
	return r.DB.WithContext(ctx).Create(item).Error
}

func (r *GormRepo) GetCart(ctx context.Context, userID uint) ([]models.CartLine, error) {
	lines := make([]models.CartLine, 0)
	err := r.DB.WithContext(ctx).
		Table("cart_items AS c").
		Select("c.id AS id, c.product_id AS product_id, p.name AS name, p.price AS price, c.quantity AS quantity").
		Joins("JOIN products AS p ON p.id = c.product_id").
		Where("c.user_id = ?", userID).
		Order("c.id ASC").
		Scan(&lines).Error
	if err != nil {
		return nil, err
	}
	return lines, nil
}

func (r *GormRepo) UpdateQuantity(ctx context.Context, userID, lineID uint, qty int) error {
	res := r.DB.WithContext(ctx).Model(&models.CartItem{}).
		Where("id = ? AND user_id = ?", lineID, userID).
		Update("quantity", qty)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *GormRepo) DeleteLine(ctx context.Context, userID, lineID uint) error {
	res := r.DB.WithContext(ctx).Where("id = ? AND user_id = ?", lineID, userID).Delete(&models.CartItem{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *GormRepo) ClearAll(ctx context.Context) error {
	return r.DB.WithContext(ctx).Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.CartItem{}).Error
}

func (r *GormRepo) ClearUser(ctx context.Context, userID uint) error {
	return r.DB.WithContext(ctx).Where("user_id = ?", userID).Delete(&models.CartItem{}).Error
}
