package storage

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"prorab-finance/internal/models"
)

// ReferenceStore — справочники категорий и способов оплаты. Движок отчётов
// оперирует только id; имена подтягиваются отсюда на уровне выдачи.
type ReferenceStore struct {
	db *gorm.DB
}

func NewReferenceStore(db *gorm.DB) *ReferenceStore {
	return &ReferenceStore{db: db}
}

func (s *ReferenceStore) CreateCategory(userID uint, name string) (*models.Category, error) {
	cat := models.Category{
		ID:     uuid.NewString(),
		UserID: userID,
		Name:   name,
	}
	if err := s.db.Create(&cat).Error; err != nil {
		return nil, fmt.Errorf("create category: %w", err)
	}
	return &cat, nil
}

func (s *ReferenceStore) Categories(userID uint) ([]models.Category, error) {
	var cats []models.Category
	if err := s.db.Where("user_id = ?", userID).Order("name asc").Find(&cats).Error; err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return cats, nil
}

func (s *ReferenceStore) DeleteCategory(userID uint, id string) error {
	res := s.db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.Category{})
	if res.Error != nil {
		return fmt.Errorf("delete category: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *ReferenceStore) CreatePaymentMethod(userID uint, name string) (*models.PaymentMethod, error) {
	m := models.PaymentMethod{
		ID:     uuid.NewString(),
		UserID: userID,
		Name:   name,
	}
	if err := s.db.Create(&m).Error; err != nil {
		return nil, fmt.Errorf("create payment method: %w", err)
	}
	return &m, nil
}

func (s *ReferenceStore) PaymentMethods(userID uint) ([]models.PaymentMethod, error) {
	var methods []models.PaymentMethod
	if err := s.db.Where("user_id = ?", userID).Order("name asc").Find(&methods).Error; err != nil {
		return nil, fmt.Errorf("list payment methods: %w", err)
	}
	return methods, nil
}

func (s *ReferenceStore) DeletePaymentMethod(userID uint, id string) error {
	res := s.db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.PaymentMethod{})
	if res.Error != nil {
		return fmt.Errorf("delete payment method: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// CategoryNames — отображение id → имя для выдачи отчёта.
func (s *ReferenceStore) CategoryNames(userID uint) (map[string]string, error) {
	cats, err := s.Categories(userID)
	if err != nil {
		return nil, err
	}
	names := map[string]string{}
	for _, c := range cats {
		names[c.ID] = c.Name
	}
	return names, nil
}

func (s *ReferenceStore) PaymentMethodNames(userID uint) (map[string]string, error) {
	methods, err := s.PaymentMethods(userID)
	if err != nil {
		return nil, err
	}
	names := map[string]string{}
	for _, m := range methods {
		names[m.ID] = m.Name
	}
	return names, nil
}
