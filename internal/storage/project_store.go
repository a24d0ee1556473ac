package storage

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"prorab-finance/internal/models"
)

// ProjectPatch — изменяемые поля объекта; nil — поле не трогаем.
type ProjectPatch struct {
	Name          *string
	ContractPrice *float64
	Status        *models.ProjectStatus
}

type ProjectStore struct {
	db *gorm.DB
}

func NewProjectStore(db *gorm.DB) *ProjectStore {
	return &ProjectStore{db: db}
}

func (s *ProjectStore) Create(userID uint, name string, contractPrice float64) (*models.Project, error) {
	p := models.Project{
		UserID:        userID,
		Name:          name,
		ContractPrice: contractPrice,
		Status:        models.StatusOpen,
		Version:       1,
	}
	if err := s.db.Create(&p).Error; err != nil {
		return nil, fmt.Errorf("create project: %w", err)
	}
	return &p, nil
}

func (s *ProjectStore) Get(userID, id uint) (*models.Project, error) {
	var p models.Project
	err := s.db.Where("user_id = ?", userID).First(&p, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get project: %w", err)
	}
	return &p, nil
}

func (s *ProjectStore) List(userID uint) ([]models.Project, error) {
	var projects []models.Project
	if err := s.db.Where("user_id = ?", userID).Order("created_at desc").Find(&projects).Error; err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	return projects, nil
}

// UpdateWithVersion применяет patch одним условным UPDATE: строка меняется
// только если её текущая версия равна expectedVersion, версия при этом
// растёт на 1. Проверка и запись — одна атомарная операция, отдельного
// чтения между ними нет.
//
// Ноль затронутых строк — ErrConflict, в том числе когда строки уже нет:
// снимок у вызывающего в любом случае устарел.
func (s *ProjectStore) UpdateWithVersion(userID, id uint, expectedVersion int, patch ProjectPatch) (*models.Project, error) {
	updates := patch.toUpdates()
	updates["version"] = gorm.Expr("version + 1")

	res := s.db.Model(&models.Project{}).
		Where("id = ? AND user_id = ? AND version = ?", id, userID, expectedVersion).
		Updates(updates)
	if res.Error != nil {
		return nil, fmt.Errorf("update project: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, ErrConflict
	}

	return s.Get(userID, id)
}

// ForceUpdate перезаписывает без проверки версии — только после того, как
// пользователь явно выбрал "перезаписать" в диалоге конфликта. Версию всё
// равно увеличивает, чтобы другие открытые сессии поймали конфликт.
func (s *ProjectStore) ForceUpdate(userID, id uint, patch ProjectPatch) (*models.Project, error) {
	updates := patch.toUpdates()
	updates["version"] = gorm.Expr("version + 1")

	res := s.db.Model(&models.Project{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(updates)
	if res.Error != nil {
		return nil, fmt.Errorf("force update project: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}

	return s.Get(userID, id)
}

func (p ProjectPatch) toUpdates() map[string]interface{} {
	updates := map[string]interface{}{}
	if p.Name != nil {
		updates["name"] = *p.Name
	}
	if p.ContractPrice != nil {
		updates["contract_price"] = *p.ContractPrice
	}
	if p.Status != nil {
		updates["status"] = *p.Status
		if *p.Status == models.StatusClosed {
			updates["closed_at"] = time.Now()
		} else {
			updates["closed_at"] = nil
		}
	}
	return updates
}
