package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/NecoOcean/sky-take-out/entity"
)

type EmployeeRepository struct{ DB *gorm.DB }

func NewEmployeeRepository(db *gorm.DB) *EmployeeRepository { return &EmployeeRepository{DB: db} }

func (r *EmployeeRepository) FindByID(ctx context.Context, id uint) (*entity.Employee, error) {
	var emp entity.Employee
	if err := r.DB.WithContext(ctx).First(&emp, id).Error; err != nil {
		return nil, err
	}
	return &emp, nil
}

func (r *EmployeeRepository) FindByUsername(ctx context.Context, username string) (*entity.Employee, error) {
	var emp entity.Employee
	if err := r.DB.WithContext(ctx).Where("username = ?", username).First(&emp).Error; err != nil {
		return nil, err
	}
	return &emp, nil
}

func (r *EmployeeRepository) Create(ctx context.Context, emp *entity.Employee) error {
	return r.DB.WithContext(ctx).Create(emp).Error
}

func (r *EmployeeRepository) UpdateStatus(ctx context.Context, id uint, status int, updatedBy uint) error {
	return r.DB.WithContext(ctx).Model(&entity.Employee{}).
		Where("id = ?", id).
		Updates(map[string]any{"status": status, "updated_by": updatedBy}).Error
}

func (r *EmployeeRepository) Page(ctx context.Context, name string, page, pageSize int) ([]entity.Employee, int64, error) {
	tx := r.DB.WithContext(ctx).Model(&entity.Employee{})
	if name != "" {
		tx = tx.Where("name LIKE ?", "%"+name+"%")
	}
	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var emps []entity.Employee
	err := tx.Order("created_at desc").
		Offset((page - 1) * pageSize).Limit(pageSize).
		Find(&emps).Error
	return emps, total, err
}
