package repository

import (
	"context"

	"livrocaixa/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ContaRepository persists cliente/fornecedor profiles. Deleting a conta is
// a plain row delete — its movimentos are never touched.
type ContaRepository interface {
	List(ctx context.Context, tipo string) ([]model.Conta, error)
	FindByID(ctx context.Context, tipo string, id uuid.UUID) (*model.Conta, error)
	Create(ctx context.Context, c *model.Conta) error
	Update(ctx context.Context, c *model.Conta) error
	Delete(ctx context.Context, tipo string, id uuid.UUID) (bool, error)
}

type contaRepo struct{ db *gorm.DB }

func NewContaRepository(db *gorm.DB) ContaRepository { return &contaRepo{db: db} }

func (r *contaRepo) List(ctx context.Context, tipo string) ([]model.Conta, error) {
	var contas []model.Conta
	err := r.db.WithContext(ctx).
		Where("tipo = ?", tipo).
		Order("nome ASC").
		Find(&contas).Error
	return contas, err
}

func (r *contaRepo) FindByID(ctx context.Context, tipo string, id uuid.UUID) (*model.Conta, error) {
	var c model.Conta
	err := r.db.WithContext(ctx).
		Where("tipo = ?", tipo).
		First(&c, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *contaRepo) Create(ctx context.Context, c *model.Conta) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *contaRepo) Update(ctx context.Context, c *model.Conta) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *contaRepo) Delete(ctx context.Context, tipo string, id uuid.UUID) (bool, error) {
	res := r.db.WithContext(ctx).
		Where("tipo = ?", tipo).
		Delete(&model.Conta{}, "id = ?", id)
	return res.RowsAffected > 0, res.Error
}
