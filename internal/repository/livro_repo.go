package repository

import (
	"context"
	"errors"

	"livrocaixa/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LivroRepository persists the global ledgers (caixa and banco). Every query
// is scoped by the livro discriminator; ordering is always
// (data DESC, created_at DESC) so the first row is the head line.
type LivroRepository interface {
	List(ctx context.Context, livro string) ([]model.LancamentoLivro, error)
	// FindHead returns the most recent line of the ledger, or nil when empty.
	FindHead(ctx context.Context, livro string) (*model.LancamentoLivro, error)
	// FindHeadExcluding is FindHead with one line left out of consideration —
	// used when re-computing the saldo of the line being edited.
	FindHeadExcluding(ctx context.Context, livro string, id uuid.UUID) (*model.LancamentoLivro, error)
	FindByID(ctx context.Context, livro string, id uuid.UUID) (*model.LancamentoLivro, error)
	Create(ctx context.Context, l *model.LancamentoLivro) error
	Update(ctx context.Context, l *model.LancamentoLivro) error
	Delete(ctx context.Context, livro string, id uuid.UUID) (bool, error)
}

type livroRepo struct{ db *gorm.DB }

func NewLivroRepository(db *gorm.DB) LivroRepository { return &livroRepo{db: db} }

const ordemLivro = "data DESC, created_at DESC"

func (r *livroRepo) List(ctx context.Context, livro string) ([]model.LancamentoLivro, error) {
	var lancs []model.LancamentoLivro
	err := r.db.WithContext(ctx).
		Where("livro = ?", livro).
		Order(ordemLivro).
		Find(&lancs).Error
	return lancs, err
}

func (r *livroRepo) FindHead(ctx context.Context, livro string) (*model.LancamentoLivro, error) {
	var l model.LancamentoLivro
	err := r.db.WithContext(ctx).
		Where("livro = ?", livro).
		Order(ordemLivro).
		First(&l).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *livroRepo) FindHeadExcluding(ctx context.Context, livro string, id uuid.UUID) (*model.LancamentoLivro, error) {
	var l model.LancamentoLivro
	err := r.db.WithContext(ctx).
		Where("livro = ? AND id <> ?", livro, id).
		Order(ordemLivro).
		First(&l).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *livroRepo) FindByID(ctx context.Context, livro string, id uuid.UUID) (*model.LancamentoLivro, error) {
	var l model.LancamentoLivro
	err := r.db.WithContext(ctx).
		Where("livro = ?", livro).
		First(&l, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *livroRepo) Create(ctx context.Context, l *model.LancamentoLivro) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *livroRepo) Update(ctx context.Context, l *model.LancamentoLivro) error {
	return r.db.WithContext(ctx).Save(l).Error
}

func (r *livroRepo) Delete(ctx context.Context, livro string, id uuid.UUID) (bool, error) {
	res := r.db.WithContext(ctx).
		Where("livro = ?", livro).
		Delete(&model.LancamentoLivro{}, "id = ?", id)
	return res.RowsAffected > 0, res.Error
}
