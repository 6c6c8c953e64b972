package repository

import (
	"context"
	"errors"

	"livrocaixa/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// TotalMensal is one month's aggregated entrada/saida for a conta family.
type TotalMensal struct {
	Mes     int
	Entrada decimal.Decimal
	Saida   decimal.Decimal
}

// TotaisConta are the full-history sums over one conta's movimentos.
type TotaisConta struct {
	Entrada decimal.Decimal
	Saida   decimal.Decimal
}

// MovimentoRepository persists the per-conta ledgers and answers the
// aggregation queries behind the resumo and dashboard endpoints.
type MovimentoRepository interface {
	List(ctx context.Context, contaID uuid.UUID) ([]model.MovimentoConta, error)
	FindHead(ctx context.Context, contaID uuid.UUID) (*model.MovimentoConta, error)
	FindHeadExcluding(ctx context.Context, contaID, id uuid.UUID) (*model.MovimentoConta, error)
	FindByID(ctx context.Context, contaID, id uuid.UUID) (*model.MovimentoConta, error)
	Create(ctx context.Context, m *model.MovimentoConta) error
	Update(ctx context.Context, m *model.MovimentoConta) error
	Delete(ctx context.Context, contaID, id uuid.UUID) (bool, error)
	// SumPorMes groups movimentos of every conta of the given tipo by mes,
	// restricted to one ano. Months with no movimentos are absent.
	SumPorMes(ctx context.Context, tipoConta string, ano int) ([]TotalMensal, error)
	// SumTotais returns full-history entrada/saida sums for one conta.
	SumTotais(ctx context.Context, contaID uuid.UUID) (TotaisConta, error)
}

type movimentoRepo struct{ db *gorm.DB }

func NewMovimentoRepository(db *gorm.DB) MovimentoRepository { return &movimentoRepo{db: db} }

func (r *movimentoRepo) List(ctx context.Context, contaID uuid.UUID) ([]model.MovimentoConta, error) {
	var movs []model.MovimentoConta
	err := r.db.WithContext(ctx).
		Where("conta_id = ?", contaID).
		Order(ordemLivro).
		Find(&movs).Error
	return movs, err
}

func (r *movimentoRepo) FindHead(ctx context.Context, contaID uuid.UUID) (*model.MovimentoConta, error) {
	var m model.MovimentoConta
	err := r.db.WithContext(ctx).
		Where("conta_id = ?", contaID).
		Order(ordemLivro).
		First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *movimentoRepo) FindHeadExcluding(ctx context.Context, contaID, id uuid.UUID) (*model.MovimentoConta, error) {
	var m model.MovimentoConta
	err := r.db.WithContext(ctx).
		Where("conta_id = ? AND id <> ?", contaID, id).
		Order(ordemLivro).
		First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *movimentoRepo) FindByID(ctx context.Context, contaID, id uuid.UUID) (*model.MovimentoConta, error) {
	var m model.MovimentoConta
	err := r.db.WithContext(ctx).
		Where("conta_id = ?", contaID).
		First(&m, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *movimentoRepo) Create(ctx context.Context, m *model.MovimentoConta) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *movimentoRepo) Update(ctx context.Context, m *model.MovimentoConta) error {
	return r.db.WithContext(ctx).Save(m).Error
}

func (r *movimentoRepo) Delete(ctx context.Context, contaID, id uuid.UUID) (bool, error) {
	res := r.db.WithContext(ctx).
		Where("conta_id = ?", contaID).
		Delete(&model.MovimentoConta{}, "id = ?", id)
	return res.RowsAffected > 0, res.Error
}

func (r *movimentoRepo) SumPorMes(ctx context.Context, tipoConta string, ano int) ([]TotalMensal, error) {
	var totais []TotalMensal
	err := r.db.WithContext(ctx).
		Table("movimentos_conta").
		Select("movimentos_conta.mes AS mes, SUM(movimentos_conta.entrada) AS entrada, SUM(movimentos_conta.saida) AS saida").
		Joins("JOIN contas ON contas.id = movimentos_conta.conta_id").
		Where("contas.tipo = ? AND movimentos_conta.ano = ?", tipoConta, ano).
		Group("movimentos_conta.mes").
		Order("mes ASC").
		Scan(&totais).Error
	return totais, err
}

func (r *movimentoRepo) SumTotais(ctx context.Context, contaID uuid.UUID) (TotaisConta, error) {
	var t TotaisConta
	err := r.db.WithContext(ctx).
		Table("movimentos_conta").
		Select("COALESCE(SUM(entrada), 0) AS entrada, COALESCE(SUM(saida), 0) AS saida").
		Where("conta_id = ?", contaID).
		Scan(&t).Error
	return t, err
}
