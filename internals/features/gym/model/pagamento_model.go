package model

import (
	"time"

	"gorm.io/datatypes"
)

type PagamentoStatus string

const (
	PagamentoStatusPendente PagamentoStatus = "pendente"
	PagamentoStatusPago     PagamentoStatus = "pago"
)

func (s PagamentoStatus) Valid() bool {
	return s == PagamentoStatusPendente || s == PagamentoStatusPago
}

type Pagamento struct {
	PagamentoID uint `gorm:"column:pagamento_id;primaryKey;autoIncrement" json:"id"`

	PagamentoMatriculaID uint `gorm:"column:pagamento_matricula_id;not null;index:ix_pagamento_matricula" json:"matriculaId"`

	// no scale on purpose: installments are price / n without rounding
	PagamentoValor          float64         `gorm:"column:pagamento_valor;type:numeric;not null" json:"valor"`
	PagamentoDataVencimento datatypes.Date  `gorm:"column:pagamento_data_vencimento;not null;index:ix_pagamento_vencimento" json:"dataVencimento"`
	PagamentoStatus         PagamentoStatus `gorm:"column:pagamento_status;type:varchar(10);not null;default:'pendente';index:ix_pagamento_status" json:"statusPagamento"`
	PagamentoDataPagamento  *time.Time      `gorm:"column:pagamento_data_pagamento" json:"dataPagamento,omitempty"`

	PagamentoCreatedAt time.Time `gorm:"column:pagamento_created_at;not null;autoCreateTime" json:"createdAt"`
	PagamentoUpdatedAt time.Time `gorm:"column:pagamento_updated_at;not null;autoUpdateTime" json:"updatedAt"`

	Matricula *Matricula `gorm:"foreignKey:PagamentoMatriculaID;references:MatriculaID" json:"matricula,omitempty"`
}

func (Pagamento) TableName() string {
	return "pagamentos"
}
