package model

import "time"

type Plano struct {
	PlanoID uint `gorm:"column:plano_id;primaryKey;autoIncrement" json:"id"`

	PlanoNome        string  `gorm:"column:plano_nome;type:varchar(100);not null;index:ix_plano_nome" json:"nome"`
	PlanoPreco       float64 `gorm:"column:plano_preco;type:numeric(10,2);not null;check:chk_plano_preco_positive,plano_preco > 0" json:"preco"`
	PlanoDuracaoDias int     `gorm:"column:plano_duracao_dias;not null;check:chk_plano_duracao_positive,plano_duracao_dias > 0" json:"duracaoDias"`

	PlanoCreatedAt time.Time `gorm:"column:plano_created_at;not null;autoCreateTime" json:"createdAt"`
	PlanoUpdatedAt time.Time `gorm:"column:plano_updated_at;not null;autoUpdateTime" json:"updatedAt"`

	Matriculas []Matricula `gorm:"foreignKey:MatriculaPlanoID;references:PlanoID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"matriculas,omitempty"`
}

func (Plano) TableName() string {
	return "planos"
}
