package model

import (
	"time"

	"gorm.io/datatypes"
)

// Matricula is immutable once created; its pagamentos are generated with it.
type Matricula struct {
	MatriculaID uint `gorm:"column:matricula_id;primaryKey;autoIncrement" json:"id"`

	MatriculaAlunoID uint `gorm:"column:matricula_aluno_id;not null;index:ix_matricula_aluno" json:"alunoId"`
	MatriculaPlanoID uint `gorm:"column:matricula_plano_id;not null;index:ix_matricula_plano" json:"planoId"`

	MatriculaDataInicio datatypes.Date `gorm:"column:matricula_data_inicio;not null" json:"dataInicio"`
	MatriculaDataFim    datatypes.Date `gorm:"column:matricula_data_fim;not null" json:"dataFim"`

	MatriculaCreatedAt time.Time `gorm:"column:matricula_created_at;not null;autoCreateTime" json:"createdAt"`

	Aluno      *Aluno      `gorm:"foreignKey:MatriculaAlunoID;references:AlunoID" json:"aluno,omitempty"`
	Plano      *Plano      `gorm:"foreignKey:MatriculaPlanoID;references:PlanoID" json:"plano,omitempty"`
	Pagamentos []Pagamento `gorm:"foreignKey:PagamentoMatriculaID;references:MatriculaID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"pagamentos,omitempty"`
}

func (Matricula) TableName() string {
	return "matriculas"
}
