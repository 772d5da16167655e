package model

import (
	"time"

	"gorm.io/datatypes"
)

type AlunoStatus string

const (
	AlunoStatusAtivo   AlunoStatus = "ativo"
	AlunoStatusInativo AlunoStatus = "inativo"
)

// DefaultPlanoLabel is used when a student is registered without a plan label.
const DefaultPlanoLabel = "Mensal"

func (s AlunoStatus) Valid() bool {
	return s == AlunoStatusAtivo || s == AlunoStatusInativo
}

type Aluno struct {
	AlunoID uint `gorm:"column:aluno_id;primaryKey;autoIncrement" json:"id"`

	AlunoNome           string         `gorm:"column:aluno_nome;type:varchar(150);not null;index:ix_aluno_nome" json:"nome"`
	AlunoCPF            string         `gorm:"column:aluno_cpf;type:char(11);not null;uniqueIndex:uq_aluno_cpf" json:"cpf"`
	AlunoEmail          string         `gorm:"column:aluno_email;type:varchar(150);not null;uniqueIndex:uq_aluno_email" json:"email"`
	AlunoDataNascimento datatypes.Date `gorm:"column:aluno_data_nascimento;not null" json:"dataNascimento"`
	AlunoStatus         AlunoStatus    `gorm:"column:aluno_status;type:varchar(10);not null;default:'ativo';index:ix_aluno_status" json:"status"`
	AlunoPlano          string         `gorm:"column:aluno_plano;type:varchar(100);not null;default:'Mensal'" json:"plano"`

	AlunoCreatedAt time.Time `gorm:"column:aluno_created_at;not null;autoCreateTime" json:"createdAt"`
	AlunoUpdatedAt time.Time `gorm:"column:aluno_updated_at;not null;autoUpdateTime" json:"updatedAt"`

	Matriculas []Matricula `gorm:"foreignKey:MatriculaAlunoID;references:AlunoID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"matriculas,omitempty"`
}

func (Aluno) TableName() string {
	return "alunos"
}
