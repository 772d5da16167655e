package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"academia_backend/internals/configs"
	database "academia_backend/internals/databases"
	"academia_backend/internals/features/gym/model"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.OpenSQLite(filepath.Join(t.TempDir(), "test.db"), nil)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func setupTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	db := setupTestDB(t)
	cfg := &configs.Config{
		AppEnv:      "test",
		Timeout:     5 * time.Second,
		CORSOrigins: "*",
	}
	app := NewApp(cfg, Deps{
		DB:     db,
		Logger: configs.NewLogger(io.Discard, "json", slog.LevelError),
	})
	return app, db
}

// call sends a JSON request and decodes the JSON response into out (when non-nil).
func call(t *testing.T, app *fiber.App, method, path string, body any, out any) int {
	t.Helper()
	var r io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		r = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)
	if out != nil && len(raw) > 0 {
		if err := json.Unmarshal(raw, out); err != nil {
			t.Fatalf("%s %s: decode %s: %v", method, path, raw, err)
		}
	}
	return resp.StatusCode
}

type alunoBody struct {
	ID             uint      `json:"id"`
	Nome           string    `json:"nome"`
	CPF            string    `json:"cpf"`
	Email          string    `json:"email"`
	DataNascimento time.Time `json:"dataNascimento"`
	Status         string    `json:"status"`
	Plano          string    `json:"plano"`
}

type pagamentoBody struct {
	ID              uint      `json:"id"`
	MatriculaID     uint      `json:"matriculaId"`
	Valor           float64   `json:"valor"`
	DataVencimento  time.Time `json:"dataVencimento"`
	StatusPagamento string    `json:"statusPagamento"`
	DataPagamento   *string   `json:"dataPagamento"`
	Matricula       *struct {
		Aluno *struct {
			ID uint `json:"id"`
		} `json:"aluno"`
		Plano *struct {
			ID uint `json:"id"`
		} `json:"plano"`
	} `json:"matricula"`
}

type matriculaBody struct {
	ID         uint            `json:"id"`
	AlunoID    uint            `json:"alunoId"`
	PlanoID    uint            `json:"planoId"`
	DataInicio time.Time       `json:"dataInicio"`
	DataFim    time.Time       `json:"dataFim"`
	Pagamentos []pagamentoBody `json:"pagamentos"`
	Aluno      *alunoBody      `json:"aluno"`
	Plano      *struct {
		ID uint `json:"id"`
	} `json:"plano"`
}

type errorBody struct {
	Error   string              `json:"error"`
	Details map[string][]string `json:"details"`
}

func createAluno(t *testing.T, app *fiber.App, cpf, email string) alunoBody {
	t.Helper()
	var out alunoBody
	status := call(t, app, "POST", "/alunos", map[string]any{
		"nome":           "Aluno " + cpf,
		"cpf":            cpf,
		"email":          email,
		"dataNascimento": "1992-07-20",
	}, &out)
	if status != fiber.StatusCreated {
		t.Fatalf("create aluno: status %d", status)
	}
	return out
}

func createPlano(t *testing.T, app *fiber.App, nome string, preco float64, dias int) uint {
	t.Helper()
	var out struct {
		ID uint `json:"id"`
	}
	status := call(t, app, "POST", "/planos", map[string]any{
		"nome": nome, "preco": preco, "duracaoDias": dias,
	}, &out)
	if status != fiber.StatusCreated {
		t.Fatalf("create plano: status %d", status)
	}
	return out.ID
}

func enroll(t *testing.T, app *fiber.App, alunoID, planoID uint, inicio string) matriculaBody {
	t.Helper()
	var out matriculaBody
	status := call(t, app, "POST", "/matriculas", map[string]any{
		"alunoId": alunoID, "planoId": planoID, "dataInicio": inicio,
	}, &out)
	if status != fiber.StatusCreated {
		t.Fatalf("create matricula: status %d", status)
	}
	return out
}

func TestHealthAndUnknownRoute(t *testing.T) {
	app, _ := setupTestApp(t)

	var health map[string]any
	if status := call(t, app, "GET", "/health", nil, &health); status != fiber.StatusOK {
		t.Fatalf("/health status %d", status)
	}
	if health["status"] != "ok" || health["timestamp"] == nil {
		t.Errorf("/health body = %v", health)
	}
	if _, ok := health["uptime"].(float64); !ok {
		t.Errorf("/health uptime = %v, want seconds", health["uptime"])
	}

	var e errorBody
	if status := call(t, app, "GET", "/nope", nil, &e); status != fiber.StatusNotFound {
		t.Fatalf("unknown route status %d", status)
	}
	if e.Error != "route not found" {
		t.Errorf("unknown route error = %q", e.Error)
	}
}

func TestHealthDegradedWhenDatabaseIsDown(t *testing.T) {
	app, db := setupTestApp(t)
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	sqlDB.Close()

	var health map[string]any
	if status := call(t, app, "GET", "/health", nil, &health); status != fiber.StatusServiceUnavailable {
		t.Fatalf("/health status %d, want 503", status)
	}
	if health["status"] != "degraded" {
		t.Errorf("/health status field = %v", health["status"])
	}
}

func TestAlunoCPFNormalization(t *testing.T) {
	app, _ := setupTestApp(t)

	first := createAluno(t, app, "123.456.789-01", "ana@example.com")
	if first.CPF != "12345678901" {
		t.Errorf("stored cpf = %q, want digits only", first.CPF)
	}
	if first.Status != "ativo" || first.Plano != "Mensal" {
		t.Errorf("defaults not applied: status=%q plano=%q", first.Status, first.Plano)
	}

	// same CPF without punctuation is the same CPF
	var e errorBody
	status := call(t, app, "POST", "/alunos", map[string]any{
		"nome": "Outra Pessoa", "cpf": "12345678901", "email": "outra@example.com", "dataNascimento": "1990-01-01",
	}, &e)
	if status != fiber.StatusConflict {
		t.Fatalf("duplicate cpf: status %d, want 409", status)
	}
	if e.Error == "" {
		t.Error("conflict without message")
	}

	status = call(t, app, "POST", "/alunos", map[string]any{
		"nome": "Outra Pessoa", "cpf": "98765432100", "email": "ana@example.com", "dataNascimento": "1990-01-01",
	}, nil)
	if status != fiber.StatusConflict {
		t.Errorf("duplicate email: status %d, want 409", status)
	}
}

func TestAlunoValidation(t *testing.T) {
	app, _ := setupTestApp(t)

	var e errorBody
	status := call(t, app, "POST", "/alunos", map[string]any{
		"nome": "A", "cpf": "12-34", "email": "x", "dataNascimento": "not a date",
	}, &e)
	if status != fiber.StatusBadRequest {
		t.Fatalf("status %d, want 400", status)
	}
	if e.Error != "invalid data" {
		t.Errorf("error = %q", e.Error)
	}
	for _, field := range []string{"nome", "cpf", "email", "dataNascimento"} {
		if len(e.Details[field]) == 0 {
			t.Errorf("missing details for %s: %v", field, e.Details)
		}
	}

	if status := call(t, app, "GET", "/alunos/abc", nil, nil); status != fiber.StatusBadRequest {
		t.Errorf("non numeric id: status %d, want 400", status)
	}
	if status := call(t, app, "GET", "/alunos/42", nil, nil); status != fiber.StatusNotFound {
		t.Errorf("missing aluno: status %d, want 404", status)
	}
	if status := call(t, app, "GET", "/alunos?status=suspenso", nil, nil); status != fiber.StatusBadRequest {
		t.Errorf("bad status filter: status %d, want 400", status)
	}
}

func TestAlunoPartialUpdate(t *testing.T) {
	app, _ := setupTestApp(t)
	created := createAluno(t, app, "111.222.333-44", "bruno@example.com")

	var updated alunoBody
	path := fmt.Sprintf("/alunos/%d", created.ID)
	if status := call(t, app, "PUT", path, map[string]any{"status": "inativo"}, &updated); status != fiber.StatusOK {
		t.Fatalf("update status %d", status)
	}
	if updated.Status != "inativo" {
		t.Errorf("status = %q, want inativo", updated.Status)
	}
	if updated.Nome != created.Nome || updated.Email != created.Email || updated.CPF != created.CPF || !updated.DataNascimento.Equal(created.DataNascimento) {
		t.Errorf("omitted fields changed:\nbefore %+v\nafter  %+v", created, updated)
	}

	if status := call(t, app, "PUT", "/alunos/999", map[string]any{"nome": "Ninguem"}, nil); status != fiber.StatusNotFound {
		t.Errorf("update missing aluno: status %d, want 404", status)
	}

	other := createAluno(t, app, "55566677788", "carla@example.com")
	status := call(t, app, "PUT", fmt.Sprintf("/alunos/%d", other.ID), map[string]any{"email": "bruno@example.com"}, nil)
	if status != fiber.StatusConflict {
		t.Errorf("update to taken email: status %d, want 409", status)
	}
}

func TestAlunoListFilterAndOrder(t *testing.T) {
	app, _ := setupTestApp(t)
	for _, p := range []struct{ nome, cpf, status string }{
		{"Zeca", "00000000001", "ativo"},
		{"Amanda", "00000000002", "inativo"},
		{"Marcos", "00000000003", "ativo"},
	} {
		status := call(t, app, "POST", "/alunos", map[string]any{
			"nome": p.nome, "cpf": p.cpf, "email": p.cpf + "@example.com", "dataNascimento": "2000-01-01", "status": p.status,
		}, nil)
		if status != fiber.StatusCreated {
			t.Fatalf("create %s: %d", p.nome, status)
		}
	}

	var all []alunoBody
	call(t, app, "GET", "/alunos", nil, &all)
	if len(all) != 3 || all[0].Nome != "Amanda" || all[1].Nome != "Marcos" || all[2].Nome != "Zeca" {
		t.Errorf("list not ordered by nome: %+v", all)
	}

	var ativos []alunoBody
	call(t, app, "GET", "/alunos?status=ativo", nil, &ativos)
	if len(ativos) != 2 {
		t.Fatalf("ativos = %d, want 2", len(ativos))
	}
	for _, a := range ativos {
		if a.Status != "ativo" {
			t.Errorf("filter leaked %+v", a)
		}
	}
}

func TestEnrollmentBilling(t *testing.T) {
	app, _ := setupTestApp(t)
	aluno := createAluno(t, app, "11122233344", "dani@example.com")

	t.Run("90 days at 300", func(t *testing.T) {
		planoID := createPlano(t, app, "Trimestral", 300, 90)
		m := enroll(t, app, aluno.ID, planoID, "2024-01-10T18:30:00")

		start := time.Date(2024, time.January, 10, 0, 0, 0, 0, time.Local)
		if !m.DataInicio.Equal(start) {
			t.Errorf("dataInicio = %v, want %v", m.DataInicio, start)
		}
		if want := start.AddDate(0, 0, 90); !m.DataFim.Equal(want) {
			t.Errorf("dataFim = %v, want %v", m.DataFim, want)
		}
		if m.Aluno == nil || m.Aluno.ID != aluno.ID || m.Plano == nil || m.Plano.ID != planoID {
			t.Error("response should embed aluno and plano")
		}
		if len(m.Pagamentos) != 3 {
			t.Fatalf("pagamentos = %d, want 3", len(m.Pagamentos))
		}
		for i, p := range m.Pagamentos {
			if p.Valor != 100 || p.StatusPagamento != "pendente" {
				t.Errorf("pagamento %d = %+v", i, p)
			}
			if want := start.AddDate(0, 0, 30*(i+1)); !p.DataVencimento.Equal(want) {
				t.Errorf("pagamento %d due %v, want %v", i, p.DataVencimento, want)
			}
		}
	})

	t.Run("15 days at 150", func(t *testing.T) {
		planoID := createPlano(t, app, "Quinzenal", 150, 15)
		m := enroll(t, app, aluno.ID, planoID, "2024-03-01")
		if len(m.Pagamentos) != 1 {
			t.Fatalf("pagamentos = %d, want 1", len(m.Pagamentos))
		}
		want := time.Date(2024, time.March, 31, 0, 0, 0, 0, time.Local)
		if m.Pagamentos[0].Valor != 150 || !m.Pagamentos[0].DataVencimento.Equal(want) {
			t.Errorf("pagamento = %+v, want 150 due %v", m.Pagamentos[0], want)
		}
	})

	t.Run("missing references", func(t *testing.T) {
		planoID := createPlano(t, app, "Mensal", 100, 30)
		if status := call(t, app, "POST", "/matriculas", map[string]any{"alunoId": 999, "planoId": planoID, "dataInicio": "2024-01-01"}, nil); status != fiber.StatusNotFound {
			t.Errorf("missing aluno: status %d, want 404", status)
		}
		if status := call(t, app, "POST", "/matriculas", map[string]any{"alunoId": aluno.ID, "planoId": 999, "dataInicio": "2024-01-01"}, nil); status != fiber.StatusNotFound {
			t.Errorf("missing plano: status %d, want 404", status)
		}
		var e errorBody
		if status := call(t, app, "POST", "/matriculas", map[string]any{"alunoId": aluno.ID}, &e); status != fiber.StatusBadRequest {
			t.Errorf("incomplete body: status %d, want 400", status)
		}
		if len(e.Details["planoId"]) == 0 || len(e.Details["dataInicio"]) == 0 {
			t.Errorf("details = %v", e.Details)
		}
	})
}

func TestSettlePaymentTwice(t *testing.T) {
	app, _ := setupTestApp(t)
	aluno := createAluno(t, app, "11122233344", "eva@example.com")
	planoID := createPlano(t, app, "Mensal", 120, 30)
	m := enroll(t, app, aluno.ID, planoID, "2024-05-01")
	path := fmt.Sprintf("/pagamentos/%d/pagar", m.Pagamentos[0].ID)

	var paid pagamentoBody
	if status := call(t, app, "PATCH", path, nil, &paid); status != fiber.StatusOK {
		t.Fatalf("first settle: status %d", status)
	}
	if paid.StatusPagamento != "pago" || paid.DataPagamento == nil {
		t.Errorf("not settled: %+v", paid)
	}
	if paid.Matricula == nil || paid.Matricula.Aluno == nil || paid.Matricula.Plano == nil {
		t.Error("settled payment should embed matricula, aluno and plano")
	}

	var e errorBody
	if status := call(t, app, "PATCH", path, nil, &e); status != fiber.StatusBadRequest {
		t.Fatalf("second settle: status %d, want 400", status)
	}
	if e.Error == "" {
		t.Error("rejection without message")
	}

	var list []pagamentoBody
	call(t, app, "GET", "/pagamentos?status=pago", nil, &list)
	if len(list) != 1 || *list[0].DataPagamento != *paid.DataPagamento {
		t.Errorf("second settle changed state: %+v", list)
	}

	if status := call(t, app, "PATCH", "/pagamentos/9999/pagar", nil, nil); status != fiber.StatusNotFound {
		t.Errorf("unknown payment: status %d, want 404", status)
	}
}

func TestDeleteReferencedRows(t *testing.T) {
	app, db := setupTestApp(t)
	aluno := createAluno(t, app, "11122233344", "fabio@example.com")
	planoID := createPlano(t, app, "Mensal", 100, 30)
	enroll(t, app, aluno.ID, planoID, "2024-01-01")

	if status := call(t, app, "DELETE", fmt.Sprintf("/alunos/%d", aluno.ID), nil, nil); status != fiber.StatusConflict {
		t.Errorf("delete enrolled aluno: status %d, want 409", status)
	}
	if status := call(t, app, "DELETE", fmt.Sprintf("/planos/%d", planoID), nil, nil); status != fiber.StatusConflict {
		t.Errorf("delete used plano: status %d, want 409", status)
	}

	var alunos, planos int64
	db.Model(&model.Aluno{}).Count(&alunos)
	db.Model(&model.Plano{}).Count(&planos)
	if alunos != 1 || planos != 1 {
		t.Errorf("rows deleted despite conflict: alunos=%d planos=%d", alunos, planos)
	}

	free := createAluno(t, app, "99988877766", "livre@example.com")
	if status := call(t, app, "DELETE", fmt.Sprintf("/alunos/%d", free.ID), nil, nil); status != fiber.StatusNoContent {
		t.Errorf("delete free aluno: status %d, want 204", status)
	}
	if status := call(t, app, "DELETE", fmt.Sprintf("/alunos/%d", free.ID), nil, nil); status != fiber.StatusNotFound {
		t.Errorf("delete twice: status %d, want 404", status)
	}
}

func TestPlanoEndpoints(t *testing.T) {
	app, _ := setupTestApp(t)
	aluno := createAluno(t, app, "11122233344", "gabi@example.com")
	anual := createPlano(t, app, "Anual", 1200, 365)
	basico := createPlano(t, app, "Basico", 90, 30)
	enroll(t, app, aluno.ID, anual, "2024-01-01")

	var list []struct {
		ID    uint   `json:"id"`
		Nome  string `json:"nome"`
		Count struct {
			Matriculas int64 `json:"matriculas"`
		} `json:"_count"`
	}
	call(t, app, "GET", "/planos", nil, &list)
	if len(list) != 2 || list[0].Nome != "Anual" || list[1].Nome != "Basico" {
		t.Fatalf("plano list = %+v", list)
	}
	if list[0].Count.Matriculas != 1 || list[1].Count.Matriculas != 0 {
		t.Errorf("counts = %d/%d, want 1/0", list[0].Count.Matriculas, list[1].Count.Matriculas)
	}

	var detail struct {
		Matriculas []struct {
			Aluno *alunoBody `json:"aluno"`
		} `json:"matriculas"`
	}
	call(t, app, "GET", fmt.Sprintf("/planos/%d", anual), nil, &detail)
	if len(detail.Matriculas) != 1 || detail.Matriculas[0].Aluno == nil || detail.Matriculas[0].Aluno.ID != aluno.ID {
		t.Errorf("plano detail = %+v", detail)
	}

	var updated struct {
		Nome        string  `json:"nome"`
		Preco       float64 `json:"preco"`
		DuracaoDias int     `json:"duracaoDias"`
	}
	if status := call(t, app, "PUT", fmt.Sprintf("/planos/%d", basico), map[string]any{"preco": 99.9}, &updated); status != fiber.StatusOK {
		t.Fatalf("update plano: status %d", status)
	}
	if updated.Preco != 99.9 || updated.Nome != "Basico" || updated.DuracaoDias != 30 {
		t.Errorf("partial plano update = %+v", updated)
	}

	var e errorBody
	if status := call(t, app, "POST", "/planos", map[string]any{"nome": "X", "preco": -1, "duracaoDias": 0}, &e); status != fiber.StatusBadRequest {
		t.Fatalf("invalid plano: status %d", status)
	}
	for _, f := range []string{"nome", "preco", "duracaoDias"} {
		if len(e.Details[f]) == 0 {
			t.Errorf("missing details for %s: %v", f, e.Details)
		}
	}

	if status := call(t, app, "DELETE", fmt.Sprintf("/planos/%d", basico), nil, nil); status != fiber.StatusNoContent {
		t.Errorf("delete unused plano: status %d, want 204", status)
	}
}

func TestPagamentoListFilters(t *testing.T) {
	app, _ := setupTestApp(t)
	aluno := createAluno(t, app, "11122233344", "hugo@example.com")
	planoID := createPlano(t, app, "Trimestral", 300, 90)
	m1 := enroll(t, app, aluno.ID, planoID, "2024-01-01")
	m2 := enroll(t, app, aluno.ID, planoID, "2024-06-01")

	call(t, app, "PATCH", fmt.Sprintf("/pagamentos/%d/pagar", m1.Pagamentos[0].ID), nil, nil)
	call(t, app, "PATCH", fmt.Sprintf("/pagamentos/%d/pagar", m2.Pagamentos[1].ID), nil, nil)

	var all []pagamentoBody
	call(t, app, "GET", "/pagamentos", nil, &all)
	if len(all) != 6 {
		t.Fatalf("all = %d, want 6", len(all))
	}
	for i := 1; i < len(all); i++ {
		if all[i].DataVencimento.Before(all[i-1].DataVencimento) {
			t.Errorf("not ordered by due date at %d", i)
		}
	}

	tests := []struct {
		query string
		want  int
		check func(p pagamentoBody) bool
	}{
		{"status=pago", 2, func(p pagamentoBody) bool { return p.StatusPagamento == "pago" }},
		{"status=pendente", 4, func(p pagamentoBody) bool { return p.StatusPagamento == "pendente" }},
		{fmt.Sprintf("matriculaId=%d", m1.ID), 3, func(p pagamentoBody) bool { return p.MatriculaID == m1.ID }},
		{fmt.Sprintf("matriculaId=%d&status=pago", m2.ID), 1, func(p pagamentoBody) bool {
			return p.MatriculaID == m2.ID && p.StatusPagamento == "pago"
		}},
		{"status=whatever", 6, func(pagamentoBody) bool { return true }},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			var got []pagamentoBody
			if status := call(t, app, "GET", "/pagamentos?"+tt.query, nil, &got); status != fiber.StatusOK {
				t.Fatalf("status %d", status)
			}
			if len(got) != tt.want {
				t.Fatalf("len = %d, want %d", len(got), tt.want)
			}
			for _, p := range got {
				if !tt.check(p) {
					t.Errorf("filter leaked %+v", p)
				}
				if p.Matricula == nil || p.Matricula.Aluno == nil || p.Matricula.Plano == nil {
					t.Errorf("payment %d without matricula/aluno/plano", p.ID)
				}
			}
		})
	}

	if status := call(t, app, "GET", "/pagamentos?matriculaId=abc", nil, nil); status != fiber.StatusBadRequest {
		t.Errorf("bad matriculaId: status %d, want 400", status)
	}
}

func TestDashboardMetricsEndpoint(t *testing.T) {
	app, _ := setupTestApp(t)
	today := time.Now().Format("2006-01-02")
	longAgo := time.Now().AddDate(0, -4, 0).Format("2006-01-02")

	planoID := createPlano(t, app, "Trimestral", 300, 90)
	devedor := createAluno(t, app, "00000000001", "devedor@example.com")
	enroll(t, app, devedor.ID, planoID, longAgo) // every installment already overdue

	emDia := createAluno(t, app, "00000000002", "emdia@example.com")
	enroll(t, app, emDia.ID, planoID, today)

	inativo := createAluno(t, app, "00000000003", "inativo@example.com")
	enroll(t, app, inativo.ID, planoID, longAgo)
	call(t, app, "PUT", fmt.Sprintf("/alunos/%d", inativo.ID), map[string]any{"status": "inativo"}, nil)

	var got map[string]int64
	if status := call(t, app, "GET", "/dashboard/metrics", nil, &got); status != fiber.StatusOK {
		t.Fatalf("status %d", status)
	}
	if got["totalAlunosAtivos"] != 2 || got["totalInadimplentes"] != 1 {
		t.Errorf("metrics = %v, want ativos=2 inadimplentes=1", got)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	app, _ := setupTestApp(t)
	call(t, app, "GET", "/alunos", nil, nil)

	resp, err := app.Test(httptest.NewRequest("GET", "/metrics", nil))
	if err != nil {
		t.Fatal(err)
	}
	body, _ := io.ReadAll(resp.Body)
	if !strings.Contains(string(body), `academia_http_requests_total{method="GET",route="/alunos`) {
		t.Errorf("metrics missing /alunos sample:\n%s", body)
	}
}

func TestPlanoPriceMustFitCents(t *testing.T) {
	app, _ := setupTestApp(t)

	var e errorBody
	status := call(t, app, "POST", "/planos", map[string]any{
		"nome": "Mensal", "preco": 99.999, "duracaoDias": 30,
	}, &e)
	if status != fiber.StatusBadRequest || len(e.Details["preco"]) == 0 {
		t.Fatalf("three-decimal preco: status %d body %+v", status, e)
	}

	var created struct {
		Preco float64 `json:"preco"`
	}
	if status := call(t, app, "POST", "/planos", map[string]any{
		"nome": "Mensal", "preco": 99.99, "duracaoDias": 30,
	}, &created); status != fiber.StatusCreated || created.Preco != 99.99 {
		t.Fatalf("two-decimal preco: status %d preco %v", status, created.Preco)
	}
}
