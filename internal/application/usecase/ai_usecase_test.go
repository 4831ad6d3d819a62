package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kelechidev/invoicer-api/internal/application/dto"
	"github.com/kelechidev/invoicer-api/pkg/logger"
)

// stubTextGen permite controlar la respuesta de cada método.
type stubTextGen struct {
	reply string
	err   error
}

func (s *stubTextGen) PolishDescription(context.Context, string) (string, error) {
	return s.reply, s.err
}
func (s *stubTextGen) GenerateTerms(context.Context, string) (string, error) {
	return s.reply, s.err
}
func (s *stubTextGen) AnalyzeIncome(context.Context, []dto.MonthlyRevenuePoint) (string, error) {
	return s.reply, s.err
}

var errColaborador = errors.New("upstream caído")

func TestPolishDescription_ExitoDevuelveTextoRecortado(t *testing.T) {
	uc := NewAIUseCase(&stubTextGen{reply: "  Professional web development services.  "}, logger.Nop())

	got := uc.PolishDescription(context.Background(), "did website")
	assert.Equal(t, "Professional web development services.", got)
}

func TestPolishDescription_FalloConservaElOriginal(t *testing.T) {
	uc := NewAIUseCase(&stubTextGen{err: errColaborador}, logger.Nop())

	got := uc.PolishDescription(context.Background(), "did website")
	assert.Equal(t, "did website", got, "el error del colaborador nunca llega al cliente")
}

func TestPolishDescription_VacioNoLlamaAlColaborador(t *testing.T) {
	uc := NewAIUseCase(&stubTextGen{err: errColaborador}, logger.Nop())

	assert.Equal(t, "", uc.PolishDescription(context.Background(), ""))
	assert.Equal(t, "   ", uc.PolishDescription(context.Background(), "   "))
}

func TestGenerateTerms_FalloDevuelveRespaldo(t *testing.T) {
	uc := NewAIUseCase(&stubTextGen{err: errColaborador}, logger.Nop())

	got := uc.GenerateTerms(context.Background(), "Web design")
	assert.Equal(t, fallbackTerms, got)
}

func TestGenerateTerms_RespuestaVaciaDevuelveRespaldo(t *testing.T) {
	uc := NewAIUseCase(&stubTextGen{reply: "   "}, logger.Nop())

	got := uc.GenerateTerms(context.Background(), "Web design")
	assert.Equal(t, fallbackTerms, got)
}

func TestAnalyzeIncome_Respaldos(t *testing.T) {
	serie := []dto.MonthlyRevenuePoint{{Month: "Jan"}}

	uc := NewAIUseCase(&stubTextGen{err: errColaborador}, logger.Nop())
	assert.Equal(t, fallbackInsight, uc.AnalyzeIncome(context.Background(), serie))

	uc = NewAIUseCase(&stubTextGen{reply: ""}, logger.Nop())
	assert.Equal(t, fallbackInsightEmpty, uc.AnalyzeIncome(context.Background(), serie))
}

func TestAnalyzeIncome_Exito(t *testing.T) {
	uc := NewAIUseCase(&stubTextGen{reply: "March was your strongest month."}, logger.Nop())

	got := uc.AnalyzeIncome(context.Background(), []dto.MonthlyRevenuePoint{{Month: "Mar"}})
	assert.Equal(t, "March was your strongest month.", got)
}
