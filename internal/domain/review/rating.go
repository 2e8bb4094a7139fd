package review

import "github.com/BruksfildServices01/barbearia-api/internal/httperr"

const (
	MinScore = 1
	MaxScore = 5
)

// Mean é a média simples das notas; sem notas a média é 0.
func Mean(scores []int) float64 {
	if len(scores) == 0 {
		return 0
	}
	total := 0
	for _, s := range scores {
		total += s
	}
	return float64(total) / float64(len(scores))
}

func ValidateScore(score int) error {
	if score < MinScore || score > MaxScore {
		return httperr.NewBusiness("invalid_score", "A nota deve estar entre 1 e 5.")
	}
	return nil
}
