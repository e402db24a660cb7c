package storage

const (
	DailyTargetKey     = "daily_target"
	DefaultDailyTarget = 1000
)

type DailyTarget struct {
	Chave         string `json:"chave"`
	Valor         int    `json:"valor"`
	AtualizadoPor string `json:"atualizadoPor,omitempty"`
}
