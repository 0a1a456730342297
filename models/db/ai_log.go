package dbmodels

type AiLog struct {
	BaseModel
	UserID     string      `gorm:"type:varchar(255);index" comment:"Пользователь (sub из токена)"`
	TaskKind   string      `gorm:"type:varchar(64);index" comment:"Тип задачи"`
	Model      string      `gorm:"type:varchar(255)" comment:"Модель"`
	Prompt     string      `comment:"Промпт"`
	Answer     string      `comment:"Ответ ИИ"`
	DurationMs int64       `comment:"Длительность запроса, мс"`
	Status     AiLogStatus `gorm:"type:varchar(32)" comment:"Статус запроса"`
	Error      string      `comment:"Текст ошибки"`
}

type AiLogStatus string

const (
	AiLogSuccess     AiLogStatus = "success"
	AiLogUnavailable AiLogStatus = "unavailable"
	AiLogTimeout     AiLogStatus = "timeout"
	AiLogError       AiLogStatus = "error"
)
