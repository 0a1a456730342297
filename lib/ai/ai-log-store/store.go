package ailogstore

import (
	"context"

	dbmodels "devassist-backend/models/db"

	"gorm.io/gorm"
)

type Provider interface {
	Save(ctx context.Context, rec dbmodels.AiLog) (string, error)
	ListRecent(taskKind string, limit int) ([]dbmodels.AiLog, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Save(ctx context.Context, rec dbmodels.AiLog) (string, error) {
	err := i.db.
		WithContext(ctx).
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) ListRecent(taskKind string, limit int) (list []dbmodels.AiLog, err error) {
	tx := i.db.
		Model(&dbmodels.AiLog{}).
		Order("created_at desc").
		Limit(limit)
	if taskKind != "" {
		tx = tx.Where("task_kind = ?", taskKind)
	}
	err = tx.Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
