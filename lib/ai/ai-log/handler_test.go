package ailog

import (
	"testing"

	apperrors "devassist-backend/lib/utils/app-errors"
	dbmodels "devassist-backend/models/db"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

type listStore struct {
	memStore
	gotLimit int
	listErr  error
}

func (l *listStore) ListRecent(taskKind string, limit int) ([]dbmodels.AiLog, error) {
	l.gotLimit = limit
	if l.listErr != nil {
		return nil, l.listErr
	}
	return l.recs, nil
}

func TestListRecent(t *testing.T) {
	t.Run(`view mapping check`, func(t *testing.T) {
		store := &listStore{}
		store.recs = []dbmodels.AiLog{{TaskKind: "chat", Model: "llama3", Status: dbmodels.AiLogTimeout, DurationMs: 30000}}
		list, err := impl{store: store}.ListRecent("chat", 0)
		require.NoError(t, err)
		require.Equal(t, defaultLimit, store.gotLimit)
		require.Len(t, list, 1)
		require.Equal(t, "timeout", list[0].Status)
		require.Equal(t, int64(30000), list[0].DurationMs)
	})

	t.Run(`limit capped check`, func(t *testing.T) {
		store := &listStore{}
		_, err := impl{store: store}.ListRecent("", 100000)
		require.NoError(t, err)
		require.Equal(t, maxLimit, store.gotLimit)
	})

	t.Run(`store error check`, func(t *testing.T) {
		store := &listStore{listErr: errors.New("db down")}
		_, err := impl{store: store}.ListRecent("", 10)
		require.Equal(t, apperrors.KindInternal, apperrors.KindOf(err))
	})
}
