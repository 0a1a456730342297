package ailog

import (
	"context"
	"testing"
	"time"

	ollamaclient "devassist-backend/lib/ai/ollama"
	ollamafake "devassist-backend/lib/ai/ollama/fake"
	"devassist-backend/lib/ai/prompt"
	apperrors "devassist-backend/lib/utils/app-errors"
	dbmodels "devassist-backend/models/db"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

type memStore struct {
	recs    []dbmodels.AiLog
	saveErr error
	hang    bool
}

func (m *memStore) Save(ctx context.Context, rec dbmodels.AiLog) (string, error) {
	if m.hang {
		<-ctx.Done()
		return "", ctx.Err()
	}
	if m.saveErr != nil {
		return "", m.saveErr
	}
	m.recs = append(m.recs, rec)
	return "id", nil
}

func (m *memStore) ListRecent(taskKind string, limit int) ([]dbmodels.AiLog, error) {
	return m.recs, nil
}

func TestAuditedClient(t *testing.T) {
	t.Run(`success recorded check`, func(t *testing.T) {
		store := &memStore{}
		client := NewAuditedClient(ollamafake.New("hi there"), store)
		result, err := client.Generate(context.Background(), ollamaclient.GenerateRequest{
			Kind:   prompt.KindChat,
			Model:  "llama3",
			Prompt: "p",
			UserID: "user-1",
		})
		require.NoError(t, err)
		require.Equal(t, "hi there", result.Text)
		require.Len(t, store.recs, 1)
		require.Equal(t, dbmodels.AiLogSuccess, store.recs[0].Status)
		require.Equal(t, "chat", store.recs[0].TaskKind)
		require.Equal(t, "user-1", store.recs[0].UserID)
		require.Equal(t, "hi there", store.recs[0].Answer)
	})

	t.Run(`failure recorded check`, func(t *testing.T) {
		store := &memStore{}
		fake := ollamafake.New("")
		fake.Err = apperrors.New(apperrors.KindUpstreamTimeout, "timeout", "", nil)
		_, err := NewAuditedClient(fake, store).Generate(context.Background(), ollamaclient.GenerateRequest{Model: "llama3"})
		require.True(t, ollamaclient.IsTimeout(err))
		require.Len(t, store.recs, 1)
		require.Equal(t, dbmodels.AiLogTimeout, store.recs[0].Status)
		require.Equal(t, "timeout", store.recs[0].Error)
	})

	t.Run(`store failure ignored check`, func(t *testing.T) {
		store := &memStore{saveErr: errors.New("db down")}
		result, err := NewAuditedClient(ollamafake.New("ok"), store).Generate(context.Background(), ollamaclient.GenerateRequest{Model: "llama3"})
		require.NoError(t, err)
		require.Equal(t, "ok", result.Text)
	})

	t.Run(`slow store bounded check`, func(t *testing.T) {
		store := &memStore{hang: true}
		client := &auditedClient{next: ollamafake.New("ok"), store: store, saveTimeout: 50 * time.Millisecond}
		started := time.Now()
		result, err := client.Generate(context.Background(), ollamaclient.GenerateRequest{Model: "llama3"})
		require.NoError(t, err)
		require.Equal(t, "ok", result.Text)
		require.Less(t, time.Since(started), time.Second)
		require.Empty(t, store.recs)
	})

	t.Run(`cancelled request still recorded check`, func(t *testing.T) {
		store := &memStore{}
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := NewAuditedClient(ollamafake.New("ok"), store).Generate(ctx, ollamaclient.GenerateRequest{Model: "llama3"})
		require.NoError(t, err)
		require.Len(t, store.recs, 1)
	})
}
