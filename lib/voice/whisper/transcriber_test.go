package whisper

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	apperrors "devassist-backend/lib/utils/app-errors"

	"github.com/stretchr/testify/require"
)

// fakeWhisper пишет скрипт, который ведет себя как whisper CLI:
// $1 аудио, далее --model X --output_format txt --output_dir DIR
func fakeWhisper(t *testing.T, body string) string {
	if runtime.GOOS == "windows" {
		t.Skip("shell script stub")
	}
	path := filepath.Join(t.TempDir(), "whisper")
	script := "#!/bin/sh\nAUDIO=\"$1\"\nOUT=\"$7\"\nNAME=$(basename \"$AUDIO\")\nNAME=\"${NAME%.*}\"\n" + body
	require.NoError(t, os.WriteFile(path, []byte(script), 0o755))
	return path
}

func audioFile(t *testing.T) string {
	path := filepath.Join(t.TempDir(), "sample.webm")
	require.NoError(t, os.WriteFile(path, []byte("audio"), 0o644))
	return path
}

func TestTranscribe(t *testing.T) {
	t.Run(`successful transcription check`, func(t *testing.T) {
		bin := fakeWhisper(t, "echo ' hello world ' > \"$OUT/$NAME.txt\"\n")
		text, err := NewTranscriber(bin, "base", time.Second*5).Transcribe(context.Background(), audioFile(t))
		require.NoError(t, err)
		require.Equal(t, "hello world", text)
	})

	t.Run(`non-zero exit check`, func(t *testing.T) {
		bin := fakeWhisper(t, "echo 'bad audio' >&2\nexit 1\n")
		_, err := NewTranscriber(bin, "base", time.Second*5).Transcribe(context.Background(), audioFile(t))
		appErr, ok := apperrors.As(err)
		require.True(t, ok)
		require.Equal(t, apperrors.KindTranscriptionFailed, appErr.Kind)
		require.Contains(t, appErr.Details, "bad audio")
	})

	t.Run(`empty output check`, func(t *testing.T) {
		bin := fakeWhisper(t, ": > \"$OUT/$NAME.txt\"\n")
		_, err := NewTranscriber(bin, "base", time.Second*5).Transcribe(context.Background(), audioFile(t))
		require.Equal(t, apperrors.KindTranscriptionFailed, apperrors.KindOf(err))
	})

	t.Run(`deadline check`, func(t *testing.T) {
		bin := fakeWhisper(t, "exec sleep 5\n")
		started := time.Now()
		_, err := NewTranscriber(bin, "base", 200*time.Millisecond).Transcribe(context.Background(), audioFile(t))
		require.Equal(t, apperrors.KindTranscriptionFailed, apperrors.KindOf(err))
		require.Less(t, time.Since(started), 4*time.Second)
	})

	t.Run(`missing binary check`, func(t *testing.T) {
		_, err := NewTranscriber(filepath.Join(t.TempDir(), "nope"), "base", time.Second).Transcribe(context.Background(), audioFile(t))
		require.Equal(t, apperrors.KindTranscriptionFailed, apperrors.KindOf(err))
	})
}
