package initializers

import (
	"context"
	"time"

	"devassist-backend/config"
	"devassist-backend/db"
	"devassist-backend/fiberlog"
	ailog "devassist-backend/lib/ai/ai-log"
	ailogstore "devassist-backend/lib/ai/ai-log-store"
	ollamaclient "devassist-backend/lib/ai/ollama"
	chathandler "devassist-backend/lib/chat"
	codehandler "devassist-backend/lib/code"
	codechallengehandler "devassist-backend/lib/codechallenge"
	challengefixtures "devassist-backend/lib/codechallenge/fixtures"
	docgenhandler "devassist-backend/lib/docgen"
	documenthandler "devassist-backend/lib/document"
	documentstore "devassist-backend/lib/document/store"
	filestorage "devassist-backend/lib/file-storage"
	imagegenhandler "devassist-backend/lib/imagegen"
	sdclient "devassist-backend/lib/imagegen/sd-client"
	modelshandler "devassist-backend/lib/models"
	nlptocodehandler "devassist-backend/lib/nlptocode"
	"devassist-backend/lib/utils/lock"
	voicehandler "devassist-backend/lib/voice"
	voicetmpworker "devassist-backend/lib/voice/tmp-worker"
	"devassist-backend/lib/voice/whisper"
	webpagehandler "devassist-backend/lib/webpage"
	webfetcher "devassist-backend/lib/webpage/fetcher"
)

var LoggerConfig *fiberlog.Config

func InitAllServices(ctx context.Context) {
	LoggerConfig = InitLogger()
	config.InitConfig()
	InitStorage(ctx)

	conf := config.Conf
	var client ollamaclient.Provider = ollamaclient.NewClient(conf.AI.Ollama.URL)
	if InitDBConnection() {
		store := ailogstore.NewInstance(db.DB)
		client = ailog.NewAuditedClient(client, store)
		ailog.NewHandler(store)
	}
	timeout := seconds(conf.AI.Ollama.TimeoutSec)

	fixtures, err := challengefixtures.NewInstance(conf.Challenges.FixturePath)
	if err != nil {
		panic(err.Error())
	}

	modelshandler.NewHandler(client)
	chathandler.NewHandler(client, conf.AI.Models.Chat, timeout)
	codehandler.NewHandler(client, conf.AI.Models.Code, timeout)
	codechallengehandler.NewHandler(client, fixtures, conf.AI.Models.Challenge, timeout)
	docgenhandler.NewHandler(client, conf.AI.Models.DocGen, timeout)
	nlptocodehandler.NewHandler(client, conf.AI.Models.NLPToCode, timeout)
	documenthandler.NewHandler(client,
		documentstore.NewInstance(minutes(conf.Documents.TTLMin), minutes(conf.Documents.CleanupIntervalMin), filestorage.Instance),
		filestorage.Instance,
		documenthandler.Config{
			Model:          conf.AI.Models.Document,
			Timeout:        timeout,
			MaxPromptChars: conf.Documents.MaxPromptChars,
		})
	webpagehandler.NewHandler(client,
		webfetcher.NewFetcher(conf.Webpage.UserAgent, seconds(conf.Webpage.FetchTimeoutSec)),
		conf.AI.Models.Webpage,
		seconds(conf.AI.Ollama.WebpageTimeoutSec),
		conf.Webpage.MaxContentChars)
	err = voicehandler.NewHandler(client,
		whisper.NewTranscriber(conf.Voice.WhisperBin, conf.Voice.WhisperModel, seconds(conf.Voice.TimeoutSec)),
		lock.NewResourceLock(conf.Voice.Concurrency),
		voicehandler.Config{
			Model:     conf.AI.Models.Voice,
			Timeout:   timeout,
			UploadDir: conf.Voice.UploadDir,
		})
	if err != nil {
		panic(err.Error())
	}
	imagegenhandler.NewHandler(sdclient.NewClient(conf.ImageGen.URL, seconds(conf.ImageGen.TimeoutSec)),
		filestorage.Instance,
		imagegenhandler.Defaults{
			Width:  conf.ImageGen.Width,
			Height: conf.ImageGen.Height,
			Steps:  conf.ImageGen.Steps,
		})

	go initWorkers(ctx)
}

func initWorkers(ctx context.Context) {
	// Задача очистки временных аудиофайлов
	voicetmpworker.StartWorker(ctx, config.Conf.Voice.UploadDir, minutes(config.Conf.Voice.TmpMaxAgeMin))
}

func seconds(v int) time.Duration {
	return time.Duration(v) * time.Second
}

func minutes(v int) time.Duration {
	return time.Duration(v) * time.Minute
}
