package config

import (
	"github.com/gotify/configor"
)

var Conf *Configuration

type Configuration struct {
	App struct {
		ListenAddr     string `default:"" env:"APP_HOST"`
		Port           int    `default:"5000"  env:"APP_PORT"`
		CorsOrigin     string `default:"http://localhost:3000" env:"CORS_ORIGIN"`
		BodyLimitMB    int    `default:"50" env:"APP_BODY_LIMIT_MB"`
		SwaggerEnabled *bool  `default:"false" env:"APP_SWAGGER_ENABLED"`
		SwaggerFile    string `default:"./docs/swagger.json" env:"APP_SWAGGER_FILE"`
	}
	AI struct {
		Ollama struct {
			URL               string `default:"http://localhost:11434" env:"OLLAMA_URL"`
			TimeoutSec        int    `default:"30" env:"OLLAMA_TIMEOUT_SEC"`
			WebpageTimeoutSec int    `default:"60" env:"OLLAMA_WEBPAGE_TIMEOUT_SEC"`
		}
		Models struct {
			Chat      string `default:"llama3" env:"MODEL_CHAT"`
			Code      string `default:"codellama" env:"MODEL_CODE"`
			Challenge string `default:"codellama" env:"MODEL_CHALLENGE"`
			Document  string `default:"llama3" env:"MODEL_DOCUMENT"`
			DocGen    string `default:"codellama" env:"MODEL_DOCGEN"`
			NLPToCode string `default:"codellama" env:"MODEL_NLPTOCODE"`
			Webpage   string `default:"llama3" env:"MODEL_WEBPAGE"`
			Voice     string `default:"llama3" env:"MODEL_VOICE"`
		}
	}
	ImageGen struct {
		URL        string `default:"http://localhost:7860" env:"IMAGEGEN_URL"`
		TimeoutSec int    `default:"120" env:"IMAGEGEN_TIMEOUT_SEC"`
		Width      int    `default:"512" env:"IMAGEGEN_WIDTH"`
		Height     int    `default:"512" env:"IMAGEGEN_HEIGHT"`
		Steps      int    `default:"20" env:"IMAGEGEN_STEPS"`
	}
	Voice struct {
		WhisperBin   string `default:"whisper" env:"WHISPER_BIN"`
		WhisperModel string `default:"base" env:"WHISPER_MODEL"`
		TimeoutSec   int    `default:"120" env:"WHISPER_TIMEOUT_SEC"`
		UploadDir    string `default:"./uploads/audio" env:"VOICE_UPLOAD_DIR"`
		Concurrency  int    `default:"1" env:"WHISPER_CONCURRENCY"`
		TmpMaxAgeMin int    `default:"30" env:"VOICE_TMP_MAX_AGE_MIN"`
	}
	Documents struct {
		TTLMin             int `default:"120" env:"DOCUMENTS_TTL_MIN"`
		CleanupIntervalMin int `default:"10" env:"DOCUMENTS_CLEANUP_INTERVAL_MIN"`
		MaxPromptChars     int `default:"12000" env:"DOCUMENTS_MAX_PROMPT_CHARS"`
	}
	Challenges struct {
		FixturePath string `default:"" env:"CHALLENGES_FIXTURE_PATH"`
	}
	Webpage struct {
		FetchTimeoutSec int    `default:"15" env:"WEBPAGE_FETCH_TIMEOUT_SEC"`
		MaxContentChars int    `default:"8000" env:"WEBPAGE_MAX_CONTENT_CHARS"`
		UserAgent       string `default:"Mozilla/5.0 (compatible; devassist/1.0)" env:"WEBPAGE_USER_AGENT"`
	}
	Storage struct {
		LocalDir string `default:"./uploads/files" env:"STORAGE_LOCAL_DIR"`
	}
	S3 struct {
		Endpoint        string `default:"" env:"S3_ENDPOINT"`
		AccessKeyID     string `default:"" env:"S3_ACCESS_KEY_ID"`
		SecretAccessKey string `default:"" env:"S3_SECRET_ACCESS_KEY"`
		BucketName      string `default:"devassist" env:"S3_BUCKET_NAME"`
		UseSSL          *bool  `default:"false" env:"S3_USE_SSL"`
	}
	Database struct {
		Enabled        *bool  `default:"false" env:"DB_ENABLED"`
		Host           string `default:"127.0.0.1" env:"DB_HOST"`
		Port           string `default:"5432" env:"DB_PORT"`
		Name           string `default:"devassist" env:"DB_NAME"`
		User           string `default:"postgres" env:"DB_USER"`
		Password       string `default:"postgres" env:"DB_PASSWORD"`
		MigrateOnStart *bool  `default:"true" env:"DB_MIGRATE_ON_START"`
		DebugMode      *bool  `default:"false" env:"DB_DEBUG_MODE"`
	}
	Auth struct {
		JWTSecret string `default:"" env:"JWT_SECRET"`
	}
}

func configFiles() []string {
	return []string{"config.yml"}
}

func InitConfig() {
	if Conf != nil {
		return
	}
	conf := new(Configuration)
	err := configor.New(&configor.Config{}).Load(conf, configFiles()...)
	if err != nil {
		panic(err)
	}
	Conf = conf
}
