package challengefixtures

import (
	_ "embed"
	"encoding/json"
	"os"
	"strings"

	codechallengeapimodels "devassist-backend/models/api/codechallenge"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

//go:embed challenges.json
var defaultChallenges []byte

type Provider interface {
	List() []codechallengeapimodels.ChallengeShort
	Get(id string) (codechallengeapimodels.Challenge, bool)
}

type impl struct {
	order []string
	byID  map[string]codechallengeapimodels.Challenge
}

// NewInstance читает задачи из path, при пустом path или отсутствии файла
// используется встроенный набор
func NewInstance(path string) (Provider, error) {
	data := defaultChallenges
	if path != "" {
		fileData, err := os.ReadFile(path)
		switch {
		case err == nil:
			data = fileData
		case os.IsNotExist(err):
			log.WithField("path", path).Warn("файл задач не найден, используется встроенный набор")
		default:
			return nil, errors.Wrap(err, "ошибка чтения файла задач")
		}
	}
	return parse(data)
}

func parse(data []byte) (Provider, error) {
	var list []codechallengeapimodels.Challenge
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, errors.Wrap(err, "ошибка разбора списка задач")
	}
	result := impl{
		order: make([]string, 0, len(list)),
		byID:  make(map[string]codechallengeapimodels.Challenge, len(list)),
	}
	for _, item := range list {
		id := item.ID.String()
		if id == "" {
			return nil, errors.Errorf("задача без идентификатора: %q", item.Title)
		}
		if _, ok := result.byID[id]; ok {
			return nil, errors.Errorf("повторяющийся идентификатор задачи: %s", id)
		}
		result.order = append(result.order, id)
		result.byID[id] = item
	}
	return result, nil
}

func (i impl) List() []codechallengeapimodels.ChallengeShort {
	list := make([]codechallengeapimodels.ChallengeShort, 0, len(i.order))
	for _, id := range i.order {
		item := i.byID[id]
		list = append(list, codechallengeapimodels.ChallengeShort{
			ID:         item.ID,
			Title:      item.Title,
			Difficulty: item.Difficulty,
			Category:   item.Category,
		})
	}
	return list
}

func (i impl) Get(id string) (codechallengeapimodels.Challenge, bool) {
	item, ok := i.byID[strings.TrimSpace(id)]
	return item, ok
}
