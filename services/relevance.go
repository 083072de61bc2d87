package services

import (
	"strings"
	"unicode"

	"github.com/courtside/sports-platform/models"
)

// SearchMatch описывает совпадение запроса в одном текстовом поле команды.
// Highlighted — то же значение с обёрнутыми вхождениями запроса.
type SearchMatch struct {
	Field       string `json:"field"`
	Value       string `json:"value"`
	Highlighted string `json:"highlighted"`
}

const (
	highlightOpen  = "<em>"
	highlightClose = "</em>"
)

// emptyQueryScore возвращается для всех команд при пустом запросе:
// ранжирование вырождается, естественный порядок сохраняется.
const emptyQueryScore = 1.0

// fieldWeights задаёт вес поля по ярусам совпадения: точное > префикс >
// подстрока. Нулевой вес яруса означает, что ярус для поля не определён
// (у аббревиатуры нет префиксного яруса).
var fieldWeights = []struct {
	field     string
	value     func(*models.Team) string
	exact     float64
	prefix    float64
	substring float64
}{
	{"name", func(t *models.Team) string { return t.Name }, 10.0, 8.0, 5.0},
	{"market", func(t *models.Team) string { return t.Market }, 8.0, 6.0, 3.0},
	{"abbreviation", func(t *models.Team) string { return t.Abbreviation }, 9.0, 0, 7.0},
	{"display_name", func(t *models.Team) string { return t.DisplayName }, 9.5, 7.0, 4.0},
}

// ScoreTeam вычисляет релевантность команды запросу и список совпадений
// по полям. Запрос должен быть уже приведён к нижнему регистру. Каждое поле
// вносит вклад не более одного раза — только своим лучшим ярусом.
// Подсветка чисто презентационная и на счёт не влияет.
func ScoreTeam(team *models.Team, query string) (float64, []SearchMatch) {
	if query == "" {
		return emptyQueryScore, nil
	}

	var score float64
	var matches []SearchMatch

	for _, fw := range fieldWeights {
		value := fw.value(team)
		if value == "" {
			continue
		}
		lowered := strings.ToLower(value)

		var tier float64
		switch {
		case lowered == query:
			tier = fw.exact
		case fw.prefix > 0 && strings.HasPrefix(lowered, query):
			tier = fw.prefix
		case strings.Contains(lowered, query):
			tier = fw.substring
		default:
			continue
		}

		score += tier
		matches = append(matches, SearchMatch{
			Field:       fw.field,
			Value:       value,
			Highlighted: highlightOccurrences(value, query),
		})
	}

	return score, matches
}

// highlightOccurrences оборачивает каждое вхождение запроса (без учёта
// регистра) маркерами, сохраняя исходный регистр текста. Приведение руны
// к нижнему регистру может менять её длину в байтах, поэтому строка
// сворачивается поруночно с картой смещений: границы совпадений ищутся в
// приведённой строке и переводятся в координаты исходной.
func highlightOccurrences(value, query string) string {
	if query == "" {
		return value
	}

	// lowOffsets[i] и origOffsets[i] — смещения начала i-й руны в
	// приведённой и исходной строках; последняя пара — их длины.
	var folded strings.Builder
	lowOffsets := make([]int, 0, len(value)+1)
	origOffsets := make([]int, 0, len(value)+1)
	for i, r := range value {
		lowOffsets = append(lowOffsets, folded.Len())
		origOffsets = append(origOffsets, i)
		folded.WriteRune(unicode.ToLower(r))
	}
	lowOffsets = append(lowOffsets, folded.Len())
	origOffsets = append(origOffsets, len(value))
	lowered := folded.String()

	var b strings.Builder
	runeIdx := 0
	lowPos := 0
	origPos := 0
	for {
		idx := strings.Index(lowered[lowPos:], query)
		if idx < 0 {
			b.WriteString(value[origPos:])
			break
		}
		lowStart := lowPos + idx
		lowEnd := lowStart + len(query)
		for lowOffsets[runeIdx] < lowStart {
			runeIdx++
		}
		origStart := origOffsets[runeIdx]
		for lowOffsets[runeIdx] < lowEnd {
			runeIdx++
		}
		origEnd := origOffsets[runeIdx]

		b.WriteString(value[origPos:origStart])
		b.WriteString(highlightOpen)
		b.WriteString(value[origStart:origEnd])
		b.WriteString(highlightClose)
		lowPos = lowEnd
		origPos = origEnd
	}
	return b.String()
}
