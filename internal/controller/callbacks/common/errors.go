package common

import (
	"errors"
	"fmt"

	"github.com/Freeeeeet/timetable_bot/internal/timetable"
)

// Общие ошибки для обработчиков
var (
	ErrNoMessage       = errors.New("no message in callback")
	ErrInvalidFormat   = errors.New("invalid callback format")
	ErrUnknownScope    = errors.New("unknown course list scope")
	ErrSearchExpired   = errors.New("search keyword expired")
	ErrRenderingFailed = errors.New("timetable rendering failed")
)

// ErrorMessage возвращает пользовательское сообщение для ошибки
func ErrorMessage(err error) string {
	var selErr *timetable.SelectionError
	if errors.As(err, &selErr) {
		return SelectionMessage(selErr)
	}

	switch {
	case errors.Is(err, timetable.ErrNotFound):
		return "❌ 해당 강의를 찾을 수 없습니다"
	case errors.Is(err, timetable.ErrStaleReference):
		return "⚠️ 시간표 데이터가 갱신되어 일부 강의가 사라졌습니다"
	case errors.Is(err, ErrNoMessage):
		return "❌ 메시지를 처리할 수 없습니다"
	case errors.Is(err, ErrInvalidFormat):
		return "❌ 잘못된 요청입니다"
	case errors.Is(err, ErrUnknownScope):
		return "❌ 목록을 다시 열어 주세요: /courses"
	case errors.Is(err, ErrSearchExpired):
		return "⌛ 검색이 만료되었습니다. /search 로 다시 검색해 주세요"
	case errors.Is(err, ErrRenderingFailed):
		return "❌ 시간표 이미지를 만들지 못했습니다"
	default:
		return "❌ 오류가 발생했습니다"
	}
}

// SelectionMessage формирует сообщение об отказе с названиями обоих курсов
func SelectionMessage(e *timetable.SelectionError) string {
	switch {
	case errors.Is(e.Kind, timetable.ErrTimeConflict):
		return fmt.Sprintf("⛔ 시간이 겹칩니다\n\n「%s」와(과) 이미 선택한 「%s」이(가) %s교시에 겹칩니다.",
			e.CandidateName(), e.ExistingName(), e.Slot)
	case errors.Is(e.Kind, timetable.ErrDuplicateSelection):
		if e.Key == e.ExistingKey {
			return fmt.Sprintf("⚠️ 「%s」은(는) 이미 시간표에 있습니다.", e.CandidateName())
		}
		return fmt.Sprintf("⚠️ 「%s」은(는) 이미 선택한 「%s」(%d반)과 같은 과목입니다.",
			e.CandidateName(), e.ExistingName(), e.ExistingKey.Section)
	case errors.Is(e.Kind, timetable.ErrNotFound):
		return fmt.Sprintf("❌ 강의 %s을(를) 찾을 수 없습니다", e.Key)
	default:
		return "❌ 강의를 추가할 수 없습니다"
	}
}
