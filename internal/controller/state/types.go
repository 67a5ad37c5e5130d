package state

// UserState представляет текущее состояние пользователя в диалоге
type UserState string

const (
	StateNone UserState = "" // Нет активного состояния

	// Ожидаем ключевое слово для поиска курсов
	StateSearchKeyword UserState = "search_keyword"
)

// Ключи временных данных диалога
const (
	DataSearchKeyword = "search_keyword"
)

// UserData хранит временные данные пользователя во время диалога
type UserData struct {
	State UserState
	Data  map[string]interface{} // Временные данные для текущего диалога
}
