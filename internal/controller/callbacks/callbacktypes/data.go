package callbacktypes

// Форматы callback data. Telegram ограничивает их 64 байтами,
// поэтому кафедры передаются индексом, а не названием.
const (
	Noop       = "noop"
	BackToMain = "back_to_main"

	DepartmentsPage = "dept_page:"    // dept_page:2
	SelectScope     = "scope:"        // scope:d3 | scope:all | scope:s
	CoursesPage     = "courses_page:" // courses_page:d3:2
	AddCourse       = "add:"          // add:12345-1:d3:2
	RemoveCourse    = "remove:"       // remove:12345-1

	ViewTimetable   = "tt_view"
	TimetableImage  = "tt_image"
	TimetableExport = "tt_export"
	ResetAsk        = "reset_ask"
	ResetConfirm    = "reset_yes"
)

// Области списка курсов
const (
	ScopeAll        = "all"
	ScopeSearch     = "s"
	ScopeDeptPrefix = "d"
)
