package keyboard

import (
	"github.com/go-telegram/bot/models"
)

// BackButton создаёт кнопку "이전"
func BackButton(callbackData string) models.InlineKeyboardButton {
	return Button("⬅️ 이전", callbackData)
}

// BackToMainButton создаёт кнопку "처음으로"
func BackToMainButton() models.InlineKeyboardButton {
	return Button("🏠 처음으로", "back_to_main")
}

// MyTimetableButton создаёт кнопку перехода к своему расписанию
func MyTimetableButton() models.InlineKeyboardButton {
	return Button("🗓 내 시간표", "tt_view")
}

// CancelButton создаёт кнопку "취소"
func CancelButton(callbackData string) models.InlineKeyboardButton {
	return Button("❌ 취소", callbackData)
}

// ConfirmButton создаёт кнопку "확인"
func ConfirmButton(callbackData string) models.InlineKeyboardButton {
	return Button("✅ 확인", callbackData)
}

// ConfirmCancelButtons создаёт ряд с кнопками Подтвердить/Отмена
func ConfirmCancelButtons(confirmCallback, cancelCallback string) [][]models.InlineKeyboardButton {
	return [][]models.InlineKeyboardButton{
		{
			ConfirmButton(confirmCallback),
			CancelButton(cancelCallback),
		},
	}
}

// AddBackButton добавляет кнопку "Назад" к builder
func (b *Builder) AddBackButton(callbackData string) *Builder {
	return b.Row(BackButton(callbackData))
}

// AddBackToMainButton добавляет кнопку "В главное меню" к builder
func (b *Builder) AddBackToMainButton() *Builder {
	return b.Row(BackToMainButton())
}
