package model

// Session — сохраняемая запись сессии пользователя.
// Форма обоих полей определяется вызывающим кодом.
type Session struct {
	UserInfo  any `json:"userInfo"`
	LoginTime any `json:"loginTime"`
}
