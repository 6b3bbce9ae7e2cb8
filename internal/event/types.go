// internal/event/types.go
package event

const (
	SpinStarted    EventType = "SpinStarted"    // Колесо начало вращение
	SpinFinished   EventType = "SpinFinished"   // Колесо остановилось, Data — wheel.SpinResult
	ImageLoaded    EventType = "ImageLoaded"    // Картинка колеса загружена или не загрузилась
	SurfaceResized EventType = "SurfaceResized" // Окно изменило размер
	PrizeAwarded   EventType = "PrizeAwarded"   // Приз выдан игроку
	SpinRejected   EventType = "SpinRejected"
)
