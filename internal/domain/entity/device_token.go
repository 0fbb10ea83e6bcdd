package entity

import "time"

// DeviceToken token FCM registrado por un usuario para notificaciones push.
type DeviceToken struct {
	ID        string
	UserID    string
	Token     string
	Platform  string // android | ios | web
	CreatedAt time.Time
}
