package tui

import "github.com/thenoetrevino/regatta/internal/models"

// boatsLoadedMsg carries the result of a store read.
type boatsLoadedMsg struct {
	boats []*models.Boat
	err   error
}

// notificationExpiredMsg removes a notification once its timeout passes.
type notificationExpiredMsg struct {
	id int
}
