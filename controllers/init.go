package controllers

import (
	"admin-panel/services"

	"github.com/olahol/melody"
)

// Hub websocket và client host ảnh dùng chung cho các handler,
// gán một lần trong SetupRoutes
var (
	WSHub       *melody.Melody
	ImgBBClient *services.ImgBBClient
)

// Init gắn các phụ thuộc dùng chung cho package controllers
func Init(m *melody.Melody, imgbb *services.ImgBBClient) {
	WSHub = m
	ImgBBClient = imgbb
}
