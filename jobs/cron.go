package jobs

import (
	"log"
	"time"

	"admin-panel/config"
	"admin-panel/constants"
	"admin-panel/models"

	"github.com/robfig/cron/v3"
)

// InitCronJobs khởi tạo các cron jobs
func InitCronJobs(c *cron.Cron) error {
	// Dọn sổ tồn phòng lúc 0h mỗi ngày: các ngày đã qua không còn được
	// vòng đời booking đụng tới, giữ lại chỉ tốn chỗ
	_, err := c.AddFunc("0 0 * * *", func() {
		today := time.Now().Format(constants.DateLayout)
		res := config.DB.Where("date < ?", today).Delete(&models.RoomAvailability{})
		if res.Error != nil {
			log.Printf("Lỗi khi dọn sổ tồn phòng: %v", res.Error)
			return
		}
		log.Printf("Đã dọn %d dòng tồn phòng trước ngày %s", res.RowsAffected, today)
	})
	if err != nil {
		return err
	}

	c.Start()
	log.Println("Cron jobs initialized successfully")
	return nil
}
