package controllers

import (
	"sort"
	"time"

	"admin-panel/config"
	"admin-panel/constants"
	"admin-panel/dto"
	"admin-panel/models"
	"admin-panel/response"

	"github.com/gin-gonic/gin"
)

// RecordSiteVisit ghi một lượt truy cập, gọi từ site công khai
func RecordSiteVisit(c *gin.Context) {
	var req struct {
		Page     string `json:"page" binding:"required"`
		Referrer string `json:"referrer"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	visit := models.SiteVisit{
		Page:      req.Page,
		Referrer:  req.Referrer,
		UserAgent: c.Request.UserAgent(),
		VisitedAt: time.Now(),
	}
	if err := config.DB.Create(&visit).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, gin.H{"message": "Đã ghi nhận"})
}

// GetSiteVisits lượt truy cập thô cùng số liệu gộp theo ngày và theo
// trang cho biểu đồ analytics
func GetSiteVisits(c *gin.Context) {
	var visits []models.SiteVisit
	if err := config.DB.Order("visited_at DESC").Limit(1000).Find(&visits).Error; err != nil {
		response.ServerError(c)
		return
	}

	byDay := make(map[string]int)
	byPage := make(map[string]int)
	for _, v := range visits {
		byDay[v.VisitedAt.Format(constants.DateLayout)]++
		byPage[v.Page]++
	}

	perDay := make([]dto.VisitStat, 0, len(byDay))
	for day, count := range byDay {
		perDay = append(perDay, dto.VisitStat{Key: day, Count: count})
	}
	sort.Slice(perDay, func(i, j int) bool { return perDay[i].Key < perDay[j].Key })

	perPage := make([]dto.VisitStat, 0, len(byPage))
	for page, count := range byPage {
		perPage = append(perPage, dto.VisitStat{Key: page, Count: count})
	}
	sort.Slice(perPage, func(i, j int) bool { return perPage[i].Count > perPage[j].Count })

	response.Success(c, gin.H{
		"visits":  visits,
		"perDay":  perDay,
		"perPage": perPage,
	})
}
