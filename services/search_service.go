package services

import (
	"sort"
	"strings"

	"admin-panel/models"

	"github.com/fiam/gounidecode/unidecode"
	"github.com/schollz/closestmatch"
	"github.com/texttheater/golang-levenshtein/levenshtein"
)

// Hàm chuẩn hóa chuỗi tìm kiếm
func normalizeInput(input string) string {
	input = strings.TrimSpace(input)
	input = strings.ToLower(unidecode.Unidecode(input))
	return input
}

// Tạo đối tượng closestmatch cho danh sách từ khóa
func createMatcher(keywords []string) *closestmatch.ClosestMatch {
	return closestmatch.New(keywords, []int{2, 3})
}

// Tính độ tương đồng giữa hai chuỗi
func calculateSimilarity(a, b string) float64 {
	distance := levenshtein.DistanceForStrings([]rune(a), []rune(b), levenshtein.DefaultOptions)
	maxLen := float64(len(a))
	if float64(len(b)) > maxLen {
		maxLen = float64(len(b))
	}

	if maxLen == 0 {
		return 1.0
	}

	return 1.0 - float64(distance)/maxLen
}

// scoredBooking booking kèm điểm phù hợp với query
type scoredBooking struct {
	booking models.Booking
	score   float64
}

// SearchBookings lọc danh sách booking theo mã hoặc tên khách. Khớp chuỗi
// con thì nhận luôn, không thì chấm điểm gần đúng trên tên khách để tìm
// được cả khi nhân viên gõ sai chính tả.
func SearchBookings(bookings []models.Booking, query string) []models.Booking {
	normalizedQuery := normalizeInput(query)
	if normalizedQuery == "" {
		return bookings
	}

	names := make([]string, 0, len(bookings))
	for _, b := range bookings {
		if b.Guest.Name != "" {
			names = append(names, normalizeInput(b.Guest.Name))
		}
	}
	matcher := createMatcher(names)
	closest := matcher.Closest(normalizedQuery)

	var exact []models.Booking
	var fuzzy []scoredBooking
	for _, b := range bookings {
		id := normalizeInput(b.DisplayID())
		name := normalizeInput(b.Guest.Name)

		if strings.Contains(id, normalizedQuery) || strings.Contains(name, normalizedQuery) {
			exact = append(exact, b)
			continue
		}

		similarity := calculateSimilarity(name, normalizedQuery)
		if closest != "" && name == closest {
			similarity += 0.2
		}
		if similarity >= 0.5 {
			fuzzy = append(fuzzy, scoredBooking{booking: b, score: similarity})
		}
	}

	sort.SliceStable(fuzzy, func(i, j int) bool {
		return fuzzy[i].score > fuzzy[j].score
	})

	result := exact
	for _, sb := range fuzzy {
		result = append(result, sb.booking)
	}
	return result
}
